package service

import (
	"Marketplace/internal/model"
	"context"
	"errors"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/goccy/go-json"
)

var errBoom = errors.New("boom")

// fakeStore 内存实现的仓储，聚合查询次数记录在 aggregateCalls
type fakeStore struct {
	producers []*model.Producer
	posts     []*model.Post
	bookings  []*model.Booking
	follows   []*model.Follow
	ratings   []*model.PostRating
	comments  []*model.PostComment
	users     map[uint64]*model.User

	failOn         string
	aggregateCalls atomic.Int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{users: map[uint64]*model.User{}}
}

func (f *fakeStore) aggregate(name string) error {
	f.aggregateCalls.Add(1)
	if f.failOn == name {
		return errBoom
	}
	return nil
}

func (f *fakeStore) GetProducerByUserID(_ context.Context, userID uint64) (*model.Producer, error) {
	if f.failOn == "GetProducerByUserID" {
		return nil, errBoom
	}
	for _, p := range f.producers {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) GetProducerByID(_ context.Context, id uint64) (*model.Producer, error) {
	for _, p := range f.producers {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) GetPost(_ context.Context, id uint64) (*model.Post, error) {
	for _, p := range f.posts {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) CountPostsByProducer(_ context.Context, producerID uint64) (int64, error) {
	if err := f.aggregate("CountPostsByProducer"); err != nil {
		return 0, err
	}
	var n int64
	for _, p := range f.posts {
		if p.ProducerID == producerID {
			n++
		}
	}
	return n, nil
}

func (f *fakeStore) CountPostsByDay(_ context.Context, producerID uint64, window *model.TimeRange) ([]*model.DailyCount, error) {
	if err := f.aggregate("CountPostsByDay"); err != nil {
		return nil, err
	}
	var times []time.Time
	for _, p := range f.posts {
		if p.ProducerID == producerID {
			times = append(times, p.CreatedAt)
		}
	}
	return bucketByDay(times, window), nil
}

func (f *fakeStore) CountBookingsByRestaurant(_ context.Context, restaurantID uint64) (int64, error) {
	if err := f.aggregate("CountBookingsByRestaurant"); err != nil {
		return 0, err
	}
	var n int64
	for _, b := range f.bookings {
		if b.RestaurantID == restaurantID {
			n++
		}
	}
	return n, nil
}

func (f *fakeStore) CountBookingsByDay(_ context.Context, restaurantID uint64, window *model.TimeRange) ([]*model.DailyCount, error) {
	if err := f.aggregate("CountBookingsByDay"); err != nil {
		return nil, err
	}
	var times []time.Time
	for _, b := range f.bookings {
		if b.RestaurantID == restaurantID {
			times = append(times, b.CreatedAt)
		}
	}
	return bucketByDay(times, window), nil
}

func (f *fakeStore) CountFollowers(_ context.Context, producerID uint64, status string) (int64, error) {
	if err := f.aggregate("CountFollowers"); err != nil {
		return 0, err
	}
	return int64(len(f.filterFollows(producerID, status))), nil
}

func (f *fakeStore) GetRecentFollows(_ context.Context, producerID uint64, status string, limit int) ([]*model.Follow, error) {
	if err := f.aggregate("GetRecentFollows"); err != nil {
		return nil, err
	}
	follows := f.filterFollows(producerID, status)
	sort.SliceStable(follows, func(i, j int) bool { return follows[i].CreatedAt.After(follows[j].CreatedAt) })
	if len(follows) > limit {
		follows = follows[:limit]
	}
	for _, fl := range follows {
		if u, ok := f.users[fl.FollowerID]; ok {
			fl.Follower = *u
		}
	}
	return follows, nil
}

func (f *fakeStore) CountFollowsByDay(_ context.Context, producerID uint64, status string, window *model.TimeRange) ([]*model.DailyCount, error) {
	if err := f.aggregate("CountFollowsByDay"); err != nil {
		return nil, err
	}
	var times []time.Time
	for _, fl := range f.filterFollows(producerID, status) {
		times = append(times, fl.CreatedAt)
	}
	return bucketByDay(times, window), nil
}

func (f *fakeStore) filterFollows(producerID uint64, status string) []*model.Follow {
	res := make([]*model.Follow, 0)
	for _, fl := range f.follows {
		if fl.ProducerID != producerID {
			continue
		}
		if status != "" && fl.Status != status {
			continue
		}
		res = append(res, fl)
	}
	return res
}

func (f *fakeStore) producerRatings(producerID uint64) []*model.PostRating {
	owned := map[uint64]bool{}
	for _, p := range f.posts {
		if p.ProducerID == producerID {
			owned[p.ID] = true
		}
	}
	res := make([]*model.PostRating, 0)
	for _, r := range f.ratings {
		if owned[r.PostID] {
			res = append(res, r)
		}
	}
	return res
}

func (f *fakeStore) GetAverageRating(_ context.Context, producerID uint64) (float64, error) {
	if err := f.aggregate("GetAverageRating"); err != nil {
		return 0, err
	}
	ratings := f.producerRatings(producerID)
	if len(ratings) == 0 {
		return 0, nil
	}
	var sum float64
	for _, r := range ratings {
		sum += r.Rating
	}
	return sum / float64(len(ratings)), nil
}

func (f *fakeStore) GetCriteriaAverages(_ context.Context, producerID uint64) ([]*model.CriteriaAverage, error) {
	if err := f.aggregate("GetCriteriaAverages"); err != nil {
		return nil, err
	}
	sums := map[string][]float64{}
	var order []string
	for _, r := range f.producerRatings(producerID) {
		if _, ok := sums[r.Criteria]; !ok {
			order = append(order, r.Criteria)
		}
		sums[r.Criteria] = append(sums[r.Criteria], r.Rating)
	}
	res := make([]*model.CriteriaAverage, 0, len(order))
	for _, c := range order {
		res = append(res, &model.CriteriaAverage{Criteria: c, Average: mean(sums[c])})
	}
	return res, nil
}

func (f *fakeStore) GetTypeAverages(_ context.Context) ([]*model.TypeAverage, error) {
	if err := f.aggregate("GetTypeAverages"); err != nil {
		return nil, err
	}
	sums := map[string][]float64{}
	var order []string
	for _, r := range f.ratings {
		if _, ok := sums[r.ProducerType]; !ok {
			order = append(order, r.ProducerType)
		}
		sums[r.ProducerType] = append(sums[r.ProducerType], r.Overall)
	}
	res := make([]*model.TypeAverage, 0, len(order))
	for _, t := range order {
		res = append(res, &model.TypeAverage{Type: t, Avg: mean(sums[t])})
	}
	return res, nil
}

func (f *fakeStore) GetComment(_ context.Context, id uint64) (*model.PostComment, error) {
	for _, c := range f.comments {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) GetRecentCommentsByProducer(_ context.Context, producerID uint64, limit int) ([]*model.PostComment, error) {
	if err := f.aggregate("GetRecentCommentsByProducer"); err != nil {
		return nil, err
	}
	owned := map[uint64]bool{}
	for _, p := range f.posts {
		if p.ProducerID == producerID {
			owned[p.ID] = true
		}
	}
	res := make([]*model.PostComment, 0)
	for _, c := range f.comments {
		if owned[c.PostID] {
			res = append(res, c)
		}
	}
	sort.SliceStable(res, func(i, j int) bool { return res[i].CreatedAt.After(res[j].CreatedAt) })
	if len(res) > limit {
		res = res[:limit]
	}
	for _, c := range res {
		if u, ok := f.users[c.UserID]; ok {
			c.User = *u
		}
	}
	return res, nil
}

func (f *fakeStore) GetUserById(_ context.Context, id uint64) (*model.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, nil
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// bucketByDay 闭区间过滤后按天计数，升序
func bucketByDay(times []time.Time, window *model.TimeRange) []*model.DailyCount {
	counts := map[string]int64{}
	for _, t := range times {
		if window != nil && (t.Before(window.From) || t.After(window.To)) {
			continue
		}
		counts[t.Format(time.DateOnly)]++
	}
	res := make([]*model.DailyCount, 0, len(counts))
	for d, v := range counts {
		res = append(res, &model.DailyCount{Date: d, Value: v})
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Date < res[j].Date })
	return res
}

// mapCache 内存缓存，按 JSON 存取以贴近 redis 实现
type mapCache struct {
	mu      sync.Mutex
	data    map[string][]byte
	ttl     map[string]time.Duration
	failGet bool
}

func newMapCache() *mapCache {
	return &mapCache{data: map[string][]byte{}, ttl: map[string]time.Duration{}}
}

func (c *mapCache) Get(_ context.Context, key string, dest any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failGet {
		return false, errBoom
	}
	raw, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (c *mapCache) Set(_ context.Context, key string, value any, expiration time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = raw
	c.ttl[key] = expiration
	return nil
}

func (c *mapCache) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.data, k)
	}
	return nil
}

func (c *mapCache) has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.data[key]
	return ok
}

type recordedObservation struct {
	operation string
	err       error
}

type fakeRecorder struct {
	mu           sync.Mutex
	observations []recordedObservation
	hits, misses int
}

func (r *fakeRecorder) ObserveDashboard(operation string, _ time.Time, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.observations = append(r.observations, recordedObservation{operation: operation, err: err})
}

func (r *fakeRecorder) RecordCache(_ string, hit bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if hit {
		r.hits++
	} else {
		r.misses++
	}
}
