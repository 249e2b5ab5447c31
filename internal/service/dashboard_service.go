package service

import (
	"Marketplace/internal/api/dto"
	"Marketplace/internal/model"
	"Marketplace/internal/pkg/consts"
	"Marketplace/internal/pkg/util"
	"Marketplace/internal/repository"
	"context"
	"errors"
	log "log/slog"
	"strconv"
	"time"

	"github.com/jinzhu/copier"
	"golang.org/x/sync/errgroup"
)

const (
	opOverview  = "overview"
	opInsights  = "insights"
	opTrends    = "trends"
	opRatings   = "ratings"
	opFeedback  = "feedback"
	opBenchmark = "benchmark"
)

// DashboardCache 看板结果缓存
type DashboardCache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// DashboardRecorder 看板查询指标
type DashboardRecorder interface {
	ObserveDashboard(operation string, start time.Time, err error)
	RecordCache(operation string, hit bool)
}

// DashboardOptions CacheTTL 为 0 时不缓存概览和评分
type DashboardOptions struct {
	CacheTTL              time.Duration
	ApprovedFollowersOnly bool
}

type DashboardService interface {
	GetOverview(ctx context.Context, userID uint64) (*dto.OverviewDTO, error)
	GetUserInsights(ctx context.Context, userID uint64) (*dto.UserInsightsDTO, error)
	GetTrends(ctx context.Context, userID uint64, query *dto.TrendQueryDTO) (*dto.TrendDTO, error)
	GetRatings(ctx context.Context, userID uint64) (*dto.RatingsDTO, error)
	GetFeedback(ctx context.Context, userID uint64) (*dto.FeedbackDTO, error)
	GetBenchmark(ctx context.Context, userID uint64) (*dto.BenchmarkDTO, error)
	RefreshBenchmark(ctx context.Context) error
	InvalidateProducers(ctx context.Context, producerIDs []uint64, withBenchmark bool) error
}

type dashboardServiceImpl struct {
	producerRepo repository.ProducerRepo
	postRepo     repository.PostRepo
	bookingRepo  repository.BookingRepo
	followRepo   repository.FollowRepo
	ratingRepo   repository.RatingRepo
	commentRepo  repository.CommentRepo
	cache        DashboardCache
	recorder     DashboardRecorder
	opts         DashboardOptions
}

func NewDashboardService(
	producerRepo repository.ProducerRepo,
	postRepo repository.PostRepo,
	bookingRepo repository.BookingRepo,
	followRepo repository.FollowRepo,
	ratingRepo repository.RatingRepo,
	commentRepo repository.CommentRepo,
	cache DashboardCache,
	recorder DashboardRecorder,
	opts DashboardOptions,
) DashboardService {
	return &dashboardServiceImpl{
		producerRepo: producerRepo,
		postRepo:     postRepo,
		bookingRepo:  bookingRepo,
		followRepo:   followRepo,
		ratingRepo:   ratingRepo,
		commentRepo:  commentRepo,
		cache:        cache,
		recorder:     recorder,
		opts:         opts,
	}
}

func (s *dashboardServiceImpl) GetOverview(ctx context.Context, userID uint64) (res *dto.OverviewDTO, err error) {
	defer s.observe(opOverview, time.Now(), &err)

	producer, err := s.resolveProducer(ctx, userID)
	if err != nil {
		return nil, err
	}

	key := overviewKey(producer.ID)
	cached := &dto.OverviewDTO{}
	if s.opts.CacheTTL > 0 && s.loadCache(ctx, opOverview, key, cached) {
		return cached, nil
	}

	followerStatus := ""
	if s.opts.ApprovedFollowersOnly {
		followerStatus = model.FollowStatusApproved
	}

	var (
		totalPosts     int64
		totalBookings  int64
		totalFollowers int64
		averageRating  float64
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, qErr := s.postRepo.CountPostsByProducer(gCtx, producer.ID)
		totalPosts = n
		return qErr
	})
	g.Go(func() error {
		n, qErr := s.bookingRepo.CountBookingsByRestaurant(gCtx, producer.UserID)
		totalBookings = n
		return qErr
	})
	g.Go(func() error {
		n, qErr := s.followRepo.CountFollowers(gCtx, producer.ID, followerStatus)
		totalFollowers = n
		return qErr
	})
	g.Go(func() error {
		avg, qErr := s.ratingRepo.GetAverageRating(gCtx, producer.ID)
		averageRating = avg
		return qErr
	})
	if err = g.Wait(); err != nil {
		return nil, err
	}

	res = &dto.OverviewDTO{
		TotalPosts:     totalPosts,
		TotalBookings:  totalBookings,
		TotalFollowers: totalFollowers,
		AverageRating:  util.FormatAverage(averageRating),
	}
	if s.opts.CacheTTL > 0 {
		s.storeCache(ctx, key, res, s.opts.CacheTTL)
	}
	return res, nil
}

func (s *dashboardServiceImpl) GetUserInsights(ctx context.Context, userID uint64) (res *dto.UserInsightsDTO, err error) {
	defer s.observe(opInsights, time.Now(), &err)

	producer, err := s.resolveProducer(ctx, userID)
	if err != nil {
		return nil, err
	}

	follows, err := s.followRepo.GetRecentFollows(ctx, producer.ID, model.FollowStatusApproved, consts.RecentFollowersLimit)
	if err != nil {
		return nil, err
	}

	followers := make([]*dto.FollowerDTO, 0, len(follows))
	for _, follow := range follows {
		follower := &dto.FollowerDTO{}
		if err = copier.Copy(follower, &follow.Follower); err != nil {
			return nil, err
		}
		follower.ID = follow.FollowerID
		follower.FollowedAt = follow.CreatedAt
		followers = append(followers, follower)
	}

	// totalFollowers 为本页条数
	return &dto.UserInsightsDTO{
		TotalFollowers:  len(followers),
		RecentFollowers: followers,
	}, nil
}

func (s *dashboardServiceImpl) GetTrends(ctx context.Context, userID uint64, query *dto.TrendQueryDTO) (res *dto.TrendDTO, err error) {
	defer s.observe(opTrends, time.Now(), &err)

	producer, err := s.resolveProducer(ctx, userID)
	if err != nil {
		return nil, err
	}

	if query == nil {
		query = &dto.TrendQueryDTO{}
	}
	if err = util.ValidateDTO(query); err != nil {
		return nil, ErrParamInvalid
	}
	window, err := parseTrendWindow(query.From, query.To)
	if err != nil {
		return nil, err
	}

	metric := ParseTrendMetric(query.Metric)
	res = &dto.TrendDTO{
		Metric: string(metric),
		Series: make([]*dto.TrendPointDTO, 0),
	}

	run, ok := s.trendQueryFor(metric)
	if !ok {
		return res, nil
	}

	rows, err := run(ctx, producer, window)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		res.Series = append(res.Series, &dto.TrendPointDTO{Date: row.Date, Value: row.Value})
	}
	return res, nil
}

func (s *dashboardServiceImpl) GetRatings(ctx context.Context, userID uint64) (res *dto.RatingsDTO, err error) {
	defer s.observe(opRatings, time.Now(), &err)

	producer, err := s.resolveProducer(ctx, userID)
	if err != nil {
		return nil, err
	}

	key := ratingsKey(producer.ID)
	cached := &dto.RatingsDTO{}
	if s.opts.CacheTTL > 0 && s.loadCache(ctx, opRatings, key, cached) {
		return cached, nil
	}

	averages, err := s.ratingRepo.GetCriteriaAverages(ctx, producer.ID)
	if err != nil {
		return nil, err
	}

	res = &dto.RatingsDTO{Ratings: make([]*dto.CriteriaRatingDTO, 0, len(averages))}
	for _, avg := range averages {
		res.Ratings = append(res.Ratings, &dto.CriteriaRatingDTO{
			Criteria: avg.Criteria,
			Average:  util.FormatAverage(avg.Average),
		})
	}
	if s.opts.CacheTTL > 0 {
		s.storeCache(ctx, key, res, s.opts.CacheTTL)
	}
	return res, nil
}

func (s *dashboardServiceImpl) GetFeedback(ctx context.Context, userID uint64) (res *dto.FeedbackDTO, err error) {
	defer s.observe(opFeedback, time.Now(), &err)

	producer, err := s.resolveProducer(ctx, userID)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.GetRecentCommentsByProducer(ctx, producer.ID, consts.RecentCommentsLimit)
	if err != nil {
		return nil, err
	}

	res = &dto.FeedbackDTO{Comments: make([]*dto.CommentDTO, 0, len(comments))}
	for _, comment := range comments {
		item := &dto.CommentDTO{}
		if err = copier.Copy(item, comment); err != nil {
			return nil, err
		}
		if comment.User.ID != 0 {
			item.Author = &dto.CommentAuthorDTO{
				ID:        comment.User.ID,
				Name:      comment.User.Name,
				AvatarURL: comment.User.AvatarURL,
			}
		}
		res.Comments = append(res.Comments, item)
	}
	return res, nil
}

func (s *dashboardServiceImpl) GetBenchmark(ctx context.Context, userID uint64) (res *dto.BenchmarkDTO, err error) {
	defer s.observe(opBenchmark, time.Now(), &err)

	producer, err := s.resolveProducer(ctx, userID)
	if err != nil {
		return nil, err
	}

	benchmark := make([]*dto.TypeBenchmarkDTO, 0)
	cacheable := s.opts.CacheTTL > 0
	if !cacheable || !s.loadCache(ctx, opBenchmark, consts.DashboardBenchmarkKey, &benchmark) {
		benchmark, err = s.computeBenchmark(ctx)
		if err != nil {
			return nil, err
		}
		// 基准缓存到零点，cache_ttl 为 0 时与其它看板数据一样实时计算
		if cacheable {
			s.storeCache(ctx, consts.DashboardBenchmarkKey, benchmark, util.UntilMidnight(time.Now()))
		}
	}

	return &dto.BenchmarkDTO{
		MyType:    producer.Type,
		Benchmark: benchmark,
	}, nil
}

// RefreshBenchmark 重新计算全局基准并写入缓存，由定时任务调用，未启用缓存时什么也不做
func (s *dashboardServiceImpl) RefreshBenchmark(ctx context.Context) error {
	if s.cache == nil || s.opts.CacheTTL <= 0 {
		return nil
	}
	benchmark, err := s.computeBenchmark(ctx)
	if err != nil {
		return err
	}
	return s.cache.Set(ctx, consts.DashboardBenchmarkKey, benchmark, util.UntilMidnight(time.Now()))
}

// InvalidateProducers 删除商家的概览和评分缓存，withBenchmark 时同时删除全局基准
func (s *dashboardServiceImpl) InvalidateProducers(ctx context.Context, producerIDs []uint64, withBenchmark bool) error {
	if s.cache == nil {
		return nil
	}
	keys := make([]string, 0, len(producerIDs)*2+1)
	for _, id := range producerIDs {
		keys = append(keys, overviewKey(id), ratingsKey(id))
	}
	if withBenchmark {
		keys = append(keys, consts.DashboardBenchmarkKey)
	}
	return s.cache.Delete(ctx, keys...)
}

func (s *dashboardServiceImpl) computeBenchmark(ctx context.Context) ([]*dto.TypeBenchmarkDTO, error) {
	averages, err := s.ratingRepo.GetTypeAverages(ctx)
	if err != nil {
		return nil, err
	}
	benchmark := make([]*dto.TypeBenchmarkDTO, 0, len(averages))
	for _, avg := range averages {
		benchmark = append(benchmark, &dto.TypeBenchmarkDTO{
			Type: avg.Type,
			Avg:  util.FormatAverage(avg.Avg),
		})
	}
	return benchmark, nil
}

func (s *dashboardServiceImpl) resolveProducer(ctx context.Context, userID uint64) (*model.Producer, error) {
	producer, err := s.producerRepo.GetProducerByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if producer == nil {
		return nil, ErrProducerNotFound
	}
	return producer, nil
}

// loadCache 读缓存失败时记录日志并回源
func (s *dashboardServiceImpl) loadCache(ctx context.Context, operation, key string, dest any) bool {
	if s.cache == nil {
		return false
	}
	hit, err := s.cache.Get(ctx, key, dest)
	if err != nil {
		log.WarnContext(ctx, "dashboard cache read failed", "key", key, "err", err)
		hit = false
	}
	if s.recorder != nil {
		s.recorder.RecordCache(operation, hit)
	}
	return hit
}

func (s *dashboardServiceImpl) storeCache(ctx context.Context, key string, value any, expiration time.Duration) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, value, expiration); err != nil {
		log.WarnContext(ctx, "dashboard cache write failed", "key", key, "err", err)
	}
}

func (s *dashboardServiceImpl) observe(operation string, start time.Time, err *error) {
	if s.recorder == nil {
		return
	}
	var opErr error
	if err != nil && *err != nil && !errors.Is(*err, ErrProducerNotFound) {
		opErr = *err
	}
	s.recorder.ObserveDashboard(operation, start, opErr)
}

// parseTrendWindow 仅当 from 和 to 同时存在时返回时间窗口
func parseTrendWindow(from, to string) (*model.TimeRange, error) {
	if from == "" || to == "" {
		return nil, nil
	}
	fromTime, err := util.ParseDateBound(from, false, time.Local)
	if err != nil {
		return nil, ErrParamInvalid
	}
	toTime, err := util.ParseDateBound(to, true, time.Local)
	if err != nil {
		return nil, ErrParamInvalid
	}
	return &model.TimeRange{From: fromTime, To: toTime}, nil
}

func overviewKey(producerID uint64) string {
	return consts.DashboardOverviewKey + strconv.FormatUint(producerID, 10)
}

func ratingsKey(producerID uint64) string {
	return consts.DashboardRatingsKey + strconv.FormatUint(producerID, 10)
}
