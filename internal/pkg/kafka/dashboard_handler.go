package kafka

import (
	"Marketplace/internal/model"
	"context"
	"errors"
	log "log/slog"

	"github.com/IBM/sarama"
)

// DashboardInvalidator 删除商家看板缓存
type DashboardInvalidator interface {
	InvalidateProducers(ctx context.Context, producerIDs []uint64, withBenchmark bool) error
}

type ProducerLookup interface {
	GetProducerByUserID(ctx context.Context, userID uint64) (*model.Producer, error)
}

type PostLookup interface {
	GetPost(ctx context.Context, id uint64) (*model.Post, error)
}

// DashboardHandler 监听 binlog 变更，使受影响商家的看板缓存失效
type DashboardHandler struct {
	invalidator DashboardInvalidator
	producers   ProducerLookup
	posts       PostLookup
	batcher     *batcher
}

func NewDashboardHandler(invalidator DashboardInvalidator, producers ProducerLookup, posts PostLookup) *DashboardHandler {
	return &DashboardHandler{
		invalidator: invalidator,
		producers:   producers,
		posts:       posts,
		batcher:     defaultBatcher(),
	}
}

func (h *DashboardHandler) Setup(_ sarama.ConsumerGroupSession) error {
	return nil
}

func (h *DashboardHandler) Cleanup(_ sarama.ConsumerGroupSession) error {
	return nil
}

func (h *DashboardHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	return h.batcher.run(session, claim, h.handle)
}

func (h *DashboardHandler) handle(ctx context.Context, msg *sarama.ConsumerMessage) error {
	canalMsg, err := ToCanalMessage(msg)
	if err != nil {
		// 无法解析的消息重试也没有意义，直接跳过
		if !errors.Is(err, ErrEmptyCanalData) {
			log.WarnContext(ctx, "skip malformed canal message", "offset", msg.Offset, "err", err)
		}
		return nil
	}
	return h.Apply(ctx, canalMsg)
}

// Apply 根据变更的表找出受影响的商家并删除缓存
func (h *DashboardHandler) Apply(ctx context.Context, msg *CanalMessage) error {
	if msg.IsDDL {
		return nil
	}
	switch msg.Type {
	case INSERT, UPDATE, DELETE:
	default:
		return nil
	}

	var (
		producerIDs   []uint64
		withBenchmark bool
		err           error
	)
	switch msg.Table {
	case (model.Post{}).TableName(), (model.Follow{}).TableName():
		producerIDs = msg.Uint64Column("producer_id")
	case (model.Booking{}).TableName():
		producerIDs, err = h.producersByOwners(ctx, msg.Uint64Column("restaurant_id"))
	case (model.PostRating{}).TableName():
		withBenchmark = true
		producerIDs, err = h.producersByPosts(ctx, msg.Uint64Column("post_id"))
	default:
		return nil
	}
	if err != nil {
		return err
	}
	if len(producerIDs) == 0 && !withBenchmark {
		return nil
	}

	if err = h.invalidator.InvalidateProducers(ctx, producerIDs, withBenchmark); err != nil {
		return err
	}
	log.DebugContext(ctx, "dashboard cache invalidated",
		"table", msg.Table, "producers", producerIDs, "benchmark", withBenchmark)
	return nil
}

func (h *DashboardHandler) producersByOwners(ctx context.Context, userIDs []uint64) ([]uint64, error) {
	res := make([]uint64, 0, len(userIDs))
	for _, uid := range userIDs {
		producer, err := h.producers.GetProducerByUserID(ctx, uid)
		if err != nil {
			return nil, err
		}
		if producer != nil {
			res = append(res, producer.ID)
		}
	}
	return res, nil
}

func (h *DashboardHandler) producersByPosts(ctx context.Context, postIDs []uint64) ([]uint64, error) {
	seen := make(map[uint64]struct{}, len(postIDs))
	res := make([]uint64, 0, len(postIDs))
	for _, pid := range postIDs {
		post, err := h.posts.GetPost(ctx, pid)
		if err != nil {
			return nil, err
		}
		// 帖子已删除时无法反查商家，仅刷新全局基准
		if post == nil {
			continue
		}
		if _, ok := seen[post.ProducerID]; ok {
			continue
		}
		seen[post.ProducerID] = struct{}{}
		res = append(res, post.ProducerID)
	}
	return res, nil
}
