package repository

import (
	"Marketplace/internal/model"
	"context"

	"gorm.io/gorm"
)

type FollowRepo interface {
	CountFollowers(ctx context.Context, producerID uint64, status string) (int64, error)
	GetRecentFollows(ctx context.Context, producerID uint64, status string, limit int) ([]*model.Follow, error)
	CountFollowsByDay(ctx context.Context, producerID uint64, status string, window *model.TimeRange) ([]*model.DailyCount, error)
}

type FollowRepoImpl struct {
	db *gorm.DB
}

func NewFollowRepo(db *gorm.DB) FollowRepo {
	return &FollowRepoImpl{db: db}
}

// withStatus status 为空时不过滤关注状态
func withStatus(status string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if status == "" {
			return db
		}
		return db.Where("status = ?", status)
	}
}

// CountFollowers 获取商家的粉丝数量
func (s *FollowRepoImpl) CountFollowers(ctx context.Context, producerID uint64, status string) (int64, error) {
	var count int64
	query := s.db.WithContext(ctx).
		Model(&model.Follow{}).
		Where("producer_id = ?", producerID)
	result := withStatus(status)(query).Count(&count)

	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// GetRecentFollows 获取最近的关注记录，附带关注者信息
func (s *FollowRepoImpl) GetRecentFollows(ctx context.Context, producerID uint64, status string, limit int) ([]*model.Follow, error) {
	follows := make([]*model.Follow, 0)
	query := s.db.WithContext(ctx).
		Preload("Follower").
		Where("producer_id = ?", producerID)
	result := withStatus(status)(query).
		Order("created_at desc").
		Limit(limit).
		Find(&follows)

	if result.Error != nil {
		return nil, result.Error
	}
	return follows, nil
}

func (s *FollowRepoImpl) CountFollowsByDay(ctx context.Context, producerID uint64, status string, window *model.TimeRange) ([]*model.DailyCount, error) {
	return countByDay(ctx, s.db, &model.Follow{}, window, func(db *gorm.DB) *gorm.DB {
		return withStatus(status)(db.Where("producer_id = ?", producerID))
	})
}
