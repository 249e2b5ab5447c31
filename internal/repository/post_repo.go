package repository

import (
	"Marketplace/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type PostRepo interface {
	GetPost(ctx context.Context, id uint64) (*model.Post, error)
	CountPostsByProducer(ctx context.Context, producerID uint64) (int64, error)
	CountPostsByDay(ctx context.Context, producerID uint64, window *model.TimeRange) ([]*model.DailyCount, error)
}

type PostRepoImpl struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepo {
	return &PostRepoImpl{
		db: db,
	}
}

func (s *PostRepoImpl) GetPost(ctx context.Context, id uint64) (*model.Post, error) {
	var post model.Post
	err := s.db.WithContext(ctx).First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// CountPostsByProducer 商家发帖总数
func (s *PostRepoImpl) CountPostsByProducer(ctx context.Context, producerID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&model.Post{}).
		Where("producer_id = ?", producerID).
		Count(&count).Error
	return count, err
}

// CountPostsByDay 商家每日发帖数
func (s *PostRepoImpl) CountPostsByDay(ctx context.Context, producerID uint64, window *model.TimeRange) ([]*model.DailyCount, error) {
	return countByDay(ctx, s.db, &model.Post{}, window, func(db *gorm.DB) *gorm.DB {
		return db.Where("producer_id = ?", producerID)
	})
}
