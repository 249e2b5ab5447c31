package repository

import (
	"Marketplace/internal/model"
	"context"

	"gorm.io/gorm"
)

type InterestRepo interface {
	CreateInterest(ctx context.Context, interest *model.Interest) error
	CheckInterestExists(ctx context.Context, userID, producerID uint64) (bool, error)
	GetInterestsByProducer(ctx context.Context, producerID uint64, limit, offset int) ([]*model.Interest, error)
}

type InterestRepoImpl struct {
	db *gorm.DB
}

func NewInterestRepo(db *gorm.DB) InterestRepo {
	return &InterestRepoImpl{db: db}
}

func (s *InterestRepoImpl) CreateInterest(ctx context.Context, interest *model.Interest) error {
	return s.db.WithContext(ctx).Create(interest).Error
}

func (s *InterestRepoImpl) CheckInterestExists(ctx context.Context, userID, producerID uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Interest{}).
		Where("user_id = ? AND producer_id = ?", userID, producerID).
		Count(&count).Error
	return count > 0, err
}

// GetInterestsByProducer 商家收到的意向，最新在前
func (s *InterestRepoImpl) GetInterestsByProducer(ctx context.Context, producerID uint64, limit, offset int) ([]*model.Interest, error) {
	interests := make([]*model.Interest, 0)
	err := s.db.WithContext(ctx).
		Preload("User").
		Where("producer_id = ?", producerID).
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&interests).Error
	if err != nil {
		return nil, err
	}
	return interests, nil
}
