package repository

import (
	"Marketplace/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type ProducerRepo interface {
	GetProducerByUserID(ctx context.Context, userID uint64) (*model.Producer, error)
	GetProducerByID(ctx context.Context, id uint64) (*model.Producer, error)
}

type ProducerRepoImpl struct {
	db *gorm.DB
}

func NewProducerRepo(db *gorm.DB) ProducerRepo {
	return &ProducerRepoImpl{db: db}
}

// GetProducerByUserID 根据所属用户获取商家，一个用户至多一个商家
func (s *ProducerRepoImpl) GetProducerByUserID(ctx context.Context, userID uint64) (*model.Producer, error) {
	var producer model.Producer
	result := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&producer)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &producer, nil
}

func (s *ProducerRepoImpl) GetProducerByID(ctx context.Context, id uint64) (*model.Producer, error) {
	var producer model.Producer
	result := s.db.WithContext(ctx).First(&producer, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &producer, nil
}
