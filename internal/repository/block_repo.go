package repository

import (
	"Marketplace/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type BlockRepo interface {
	GetBlock(ctx context.Context, blockerID, blockedID uint64) (*model.Block, error)
	CreateBlock(ctx context.Context, block *model.Block) error
	DeleteBlock(ctx context.Context, blockerID, blockedID uint64) (int64, error)
	GetBlockedUsers(ctx context.Context, blockerID uint64) ([]*model.Block, error)
}

type BlockRepoImpl struct {
	db *gorm.DB
}

func NewBlockRepo(db *gorm.DB) BlockRepo {
	return &BlockRepoImpl{db: db}
}

func (s *BlockRepoImpl) GetBlock(ctx context.Context, blockerID, blockedID uint64) (*model.Block, error) {
	var block model.Block
	result := s.db.WithContext(ctx).
		Where("blocker_id = ? AND blocked_id = ?", blockerID, blockedID).
		First(&block)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &block, nil
}

func (s *BlockRepoImpl) CreateBlock(ctx context.Context, block *model.Block) error {
	return s.db.WithContext(ctx).Create(block).Error
}

// DeleteBlock 返回受影响行数，0 表示关系不存在
func (s *BlockRepoImpl) DeleteBlock(ctx context.Context, blockerID, blockedID uint64) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("blocker_id = ? AND blocked_id = ?", blockerID, blockedID).
		Delete(&model.Block{})
	return result.RowsAffected, result.Error
}

func (s *BlockRepoImpl) GetBlockedUsers(ctx context.Context, blockerID uint64) ([]*model.Block, error) {
	blocks := make([]*model.Block, 0)
	result := s.db.WithContext(ctx).
		Preload("Blocked").
		Where("blocker_id = ?", blockerID).
		Order("created_at desc").
		Find(&blocks)
	if result.Error != nil {
		return nil, result.Error
	}
	return blocks, nil
}
