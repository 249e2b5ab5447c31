package service

import (
	"Marketplace/internal/api/dto"
	"Marketplace/internal/model"
	"Marketplace/internal/repository"
	"context"
)

type BlockService interface {
	Block(ctx context.Context, userID, targetID uint64) error
	Unblock(ctx context.Context, userID, targetID uint64) error
	ListBlocked(ctx context.Context, userID uint64) ([]*dto.BlockedUserDTO, error)
}

type blockServiceImpl struct {
	blockRepo repository.BlockRepo
	userRepo  repository.UserRepo
}

func NewBlockService(blockRepo repository.BlockRepo, userRepo repository.UserRepo) BlockService {
	return &blockServiceImpl{
		blockRepo: blockRepo,
		userRepo:  userRepo,
	}
}

func (s *blockServiceImpl) Block(ctx context.Context, userID, targetID uint64) error {
	if userID == targetID {
		return ErrBlockSelf
	}

	target, err := s.userRepo.GetUserById(ctx, targetID)
	if err != nil {
		return err
	}
	if target == nil || target.IsDelete {
		return ErrUserNotFound
	}

	exist, err := s.blockRepo.GetBlock(ctx, userID, targetID)
	if err != nil {
		return err
	}
	if exist != nil {
		return ErrBlockExist
	}

	err = s.blockRepo.CreateBlock(ctx, &model.Block{BlockerID: userID, BlockedID: targetID})
	if isDuplicateError(err) {
		return ErrBlockExist
	}
	return err
}

func (s *blockServiceImpl) Unblock(ctx context.Context, userID, targetID uint64) error {
	affected, err := s.blockRepo.DeleteBlock(ctx, userID, targetID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrBlockNotFound
	}
	return nil
}

func (s *blockServiceImpl) ListBlocked(ctx context.Context, userID uint64) ([]*dto.BlockedUserDTO, error) {
	blocks, err := s.blockRepo.GetBlockedUsers(ctx, userID)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.BlockedUserDTO, 0, len(blocks))
	for _, block := range blocks {
		res = append(res, &dto.BlockedUserDTO{
			UserID:    block.BlockedID,
			Name:      block.Blocked.Name,
			AvatarURL: block.Blocked.AvatarURL,
			BlockedAt: block.CreatedAt,
		})
	}
	return res, nil
}
