package repository

import (
	"Marketplace/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

// 只读取展示和状态判断用到的列
var userProfileColumns = []string{"id", "name", "email", "avatar_url", "is_ban", "is_delete", "created_at"}

type UserRepo interface {
	GetUserById(ctx context.Context, id uint64) (*model.User, error)
}

type UserRepoImpl struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepo {
	return &UserRepoImpl{db: db}
}

// GetUserById 包含已注销用户，由调用方判断 IsDelete
func (s *UserRepoImpl) GetUserById(ctx context.Context, id uint64) (*model.User, error) {
	var user model.User
	err := s.db.WithContext(ctx).
		Select(userProfileColumns).
		Where("id = ?", id).
		Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
