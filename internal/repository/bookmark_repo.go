package repository

import (
	"Marketplace/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type BookmarkRepo interface {
	GetBookmark(ctx context.Context, userID, postID uint64) (*model.Bookmark, error)
	CreateBookmark(ctx context.Context, bookmark *model.Bookmark) error
	DeleteBookmark(ctx context.Context, userID, postID uint64) error
	GetBookmarks(ctx context.Context, userID uint64, limit, offset int) ([]*model.Bookmark, error)
}

type BookmarkRepoImpl struct {
	db *gorm.DB
}

func NewBookmarkRepo(db *gorm.DB) BookmarkRepo {
	return &BookmarkRepoImpl{db: db}
}

func (s *BookmarkRepoImpl) GetBookmark(ctx context.Context, userID, postID uint64) (*model.Bookmark, error) {
	var bookmark model.Bookmark
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		First(&bookmark).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &bookmark, nil
}

func (s *BookmarkRepoImpl) CreateBookmark(ctx context.Context, bookmark *model.Bookmark) error {
	return s.db.WithContext(ctx).Create(bookmark).Error
}

func (s *BookmarkRepoImpl) DeleteBookmark(ctx context.Context, userID, postID uint64) error {
	return s.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&model.Bookmark{}).Error
}

// GetBookmarks 获取用户收藏列表，附带帖子信息
func (s *BookmarkRepoImpl) GetBookmarks(ctx context.Context, userID uint64, limit, offset int) ([]*model.Bookmark, error) {
	bookmarks := make([]*model.Bookmark, 0)
	err := s.db.WithContext(ctx).
		Preload("Post").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&bookmarks).Error
	if err != nil {
		return nil, err
	}
	return bookmarks, nil
}
