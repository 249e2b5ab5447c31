package repository

import (
	"Marketplace/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type CommentRepo interface {
	GetComment(ctx context.Context, id uint64) (*model.PostComment, error)
	GetRecentCommentsByProducer(ctx context.Context, producerID uint64, limit int) ([]*model.PostComment, error)
}

type CommentRepoImpl struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) CommentRepo {
	return &CommentRepoImpl{db: db}
}

func (s *CommentRepoImpl) GetComment(ctx context.Context, id uint64) (*model.PostComment, error) {
	var comment model.PostComment
	err := s.db.WithContext(ctx).First(&comment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &comment, nil
}

// GetRecentCommentsByProducer 商家所有帖子下最新的评论
func (s *CommentRepoImpl) GetRecentCommentsByProducer(ctx context.Context, producerID uint64, limit int) ([]*model.PostComment, error) {
	comments := make([]*model.PostComment, 0)
	err := s.db.WithContext(ctx).
		Preload("User").
		Joins("JOIN posts ON posts.id = post_comments.post_id").
		Where("posts.producer_id = ?", producerID).
		Order("post_comments.created_at DESC").
		Limit(limit).
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}
