package repository

import (
	"Marketplace/internal/model"
	"context"

	"gorm.io/gorm"
)

type RatingRepo interface {
	GetAverageRating(ctx context.Context, producerID uint64) (float64, error)
	GetCriteriaAverages(ctx context.Context, producerID uint64) ([]*model.CriteriaAverage, error)
	GetTypeAverages(ctx context.Context) ([]*model.TypeAverage, error)
}

type RatingRepoImpl struct {
	db *gorm.DB
}

func NewRatingRepo(db *gorm.DB) RatingRepo {
	return &RatingRepoImpl{db: db}
}

func (s *RatingRepoImpl) producerRatings(ctx context.Context, producerID uint64) *gorm.DB {
	return s.db.WithContext(ctx).
		Model(&model.PostRating{}).
		Joins("JOIN posts ON posts.id = post_ratings.post_id").
		Where("posts.producer_id = ?", producerID)
}

// GetAverageRating 商家所有帖子评分的均值，无评分时为 0
func (s *RatingRepoImpl) GetAverageRating(ctx context.Context, producerID uint64) (float64, error) {
	var avg float64
	err := s.producerRatings(ctx, producerID).
		Select("COALESCE(AVG(post_ratings.rating), 0)").
		Scan(&avg).Error
	if err != nil {
		return 0, err
	}
	return avg, nil
}

// GetCriteriaAverages 按评分维度分组求均值
func (s *RatingRepoImpl) GetCriteriaAverages(ctx context.Context, producerID uint64) ([]*model.CriteriaAverage, error) {
	rows := make([]*model.CriteriaAverage, 0)
	err := s.producerRatings(ctx, producerID).
		Select("post_ratings.criteria AS criteria, AVG(post_ratings.rating) AS average").
		Group("post_ratings.criteria").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// GetTypeAverages 全站按商家类型分组的综合评分均值
func (s *RatingRepoImpl) GetTypeAverages(ctx context.Context) ([]*model.TypeAverage, error) {
	rows := make([]*model.TypeAverage, 0)
	err := s.db.WithContext(ctx).
		Model(&model.PostRating{}).
		Select("producer_type AS type, AVG(overall) AS avg").
		Group("producer_type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
