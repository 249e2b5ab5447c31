package repository

import (
	"Marketplace/internal/model"
	"context"

	"gorm.io/gorm"
)

type BookingRepo interface {
	CountBookingsByRestaurant(ctx context.Context, restaurantID uint64) (int64, error)
	CountBookingsByDay(ctx context.Context, restaurantID uint64, window *model.TimeRange) ([]*model.DailyCount, error)
}

type BookingRepoImpl struct {
	db *gorm.DB
}

func NewBookingRepo(db *gorm.DB) BookingRepo {
	return &BookingRepoImpl{db: db}
}

// CountBookingsByRestaurant restaurantID 为商家所属用户 ID
func (s *BookingRepoImpl) CountBookingsByRestaurant(ctx context.Context, restaurantID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&model.Booking{}).
		Where("restaurant_id = ?", restaurantID).
		Count(&count).Error
	return count, err
}

func (s *BookingRepoImpl) CountBookingsByDay(ctx context.Context, restaurantID uint64, window *model.TimeRange) ([]*model.DailyCount, error) {
	return countByDay(ctx, s.db, &model.Booking{}, window, func(db *gorm.DB) *gorm.DB {
		return db.Where("restaurant_id = ?", restaurantID)
	})
}
