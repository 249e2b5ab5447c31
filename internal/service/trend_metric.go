package service

import (
	"Marketplace/internal/model"
	"context"
)

// TrendMetric 趋势指标
type TrendMetric string

const (
	TrendBookings  TrendMetric = "bookings"
	TrendLikes     TrendMetric = "likes"
	TrendFollowers TrendMetric = "followers"
)

// ParseTrendMetric 空值默认为 bookings，其余原样保留，未知指标在查询时返回空序列
func ParseTrendMetric(s string) TrendMetric {
	if s == "" {
		return TrendBookings
	}
	return TrendMetric(s)
}

// trendQuery 单个指标的按天计数查询
type trendQuery func(ctx context.Context, producer *model.Producer, window *model.TimeRange) ([]*model.DailyCount, error)

// trendQueryFor 返回指标对应的查询，未知指标返回 false
func (s *dashboardServiceImpl) trendQueryFor(metric TrendMetric) (trendQuery, bool) {
	switch metric {
	case TrendBookings:
		return func(ctx context.Context, producer *model.Producer, window *model.TimeRange) ([]*model.DailyCount, error) {
			return s.bookingRepo.CountBookingsByDay(ctx, producer.UserID, window)
		}, true
	case TrendLikes:
		return func(ctx context.Context, producer *model.Producer, window *model.TimeRange) ([]*model.DailyCount, error) {
			return s.postRepo.CountPostsByDay(ctx, producer.ID, window)
		}, true
	case TrendFollowers:
		return func(ctx context.Context, producer *model.Producer, window *model.TimeRange) ([]*model.DailyCount, error) {
			return s.followRepo.CountFollowsByDay(ctx, producer.ID, model.FollowStatusApproved, window)
		}, true
	default:
		return nil, false
	}
}
