package repository

import (
	"Marketplace/internal/model"
	"context"

	"gorm.io/gorm"
)

// dayBucket 将 created_at 截断到日，输出 yyyy-mm-dd 字符串
const dayBucket = "DATE_FORMAT(created_at, '%Y-%m-%d')"

// countByDay 对 scope 限定的记录按天分组计数，window 为空时不限时间
func countByDay(ctx context.Context, db *gorm.DB, table any, window *model.TimeRange, scope func(*gorm.DB) *gorm.DB) ([]*model.DailyCount, error) {
	rows := make([]*model.DailyCount, 0)
	query := scope(db.WithContext(ctx).
		Model(table).
		Select(dayBucket + " AS date, COUNT(*) AS value"))

	if window != nil {
		query = query.Where("created_at BETWEEN ? AND ?", window.From, window.To)
	}

	err := query.
		Group(dayBucket).
		Order("date ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
