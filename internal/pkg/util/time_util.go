package util

import (
	"errors"
	"time"
)

var ErrInvalidDate = errors.New("invalid date")

// GetMidnight 当天零点
func GetMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// UntilMidnight 距离下一个零点的时长
func UntilMidnight(now time.Time) time.Duration {
	return GetMidnight(now).AddDate(0, 0, 1).Sub(now)
}

// ParseDateBound 解析 ISO-8601 日期或时间。
// 纯日期作为上界时取当天最后一刻，其余按原值返回。
func ParseDateBound(s string, upper bool, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02T15:04:05", s, loc); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(time.DateOnly, s, loc)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	if upper {
		return t.AddDate(0, 0, 1).Add(-time.Nanosecond), nil
	}
	return t, nil
}
