package dto

import "time"

// OverviewDTO 商家概览
type OverviewDTO struct {
	TotalPosts     int64  `json:"totalPosts"`
	TotalBookings  int64  `json:"totalBookings"`
	TotalFollowers int64  `json:"totalFollowers"`
	AverageRating  string `json:"averageRating"` // 保留两位小数
}

// FollowerDTO 粉丝信息
type FollowerDTO struct {
	ID         uint64    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	FollowedAt time.Time `json:"followedAt"`
}

// UserInsightsDTO 粉丝洞察，TotalFollowers 为本页条数
type UserInsightsDTO struct {
	TotalFollowers  int            `json:"totalFollowers"`
	RecentFollowers []*FollowerDTO `json:"recentFollowers"`
}

// TrendQueryDTO 趋势查询参数
type TrendQueryDTO struct {
	Metric string `form:"metric" validate:"omitempty,max=32"`
	From   string `form:"from" validate:"omitempty,max=64"`
	To     string `form:"to" validate:"omitempty,max=64"`
}

// TrendPointDTO 趋势点
type TrendPointDTO struct {
	Date  string `json:"date"`
	Value int64  `json:"value"`
}

// TrendDTO 趋势返回包装
type TrendDTO struct {
	Metric string           `json:"metric"`
	Series []*TrendPointDTO `json:"series"`
}

// CriteriaRatingDTO 单个评分维度
type CriteriaRatingDTO struct {
	Criteria string `json:"criteria"`
	Average  string `json:"average"`
}

type RatingsDTO struct {
	Ratings []*CriteriaRatingDTO `json:"ratings"`
}

// CommentAuthorDTO 评论用户
type CommentAuthorDTO struct {
	ID        uint64 `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
}

// CommentDTO 评论
type CommentDTO struct {
	ID        uint64            `json:"id"`
	PostID    uint64            `json:"postId"`
	Content   string            `json:"content"`
	CreatedAt time.Time         `json:"createdAt"`
	Author    *CommentAuthorDTO `json:"user"`
}

type FeedbackDTO struct {
	Comments []*CommentDTO `json:"comments"`
}

// TypeBenchmarkDTO 同类型商家综合评分
type TypeBenchmarkDTO struct {
	Type string `json:"type"`
	Avg  string `json:"avg"`
}

type BenchmarkDTO struct {
	MyType    string              `json:"myType"`
	Benchmark []*TypeBenchmarkDTO `json:"benchmark"`
}
