package model

import "time"

// PostRating 帖子评分，producer_type 冗余存储用于跨商家对比
type PostRating struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	PostID       uint64    `gorm:"not null;index:idx_post_id" json:"postId"`
	UserID       uint64    `gorm:"not null" json:"userId"`
	Criteria     string    `gorm:"type:varchar(50);not null" json:"criteria"`
	Rating       float64   `gorm:"not null" json:"rating"`
	Overall      float64   `gorm:"not null" json:"overall"`
	ProducerType string    `gorm:"type:varchar(50);not null;index:idx_producer_type" json:"producerType"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (PostRating) TableName() string {
	return "post_ratings"
}
