package model

import (
	"time"
)

type Post struct {
	ID         uint64    `gorm:"primaryKey" json:"id"`
	ProducerID uint64    `gorm:"not null;index:idx_producer_id" json:"producerId"`
	Title      string    `gorm:"type:varchar(255)" json:"title"`
	Content    string    `gorm:"not null" json:"content"`
	CreatedAt  time.Time `gorm:"index:idx_created_at" json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`

	// 关联关系
	Comments []PostComment `gorm:"foreignKey:PostID;references:ID" json:"-"`
	Ratings  []PostRating  `gorm:"foreignKey:PostID;references:ID" json:"-"`
}

func (Post) TableName() string {
	return "posts"
}
