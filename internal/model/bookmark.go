package model

import "time"

type Bookmark struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	UserID    uint64    `gorm:"not null;uniqueIndex:idx_user_post" json:"userId"`
	PostID    uint64    `gorm:"not null;uniqueIndex:idx_user_post" json:"postId"`
	CreatedAt time.Time `json:"createdAt"`

	Post Post `gorm:"foreignKey:PostID;references:ID" json:"-"`
}

func (Bookmark) TableName() string {
	return "bookmarks"
}
