package model

import (
	"time"
)

type User struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex:idx_email" json:"email"`
	AvatarURL string    `gorm:"type:varchar(512);column:avatar_url;default:'default_avatar.png'" json:"avatarUrl"`
	IsBan     bool      `gorm:"type:tinyint(1);default:0" json:"-"`
	IsDelete  bool      `gorm:"type:tinyint(1);default:0" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}
