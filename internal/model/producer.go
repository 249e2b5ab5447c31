package model

import "time"

type Producer struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	UserID      uint64    `gorm:"not null;uniqueIndex:idx_user_id" json:"userId"`
	Name        string    `gorm:"type:varchar(100);not null" json:"name"`
	Type        string    `gorm:"type:varchar(50);not null;index:idx_type" json:"type"`
	Description *string   `gorm:"type:varchar(1000)" json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Producer) TableName() string {
	return "producers"
}
