package model

import "time"

// Interest 用户向商家发起的意向/邀约
type Interest struct {
	ID         uint64    `gorm:"primaryKey" json:"id"`
	UserID     uint64    `gorm:"not null;uniqueIndex:idx_user_producer" json:"userId"`
	ProducerID uint64    `gorm:"not null;uniqueIndex:idx_user_producer;index:idx_producer_id" json:"producerId"`
	Message    string    `gorm:"type:varchar(500)" json:"message"`
	CreatedAt  time.Time `json:"createdAt"`

	User User `gorm:"foreignKey:UserID;references:ID" json:"user"`
}

func (Interest) TableName() string {
	return "interests"
}
