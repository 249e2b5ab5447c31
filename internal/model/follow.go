package model

import "time"

const (
	FollowStatusPending  = "Pending"
	FollowStatusApproved = "Approved"
)

type Follow struct {
	ID         uint64    `gorm:"primaryKey" json:"id"`
	FollowerID uint64    `gorm:"not null;uniqueIndex:idx_follower_producer" json:"followerId"`
	ProducerID uint64    `gorm:"not null;uniqueIndex:idx_follower_producer;index:idx_producer_status" json:"producerId"`
	Status     string    `gorm:"type:varchar(20);not null;default:'Pending';index:idx_producer_status" json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`

	Follower User `gorm:"foreignKey:FollowerID;references:ID" json:"follower"`
}

func (Follow) TableName() string {
	return "follows"
}
