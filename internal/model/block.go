package model

import "time"

type Block struct {
	BlockerID uint64    `gorm:"primaryKey" json:"blockerId"`
	BlockedID uint64    `gorm:"primaryKey;index:idx_blocked_id" json:"blockedId"`
	CreatedAt time.Time `json:"createdAt"`

	Blocked User `gorm:"foreignKey:BlockedID;references:ID" json:"blocked"`
}

func (Block) TableName() string {
	return "user_blocks"
}
