package dto

import "time"

// BlockedUserDTO 被拉黑用户
type BlockedUserDTO struct {
	UserID    uint64    `json:"userId"`
	Name      string    `json:"name"`
	AvatarURL string    `json:"avatarUrl"`
	BlockedAt time.Time `json:"blockedAt"`
}
