package dto

import "time"

// CreateInterestDTO 发起意向
type CreateInterestDTO struct {
	ProducerID uint64 `json:"producerId" binding:"required" validate:"required,gt=0"`
	Message    string `json:"message" validate:"max=500"`
}

// InterestDTO 意向
type InterestDTO struct {
	ID        uint64    `json:"id"`
	UserID    uint64    `json:"userId"`
	UserName  string    `json:"userName"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}
