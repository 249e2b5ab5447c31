package model

import "time"

// Booking 预约记录，RestaurantID 指向商家所属用户 ID
type Booking struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	UserID       uint64    `gorm:"not null;index:idx_user_id" json:"userId"`
	RestaurantID uint64    `gorm:"not null;index:idx_restaurant_id" json:"restaurantId"`
	BookedFor    time.Time `gorm:"not null" json:"bookedFor"`
	Guests       int       `gorm:"not null;default:1" json:"guests"`
	CreatedAt    time.Time `gorm:"index:idx_created_at" json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (Booking) TableName() string {
	return "bookings"
}
