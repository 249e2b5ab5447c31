package dto

import "time"

// BookmarkToggleDTO 收藏切换结果
type BookmarkToggleDTO struct {
	Bookmarked bool `json:"bookmarked"`
}

// BookmarkDTO 收藏列表项
type BookmarkDTO struct {
	ID        uint64    `json:"id"`
	PostID    uint64    `json:"postId"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
}
