package dto

import "time"

type CreateReviewRequest struct {
	TripID  uint   `json:"tripId" binding:"required"`
	Star    int    `json:"star" binding:"required"`
	Comment string `json:"comment" binding:"required"`
}

type ReviewResponse struct {
	ID         uint      `json:"id"`
	UserID     uint      `json:"userId"`
	UserName   string    `json:"userName"`
	UserAvatar string    `json:"userAvatar"`
	Star       int       `json:"star"`
	Comment    string    `json:"comment"`
	CreateAt   time.Time `json:"createdAt"`
}
