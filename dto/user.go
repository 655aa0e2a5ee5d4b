package dto

import "time"

type UserResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber"`
	Avatar      string    `json:"avatar"`
	Role        int       `json:"role"`
	Status      int       `json:"status"`
	Gender      int       `json:"gender"`
	DateOfBirth string    `json:"dateOfBirth"`
	Bio         string    `json:"bio"`
	IsVerified  bool      `json:"isVerified"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type UpdateUserRequest struct {
	ID          uint   `json:"id" binding:"required"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	Avatar      string `json:"avatar"`
	Gender      int    `json:"gender"`
	DateOfBirth string `json:"dateOfBirth"`
	Bio         string `json:"bio"`
}

type ChangeUserStatusRequest struct {
	ID     uint `json:"id" binding:"required"`
	Status int  `json:"status"`
}
