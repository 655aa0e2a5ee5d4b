package models

import (
	"time"
)

type User struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Name          string    `gorm:"default:New User" json:"name"`
	Email         string    `gorm:"unique" json:"email"`
	Password      string    `json:"password"`
	IsVerified    bool      `gorm:"default:false" json:"is_verified"`
	Code          string    `json:"code"`
	CodeCreatedAt time.Time `gorm:"autoCreateTime" json:"codeCreatedAt"`
	PhoneNumber   string    `gorm:"unique;type:varchar(11);not null" json:"phoneNumber"`
	Avatar        string    `json:"avatar"`
	Role          int       `gorm:"default:0" json:"role"` // 0: khách hàng, 1: admin, 2: người tổ chức
	Status        int       `gorm:"default:0" json:"status"`
	Gender        int       `json:"gender"`
	DateOfBirth   string    `gorm:"default:'01/01/2000'" json:"dateOfBirth"`
	Bio           string    `json:"bio"` // Giới thiệu bản thân, hiển thị ở block người tổ chức
	Trips         []Trip    `json:"trips,omitempty" gorm:"foreignKey:UserID"`
	Bookings      []Booking `json:"bookings,omitempty" gorm:"foreignKey:UserID"`
}
