package models

import (
	"time"
)

// Booking status constants
const (
	BookingStatusPending   = 0
	BookingStatusConfirmed = 1
	BookingStatusCompleted = 2
	BookingStatusCancelled = 3
)

type Booking struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	UserID         *uint     `json:"userId"`
	User           *User     `json:"user" gorm:"foreignKey:UserID"`
	TripID         uint      `json:"tripId"`
	Trip           Trip      `json:"trip" gorm:"foreignKey:TripID"`
	PackageID      uint      `json:"packageId"`
	PackageName    string    `json:"packageName"` // Sao chép tên gói lúc đặt, gói có thể bị sửa sau
	Guests         int       `json:"guests"`
	StartDate      string    `json:"startDate"` // Sao chép từ chuyến đi lúc đặt, YYYY-MM-DD
	EndDate        string    `json:"endDate"`
	Status         int       `json:"status"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	GuestName      string    `json:"guestName,omitempty"`
	GuestEmail     string    `json:"guestEmail,omitempty"`
	GuestPhone     string    `json:"guestPhone,omitempty"`
	GuestSessionID string    `json:"-"` // Gắn từ X-Session-ID để nhóm đặt chỗ của cùng khách vãng lai
	Price          int       `json:"price"`      // Đơn giá gói lúc đặt
	TotalPrice     float64   `json:"totalPrice"` // Tổng giá
}

type BookingRequest struct {
	UserID     uint   `json:"userId"`
	TripID     uint   `json:"tripId"`
	PackageID  uint   `json:"packageId"`
	Guests     int    `json:"guests"`
	GuestName  string `json:"guestName,omitempty"`
	GuestEmail string `json:"guestEmail,omitempty"`
	GuestPhone string `json:"guestPhone,omitempty"`
}
