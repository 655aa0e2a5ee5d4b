package dto

import "time"

type CreateBookingRequest struct {
	TripID     uint   `json:"tripId" binding:"required"`
	PackageID  uint   `json:"packageId" binding:"required"`
	Guests     int    `json:"guests" binding:"required,gte=1"`
	GuestName  string `json:"guestName,omitempty"`
	GuestEmail string `json:"guestEmail,omitempty"`
	GuestPhone string `json:"guestPhone,omitempty"`
}

type BookingResponse struct {
	ID          uint      `json:"id"`
	TripID      uint      `json:"tripId"`
	TripName    string    `json:"tripName"`
	PackageName string    `json:"packageName"`
	Guests      int       `json:"guests"`
	StartDate   string    `json:"startDate"`
	EndDate     string    `json:"endDate"`
	Status      int       `json:"status"`
	GuestName   string    `json:"guestName,omitempty"`
	GuestEmail  string    `json:"guestEmail,omitempty"`
	GuestPhone  string    `json:"guestPhone,omitempty"`
	Price       int       `json:"price"`
	TotalPrice  float64   `json:"totalPrice"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type ChangeBookingStatusRequest struct {
	ID     uint `json:"id" binding:"required"`
	Status int  `json:"status"`
}
