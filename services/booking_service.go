package services

import (
	"errors"

	"betravel/commands"
	"betravel/models"
)

// Validate kiểm tra tính hợp lệ của booking
func (s *BookingService) Validate(booking *models.Booking) error {
	if booking.TripID == 0 {
		return errors.New("trip ID is required")
	}
	if booking.PackageID == 0 {
		return errors.New("package ID is required")
	}
	if booking.Guests <= 0 {
		return errors.New("at least one guest is required")
	}
	if booking.UserID == nil {
		// Khách vãng lai phải để lại thông tin liên hệ
		if booking.GuestName == "" || booking.GuestEmail == "" || booking.GuestPhone == "" {
			return errors.New("guest contact info is required")
		}
	}
	return nil
}

// Create tạo booking mới
func (s *BookingService) Create(booking *models.Booking) error {
	return commands.NewCreateBookingCommand(booking, s.db).Execute()
}

// GetByID lấy booking theo ID
func (s *BookingService) GetByID(bookingID uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.Preload("Trip").First(&booking, bookingID).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

// Cancel hủy booking
func (s *BookingService) Cancel(booking *models.Booking) error {
	booking.Status = models.BookingStatusCancelled
	return commands.NewUpdateBookingCommand(booking, s.db).Execute()
}

// Confirm xác nhận booking
func (s *BookingService) Confirm(booking *models.Booking) error {
	booking.Status = models.BookingStatusConfirmed
	return commands.NewUpdateBookingCommand(booking, s.db).Execute()
}

// Complete hoàn thành booking
func (s *BookingService) Complete(booking *models.Booking) error {
	booking.Status = models.BookingStatusCompleted
	return commands.NewUpdateBookingCommand(booking, s.db).Execute()
}
