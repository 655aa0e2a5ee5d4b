package builders

import (
	"betravel/models"
)

// BookingBuilder giúp tạo booking theo từng bước
type BookingBuilder struct {
	booking *models.Booking
}

// NewBookingBuilder tạo instance mới của BookingBuilder
func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		booking: &models.Booking{},
	}
}

// WithUser thêm thông tin user
func (b *BookingBuilder) WithUser(userID uint) *BookingBuilder {
	b.booking.UserID = &userID
	return b
}

// WithTrip thêm chuyến đi
func (b *BookingBuilder) WithTrip(tripID uint) *BookingBuilder {
	b.booking.TripID = tripID
	return b
}

// WithPackage thêm gói đã chọn
func (b *BookingBuilder) WithPackage(packageID uint) *BookingBuilder {
	b.booking.PackageID = packageID
	return b
}

// WithGuests thêm số khách
func (b *BookingBuilder) WithGuests(guests int) *BookingBuilder {
	b.booking.Guests = guests
	return b
}

// WithStatus thêm trạng thái
func (b *BookingBuilder) WithStatus(status int) *BookingBuilder {
	b.booking.Status = status
	return b
}

// WithGuestInfo thêm thông tin khách
func (b *BookingBuilder) WithGuestInfo(guestName, guestPhone, guestEmail string) *BookingBuilder {
	b.booking.GuestName = guestName
	b.booking.GuestPhone = guestPhone
	b.booking.GuestEmail = guestEmail
	return b
}

// WithGuestSession gắn session id của khách vãng lai
func (b *BookingBuilder) WithGuestSession(sessionID string) *BookingBuilder {
	b.booking.GuestSessionID = sessionID
	return b
}

// WithTotalPrice thêm tổng giá
func (b *BookingBuilder) WithTotalPrice(totalPrice float64) *BookingBuilder {
	b.booking.TotalPrice = totalPrice
	return b
}

// Build tạo booking hoàn chỉnh
func (b *BookingBuilder) Build() *models.Booking {
	return b.booking
}
