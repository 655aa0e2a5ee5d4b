package builders

import (
	"testing"

	"betravel/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingBuilder(t *testing.T) {
	booking := NewBookingBuilder().
		WithUser(5).
		WithTrip(1).
		WithPackage(2).
		WithGuests(3).
		WithStatus(models.BookingStatusPending).
		WithTotalPrice(7500000).
		Build()

	require.NotNil(t, booking.UserID)
	assert.Equal(t, uint(5), *booking.UserID)
	assert.Equal(t, uint(1), booking.TripID)
	assert.Equal(t, uint(2), booking.PackageID)
	assert.Equal(t, 3, booking.Guests)
	assert.Equal(t, models.BookingStatusPending, booking.Status)
	assert.Equal(t, float64(7500000), booking.TotalPrice)
}

func TestBookingBuilderGuest(t *testing.T) {
	booking := NewBookingBuilder().
		WithTrip(1).
		WithPackage(2).
		WithGuests(2).
		WithGuestInfo("Nguyễn Văn A", "0901234567", "a@example.com").
		Build()

	assert.Nil(t, booking.UserID)
	assert.Equal(t, "Nguyễn Văn A", booking.GuestName)
	assert.Equal(t, "0901234567", booking.GuestPhone)
	assert.Equal(t, "a@example.com", booking.GuestEmail)
}
