package services

import (
	"testing"

	"betravel/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPricingServiceQuote(t *testing.T) {
	pricing := &PricingService{}

	perPerson := &models.TripPackage{Price: 2500000, PerPerson: true}
	assert.Equal(t, float64(7500000), pricing.Quote(perPerson, 3))

	flat := &models.TripPackage{Price: 10000000, PerPerson: false}
	assert.Equal(t, float64(10000000), pricing.Quote(flat, 3))
}

func TestBookingServiceValidate(t *testing.T) {
	service := &BookingService{}

	userID := uint(5)
	valid := &models.Booking{UserID: &userID, TripID: 1, PackageID: 2, Guests: 2}
	require.NoError(t, service.Validate(valid))

	missing := &models.Booking{TripID: 1, PackageID: 2, Guests: 0}
	assert.Error(t, service.Validate(missing))

	// khách vãng lai phải có thông tin liên hệ
	guest := &models.Booking{TripID: 1, PackageID: 2, Guests: 2}
	assert.Error(t, service.Validate(guest))

	guest.GuestName = "Nguyễn Văn A"
	guest.GuestPhone = "0901234567"
	guest.GuestEmail = "a@example.com"
	assert.NoError(t, service.Validate(guest))
}
