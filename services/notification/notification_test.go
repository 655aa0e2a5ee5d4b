package notification

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessageBuilder(t *testing.T) {
	msg := NewMessageBuilder(7, "Trekking Tà Năng").Build()
	assert.Contains(t, msg, "User 7")
	assert.Contains(t, msg, "Trekking Tà Năng")
}

func TestItineraryMessageBuilder(t *testing.T) {
	msg := NewItineraryMessageBuilder("Trekking Tà Năng", 3, 0).Build()
	assert.Contains(t, msg, "3 ngày")
	assert.NotContains(t, msg, "bị cắt")

	msg = NewItineraryMessageBuilder("Trekking Tà Năng", 2, 1).Build()
	assert.Contains(t, msg, "1 ngày cuối đã bị cắt")
}

func TestBookingMessageBuilder(t *testing.T) {
	msg := NewBookingMessageBuilder(15, "Biển Phú Quốc", 4).Build()
	assert.Contains(t, msg, "Biển Phú Quốc")
	assert.Contains(t, msg, "4")
}

func TestMelodyServiceNil(t *testing.T) {
	service := NewMelodyService(nil)
	assert.Error(t, service.SendMessage("x"))
}
