package notification

import (
	"fmt"

	"github.com/olahol/melody"
)

type Service interface {
	SendMessage(message string) error
}

type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(message string) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return s.m.Broadcast([]byte(message))
}

type MessageBuilder struct {
	userID   uint
	tripName string
}

func NewMessageBuilder(userID uint, tripName string) *MessageBuilder {
	return &MessageBuilder{
		userID:   userID,
		tripName: tripName,
	}
}

func (b *MessageBuilder) Build() string {
	return fmt.Sprintf("🔔 User %d: chuyến đi \"%s\" có cập nhật mới.", b.userID, b.tripName)
}

// ItineraryMessageBuilder dựng thông báo khi lịch trình được tính lại theo ngày mới
type ItineraryMessageBuilder struct {
	tripName string
	days     int
	dropped  int
}

func NewItineraryMessageBuilder(tripName string, days int, dropped int) *ItineraryMessageBuilder {
	return &ItineraryMessageBuilder{
		tripName: tripName,
		days:     days,
		dropped:  dropped,
	}
}

func (b *ItineraryMessageBuilder) Build() string {
	msg := fmt.Sprintf("🗓️ Lịch trình của \"%s\" đã được cập nhật: %d ngày.", b.tripName, b.days)
	if b.dropped > 0 {
		msg += fmt.Sprintf(" %d ngày cuối đã bị cắt do rút ngắn khoảng ngày.", b.dropped)
	}
	return msg
}

// BookingMessageBuilder dựng thông báo cho người tổ chức khi có đặt chỗ mới
type BookingMessageBuilder struct {
	bookingID uint
	tripName  string
	guests    int
}

func NewBookingMessageBuilder(bookingID uint, tripName string, guests int) *BookingMessageBuilder {
	return &BookingMessageBuilder{
		bookingID: bookingID,
		tripName:  tripName,
		guests:    guests,
	}
}

func (b *BookingMessageBuilder) Build() string {
	return fmt.Sprintf("🎒 Đặt chỗ #%d: %d khách cho chuyến \"%s\".", b.bookingID, b.guests, b.tripName)
}
