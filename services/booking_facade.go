package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"betravel/constants"
	"betravel/models"
)

// BookingFacade đơn giản hóa việc tương tác với các service
type BookingFacade struct {
	bookingService *BookingService
	pricingService *PricingService
	emailService   *EmailService
}

// BookingService xử lý logic liên quan đến booking
type BookingService struct {
	db *gorm.DB
}

// PricingService tính giá theo gói đã chọn
type PricingService struct {
	db *gorm.DB
}

// EmailService xử lý logic gửi email xác nhận
type EmailService struct {
	db *gorm.DB
}

// NewBookingFacade tạo instance mới của BookingFacade
func NewBookingFacade(db *gorm.DB) *BookingFacade {
	return &BookingFacade{
		bookingService: &BookingService{
			db: db,
		},
		pricingService: &PricingService{
			db: db,
		},
		emailService: &EmailService{
			db: db,
		},
	}
}

// Quote tính tổng giá cho gói và số khách. Giá theo đầu người thì nhân
// với số khách, giá trọn gói thì giữ nguyên.
func (p *PricingService) Quote(pkg *models.TripPackage, guests int) float64 {
	if pkg.PerPerson {
		return float64(pkg.Price) * float64(guests)
	}
	return float64(pkg.Price)
}

// SendConfirmation gửi email xác nhận, bỏ qua nếu không có địa chỉ
func (e *EmailService) SendConfirmation(booking *models.Booking, tripName string) error {
	email := booking.GuestEmail
	if email == "" && booking.UserID != nil {
		var user models.User
		if err := e.db.First(&user, *booking.UserID).Error; err != nil {
			return err
		}
		email = user.Email
	}
	if email == "" {
		return nil
	}
	return SendBookingEmail(email, booking.ID, tripName, booking.TotalPrice, booking.StartDate, booking.EndDate)
}

// SendCancellation gửi email báo hủy
func (e *EmailService) SendCancellation(booking *models.Booking, tripName string) error {
	email := booking.GuestEmail
	if email == "" && booking.UserID != nil {
		var user models.User
		if err := e.db.First(&user, *booking.UserID).Error; err != nil {
			return err
		}
		email = user.Email
	}
	if email == "" {
		return nil
	}
	mess := fmt.Sprintf("Đặt chỗ #%d cho chuyến \"%s\" đã được hủy.", booking.ID, tripName)
	return SendNews(email, "Hủy đặt chỗ", mess)
}

// CreateBooking tạo booking mới: xác thực, chốt giá, lưu và gửi email
func (f *BookingFacade) CreateBooking(booking *models.Booking) error {
	// Validate booking
	if err := f.bookingService.Validate(booking); err != nil {
		return err
	}

	var trip models.Trip
	if err := f.bookingService.db.Preload("Packages").First(&trip, booking.TripID).Error; err != nil {
		return fmt.Errorf("không tìm thấy chuyến đi: %w", err)
	}

	if trip.Status != constants.TripStatusPublished {
		return errors.New("chuyến đi không nhận đặt chỗ")
	}

	var pkg *models.TripPackage
	for i := range trip.Packages {
		if trip.Packages[i].ID == booking.PackageID {
			pkg = &trip.Packages[i]
			break
		}
	}
	if pkg == nil {
		return errors.New("gói không thuộc chuyến đi này")
	}

	// Sao chép dữ liệu chuyến đi tại thời điểm đặt
	booking.PackageName = pkg.Name
	booking.Price = pkg.Price
	booking.StartDate = trip.StartDate
	booking.EndDate = trip.EndDate
	booking.Status = models.BookingStatusPending
	booking.TotalPrice = f.pricingService.Quote(pkg, booking.Guests)

	// Create booking
	if err := f.bookingService.Create(booking); err != nil {
		return err
	}

	// Send confirmation, lỗi email không làm hỏng booking
	if err := f.emailService.SendConfirmation(booking, trip.Name); err != nil {
		fmt.Println("❌ Lỗi gửi email xác nhận:", err)
	}

	return nil
}

// CancelBooking hủy booking
func (f *BookingFacade) CancelBooking(bookingID uint) error {
	// Get booking
	booking, err := f.bookingService.GetByID(bookingID)
	if err != nil {
		return err
	}

	if booking.Status == models.BookingStatusCompleted {
		return errors.New("không thể hủy đặt chỗ đã hoàn thành")
	}

	// Cancel booking
	if err := f.bookingService.Cancel(booking); err != nil {
		return err
	}

	// Send cancellation notification, lỗi email không làm hỏng việc hủy
	if err := f.emailService.SendCancellation(booking, booking.Trip.Name); err != nil {
		fmt.Println("❌ Lỗi gửi email hủy:", err)
	}

	return nil
}

// ConfirmBooking xác nhận booking
func (f *BookingFacade) ConfirmBooking(bookingID uint) error {
	booking, err := f.bookingService.GetByID(bookingID)
	if err != nil {
		return err
	}

	if booking.Status != models.BookingStatusPending {
		return errors.New("chỉ xác nhận được đặt chỗ đang chờ")
	}

	return f.bookingService.Confirm(booking)
}

// CompleteBooking hoàn thành booking
func (f *BookingFacade) CompleteBooking(bookingID uint) error {
	// Get booking
	booking, err := f.bookingService.GetByID(bookingID)
	if err != nil {
		return err
	}

	// Complete booking
	return f.bookingService.Complete(booking)
}
