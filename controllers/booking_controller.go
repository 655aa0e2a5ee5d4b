package controllers

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"betravel/builders"
	"betravel/constants"
	"betravel/dto"
	middlewares "betravel/middleware"
	"betravel/models"
	"betravel/response"
	"betravel/services"
	"betravel/services/notification"
	"betravel/validator"
)

type BookingController struct {
	DB     *gorm.DB
	Cache  *services.Cache
	Facade *services.BookingFacade
	Melody *melody.Melody
}

func NewBookingController(db *gorm.DB, redisCli *redis.Client, m *melody.Melody) BookingController {
	return BookingController{
		DB:     db,
		Cache:  services.NewCache(redisCli),
		Facade: services.NewBookingFacade(db),
		Melody: m,
	}
}

func bookingToResponse(booking models.Booking) dto.BookingResponse {
	return dto.BookingResponse{
		ID:          booking.ID,
		TripID:      booking.TripID,
		TripName:    booking.Trip.Name,
		PackageName: booking.PackageName,
		Guests:      booking.Guests,
		StartDate:   booking.StartDate,
		EndDate:     booking.EndDate,
		Status:      booking.Status,
		GuestName:   booking.GuestName,
		GuestEmail:  booking.GuestEmail,
		GuestPhone:  booking.GuestPhone,
		Price:       booking.Price,
		TotalPrice:  booking.TotalPrice,
		CreatedAt:   booking.CreatedAt,
		UpdatedAt:   booking.UpdatedAt,
	}
}

func (b BookingController) invalidateBookingCaches(ctx context.Context, organizerID uint) {
	keys := []string{"bookings:all"}
	if organizerID != 0 {
		keys = append(keys, fmt.Sprintf("bookings:organizer:%d", organizerID))
	}
	_ = b.Cache.Invalidate(ctx, keys...)
}

// CreateBooking nhận đặt chỗ từ người dùng đã đăng nhập hoặc khách vãng lai
func (b BookingController) CreateBooking(c *gin.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	builder := builders.NewBookingBuilder().
		WithTrip(req.TripID).
		WithPackage(req.PackageID).
		WithGuests(req.Guests).
		WithStatus(models.BookingStatusPending)

	// Có token thì gắn user, không thì gắn session để nhóm đặt chỗ của khách
	if userID := c.GetUint("userID"); userID != 0 {
		builder = builder.WithUser(userID)
	} else {
		builder = builder.WithGuestSession(middlewares.GuestSessionID(c))
	}
	builder = builder.WithGuestInfo(req.GuestName, req.GuestPhone, req.GuestEmail)

	booking := builder.Build()

	if err := validator.ValidateBooking(booking); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := b.Facade.CreateBooking(booking); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	// Báo cho người tổ chức qua WebSocket, lỗi không chặn response
	var trip models.Trip
	if err := b.DB.First(&trip, booking.TripID).Error; err == nil {
		notificationService := notification.NewMelodyService(b.Melody)
		message := notification.NewBookingMessageBuilder(booking.ID, trip.Name, booking.Guests).Build()
		if err := notificationService.SendMessage(message); err != nil {
			log.Printf("Lỗi gửi thông báo đặt chỗ: %v", err)
		}
		b.invalidateBookingCaches(c.Request.Context(), trip.UserID)
	}

	response.SuccessWithMessage(c, "Đặt chỗ thành công", bookingToResponse(*booking))
}

// GetBookings trả về danh sách đặt chỗ cho trang quản trị, có filter và phân trang
func (b BookingController) GetBookings(c *gin.Context) {
	currentUserID := c.GetUint("userID")
	currentUserRole := c.GetInt("userRole")

	var cacheKey string
	if currentUserRole == constants.RoleAdmin {
		cacheKey = "bookings:all"
	} else if currentUserRole == constants.RoleOrganizer {
		cacheKey = fmt.Sprintf("bookings:organizer:%d", currentUserID)
	} else {
		response.Forbidden(c)
		return
	}

	var allBookings []models.Booking

	if hit, err := b.Cache.Fetch(c.Request.Context(), cacheKey, &allBookings); err != nil || !hit {
		baseTx := b.DB.Model(&models.Booking{}).
			Preload("Trip").
			Preload("User")

		if currentUserRole == constants.RoleOrganizer {
			// Người tổ chức chỉ thấy đặt chỗ thuộc các chuyến đi của mình
			baseTx = baseTx.Where("bookings.trip_id IN (?)",
				b.DB.Model(&models.Trip{}).Select("id").Where("user_id = ?", currentUserID))
		}

		if err := baseTx.Find(&allBookings).Error; err != nil {
			response.ServerError(c)
			return
		}

		if err := b.Cache.Store(c.Request.Context(), cacheKey, allBookings, 10*time.Minute); err != nil {
			log.Printf("Lỗi khi lưu danh sách đặt chỗ vào Redis: %v", err)
		}
	}

	// Lấy các tham số filter từ query
	pageStr := c.Query("page")
	limitStr := c.Query("limit")
	nameFilter := c.Query("name")
	phoneStr := c.Query("phoneNumber")
	statusFilter := c.Query("status")
	fromDateStr := c.Query("fromDate")
	toDateStr := c.Query("toDate")

	page := 0
	limit := 10
	if pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}
	if limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	// Áp dụng bộ lọc
	filteredBookings := make([]models.Booking, 0)
	for _, booking := range allBookings {
		if nameFilter != "" {
			decodedName, _ := url.QueryUnescape(nameFilter)
			if !strings.Contains(strings.ToLower(booking.Trip.Name), strings.ToLower(decodedName)) {
				continue
			}
		}
		if phoneStr != "" {
			if booking.User != nil && !strings.Contains(strings.ToLower(booking.User.PhoneNumber), strings.ToLower(phoneStr)) {
				continue
			}
			if booking.User == nil && !strings.Contains(strings.ToLower(booking.GuestPhone), strings.ToLower(phoneStr)) {
				continue
			}
		}
		if statusFilter != "" {
			parsedStatusFilter, err := strconv.Atoi(statusFilter)
			if err == nil && booking.Status != parsedStatusFilter {
				continue
			}
		}
		if fromDateStr != "" {
			fromDate, err := time.Parse(services.DateLayout, fromDateStr)
			if err != nil {
				response.BadRequest(c, "Sai định dạng fromDate")
				return
			}
			if booking.CreatedAt.Before(fromDate) {
				continue
			}
		}
		if toDateStr != "" {
			toDate, err := time.Parse(services.DateLayout, toDateStr)
			if err != nil {
				response.BadRequest(c, "Sai định dạng toDate")
				return
			}
			if booking.CreatedAt.After(toDate.AddDate(0, 0, 1)) {
				continue
			}
		}
		filteredBookings = append(filteredBookings, booking)
	}

	totalFiltered := len(filteredBookings)

	//Xếp theo update mới nhất
	sort.Slice(filteredBookings, func(i, j int) bool {
		return filteredBookings[i].UpdatedAt.After(filteredBookings[j].UpdatedAt)
	})

	// Áp dụng phân trang
	start := page * limit
	end := start + limit
	if start >= totalFiltered {
		filteredBookings = []models.Booking{}
	} else if end > totalFiltered {
		filteredBookings = filteredBookings[start:]
	} else {
		filteredBookings = filteredBookings[start:end]
	}

	var bookingResponses []dto.BookingResponse
	for _, booking := range filteredBookings {
		bookingResponses = append(bookingResponses, bookingToResponse(booking))
	}

	response.SuccessWithPagination(c, bookingResponses, page, limit, totalFiltered)
}

// GetBookingDetail trả về chi tiết một đặt chỗ
func (b BookingController) GetBookingDetail(c *gin.Context) {
	currentUserID := c.GetUint("userID")
	currentUserRole := c.GetInt("userRole")

	var booking models.Booking
	if err := b.DB.Preload("Trip").Preload("User").First(&booking, c.Param("id")).Error; err != nil {
		response.NotFound(c)
		return
	}

	// Chỉ admin, người tổ chức của chuyến đi hoặc chủ đặt chỗ được xem
	allowed := currentUserRole == constants.RoleAdmin ||
		(currentUserRole == constants.RoleOrganizer && booking.Trip.UserID == currentUserID) ||
		(booking.UserID != nil && *booking.UserID == currentUserID)
	if !allowed {
		response.Forbidden(c)
		return
	}

	response.Success(c, bookingToResponse(booking))
}

// ChangeBookingStatus chuyển trạng thái đặt chỗ qua facade
func (b BookingController) ChangeBookingStatus(c *gin.Context) {
	currentUserID := c.GetUint("userID")
	currentUserRole := c.GetInt("userRole")

	var req dto.ChangeBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var booking models.Booking
	if err := b.DB.Preload("Trip").First(&booking, req.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	// Khách hàng chỉ được hủy đặt chỗ của chính mình
	if currentUserRole == constants.RoleCustomer {
		if booking.UserID == nil || *booking.UserID != currentUserID || req.Status != models.BookingStatusCancelled {
			response.Forbidden(c)
			return
		}
	} else if currentUserRole == constants.RoleOrganizer && booking.Trip.UserID != currentUserID {
		response.Forbidden(c)
		return
	}

	var err error
	switch req.Status {
	case models.BookingStatusConfirmed:
		err = b.Facade.ConfirmBooking(booking.ID)
	case models.BookingStatusCancelled:
		err = b.Facade.CancelBooking(booking.ID)
	case models.BookingStatusCompleted:
		err = b.Facade.CompleteBooking(booking.ID)
	default:
		response.BadRequest(c, "Trạng thái không hợp lệ")
		return
	}
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	b.invalidateBookingCaches(c.Request.Context(), booking.Trip.UserID)

	if err := b.DB.Preload("Trip").First(&booking, req.ID).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, bookingToResponse(booking))
}

// GetBookingsByUserId trả về các đặt chỗ của người dùng hiện tại
func (b BookingController) GetBookingsByUserId(c *gin.Context) {
	currentUserID := c.GetUint("userID")

	var bookings []models.Booking
	if err := b.DB.Preload("Trip").
		Where("user_id = ?", currentUserID).
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		response.ServerError(c)
		return
	}

	var bookingResponses []dto.BookingResponse
	for _, booking := range bookings {
		bookingResponses = append(bookingResponses, bookingToResponse(booking))
	}

	response.Success(c, bookingResponses)
}
