package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"
	_ "time/tzdata"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"gorm.io/gorm"

	"betravel/constants"
	"betravel/models"
	"betravel/services/logger"
	"betravel/services/notification"
)

const (
	DefaultTimezone = "Asia/Ho_Chi_Minh"
)

const (
	ErrCodeInvalidTimezone = "INVALID_TIMEZONE"
	ErrCodeNoExpiredTrips  = "NO_EXPIRED_TRIPS"
	ErrCodeUpdateFailed    = "UPDATE_FAILED"
	ErrCodeInvalidTripID   = "INVALID_TRIP_ID"
)

type ServiceError struct {
	Code    string
	Message string
	Err     error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

type TripServiceInterface interface {
	GetExpiredTrips(ctx context.Context) ([]models.Trip, error)
	CompleteExpiredTrips(ctx context.Context, notificationService notification.Service) error
}

type NotificationObserver interface {
	Notify(message string) error
}

type MelodyObserver struct {
	session *melody.Session
	userID  uint
}

func NewMelodyObserver(session *melody.Session, userID uint) *MelodyObserver {
	return &MelodyObserver{
		session: session,
		userID:  userID,
	}
}

func (o *MelodyObserver) Notify(message string) error {
	return o.session.Write([]byte(message))
}

type TripService struct {
	db        *gorm.DB
	logger    logger.Logger
	melody    *melody.Melody
	observers map[uint][]NotificationObserver
}

type TripServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewTripService(opts TripServiceOptions, m *melody.Melody) *TripService {
	return &TripService{
		db:        opts.DB,
		logger:    opts.Logger,
		melody:    m,
		observers: make(map[uint][]NotificationObserver),
	}
}

func validateTripID(tripID uint) error {
	if tripID == 0 {
		return &ServiceError{
			Code:    ErrCodeInvalidTripID,
			Message: "trip ID không hợp lệ",
		}
	}
	return nil
}

// GetExpiredTrips tìm các chuyến đã qua ngày kết thúc nhưng chưa được đánh dấu hoàn thành
func (s *TripService) GetExpiredTrips(ctx context.Context) ([]models.Trip, error) {
	var trips []models.Trip
	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInvalidTimezone,
			Message: "timezone không hợp lệ",
			Err:     err,
		}
	}
	today := time.Now().In(loc).Format(DateLayout)
	err = s.db.WithContext(ctx).
		Where("end_date < ? AND status IN ?", today, []int{constants.TripStatusPublished, constants.TripStatusFull}).
		Find(&trips).Error
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeUpdateFailed,
			Message: "lỗi khi truy vấn chuyến đi đã kết thúc",
			Err:     err,
		}
	}
	return trips, nil
}

func (s *TripService) completeTrip(ctx context.Context, tx *gorm.DB, tripID uint) error {
	if err := validateTripID(tripID); err != nil {
		return err
	}
	if err := tx.WithContext(ctx).Model(&models.Trip{}).
		Where("id = ?", tripID).
		Update("status", constants.TripStatusCompleted).Error; err != nil {
		return &ServiceError{
			Code:    ErrCodeUpdateFailed,
			Message: fmt.Sprintf("lỗi cập nhật trạng thái cho trip %d", tripID),
			Err:     err,
		}
	}
	s.logger.Info("✅ Đã hoàn thành trip_id %d", tripID)
	return nil
}

func (s *TripService) sendNotification(notificationService notification.Service, userID uint, tripName string) error {
	message := notification.NewMessageBuilder(userID, tripName).Build()
	return notificationService.SendMessage(message)
}

// CompleteExpiredTrips chạy mỗi đêm: chuyển các chuyến đã qua ngày kết thúc
// sang trạng thái hoàn thành và báo cho người tổ chức
func (s *TripService) CompleteExpiredTrips(ctx context.Context, notificationService notification.Service) error {
	trips, err := s.GetExpiredTrips(ctx)
	if err != nil {
		s.logger.Error("❌ Lỗi lấy chuyến đi hết hạn: %v", err)
		return err
	}
	if len(trips) == 0 {
		s.logger.Info("ℹ️ Không có chuyến đi nào cần hoàn thành hôm nay.")
		return &ServiceError{
			Code:    ErrCodeNoExpiredTrips,
			Message: "không có chuyến đi nào cần hoàn thành",
		}
	}
	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return &ServiceError{
			Code:    ErrCodeUpdateFailed,
			Message: "lỗi khi bắt đầu transaction",
			Err:     tx.Error,
		}
	}
	for _, trip := range trips {
		if err := s.completeTrip(ctx, tx, trip.ID); err != nil {
			tx.Rollback()
			return err
		}
		if err := s.sendNotification(notificationService, trip.UserID, trip.Name); err != nil {
			s.logger.Error("❌ Lỗi gửi thông báo: %v", err)
		}
	}
	if err := tx.Commit().Error; err != nil {
		return &ServiceError{
			Code:    ErrCodeUpdateFailed,
			Message: "lỗi khi commit transaction",
			Err:     err,
		}
	}
	s.logger.Info("✅ Hoàn tất đánh dấu hoàn thành cho tất cả chuyến đi hết hạn.")
	return nil
}

// đăng ký observer cho user
func (s *TripService) RegisterObserver(session *melody.Session, userID uint) {
	observer := NewMelodyObserver(session, userID)
	s.observers[userID] = append(s.observers[userID], observer)
	s.logger.Info("Người quan sát đã đăng ký cho userID: %d", userID)
}

// xóa observer cho user
func (s *TripService) RemoveObserver(session *melody.Session, userID uint) {
	observers := s.observers[userID]
	for i, obs := range observers {
		if obs.(*MelodyObserver).session == session {
			s.observers[userID] = append(observers[:i], observers[i+1:]...)
			break
		}
	}
	s.logger.Info("Đã xóa người quan sát cho userID: %d", userID)
}

func (s *TripService) NotifyAll(c *gin.Context) {
	var req struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "tin nhắn là bắt buộc"})
		return
	}
	notificationService := notification.NewMelodyService(s.melody)
	err := notificationService.SendMessage(req.Message)
	if err != nil {
		s.logger.Error("❌ Lỗi gửi thông báo tổng: %v", err)
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	s.logger.Info("✅ Đã gửi thông báo tổng: %s", req.Message)
	c.JSON(200, gin.H{"message": "Broadcast sent"})
}

// NotifyUser với thông báo qua WebSocket và email đồng thời
func (s *TripService) NotifyUser(c *gin.Context) {
	userIDStr := c.Param("userID")

	userID, err := strconv.ParseUint(userIDStr, 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid userID"})
		return
	}

	var req struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "message is required"})
		return
	}

	observers := s.observers[uint(userID)]
	var user models.User
	// Lấy thông tin user từ DB để lấy email
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(404, gin.H{"error": "không tìm thấy người dùng"})
			return
		}
		c.JSON(500, gin.H{"error": "không thể lấy được người dùng"})
		return
	}

	// Gửi qua WebSocket nếu có observer
	if len(observers) > 0 {
		for _, observer := range observers {
			if err := observer.Notify(req.Message); err != nil {
				s.logger.Error("❌ Không thông báo được userID %d: %v", userID, err)
			}
		}
		s.logger.Info("✅ Đã gửi thông báo WebSocket tới userID %d", userID)
	}

	// Gửi qua email bất kể có observer hay không
	err = SendNews(user.Email, "Thông báo từ hệ thống", req.Message)
	if err != nil {
		s.logger.Error("❌ Không gửi được thông báo qua email cho userID %d: %v", userID, err)
		// Không trả lỗi, WebSocket có thể đã thành công
	} else {
		s.logger.Info("📧 Đã gửi thông báo qua email đến %s", user.Email)
	}

	c.JSON(200, gin.H{"message": "Thông báo được gửi đến người dùng"})
}

type TripServiceAdapter struct {
	service *TripService
}

func NewTripServiceAdapter(service *TripService) *TripServiceAdapter {
	return &TripServiceAdapter{service: service}
}

func (a *TripServiceAdapter) CompleteExpiredTrips(m *melody.Melody) error {
	notificationService := notification.NewMelodyService(m)
	return a.service.CompleteExpiredTrips(context.Background(), notificationService)
}
