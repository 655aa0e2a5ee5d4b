package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"gorm.io/gorm"

	"betravel/constants"
	"betravel/dto"
	"betravel/errors"
	"betravel/models"
	"betravel/response"
	"betravel/services"
	"betravel/services/notification"
)

// EditSessionController quản lý phiên chỉnh sửa chuyến đi: người tổ chức mở
// phiên, sửa lịch trình, đề xuất ngày mới và xác nhận hoặc hủy thay đổi đó.
type EditSessionController struct {
	DB      *gorm.DB
	Service *services.EditSessionService
	Melody  *melody.Melody
}

func NewEditSessionController(db *gorm.DB, service *services.EditSessionService, m *melody.Melody) EditSessionController {
	return EditSessionController{
		DB:      db,
		Service: service,
		Melody:  m,
	}
}

func respondSessionError(c *gin.Context, err error) {
	if appErr := errors.GetAppError(err); appErr != nil {
		switch appErr.Code {
		case errors.ErrCodeSessionNotFound:
			response.NotFound(c)
		case errors.ErrCodePendingUpdate, errors.ErrCodeSessionState:
			response.Conflict(c)
		default:
			response.BadRequest(c, appErr.Message)
		}
		return
	}
	response.ServerError(c)
}

// StartEditSession mở một phiên chỉnh sửa cho chuyến đi
func (e EditSessionController) StartEditSession(c *gin.Context) {
	currentUserID := c.GetUint("userID")
	currentUserRole := c.GetInt("userRole")

	var req struct {
		TripID uint `json:"tripId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var trip models.Trip
	if err := e.DB.Preload("Itinerary", func(db *gorm.DB) *gorm.DB {
		return db.Order("day ASC")
	}).First(&trip, req.TripID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if currentUserRole == constants.RoleOrganizer && trip.UserID != currentUserID {
		response.Forbidden(c)
		return
	}

	session, err := e.Service.Start(c.Request.Context(), &trip, currentUserID)
	if err != nil {
		respondSessionError(c, err)
		return
	}

	response.Success(c, session)
}

// GetEditSession lấy trạng thái hiện tại của phiên
func (e EditSessionController) GetEditSession(c *gin.Context) {
	currentUserID := c.GetUint("userID")

	session, err := e.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondSessionError(c, err)
		return
	}

	if session.UserID != currentUserID {
		response.Forbidden(c)
		return
	}

	response.Success(c, session)
}

// ProposeDates đề xuất khoảng ngày mới, chờ người dùng xác nhận
func (e EditSessionController) ProposeDates(c *gin.Context) {
	currentUserID := c.GetUint("userID")

	var req dto.ProposeDatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	session, err := e.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondSessionError(c, err)
		return
	}
	if session.UserID != currentUserID {
		response.Forbidden(c)
		return
	}

	session, err = e.Service.ProposeDates(c.Request.Context(), c.Param("id"), req.StartDate, req.EndDate)
	if err != nil {
		respondSessionError(c, err)
		return
	}

	response.Success(c, session)
}

// ConfirmDates áp thay đổi ngày đang chờ vào lịch trình của phiên
func (e EditSessionController) ConfirmDates(c *gin.Context) {
	currentUserID := c.GetUint("userID")

	session, err := e.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondSessionError(c, err)
		return
	}
	if session.UserID != currentUserID {
		response.Forbidden(c)
		return
	}

	session, dropped, err := e.Service.Confirm(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondSessionError(c, err)
		return
	}

	// Báo cho các tab đang mở cùng chuyến đi
	var trip models.Trip
	if err := e.DB.First(&trip, session.TripID).Error; err == nil {
		notificationService := notification.NewMelodyService(e.Melody)
		message := notification.NewItineraryMessageBuilder(trip.Name, len(session.Itinerary), dropped).Build()
		_ = notificationService.SendMessage(message)
	}

	response.Success(c, gin.H{
		"session":     session,
		"droppedDays": dropped,
	})
}

// CancelDates hủy thay đổi ngày đang chờ, quay về trạng thái lúc mở phiên
func (e EditSessionController) CancelDates(c *gin.Context) {
	currentUserID := c.GetUint("userID")

	session, err := e.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondSessionError(c, err)
		return
	}
	if session.UserID != currentUserID {
		response.Forbidden(c)
		return
	}

	session, err = e.Service.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondSessionError(c, err)
		return
	}

	response.Success(c, session)
}

// UpdateItinerary cập nhật tiêu đề/mô tả từng ngày trong phiên
func (e EditSessionController) UpdateItinerary(c *gin.Context) {
	currentUserID := c.GetUint("userID")

	var req dto.UpdateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	session, err := e.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondSessionError(c, err)
		return
	}
	if session.UserID != currentUserID {
		response.Forbidden(c)
		return
	}

	session, err = e.Service.UpdateItinerary(c.Request.Context(), c.Param("id"), formItineraryToModel(req.Itinerary))
	if err != nil {
		respondSessionError(c, err)
		return
	}

	response.Success(c, session)
}

// CloseEditSession đóng phiên sau khi người dùng submit hoặc rời trang
func (e EditSessionController) CloseEditSession(c *gin.Context) {
	currentUserID := c.GetUint("userID")

	session, err := e.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondSessionError(c, err)
		return
	}
	if session.UserID != currentUserID {
		response.Forbidden(c)
		return
	}

	if err := e.Service.Close(c.Request.Context(), c.Param("id")); err != nil {
		respondSessionError(c, err)
		return
	}

	response.Success(c, nil)
}
