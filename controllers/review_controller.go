package controllers

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"betravel/dto"
	"betravel/models"
	"betravel/response"
	"betravel/services"
	"betravel/validator"
)

type ReviewController struct {
	DB    *gorm.DB
	Cache *services.Cache
}

func NewReviewController(db *gorm.DB, redisCli *redis.Client) ReviewController {
	return ReviewController{
		DB:    db,
		Cache: services.NewCache(redisCli),
	}
}

func reviewToResponse(review models.Review) dto.ReviewResponse {
	return dto.ReviewResponse{
		ID:         review.ID,
		UserID:     review.UserID,
		UserName:   review.User.Name,
		UserAvatar: review.User.Avatar,
		Star:       review.Star,
		Comment:    review.Comment,
		CreateAt:   review.CreateAt,
	}
}

// GetAllReviews trả về đánh giá, lọc được theo chuyến đi
func (r ReviewController) GetAllReviews(c *gin.Context) {
	tripIdFilter := c.DefaultQuery("tripId", "")

	cacheKey := "reviews:all"
	if tripIdFilter != "" {
		cacheKey = fmt.Sprintf("reviews:trip:%s", tripIdFilter)
	}

	var reviews []models.Review

	// Lấy dữ liệu từ cache
	if hit, err := r.Cache.Fetch(c.Request.Context(), cacheKey, &reviews); err == nil && hit {
		var reviewResponses []dto.ReviewResponse
		for _, review := range reviews {
			reviewResponses = append(reviewResponses, reviewToResponse(review))
		}
		response.Success(c, reviewResponses)
		return
	}

	// Lấy dữ liệu từ database
	tx := r.DB.Preload("User")
	if tripIdFilter != "" {
		if parsedTripId, err := strconv.Atoi(tripIdFilter); err == nil {
			tx = tx.Where("trip_id = ?", parsedTripId)
		}
	}

	if err := tx.Order("create_at DESC").Limit(20).Find(&reviews).Error; err != nil {
		response.ServerError(c)
		return
	}

	var reviewResponses []dto.ReviewResponse
	for _, review := range reviews {
		reviewResponses = append(reviewResponses, reviewToResponse(review))
	}

	if err := r.Cache.Store(c.Request.Context(), cacheKey, reviews, 10*time.Minute); err != nil {
		log.Printf("Lỗi khi lưu danh sách đánh giá vào Redis: %v", err)
	}

	response.Success(c, reviewResponses)
}

// CreateReview tạo đánh giá, mỗi người chỉ đánh giá một chuyến đi một lần
func (r ReviewController) CreateReview(c *gin.Context) {
	currentUserID := c.GetUint("userID")

	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	review := models.Review{
		UserID:  currentUserID,
		TripID:  req.TripID,
		Star:    req.Star,
		Comment: req.Comment,
	}

	if err := validator.ValidateReview(&review); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	// Chỉ khách đã hoàn thành chuyến đi mới được đánh giá
	var completed int64
	r.DB.Model(&models.Booking{}).
		Where("user_id = ? AND trip_id = ? AND status = ?", currentUserID, req.TripID, models.BookingStatusCompleted).
		Count(&completed)
	if completed == 0 {
		response.Error(c, 0, "Bạn cần hoàn thành chuyến đi trước khi đánh giá")
		return
	}

	var existingReview models.Review
	if err := r.DB.Where("user_id = ? AND trip_id = ?", currentUserID, req.TripID).First(&existingReview).Error; err == nil {
		response.Error(c, 0, "Bạn đã đánh giá chuyến đi này trước đó")
		return
	}

	if err := r.DB.Create(&review).Error; err != nil {
		response.ServerError(c)
		return
	}

	_ = r.Cache.Invalidate(c.Request.Context(), "reviews:all", fmt.Sprintf("reviews:trip:%d", req.TripID))

	response.Success(c, review)
}

// GetReviewDetail trả về một đánh giá theo ID
func (r ReviewController) GetReviewDetail(c *gin.Context) {
	var review models.Review
	if err := r.DB.Preload("User").First(&review, c.Param("id")).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, reviewToResponse(review))
}

// UpdateReview cho phép người viết sửa lại đánh giá của mình
func (r ReviewController) UpdateReview(c *gin.Context) {
	currentUserID := c.GetUint("userID")

	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var review models.Review
	if err := r.DB.First(&review, c.Param("id")).Error; err != nil {
		response.NotFound(c)
		return
	}

	if review.UserID != currentUserID {
		response.Forbidden(c)
		return
	}

	review.Star = req.Star
	review.Comment = req.Comment

	if err := validator.ValidateReview(&review); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := r.DB.Save(&review).Error; err != nil {
		response.ServerError(c)
		return
	}

	_ = r.Cache.Invalidate(c.Request.Context(), "reviews:all", fmt.Sprintf("reviews:trip:%d", review.TripID))

	response.Success(c, review)
}
