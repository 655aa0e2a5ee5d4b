package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"betravel/constants"
	"betravel/dto"
	"betravel/models"
	"betravel/response"
	"betravel/services"
	"betravel/validator"
)

type TripController struct {
	DB    *gorm.DB
	Cache *services.Cache
}

func NewTripController(db *gorm.DB, redisCli *redis.Client) TripController {
	return TripController{
		DB:    db,
		Cache: services.NewCache(redisCli),
	}
}

func imgToStrings(raw json.RawMessage) []string {
	var imgs []string
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &imgs)
	}
	return imgs
}

func faqsToInputs(raw json.RawMessage) []dto.FaqInput {
	var faqs []dto.FaqInput
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &faqs)
	}
	return faqs
}

// Giá hiển thị danh sách là giá gói rẻ nhất
func getLowestPackagePrice(packages []dto.TripPackageInput) int {
	lowest := 0
	for i, pkg := range packages {
		if i == 0 || pkg.Price < lowest {
			lowest = pkg.Price
		}
	}
	return lowest
}

func formItineraryToModel(days []dto.ItineraryDayInput) []models.ItineraryDay {
	result := make([]models.ItineraryDay, 0, len(days))
	for _, day := range days {
		result = append(result, models.ItineraryDay{
			Day:         day.Day,
			Title:       day.Title,
			Description: day.Description,
			Date:        day.Date,
		})
	}
	return result
}

func tripToResponse(trip models.Trip) dto.TripResponse {
	dayCount, _ := services.CountItineraryDays(trip.StartDate, trip.EndDate)
	return dto.TripResponse{
		ID:               trip.ID,
		Name:             trip.Name,
		Avatar:           trip.Avatar,
		ShortDescription: trip.ShortDescription,
		Status:           trip.Status,
		StartDate:        trip.StartDate,
		EndDate:          trip.EndDate,
		Location:         trip.Location,
		Province:         trip.Province,
		GroupSizeMin:     trip.GroupSizeMin,
		GroupSizeMax:     trip.GroupSizeMax,
		TripTypes:        trip.TripTypes,
		Price:            trip.Price,
		DayCount:         dayCount,
		CreateAt:         trip.CreateAt,
		UpdateAt:         trip.UpdateAt,
	}
}

func (t TripController) invalidateTripCaches(ctx context.Context, organizerID uint) {
	keys := []string{"trips:public", "trips:all"}
	if organizerID != 0 {
		keys = append(keys, fmt.Sprintf("trips:organizer:%d", organizerID))
	}
	_ = t.Cache.Invalidate(ctx, keys...)
}

// GetAllTripsForUser trả về danh sách chuyến đi công khai cho khách,
// hỗ trợ filter, tìm kiếm mờ và phân trang
func (t TripController) GetAllTripsForUser(c *gin.Context) {
	provinceFilter := c.Query("province")
	tripTypeFilter := c.Query("tripType")
	nameFilter := c.Query("name")
	minPriceFilter := c.Query("minPrice")
	maxPriceFilter := c.Query("maxPrice")
	durationFilter := c.Query("duration")
	searchQuery := c.Query("search")

	pageStr := c.Query("page")
	limitStr := c.Query("limit")

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

	cacheKey := "trips:public"

	var allTrips []models.Trip

	// Lấy dữ liệu từ Redis
	if hit, err := t.Cache.Fetch(c.Request.Context(), cacheKey, &allTrips); err != nil || !hit {
		// Nếu không có dữ liệu trong Redis, lấy từ Database
		if err := t.DB.Model(&models.Trip{}).
			Preload("Itinerary").
			Preload("Packages").
			Preload("User").
			Where("status = ?", constants.TripStatusPublished).
			Find(&allTrips).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Không thể lấy danh sách chuyến đi"})
			return
		}

		// Lưu dữ liệu vào Redis
		if err := t.Cache.Store(c.Request.Context(), cacheKey, allTrips, 60*time.Minute); err != nil {
			log.Printf("Lỗi khi lưu danh sách chuyến đi vào Redis: %v", err)
		}
	}

	cmProvince := createMatcher(prepareUniqueList(allTrips, "province"))
	cmLocation := createMatcher(prepareUniqueList(allTrips, "location"))

	// Áp dụng filter trên dữ liệu từ cache
	filteredTrips := make([]models.Trip, 0)
	for _, trip := range allTrips {
		if provinceFilter != "" {
			decodedProvinceFilter, _ := url.QueryUnescape(provinceFilter)
			if !strings.Contains(strings.ToLower(trip.Province), strings.ToLower(decodedProvinceFilter)) {
				continue
			}
		}
		if nameFilter != "" {
			decodedNameFilter, _ := url.QueryUnescape(nameFilter)
			if !strings.Contains(strings.ToLower(trip.Name), strings.ToLower(decodedNameFilter)) {
				continue
			}
		}
		if tripTypeFilter != "" {
			decodedTypeFilter, _ := url.QueryUnescape(tripTypeFilter)
			matched := false
			for _, tripType := range trip.TripTypes {
				if strings.EqualFold(tripType, decodedTypeFilter) {
					matched = true
					break
				}
			}
			if !matched {
				continue
			}
		}
		if minPriceFilter != "" {
			minPrice, _ := strconv.Atoi(minPriceFilter)
			if trip.Price < minPrice {
				continue
			}
		}
		if maxPriceFilter != "" {
			maxPrice, _ := strconv.Atoi(maxPriceFilter)
			if trip.Price > maxPrice {
				continue
			}
		}
		if durationFilter != "" {
			duration, _ := strconv.Atoi(durationFilter)
			dayCount, err := services.CountItineraryDays(trip.StartDate, trip.EndDate)
			if err != nil || dayCount != duration {
				continue
			}
		}
		filteredTrips = append(filteredTrips, trip)
	}

	// Xử lý search query
	if searchQuery != "" {
		scoredTrips := filterAndScoreTrips(searchQuery, filteredTrips, cmProvince, cmLocation)
		filteredTrips = []models.Trip{}
		for _, scoredTrip := range scoredTrips {
			filteredTrips = append(filteredTrips, scoredTrip.Trip)
		}
	} else {
		//Xếp theo update mới nhất
		sort.Slice(filteredTrips, func(i, j int) bool {
			return filteredTrips[i].UpdateAt.After(filteredTrips[j].UpdateAt)
		})
	}

	// Lấy total sau khi lọc
	total := len(filteredTrips)

	// Áp dụng phân trang
	start := page * limit
	end := start + limit
	if start >= total {
		filteredTrips = []models.Trip{}
	} else if end > total {
		filteredTrips = filteredTrips[start:]
	} else {
		filteredTrips = filteredTrips[start:end]
	}

	// Chuẩn bị response
	tripsResponse := make([]dto.TripResponse, 0)
	for _, trip := range filteredTrips {
		tripsResponse = append(tripsResponse, tripToResponse(trip))
	}

	c.JSON(http.StatusOK, gin.H{
		"code": 1,
		"mess": "Lấy danh sách chuyến đi thành công",
		"data": tripsResponse,
		"pagination": gin.H{
			"page":  page,
			"limit": limit,
			"total": total,
		},
	})
}

// GetAllTrips trả về danh sách chuyến đi cho trang quản trị
func (t TripController) GetAllTrips(c *gin.Context) {
	currentUserID := c.GetUint("userID")
	currentUserRole := c.GetInt("userRole")

	// Tạo cache key dựa trên vai trò và user_id
	var cacheKey string
	if currentUserRole == constants.RoleOrganizer {
		cacheKey = fmt.Sprintf("trips:organizer:%d", currentUserID)
	} else if currentUserRole == constants.RoleAdmin {
		cacheKey = "trips:all"
	} else {
		response.Forbidden(c)
		return
	}

	var allTrips []models.Trip

	if hit, err := t.Cache.Fetch(c.Request.Context(), cacheKey, &allTrips); err != nil || !hit {
		tx := t.DB.Model(&models.Trip{}).
			Preload("Itinerary").
			Preload("Packages").
			Preload("User")
		if currentUserRole == constants.RoleOrganizer {
			// Người tổ chức chỉ thấy chuyến đi của mình
			tx = tx.Where("user_id = ?", currentUserID)
		}

		if err := tx.Find(&allTrips).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Không thể lấy danh sách chuyến đi"})
			return
		}

		if err := t.Cache.Store(c.Request.Context(), cacheKey, allTrips, 60*time.Minute); err != nil {
			log.Printf("Lỗi khi lưu danh sách chuyến đi vào Redis: %v", err)
		}
	}

	// Áp dụng filter từ dữ liệu cache
	statusFilter := c.Query("status")
	nameFilter := c.Query("name")
	provinceFilter := c.Query("province")

	filteredTrips := make([]models.Trip, 0)
	for _, trip := range allTrips {
		if statusFilter != "" {
			parsedStatusFilter, err := strconv.Atoi(statusFilter)
			if err == nil && trip.Status != parsedStatusFilter {
				continue
			}
		}
		if nameFilter != "" {
			decodedNameFilter, _ := url.QueryUnescape(nameFilter)
			if !strings.Contains(strings.ToLower(trip.Name), strings.ToLower(decodedNameFilter)) {
				continue
			}
		}
		if provinceFilter != "" {
			decodedProvinceFilter, _ := url.QueryUnescape(provinceFilter)
			if !strings.Contains(strings.ToLower(trip.Province), strings.ToLower(decodedProvinceFilter)) {
				continue
			}
		}
		filteredTrips = append(filteredTrips, trip)
	}
	total := len(filteredTrips)

	//Xếp theo update mới nhất
	sort.Slice(filteredTrips, func(i, j int) bool {
		return filteredTrips[i].UpdateAt.After(filteredTrips[j].UpdateAt)
	})

	// Pagination
	page := 0
	limit := 10
	if pageStr := c.Query("page"); pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	start := page * limit
	end := start + limit
	if start >= len(filteredTrips) {
		filteredTrips = []models.Trip{}
	} else if end > len(filteredTrips) {
		filteredTrips = filteredTrips[start:]
	} else {
		filteredTrips = filteredTrips[start:end]
	}

	tripsResponse := make([]dto.TripResponse, 0)
	for _, trip := range filteredTrips {
		tripsResponse = append(tripsResponse, tripToResponse(trip))
	}

	response.SuccessWithPagination(c, tripsResponse, page, limit, total)
}

// GetTripDetail trả về trang chi tiết: lịch trình, gói, đánh giá và chuyến liên quan
func (t TripController) GetTripDetail(c *gin.Context) {
	tripId := c.Param("id")

	var trip models.Trip
	if err := t.DB.Preload("Itinerary", func(db *gorm.DB) *gorm.DB {
		return db.Order("day ASC")
	}).
		Preload("Packages").
		Preload("Reviews").
		Preload("Reviews.User").
		Preload("User").
		First(&trip, tripId).Error; err != nil {
		response.NotFound(c)
		return
	}

	// Tóm tắt đánh giá
	var reviewResponses []dto.ReviewResponse
	totalStar := 0
	for _, review := range trip.Reviews {
		totalStar += review.Star
		reviewResponses = append(reviewResponses, dto.ReviewResponse{
			ID:         review.ID,
			UserID:     review.UserID,
			UserName:   review.User.Name,
			UserAvatar: review.User.Avatar,
			Star:       review.Star,
			Comment:    review.Comment,
			CreateAt:   review.CreateAt,
		})
	}
	summary := dto.ReviewSummary{Count: len(trip.Reviews)}
	if summary.Count > 0 {
		summary.Average = float64(totalStar) / float64(summary.Count)
	}

	// Chuyến đi liên quan: cùng tỉnh, đang mở, không tính chính nó
	var relatedTrips []models.Trip
	if err := t.DB.Where("province = ? AND status = ? AND id != ?", trip.Province, constants.TripStatusPublished, trip.ID).
		Order("update_at DESC").
		Limit(4).
		Find(&relatedTrips).Error; err != nil {
		log.Printf("Lỗi khi lấy chuyến đi liên quan: %v", err)
	}

	relatedResponses := make([]dto.TripResponse, 0)
	for _, related := range relatedTrips {
		relatedResponses = append(relatedResponses, tripToResponse(related))
	}

	resp := dto.TripDetailResponse{
		ID:               trip.ID,
		Name:             trip.Name,
		Avatar:           trip.Avatar,
		Img:              imgToStrings(trip.Img),
		ShortDescription: trip.ShortDescription,
		Description:      trip.Description,
		Status:           trip.Status,
		StartDate:        trip.StartDate,
		EndDate:          trip.EndDate,
		Location:         trip.Location,
		Province:         trip.Province,
		GroupSizeMin:     trip.GroupSizeMin,
		GroupSizeMax:     trip.GroupSizeMax,
		AgeMin:           trip.AgeMin,
		AgeMax:           trip.AgeMax,
		TripTypes:        trip.TripTypes,
		HostName:         trip.HostName,
		HostDescription:  trip.HostDescription,
		HostImage:        trip.HostImage,
		Price:            trip.Price,
		Inclusions:       trip.Inclusions,
		Exclusions:       trip.Exclusions,
		Faqs:             faqsToInputs(trip.Faqs),
		User: dto.Actor{
			ID:          trip.User.ID,
			Name:        trip.User.Name,
			Email:       trip.User.Email,
			PhoneNumber: trip.User.PhoneNumber,
			Avatar:      trip.User.Avatar,
			Bio:         trip.User.Bio,
		},
		Itinerary:     trip.Itinerary,
		Packages:      trip.Packages,
		Reviews:       reviewResponses,
		ReviewSummary: summary,
		RelatedTrips:  relatedResponses,
		CreateAt:      trip.CreateAt,
		UpdateAt:      trip.UpdateAt,
	}

	response.Success(c, resp)
}

// buildTripFromForm ánh xạ dữ liệu wizard sang model, lịch trình được tính riêng
func buildTripFromForm(form *dto.TripFormData) (models.Trip, error) {
	imgJSON, err := json.Marshal(form.Img)
	if err != nil {
		return models.Trip{}, fmt.Errorf("không thể mã hóa hình ảnh: %w", err)
	}

	faqsJSON, err := json.Marshal(form.Faqs)
	if err != nil {
		return models.Trip{}, fmt.Errorf("không thể mã hóa câu hỏi thường gặp: %w", err)
	}

	return models.Trip{
		Name:             form.Name,
		Avatar:           form.Avatar,
		Img:              imgJSON,
		ShortDescription: form.ShortDescription,
		Description:      form.Description,
		Status:           form.Status,
		StartDate:        form.StartDate,
		EndDate:          form.EndDate,
		Location:         form.Location,
		Province:         form.Province,
		GroupSizeMin:     form.GroupSizeMin,
		GroupSizeMax:     form.GroupSizeMax,
		AgeMin:           form.AgeMin,
		AgeMax:           form.AgeMax,
		TripTypes:        form.TripTypes,
		HostName:         form.HostName,
		HostDescription:  form.HostDescription,
		HostImage:        form.HostImage,
		Price:            getLowestPackagePrice(form.Packages),
		Inclusions:       form.Inclusions,
		Exclusions:       form.Exclusions,
		Faqs:             faqsJSON,
	}, nil
}

func formPackagesToModel(packages []dto.TripPackageInput) []models.TripPackage {
	result := make([]models.TripPackage, 0, len(packages))
	for _, pkg := range packages {
		result = append(result, models.TripPackage{
			Name:        pkg.Name,
			Description: pkg.Description,
			Price:       pkg.Price,
			Currency:    pkg.Currency,
			PerPerson:   pkg.PerPerson,
			Features:    pkg.Features,
		})
	}
	return result
}

// CreateTrip nhận toàn bộ dữ liệu wizard khi người dùng submit ở bước review
func (t TripController) CreateTrip(c *gin.Context) {
	currentUserID := c.GetUint("userID")

	var user models.User
	if err := t.DB.First(&user, currentUserID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": "Người dùng không tồn tại"})
		return
	}

	var form dto.TripFormData
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": "Dữ liệu đầu vào không hợp lệ", "details": err.Error()})
		return
	}

	fieldErrs, err := validator.ValidateTripForm(&form)
	if len(fieldErrs) > 0 {
		response.FieldErrors(c, fieldErrs)
		return
	}
	if err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	newTrip, err := buildTripFromForm(&form)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": err.Error()})
		return
	}

	if err := newTrip.ValidateStatus(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": err.Error()})
		return
	}

	// Nội dung lịch trình người dùng nhập được ghép lại theo khoảng ngày,
	// day và date luôn do server tính
	itinerary, dropped, err := services.MergeItinerary(formItineraryToModel(form.Itinerary), form.StartDate, form.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": "Khoảng ngày không hợp lệ", "details": err.Error()})
		return
	}

	newTrip.UserID = currentUserID
	newTrip.Itinerary = itinerary
	newTrip.Packages = formPackagesToModel(form.Packages)

	if err := t.DB.Create(&newTrip).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Không thể tạo chuyến đi", "details": err.Error()})
		return
	}

	t.invalidateTripCaches(c.Request.Context(), currentUserID)

	c.JSON(http.StatusOK, gin.H{
		"code":        1,
		"mess":        "Tạo chuyến đi thành công",
		"data":        tripToResponse(newTrip),
		"droppedDays": dropped,
	})
}

// UpdateTrip cập nhật chuyến đi, lịch trình được đối chiếu lại nếu khoảng ngày đổi
func (t TripController) UpdateTrip(c *gin.Context) {
	currentUserID := c.GetUint("userID")
	currentUserRole := c.GetInt("userRole")

	var form dto.TripFormData
	if err := c.ShouldBindJSON(&form); err != nil {
		response.BadRequest(c, "Dữ liệu đầu vào không hợp lệ")
		return
	}

	if form.ID == 0 {
		response.BadRequest(c, "Thiếu ID chuyến đi")
		return
	}

	var trip models.Trip
	if err := t.DB.Preload("Itinerary").Preload("Packages").First(&trip, form.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	// Người tổ chức chỉ sửa được chuyến đi của mình
	if currentUserRole == constants.RoleOrganizer && trip.UserID != currentUserID {
		response.Forbidden(c)
		return
	}

	fieldErrs, err := validator.ValidateTripForm(&form)
	if len(fieldErrs) > 0 {
		response.FieldErrors(c, fieldErrs)
		return
	}
	if err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	updated, err := buildTripFromForm(&form)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": err.Error()})
		return
	}

	itinerary, dropped, err := services.MergeItinerary(formItineraryToModel(form.Itinerary), form.StartDate, form.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": "Khoảng ngày không hợp lệ", "details": err.Error()})
		return
	}

	updated.ID = trip.ID
	updated.UserID = trip.UserID
	updated.CreateAt = trip.CreateAt

	// Thay thế toàn bộ lịch trình và gói trong cùng một transaction
	err = t.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("trip_id = ?", trip.ID).Delete(&models.ItineraryDay{}).Error; err != nil {
			return err
		}
		if err := tx.Where("trip_id = ?", trip.ID).Delete(&models.TripPackage{}).Error; err != nil {
			return err
		}

		for i := range itinerary {
			itinerary[i].TripID = trip.ID
		}
		packages := formPackagesToModel(form.Packages)
		for i := range packages {
			packages[i].TripID = trip.ID
		}

		if err := tx.Create(&itinerary).Error; err != nil {
			return err
		}
		if len(packages) > 0 {
			if err := tx.Create(&packages).Error; err != nil {
				return err
			}
		}

		return tx.Omit("Itinerary", "Packages", "Reviews", "User").Save(&updated).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Không thể cập nhật chuyến đi", "details": err.Error()})
		return
	}

	t.invalidateTripCaches(c.Request.Context(), trip.UserID)

	c.JSON(http.StatusOK, gin.H{
		"code":        1,
		"mess":        "Cập nhật chuyến đi thành công",
		"data":        tripToResponse(updated),
		"droppedDays": dropped,
	})
}

// ChangeTripStatus đổi trạng thái chuyến đi (nháp, mở, đủ chỗ, hoàn thành, ẩn)
func (t TripController) ChangeTripStatus(c *gin.Context) {
	currentUserID := c.GetUint("userID")
	currentUserRole := c.GetInt("userRole")

	var statusRequest struct {
		ID     uint `json:"id" binding:"required"`
		Status int  `json:"status"`
	}
	if err := c.ShouldBindJSON(&statusRequest); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var trip models.Trip
	if err := t.DB.First(&trip, statusRequest.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if currentUserRole == constants.RoleOrganizer && trip.UserID != currentUserID {
		response.Forbidden(c)
		return
	}

	trip.Status = statusRequest.Status
	if err := trip.ValidateStatus(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := t.DB.Save(&trip).Error; err != nil {
		response.ServerError(c)
		return
	}

	t.invalidateTripCaches(c.Request.Context(), trip.UserID)

	response.Success(c, trip)
}

// GetTripsByOrganizer trả về danh sách chuyến đi công khai của một người tổ chức
func (t TripController) GetTripsByOrganizer(c *gin.Context) {
	organizerId := c.Param("id")

	var organizer models.User
	if err := t.DB.First(&organizer, organizerId).Error; err != nil {
		response.NotFound(c)
		return
	}

	var trips []models.Trip
	if err := t.DB.Where("user_id = ? AND status = ?", organizer.ID, constants.TripStatusPublished).
		Order("update_at DESC").
		Find(&trips).Error; err != nil {
		response.ServerError(c)
		return
	}

	tripsResponse := make([]dto.TripResponse, 0)
	for _, trip := range trips {
		tripsResponse = append(tripsResponse, tripToResponse(trip))
	}

	response.Success(c, gin.H{
		"organizer": dto.Actor{
			ID:          organizer.ID,
			Name:        organizer.Name,
			Email:       organizer.Email,
			PhoneNumber: organizer.PhoneNumber,
			Avatar:      organizer.Avatar,
			Bio:         organizer.Bio,
		},
		"trips": tripsResponse,
	})
}

// ValidateTripStep kiểm tra một bước wizard, trả lỗi theo từng trường
func (t TripController) ValidateTripStep(c *gin.Context) {
	var req dto.ValidateStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	fieldErrs, err := validator.ValidateStep(req.Step, &req.Form)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if len(fieldErrs) > 0 {
		response.FieldErrors(c, fieldErrs)
		return
	}

	// Bước ngày tháng hợp lệ thì trả luôn số ngày để client vẽ trước lịch trình
	if req.Step == validator.StepDetails {
		dayCount, err := services.CountItineraryDays(req.Form.StartDate, req.Form.EndDate)
		if err == nil {
			response.Success(c, gin.H{"valid": true, "dayCount": dayCount})
			return
		}
	}

	response.Success(c, gin.H{"valid": true})
}
