package controllers

import (
	"log"
	"net/http"
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
)

type UserController struct {
	DB    *gorm.DB
	Cache *services.Cache
}

func NewUserController(db *gorm.DB, redisCli *redis.Client) UserController {
	return UserController{
		DB:    db,
		Cache: services.NewCache(redisCli),
	}
}

func (u UserController) GetUsers(c *gin.Context) {
	currentUserID := c.GetUint("userID")
	currentUserRole := c.GetInt("userRole")

	if currentUserRole != constants.RoleAdmin {
		response.Forbidden(c)
		return
	}

	pageStr := c.Query("page")
	limitStr := c.Query("limit")
	statusStr := c.Query("status")
	name := c.Query("name")
	roleStr := c.Query("role")

	page := 0
	limit := 10

	if pageStr != "" {
		page, _ = strconv.Atoi(pageStr)
	}
	if limitStr != "" {
		limit, _ = strconv.Atoi(limitStr)
	}

	cacheKey := "users:all"

	var allUsers []models.User

	// Kiểm tra cache
	if hit, err := u.Cache.Fetch(c.Request.Context(), cacheKey, &allUsers); err != nil || !hit {
		// Nếu không có dữ liệu trong cache, truy vấn từ DB
		if err := u.DB.Find(&allUsers).Error; err != nil {
			response.ServerError(c)
			return
		}

		// Lưu dữ liệu vào Redis
		if err := u.Cache.Store(c.Request.Context(), cacheKey, allUsers, 10*time.Minute); err != nil {
			log.Printf("Lỗi khi lưu danh sách người dùng vào Redis: %v", err)
		}
	}

	var filteredUsers []models.User
	for _, user := range allUsers {
		// Lọc theo status
		if statusStr != "" {
			status, _ := strconv.Atoi(statusStr)
			if user.Status != status {
				continue
			}
		}

		// Lọc theo name
		if name != "" && !strings.Contains(strings.ToLower(user.Name), strings.ToLower(name)) &&
			!strings.Contains(strings.ToLower(user.PhoneNumber), strings.ToLower(name)) &&
			!strings.Contains(strings.ToLower(user.Email), strings.ToLower(name)) {
			continue
		}

		// Lọc theo role
		if roleStr != "" {
			role, _ := strconv.Atoi(roleStr)
			if user.Role != role {
				continue
			}
		}

		filteredUsers = append(filteredUsers, user)
	}

	var userResponses []dto.UserResponse
	for _, user := range filteredUsers {
		if user.ID == currentUserID {
			continue
		}

		userResponses = append(userResponses, dto.UserResponse{
			ID:          user.ID,
			Name:        user.Name,
			Email:       user.Email,
			IsVerified:  user.IsVerified,
			PhoneNumber: user.PhoneNumber,
			Role:        user.Role,
			UpdatedAt:   user.UpdatedAt,
			CreatedAt:   user.CreatedAt,
			Avatar:      user.Avatar,
			Status:      user.Status,
			Gender:      user.Gender,
			DateOfBirth: user.DateOfBirth,
			Bio:         user.Bio,
		})
	}

	// Sắp xếp và phân trang
	sort.Slice(userResponses, func(i, j int) bool {
		return userResponses[i].ID < userResponses[j].ID
	})

	start := page * limit
	if start > len(userResponses) {
		start = len(userResponses)
	}
	end := start + limit
	if end > len(userResponses) {
		end = len(userResponses)
	}

	paginatedUsers := userResponses[start:end]

	response.SuccessWithPagination(c, paginatedUsers, page, limit, len(userResponses))
}

func (u UserController) GetUserByID(c *gin.Context) {
	var user models.User
	id := c.Param("id")

	if err := u.DB.First(&user, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	userResponse := dto.UserResponse{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		IsVerified:  user.IsVerified,
		PhoneNumber: user.PhoneNumber,
		Role:        user.Role,
		Avatar:      user.Avatar,
		Status:      user.Status,
		Bio:         user.Bio,
	}

	response.Success(c, userResponse)
}

func (u UserController) UpdateUser(c *gin.Context) {
	currentUserID := c.GetUint("userID")

	var updateUser dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&updateUser); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var user models.User
	if err := u.DB.First(&user, currentUserID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if strings.TrimSpace(updateUser.Name) != "" {
		user.Name = updateUser.Name
	}
	if strings.TrimSpace(updateUser.PhoneNumber) != "" {
		user.PhoneNumber = updateUser.PhoneNumber
	}
	if strings.TrimSpace(updateUser.Avatar) != "" {
		user.Avatar = updateUser.Avatar
	}
	if strings.TrimSpace(updateUser.Bio) != "" {
		user.Bio = updateUser.Bio
	}

	user.Gender = updateUser.Gender

	if strings.TrimSpace(updateUser.DateOfBirth) != "" {
		user.DateOfBirth = updateUser.DateOfBirth
	}

	if err := u.DB.Save(&user).Error; err != nil {
		response.ServerError(c)
		return
	}

	userResponse := dto.UserResponse{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		IsVerified:  user.IsVerified,
		PhoneNumber: user.PhoneNumber,
		Role:        user.Role,
		Avatar:      user.Avatar,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
		Status:      user.Status,
		Gender:      user.Gender,
		DateOfBirth: user.DateOfBirth,
		Bio:         user.Bio,
	}

	//Xóa cache
	_ = u.Cache.Invalidate(c.Request.Context(), "users:all")

	response.Success(c, userResponse)
}

func (u UserController) ChangeUserStatus(c *gin.Context) {
	var statusRequest dto.ChangeUserStatusRequest
	if err := c.ShouldBindJSON(&statusRequest); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var user models.User
	if err := u.DB.First(&user, statusRequest.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	user.Status = statusRequest.Status
	if err := u.DB.Save(&user).Error; err != nil {
		response.ServerError(c)
		return
	}

	//Xóa cache
	_ = u.Cache.Invalidate(c.Request.Context(), "users:all")

	response.Success(c, user)
}

// get Profile
func (u UserController) GetProfile(c *gin.Context) {
	var user models.User
	id := c.GetUint("userID")

	if err := u.DB.First(&user, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"code": 0, "mess": "Người dùng không tồn tại"})
		return
	}

	userResponse := dto.UserResponse{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		IsVerified:  user.IsVerified,
		PhoneNumber: user.PhoneNumber,
		Role:        user.Role,
		Avatar:      user.Avatar,
		Status:      user.Status,
		Gender:      user.Gender,
		DateOfBirth: user.DateOfBirth,
		Bio:         user.Bio,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}

	c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "Lấy người dùng thành công", "data": userResponse})
}
