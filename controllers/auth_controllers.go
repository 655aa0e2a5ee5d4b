package controllers

import (
	"context"
	"errors"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"
	"gorm.io/gorm"

	"betravel/dto"
	"betravel/models"
	"betravel/response"
	"betravel/services"
)

// AuthController xử lý đăng ký, đăng nhập và các luồng xác thực
type AuthController struct {
	DB   *gorm.DB
	Auth *services.AuthService
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{
		DB:   db,
		Auth: services.NewAuthService(db),
	}
}

func (ac *AuthController) Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	input.Identifier = strings.ToLower(input.Identifier)

	var user models.User
	if err := ac.DB.Where("email = ? OR phone_number = ?", input.Identifier, input.Identifier).First(&user).Error; err != nil {
		response.BadRequest(c, "Email hoặc mật khẩu không hợp lệ")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		response.BadRequest(c, "Email hoặc mật khẩu không hợp lệ")
		return
	}

	userInfo := services.UserInfo{
		UserId: user.ID,
		Role:   user.Role,
	}

	accessToken, err := services.GenerateToken(userInfo, 60*24*3, true)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	userResponse := dto.UserLoginResponse{
		UserID:       user.ID,
		UserName:     user.Name,
		UserEmail:    user.Email,
		UserVerified: user.IsVerified,
		UserPhone:    user.PhoneNumber,
		UserRole:     user.Role,
		UpdatedAt:    user.UpdatedAt,
		CreatedAt:    user.CreatedAt,
		UserStatus:   user.Status,
		UserAvatar:   user.Avatar,
		Gender:       user.Gender,
		DateOfBirth:  user.DateOfBirth,
		Bio:          user.Bio,
	}

	response.Success(c, gin.H{
		"user_info":   userResponse,
		"accessToken": accessToken,
	})
}

func (ac *AuthController) Logout(c *gin.Context) {
	cookies := c.Request.Cookies()
	for _, cookie := range cookies {
		c.SetCookie(cookie.Name, "", -1, "/", "", cookie.Secure, cookie.HttpOnly)
	}

	response.Success(c, nil)
}

func (ac *AuthController) VerifyEmail(c *gin.Context) {
	code := c.Query("token")
	if code == "" {
		response.BadRequest(c, "Cần mã xác thực")
		return
	}

	var user models.User
	result := ac.DB.Where("code = ?", code).First(&user)
	if result.Error != nil {
		response.BadRequest(c, "Có lỗi xảy ra khi xác minh email")
		return
	}

	// Kiểm tra xem mã xác thực đã hết hạn chưa (5 phút)
	if time.Since(user.CodeCreatedAt) > 5*time.Minute {
		response.BadRequest(c, "Mã xác thực đã hết hạn. Vui lòng yêu cầu mã mới.")
		return
	}

	user.IsVerified = true
	user.Code = ""
	ac.DB.Save(&user)

	response.Success(c, user)
}

func (ac *AuthController) RegisterUser(c *gin.Context) {
	var input dto.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := ac.Auth.CreateUser(models.User{
		Email:       input.Email,
		Password:    input.Password,
		PhoneNumber: input.PhoneNumber,
		Name:        input.Name,
		Role:        input.Role,
	})
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, user)
}

func (ac *AuthController) ResendVerificationCode(c *gin.Context) {
	var input dto.ResendVerificationInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var user models.User
	result := ac.DB.Where("email = ? OR phone_number = ?", input.Identifier, input.Identifier).First(&user)
	if result.Error != nil {
		response.BadRequest(c, "Người dùng không tồn tại.")
		return
	}

	err := ac.Auth.RegenerateVerificationCode(user.ID)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}

func (ac *AuthController) ForgetPassword(c *gin.Context) {
	var input dto.ForgetPasswordInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var user models.User
	result := ac.DB.Where("email = ? OR phone_number = ?", input.Identifier, input.Identifier).First(&user)
	if result.Error != nil {
		response.BadRequest(c, "Người dùng không tồn tại.")
		return
	}

	err := ac.Auth.ResetPass(user)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}

func (ac *AuthController) ResetPassword(c *gin.Context) {
	var input dto.LoginInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var user models.User
	result := ac.DB.Where("email = ? OR phone_number = ?", input.Identifier, input.Identifier).First(&user)
	if result.Error != nil {
		response.BadRequest(c, "Người dùng không tồn tại.")
		return
	}

	err := ac.Auth.NewPass(user, input.Password)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}

func (ac *AuthController) VerifyCode(c *gin.Context) {
	var input dto.VerifyCodeInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var user models.User
	result := ac.DB.Where("email = ?", input.Email).First(&user)
	if result.Error != nil {
		response.BadRequest(c, "Không tìm thấy người dùng với email này")
		return
	}

	if user.Code != input.Code {
		response.BadRequest(c, "Mã xác thực không hợp lệ")
		return
	}

	if time.Since(user.CodeCreatedAt) > 5*time.Minute {
		response.BadRequest(c, "Mã xác thực đã hết hạn. Vui lòng yêu cầu mã mới.")
		return
	}

	user.Code = ""
	if !user.IsVerified {
		user.IsVerified = true
	}

	ac.DB.Save(&user)

	response.Success(c, nil)
}

// AuthGoogle function để xử lý yêu cầu xác thực từ Google
func (ac *AuthController) AuthGoogle(c *gin.Context) {
	var token struct {
		TokenId string `json:"tokenId"`
	}

	// Bind dữ liệu token từ request
	if err := c.ShouldBindJSON(&token); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	// Xác minh tokenId từ Google
	payload, err := verifyGoogleIDToken(token.TokenId)
	if err != nil {
		response.Unauthorized(c)
		return
	}
	// Lấy thông tin người dùng từ payload
	googleUser := dto.GoogleUser{
		Name:          payload.Claims["name"].(string),
		Email:         payload.Claims["email"].(string),
		VerifiedEmail: payload.Claims["email_verified"].(bool),
		Picture:       payload.Claims["picture"].(string),
	}
	// Kiểm tra nếu email chưa được xác thực
	if !googleUser.VerifiedEmail {
		response.BadRequest(c, "Email has not been verified")
		return
	}

	var user models.User
	result := ac.DB.Where("email = ?", googleUser.Email).First(&user)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		// Nếu chưa có tài khoản thì tạo tài khoản mới
		user, err = ac.Auth.CreateGoogleUser(googleUser.Name, googleUser.Email, googleUser.Picture)
		if err != nil {
			response.ServerError(c)
			return
		}
	} else if result.Error != nil {
		// Nếu có lỗi khi tìm kiếm người dùng
		response.ServerError(c)
		return
	}

	userResponse := dto.UserLoginResponse{
		UserID:       user.ID,
		UserName:     user.Name,
		UserEmail:    user.Email,
		UserVerified: user.IsVerified,
		UserPhone:    user.PhoneNumber,
		UserRole:     user.Role,
		UpdatedAt:    user.UpdatedAt,
		CreatedAt:    user.CreatedAt,
		UserAvatar:   user.Avatar,
		Gender:       user.Gender,
		DateOfBirth:  user.DateOfBirth,
	}
	userInfo := services.UserInfo{
		UserId: user.ID,
		Role:   user.Role,
	}

	accessToken, err := services.GenerateToken(userInfo, 15, true)
	if err != nil {
		log.Println("Error generating access token:", err)
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, gin.H{
		"user_info":   userResponse,
		"accessToken": accessToken,
	})
}

// verifyGoogleIDToken function - Xác thực ID token từ Google
func verifyGoogleIDToken(tokenId string) (*idtoken.Payload, error) {
	clientID := os.Getenv("GOOGLE_CLIENT_ID")
	payload, err := idtoken.Validate(context.Background(), tokenId, clientID)
	if err != nil {
		return nil, err
	}
	return payload, nil
}
