package services

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"net/smtp"
	"time"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"betravel/config"
	"betravel/models"
)

type UserInfo struct {
	UserId uint `json:"userid"`
	Role   int  `json:"role"`
}

type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

// AuthService xử lý đăng ký, xác thực, token và email giao dịch
type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

func generateVerificationCode() (string, error) {
	code := ""

	for i := 0; i < 6; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		code += n.String()
	}

	return code, nil
}

func smtpConfig() (from, password, host, port string) {
	return config.GetEnv("SMTP_FROM"), config.GetEnv("SMTP_PASSWORD"),
		config.GetEnv("SMTP_HOST"), config.GetEnv("SMTP_PORT")
}

func sendMail(to []string, subject, body string) error {
	from, password, host, port := smtpConfig()

	msg := []byte("MIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n" + subject + "\n" + body)

	auth := smtp.PlainAuth("", from, password, host)

	return smtp.SendMail(host+":"+port, auth, from, to, msg)
}

func sendVerificationEmail(email string, token string) error {
	subject := "Subject: Mã dùng một lần của bạn\n"
	body := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head>
			<meta charset="UTF-8">
			<title>Mã xác thực</title>
		</head>
		<body>
			<p>Xin chào %s,</p>
			<p>Chúng tôi đã nhận yêu cầu mã dùng một lần để dùng cho tài khoản của bạn.</p>
			<p>Mã dùng một lần của bạn là: <strong>%s</strong></p>
			<p>Nếu không yêu cầu mã này thì bạn có thể bỏ qua email này một cách an toàn. Có thể ai đó khác đã nhập địa chỉ email của bạn do nhầm lẫn.</p>
			<p>Bạn có thể bấm vào nút sau để xác nhận tài khoản</p>
			<p>
				<a href="%s/verify-email?token=%s" style="display: inline-block; padding: 10px 20px; background-color: #1a73e8; color: white; text-decoration: none; border-radius: 5px;">
					Xác nhận email
				</a>
			</p>
			<p>Xin cám ơn,<br>Nhóm tài khoản</p>
		</body>
		</html>
	`, email, token, config.GetEnv("FRONTEND_URL"), token)

	return sendMail([]string{email}, subject, body)
}

func sendcodeEmail(email string, token string) error {
	subject := "Subject: Mã đăng nhập\n"
	body := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head>
			<meta charset="UTF-8">
			<title>Mã xác thực</title>
		</head>
		<body>
			<p>Xin chào %s,</p>
			<p>Chúng tôi đã nhận yêu cầu mã dùng một lần để dùng cho tài khoản của bạn.</p>
			<p>Mã đăng nhập là: <strong>%s</strong></p>
			<p>Nếu không yêu cầu mã này thì bạn có thể bỏ qua email này một cách an toàn. Có thể ai đó khác đã nhập địa chỉ email của bạn do nhầm lẫn.</p>
			<p>Xin cám ơn,<br>Nhóm tài khoản</p>
		</body>
		</html>
	`, email, token)

	return sendMail([]string{email}, subject, body)
}

// SendBookingEmail gửi email xác nhận đặt chỗ cho khách
func SendBookingEmail(email string, bookingId uint, tripName string, totalPrice float64, startDate string, endDate string) error {
	subject := "Subject: Đặt chỗ thành công\n"

	priceFormatted := formatCurrency(totalPrice)

	body := fmt.Sprintf(`<!DOCTYPE html>
	<html>
	<head>
		<meta charset="UTF-8">
		<title>Đặt chỗ thành công</title>
	</head>
	<body>
		<p>Xin chào,</p>
		<p>Chúc mừng! Bạn đã đặt chỗ thành công.</p>
		<p>Thông tin đặt chỗ của bạn như sau:</p>
		<ul>
			<li>Mã đặt chỗ: <strong>%d</strong></li>
			<li>Chuyến đi: <strong>%s</strong></li>
			<li>Ngày khởi hành: <strong>%s</strong></li>
			<li>Ngày kết thúc: <strong>%s</strong></li>
			<li>Tổng giá trị: <strong>%s VND</strong></li>
		</ul>
		<p>Chúng tôi sẽ gửi cho bạn thông tin chi tiết khi có sự thay đổi.</p>
		<p>Cảm ơn bạn đã sử dụng dịch vụ của chúng tôi!</p>
		<p>Xin cảm ơn,<br>Nhóm hỗ trợ</p>
	</body>
	</html>`, bookingId, tripName, startDate, endDate, priceFormatted)

	return sendMail([]string{email}, subject, body)
}

// SendNews gửi một email thông báo chung
func SendNews(email string, title string, mess string) error {
	subject := "Subject: " + title + "\n"
	body := fmt.Sprintf(`<!DOCTYPE html>
	<html>
	<head>
		<meta charset="UTF-8">
		<title>%s</title>
	</head>
	<body>
		<p>Xin chào,</p>
		<p>%s</p>
		<p>Xin cảm ơn,<br>Nhóm hỗ trợ</p>
	</body>
	</html>`, title, mess)

	return sendMail([]string{email}, subject, body)
}

func formatCurrency(amount float64) string {
	return fmt.Sprintf("%0.2f", amount)
}

func (s *AuthService) GetUserByEmail(email string) (models.User, error) {
	var user models.User
	result := s.db.Where("email = ?", email).First(&user)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return user, fmt.Errorf("không tìm thấy người dùng với email %s", email)
	}

	if result.Error != nil {
		return user, result.Error
	}

	return user, nil
}

func (s *AuthService) GetUserByPhoneNumber(phoneNumber string) (models.User, error) {
	var user models.User
	result := s.db.Where("phone_number = ?", phoneNumber).First(&user)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return user, fmt.Errorf("không tìm thấy người dùng với số điện thoại %s", phoneNumber)
	}

	if result.Error != nil {
		return user, result.Error
	}

	return user, nil
}

func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

// GenerateToken ký JWT HS256 chứa userid/role. Token sống ngắn, client lấy
// token mới trước mỗi request thay đổi dữ liệu, không cache.
func GenerateToken(userInfo UserInfo, expiryMinutes int, isAccessToken bool) (string, error) {
	claims := &Claims{
		UserInfo: userInfo,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Minute * time.Duration(expiryMinutes)).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	var secretKeyToUse []byte
	if isAccessToken {
		secretKeyToUse = []byte(config.GetEnv("SECRET_KEY_ACCESS_TOKEN"))
	} else {
		secretKeyToUse = []byte(config.GetEnv("SECRET_KEY_REFRESH_TOKEN"))
	}

	return token.SignedString(secretKeyToUse)
}

// CreateUser đăng ký tài khoản mới và gửi email chứa mã xác thực
func (s *AuthService) CreateUser(input models.User) (models.User, error) {
	if input.Email == "" || input.Password == "" || input.PhoneNumber == "" {
		return models.User{}, errors.New("không được để trống email, password, phone")
	}

	existingEmail, err := s.GetUserByEmail(input.Email)
	if err == nil {
		return models.User{}, fmt.Errorf("email %s đã được sử dụng", existingEmail.Email)
	}

	existingPhone, err := s.GetUserByPhoneNumber(input.PhoneNumber)
	if err == nil {
		return models.User{}, fmt.Errorf("số điện thoại %s đã được sử dụng", existingPhone.PhoneNumber)
	}

	hashedPassword, err := HashPassword(input.Password)
	if err != nil {
		return models.User{}, err
	}

	token, err := generateVerificationCode()
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Email:         input.Email,
		Password:      hashedPassword,
		PhoneNumber:   input.PhoneNumber,
		IsVerified:    false,
		Code:          token,
		CodeCreatedAt: time.Now(),
		Role:          input.Role,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
		Name:          input.Name,
	}

	result := s.db.Create(&user)
	if result.Error != nil {
		return user, result.Error
	}

	if err := sendVerificationEmail(input.Email, token); err != nil {
		return user, err
	}

	return user, nil
}

// RegenerateVerificationCode cấp lại mã xác thực và gửi qua email
func (s *AuthService) RegenerateVerificationCode(userID uint) error {
	var user models.User
	result := s.db.First(&user, userID)
	if result.Error != nil {
		return result.Error
	}

	token, err := generateVerificationCode()
	if err != nil {
		return err
	}

	user.Code = token
	user.CodeCreatedAt = time.Now()
	if err := s.db.Save(&user).Error; err != nil {
		return err
	}

	return sendVerificationEmail(user.Email, token)
}

// ResetPass cấp mã dùng một lần cho luồng quên mật khẩu
func (s *AuthService) ResetPass(user models.User) error {
	token, err := generateVerificationCode()
	if err != nil {
		return err
	}

	user.Code = token
	user.CodeCreatedAt = time.Now()
	if err := s.db.Save(&user).Error; err != nil {
		return err
	}

	return sendcodeEmail(user.Email, token)
}

// NewPass đặt mật khẩu mới sau khi mã được xác thực
func (s *AuthService) NewPass(user models.User, newPassword string) error {
	hashedPassword, err := HashPassword(newPassword)
	if err != nil {
		return err
	}

	user.Password = hashedPassword
	user.Code = ""
	if err := s.db.Save(&user).Error; err != nil {
		return err
	}

	return SendNews(user.Email, "Đổi mật khẩu", "Mật khẩu của bạn đã được cập nhật thành công.")
}

// CreateGoogleUser tạo tài khoản từ đăng nhập Google, đã xác thực sẵn
func (s *AuthService) CreateGoogleUser(name, email, avatar string) (models.User, error) {
	user := models.User{
		Email:      email,
		Name:       name,
		Avatar:     avatar,
		IsVerified: true,
		// Số điện thoại giả để thỏa ràng buộc unique, người dùng cập nhật sau
		PhoneNumber: fmt.Sprintf("g%09d", time.Now().UnixNano()%1000000000),
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	result := s.db.Create(&user)
	if result.Error != nil {
		return user, result.Error
	}

	return user, nil
}
