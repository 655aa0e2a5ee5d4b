package validator

import (
	"regexp"

	"betravel/errors"
	"betravel/models"
)

// ValidateUser validate thông tin user
func ValidateUser(user *models.User) error {
	if user.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email không được để trống", nil)
	}

	if !isValidEmail(user.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}

	if user.Password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Mật khẩu không được để trống", nil)
	}

	if len(user.Password) < 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "Mật khẩu phải có ít nhất 6 ký tự", nil)
	}

	if user.PhoneNumber == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Số điện thoại không được để trống", nil)
	}

	if !isValidPhone(user.PhoneNumber) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Số điện thoại không hợp lệ", nil)
	}

	if user.Role < 0 || user.Role > 2 {
		return errors.NewAppError(errors.ErrCodeInvalidRole, "Role không hợp lệ", nil)
	}

	return nil
}

// ValidateBooking kiểm tra dữ liệu đặt chỗ trước khi tạo
func ValidateBooking(booking *models.Booking) error {
	if booking.TripID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "ID chuyến đi không được để trống", nil)
	}

	if booking.PackageID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "ID gói không được để trống", nil)
	}

	if booking.Guests < 1 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Số khách phải lớn hơn 0", nil)
	}

	if booking.UserID == nil {
		if booking.GuestName == "" {
			return errors.NewAppError(errors.ErrCodeRequiredField, "Tên khách không được để trống", nil)
		}
		if booking.GuestPhone == "" {
			return errors.NewAppError(errors.ErrCodeRequiredField, "Số điện thoại khách không được để trống", nil)
		}
		if !isValidPhone(booking.GuestPhone) {
			return errors.NewAppError(errors.ErrCodeInvalidPhone, "Số điện thoại khách không hợp lệ", nil)
		}
		if booking.GuestEmail != "" && !isValidEmail(booking.GuestEmail) {
			return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email khách không hợp lệ", nil)
		}
	}

	return nil
}

// ValidateReview kiểm tra một đánh giá chuyến đi
func ValidateReview(review *models.Review) error {
	if review.UserID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "ID người dùng không được để trống", nil)
	}

	if review.TripID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "ID chuyến đi không được để trống", nil)
	}

	if review.Star < 1 || review.Star > 5 {
		return errors.NewAppError(errors.ErrCodeValidation, "Số sao đánh giá phải từ 1 đến 5", nil)
	}

	if review.Comment == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Nội dung đánh giá không được để trống", nil)
	}

	return nil
}

// isValidEmail kiểm tra email hợp lệ
func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

// isValidPhone kiểm tra số điện thoại hợp lệ
func isValidPhone(phone string) bool {
	phoneRegex := regexp.MustCompile(`^[0-9]{10}$`)
	return phoneRegex.MatchString(phone)
}

// ValidateEmail kiểm tra email hợp lệ
func ValidateEmail(email string) error {
	if !isValidEmail(email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}
	return nil
}

// ValidatePhone kiểm tra số điện thoại hợp lệ
func ValidatePhone(phone string) error {
	if !isValidPhone(phone) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Số điện thoại không hợp lệ", nil)
	}
	return nil
}

// ValidatePassword kiểm tra mật khẩu hợp lệ
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return errors.NewAppError(errors.ErrCodeInvalidPassword, "Mật khẩu phải có ít nhất 8 ký tự", nil)
	}
	return nil
}
