package services

import (
	"time"

	"betravel/errors"
	"betravel/models"
)

// DateLayout là định dạng ngày dùng xuyên suốt hệ thống.
// Chỉ dùng ngày lịch, không kèm giờ, để phép tính theo ngày không lệ thuộc múi giờ.
const DateLayout = "2006-01-02"

// ParseDateRange parse và kiểm tra một khoảng ngày, endDate phải >= startDate
func ParseDateRange(startDate, endDate string) (time.Time, time.Time, error) {
	start, err := time.Parse(DateLayout, startDate)
	if err != nil {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "Định dạng ngày bắt đầu không hợp lệ", err)
	}

	end, err := time.Parse(DateLayout, endDate)
	if err != nil {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "Định dạng ngày kết thúc không hợp lệ", err)
	}

	if end.Before(start) {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidDateRange, "Ngày kết thúc phải sau hoặc trùng ngày bắt đầu", nil)
	}

	return start, end, nil
}

// CountItineraryDays tính số ngày của chuyến đi, tính cả hai đầu
func CountItineraryDays(startDate, endDate string) (int, error) {
	start, end, err := ParseDateRange(startDate, endDate)
	if err != nil {
		return 0, err
	}
	return int(end.Sub(start).Hours()/24) + 1, nil
}

// GenerateItinerary sinh lịch trình trống cho một khoảng ngày.
// startDate == endDate cho đúng một ngày.
func GenerateItinerary(startDate, endDate string) ([]models.ItineraryDay, error) {
	start, end, err := ParseDateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	n := int(end.Sub(start).Hours()/24) + 1
	days := make([]models.ItineraryDay, 0, n)
	for day := 1; day <= n; day++ {
		days = append(days, models.ItineraryDay{
			Day:         day,
			Title:       "",
			Description: "",
			Date:        start.AddDate(0, 0, day-1).Format(DateLayout),
		})
	}
	return days, nil
}

// MergeItinerary đối chiếu lịch trình cũ với khoảng ngày mới, giữ lại tối đa
// tiêu đề/mô tả người dùng đã nhập. Ghép theo vị trí trong danh sách, không theo
// số day lưu trong bản ghi. day và date luôn được tính lại từ khoảng ngày mới.
// Trả về lịch trình mới và số ngày cuối bị cắt bỏ để caller báo cho người dùng.
// Chạy lại trên một lịch trình đã nhất quán cho ra kết quả giống hệt.
func MergeItinerary(prev []models.ItineraryDay, startDate, endDate string) ([]models.ItineraryDay, int, error) {
	merged, err := GenerateItinerary(startDate, endDate)
	if err != nil {
		return nil, 0, err
	}

	for i := range merged {
		if i < len(prev) {
			merged[i].Title = prev[i].Title
			merged[i].Description = prev[i].Description
		}
	}

	dropped := 0
	if len(prev) > len(merged) {
		dropped = len(prev) - len(merged)
	}

	return merged, dropped, nil
}

// CloneItinerary tạo bản sao sâu với slice và struct mới hoàn toàn
func CloneItinerary(days []models.ItineraryDay) []models.ItineraryDay {
	if days == nil {
		return nil
	}
	cloned := make([]models.ItineraryDay, len(days))
	copy(cloned, days)
	return cloned
}
