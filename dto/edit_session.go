package dto

// ProposeDatesRequest đề xuất một khoảng ngày mới cho phiên chỉnh sửa.
// Thay đổi chưa có hiệu lực với lịch trình cho tới khi người dùng xác nhận.
type ProposeDatesRequest struct {
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
}

// UpdateItineraryRequest cập nhật nội dung tiêu đề/mô tả từng ngày trong phiên.
// Ghép theo vị trí trong danh sách, day và date do server tính lại.
type UpdateItineraryRequest struct {
	Itinerary []ItineraryDayInput `json:"itinerary" binding:"required"`
}
