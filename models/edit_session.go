package models

import "time"

// Edit session state
const (
	EditSessionStateIdle     = "idle"
	EditSessionStateAwaiting = "awaiting_confirmation"
)

// PendingDateUpdate giữ một thay đổi ngày chưa được xác nhận
type PendingDateUpdate struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// EditSession là trạng thái của một phiên chỉnh sửa chuyến đi, lưu trên Redis.
// Snapshot được chụp đúng một lần lúc mở phiên và không bao giờ bị ghi đè,
// kể cả qua nhiều vòng xác nhận, để Cancel luôn quay về được trạng thái ban đầu.
type EditSession struct {
	ID     string `json:"id"`
	TripID uint   `json:"tripId"`
	UserID uint   `json:"userId"`
	State  string `json:"state"`

	// Snapshot lúc mở phiên
	SnapshotStartDate string         `json:"snapshotStartDate"`
	SnapshotEndDate   string         `json:"snapshotEndDate"`
	SnapshotItinerary []ItineraryDay `json:"snapshotItinerary"`
	HasSnapshot       bool           `json:"hasSnapshot"` // false nếu chuyến đi chưa có lịch trình lúc mở phiên

	// Mốc ngày tham chiếu, được cập nhật lại sau mỗi lần Confirm
	ReferenceStartDate string `json:"referenceStartDate"`
	ReferenceEndDate   string `json:"referenceEndDate"`

	// Trạng thái form hiện tại
	StartDate string         `json:"startDate"`
	EndDate   string         `json:"endDate"`
	Itinerary []ItineraryDay `json:"itinerary"`

	Pending *PendingDateUpdate `json:"pending,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
