package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"betravel/errors"
	"betravel/models"
	"betravel/services/logger"
)

// EditSessionService là máy trạng thái xác nhận thay đổi ngày của phiên chỉnh
// sửa chuyến đi: Idle -> AwaitingConfirmation -> Idle (qua Confirm hoặc Cancel).
// Mỗi phiên chỉ có một slot pending duy nhất nên một thay đổi ngày phải được
// xử lý xong trước khi thay đổi tiếp theo được nhận.
type EditSessionService struct {
	store  EditSessionStore
	logger logger.Logger
}

func NewEditSessionService(store EditSessionStore, l logger.Logger) *EditSessionService {
	return &EditSessionService{
		store:  store,
		logger: l,
	}
}

// Start mở một phiên chỉnh sửa cho chuyến đi, chụp snapshot đúng một lần.
// Snapshot không bao giờ bị ghi đè sau đó, kể cả khi người dùng Confirm nhiều lần.
func (s *EditSessionService) Start(ctx context.Context, trip *models.Trip, userID uint) (*models.EditSession, error) {
	now := time.Now()
	session := &models.EditSession{
		ID:     uuid.NewString(),
		TripID: trip.ID,
		UserID: userID,
		State:  models.EditSessionStateIdle,

		SnapshotStartDate: trip.StartDate,
		SnapshotEndDate:   trip.EndDate,
		SnapshotItinerary: CloneItinerary(trip.Itinerary),
		HasSnapshot:       len(trip.Itinerary) > 0,

		ReferenceStartDate: trip.StartDate,
		ReferenceEndDate:   trip.EndDate,

		StartDate: trip.StartDate,
		EndDate:   trip.EndDate,
		Itinerary: CloneItinerary(trip.Itinerary),

		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.store.Save(ctx, session); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không lưu được phiên chỉnh sửa", err)
	}

	s.logger.Info("Mở phiên chỉnh sửa %s cho chuyến đi %d", session.ID, trip.ID)
	return session, nil
}

// Get lấy phiên chỉnh sửa theo ID
func (s *EditSessionService) Get(ctx context.Context, id string) (*models.EditSession, error) {
	return s.store.Get(ctx, id)
}

// ProposeDates ghi nhận một đề xuất thay đổi ngày. Ngày trên form được cập nhật
// ngay để picker hiển thị giá trị mới, nhưng lịch trình chưa bị đụng tới cho
// tới khi người dùng xác nhận.
func (s *EditSessionService) ProposeDates(ctx context.Context, id, startDate, endDate string) (*models.EditSession, error) {
	session, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if session.State != models.EditSessionStateIdle {
		return nil, errors.NewAppError(errors.ErrCodePendingUpdate, "Đang có một thay đổi ngày chờ xác nhận", nil)
	}

	if _, _, err := ParseDateRange(startDate, endDate); err != nil {
		return nil, err
	}

	// So với giá trị hiện tại trên form, không so với snapshot:
	// mỗi lần đổi ngày khác giá trị đang hiển thị đều phải xác nhận lại
	if startDate == session.StartDate && endDate == session.EndDate {
		return session, nil
	}

	session.Pending = &models.PendingDateUpdate{
		StartDate: startDate,
		EndDate:   endDate,
	}
	session.StartDate = startDate
	session.EndDate = endDate
	session.State = models.EditSessionStateAwaiting
	session.UpdatedAt = time.Now()

	if err := s.store.Save(ctx, session); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không lưu được phiên chỉnh sửa", err)
	}

	return session, nil
}

// Confirm áp thay đổi ngày đang chờ: merge lịch trình hiện tại (có thể đã được
// người dùng sửa trong phiên) với khoảng ngày mới, thay cả ngày lẫn lịch trình
// bằng object mới hoàn toàn, rồi cập nhật mốc ngày tham chiếu. Snapshot lúc mở
// phiên được giữ nguyên. Trả về số ngày cuối bị cắt bỏ để caller báo người dùng.
func (s *EditSessionService) Confirm(ctx context.Context, id string) (*models.EditSession, int, error) {
	session, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, 0, err
	}

	if session.State != models.EditSessionStateAwaiting || session.Pending == nil {
		return nil, 0, errors.NewAppError(errors.ErrCodeSessionState, "Không có thay đổi ngày nào đang chờ xác nhận", nil)
	}

	pending := session.Pending
	merged, dropped, err := MergeItinerary(session.Itinerary, pending.StartDate, pending.EndDate)
	if err != nil {
		return nil, 0, err
	}

	session.StartDate = pending.StartDate
	session.EndDate = pending.EndDate
	session.Itinerary = merged
	session.ReferenceStartDate = pending.StartDate
	session.ReferenceEndDate = pending.EndDate
	session.Pending = nil
	session.State = models.EditSessionStateIdle
	session.UpdatedAt = time.Now()

	if err := s.store.Save(ctx, session); err != nil {
		return nil, 0, errors.NewAppError(errors.ErrCodeDBError, "Không lưu được phiên chỉnh sửa", err)
	}

	if dropped > 0 {
		s.logger.Info("Phiên %s: xác nhận ngày mới, cắt bỏ %d ngày cuối", session.ID, dropped)
	}
	return session, dropped, nil
}

// Cancel hủy thay đổi ngày đang chờ và trả form về đúng trạng thái lúc mở phiên
// (bản sao sâu, reference mới). Nếu chuyến đi không có lịch trình lúc mở phiên
// thì chỉ khôi phục ngày, không có gì để khôi phục ở lịch trình.
func (s *EditSessionService) Cancel(ctx context.Context, id string) (*models.EditSession, error) {
	session, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if session.State != models.EditSessionStateAwaiting {
		return nil, errors.NewAppError(errors.ErrCodeSessionState, "Không có thay đổi ngày nào đang chờ xác nhận", nil)
	}

	session.StartDate = session.SnapshotStartDate
	session.EndDate = session.SnapshotEndDate
	session.ReferenceStartDate = session.SnapshotStartDate
	session.ReferenceEndDate = session.SnapshotEndDate
	if session.HasSnapshot {
		session.Itinerary = CloneItinerary(session.SnapshotItinerary)
	}
	session.Pending = nil
	session.State = models.EditSessionStateIdle
	session.UpdatedAt = time.Now()

	if err := s.store.Save(ctx, session); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không lưu được phiên chỉnh sửa", err)
	}

	return session, nil
}

// UpdateItinerary nhận nội dung tiêu đề/mô tả người dùng sửa trong phiên.
// Ghép theo vị trí, chỉ chép nội dung; day và date giữ nguyên giá trị dẫn xuất.
func (s *EditSessionService) UpdateItinerary(ctx context.Context, id string, days []models.ItineraryDay) (*models.EditSession, error) {
	session, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if session.State != models.EditSessionStateIdle {
		return nil, errors.NewAppError(errors.ErrCodePendingUpdate, "Đang có một thay đổi ngày chờ xác nhận", nil)
	}

	for i := range session.Itinerary {
		if i < len(days) {
			session.Itinerary[i].Title = days[i].Title
			session.Itinerary[i].Description = days[i].Description
		}
	}
	session.UpdatedAt = time.Now()

	if err := s.store.Save(ctx, session); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không lưu được phiên chỉnh sửa", err)
	}

	return session, nil
}

// Close đóng phiên chỉnh sửa sau khi người dùng submit hoặc rời trang
func (s *EditSessionService) Close(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}
