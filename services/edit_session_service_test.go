package services

import (
	"context"
	"encoding/json"
	"testing"

	"betravel/errors"
	"betravel/models"
	"betravel/services/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryEditSessionStore giả lập store trên Redis, serialize qua JSON để mô
// phỏng việc mỗi lần Get trả về một object mới.
type memoryEditSessionStore struct {
	sessions map[string][]byte
}

func newMemoryEditSessionStore() *memoryEditSessionStore {
	return &memoryEditSessionStore{sessions: make(map[string][]byte)}
}

func (s *memoryEditSessionStore) Get(ctx context.Context, id string) (*models.EditSession, error) {
	raw, ok := s.sessions[id]
	if !ok {
		return nil, errors.NewAppError(errors.ErrCodeSessionNotFound, "Không tìm thấy phiên chỉnh sửa", nil)
	}
	var session models.EditSession
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *memoryEditSessionStore) Save(ctx context.Context, session *models.EditSession) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return err
	}
	s.sessions[session.ID] = raw
	return nil
}

func (s *memoryEditSessionStore) Delete(ctx context.Context, id string) error {
	delete(s.sessions, id)
	return nil
}

func newTestEditSessionService() (*EditSessionService, *memoryEditSessionStore) {
	store := newMemoryEditSessionStore()
	return NewEditSessionService(store, logger.NewDefaultLogger(logger.ErrorLevel)), store
}

func testTrip() *models.Trip {
	return &models.Trip{
		ID:        7,
		Name:      "Trekking Tà Năng",
		StartDate: "2024-06-10",
		EndDate:   "2024-06-12",
		Itinerary: []models.ItineraryDay{
			{Day: 1, Title: "Xuất phát", Description: "Di chuyển", Date: "2024-06-10"},
			{Day: 2, Title: "Leo đỉnh", Description: "Cắm trại", Date: "2024-06-11"},
			{Day: 3, Title: "Về lại", Description: "", Date: "2024-06-12"},
		},
	}
}

func TestEditSessionStartSnapshot(t *testing.T) {
	service, _ := newTestEditSessionService()
	ctx := context.Background()

	session, err := service.Start(ctx, testTrip(), 42)
	require.NoError(t, err)
	assert.NotEmpty(t, session.ID)
	assert.Equal(t, uint(7), session.TripID)
	assert.Equal(t, uint(42), session.UserID)
	assert.Equal(t, models.EditSessionStateIdle, session.State)
	assert.True(t, session.HasSnapshot)
	assert.Equal(t, "2024-06-10", session.SnapshotStartDate)
	assert.Equal(t, "2024-06-10", session.ReferenceStartDate)
	require.Len(t, session.SnapshotItinerary, 3)
}

func TestEditSessionSnapshotIsDeepCopy(t *testing.T) {
	service, _ := newTestEditSessionService()
	ctx := context.Background()

	trip := testTrip()
	session, err := service.Start(ctx, trip, 42)
	require.NoError(t, err)

	trip.Itinerary[0].Title = "Đã sửa bên ngoài"
	assert.Equal(t, "Xuất phát", session.SnapshotItinerary[0].Title)
	assert.Equal(t, "Xuất phát", session.Itinerary[0].Title)
}

func TestEditSessionProposeDatesKeepsItinerary(t *testing.T) {
	service, _ := newTestEditSessionService()
	ctx := context.Background()

	session, err := service.Start(ctx, testTrip(), 42)
	require.NoError(t, err)

	proposed, err := service.ProposeDates(ctx, session.ID, "2024-07-01", "2024-07-05")
	require.NoError(t, err)

	assert.Equal(t, models.EditSessionStateAwaiting, proposed.State)
	require.NotNil(t, proposed.Pending)
	assert.Equal(t, "2024-07-01", proposed.StartDate)
	assert.Equal(t, "2024-07-05", proposed.EndDate)

	// lịch trình chưa bị đụng tới khi chưa xác nhận
	require.Len(t, proposed.Itinerary, 3)
	assert.Equal(t, "2024-06-10", proposed.Itinerary[0].Date)
	// mốc tham chiếu cũng chưa đổi
	assert.Equal(t, "2024-06-10", proposed.ReferenceStartDate)
}

func TestEditSessionProposeSameDatesIsNoop(t *testing.T) {
	service, _ := newTestEditSessionService()
	ctx := context.Background()

	session, err := service.Start(ctx, testTrip(), 42)
	require.NoError(t, err)

	same, err := service.ProposeDates(ctx, session.ID, "2024-06-10", "2024-06-12")
	require.NoError(t, err)
	assert.Equal(t, models.EditSessionStateIdle, same.State)
	assert.Nil(t, same.Pending)
}

func TestEditSessionDoubleProposeRejected(t *testing.T) {
	service, _ := newTestEditSessionService()
	ctx := context.Background()

	session, err := service.Start(ctx, testTrip(), 42)
	require.NoError(t, err)

	_, err = service.ProposeDates(ctx, session.ID, "2024-07-01", "2024-07-05")
	require.NoError(t, err)

	_, err = service.ProposeDates(ctx, session.ID, "2024-08-01", "2024-08-05")
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodePendingUpdate, appErr.Code)
}

func TestEditSessionConfirmMergesAndUpdatesReference(t *testing.T) {
	service, _ := newTestEditSessionService()
	ctx := context.Background()

	session, err := service.Start(ctx, testTrip(), 42)
	require.NoError(t, err)

	// người dùng sửa nội dung trong phiên trước khi đổi ngày
	_, err = service.UpdateItinerary(ctx, session.ID, []models.ItineraryDay{
		{Title: "Xuất phát sớm", Description: "Di chuyển"},
	})
	require.NoError(t, err)

	_, err = service.ProposeDates(ctx, session.ID, "2024-07-01", "2024-07-02")
	require.NoError(t, err)

	confirmed, dropped, err := service.Confirm(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, dropped)
	assert.Equal(t, models.EditSessionStateIdle, confirmed.State)
	assert.Nil(t, confirmed.Pending)

	require.Len(t, confirmed.Itinerary, 2)
	assert.Equal(t, "Xuất phát sớm", confirmed.Itinerary[0].Title)
	assert.Equal(t, "Leo đỉnh", confirmed.Itinerary[1].Title)
	assert.Equal(t, "2024-07-01", confirmed.Itinerary[0].Date)
	assert.Equal(t, "2024-07-02", confirmed.Itinerary[1].Date)

	// mốc tham chiếu dời theo ngày mới, snapshot giữ nguyên
	assert.Equal(t, "2024-07-01", confirmed.ReferenceStartDate)
	assert.Equal(t, "2024-07-02", confirmed.ReferenceEndDate)
	assert.Equal(t, "2024-06-10", confirmed.SnapshotStartDate)
	require.Len(t, confirmed.SnapshotItinerary, 3)
	assert.Equal(t, "Xuất phát", confirmed.SnapshotItinerary[0].Title)
}

func TestEditSessionConfirmWithoutPending(t *testing.T) {
	service, _ := newTestEditSessionService()
	ctx := context.Background()

	session, err := service.Start(ctx, testTrip(), 42)
	require.NoError(t, err)

	_, _, err = service.Confirm(ctx, session.ID)
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodeSessionState, appErr.Code)
}

func TestEditSessionCancelRestoresSnapshot(t *testing.T) {
	service, _ := newTestEditSessionService()
	ctx := context.Background()

	session, err := service.Start(ctx, testTrip(), 42)
	require.NoError(t, err)

	_, err = service.UpdateItinerary(ctx, session.ID, []models.ItineraryDay{
		{Title: "Đã sửa trong phiên"},
	})
	require.NoError(t, err)

	_, err = service.ProposeDates(ctx, session.ID, "2024-07-01", "2024-07-05")
	require.NoError(t, err)

	restored, err := service.Cancel(ctx, session.ID)
	require.NoError(t, err)

	assert.Equal(t, models.EditSessionStateIdle, restored.State)
	assert.Nil(t, restored.Pending)
	assert.Equal(t, "2024-06-10", restored.StartDate)
	assert.Equal(t, "2024-06-12", restored.EndDate)
	assert.Equal(t, "2024-06-10", restored.ReferenceStartDate)
	require.Len(t, restored.Itinerary, 3)
	assert.Equal(t, "Xuất phát", restored.Itinerary[0].Title)
}

func TestEditSessionCancelAfterConfirmRestoresOriginalSnapshot(t *testing.T) {
	service, _ := newTestEditSessionService()
	ctx := context.Background()

	session, err := service.Start(ctx, testTrip(), 42)
	require.NoError(t, err)
	original := session.SnapshotItinerary

	// lần đổi ngày đầu tiên được xác nhận, rút chuyến còn 2 ngày
	_, err = service.ProposeDates(ctx, session.ID, "2024-07-01", "2024-07-02")
	require.NoError(t, err)
	_, dropped, err := service.Confirm(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, dropped)

	// lần đổi thứ hai bị hủy, phải quay về trạng thái lúc mở phiên
	// chứ không phải trạng thái sau lần xác nhận
	_, err = service.ProposeDates(ctx, session.ID, "2024-08-01", "2024-08-10")
	require.NoError(t, err)

	restored, err := service.Cancel(ctx, session.ID)
	require.NoError(t, err)

	assert.Equal(t, models.EditSessionStateIdle, restored.State)
	assert.Nil(t, restored.Pending)
	assert.Equal(t, "2024-06-10", restored.StartDate)
	assert.Equal(t, "2024-06-12", restored.EndDate)
	assert.Equal(t, "2024-06-10", restored.ReferenceStartDate)
	assert.Equal(t, "2024-06-12", restored.ReferenceEndDate)

	assert.Equal(t, original, restored.Itinerary)
	require.Len(t, restored.Itinerary, 3)
	assert.Equal(t, "Xuất phát", restored.Itinerary[0].Title)
	assert.Equal(t, "Leo đỉnh", restored.Itinerary[1].Title)
	assert.Equal(t, "Về lại", restored.Itinerary[2].Title)
	assert.Equal(t, "2024-06-10", restored.Itinerary[0].Date)
	assert.Equal(t, "2024-06-12", restored.Itinerary[2].Date)
}

func TestEditSessionCancelWithoutItinerarySnapshot(t *testing.T) {
	service, _ := newTestEditSessionService()
	ctx := context.Background()

	trip := &models.Trip{ID: 9, StartDate: "2024-06-10", EndDate: "2024-06-12"}
	session, err := service.Start(ctx, trip, 42)
	require.NoError(t, err)
	assert.False(t, session.HasSnapshot)

	_, err = service.ProposeDates(ctx, session.ID, "2024-07-01", "2024-07-05")
	require.NoError(t, err)

	restored, err := service.Cancel(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, "2024-06-10", restored.StartDate)
	assert.Empty(t, restored.Itinerary)
}

func TestEditSessionClose(t *testing.T) {
	service, store := newTestEditSessionService()
	ctx := context.Background()

	session, err := service.Start(ctx, testTrip(), 42)
	require.NoError(t, err)

	require.NoError(t, service.Close(ctx, session.ID))
	_, ok := store.sessions[session.ID]
	assert.False(t, ok)

	_, err = service.Get(ctx, session.ID)
	require.Error(t, err)
}
