package services

import (
	"testing"

	"betravel/errors"
	"betravel/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountItineraryDays(t *testing.T) {
	n, err := CountItineraryDays("2024-06-10", "2024-06-12")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = CountItineraryDays("2024-06-10", "2024-06-10")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestGenerateItinerary(t *testing.T) {
	days, err := GenerateItinerary("2024-06-10", "2024-06-12")
	require.NoError(t, err)
	require.Len(t, days, 3)

	assert.Equal(t, 1, days[0].Day)
	assert.Equal(t, "2024-06-10", days[0].Date)
	assert.Equal(t, 2, days[1].Day)
	assert.Equal(t, "2024-06-11", days[1].Date)
	assert.Equal(t, 3, days[2].Day)
	assert.Equal(t, "2024-06-12", days[2].Date)

	for _, d := range days {
		assert.Empty(t, d.Title)
		assert.Empty(t, d.Description)
	}
}

func TestGenerateItinerarySingleDay(t *testing.T) {
	days, err := GenerateItinerary("2024-06-10", "2024-06-10")
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Equal(t, 1, days[0].Day)
	assert.Equal(t, "2024-06-10", days[0].Date)
}

func TestGenerateItineraryInvalidRange(t *testing.T) {
	_, err := GenerateItinerary("2024-06-12", "2024-06-10")
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodeInvalidDateRange, appErr.Code)

	_, err = GenerateItinerary("10/06/2024", "2024-06-12")
	require.Error(t, err)
	appErr = errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodeInvalidFormat, appErr.Code)
}

func TestMergeItineraryKeepsContentByPosition(t *testing.T) {
	prev := []models.ItineraryDay{
		{Day: 1, Title: "Đón khách", Description: "Sân bay", Date: "2024-06-10"},
		{Day: 2, Title: "Tham quan", Description: "Phố cổ", Date: "2024-06-11"},
	}

	merged, dropped, err := MergeItinerary(prev, "2024-07-01", "2024-07-03")
	require.NoError(t, err)
	require.Len(t, merged, 3)
	assert.Zero(t, dropped)

	assert.Equal(t, "Đón khách", merged[0].Title)
	assert.Equal(t, "Sân bay", merged[0].Description)
	assert.Equal(t, "Tham quan", merged[1].Title)
	assert.Empty(t, merged[2].Title)

	// day và date luôn được tính lại từ khoảng ngày mới
	assert.Equal(t, "2024-07-01", merged[0].Date)
	assert.Equal(t, "2024-07-02", merged[1].Date)
	assert.Equal(t, "2024-07-03", merged[2].Date)
	assert.Equal(t, 3, merged[2].Day)
}

func TestMergeItineraryShrinkDropsTail(t *testing.T) {
	prev := []models.ItineraryDay{
		{Day: 1, Title: "Ngày 1"},
		{Day: 2, Title: "Ngày 2"},
		{Day: 3, Title: "Ngày 3"},
	}

	merged, dropped, err := MergeItinerary(prev, "2024-06-10", "2024-06-10")
	require.NoError(t, err)
	require.Len(t, merged, 1)
	assert.Equal(t, 2, dropped)
	assert.Equal(t, "Ngày 1", merged[0].Title)
}

func TestMergeItineraryEmptyPrevious(t *testing.T) {
	merged, dropped, err := MergeItinerary(nil, "2024-06-10", "2024-06-11")
	require.NoError(t, err)
	require.Len(t, merged, 2)
	assert.Zero(t, dropped)
}

func TestMergeItineraryIdempotent(t *testing.T) {
	prev := []models.ItineraryDay{
		{Day: 1, Title: "Ngày 1", Description: "A"},
		{Day: 2, Title: "Ngày 2", Description: "B"},
	}

	once, dropped, err := MergeItinerary(prev, "2024-06-10", "2024-06-11")
	require.NoError(t, err)
	assert.Zero(t, dropped)

	twice, dropped, err := MergeItinerary(once, "2024-06-10", "2024-06-11")
	require.NoError(t, err)
	assert.Zero(t, dropped)
	assert.Equal(t, once, twice)
}

func TestCloneItinerary(t *testing.T) {
	original := []models.ItineraryDay{{Day: 1, Title: "Ngày 1"}}
	cloned := CloneItinerary(original)

	cloned[0].Title = "Đã sửa"
	assert.Equal(t, "Ngày 1", original[0].Title)

	assert.Nil(t, CloneItinerary(nil))
}
