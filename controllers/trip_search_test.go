package controllers

import (
	"testing"

	"betravel/models"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeInput(t *testing.T) {
	assert.Equal(t, "ta nang", normalizeInput("  Tà Năng "))
	assert.Equal(t, "bien dao ly son", normalizeInput("Biển đảo Lý Sơn"))
	assert.Equal(t, "", normalizeInput("   "))
}

func TestCalculateSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, calculateSimilarity("trekking", "trekking"))
	assert.Equal(t, 1.0, calculateSimilarity("", ""))

	sim := calculateSimilarity("trekking", "treking")
	assert.Greater(t, sim, 0.7)

	sim = calculateSimilarity("trekking", "am thuc")
	assert.Less(t, sim, 0.5)
}

func TestExtractDurationFromQuery(t *testing.T) {
	assert.Equal(t, 5, extractDurationFromQuery("trekking 5 ngay"))
	assert.Equal(t, 3, extractDurationFromQuery("di bien 3ngay"))
	assert.Equal(t, -1, extractDurationFromQuery("trekking ta nang"))
}

func TestParseTripType(t *testing.T) {
	tripType, duration := parseTripType("trekking ta nang 4 ngay")
	assert.Equal(t, "trekking", tripType)
	assert.Equal(t, 4, duration)

	tripType, duration = parseTripType("lan bien phu quoc")
	assert.Equal(t, "biển", tripType)
	assert.Equal(t, -1, duration)

	tripType, _ = parseTripType("tour am thuc sai gon")
	assert.Equal(t, "ẩm thực", tripType)
}

func TestPrepareUniqueList(t *testing.T) {
	trips := []models.Trip{
		{Province: "Lâm Đồng", Location: "Tà Năng"},
		{Province: "Lâm Đồng", Location: "Đà Lạt"},
		{Province: "", Location: "Phú Quốc"},
	}

	provinces := prepareUniqueList(trips, "province")
	assert.Len(t, provinces, 1)
	assert.Contains(t, provinces, "lam dong")

	locations := prepareUniqueList(trips, "location")
	assert.Len(t, locations, 3)
}

func TestFilterAndScoreTrips(t *testing.T) {
	trips := []models.Trip{
		{
			ID:        1,
			Name:      "Trekking Tà Năng",
			Province:  "Lâm Đồng",
			Location:  "Tà Năng",
			StartDate: "2024-06-10",
			EndDate:   "2024-06-12",
			TripTypes: pq.StringArray{"trekking"},
		},
		{
			ID:        2,
			Name:      "Biển Phú Quốc",
			Province:  "Kiên Giang",
			Location:  "Phú Quốc",
			StartDate: "2024-06-10",
			EndDate:   "2024-06-14",
			TripTypes: pq.StringArray{"biển"},
		},
	}

	cmProvince := createMatcher(prepareUniqueList(trips, "province"))
	cmLocation := createMatcher(prepareUniqueList(trips, "location"))

	scored := filterAndScoreTrips("trekking ta nang 3 ngay", trips, cmProvince, cmLocation)
	assert.NotEmpty(t, scored)
	assert.Equal(t, uint(1), scored[0].Trip.ID)

	// kết quả đã sắp theo điểm giảm dần
	for i := 1; i < len(scored); i++ {
		assert.GreaterOrEqual(t, scored[i-1].Score, scored[i].Score)
	}
}
