package controllers

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"

	unidecode "github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"

	"betravel/dto"
	"betravel/models"
	"betravel/services"
)

// Hàm chuẩn hóa chuỗi
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// Tạo đối tượng closestmatch cho danh sách từ khóa
func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// Tính độ tương đồng giữa hai chuỗi
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0 // Nếu cả hai chuỗi đều rỗng, tương đồng là 100%
	}

	similarity := 1.0 - float64(distance)/maxLen
	return similarity
}

func extractDurationFromQuery(query string) int {
	// Bắt số trước từ "ngày", ví dụ "trekking 5 ngày"
	re := regexp.MustCompile(`(\d+)\s*ngay`)
	match := re.FindStringSubmatch(query)
	if len(match) < 2 {
		return -1 // Không tìm thấy số ngày
	}

	duration, err := strconv.Atoi(match[1])
	if err != nil {
		return -1
	}
	return duration
}

// Tách thông tin từ query và ánh xạ loại hình cùng số ngày
func parseTripType(query string) (string, int) {
	// Danh sách từ khóa cho từng loại hình chuyến đi
	trekkingKeywords := []string{"trekking", "leo nui", "di bo duong dai", "trek"}
	beachKeywords := []string{"bien", "beach", "dao", "lan bien"}
	cultureKeywords := []string{"van hoa", "di san", "lang nghe", "lich su"}
	foodKeywords := []string{"am thuc", "food tour", "dac san"}

	// Chuẩn hóa query
	normalizedQuery := normalizeInput(query)
	duration := extractDurationFromQuery(normalizedQuery)

	// Tạo matcher cho từng nhóm từ khóa
	trekkingMatcher := createMatcher(trekkingKeywords)
	beachMatcher := createMatcher(beachKeywords)
	cultureMatcher := createMatcher(cultureKeywords)
	foodMatcher := createMatcher(foodKeywords)

	// Tìm từ khóa gần đúng cho từng nhóm
	trekkingMatch := trekkingMatcher.Closest(normalizedQuery)
	beachMatch := beachMatcher.Closest(normalizedQuery)
	cultureMatch := cultureMatcher.Closest(normalizedQuery)
	foodMatch := foodMatcher.Closest(normalizedQuery)

	// Kiểm tra độ khớp rõ ràng nhất (ưu tiên kết quả đầu tiên khớp)
	if trekkingMatch != "" && strings.Contains(normalizedQuery, trekkingMatch) {
		return "trekking", duration
	}
	if beachMatch != "" && strings.Contains(normalizedQuery, beachMatch) {
		return "biển", duration
	}
	if cultureMatch != "" && strings.Contains(normalizedQuery, cultureMatch) {
		return "văn hóa", duration
	}
	if foodMatch != "" && strings.Contains(normalizedQuery, foodMatch) {
		return "ẩm thực", duration
	}

	// Trả về rỗng nếu không khớp
	return "", duration
}

// Tạo danh sách các giá trị duy nhất từ cơ sở dữ liệu cho closestmatch
func prepareUniqueList(trips []models.Trip, field string) []string {
	uniqueValues := make(map[string]bool)

	for _, trip := range trips {
		var value string
		switch field {
		case "province":
			value = trip.Province
		case "location":
			value = trip.Location
		}
		if value != "" {
			uniqueValues[normalizeInput(value)] = true
		}
	}

	uniqueList := make([]string, 0, len(uniqueValues))
	for val := range uniqueValues {
		uniqueList = append(uniqueList, val)
	}
	return uniqueList
}

// Tính điểm phù hợp cho chuyến đi
func calculateScore(query string, trip models.Trip, cmProvince, cmLocation *closestmatch.ClosestMatch) int {
	normalizedQuery := normalizeInput(query)
	tripType, duration := parseTripType(normalizedQuery)
	score := 0

	if tripType != "" {
		for _, t := range trip.TripTypes {
			if normalizeInput(t) == normalizeInput(tripType) {
				score += 20
				break
			}
		}
	}
	if duration != -1 {
		if dayCount, err := services.CountItineraryDays(trip.StartDate, trip.EndDate); err == nil && dayCount == duration {
			score += 15
		}
	}
	score += calculateLocationScore(normalizedQuery, trip, cmProvince, cmLocation)
	score += calculateTypeScore(normalizedQuery, trip.TripTypes)

	return score
}

func calculateLocationScore(query string, trip models.Trip, cmProvince, cmLocation *closestmatch.ClosestMatch) int {
	score := 0
	if cmProvince.Closest(query) == normalizeInput(trip.Province) {
		score += 13
	}
	if cmLocation.Closest(query) == normalizeInput(trip.Location) {
		score += 1
	}
	return score
}

func calculateTypeScore(query string, tripTypes []string) int {
	maxTypeScore := 12
	typeScore := 0

	for _, tripType := range tripTypes {
		normalizedType := normalizeInput(tripType)
		similarity := calculateSimilarity(query, normalizedType)
		if similarity > 0.7 || strings.Contains(query, normalizedType) {
			typeScore += 4
			if typeScore >= maxTypeScore {
				break
			}
		}
	}
	return typeScore
}

func filterAndScoreTrips(
	query string,
	trips []models.Trip,
	cmProvince, cmLocation *closestmatch.ClosestMatch,
) []dto.ScoredTrip {
	var filteredTrips []dto.ScoredTrip
	scoreCh := make(chan dto.ScoredTrip, len(trips))
	var wg sync.WaitGroup

	for _, trip := range trips {
		wg.Add(1)
		go func(trip models.Trip) {
			defer wg.Done()
			score := calculateScore(query, trip, cmProvince, cmLocation)
			if score > 0 {
				scoreCh <- dto.ScoredTrip{
					Trip:  trip,
					Score: score,
				}
			}
		}(trip)
	}

	go func() {
		wg.Wait()
		close(scoreCh)
	}()

	for scoredTrip := range scoreCh {
		filteredTrips = append(filteredTrips, scoredTrip)
	}

	sort.SliceStable(filteredTrips, func(i, j int) bool {
		return filteredTrips[i].Score > filteredTrips[j].Score
	})
	return filteredTrips
}
