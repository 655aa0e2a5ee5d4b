package dto

// MonthRevenue doanh thu theo từng tháng trong năm
type MonthRevenue struct {
	Month        string  `json:"month"`
	Revenue      float64 `json:"revenue"`
	BookingCount int     `json:"bookingCount"`
}

// TripRevenue doanh thu gộp theo từng chuyến đi của người tổ chức
type TripRevenue struct {
	TripID       uint    `json:"tripId"`
	TripName     string  `json:"tripName"`
	BookingCount int     `json:"bookingCount"`
	Revenue      float64 `json:"revenue"`
}

type OrganizerDashboardResponse struct {
	TotalTrips          int64          `json:"totalTrips"`
	PublishedTrips      int64          `json:"publishedTrips"`
	CompletedTrips      int64          `json:"completedTrips"`
	TotalBookings       int64          `json:"totalBookings"`
	PendingBookings     int64          `json:"pendingBookings"`
	TotalRevenue        float64        `json:"totalRevenue"`
	CurrentMonthRevenue float64        `json:"currentMonthRevenue"`
	LastMonthRevenue    float64        `json:"lastMonthRevenue"`
	CurrentWeekRevenue  float64        `json:"currentWeekRevenue"`
	MonthlyRevenue      []MonthRevenue `json:"monthlyRevenue"`
	TripRevenue         []TripRevenue  `json:"tripRevenue"`
}

type CustomerDashboardResponse struct {
	UpcomingBookings []BookingResponse `json:"upcomingBookings"`
	PastBookings     []BookingResponse `json:"pastBookings"`
	TotalSpent       float64           `json:"totalSpent"`
	ReviewCount      int64             `json:"reviewCount"`
}
