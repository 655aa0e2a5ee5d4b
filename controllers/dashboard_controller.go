package controllers

import (
	"fmt"
	"sort"
	"time"

	"betravel/constants"
	"betravel/dto"
	"betravel/models"
	"betravel/response"
	"betravel/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// GetOrganizerDashboard trả về thống kê chuyến đi, đơn đặt và doanh thu cho người tổ chức.
// Admin xem được số liệu của toàn hệ thống.
func (d *DashboardController) GetOrganizerDashboard(c *gin.Context) {
	currentUserID := c.GetUint("userID")
	currentUserRole := c.GetInt("userRole")

	if currentUserRole != 1 && currentUserRole != 2 {
		response.Forbidden(c)
		return
	}

	tripQuery := d.DB.Model(&models.Trip{})
	if currentUserRole == 2 {
		tripQuery = tripQuery.Where("user_id = ?", currentUserID)
	}

	var totalTrips, publishedTrips, completedTrips int64
	if err := tripQuery.Session(&gorm.Session{}).Count(&totalTrips).Error; err != nil {
		response.ServerError(c)
		return
	}
	tripQuery.Session(&gorm.Session{}).Where("status = ?", constants.TripStatusPublished).Count(&publishedTrips)
	tripQuery.Session(&gorm.Session{}).Where("status = ?", constants.TripStatusCompleted).Count(&completedTrips)

	bookingQuery := d.DB.Model(&models.Booking{})
	if currentUserRole == 2 {
		bookingQuery = bookingQuery.Where("trip_id IN (?)", d.DB.Model(&models.Trip{}).
			Select("id").
			Where("user_id = ?", currentUserID))
	}

	var bookings []models.Booking
	if err := bookingQuery.Preload("Trip").Find(&bookings).Error; err != nil {
		response.ServerError(c)
		return
	}

	var totalBookings, pendingBookings int64
	var totalRevenue, currentMonthRevenue, lastMonthRevenue, currentWeekRevenue float64

	currentMonth := time.Now().Format("2006-01")
	lastMonth := time.Now().AddDate(0, -1, 0).Format("2006-01")
	currentWeekStart := time.Now().AddDate(0, 0, -int(time.Now().Weekday()))
	currentWeekEnd := currentWeekStart.AddDate(0, 0, 6)

	tripRevenueMap := make(map[uint]*dto.TripRevenue)

	for _, booking := range bookings {
		totalBookings++
		if booking.Status == models.BookingStatusPending {
			pendingBookings++
		}
		if booking.Status == models.BookingStatusCancelled {
			continue
		}

		totalRevenue += booking.TotalPrice

		if booking.CreatedAt.Format("2006-01") == currentMonth {
			currentMonthRevenue += booking.TotalPrice
		}
		if booking.CreatedAt.Format("2006-01") == lastMonth {
			lastMonthRevenue += booking.TotalPrice
		}
		if booking.CreatedAt.After(currentWeekStart) && booking.CreatedAt.Before(currentWeekEnd) {
			currentWeekRevenue += booking.TotalPrice
		}

		rev, ok := tripRevenueMap[booking.TripID]
		if !ok {
			rev = &dto.TripRevenue{TripID: booking.TripID, TripName: booking.Trip.Name}
			tripRevenueMap[booking.TripID] = rev
		}
		rev.BookingCount++
		rev.Revenue += booking.TotalPrice
	}

	var monthlyRevenue []dto.MonthRevenue
	currentYear := time.Now().Year()
	for i := 1; i <= 12; i++ {
		month := fmt.Sprintf("%d-%02d", currentYear, i)
		var revenue float64
		var bookingCount int

		for _, booking := range bookings {
			if booking.Status == models.BookingStatusCancelled {
				continue
			}
			if booking.CreatedAt.Format("2006-01") == month {
				revenue += booking.TotalPrice
				bookingCount++
			}
		}

		monthlyRevenue = append(monthlyRevenue, dto.MonthRevenue{
			Month:        fmt.Sprintf("Tháng %d", i),
			Revenue:      revenue,
			BookingCount: bookingCount,
		})
	}

	var tripRevenue []dto.TripRevenue
	for _, rev := range tripRevenueMap {
		tripRevenue = append(tripRevenue, *rev)
	}
	sort.Slice(tripRevenue, func(i, j int) bool {
		return tripRevenue[i].Revenue > tripRevenue[j].Revenue
	})

	response.Success(c, dto.OrganizerDashboardResponse{
		TotalTrips:          totalTrips,
		PublishedTrips:      publishedTrips,
		CompletedTrips:      completedTrips,
		TotalBookings:       totalBookings,
		PendingBookings:     pendingBookings,
		TotalRevenue:        totalRevenue,
		CurrentMonthRevenue: currentMonthRevenue,
		LastMonthRevenue:    lastMonthRevenue,
		CurrentWeekRevenue:  currentWeekRevenue,
		MonthlyRevenue:      monthlyRevenue,
		TripRevenue:         tripRevenue,
	})
}

// GetCustomerDashboard trả về đơn đặt sắp tới và đã qua của khách hàng.
func (d *DashboardController) GetCustomerDashboard(c *gin.Context) {
	currentUserID := c.GetUint("userID")

	var bookings []models.Booking
	if err := d.DB.Preload("Trip").
		Where("user_id = ?", currentUserID).
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		response.ServerError(c)
		return
	}

	today := time.Now().Format(services.DateLayout)

	var upcoming, past []dto.BookingResponse
	var totalSpent float64
	for _, booking := range bookings {
		resp := bookingToResponse(booking)
		if booking.Status != models.BookingStatusCancelled {
			totalSpent += booking.TotalPrice
		}
		if booking.EndDate >= today && booking.Status != models.BookingStatusCancelled {
			upcoming = append(upcoming, resp)
		} else {
			past = append(past, resp)
		}
	}

	var reviewCount int64
	d.DB.Model(&models.Review{}).Where("user_id = ?", currentUserID).Count(&reviewCount)

	response.Success(c, dto.CustomerDashboardResponse{
		UpcomingBookings: upcoming,
		PastBookings:     past,
		TotalSpent:       totalSpent,
		ReviewCount:      reviewCount,
	})
}
