package jobs

import (
	"log"
	"time"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// TripMaintainer định nghĩa interface cho việc dọn trạng thái chuyến đi
type TripMaintainer interface {
	CompleteExpiredTrips(m *melody.Melody) error
}

var tripMaintainer TripMaintainer

// SetTripMaintainer thiết lập implementation cho TripMaintainer
func SetTripMaintainer(maintainer TripMaintainer) {
	tripMaintainer = maintainer
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron, m *melody.Melody) error {
	// Cron job chạy lúc 0h mỗi ngày
	_, err := c.AddFunc("0 0 * * *", func() {
		now := time.Now()
		log.Printf("Đang chạy dọn trạng thái chuyến đi lúc: %v", now)
		if tripMaintainer == nil {
			log.Printf("Lỗi: TripMaintainer chưa được thiết lập")
			return
		}
		if err := tripMaintainer.CompleteExpiredTrips(m); err != nil {
			log.Printf("Lỗi khi dọn trạng thái chuyến đi: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
