package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"
)

type Trip struct {
	ID               uint            `json:"id" gorm:"primaryKey"`
	UserID           uint            `json:"userId"` // ID người tổ chức
	Name             string          `json:"name"`
	Avatar           string          `json:"avatar"`               // Ảnh đại diện chuyến đi
	Img              json.RawMessage `json:"img" gorm:"type:json"` // Bộ sưu tập ảnh (danh sách URL, có thứ tự)
	ShortDescription string          `json:"shortDescription"`
	Description      string          `json:"description"`
	Status           int             `json:"status"`
	CreateAt         time.Time       `gorm:"autoCreateTime"`
	UpdateAt         time.Time       `gorm:"autoUpdateTime"`
	StartDate        string          `json:"startDate"` // YYYY-MM-DD
	EndDate          string          `json:"endDate"`   // YYYY-MM-DD
	Location         string          `json:"location"`
	Province         string          `json:"province"`
	GroupSizeMin     int             `json:"groupSizeMin"`
	GroupSizeMax     int             `json:"groupSizeMax"`
	AgeMin           int             `json:"ageMin"`
	AgeMax           int             `json:"ageMax"`
	TripTypes        pq.StringArray  `json:"tripTypes" gorm:"type:text[]"` // Loại hình: trekking, biển, văn hóa...
	HostName         string          `json:"hostName"`
	HostDescription  string          `json:"hostDescription"`
	HostImage        string          `json:"hostImage"`
	Price            int             `json:"price"` // Giá thấp nhất trong các gói, để hiển thị danh sách
	Inclusions       pq.StringArray  `json:"inclusions" gorm:"type:text[]"`
	Exclusions       pq.StringArray  `json:"exclusions" gorm:"type:text[]"`
	Faqs             json.RawMessage `json:"faqs" gorm:"type:json"` // Danh sách câu hỏi thường gặp
	User             User            `json:"user" gorm:"foreignKey:UserID"`
	Itinerary        []ItineraryDay  `json:"itinerary" gorm:"foreignKey:TripID"`
	Packages         []TripPackage   `json:"packages" gorm:"foreignKey:TripID"`
	Reviews          []Review        `json:"reviews" gorm:"foreignKey:TripID"`
}

func (t *Trip) ValidateStatus() error {
	if t.Status < 0 || t.Status > 4 {
		return fmt.Errorf("invalid Status: %d, must be between 0 and 4", t.Status)
	}
	return nil
}

// ItineraryDay là một ngày trong lịch trình của chuyến đi.
// Bất biến: chuyến đi N ngày có đúng N bản ghi, day chạy 1..N liên tục,
// date = startDate + (day-1) ngày, tăng dần, không trùng, không hở.
type ItineraryDay struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	TripID      uint   `json:"tripId"`
	Day         int    `json:"day"` // Thứ tự ngày, bắt đầu từ 1
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"` // YYYY-MM-DD, luôn dẫn xuất từ khoảng ngày
}

// TripPackage là một gói giá của chuyến đi
type TripPackage struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	TripID      uint           `json:"tripId"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Price       int            `json:"price"`
	Currency    string         `json:"currency"`
	PerPerson   bool           `json:"perPerson"` // true: giá tính theo đầu người
	Features    pq.StringArray `json:"features" gorm:"type:text[]"`
}
