package dto

import (
	"time"

	"betravel/models"
)

// ItineraryDayInput là một ngày lịch trình do người dùng nhập trong wizard.
// day và date chỉ mang tính tham khảo từ client, server luôn tính lại.
type ItineraryDayInput struct {
	Day         int    `json:"day"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

type TripPackageInput struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Price       int      `json:"price" validate:"gte=0"`
	Currency    string   `json:"currency" validate:"required,len=3"`
	PerPerson   bool     `json:"perPerson"`
	Features    []string `json:"features"`
}

type FaqInput struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
}

// TripFormData là aggregate của wizard tạo/chỉnh sửa chuyến đi.
// Chỉ tồn tại trong phiên, không được lưu cho tới khi người dùng submit.
type TripFormData struct {
	ID               uint                `json:"id"`
	Name             string              `json:"name" validate:"required"`
	Avatar           string              `json:"avatar" validate:"required,url"`
	Img              []string            `json:"img" validate:"required,min=1,dive,required,url"`
	ShortDescription string              `json:"shortDescription"`
	Description      string              `json:"description" validate:"required"`
	Location         string              `json:"location" validate:"required"`
	Province         string              `json:"province"`
	StartDate        string              `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate          string              `json:"endDate" validate:"required,datetime=2006-01-02"`
	GroupSizeMin     int                 `json:"groupSizeMin" validate:"gte=1"`
	GroupSizeMax     int                 `json:"groupSizeMax" validate:"gtefield=GroupSizeMin"`
	AgeMin           int                 `json:"ageMin" validate:"gte=0"`
	AgeMax           int                 `json:"ageMax" validate:"gtefield=AgeMin"`
	TripTypes        []string            `json:"tripTypes"`
	HostName         string              `json:"hostName" validate:"required"`
	HostDescription  string              `json:"hostDescription"`
	HostImage        string              `json:"hostImage" validate:"omitempty,url"`
	Packages         []TripPackageInput  `json:"packages" validate:"required,min=1,dive"`
	Itinerary        []ItineraryDayInput `json:"itinerary" validate:"required,min=1"`
	Inclusions       []string            `json:"inclusions"`
	Exclusions       []string            `json:"exclusions"`
	Faqs             []FaqInput          `json:"faqs" validate:"dive"`
	Status           int                 `json:"status" validate:"gte=0,lte=4"`
}

// ValidateStepRequest là payload của endpoint kiểm tra từng bước wizard
type ValidateStepRequest struct {
	Step string       `json:"step" binding:"required"`
	Form TripFormData `json:"form" binding:"required"`
}

type TripResponse struct {
	ID               uint      `json:"id"`
	Name             string    `json:"name"`
	Avatar           string    `json:"avatar"`
	ShortDescription string    `json:"shortDescription"`
	Status           int       `json:"status"`
	StartDate        string    `json:"startDate"`
	EndDate          string    `json:"endDate"`
	Location         string    `json:"location"`
	Province         string    `json:"province"`
	GroupSizeMin     int       `json:"groupSizeMin"`
	GroupSizeMax     int       `json:"groupSizeMax"`
	TripTypes        []string  `json:"tripTypes"`
	Price            int       `json:"price"`
	DayCount         int       `json:"dayCount"`
	CreateAt         time.Time `json:"createAt"`
	UpdateAt         time.Time `json:"updateAt"`
}

// Actor là block người tổ chức trong trang chi tiết chuyến đi
type Actor struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Avatar      string `json:"avatar"`
	Bio         string `json:"bio"`
}

// ReviewSummary tóm tắt đánh giá của một chuyến đi
type ReviewSummary struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

type TripDetailResponse struct {
	ID               uint                  `json:"id"`
	Name             string                `json:"name"`
	Avatar           string                `json:"avatar"`
	Img              []string              `json:"img"`
	ShortDescription string                `json:"shortDescription"`
	Description      string                `json:"description"`
	Status           int                   `json:"status"`
	StartDate        string                `json:"startDate"`
	EndDate          string                `json:"endDate"`
	Location         string                `json:"location"`
	Province         string                `json:"province"`
	GroupSizeMin     int                   `json:"groupSizeMin"`
	GroupSizeMax     int                   `json:"groupSizeMax"`
	AgeMin           int                   `json:"ageMin"`
	AgeMax           int                   `json:"ageMax"`
	TripTypes        []string              `json:"tripTypes"`
	HostName         string                `json:"hostName"`
	HostDescription  string                `json:"hostDescription"`
	HostImage        string                `json:"hostImage"`
	Price            int                   `json:"price"`
	Inclusions       []string              `json:"inclusions"`
	Exclusions       []string              `json:"exclusions"`
	Faqs             []FaqInput            `json:"faqs"`
	User             Actor                 `json:"user"`
	Itinerary        []models.ItineraryDay `json:"itinerary"`
	Packages         []models.TripPackage  `json:"packages"`
	Reviews          []ReviewResponse      `json:"reviews"`
	ReviewSummary    ReviewSummary         `json:"reviewSummary"`
	RelatedTrips     []TripResponse        `json:"relatedTrips"`
	CreateAt         time.Time             `json:"createAt"`
	UpdateAt         time.Time             `json:"updateAt"`
}

// ScoredTrip dùng cho tìm kiếm mờ: chuyến đi kèm điểm phù hợp
type ScoredTrip struct {
	Trip  models.Trip `json:"trip"`
	Score int         `json:"score"`
}
