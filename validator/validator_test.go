package validator

import (
	"testing"

	"betravel/dto"
	"betravel/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTripForm() *dto.TripFormData {
	return &dto.TripFormData{
		Name:         "Trekking Tà Năng - Phan Dũng",
		Avatar:       "https://res.cloudinary.com/demo/image/upload/avatar.jpg",
		Img:          []string{"https://res.cloudinary.com/demo/image/upload/1.jpg"},
		Description:  "Cung trekking đẹp nhất Việt Nam",
		Location:     "Tà Năng, Lâm Đồng",
		Province:     "Lâm Đồng",
		StartDate:    "2024-06-10",
		EndDate:      "2024-06-12",
		GroupSizeMin: 4,
		GroupSizeMax: 12,
		AgeMin:       18,
		AgeMax:       45,
		TripTypes:    []string{"trekking"},
		HostName:     "Anh Tuấn",
		Packages: []dto.TripPackageInput{
			{Name: "Tiêu chuẩn", Price: 2500000, Currency: "VND", PerPerson: true},
		},
		Itinerary: []dto.ItineraryDayInput{
			{Day: 1, Title: "Xuất phát", Date: "2024-06-10"},
			{Day: 2, Title: "Leo đỉnh", Date: "2024-06-11"},
			{Day: 3, Title: "Về lại", Date: "2024-06-12"},
		},
		Faqs: []dto.FaqInput{
			{Question: "Cần chuẩn bị gì?", Answer: "Giày trekking và áo ấm"},
		},
	}
}

func TestValidateStepBasic(t *testing.T) {
	form := validTripForm()
	assert.Empty(t, ValidateStepBasic(form))

	form.Name = "   "
	form.Location = ""
	errs := ValidateStepBasic(form)
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "location")
	assert.NotContains(t, errs, "description")
}

func TestValidateStepDetails(t *testing.T) {
	form := validTripForm()
	assert.Empty(t, ValidateStepDetails(form))

	form.EndDate = "2024-06-01"
	form.GroupSizeMax = 2
	errs := ValidateStepDetails(form)
	assert.Contains(t, errs, "endDate")
	assert.Contains(t, errs, "groupSizeMax")
}

func TestValidateStepDetailsPackages(t *testing.T) {
	form := validTripForm()
	form.Packages = nil
	errs := ValidateStepDetails(form)
	assert.Contains(t, errs, "packages")

	form.Packages = []dto.TripPackageInput{
		{Name: "", Price: -1, Currency: "VNDX"},
	}
	errs = ValidateStepDetails(form)
	assert.Contains(t, errs, "packages[0].name")
	assert.Contains(t, errs, "packages[0].price")
	assert.Contains(t, errs, "packages[0].currency")
}

func TestValidateStepItinerary(t *testing.T) {
	form := validTripForm()
	assert.Empty(t, ValidateStepItinerary(form))

	// số ngày lịch trình phải khớp khoảng ngày
	form.Itinerary = form.Itinerary[:2]
	errs := ValidateStepItinerary(form)
	assert.Contains(t, errs, "itinerary")

	form.Itinerary = nil
	errs = ValidateStepItinerary(form)
	assert.Contains(t, errs, "itinerary")
}

func TestValidateStepGallery(t *testing.T) {
	form := validTripForm()
	assert.Empty(t, ValidateStepGallery(form))

	form.Avatar = ""
	form.Img = []string{"https://res.cloudinary.com/demo/image/upload/1.jpg", "  "}
	errs := ValidateStepGallery(form)
	assert.Contains(t, errs, "avatar")
	assert.Contains(t, errs, "img[1]")
}

func TestValidateStepFaqsOptional(t *testing.T) {
	form := validTripForm()
	form.Faqs = nil
	assert.Empty(t, ValidateStepFaqs(form))

	form.Faqs = []dto.FaqInput{{Question: "Câu hỏi?", Answer: ""}}
	errs := ValidateStepFaqs(form)
	assert.Contains(t, errs, "faqs[0].answer")
}

func TestValidateStepReviewAggregates(t *testing.T) {
	form := validTripForm()
	assert.Empty(t, ValidateStepReview(form))

	form.Name = ""
	form.Avatar = ""
	errs := ValidateStepReview(form)
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "avatar")
}

func TestValidateStepUnknown(t *testing.T) {
	_, err := ValidateStep("unknown", validTripForm())
	require.Error(t, err)
	assert.True(t, errors.IsAppError(err))
}

func TestValidateSchemaConsolidatedMessage(t *testing.T) {
	form := validTripForm()
	form.Avatar = "not-a-url"
	form.StartDate = "10/06/2024"

	err := ValidateSchema(form)
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodeValidation, appErr.Code)
	assert.Contains(t, appErr.Message, "avatar")
	assert.Contains(t, appErr.Message, "startDate")
}

func TestValidateTripForm(t *testing.T) {
	form := validTripForm()
	errs, err := ValidateTripForm(form)
	require.NoError(t, err)
	assert.Empty(t, errs)

	form.HostName = ""
	errs, err = ValidateTripForm(form)
	require.NoError(t, err)
	assert.Contains(t, errs, "hostName")
}
