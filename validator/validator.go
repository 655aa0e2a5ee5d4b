package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"betravel/dto"
	"betravel/errors"
	"betravel/services"
)

// Các bước của wizard tạo/chỉnh sửa chuyến đi, theo đúng thứ tự hiển thị
const (
	StepBasic     = "basic"
	StepDetails   = "details"
	StepItinerary = "itinerary"
	StepGallery   = "gallery"
	StepFaqs      = "faqs"
	StepReview    = "review"
)

// WizardSteps là thứ tự các bước, bước sau chỉ mở khi bước trước hợp lệ
var WizardSteps = []string{StepBasic, StepDetails, StepItinerary, StepGallery, StepFaqs, StepReview}

var validate = validator.New()

func init() {
	// Báo lỗi theo tên json để client map thẳng vào field trên form
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// ValidateStep chạy predicate của một bước wizard trên form.
// Trả về map lỗi theo từng trường; map rỗng nghĩa là bước hợp lệ.
func ValidateStep(step string, form *dto.TripFormData) (map[string]string, error) {
	switch step {
	case StepBasic:
		return ValidateStepBasic(form), nil
	case StepDetails:
		return ValidateStepDetails(form), nil
	case StepItinerary:
		return ValidateStepItinerary(form), nil
	case StepGallery:
		return ValidateStepGallery(form), nil
	case StepFaqs:
		return ValidateStepFaqs(form), nil
	case StepReview:
		return ValidateStepReview(form), nil
	default:
		return nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "Bước wizard không hợp lệ: "+step, nil)
	}
}

// ValidateStepBasic kiểm tra thông tin cơ bản của chuyến đi
func ValidateStepBasic(form *dto.TripFormData) map[string]string {
	errs := map[string]string{}

	if strings.TrimSpace(form.Name) == "" {
		errs["name"] = "Tên chuyến đi không được để trống"
	}
	if strings.TrimSpace(form.Description) == "" {
		errs["description"] = "Mô tả chuyến đi không được để trống"
	}
	if strings.TrimSpace(form.Location) == "" {
		errs["location"] = "Địa điểm không được để trống"
	}

	return errs
}

// ValidateStepDetails kiểm tra khoảng ngày, quy mô nhóm, độ tuổi, gói giá và người tổ chức
func ValidateStepDetails(form *dto.TripFormData) map[string]string {
	errs := map[string]string{}

	if form.StartDate == "" {
		errs["startDate"] = "Ngày bắt đầu không được để trống"
	}
	if form.EndDate == "" {
		errs["endDate"] = "Ngày kết thúc không được để trống"
	}
	if form.StartDate != "" && form.EndDate != "" {
		if _, _, err := services.ParseDateRange(form.StartDate, form.EndDate); err != nil {
			errs["endDate"] = "Khoảng ngày không hợp lệ"
		}
	}

	if form.GroupSizeMin < 1 {
		errs["groupSizeMin"] = "Quy mô nhóm tối thiểu phải lớn hơn 0"
	}
	if form.GroupSizeMax < form.GroupSizeMin {
		errs["groupSizeMax"] = "Quy mô nhóm tối đa phải lớn hơn hoặc bằng tối thiểu"
	}
	if form.AgeMin < 0 {
		errs["ageMin"] = "Độ tuổi tối thiểu không được âm"
	}
	if form.AgeMax < form.AgeMin {
		errs["ageMax"] = "Độ tuổi tối đa phải lớn hơn hoặc bằng tối thiểu"
	}

	if len(form.Packages) == 0 {
		errs["packages"] = "Chuyến đi phải có ít nhất một gói giá"
	}
	for i, pkg := range form.Packages {
		if strings.TrimSpace(pkg.Name) == "" {
			errs[fmt.Sprintf("packages[%d].name", i)] = "Tên gói không được để trống"
		}
		if pkg.Price < 0 {
			errs[fmt.Sprintf("packages[%d].price", i)] = "Giá gói không được âm"
		}
		if len(pkg.Currency) != 3 {
			errs[fmt.Sprintf("packages[%d].currency", i)] = "Mã tiền tệ phải gồm 3 ký tự"
		}
	}

	if strings.TrimSpace(form.HostName) == "" {
		errs["hostName"] = "Tên người tổ chức không được để trống"
	}

	return errs
}

// ValidateStepItinerary kiểm tra lịch trình khớp với khoảng ngày của form
func ValidateStepItinerary(form *dto.TripFormData) map[string]string {
	errs := map[string]string{}

	if len(form.Itinerary) == 0 {
		errs["itinerary"] = "Chuyến đi phải có lịch trình"
		return errs
	}

	expected, err := services.CountItineraryDays(form.StartDate, form.EndDate)
	if err != nil {
		errs["itinerary"] = "Cần khoảng ngày hợp lệ trước khi lập lịch trình"
		return errs
	}

	if len(form.Itinerary) != expected {
		errs["itinerary"] = fmt.Sprintf("Lịch trình phải có đúng %d ngày, hiện có %d", expected, len(form.Itinerary))
	}

	return errs
}

// ValidateStepGallery kiểm tra ảnh đại diện và bộ sưu tập ảnh
func ValidateStepGallery(form *dto.TripFormData) map[string]string {
	errs := map[string]string{}

	if strings.TrimSpace(form.Avatar) == "" {
		errs["avatar"] = "Ảnh đại diện chuyến đi không được để trống"
	}
	if len(form.Img) == 0 {
		errs["img"] = "Bộ sưu tập phải có ít nhất một ảnh"
	}
	for i, url := range form.Img {
		if strings.TrimSpace(url) == "" {
			errs[fmt.Sprintf("img[%d]", i)] = "Ảnh chưa được tải lên xong"
		}
	}

	return errs
}

// ValidateStepFaqs kiểm tra từng cặp câu hỏi/trả lời, FAQ là tùy chọn
func ValidateStepFaqs(form *dto.TripFormData) map[string]string {
	errs := map[string]string{}

	for i, faq := range form.Faqs {
		if strings.TrimSpace(faq.Question) == "" {
			errs[fmt.Sprintf("faqs[%d].question", i)] = "Câu hỏi không được để trống"
		}
		if strings.TrimSpace(faq.Answer) == "" {
			errs[fmt.Sprintf("faqs[%d].answer", i)] = "Câu trả lời không được để trống"
		}
	}

	return errs
}

// ValidateStepReview là bước cuối: chạy lại toàn bộ predicate của các bước trước
func ValidateStepReview(form *dto.TripFormData) map[string]string {
	errs := map[string]string{}
	for _, step := range []string{StepBasic, StepDetails, StepItinerary, StepGallery, StepFaqs} {
		stepErrs, _ := ValidateStep(step, form)
		for field, msg := range stepErrs {
			errs[field] = msg
		}
	}
	return errs
}

// ValidateSchema chạy schema validation cấu trúc trên toàn bộ aggregate.
// Mọi trường vi phạm được gom vào một thông báo duy nhất, mỗi trường một dòng.
func ValidateSchema(form *dto.TripFormData) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.NewAppError(errors.ErrCodeValidation, "Dữ liệu chuyến đi không hợp lệ", err)
	}

	var parts []string
	for _, fieldErr := range validationErrs {
		// Bỏ tên struct gốc cho dễ đọc: TripFormData.Packages[0].Price -> packages[0].price
		path := strings.TrimPrefix(fieldErr.Namespace(), "TripFormData.")
		parts = append(parts, fmt.Sprintf("trường '%s' vi phạm ràng buộc '%s'", path, fieldErr.Tag()))
	}

	return errors.NewAppError(errors.ErrCodeValidation, "Dữ liệu chuyến đi không hợp lệ: "+strings.Join(parts, "; "), err)
}

// ValidateTripForm chạy toàn bộ predicate của mọi bước cộng với schema validation.
// Dùng trước khi submit tạo/cập nhật chuyến đi; lỗi ở đây không bao giờ tới tầng network.
func ValidateTripForm(form *dto.TripFormData) (map[string]string, error) {
	errs := ValidateStepReview(form)
	if len(errs) > 0 {
		return errs, nil
	}
	if err := ValidateSchema(form); err != nil {
		return nil, err
	}
	return map[string]string{}, nil
}
