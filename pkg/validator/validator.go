package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/johnquangdev/mom-generator/internal/domain/entities"
)

// CustomValidator implements echo.Validator using go-playground/validator
type CustomValidator struct {
	v *validator.Validate
}

// New creates a new CustomValidator instance
func New() *CustomValidator {
	v := validator.New()

	// report JSON names in field errors
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("minutetype", func(fl validator.FieldLevel) bool {
		return entities.MinuteType(fl.Field().String()).IsValid()
	})

	return &CustomValidator{v: v}
}

// Validate performs struct validation
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.v.Struct(i)
}

// FieldError is one failed rule, in API form
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// Describe flattens validation errors for API responses. Other errors are
// returned as a single entry without a field.
func Describe(err error) []FieldError {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Message: err.Error()}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		// drop the top-level struct name: "Req.attendanceData[0].Name"
		_, field, _ := strings.Cut(fe.Namespace(), ".")
		out = append(out, FieldError{
			Field:   field,
			Rule:    fe.Tag(),
			Message: message(fe),
		})
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_without":
		return fe.Field() + " is required"
	case "minutetype":
		return fe.Field() + " must be one of narrativeSummary, bulletPoints, narrativeAndBullet"
	default:
		return fe.Field() + " failed " + fe.Tag() + " validation"
	}
}
