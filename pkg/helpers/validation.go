package helpers

import (
	"github.com/go-playground/validator/v10"

	"github.com/hnw/date-tibetan/pkg/tibetan"
)

// CustomValidator wraps go-playground validator with calendar rules
type CustomValidator struct {
	validate *validator.Validate
}

// NewCustomValidator creates a new custom validator with calendar rules
func NewCustomValidator() *CustomValidator {
	v := validator.New()

	// Register custom validators
	v.RegisterValidation("calendar_system", validateCalendarSystem)
	v.RegisterValidation("rabjung_year", validateRabjungYear)
	v.RegisterValidation("lunar_month", validateLunarMonth)
	v.RegisterValidation("lunar_day", validateLunarDay)

	return &CustomValidator{validate: v}
}

// Validate validates a struct
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validate.Struct(i)
}

// validateCalendarSystem validates a calendar system name
func validateCalendarSystem(fl validator.FieldLevel) bool {
	_, ok := tibetan.SystemByName(fl.Field().String())
	return ok
}

// validateRabjungYear validates a year within the 60-year cycle
func validateRabjungYear(fl validator.FieldLevel) bool {
	y := fl.Field().Int()
	return y >= 1 && y <= 60
}

// validateLunarMonth validates a calendar month number
func validateLunarMonth(fl validator.FieldLevel) bool {
	m := fl.Field().Int()
	return m >= 1 && m <= 12
}

// validateLunarDay validates a lunar day number
func validateLunarDay(fl validator.FieldLevel) bool {
	d := fl.Field().Int()
	return d >= 1 && d <= 30
}
