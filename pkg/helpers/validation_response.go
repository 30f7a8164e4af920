package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationErrorResponse represents the validation error response format
type ValidationErrorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

// FormatValidationError formats a validator.FieldError into an error message
func FormatValidationError(fe validator.FieldError) string {
	fieldName := getFieldName(fe)

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required", fieldName)
	case "min":
		return fmt.Sprintf("The %s field must be at least %s", fieldName, fe.Param())
	case "max":
		return fmt.Sprintf("The %s field must not exceed %s", fieldName, fe.Param())
	case "oneof":
		return fmt.Sprintf("The %s field must be one of: %s", fieldName, fe.Param())
	case "datetime":
		return fmt.Sprintf("The %s field must be a date in %s format", fieldName, fe.Param())
	case "calendar_system":
		return fmt.Sprintf("The %s field must be one of: phugpa, tibetan, mongolian, bhutanese", fieldName)
	case "rabjung_year":
		return fmt.Sprintf("The %s field must be a year between 1 and 60", fieldName)
	case "lunar_month":
		return fmt.Sprintf("The %s field must be a month between 1 and 12", fieldName)
	case "lunar_day":
		return fmt.Sprintf("The %s field must be a day between 1 and 30", fieldName)
	default:
		return fmt.Sprintf("The %s field is invalid", fieldName)
	}
}

// getFieldName extracts a human-readable field name from the FieldError
func getFieldName(fe validator.FieldError) string {
	fieldName := strings.ToLower(fe.Field())
	fieldName = strings.ReplaceAll(fieldName, "_", " ")
	return fieldName
}

// WriteValidationErrorResponse writes a 422 response for validator errors
func WriteValidationErrorResponse(w http.ResponseWriter, validationErrors validator.ValidationErrors) {
	errors := make(map[string]string)
	var firstMessage string

	for i, err := range validationErrors {
		fieldName := getFieldName(err)
		errorMessage := FormatValidationError(err)

		errors[fieldName] = errorMessage

		// First error message becomes the main message
		if i == 0 {
			firstMessage = errorMessage
		}
	}

	writeResponse(w, ValidationErrorResponse{Message: firstMessage, Errors: errors})
}

// WriteValidationErrorResponseFromMap writes a 422 response from a map of
// field errors, for validation failures not raised by the validator
func WriteValidationErrorResponseFromMap(w http.ResponseWriter, fieldErrors map[string]string) {
	message := "The given data was invalid"
	for _, msg := range fieldErrors {
		message = msg
		break
	}
	writeResponse(w, ValidationErrorResponse{Message: message, Errors: fieldErrors})
}

func writeResponse(w http.ResponseWriter, response ValidationErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnprocessableEntity)
	json.NewEncoder(w).Encode(response)
}
