package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/hnw/date-tibetan/internal/models"
	"github.com/hnw/date-tibetan/internal/service"
	"github.com/hnw/date-tibetan/pkg/helpers"
	"github.com/hnw/date-tibetan/pkg/logger"
	"github.com/hnw/date-tibetan/pkg/metrics"
	"github.com/hnw/date-tibetan/pkg/tibetan"
)

type ConvertHandler struct {
	service   *service.ConvertService
	validator *helpers.CustomValidator
	logger    *logger.Logger
	metrics   *metrics.Metrics
}

func NewConvertHandler(svc *service.ConvertService, v *helpers.CustomValidator, log *logger.Logger, m *metrics.Metrics) *ConvertHandler {
	return &ConvertHandler{
		service:   svc,
		validator: v,
		logger:    log,
		metrics:   m,
	}
}

// FromGregorian handles GET /api/convert/from-gregorian
// Query params: calendar, date (YYYY-MM-DD)
func (h *ConvertHandler) FromGregorian(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	req := models.FromGregorianRequest{
		Calendar: calendarParam(r),
		Date:     r.URL.Query().Get("date"),
	}
	if err := h.validator.Validate(req); err != nil {
		h.writeValidationError(w, err)
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		helpers.WriteValidationErrorResponseFromMap(w, map[string]string{
			"date": "The date field must be a date in 2006-01-02 format",
		})
		return
	}

	resp, err := h.service.FromGregorian(r.Context(), req.Calendar, date.Year(), int(date.Month()), date.Day())
	if err != nil {
		h.writeConversionError(w, err)
		return
	}

	h.metrics.ConversionCounter.WithLabelValues(req.Calendar, "from_gregorian").Inc()
	writeJSON(w, http.StatusOK, resp)
}

// ToGregorian handles GET /api/convert/to-gregorian
// Query params: calendar, cycle, year, month, leap_month, day, leap_day, year_hint
func (h *ConvertHandler) ToGregorian(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	req := models.ToGregorianRequest{
		Calendar:  calendarParam(r),
		Cycle:     intParam(r, "cycle"),
		Year:      intParam(r, "year"),
		Month:     intParam(r, "month"),
		LeapMonth: boolParam(r, "leap_month"),
		Day:       intParam(r, "day"),
		LeapDay:   boolParam(r, "leap_day"),
		YearHint:  intParam(r, "year_hint"),
	}
	if err := h.validator.Validate(req); err != nil {
		h.writeValidationError(w, err)
		return
	}

	resp, err := h.service.ToGregorian(r.Context(), &req)
	if err != nil {
		h.writeConversionError(w, err)
		return
	}

	h.metrics.ConversionCounter.WithLabelValues(req.Calendar, "to_gregorian").Inc()
	writeJSON(w, http.StatusOK, resp)
}

// Today handles GET /api/today
func (h *ConvertHandler) Today(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	calendar := calendarParam(r)
	if _, ok := tibetan.SystemByName(calendar); !ok {
		helpers.WriteValidationErrorResponseFromMap(w, map[string]string{
			"calendar": "The calendar field must be one of: phugpa, tibetan, mongolian, bhutanese",
		})
		return
	}

	resp, err := h.service.Today(r.Context(), calendar, time.Now())
	if err != nil {
		h.writeConversionError(w, err)
		return
	}

	h.metrics.ConversionCounter.WithLabelValues(calendar, "today").Inc()
	writeJSON(w, http.StatusOK, resp)
}

// Losar handles GET /api/losar
// Query params: calendar, year (Gregorian year of the new year's day)
func (h *ConvertHandler) Losar(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	req := models.LosarRequest{
		Calendar: calendarParam(r),
		Year:     intParam(r, "year"),
	}
	if err := h.validator.Validate(req); err != nil {
		h.writeValidationError(w, err)
		return
	}

	resp, err := h.service.Losar(r.Context(), req.Calendar, req.Year)
	if err != nil {
		h.writeConversionError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Health handles GET /healthz
func (h *ConvertHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *ConvertHandler) writeValidationError(w http.ResponseWriter, err error) {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		helpers.WriteValidationErrorResponse(w, validationErrors)
		return
	}
	writeError(w, http.StatusBadRequest, err.Error())
}

func (h *ConvertHandler) writeConversionError(w http.ResponseWriter, err error) {
	var fieldErr *tibetan.FieldError
	if errors.As(err, &fieldErr) {
		helpers.WriteValidationErrorResponseFromMap(w, map[string]string{
			fieldErr.Field: fieldErr.Error(),
		})
		return
	}
	var leapErr *tibetan.LeapFlagError
	if errors.As(err, &leapErr) {
		helpers.WriteValidationErrorResponseFromMap(w, map[string]string{
			leapErr.Flag: leapErr.Error(),
		})
		return
	}
	h.logger.WithField("error", err.Error()).Error("conversion failed")
	writeError(w, http.StatusBadRequest, err.Error())
}

func calendarParam(r *http.Request) string {
	if c := r.URL.Query().Get("calendar"); c != "" {
		return c
	}
	return "phugpa"
}

func intParam(r *http.Request, name string) int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return 0
	}
	return v
}

func boolParam(r *http.Request, name string) bool {
	v, _ := strconv.ParseBool(r.URL.Query().Get(name))
	return v
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}
