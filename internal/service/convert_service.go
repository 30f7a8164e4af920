package service

import (
	"context"
	"fmt"
	"time"

	"github.com/hnw/date-tibetan/internal/models"
	"github.com/hnw/date-tibetan/pkg/tibetan"
)

// ConvertService performs calendar conversions. It is stateless; every
// method is safe for concurrent use.
type ConvertService struct{}

func NewConvertService() *ConvertService {
	return &ConvertService{}
}

// FromGregorian converts a Gregorian civil date into the named calendar
func (s *ConvertService) FromGregorian(ctx context.Context, calendar string, year, month, day int) (*models.ConversionResponse, error) {
	sys, ok := tibetan.SystemByName(calendar)
	if !ok {
		return nil, fmt.Errorf("unknown calendar %q", calendar)
	}

	d := sys.FromGregorian(year, month, day)
	return s.response(sys, d), nil
}

// ToGregorian converts calendar date fields back to a Gregorian date. A
// non-zero yearHint re-anchors the 60-year cycle near that Gregorian year.
func (s *ConvertService) ToGregorian(ctx context.Context, req *models.ToGregorianRequest) (*models.ConversionResponse, error) {
	sys, ok := tibetan.SystemByName(req.Calendar)
	if !ok {
		return nil, fmt.Errorf("unknown calendar %q", req.Calendar)
	}

	d, err := sys.New(req.Cycle, req.Year, req.Month, req.LeapMonth, req.Day, req.LeapDay)
	if err != nil {
		return nil, err
	}
	if err := d.ValidateStrict(); err != nil {
		return nil, err
	}

	if req.YearHint != 0 {
		gy, gm, gd := d.Gregorian(req.YearHint)
		return &models.ConversionResponse{
			Tibetan:   s.wireDate(sys, d),
			Gregorian: fmt.Sprintf("%04d-%02d-%02d", gy, gm, gd),
			JulianDay: d.JulianDayNumber(req.YearHint),
		}, nil
	}
	return s.response(sys, d), nil
}

// Today converts the current instant in the named calendar
func (s *ConvertService) Today(ctx context.Context, calendar string, now time.Time) (*models.ConversionResponse, error) {
	sys, ok := tibetan.SystemByName(calendar)
	if !ok {
		return nil, fmt.Errorf("unknown calendar %q", calendar)
	}
	return s.response(sys, sys.FromTime(now)), nil
}

// Losar returns the Gregorian date of the calendar new year
func (s *ConvertService) Losar(ctx context.Context, calendar string, year int) (*models.LosarResponse, error) {
	sys, ok := tibetan.SystemByName(calendar)
	if !ok {
		return nil, fmt.Errorf("unknown calendar %q", calendar)
	}

	gy, gm, gd := sys.Losar(year)
	return &models.LosarResponse{
		Calendar:  sys.Name(),
		Year:      year,
		Gregorian: fmt.Sprintf("%04d-%02d-%02d", gy, gm, gd),
	}, nil
}

func (s *ConvertService) response(sys *tibetan.System, d tibetan.Date) *models.ConversionResponse {
	gy, gm, gd := d.Gregorian()
	return &models.ConversionResponse{
		Tibetan:   s.wireDate(sys, d),
		Gregorian: fmt.Sprintf("%04d-%02d-%02d", gy, gm, gd),
		JulianDay: d.JulianDayNumber(),
	}
}

func (s *ConvertService) wireDate(sys *tibetan.System, d tibetan.Date) models.TibetanDate {
	return models.TibetanDate{
		Calendar:  sys.Name(),
		Cycle:     d.Cycle,
		Year:      d.Year,
		Month:     d.Month,
		LeapMonth: d.LeapMonth,
		Day:       d.Day,
		LeapDay:   d.LeapDay,
	}
}
