package models

// FromGregorianRequest carries the query parameters of
// GET /api/convert/from-gregorian
type FromGregorianRequest struct {
	Calendar string `validate:"required,calendar_system"`
	Date     string `validate:"required,datetime=2006-01-02"`
}

// ToGregorianRequest carries the query parameters of
// GET /api/convert/to-gregorian
type ToGregorianRequest struct {
	Calendar  string `validate:"required,calendar_system"`
	Cycle     int    `validate:"required,min=1"`
	Year      int    `validate:"required,rabjung_year"`
	Month     int    `validate:"required,lunar_month"`
	LeapMonth bool
	Day       int `validate:"required,lunar_day"`
	LeapDay   bool
	YearHint  int `validate:"omitempty,min=1"`
}

// LosarRequest carries the query parameters of GET /api/losar
type LosarRequest struct {
	Calendar string `validate:"required,calendar_system"`
	Year     int    `validate:"required,min=1"`
}

// TibetanDate is the wire form of a converted calendar date
type TibetanDate struct {
	Calendar  string `json:"calendar"`
	Cycle     int    `json:"cycle"`
	Year      int    `json:"year"`
	Month     int    `json:"month"`
	LeapMonth bool   `json:"leap_month"`
	Day       int    `json:"day"`
	LeapDay   bool   `json:"leap_day"`
}

// ConversionResponse pairs a calendar date with its Gregorian civil date
type ConversionResponse struct {
	Tibetan   TibetanDate `json:"tibetan"`
	Gregorian string      `json:"gregorian"`
	JulianDay int64       `json:"julian_day"`
}

// LosarResponse reports the first civil day of a calendar year
type LosarResponse struct {
	Calendar  string `json:"calendar"`
	Year      int    `json:"year"`
	Gregorian string `json:"gregorian"`
}
