package tibetan

import (
	"fmt"
	"math/big"
	"time"

	"github.com/hnw/date-tibetan/pkg/julian"
)

// Date is one calendar date of a System: a year counted within the
// 60-year rabjung cycle, a month with its leap flag, and a lunar day with
// its leap flag. Date is a value type; conversions never modify it and a
// changed date is built with a fresh constructor call.
type Date struct {
	sys *System

	Cycle     int
	Year      int // 1..60 within the cycle
	Month     int // 1..12
	LeapMonth bool
	Day       int // 1..30
	LeapDay   bool
}

// System returns the calendar system the date belongs to.
func (d Date) System() *System { return d.sys }

// New builds a Date from its fields. Field ranges are checked, as is the
// leap-month flag: asserting it for a month the system does not double is
// an error. The leap-day flag is only checked by ValidateStrict, since
// deciding it needs a full conversion.
func (s *System) New(cycle, year, month int, leapMonth bool, day int, leapDay bool) (Date, error) {
	if cycle < 1 {
		return Date{}, &FieldError{Field: "cycle", Value: cycle, Min: 1, Max: -1}
	}
	if year < 1 || year > 60 {
		return Date{}, &FieldError{Field: "year", Value: year, Min: 1, Max: 60}
	}
	if month < 1 || month > 12 {
		return Date{}, &FieldError{Field: "month", Value: month, Min: 1, Max: 12}
	}
	if day < 1 || day > 30 {
		return Date{}, &FieldError{Field: "day", Value: day, Min: 1, Max: 30}
	}
	if leapMonth && !s.isLeapSlot(westernYear(cycle, year), month) {
		return Date{}, &LeapFlagError{Flag: "leap_month", Cycle: cycle, Year: year, Month: month, System: s.name}
	}
	return Date{sys: s, Cycle: cycle, Year: year, Month: month, LeapMonth: leapMonth, Day: day, LeapDay: leapDay}, nil
}

// FromGregorian converts a proleptic Gregorian civil date.
func (s *System) FromGregorian(year, month, day int) Date {
	return s.fromJDN(julian.GregorianToJDN(year, month, day))
}

// FromJD converts a real, noon-referenced Julian Date in Universal Time.
// The instant is shifted to the system's standard time and to the 5:00
// start of the civil day before the day is resolved.
func (s *System) FromJD(jd float64) Date {
	r := new(big.Rat)
	r.SetFloat64(jd)
	r.Add(r, s.stdOffset)
	r.Add(r, s.dayStart)
	return s.fromJDN(ratFloor(r))
}

// FromTime converts a wall-clock instant.
func (s *System) FromTime(t time.Time) Date {
	return s.FromJD(julian.TimeToJD(t))
}

func (s *System) fromJDN(jdn int64) Date {
	n, day, leapDay := s.resolveJDN(jdn)
	wy, month, leapMonth := s.monthFromCount(n)
	cycle, year := rabjung(wy)
	return Date{
		sys:       s,
		Cycle:     cycle,
		Year:      year,
		Month:     month,
		LeapMonth: leapMonth,
		Day:       int(day),
		LeapDay:   leapDay,
	}
}

// JulianDayNumber returns the local civil day number of the date. The
// optional Gregorian year hint re-anchors the 60-year cycle near that
// year, for callers that track the year-in-cycle but not the cycle
// number; with no hint the date's own cycle field decides.
func (d Date) JulianDayNumber(gregorianYearHint ...int) int64 {
	wy := d.resolveWesternYear(gregorianYearHint)
	n := d.sys.monthCount(wy, d.Month, d.LeapMonth)
	return d.sys.civilDay(n, int64(d.Day), d.LeapDay)
}

// Gregorian returns the proleptic Gregorian civil date.
func (d Date) Gregorian(gregorianYearHint ...int) (year, month, day int) {
	return julian.JDNToGregorian(d.JulianDayNumber(gregorianYearHint...))
}

// Time returns the date as an instant: noon UT of its civil day.
func (d Date) Time(gregorianYearHint ...int) time.Time {
	return julian.JDToTime(float64(d.JulianDayNumber(gregorianYearHint...)))
}

func (d Date) resolveWesternYear(hint []int) int {
	wy := westernYear(d.Cycle, d.Year)
	if len(hint) == 0 {
		return wy
	}
	diff := mod(int64(wy-hint[0]), 60)
	if diff > 30 {
		diff -= 60
	}
	return hint[0] + int(diff)
}

// ValidateStrict re-checks both leap flags against the calendar. It
// reports a LeapFlagError when LeapMonth is set for a month the system
// does not double, or when LeapDay is set but the date's civil day is not
// repeated.
func (d Date) ValidateStrict() error {
	wy := westernYear(d.Cycle, d.Year)
	if d.LeapMonth && !d.sys.isLeapSlot(wy, d.Month) {
		return &LeapFlagError{Flag: "leap_month", Cycle: d.Cycle, Year: d.Year, Month: d.Month, System: d.sys.name}
	}
	if d.LeapDay {
		n := d.sys.monthCount(wy, d.Month, d.LeapMonth)
		jdn := ratFloor(d.sys.trueDate(n, int64(d.Day)))
		pn, pd := normalizeDay(n, int64(d.Day)-1)
		if jdn != ratFloor(d.sys.trueDate(pn, pd))+2 {
			return &LeapFlagError{Flag: "leap_day", Cycle: d.Cycle, Year: d.Year, Month: d.Month, Day: d.Day, System: d.sys.name}
		}
	}
	return nil
}

// Losar returns the Gregorian date of the first civil day of the calendar
// year labelled westernYear (day 1 of its first month, or the next civil
// day when day 1 is skipped).
func (s *System) Losar(westernYear int) (year, month, day int) {
	n := s.monthCount(westernYear, 1, false)
	if s.isLeapSlot(westernYear, 1) {
		// A doubled first month opens the year with its earlier bearer.
		if nl := s.monthCount(westernYear, 1, true); nl < n {
			n = nl
		}
	}
	// The first civil day of month n is the one after the last lunar day
	// of month n-1 ends.
	return julian.JDNToGregorian(ratFloor(s.trueDate(n-1, 30)) + 1)
}

// String renders the date as cycle-year-month-day with leap markers, e.g.
// "phugpa 17-14-01L-01" for the leap first month.
func (d Date) String() string {
	ml, dl := "", ""
	if d.LeapMonth {
		ml = "L"
	}
	if d.LeapDay {
		dl = "L"
	}
	name := "tibetan"
	if d.sys != nil {
		name = d.sys.name
	}
	return fmt.Sprintf("%s %d-%02d-%02d%s-%02d%s", name, d.Cycle, d.Year, d.Month, ml, d.Day, dl)
}
