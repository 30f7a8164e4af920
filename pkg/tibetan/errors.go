package tibetan

import "fmt"

// FieldError reports a date field outside its domain.
type FieldError struct {
	Field string
	Value int
	Min   int
	Max   int
}

func (e *FieldError) Error() string {
	if e.Max < e.Min {
		return fmt.Sprintf("tibetan: %s %d out of range (min %d)", e.Field, e.Value, e.Min)
	}
	return fmt.Sprintf("tibetan: %s %d out of range [%d,%d]", e.Field, e.Value, e.Min, e.Max)
}

// LeapFlagError reports a leap flag asserted for a slot that cannot be
// leap in the date's calendar system.
type LeapFlagError struct {
	Flag   string // "leap_month" or "leap_day"
	Cycle  int
	Year   int
	Month  int
	Day    int
	System string
}

func (e *LeapFlagError) Error() string {
	if e.Flag == "leap_month" {
		return fmt.Sprintf("tibetan: month %d of cycle %d year %d is not doubled in the %s calendar",
			e.Month, e.Cycle, e.Year, e.System)
	}
	return fmt.Sprintf("tibetan: day %d of cycle %d year %d month %d is not repeated in the %s calendar",
		e.Day, e.Cycle, e.Year, e.Month, e.System)
}
