// Package julian bridges proleptic Gregorian civil dates, Julian Day
// numbers and time.Time instants. The astronomy is delegated to the meeus
// library; this package only fixes the integer day-number convention used
// by the calendar code: a civil day's number is the JD of its noon, so
// day boundaries sit at half-integral JD.
package julian

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

// GregorianToJDN returns the day number of a proleptic Gregorian civil
// date.
func GregorianToJDN(year, month, day int) int64 {
	return int64(math.Floor(julian.CalendarGregorianToJD(year, month, float64(day)) + 0.5))
}

// JDNToGregorian returns the proleptic Gregorian civil date of a day
// number. meeus' JDToCalendar honours the 1582 calendar reform, so the
// inverse is computed here with the plain integer algorithm to stay
// proleptic on both sides.
func JDNToGregorian(jdn int64) (year, month, day int) {
	a := jdn + 32044
	b := (4*a + 3) / 146097
	c := a - 146097*b/4
	d := (4*c + 3) / 1461
	e := c - 1461*d/4
	m := (5*e + 2) / 153
	day = int(e - (153*m+2)/5 + 1)
	month = int(m + 3 - 12*(m/10))
	year = int(100*b + d - 4800 + m/10)
	return year, month, day
}

// TimeToJD returns the real Julian Date of an instant.
func TimeToJD(t time.Time) float64 {
	return julian.TimeToJD(t.UTC())
}

// JDToTime returns the instant of a real Julian Date, in UTC.
func JDToTime(jd float64) time.Time {
	return julian.JDToTime(jd).UTC()
}
