package tibetan_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hnw/date-tibetan/pkg/julian"
	"github.com/hnw/date-tibetan/pkg/tibetan"
)

type conversionCase struct {
	gYear, gMonth, gDay int
	cycle, year, month  int
	leapMonth           bool
	day                 int
	leapDay             bool
}

func (c conversionCase) date(t *testing.T, sys *tibetan.System) tibetan.Date {
	t.Helper()
	d, err := sys.New(c.cycle, c.year, c.month, c.leapMonth, c.day, c.leapDay)
	require.NoError(t, err)
	return d
}

func assertConversion(t *testing.T, sys *tibetan.System, cases []conversionCase) {
	t.Helper()
	for _, c := range cases {
		got := sys.FromGregorian(c.gYear, c.gMonth, c.gDay)
		assert.Equal(t, c.cycle, got.Cycle, "cycle for %d-%02d-%02d", c.gYear, c.gMonth, c.gDay)
		assert.Equal(t, c.year, got.Year, "year for %d-%02d-%02d", c.gYear, c.gMonth, c.gDay)
		assert.Equal(t, c.month, got.Month, "month for %d-%02d-%02d", c.gYear, c.gMonth, c.gDay)
		assert.Equal(t, c.leapMonth, got.LeapMonth, "leap month for %d-%02d-%02d", c.gYear, c.gMonth, c.gDay)
		assert.Equal(t, c.day, got.Day, "day for %d-%02d-%02d", c.gYear, c.gMonth, c.gDay)
		assert.Equal(t, c.leapDay, got.LeapDay, "leap day for %d-%02d-%02d", c.gYear, c.gMonth, c.gDay)

		gy, gm, gd := c.date(t, sys).Gregorian()
		assert.Equal(t, [3]int{c.gYear, c.gMonth, c.gDay}, [3]int{gy, gm, gd})
	}
}

func TestPhugpaConversions(t *testing.T) {
	t.Run("known dates", func(t *testing.T) {
		assertConversion(t, tibetan.Phugpa, []conversionCase{
			{2007, 2, 19, 17, 21, 1, false, 2, false},
			{2000, 2, 6, 17, 14, 1, true, 1, false},
			{2012, 2, 26, 17, 26, 1, false, 5, true},
			{2012, 2, 27, 17, 26, 1, false, 5, false},
			{2016, 5, 7, 17, 30, 4, true, 1, false},
			{2016, 6, 6, 17, 30, 4, false, 1, false},
		})
	})

	t.Run("sampled dates", func(t *testing.T) {
		assertConversion(t, tibetan.Phugpa, []conversionCase{
			{1958, 8, 31, 16, 32, 7, false, 17, false},
			{1962, 12, 31, 16, 36, 11, false, 5, false},
			{1966, 11, 21, 16, 40, 10, false, 9, false},
			{1977, 1, 25, 16, 50, 12, false, 6, false},
			{2008, 2, 8, 17, 22, 1, false, 2, false},
			{2015, 8, 13, 17, 29, 6, false, 29, false},
			{2020, 11, 4, 17, 34, 9, false, 19, false},
			{2046, 2, 25, 17, 60, 1, false, 20, false},
		})
	})
}

func TestMongolianConversions(t *testing.T) {
	assertConversion(t, tibetan.Mongolian, []conversionCase{
		{2025, 2, 28, 17, 38, 12, false, 30, false},
		{2025, 3, 1, 17, 39, 1, false, 2, false},
		{1956, 9, 23, 16, 30, 8, false, 18, false},
		{1960, 5, 29, 16, 34, 4, false, 4, false},
		{1962, 7, 15, 16, 36, 6, false, 13, false},
		{1965, 6, 3, 16, 39, 4, false, 4, false},
		{1988, 7, 10, 17, 2, 5, false, 27, false},
		{2025, 1, 12, 17, 38, 11, false, 14, false},
		{2027, 10, 23, 17, 41, 8, false, 23, false},
		{2041, 1, 18, 17, 54, 12, false, 16, false},
	})
}

func TestBhutaneseConversions(t *testing.T) {
	assertConversion(t, tibetan.Bhutanese, []conversionCase{
		{1960, 8, 9, 16, 34, 6, false, 18, false},
		{1961, 2, 6, 16, 34, 12, false, 21, false},
		{1966, 4, 11, 16, 40, 2, false, 21, false},
		{1972, 3, 19, 16, 46, 2, false, 4, false},
		{1990, 1, 21, 17, 3, 11, false, 25, false},
		{1993, 3, 8, 17, 7, 1, false, 15, false},
		{2026, 3, 4, 17, 40, 1, false, 16, false},
		{2048, 11, 15, 18, 2, 9, true, 10, false},
	})
}

func TestRepeatedAndSkippedDays(t *testing.T) {
	t.Run("repeated day has a leap instance on the earlier civil day", func(t *testing.T) {
		leap := tibetan.Phugpa.FromGregorian(2020, 1, 29)
		assert.True(t, leap.LeapDay)
		assert.Equal(t, 5, leap.Day)

		next := tibetan.Phugpa.FromGregorian(2020, 1, 30)
		assert.False(t, next.LeapDay)
		assert.Equal(t, 5, next.Day)

		assert.Equal(t, leap.JulianDayNumber()+1, next.JulianDayNumber())
	})

	t.Run("skipped day never appears", func(t *testing.T) {
		before := tibetan.Phugpa.FromGregorian(2020, 1, 17)
		after := tibetan.Phugpa.FromGregorian(2020, 1, 18)
		assert.Equal(t, 22, before.Day)
		assert.Equal(t, 24, after.Day)
		assert.Equal(t, before.Month, after.Month)
	})
}

func TestRoundTrip(t *testing.T) {
	systems := []*tibetan.System{tibetan.Phugpa, tibetan.Mongolian, tibetan.Bhutanese}
	lo := julian.GregorianToJDN(1900, 1, 1)
	hi := julian.GregorianToJDN(2100, 1, 1)
	for _, sys := range systems {
		t.Run(sys.Name(), func(t *testing.T) {
			for jdn := lo; jdn < hi; jdn += 17 {
				d := sys.FromGregorian(julian.JDNToGregorian(jdn))
				require.Equal(t, jdn, d.JulianDayNumber(), "round trip through %v", d)
			}
		})
	}
}

func TestLeapMonthOf(t *testing.T) {
	cases := []struct {
		year           int
		ph, mg, bt int
	}{
		{2000, 1, 7, 0},
		{2002, 10, 0, 9},
		{2005, 6, 12, 5},
		{2008, 3, 8, 2},
		{2012, 0, 0, 0},
		{2016, 4, 10, 3},
		{2018, 0, 0, 12},
		{2024, 6, 11, 5},
		{2027, 2, 8, 1},
		{2029, 11, 0, 10},
	}
	check := func(t *testing.T, sys *tibetan.System, year, want int) {
		t.Helper()
		m, ok := sys.LeapMonthOf(year)
		assert.Equal(t, want != 0, ok)
		assert.Equal(t, want, m)
	}
	for _, c := range cases {
		check(t, tibetan.Phugpa, c.year, c.ph)
		check(t, tibetan.Mongolian, c.year, c.mg)
		check(t, tibetan.Bhutanese, c.year, c.bt)
	}
}

func TestLosar(t *testing.T) {
	t.Run("phugpa", func(t *testing.T) {
		cases := map[int][3]int{
			2000: {2000, 2, 6},
			2012: {2012, 2, 22},
			2023: {2023, 2, 21},
			2024: {2024, 2, 10},
			2025: {2025, 2, 28},
			2026: {2026, 2, 18},
		}
		for year, want := range cases {
			gy, gm, gd := tibetan.Phugpa.Losar(year)
			assert.Equal(t, want, [3]int{gy, gm, gd}, "losar %d", year)
		}
	})

	t.Run("tsagaan sar", func(t *testing.T) {
		cases := map[int][3]int{
			2018: {2018, 2, 16},
			2019: {2019, 2, 5},
			2020: {2020, 2, 24},
			2021: {2021, 2, 12},
			2022: {2022, 2, 2},
			2023: {2023, 2, 21},
			2024: {2024, 2, 10},
			2025: {2025, 3, 1},
		}
		for year, want := range cases {
			gy, gm, gd := tibetan.Mongolian.Losar(year)
			assert.Equal(t, want, [3]int{gy, gm, gd}, "tsagaan sar %d", year)
		}
	})
}

func TestBhutaneseLeapMonthIsSecond(t *testing.T) {
	// Under the Bhutanese convention the leap month is the later bearer
	// of the doubled label; everywhere else it is the earlier one.
	for _, c := range []struct {
		sys        *tibetan.System
		year, month int
		leapFirst  bool
	}{
		{tibetan.Phugpa, 2016, 4, true},
		{tibetan.Bhutanese, 2024, 5, false},
	} {
		wy := c.year - 1027
		cycle, yr := wy/60+1, wy%60+1
		regular, err := c.sys.New(cycle, yr, c.month, false, 1, false)
		require.NoError(t, err)
		leap, err := c.sys.New(cycle, yr, c.month, true, 1, false)
		require.NoError(t, err)
		if c.leapFirst {
			assert.Less(t, leap.JulianDayNumber(), regular.JulianDayNumber())
		} else {
			assert.Less(t, regular.JulianDayNumber(), leap.JulianDayNumber())
		}
	}
}

func TestNewValidation(t *testing.T) {
	for _, c := range []struct {
		name                string
		cycle, year, month  int
		leapMonth           bool
		day                 int
		field               string
	}{
		{"cycle below 1", 0, 1, 1, false, 1, "cycle"},
		{"year below 1", 17, 0, 1, false, 1, "year"},
		{"year above 60", 17, 61, 1, false, 1, "year"},
		{"month above 12", 17, 21, 13, false, 1, "month"},
		{"day below 1", 17, 21, 1, false, 0, "day"},
		{"day above 30", 17, 21, 1, false, 31, "day"},
	} {
		t.Run(c.name, func(t *testing.T) {
			_, err := tibetan.Phugpa.New(c.cycle, c.year, c.month, c.leapMonth, c.day, false)
			var fe *tibetan.FieldError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, c.field, fe.Field)
		})
	}

	t.Run("leap month on an ordinary slot", func(t *testing.T) {
		// 2007 has no leap month in the Phugpa calendar.
		_, err := tibetan.Phugpa.New(17, 21, 1, true, 2, false)
		var le *tibetan.LeapFlagError
		require.ErrorAs(t, err, &le)
		assert.Equal(t, "leap_month", le.Flag)
	})

	t.Run("leap month on a doubled slot", func(t *testing.T) {
		_, err := tibetan.Phugpa.New(17, 14, 1, true, 1, false)
		assert.NoError(t, err)
	})
}

func TestValidateStrict(t *testing.T) {
	t.Run("genuine leap day", func(t *testing.T) {
		d, err := tibetan.Phugpa.New(17, 26, 1, false, 5, true)
		require.NoError(t, err)
		assert.NoError(t, d.ValidateStrict())
	})

	t.Run("leap day on an ordinary date", func(t *testing.T) {
		d, err := tibetan.Phugpa.New(17, 21, 1, false, 2, true)
		require.NoError(t, err)
		var le *tibetan.LeapFlagError
		err = d.ValidateStrict()
		require.ErrorAs(t, err, &le)
		assert.Equal(t, "leap_day", le.Flag)
	})
}

func TestFromTimeAndTime(t *testing.T) {
	// 2012-02-26 12:00 UTC is within the Lhasa civil day 2012-02-26.
	d := tibetan.Phugpa.FromTime(time.Date(2012, 2, 26, 12, 0, 0, 0, time.UTC))
	assert.True(t, d.LeapDay)
	assert.Equal(t, 5, d.Day)

	gy, gm, gd := d.Gregorian()
	assert.Equal(t, [3]int{2012, 2, 26}, [3]int{gy, gm, gd})

	ts := d.Time()
	assert.Equal(t, time.Date(2012, 2, 26, 12, 0, 0, 0, time.UTC), ts)
}

func TestGregorianYearHint(t *testing.T) {
	d, err := tibetan.Phugpa.New(17, 21, 1, false, 2, false)
	require.NoError(t, err)
	base := d.JulianDayNumber()

	// The hint re-anchors the year-in-cycle to the nearest matching year.
	assert.Equal(t, base, d.JulianDayNumber(2007))
	assert.Equal(t, base, d.JulianDayNumber(2010))
	next, err := tibetan.Phugpa.New(18, 21, 1, false, 2, false)
	require.NoError(t, err)
	assert.Equal(t, next.JulianDayNumber(), d.JulianDayNumber(2067))
}

func TestSystemByName(t *testing.T) {
	for name, want := range map[string]*tibetan.System{
		"phugpa":    tibetan.Phugpa,
		"tibetan":   tibetan.Phugpa,
		"mongolian": tibetan.Mongolian,
		"bhutanese": tibetan.Bhutanese,
	} {
		sys, ok := tibetan.SystemByName(name)
		require.True(t, ok)
		assert.Same(t, want, sys)
	}
	_, ok := tibetan.SystemByName("gregorian")
	assert.False(t, ok)
}

func TestString(t *testing.T) {
	d := tibetan.Phugpa.FromGregorian(2000, 2, 6)
	assert.Equal(t, "phugpa 17-14-01L-01", d.String())
}

func TestErrorsAreMatchable(t *testing.T) {
	_, err := tibetan.Phugpa.New(17, 61, 1, false, 1, false)
	assert.True(t, errors.As(err, new(*tibetan.FieldError)))
}
