package tibetan

// The month counter n numbers true months from the epoch. Roughly 65 out
// of every 67 solar months carry a unique (year, month) label; the other
// two share their label with a neighbour, and the doubled label is a leap
// month. Which of the two bearers is called the leap one is the only
// point where the Bhutanese convention departs from the others.

// epochRabjungYear is the western year beginning rabjung cycle 1, year 1.
const epochRabjungYear = 1027

// isLeapSlot reports whether the label (westernYear, month) is doubled.
func (s *System) isLeapSlot(westernYear, month int) bool {
	mp := 12*int64(westernYear-s.epochYear) + int64(month)
	r := mod(2*mp-s.beta, 65)
	return r == 0 || r == 1
}

// monthCount maps a labelled month to its true month number. Outside a
// leap slot the leapMonth flag is ignored; inside one, the regular month
// is the later bearer of the label except under the Bhutanese convention,
// where it is the earlier.
func (s *System) monthCount(westernYear, month int, leapMonth bool) int64 {
	mp := 12*int64(westernYear-s.epochYear) + int64(month)
	n0 := floorDiv(67*mp-s.beta, 65)
	if s.isLeapSlot(westernYear, month) {
		if s.bhutanLeap {
			if !leapMonth {
				return n0 - 1
			}
		} else if leapMonth {
			return n0 - 1
		}
	}
	return n0
}

// monthFromCount recovers the (westernYear, month, leapMonth) label of
// true month n. A month is leap when its neighbour in the convention's
// probe direction maps to the same label.
func (s *System) monthFromCount(n int64) (westernYear, month int, leapMonth bool) {
	x := ceilDiv(65*n+s.beta, 67)
	m := mod(x, 12)
	if m == 0 {
		m = 12
	}
	westernYear = int((x-m)/12) + s.epochYear
	month = int(m)

	probe := n + 1
	if s.bhutanLeap {
		probe = n - 1
	}
	leapMonth = ceilDiv(65*probe+s.beta, 67) == x
	return westernYear, month, leapMonth
}

// LeapMonthOf returns the doubled month of the calendar year labelled
// westernYear, or ok=false when that year has no leap month.
func (s *System) LeapMonthOf(westernYear int) (month int, ok bool) {
	for m := 1; m <= 12; m++ {
		if s.isLeapSlot(westernYear, m) {
			return m, true
		}
	}
	return 0, false
}

// rabjung converts a western year to its 60-year cycle and year-in-cycle.
func rabjung(westernYear int) (cycle, year int) {
	d := int64(westernYear - epochRabjungYear)
	return int(floorDiv(d, 60)) + 1, int(mod(d, 60)) + 1
}

// westernYear is the inverse of rabjung.
func westernYear(cycle, year int) int {
	return epochRabjungYear + (cycle-1)*60 + (year - 1)
}
