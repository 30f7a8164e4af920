package tibetan

import "math/big"

// Resolution between local civil day numbers and calendar dates. A lunar
// day d of month n "belongs" to the civil day during which it ends; a
// lunar day is slightly shorter than a civil day on average, so some
// civil days host no lunar day end (a skipped date) and some host two
// (a repeated date, the earlier of which is the leap day).

// normalizeDay folds a day outside [1,30] into the adjacent month. The
// fold must happen before evaluating the true date: the anomaly rates do
// not telescope across months, so (n, 0) and (n-1, 30) are different
// arguments with slightly different true dates.
func normalizeDay(n, day int64) (int64, int64) {
	if day <= 0 {
		return n - 1, day + 30
	}
	if day > 30 {
		return n + 1, day - 30
	}
	return n, day
}

// resolveJDN finds the lunar day ending on local civil day jdn. The
// linear estimate lands at most a few lunar days early; at most four
// true-date evaluations are ever needed to walk forward to the answer.
func (s *System) resolveJDN(jdn int64) (n, day int64, leapDay bool) {
	target := ratInt64(jdn)
	off := new(big.Rat).Sub(target, s.m0)
	n = ratFloor(new(big.Rat).Quo(off, rM1))
	day = ratFloor(new(big.Rat).Quo(new(big.Rat).Sub(off, new(big.Rat).Mul(ratInt64(n), rM1)), rM2))

	var nn, dd int64
	for i := 0; i < 4; i++ {
		nn, dd = normalizeDay(n, day)
		td := s.trueDate(nn, dd)
		if td.Cmp(ratInt64(jdn+1)) > 0 {
			// The lunar day spans jdn and jdn+1: jdn is the repeated
			// (leap) instance of the date.
			return nn, dd, true
		}
		if td.Cmp(target) > 0 {
			return nn, dd, false
		}
		day++
	}
	return nn, dd, false
}

// civilDay returns the local civil day of lunar day `day` in true month
// n, applying the skipped/repeated-date adjustments.
func (s *System) civilDay(n, day int64, leapDay bool) int64 {
	jdn := ratFloor(s.trueDate(n, day))
	pn, pd := normalizeDay(n, day-1)
	prev := ratFloor(s.trueDate(pn, pd))
	switch {
	case jdn == prev:
		// The lunar day ends on the same civil day as its predecessor:
		// the date is skipped and conventionally moved one day later.
		jdn++
	case jdn == prev+2 && leapDay:
		// Repeated date; the leap instance is the earlier civil day.
		jdn--
	}
	return jdn
}
