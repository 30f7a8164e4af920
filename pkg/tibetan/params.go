// Package tibetan converts between the proleptic Gregorian calendar /
// astronomical Julian Day and the Tibetan lunisolar calendar (Phugpa
// school), together with the Mongolian and Bhutanese calendars, which
// share the same arithmetic and differ only in their epoch constants.
//
// The formulas follow Svante Janson, "Tibetan calendar mathematics":
// linear mean-motion models corrected by small periodic equation tables,
// evaluated in exact rational arithmetic so that the floor/ceil boundary
// decisions that select civil days and months are never subject to
// floating-point rounding.
package tibetan

import "math/big"

// System holds the epoch constants of one calendar variant. A System is
// immutable after construction and safe for concurrent use.
type System struct {
	name string

	// Linear model offsets at the epoch: mean date (in local Julian days),
	// mean solar longitude and lunar anomaly (in revolutions).
	m0, s0, a0 *big.Rat

	// p0 is the mean solar longitude that begins the month count; it only
	// participates through beta below.
	p0 *big.Rat

	// beta = ceil(67*12*(s0-p0)), less 2 under the Bhutanese convention.
	beta int64

	// epochYear is the calendar year the epoch constants refer to.
	epochYear int

	// stdOffset converts a UTC-referenced Julian Date to the variant's
	// standard time; dayStart accounts for the civil day beginning at
	// 5:00 rather than midnight, relative to noon-referenced JD.
	stdOffset *big.Rat
	dayStart  *big.Rat

	// bhutanLeap selects the Bhutanese leap-month convention: the leap
	// month is the second bearer of a doubled label, not the first.
	bhutanLeap bool
}

// Name returns the variant name ("phugpa", "mongolian" or "bhutanese").
func (s *System) Name() string { return s.name }

// Mean-motion rates shared by all variants. M1 is the synodic month in
// days, S1 and A1 the per-month advance of mean sun and lunar anomaly in
// revolutions; the *2 rates are the corresponding per-lunar-day advances.
// Note that 30*A2 exceeds A1 by exactly 1/3528, so lunar day 30 of month
// n and lunar day 0 of month n+1 are not interchangeable arguments.
var (
	rM1 = newRat(167025, 5656)
	rM2 = newRat(11135, 11312)
	rS1 = newRat(65, 804)
	rS2 = newRat(13, 4824)
	rA1 = newRat(253, 3528)
	rA2 = newRat(1, 28)
)

// newSystem derives beta from the p0 constant and fills in the fixed
// day-start offset.
func newSystem(name string, m0, s0, a0, p0, stdOffset *big.Rat, epochYear int, bhutanLeap bool) *System {
	// alpha = 12*(s0 - p0); beta = ceil(67*alpha), -2 for Bhutan.
	alpha := new(big.Rat).Sub(s0, p0)
	alpha.Mul(alpha, big.NewRat(12, 1))
	beta := ratCeil(new(big.Rat).Mul(alpha, big.NewRat(67, 1)))
	if bhutanLeap {
		beta -= 2
	}
	return &System{
		name:       name,
		m0:         m0,
		s0:         s0,
		a0:         a0,
		p0:         p0,
		beta:       beta,
		epochYear:  epochYear,
		stdOffset:  stdOffset,
		dayStart:   newRat(7, 24), // (+12-5)/24: noon-referenced JD, day starts at 5:00
		bhutanLeap: bhutanLeap,
	}
}

// The three supported variants. Epochs: Phugpa at its classical year 806
// epoch, the Mongolian (New Genden) constants rebased to 1747 and the
// Bhutanese ones to 1657. Standard time is UTC+8 for Tibet and Mongolia
// and UTC+6 for Bhutan.
var (
	Phugpa = newSystem("phugpa",
		newRat(11399678439, 5656), // 2015501 + 4783/5656
		newRat(743, 804),
		newRat(475, 3528),
		newRat(139, 180),
		newRat(1, 3),
		806, false)

	Mongolian = newSystem("mongolian",
		newRat(40031549731, 16968),
		newRat(779, 804),
		newRat(3043, 3528),
		newRat(203, 268),
		newRat(1, 3),
		1747, false)

	Bhutanese = newSystem("bhutanese",
		newRat(6578975307, 2828),
		newRat(397, 402),
		newRat(83, 1764),
		newRat(155, 201),
		newRat(1, 4),
		1657, true)
)

// SystemByName resolves a variant by name. "tibetan" is accepted as an
// alias for the Phugpa system.
func SystemByName(name string) (*System, bool) {
	switch name {
	case "phugpa", "tibetan":
		return Phugpa, true
	case "mongolian":
		return Mongolian, true
	case "bhutanese":
		return Bhutanese, true
	}
	return nil, false
}
