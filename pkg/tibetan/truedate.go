package tibetan

import "math/big"

// meanDate is the date implied by purely linear motion after n months and
// d lunar days, in local Julian days: n*M1 + d*M2 + M0.
func (s *System) meanDate(n, d int64) *big.Rat {
	v := new(big.Rat).Mul(ratInt64(n), rM1)
	v.Add(v, new(big.Rat).Mul(ratInt64(d), rM2))
	return v.Add(v, s.m0)
}

// meanSun is the fractional mean solar longitude, in revolutions.
func (s *System) meanSun(n, d int64) *big.Rat {
	v := new(big.Rat).Mul(ratInt64(n), rS1)
	v.Add(v, new(big.Rat).Mul(ratInt64(d), rS2))
	return ratFrac(v.Add(v, s.s0))
}

// lunarAnomaly is the fractional lunar anomaly, in revolutions.
func (s *System) lunarAnomaly(n, d int64) *big.Rat {
	v := new(big.Rat).Mul(ratInt64(n), rA1)
	v.Add(v, new(big.Rat).Mul(ratInt64(d), rA2))
	return ratFrac(v.Add(v, s.a0))
}

// trueDate corrects the mean date by the lunar and solar equations and
// returns the moment lunar day d of month n ends, in local Julian days.
func (s *System) trueDate(n, d int64) *big.Rat {
	sunAnom := new(big.Rat).Sub(s.meanSun(n, d), newRat(1, 4))
	sunAnom = ratFrac(sunAnom)

	moonEq := interpolate(new(big.Rat).Mul(s.lunarAnomaly(n, d), ratInt64(28)), moonTab, 7, 28)
	sunEq := interpolate(sunAnom.Mul(sunAnom, ratInt64(12)), sunTab, 3, 12)

	v := s.meanDate(n, d)
	v.Add(v, moonEq.Quo(moonEq, ratInt64(60)))
	return v.Sub(v, sunEq.Quo(sunEq, ratInt64(60)))
}
