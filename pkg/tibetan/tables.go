package tibetan

import "math/big"

// Equation-of-motion tables. Each table stores one quarter period of an
// antisymmetric correction curve sampled at integer arguments; the lunar
// table is read at 28*anomaly (half period 7), the solar one at
// 12*anomaly (half period 3). Values are in minutes of a day (1/60).
var (
	moonTab = []int64{0, 5, 10, 15, 19, 22, 24, 25}
	sunTab  = []int64{0, 6, 10, 11}
)

// interpolate reduces x into one period, folds it onto the stored quarter
// wave and linearly interpolates between adjacent samples. The curve is
// symmetric about half and antisymmetric about 2*half; past the last
// sample the table value is held rather than extrapolated.
func interpolate(x *big.Rat, table []int64, half, full int64) *big.Rat {
	x = new(big.Rat).Sub(x, new(big.Rat).Mul(ratInt64(floorDiv2(x, full)), ratInt64(full)))

	neg := false
	if cmpInt64(x, 2*half) >= 0 {
		neg = true
		x.Sub(x, ratInt64(2*half))
	}
	if cmpInt64(x, half) > 0 {
		x.Sub(ratInt64(2*half), x)
	}

	i := ratFloor(x)
	var v *big.Rat
	if i >= int64(len(table)-1) {
		v = ratInt64(table[len(table)-1])
	} else {
		f := new(big.Rat).Sub(x, ratInt64(i))
		v = ratInt64(table[i])
		v.Add(v, f.Mul(f, ratInt64(table[i+1]-table[i])))
	}
	if neg {
		v.Neg(v)
	}
	return v
}

// floorDiv2 returns floor(x/d) for a rational x and integer d.
func floorDiv2(x *big.Rat, d int64) int64 {
	return ratFloor(new(big.Rat).Quo(x, ratInt64(d)))
}
