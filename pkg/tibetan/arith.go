package tibetan

import "math/big"

// Small helpers over math/big.Rat. All of them allocate fresh values;
// nothing in this package mutates a *big.Rat it did not create, so the
// package-level constants stay safe to share.

func newRat(num, den int64) *big.Rat {
	return big.NewRat(num, den)
}

// ratFloor returns floor(x) as an int64. big.Int.Div is Euclidean
// division and Rat denominators are always positive, so Div floors.
func ratFloor(x *big.Rat) int64 {
	return new(big.Int).Div(x.Num(), x.Denom()).Int64()
}

// ratCeil returns ceil(x) as an int64.
func ratCeil(x *big.Rat) int64 {
	f := ratFloor(x)
	if x.IsInt() {
		return f
	}
	return f + 1
}

// ratFrac returns x - floor(x), always in [0,1).
func ratFrac(x *big.Rat) *big.Rat {
	return new(big.Rat).Sub(x, new(big.Rat).SetInt64(ratFloor(x)))
}

// ratInt64 converts n to a fresh Rat.
func ratInt64(n int64) *big.Rat {
	return new(big.Rat).SetInt64(n)
}

// cmpInt64 compares x against the integer n.
func cmpInt64(x *big.Rat, n int64) int {
	return x.Cmp(ratInt64(n))
}

// floorDiv is floored integer division for possibly negative numerators.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// ceilDiv is the ceiling counterpart of floorDiv.
func ceilDiv(a, b int64) int64 {
	return -floorDiv(-a, b)
}

// mod returns a mod b normalized into [0,b).
func mod(a, b int64) int64 {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
