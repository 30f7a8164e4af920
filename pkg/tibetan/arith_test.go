package tibetan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatFloorCeil(t *testing.T) {
	assert.Equal(t, int64(2), ratFloor(newRat(5, 2)))
	assert.Equal(t, int64(-3), ratFloor(newRat(-5, 2)))
	assert.Equal(t, int64(3), ratCeil(newRat(5, 2)))
	assert.Equal(t, int64(-2), ratCeil(newRat(-5, 2)))
	assert.Equal(t, int64(4), ratCeil(newRat(4, 1)))
}

func TestIntDivisionHelpers(t *testing.T) {
	assert.Equal(t, int64(-2), floorDiv(-3, 2))
	assert.Equal(t, int64(1), floorDiv(3, 2))
	assert.Equal(t, int64(2), ceilDiv(3, 2))
	assert.Equal(t, int64(-1), ceilDiv(-3, 2))
	assert.Equal(t, int64(1), mod(-3, 2))
}

func TestInterpolate(t *testing.T) {
	at := func(num, den int64) string {
		return interpolate(newRat(num, den), moonTab, 7, 28).RatString()
	}
	// Quarter-wave samples and the antisymmetric extension.
	assert.Equal(t, "0", at(0, 1))
	assert.Equal(t, "25", at(7, 1))
	assert.Equal(t, "0", at(14, 1))
	assert.Equal(t, "-25", at(21, 1))
	assert.Equal(t, "0", at(28, 1))
	// Linear between samples, folded on the way down.
	assert.Equal(t, "17", at(7, 2))    // 3.5 -> 15 + 0.5*4
	assert.Equal(t, "17", at(21, 2))   // 10.5 folds onto 3.5
	assert.Equal(t, "-17", at(35, 2))  // 17.5 -> -(3.5)
	// Arguments reduce modulo the full period, negatives included.
	assert.Equal(t, "25", at(-21, 1))
	assert.Equal(t, "17", at(63, 2)) // 31.5 -> 3.5
}

func TestMonthCountRoundTrip(t *testing.T) {
	for _, sys := range []*System{Phugpa, Mongolian, Bhutanese} {
		for n := int64(14000); n < 14900; n++ {
			y, m, leap := sys.monthFromCount(n)
			assert.Equal(t, n, sys.monthCount(y, m, leap), "%s n=%d", sys.name, n)
		}
	}
}
