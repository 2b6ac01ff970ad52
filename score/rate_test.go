package score

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

type rateTestCase struct {
	counts   []float64
	days     int
	expected float64
}

func TestRateOfIncrease(t *testing.T) {
	cases := []rateTestCase{
		// flat non-zero series: every ratio is 1, weights sum to 1
		{[]float64{7, 7, 7, 7, 7, 7}, 5, 1.0},
		// all-zero series: every ratio resolves via the 0/0 rule
		{[]float64{0, 0, 0, 0, 0, 0}, 5, 0.0},
		// single jump from a zero baseline at the last, heaviest position
		{[]float64{0, 0, 0, 0, 0, 5}, 5, 2.0 * 5.0 / 15.0},
		// doubling every day
		{[]float64{1, 2, 4, 8, 16, 32}, 5, 2.0},
		// window uses only the tail of a longer series
		{[]float64{100, 100, 100, 3, 3, 3, 3, 3, 3}, 5, 1.0},
	}

	for _, c := range cases {
		actual := RateOfIncrease(c.counts, c.days)
		assert.InDelta(t, c.expected, actual, 1e-9, "wrong rate for %v", c.counts)
	}
}

func TestRateOfIncreaseStrictGrowth(t *testing.T) {
	// any strictly increasing positive window rates at least 1.0
	series := [][]float64{
		{1, 2, 3, 4, 5, 6},
		{10, 11, 12, 20, 21, 40},
		{3, 5, 8, 13, 21, 34},
	}
	for _, counts := range series {
		assert.GreaterOrEqual(t, RateOfIncrease(counts, 5), 1.0, "growth must rate >= 1 for %v", counts)
	}
}

func TestRateOfIncreaseShortSeries(t *testing.T) {
	// window shrinks to the available transitions, weights renormalized
	assert.InDelta(t, 1.0, RateOfIncrease([]float64{4, 4, 4}, 5), 1e-9)
	assert.InDelta(t, 2.0, RateOfIncrease([]float64{3, 6}, 5), 1e-9)

	// nothing to compare against
	assert.Equal(t, 0.0, RateOfIncrease([]float64{9}, 5))
	assert.Equal(t, 0.0, RateOfIncrease(nil, 5))
	assert.Equal(t, 0.0, RateOfIncrease([]float64{1, 2, 3}, 0))
}

func TestRateOfIncreaseDataCorrection(t *testing.T) {
	// a downward correction yields a rate below 1, not an error
	rate := RateOfIncrease([]float64{10, 10, 10, 10, 10, 8}, 5)
	assert.Less(t, rate, 1.0)
	assert.GreaterOrEqual(t, rate, 0.0)
}

func TestRateOfIncreaseAlwaysFinite(t *testing.T) {
	series := [][]float64{
		{0, 0, 0, 1, 0, 5},
		{0, 1, 0, 0, 0, 0},
		{1, 0, 1, 0, 1, 0},
	}
	for _, counts := range series {
		rate := RateOfIncrease(counts, 5)
		assert.False(t, math.IsInf(rate, 0), "rate must be finite for %v", counts)
		assert.False(t, math.IsNaN(rate), "rate must be a number for %v", counts)
		assert.GreaterOrEqual(t, rate, 0.0)
	}
}
