package score

const (
	// DefaultRateWindow is the number of day-over-day transitions averaged
	// by RateOfIncrease.
	DefaultRateWindow = 5

	// zeroBaselineRatio stands in for growth from a zero baseline. Without
	// the cap a single new case in a previously clean county would push an
	// infinite ratio into the average.
	zeroBaselineRatio = 2.0
)

// RateOfIncrease returns the weighted day-over-day growth ratio of a
// cumulative case series over its last `days` transitions. Weights grow
// linearly toward the most recent day ([1..days], normalized), so 1.0 means
// no net change and values above 1.0 mean growth.
//
// A series shorter than days+1 entries shrinks the window to the available
// transitions and renormalizes the weights; a series with fewer than two
// entries yields 0. The result is always finite and non-negative.
func RateOfIncrease(counts []float64, days int) float64 {
	if days <= 0 || len(counts) < 2 {
		return 0
	}
	if len(counts) < days+1 {
		days = len(counts) - 1
	}

	window := counts[len(counts)-days-1:]
	weightSum := float64(days*(days+1)) / 2

	var rate float64
	for i := 0; i < days; i++ {
		rate += growthRatio(window[i], window[i+1]) * float64(i+1) / weightSum
	}
	return rate
}

// growthRatio is cur/prev with the zero-denominator cases substituted
// before dividing: 0/0 carries no signal and counts as 0, growth from a
// zero baseline is capped at zeroBaselineRatio.
func growthRatio(prev, cur float64) float64 {
	if prev == 0 {
		if cur == 0 {
			return 0
		}
		return zeroBaselineRatio
	}
	return cur / prev
}
