package score

import (
	"fmt"
	"math"
)

// Color scale endpoints: rate 1.0 renders pure green, rates at or above the
// red rate render pure red.
var (
	colorGreen = [3]int{0, 128, 0}
	colorRed   = [3]int{255, 0, 0}
)

// ColorScale maps a growth rate to a hex color, linearly interpolated
// between green at rate 1.0 and red at the configured red rate. Rates
// outside the calibration range clamp to the nearest endpoint.
type ColorScale struct {
	redRate float64
}

// NewColorScale builds a scale calibrated against the given red rate.
func NewColorScale(redRate float64) ColorScale {
	return ColorScale{redRate: redRate}
}

// Color returns the scale color for a rate as a #rrggbb string.
func (s ColorScale) Color(rate float64) string {
	t := s.position(rate)

	r := lerp(colorGreen[0], colorRed[0], t)
	g := lerp(colorGreen[1], colorRed[1], t)
	b := lerp(colorGreen[2], colorRed[2], t)

	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// position maps a rate to [0, 1] along the scale.
func (s ColorScale) position(rate float64) float64 {
	if rate <= 1.0 {
		return 0
	}
	if rate >= s.redRate {
		return 1
	}
	// s.redRate > 1.0 here, the two clamps above cover a degenerate scale
	return (rate - 1.0) / (s.redRate - 1.0)
}

func lerp(from, to int, t float64) int {
	return from + int(math.Round(t*float64(to-from)))
}
