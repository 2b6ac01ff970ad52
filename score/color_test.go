package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorScaleEndpoints(t *testing.T) {
	scale := NewColorScale(1.05)

	assert.Equal(t, "#008000", scale.Color(1.0), "rate 1.0 must be green")
	assert.Equal(t, "#ff0000", scale.Color(1.05), "red rate must be red")
}

func TestColorScaleClamps(t *testing.T) {
	scale := NewColorScale(1.05)

	assert.Equal(t, "#008000", scale.Color(0.0), "below 1.0 clamps to green")
	assert.Equal(t, "#008000", scale.Color(0.93))
	assert.Equal(t, "#ff0000", scale.Color(1.4), "above red rate clamps to red")
	assert.Equal(t, "#ff0000", scale.Color(2.0))
}

func TestColorScaleMidpoint(t *testing.T) {
	scale := NewColorScale(1.5)

	// halfway between green (0,128,0) and red (255,0,0)
	assert.Equal(t, "#804000", scale.Color(1.25))
}

func TestColorScaleDegenerate(t *testing.T) {
	// red rate at the bottom of the slider range: anything above 1.0 is red
	scale := NewColorScale(1.0)

	assert.Equal(t, "#008000", scale.Color(1.0))
	assert.Equal(t, "#ff0000", scale.Color(1.0001))
}
