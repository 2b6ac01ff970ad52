package maprender

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/covid-county-map/schema"
)

func testCounty(uid int, name string, lat, lon float64, cases []float64) schema.County {
	return schema.County{
		UID:      uid,
		FIPS:     uid - 84000000,
		County:   name,
		State:    "NY",
		Location: schema.NewPoint(lat, lon),
		Cases:    cases,
	}
}

func testConfig() schema.MapConfig {
	return schema.MapConfig{RedRate: schema.RedRateDefault}
}

func TestRenderDrawOrder(t *testing.T) {
	counties := []schema.County{
		testCounty(84036061, "New York", 40.7, -74.0, []float64{90, 95, 100}),
		testCounty(84036059, "Nassau", 40.7, -73.6, []float64{40, 45, 50}),
		testCounty(84036119, "Westchester", 41.1, -73.8, []float64{150, 180, 200}),
	}

	m := Render(counties, testConfig())

	assert.Len(t, m.Circles, 3)
	// big circles first so the smallest draws on top
	assert.Equal(t, float64(200), m.Circles[0].Cases)
	assert.Equal(t, float64(100), m.Circles[1].Cases)
	assert.Equal(t, float64(50), m.Circles[2].Cases)
}

func TestRenderDropsEmptyCounties(t *testing.T) {
	counties := []schema.County{
		testCounty(84036061, "New York", 40.7, -74.0, []float64{0, 0, 0}),
		testCounty(84036059, "Nassau", 40.7, -73.6, []float64{1, 2, 3}),
	}

	m := Render(counties, testConfig())

	assert.Len(t, m.Circles, 1)
	assert.Equal(t, 84036059, m.Circles[0].UID)
}

func TestRenderSkipsMissingCoordinates(t *testing.T) {
	unassigned := testCounty(84036061, "Unassigned", 0, 0, []float64{5, 6, 7})
	counties := []schema.County{
		unassigned,
		testCounty(84036059, "Nassau", 40.7, -73.6, []float64{1, 2, 3}),
	}

	m := Render(counties, testConfig())

	assert.Len(t, m.Circles, 1, "row without coordinates must be skipped, not fatal")
	assert.Equal(t, 84036059, m.Circles[0].UID)
}

func TestRenderIdempotent(t *testing.T) {
	counties := []schema.County{
		testCounty(84036061, "New York", 40.7, -74.0, []float64{10, 12, 15, 18, 22, 30}),
		testCounty(84036059, "Nassau", 40.7, -73.6, []float64{1, 1, 2, 3, 5, 8}),
	}

	first := Render(counties, testConfig())
	second := Render(counties, testConfig())

	assert.Equal(t, first, second, "same table and threshold must render the same map")
}

func TestRenderFraming(t *testing.T) {
	m := Render(nil, testConfig())

	assert.Equal(t, schema.MapCenterLat, m.CenterLat)
	assert.Equal(t, schema.MapCenterLon, m.CenterLon)
	assert.Equal(t, schema.MapZoom, m.Zoom)
	assert.Equal(t, schema.RedRateDefault, m.RedRate)
	assert.Empty(t, m.Circles)
}

func TestRadius(t *testing.T) {
	assert.InDelta(t, math.Pow(1000, 0.43)*500, Radius(1000), 1e-9)

	// monotonic in the count
	assert.Greater(t, Radius(2000), Radius(1000))

	// sub-linear: the radius grows slower than the count
	assert.Less(t, Radius(2000)/Radius(1000), 2.0)
}

func TestTooltip(t *testing.T) {
	c := testCounty(84036061, "New York", 40.7, -74.0, []float64{100, 120, 150})

	assert.Equal(t, "New York, NY: 150 cases, rate 1.250", Tooltip(c, 1.25))
}
