package maprender

import (
	"fmt"
	"math"
	"sort"

	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/covid-county-map/schema"
	"github.com/bitmark-inc/covid-county-map/score"
)

const (
	logPrefix = "maprender"

	// Sub-linear power-law scaling keeps outlier counties from visually
	// swallowing the map while still ordering circles by case volume.
	radiusExponent = 0.43
	radiusScale    = 500
)

// Radius returns the circle radius in meters for a cumulative case count.
func Radius(cases float64) float64 {
	return math.Pow(cases, radiusExponent) * radiusScale
}

// Tooltip formats the hover text for one county circle.
func Tooltip(county schema.County, rate float64) string {
	return fmt.Sprintf("%s, %s: %d cases, rate %.3f",
		county.County, county.State, int64(county.LatestCases()), rate)
}

// Render maps the county table to circle markers against the given
// threshold. Counties without cases are dropped, the rest are emitted
// largest-first so small circles draw on top. Rows without coordinates are
// skipped with a log, never aborting the render. Render reads its inputs
// only, so the same table and config always yield the same map.
func Render(counties []schema.County, cfg schema.MapConfig) schema.MapObject {
	scale := score.NewColorScale(cfg.RedRate)

	displayed := make([]schema.County, 0, len(counties))
	for _, c := range counties {
		if c.LatestCases() > 0 {
			displayed = append(displayed, c)
		}
	}

	sort.SliceStable(displayed, func(i, j int) bool {
		return displayed[i].LatestCases() > displayed[j].LatestCases()
	})

	circles := make([]schema.CircleSpec, 0, len(displayed))
	for _, c := range displayed {
		if !c.HasLocation() {
			log.WithFields(log.Fields{
				"prefix": logPrefix,
				"uid":    c.UID,
				"county": c.County,
				"state":  c.State,
			}).Warn("county without coordinates skipped")
			continue
		}

		rate := score.RateOfIncrease(c.Cases, score.DefaultRateWindow)
		circles = append(circles, schema.CircleSpec{
			UID:     c.UID,
			Lat:     c.Lat(),
			Lon:     c.Lon(),
			Radius:  Radius(c.LatestCases()),
			Color:   scale.Color(rate),
			Cases:   c.LatestCases(),
			Rate:    rate,
			Tooltip: Tooltip(c, rate),
		})
	}

	return schema.MapObject{
		CenterLat: schema.MapCenterLat,
		CenterLon: schema.MapCenterLon,
		Zoom:      schema.MapZoom,
		RedRate:   cfg.RedRate,
		Circles:   circles,
	}
}
