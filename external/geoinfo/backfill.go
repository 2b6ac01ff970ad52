package geoinfo

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/covid-county-map/schema"
)

// BackfillLocations resolves coordinates for county rows the feed left
// unlocated. Lookup failures keep the row as-is; the renderer skips
// unlocated rows anyway.
func BackfillLocations(client GeoInfo, counties []schema.County) []schema.County {
	filled := 0
	for i, c := range counties {
		if c.HasLocation() {
			continue
		}

		address := fmt.Sprintf("%s County, %s, US", c.County, c.State)
		results, err := client.Get(address)
		if err != nil || len(results) == 0 {
			log.WithFields(log.Fields{
				"prefix":  logPrefix,
				"address": address,
				"error":   err,
			}).Warn("geocode backfill failed")
			continue
		}

		loc := results[0].Geometry.Location
		counties[i].Location = schema.NewPoint(loc.Lat, loc.Lng)
		filled++
	}

	if filled > 0 {
		log.WithFields(log.Fields{"prefix": logPrefix, "counties": filled}).Info("geocode backfill")
	}
	return counties
}
