package background

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/covid-county-map/external/geoinfo"
)

const refreshTimeout = 5 * time.Minute

// RefreshCountyData re-fetches the confirmed-case feed and replaces the
// county table: fetch, geocode backfill, upsert, drop rows that vanished
// from the feed. Registered as the `refresh_county_data` machinery task and
// also called directly for the initial load.
func (m *BackgroundManager) RefreshCountyData() error {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	started := time.Now().Unix()

	counties, err := m.feed.FetchConfirmedUS(ctx)
	if err != nil {
		log.WithFields(log.Fields{"prefix": logPrefix, "error": err}).Error("fetch county feed")
		return err
	}

	if m.geoClient != nil {
		counties = geoinfo.BackfillLocations(m.geoClient, counties)
	}

	if err := m.mongoStore.ReplaceCounties(counties); err != nil {
		log.WithFields(log.Fields{"prefix": logPrefix, "error": err}).Error("replace county table")
		return err
	}

	if err := m.mongoStore.DeleteCountiesBefore(started); err != nil {
		log.WithFields(log.Fields{"prefix": logPrefix, "error": err}).Error("delete stale county rows")
		return err
	}

	log.WithFields(log.Fields{"prefix": logPrefix, "counties": len(counties)}).Info("county table refreshed")
	return nil
}
