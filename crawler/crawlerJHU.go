package main

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/covid-county-map/external/geoinfo"
	"github.com/bitmark-inc/covid-county-map/external/jhu"
	"github.com/bitmark-inc/covid-county-map/store"
)

type jhuCrawler struct {
	mongoStore store.MongoStore
	feed       jhu.JHU
	geoClient  geoinfo.GeoInfo
}

func (c jhuCrawler) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()

	started := time.Now().Unix()

	counties, err := c.feed.FetchConfirmedUS(ctx)
	if nil != err {
		log.WithFields(log.Fields{"prefix": logPrefix, "error": err}).Error("data from JHU")
		return
	}

	if c.geoClient != nil {
		counties = geoinfo.BackfillLocations(c.geoClient, counties)
	}

	if err := c.mongoStore.ReplaceCounties(counties); err != nil {
		log.WithFields(log.Fields{"prefix": logPrefix, "error": err}).Error("replace county data")
		return
	}

	if err := c.mongoStore.DeleteCountiesBefore(started); err != nil {
		log.WithFields(log.Fields{"prefix": logPrefix, "error": err}).Error("delete stale county data")
		return
	}

	log.WithFields(log.Fields{"prefix": logPrefix, "data count": len(counties)}).Debug("data from JHU")
}

// newJHUCrawler - new cron job for the daily county feed crawler
func newJHUCrawler(mongoStore store.MongoStore, feed jhu.JHU, geoClient geoinfo.GeoInfo) Cron {
	return &jhuCrawler{
		mongoStore: mongoStore,
		feed:       feed,
		geoClient:  geoClient,
	}
}
