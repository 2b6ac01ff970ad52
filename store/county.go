package store

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/covid-county-map/schema"
)

var (
	ErrNoCountyDataset = fmt.Errorf("no county data-set")
	ErrCountyFetch     = fmt.Errorf("fetch county data fail")
	ErrCountyDecode    = fmt.Errorf("decode county data fail")
	ErrCountyNotFound  = fmt.Errorf("county not found")
)

// CountyOperator - county collection operations
type CountyOperator interface {
	ReplaceCounties(counties []schema.County) error
	ListCounties() ([]schema.County, error)
	GetCounty(uid int) (*schema.County, error)
	CountCounties() (int64, error)
	DeleteCountiesBefore(timeBefore int64) error
}

// ReplaceCounties upserts every row of a freshly loaded table, keyed by the
// feed UID so a re-fetch replaces series in place.
func (m *mongoDB) ReplaceCounties(counties []schema.County) error {
	if len(counties) == 0 {
		log.WithField("prefix", mongoLogPrefix).Debug("no county record to update")
		return nil
	}

	c := m.client.Database(m.database).Collection(schema.CountyCollection)
	for _, county := range counties {
		filter := bson.M{"uid": county.UID}
		opts := options.Replace().SetUpsert(true)
		if _, err := c.ReplaceOne(context.Background(), filter, county, opts); err != nil {
			log.WithFields(log.Fields{
				"prefix": mongoLogPrefix,
				"uid":    county.UID,
				"error":  err,
			}).Error("replace county record")
			return err
		}
	}

	log.WithFields(log.Fields{"prefix": mongoLogPrefix, "records": len(counties)}).Debug("county records replaced")
	return nil
}

// ListCounties returns the whole county table.
func (m *mongoDB) ListCounties() ([]schema.County, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.CountyCollection)
	opts := options.Find().SetSort(bson.M{"uid": 1})
	cur, err := c.Find(ctx, bson.M{}, opts)
	if nil != err {
		log.WithField("prefix", mongoLogPrefix).Errorf("county data find error: %s", err)
		return nil, ErrCountyFetch
	}
	defer cur.Close(ctx)

	var counties []schema.County
	for cur.Next(ctx) {
		var county schema.County
		if errDecode := cur.Decode(&county); errDecode != nil {
			return nil, ErrCountyDecode
		}
		counties = append(counties, county)
	}

	if len(counties) == 0 {
		return nil, ErrNoCountyDataset
	}
	return counties, nil
}

// GetCounty returns a single row by feed UID.
func (m *mongoDB) GetCounty(uid int) (*schema.County, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.CountyCollection)

	var county schema.County
	err := c.FindOne(ctx, bson.M{"uid": uid}).Decode(&county)
	if nil != err {
		return nil, ErrCountyNotFound
	}
	return &county, nil
}

// CountCounties reports the table size, used to decide whether the initial
// load has to run.
func (m *mongoDB) CountCounties() (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.CountyCollection)
	return c.CountDocuments(ctx, bson.M{})
}

// DeleteCountiesBefore drops rows whose update timestamp predates the
// current fetch, removing counties that vanished from the feed.
func (m *mongoDB) DeleteCountiesBefore(timeBefore int64) error {
	c := m.client.Database(m.database).Collection(schema.CountyCollection)
	filter := bson.M{"update_ts": bson.D{{Key: "$lt", Value: timeBefore}}}
	res, err := c.DeleteMany(context.Background(), filter)
	if err != nil {
		log.WithField("prefix", mongoLogPrefix).Warnf("county delete stale record with error: %s", err)
		return err
	}
	log.WithFields(log.Fields{"prefix": mongoLogPrefix, "records": res.DeletedCount}).Debug("stale county records deleted")
	return nil
}
