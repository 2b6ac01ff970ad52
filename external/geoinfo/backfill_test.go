package geoinfo_test

import (
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"googlemaps.github.io/maps"

	"github.com/bitmark-inc/covid-county-map/external/geoinfo"
	"github.com/bitmark-inc/covid-county-map/external/mocks"
	"github.com/bitmark-inc/covid-county-map/schema"
)

func TestBackfillLocations(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	located := schema.County{
		UID:      84036061,
		County:   "New York",
		State:    "NY",
		Location: schema.NewPoint(40.76, -73.97),
	}
	unlocated := schema.County{
		UID:    84006075,
		County: "San Francisco",
		State:  "CA",
	}

	geoClient := mocks.NewMockGeoInfo(ctl)
	geoClient.EXPECT().Get("San Francisco County, CA, US").Return([]maps.GeocodingResult{
		{
			Geometry: maps.AddressGeometry{
				Location: maps.LatLng{Lat: 37.75923, Lng: -122.69306},
			},
		},
	}, nil).Times(1)

	counties := geoinfo.BackfillLocations(geoClient, []schema.County{located, unlocated})

	assert.Len(t, counties, 2)
	assert.True(t, counties[1].HasLocation(), "unlocated county must be backfilled")
	assert.InDelta(t, 37.75923, counties[1].Lat(), 1e-9)
	assert.InDelta(t, -122.69306, counties[1].Lon(), 1e-9)
	// already-located rows are left alone, the client is never asked
	assert.InDelta(t, 40.76, counties[0].Lat(), 1e-9)
}

func TestBackfillLocationsLookupFailure(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	unlocated := schema.County{
		UID:    84090036,
		County: "Unassigned",
		State:  "NY",
	}

	geoClient := mocks.NewMockGeoInfo(ctl)
	geoClient.EXPECT().Get(gomock.Any()).Return(nil, fmt.Errorf("quota exceeded")).Times(1)

	counties := geoinfo.BackfillLocations(geoClient, []schema.County{unlocated})

	assert.Len(t, counties, 1)
	assert.False(t, counties[0].HasLocation(), "failed lookup keeps the row unlocated")
}
