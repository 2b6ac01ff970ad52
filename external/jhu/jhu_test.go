package jhu_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/covid-county-map/external/jhu"
)

const testHeader = "UID,iso2,iso3,code3,FIPS,Admin2,Province_State,Country_Region,Lat,Long_,Combined_Key,1/22/20,1/23/20,1/24/20"

const testFeed = testHeader + "\n" +
	// state-level aggregate, FIPS below the county range
	"84000036,US,USA,840,500.0,,New York,US,42.1,-74.9,\"New York, US\",0,1,2\n" +
	// a county row that must survive
	"84036061,US,USA,840,36061.0,New York,New York,US,40.7672726,-73.97152637,\"New York, New York, US\",0,5,9\n" +
	// territory FIPS sits above the county range and is filtered out there
	"630,PR,PRI,630,72001.0,Adjuntas,Puerto Rico,US,18.18,-66.75,\"Adjuntas, Puerto Rico, US\",0,0,1\n" +
	// synthetic county-range FIPS with an unmappable state name: the
	// validation must reject the row rather than store a blank state
	"84059001,US,USA,840,59001.0,Atka,Aleutia,US,52.2,-174.2,\"Atka, Aleutia, US\",0,0,1\n" +
	// unassigned row without coordinates is kept; rendering skips it later
	"84090036,US,USA,840,36999.0,Unassigned,New York,US,,,\"Unassigned, New York, US\",3,3,4\n"

func TestFetchConfirmedUS(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(testFeed))
	}))
	defer ts.Close()

	client := jhu.New(ts.URL, 0)
	counties, err := client.FetchConfirmedUS(context.Background())
	assert.Nil(t, err, "wrong fetch")
	assert.Len(t, counties, 2, "wrong number of county rows")

	ny := counties[0]
	assert.Equal(t, 84036061, ny.UID)
	assert.Equal(t, 36061, ny.FIPS)
	assert.Equal(t, "New York", ny.County)
	assert.Equal(t, "NY", ny.State)
	assert.Equal(t, []float64{0, 5, 9}, ny.Cases)
	assert.Equal(t, "1/22/20", ny.SeriesStart)
	assert.True(t, ny.HasLocation())
	assert.InDelta(t, 40.7672726, ny.Lat(), 1e-9)
	assert.InDelta(t, -73.97152637, ny.Lon(), 1e-9)

	unassigned := counties[1]
	assert.Equal(t, "Unassigned", unassigned.County)
	assert.False(t, unassigned.HasLocation())
}

func TestFetchConfirmedUSSchemaMismatch(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("UID,FIPS,Admin2\n84036061,36061.0,New York\n"))
	}))
	defer ts.Close()

	client := jhu.New(ts.URL, 0)
	_, err := client.FetchConfirmedUS(context.Background())
	assert.Equal(t, jhu.ErrSchemaMismatch, err, "truncated header must be a schema error")
}

func TestFetchConfirmedUSRenamedColumn(t *testing.T) {
	feed := "UID,iso2,iso3,code3,FIPS,County,Province_State,Country_Region,Lat,Long_,Combined_Key,1/22/20\n"
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(feed))
	}))
	defer ts.Close()

	client := jhu.New(ts.URL, 0)
	_, err := client.FetchConfirmedUS(context.Background())
	assert.Equal(t, jhu.ErrSchemaMismatch, err, "renamed Admin2 column must be a schema error")
}

func TestFetchConfirmedUSTruncatedBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		// advertise more than is sent and sever the transfer mid-stream
		w.Header().Set("Content-Length", strconv.Itoa(len(testFeed)+100))
		_, _ = w.Write([]byte(testFeed))
	}))
	defer ts.Close()

	client := jhu.New(ts.URL, 0)
	counties, err := client.FetchConfirmedUS(context.Background())
	assert.Equal(t, jhu.ErrFeedCorrupted, err, "a truncated transfer must not pass as a complete load")
	assert.Nil(t, counties, "no partial table on a truncated transfer")
}

func TestFetchConfirmedUSMalformedRecord(t *testing.T) {
	feed := testFeed +
		"84036119,US,USA,840,36119.0,\"Westchester,New York,US,41.1,-73.8,\"Westchester, New York, US\",1,2,3\n"
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(feed))
	}))
	defer ts.Close()

	client := jhu.New(ts.URL, 0)
	_, err := client.FetchConfirmedUS(context.Background())
	assert.Equal(t, jhu.ErrFeedCorrupted, err, "a malformed record must fail the load, not drop the tail")
}

func TestFetchConfirmedUSInsertedColumn(t *testing.T) {
	// an extra descriptive column shifts the date series off its offset
	feed := "UID,iso2,iso3,code3,FIPS,Admin2,Province_State,Country_Region,Lat,Long_,Combined_Key,Population,1/22/20,1/23/20\n" +
		"84036061,US,USA,840,36061.0,New York,New York,US,40.7672726,-73.97152637,\"New York, New York, US\",1628706,0,5\n"
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(feed))
	}))
	defer ts.Close()

	client := jhu.New(ts.URL, 0)
	_, err := client.FetchConfirmedUS(context.Background())
	assert.Equal(t, jhu.ErrSchemaMismatch, err, "shifted date series must be a schema error")
}

func TestFetchConfirmedUSNoCountyRows(t *testing.T) {
	feed := testHeader + "\n" +
		"84000036,US,USA,840,36.0,,New York,US,42.1,-74.9,\"New York, US\",0,1,2\n"
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(feed))
	}))
	defer ts.Close()

	client := jhu.New(ts.URL, 0)
	_, err := client.FetchConfirmedUS(context.Background())
	assert.Equal(t, jhu.ErrNoCountyRows, err)
}

func TestFetchConfirmedUSFeedStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	client := jhu.New(ts.URL, 0)
	_, err := client.FetchConfirmedUS(context.Background())
	assert.Equal(t, jhu.ErrFeedStatus, err)
}
