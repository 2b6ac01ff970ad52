package jhu

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/covid-county-map/consts"
	"github.com/bitmark-inc/covid-county-map/schema"
)

const (
	defaultURL     = "https://raw.githubusercontent.com/CSSEGISandData/COVID-19/master/csse_covid_19_data/csse_covid_19_time_series/time_series_covid19_confirmed_US.csv"
	defaultTimeout = 30 * time.Second
	logPrefix      = "jhu"

	// descriptive columns before the first date column
	seriesOffset = 11
)

var (
	ErrFeedStatus     = fmt.Errorf("feed response status not ok")
	ErrFeedCorrupted  = fmt.Errorf("feed body truncated or corrupted")
	ErrSchemaMismatch = fmt.Errorf("feed schema mismatch")
	ErrNoCountyRows   = fmt.Errorf("no county rows in feed")
)

var (
	errNotCountyRow  = fmt.Errorf("not a county row")
	errStateRejected = fmt.Errorf("state name rejected")
)

// JHU - client for the JHU CSSE confirmed-case time series feed
type JHU interface {
	FetchConfirmedUS(ctx context.Context) ([]schema.County, error)
}

type jhu struct {
	url    string
	client *http.Client
}

// New - new JHU client; an empty url falls back to the upstream feed
func New(url string, timeout time.Duration) JHU {
	u := defaultURL
	if url != "" {
		u = url
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &jhu{
		url: u,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// feedColumns holds the header indexes of the descriptive columns.
type feedColumns struct {
	uid    int
	fips   int
	county int
	state  int
	lat    int
	lon    int
}

// validateHeader locates the descriptive columns and checks the date series
// starts where expected. Any missing or renamed column is a schema error.
func validateHeader(header []string) (*feedColumns, error) {
	if len(header) <= seriesOffset {
		return nil, ErrSchemaMismatch
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}

	cols := &feedColumns{}
	for _, want := range []struct {
		name string
		dst  *int
	}{
		{"UID", &cols.uid},
		{"FIPS", &cols.fips},
		{"Admin2", &cols.county},
		{"Province_State", &cols.state},
		{"Lat", &cols.lat},
		{"Long_", &cols.lon},
	} {
		i, ok := index[want.name]
		if !ok {
			log.WithFields(log.Fields{"prefix": logPrefix, "column": want.name}).Error("feed column missing")
			return nil, ErrSchemaMismatch
		}
		if i >= seriesOffset {
			// a descriptive column at or past the series offset means
			// upstream inserted a column and shifted the whole date series
			log.WithFields(log.Fields{"prefix": logPrefix, "column": want.name, "index": i}).Error("feed column shifted")
			return nil, ErrSchemaMismatch
		}
		*want.dst = i
	}

	if _, err := time.Parse("1/2/06", header[seriesOffset]); err != nil {
		log.WithFields(log.Fields{"prefix": logPrefix, "column": header[seriesOffset]}).Error("series start is not a date")
		return nil, ErrSchemaMismatch
	}

	return cols, nil
}

// FetchConfirmedUS downloads and parses the feed into county rows. Rows
// above county level, rows with unmappable state names and rows that fail
// to parse are rejected individually; the fetch fails when transport
// breaks, the body is cut short or malformed, the header does not match,
// or nothing county-shaped survives.
func (j jhu) FetchConfirmedUS(ctx context.Context) ([]schema.County, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, j.url, nil)
	if nil != err {
		return nil, err
	}

	resp, err := j.client.Do(req)
	if nil != err {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.WithFields(log.Fields{"prefix": logPrefix, "status": resp.StatusCode}).Error("feed fetch")
		return nil, ErrFeedStatus
	}

	reader := csv.NewReader(resp.Body)
	header, err := reader.Read()
	if nil != err {
		return nil, ErrSchemaMismatch
	}

	cols, err := validateHeader(header)
	if nil != err {
		return nil, err
	}

	seriesStart := header[seriesOffset]
	now := time.Now().Unix()

	counties := make([]schema.County, 0, 3500)
	rejected := 0

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// a transport failure or malformed record mid-stream must not
			// pass off the rows read so far as a complete table
			log.WithFields(log.Fields{"prefix": logPrefix, "error": err}).Error("feed read")
			return nil, ErrFeedCorrupted
		}

		county, err := parseRow(record, cols, seriesStart, now)
		if err != nil {
			if err == errStateRejected {
				rejected++
			}
			continue
		}

		counties = append(counties, *county)
	}

	if rejected > 0 {
		log.WithFields(log.Fields{"prefix": logPrefix, "rows": rejected}).Warn("rows rejected for unmappable state names")
	}

	if len(counties) == 0 {
		return nil, ErrNoCountyRows
	}

	log.WithFields(log.Fields{"prefix": logPrefix, "counties": len(counties)}).Info("feed parsed")
	return counties, nil
}

// parseRow converts one CSV record to a county row. Rows that are not
// county-level or not parseable return errNotCountyRow; a county whose
// state has no abbreviation returns errStateRejected so the caller can
// count the validation failure.
func parseRow(record []string, cols *feedColumns, seriesStart string, now int64) (*schema.County, error) {
	if len(record) <= seriesOffset {
		return nil, errNotCountyRow
	}

	// the feed writes FIPS as a float, e.g. "36061.0"
	fipsF, err := strconv.ParseFloat(record[cols.fips], 64)
	if nil != err {
		return nil, errNotCountyRow
	}
	fips := int(fipsF)
	if !schema.IsCountyFIPS(fips) {
		return nil, errNotCountyRow
	}

	uid, err := strconv.Atoi(record[cols.uid])
	if nil != err {
		return nil, errNotCountyRow
	}

	abbr, err := consts.StateAbbr(record[cols.state])
	if nil != err {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"uid":    record[cols.uid],
			"state":  record[cols.state],
		}).Warn("no state abbreviation, row rejected")
		return nil, errStateRejected
	}

	lat := parseCoordinate(record[cols.lat])
	lon := parseCoordinate(record[cols.lon])

	cases := make([]float64, 0, len(record)-seriesOffset)
	for _, v := range record[seriesOffset:] {
		count, err := strconv.ParseFloat(v, 64)
		if nil != err || count < 0 {
			return nil, errNotCountyRow
		}
		cases = append(cases, count)
	}

	return &schema.County{
		UID:         uid,
		FIPS:        fips,
		County:      record[cols.county],
		State:       abbr,
		Location:    schema.NewPoint(lat, lon),
		Cases:       cases,
		SeriesStart: seriesStart,
		UpdateTime:  now,
	}, nil
}

// parseCoordinate treats an empty or malformed field as 0, which the schema
// layer reads as "no coordinates".
func parseCoordinate(v string) float64 {
	f, err := strconv.ParseFloat(v, 64)
	if nil != err {
		return 0
	}
	return f
}
