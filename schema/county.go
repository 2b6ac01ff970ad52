package schema

const (
	CountyCollection = "county"
)

// FIPS codes identifying county-level rows fall in the open-closed range
// (CountyFIPSMin, CountyFIPSMax]. State aggregates sit at or below the lower
// bound, territories and cruise ships above the upper one.
const (
	CountyFIPSMin = 1000
	CountyFIPSMax = 60000
)

// County is one county-level row of the confirmed-case feed: identity,
// static location and the full cumulative case series, one entry per
// calendar day since SeriesStart.
type County struct {
	UID         int       `json:"uid" bson:"uid"`
	FIPS        int       `json:"fips" bson:"fips"`
	County      string    `json:"county" bson:"county"`
	State       string    `json:"state" bson:"state"`
	Location    GeoJSON   `json:"location" bson:"location"`
	Cases       []float64 `json:"cases" bson:"cases"`
	SeriesStart string    `json:"series_start" bson:"series_start"`
	UpdateTime  int64     `json:"update_ts" bson:"update_ts"`
}

// IsCountyFIPS reports whether a FIPS code identifies a county-level row.
func IsCountyFIPS(fips int) bool {
	return fips > CountyFIPSMin && fips <= CountyFIPSMax
}

// LatestCases returns the most recent cumulative count, 0 for an empty series.
func (c County) LatestCases() float64 {
	if len(c.Cases) == 0 {
		return 0
	}
	return c.Cases[len(c.Cases)-1]
}

// HasLocation reports whether the row carries usable coordinates. The feed
// leaves both fields zero for unassigned rows, which is not a point on any
// US county.
func (c County) HasLocation() bool {
	return len(c.Location.Coordinates) == 2 &&
		!(c.Location.Coordinates[0] == 0 && c.Location.Coordinates[1] == 0)
}

// Lat returns the latitude of the county centroid.
func (c County) Lat() float64 {
	if len(c.Location.Coordinates) != 2 {
		return 0
	}
	return c.Location.Coordinates[1]
}

// Lon returns the longitude of the county centroid.
func (c County) Lon() float64 {
	if len(c.Location.Coordinates) != 2 {
		return 0
	}
	return c.Location.Coordinates[0]
}
