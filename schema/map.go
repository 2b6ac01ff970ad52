package schema

// Base map framing: continental-US centroid at a fixed zoom.
const (
	MapCenterLat = 39.758056
	MapCenterLon = -96.0
	MapZoom      = 4
)

// Bounds of the color threshold. RedRateDefault is where the slider starts.
const (
	RedRateMin     = 1.0
	RedRateMax     = 1.5
	RedRateDefault = 1.05
)

// MapConfig is the single tunable render parameter. It is passed at each
// render, never stored.
type MapConfig struct {
	RedRate float64 `json:"red_rate"`
}

// Valid reports whether the threshold is inside the slider range.
func (c MapConfig) Valid() bool {
	return c.RedRate >= RedRateMin && c.RedRate <= RedRateMax
}

// CircleSpec is one rendered county: geometry, style and tooltip for a
// leaflet circle marker. Circles are emitted in draw order.
type CircleSpec struct {
	UID     int     `json:"uid"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Radius  float64 `json:"radius"`
	Color   string  `json:"color"`
	Cases   float64 `json:"cases"`
	Rate    float64 `json:"rate"`
	Tooltip string  `json:"tooltip"`
}

// MapObject is a full render result.
type MapObject struct {
	CenterLat float64      `json:"center_lat"`
	CenterLon float64      `json:"center_lon"`
	Zoom      int          `json:"zoom"`
	RedRate   float64      `json:"red_rate"`
	Circles   []CircleSpec `json:"circles"`
}
