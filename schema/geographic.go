package schema

// GeoJSON point, coordinates in [longitude, latitude] order so the county
// collection can carry a mongo 2dsphere index.
type GeoJSON struct {
	Type        string    `json:"type" bson:"type"`
	Coordinates []float64 `json:"coordinates" bson:"coordinates"`
}

// NewPoint builds a GeoJSON point from a lat/lon pair.
func NewPoint(lat, lon float64) GeoJSON {
	return GeoJSON{
		Type:        "Point",
		Coordinates: []float64{lon, lat},
	}
}
