package schema

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// GeoJSON document stored in mongodb, coordinates are [longitude, latitude]
type GeoJSON struct {
	Type        string    `bson:"type"`
	Coordinates []float64 `bson:"coordinates"`
}

const (
	ListingPointCollection = "listing_points"
)

// ListingPoint is the publicly displayable position of a listing. The
// coordinates are the fuzzed ones, so the collection never carries an
// exact address location.
type ListingPoint struct {
	ListingID string   `bson:"listing_id"`
	Location  *GeoJSON `bson:"location"`
	FruitType string   `bson:"fruit_type"`
}
