package geo

import (
	"math"
	"math/rand"
)

const (
	earthRadiusMeters = 6371000.0
	earthRadiusMiles  = 3959.0

	// maximum offset applied per axis, roughly 500 meters at mid latitudes
	maxFuzzDegrees = 0.005
)

// Fuzzy offsets a coordinate by an independent uniform random amount in
// [-0.005, +0.005) degrees per axis, rounded to 8 decimal places. The
// offset is not reversible. It is applied exactly once when a listing is
// created and the result is persisted, so repeated reads of the same
// listing always return the same approximate position.
func Fuzzy(lat, lng float64) (float64, float64) {
	offsetLat := (rand.Float64()*2 - 1) * maxFuzzDegrees
	offsetLng := (rand.Float64()*2 - 1) * maxFuzzDegrees

	return round8(lat + offsetLat), round8(lng + offsetLng)
}

func round8(v float64) float64 {
	return math.Round(v*1e8) / 1e8
}

// DistanceMeters returns the great-circle distance between two
// coordinates in meters.
func DistanceMeters(lat1, lng1, lat2, lng2 float64) float64 {
	return haversine(lat1, lng1, lat2, lng2) * earthRadiusMeters
}

// DistanceMiles returns the great-circle distance between two
// coordinates in miles.
func DistanceMiles(lat1, lng1, lat2, lng2 float64) float64 {
	return haversine(lat1, lng1, lat2, lng2) * earthRadiusMiles
}

func haversine(lat1, lng1, lat2, lng2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	deltaPhi := (lat2 - lat1) * math.Pi / 180
	deltaLambda := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(deltaPhi/2)*math.Sin(deltaPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(deltaLambda/2)*math.Sin(deltaLambda/2)

	return 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}
