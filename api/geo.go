package api

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fruitshare/fruitshare-api/schema"
)

// parseGeoPosition will parse latitude and longitude from the geo-position string
func parseGeoPosition(geoPosition string) (float64, float64, error) {
	positions := strings.Split(geoPosition, ";")

	if len(positions) != 2 {
		return 0, 0, fmt.Errorf("invalid geo-position value")
	}

	lat, err := strconv.ParseFloat(positions[0], 64)
	if err != nil {
		return 0, 0, err
	}

	long, err := strconv.ParseFloat(positions[1], 64)
	if err != nil {
		return 0, 0, err
	}

	return lat, long, nil
}

// liveGeoPosition reads the caller's live GPS reading from the
// Geo-Position header. Property verification depends on it, so the
// proximity check can no longer be bypassed by a client-computed
// distance.
func liveGeoPosition(geoPosition string) (*schema.Location, error) {
	lat, lng, err := parseGeoPosition(geoPosition)
	if err != nil {
		return nil, err
	}

	return &schema.Location{
		Latitude:  lat,
		Longitude: lng,
	}, nil
}
