package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fruitshare/fruitshare-api/schema"
)

func TestUpsertPropertyRejectsDistantLocation(t *testing.T) {
	s := &FruitShareStore{}

	// roughly 200 meters north of the live position
	live := schema.Location{Latitude: 37.0, Longitude: -122.0}
	_, err := s.UpsertProperty("owner", "1 Main St", 37.0018, -122.0, live)

	proximity, ok := err.(*ProximityError)
	assert.True(t, ok, "expected a proximity error")
	assert.InDelta(t, 200, proximity.DistanceMeters, 5)
	assert.Contains(t, proximity.Error(), "meters away")
}

func TestUpsertPropertyBoundary(t *testing.T) {
	s := &FruitShareStore{}

	// just over the 50 meter bound
	live := schema.Location{Latitude: 37.0, Longitude: -122.0}
	_, err := s.UpsertProperty("owner", "1 Main St", 37.00046, -122.0, live)

	_, ok := err.(*ProximityError)
	assert.True(t, ok, "expected a proximity error just past the bound")
}
