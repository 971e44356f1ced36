package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFuzzyStaysWithinOffset(t *testing.T) {
	coords := [][2]float64{
		{37.7749, -122.4194},
		{40.7128, -74.0060},
		{-33.8688, 151.2093},
		{0, 0},
	}

	for _, c := range coords {
		for i := 0; i < 100; i++ {
			lat, lng := Fuzzy(c[0], c[1])
			assert.LessOrEqual(t, math.Abs(lat-c[0]), maxFuzzDegrees)
			assert.LessOrEqual(t, math.Abs(lng-c[1]), maxFuzzDegrees)
		}
	}
}

func TestFuzzyRoundsToEightDecimals(t *testing.T) {
	for i := 0; i < 100; i++ {
		lat, lng := Fuzzy(37.7749, -122.4194)
		assert.Equal(t, round8(lat), lat)
		assert.Equal(t, round8(lng), lng)
	}
}

func TestDistanceMetersKnownPair(t *testing.T) {
	// San Francisco to Los Angeles is about 559 km
	d := DistanceMeters(37.7749, -122.4194, 34.0522, -118.2437)
	assert.InDelta(t, 559000, d, 5000)
}

func TestDistanceZeroAndSymmetry(t *testing.T) {
	assert.Equal(t, 0.0, DistanceMeters(37.7749, -122.4194, 37.7749, -122.4194))

	a := DistanceMeters(37.7749, -122.4194, 34.0522, -118.2437)
	b := DistanceMeters(34.0522, -118.2437, 37.7749, -122.4194)
	assert.Equal(t, a, b)
}

func TestDistanceMilesMatchesMeters(t *testing.T) {
	meters := DistanceMeters(37.7749, -122.4194, 34.0522, -118.2437)
	miles := DistanceMiles(37.7749, -122.4194, 34.0522, -118.2437)
	assert.InDelta(t, meters/miles, earthRadiusMeters/earthRadiusMiles, 0.001)
}

func TestFuzzyOffsetBelowATolerableDistance(t *testing.T) {
	// 0.005 degrees on both axes is under 790 meters anywhere below
	// 60 degrees of latitude
	for i := 0; i < 100; i++ {
		lat, lng := Fuzzy(51.5074, -0.1278)
		d := DistanceMeters(51.5074, -0.1278, lat, lng)
		assert.Less(t, d, 790.0)
	}
}
