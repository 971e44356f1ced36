package geocoding

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const nominatimFixture = `[
	{
		"lat": "38.4412110",
		"lon": "-122.7144100",
		"display_name": "123, Orchard Lane, Santa Rosa, Sonoma County, California, 95401, United States",
		"address": {
			"town": "Santa Rosa",
			"state": "California",
			"postcode": "95401"
		}
	}
]`

func testClient(endpoint string) *NominatimClient {
	c := NewNominatimClient(endpoint, &http.Client{Timeout: 5 * time.Second})
	c.retryDelay = time.Millisecond
	return c
}

func TestGeocodeParsesPlace(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		fmt.Fprint(w, nominatimFixture)
	}))
	defer ts.Close()

	place, err := testClient(ts.URL).Geocode(context.Background(), "123 Orchard Lane, Santa Rosa")
	assert.NoError(t, err)
	assert.Equal(t, 38.441211, place.Lat)
	assert.Equal(t, -122.71441, place.Lng)
	assert.Equal(t, "Santa Rosa", place.City)
	assert.Equal(t, "California", place.State)
	assert.Equal(t, "95401", place.ZipCode)
}

func TestGeocodeRetriesOnRateLimit(t *testing.T) {
	var calls int
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < 3 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		fmt.Fprint(w, nominatimFixture)
	}))
	defer ts.Close()

	place, err := testClient(ts.URL).Geocode(context.Background(), "123 Orchard Lane")
	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, "Santa Rosa", place.City)
}

func TestGeocodeGivesUpAfterThreeAttempts(t *testing.T) {
	var calls int
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusForbidden)
	}))
	defer ts.Close()

	_, err := testClient(ts.URL).Geocode(context.Background(), "123 Orchard Lane")
	assert.Equal(t, ErrRateLimited, err)
	assert.Equal(t, 3, calls)
}

func TestGeocodeAddressNotFound(t *testing.T) {
	var calls int
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		fmt.Fprint(w, `[]`)
	}))
	defer ts.Close()

	_, err := testClient(ts.URL).Geocode(context.Background(), "nowhere at all")
	assert.Equal(t, ErrAddressNotFound, err)
	assert.Equal(t, 1, calls, "an empty result is not retriable")
}

func TestGeocodeContextCancelled(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer ts.Close()

	c := testClient(ts.URL)
	c.retryDelay = time.Minute

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := c.Geocode(ctx, "123 Orchard Lane")
	assert.Equal(t, context.DeadlineExceeded, err)
}
