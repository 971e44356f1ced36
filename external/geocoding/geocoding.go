package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	logPrefix        = "geocoding"
	defaultNominatim = "https://nominatim.openstreetmap.org"
	defaultUserAgent = "FruitShare/1.0"
	maxAttempts      = 3
)

var (
	ErrAddressNotFound = fmt.Errorf("address not found, please check and retry")
	ErrRateLimited     = fmt.Errorf("rate limited by geocoding service")
)

// Place is a geocoded street address
type Place struct {
	Lat              float64
	Lng              float64
	City             string
	State            string
	ZipCode          string
	FormattedAddress string
}

// Geocoder - interface to resolve a street address into a place
type Geocoder interface {
	Geocode(ctx context.Context, address string) (*Place, error)
}

// NominatimClient geocodes through the free OpenStreetMap endpoint. The
// service rate-limits aggressively, so requests are retried up to three
// times with a linearly increasing delay before the failure surfaces.
type NominatimClient struct {
	endpoint   string
	userAgent  string
	client     *http.Client
	retryDelay time.Duration
}

func NewNominatimClient(endpoint string, client *http.Client) *NominatimClient {
	if endpoint == "" {
		endpoint = defaultNominatim
	}

	return &NominatimClient{
		endpoint:   endpoint,
		userAgent:  defaultUserAgent,
		client:     client,
		retryDelay: time.Second,
	}
}

type nominatimResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
	Address     struct {
		City         string `json:"city"`
		Town         string `json:"town"`
		Village      string `json:"village"`
		Municipality string `json:"municipality"`
		State        string `json:"state"`
		Postcode     string `json:"postcode"`
	} `json:"address"`
}

func (n *NominatimClient) Geocode(ctx context.Context, address string) (*Place, error) {
	query := fmt.Sprintf("%s/search?format=json&q=%s&addressdetails=1&limit=1",
		n.endpoint, url.QueryEscape(address))

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			log.WithFields(log.Fields{
				"prefix":  logPrefix,
				"attempt": attempt + 1,
			}).Info("retrying geocode")

			select {
			case <-time.After(time.Duration(attempt) * n.retryDelay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		place, retriable, err := n.geocodeOnce(ctx, query)
		if err == nil {
			return place, nil
		}

		lastErr = err
		if !retriable {
			return nil, err
		}
	}

	return nil, lastErr
}

func (n *NominatimClient) geocodeOnce(ctx context.Context, query string) (*Place, bool, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", query, nil)
	if err != nil {
		return nil, false, err
	}
	req.Header.Set("User-Agent", n.userAgent)

	resp, err := n.client.Do(req)
	if err != nil {
		return nil, true, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode == http.StatusForbidden {
		return nil, true, ErrRateLimited
	}

	if resp.StatusCode != http.StatusOK {
		return nil, false, fmt.Errorf("geocode address: %s", resp.Status)
	}

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, true, err
	}

	var results []nominatimResult
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, false, err
	}

	if len(results) == 0 {
		return nil, false, ErrAddressNotFound
	}

	r := results[0]
	lat, err := strconv.ParseFloat(r.Lat, 64)
	if err != nil {
		return nil, false, err
	}
	lng, err := strconv.ParseFloat(r.Lon, 64)
	if err != nil {
		return nil, false, err
	}

	city := r.Address.City
	if city == "" {
		city = r.Address.Town
	}
	if city == "" {
		city = r.Address.Village
	}
	if city == "" {
		city = r.Address.Municipality
	}

	return &Place{
		Lat:              lat,
		Lng:              lng,
		City:             city,
		State:            r.Address.State,
		ZipCode:          r.Address.Postcode,
		FormattedAddress: r.DisplayName,
	}, false, nil
}
