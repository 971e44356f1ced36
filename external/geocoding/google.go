package geocoding

import (
	"context"

	log "github.com/sirupsen/logrus"
	"googlemaps.github.io/maps"
)

// GoogleClient resolves addresses through the Google Maps geocoding API
type GoogleClient struct {
	client *maps.Client
}

func NewGoogleClient(apiKey string) (*GoogleClient, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"error":  err,
		}).Error("new map client")

		return nil, err
	}

	return &GoogleClient{
		client: client,
	}, nil
}

func (g *GoogleClient) Geocode(ctx context.Context, address string) (*Place, error) {
	results, err := g.client.Geocode(ctx, &maps.GeocodingRequest{
		Address:  address,
		Language: "en",
	})
	if err != nil {
		return nil, err
	}

	if len(results) == 0 {
		return nil, ErrAddressNotFound
	}

	r := results[0]
	place := &Place{
		Lat:              r.Geometry.Location.Lat,
		Lng:              r.Geometry.Location.Lng,
		FormattedAddress: r.FormattedAddress,
	}

	for _, a := range r.AddressComponents {
		if len(a.Types) == 0 {
			continue
		}
		switch a.Types[0] {
		case "locality":
			place.City = a.LongName
		case "administrative_area_level_1":
			place.State = a.LongName
		case "postal_code":
			place.ZipCode = a.LongName
		}
	}

	return place, nil
}
