package geocoding

import (
	"context"
	"fmt"
	"strings"
)

type MultiGeocoderErrors struct {
	errors []error
}

func (e *MultiGeocoderErrors) Error() string {
	errorStrings := make([]string, len(e.errors))
	for i, err := range e.errors {
		errorStrings[i] = fmt.Sprintf("#%d: %s", i, err.Error())
	}
	return strings.Join(errorStrings, "\n")
}

func NewMultiGeocoderErrors(errors []error) *MultiGeocoderErrors {
	return &MultiGeocoderErrors{
		errors: errors,
	}
}

// MultiGeocoder tries each geocoder in order and returns the first
// successful result.
type MultiGeocoder struct {
	geocoders []Geocoder
}

func NewMultiGeocoder(geocoders ...Geocoder) *MultiGeocoder {
	return &MultiGeocoder{
		geocoders: geocoders,
	}
}

func (m *MultiGeocoder) Geocode(ctx context.Context, address string) (*Place, error) {
	var errors []error
	for _, g := range m.geocoders {
		place, err := g.Geocode(ctx, address)
		if err != nil {
			errors = append(errors, err)
		} else {
			return place, nil
		}
	}

	return nil, NewMultiGeocoderErrors(errors)
}
