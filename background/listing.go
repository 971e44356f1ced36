package background

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
)

// PredictListingExpiration is a background job to estimate when a fresh
// listing will spoil and record the date on the listing. Prediction is
// advisory, so a failure only logs.
func (m *BackgroundManager) PredictListingExpiration(listingID string) error {
	listing, err := m.store.GetListing(listingID)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	expiration, err := m.freshness.PredictExpiration(ctx, listing.FruitType, listing.AvailableStart)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix":     "background",
			"listing_id": listingID,
			"error":      err,
		}).Warn("freshness prediction unavailable")
		return nil
	}

	return m.store.SetListingExpiration(listingID, expiration)
}

// ExpireListings is a background job to close out listings whose
// availability window has passed
func (m *BackgroundManager) ExpireListings() error {
	count, err := m.store.ExpireListings()
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"prefix": "background",
		"count":  count,
	}).Info("expired listings")

	return nil
}
