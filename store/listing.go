package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	"github.com/lib/pq"
	log "github.com/sirupsen/logrus"

	"github.com/fruitshare/fruitshare-api/schema"
)

var (
	ErrListingNotFound  = fmt.Errorf("listing not found")
	ErrListingNotActive = fmt.Errorf("the listing is not active")
	ErrListingNotOwned  = fmt.Errorf("the listing belongs to another user")
)

// CreateListing persists a new active listing and registers its fuzzed
// position in the geo index. A failure to index the point is logged but
// does not fail the creation since the relational row is authoritative.
func (s *FruitShareStore) CreateListing(params ListingParams) (*schema.Listing, error) {
	l := schema.Listing{
		ID:             uuid.New(),
		UserID:         params.OwnerID,
		FruitType:      params.FruitType,
		Quantity:       params.Quantity,
		Description:    params.Description,
		FullAddress:    params.FullAddress,
		City:           params.City,
		State:          params.State,
		ZipCode:        params.ZipCode,
		ApproximateLat: params.ApproximateLat,
		ApproximateLng: params.ApproximateLng,
		AvailableStart: params.AvailableStart,
		AvailableEnd:   params.AvailableEnd,
		PickupNotes:    params.PickupNotes,
		Status:         schema.ListingActive,
	}

	if err := s.ormDB.Create(&l).Error; err != nil {
		return nil, err
	}

	if err := s.mongo.AddListingPoint(l.ID.String(), schema.Location{
		Latitude:  l.ApproximateLat,
		Longitude: l.ApproximateLng,
	}, l.FruitType); err != nil {
		log.WithField("prefix", "store").WithError(err).Error("index listing point")
	}

	return &l, nil
}

// GetListing returns a listing by id
func (s *FruitShareStore) GetListing(id string) (*schema.Listing, error) {
	var l schema.Listing
	if err := s.ormDB.Where("id = ?", id).First(&l).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	return &l, nil
}

// ListActiveListings returns active listings, newest first, optionally
// filtered by fruit type.
func (s *FruitShareStore) ListActiveListings(fruitType string) ([]schema.Listing, error) {
	listings := []schema.Listing{}

	query := s.ormDB.Where("status = ?", schema.ListingActive)
	if fruitType != "" && fruitType != "all" {
		query = query.Where("fruit_type = ?", fruitType)
	}

	if err := query.Order("created_at desc").Find(&listings).Error; err != nil {
		return nil, err
	}

	return listings, nil
}

// ListListingsByIDs returns active listings in the order of the given
// ids. The order matters: the geo index returns ids sorted from nearest
// to farthest.
func (s *FruitShareStore) ListListingsByIDs(ids []string) ([]schema.Listing, error) {
	listings := []schema.Listing{}

	if len(ids) == 0 {
		return listings, nil
	}

	if err := s.ormDB.Raw(
		`SELECT listings.* FROM listings
		JOIN unnest(?::uuid[]) WITH ORDINALITY wanted(id, index) USING (id)
		WHERE status = ?
		ORDER BY wanted.index;`,
		pq.Array(ids),
		schema.ListingActive,
	).Scan(&listings).Error; err != nil {
		return nil, err
	}

	return listings, nil
}

// UpdateListingStatus lets the owner close out an active listing. Only
// active listings move, and only to completed or cancelled.
func (s *FruitShareStore) UpdateListingStatus(ownerID, listingID string, status schema.ListingStatus) error {
	if status != schema.ListingCompleted && status != schema.ListingCancelled {
		return ErrListingNotActive
	}

	listing, err := s.GetListing(listingID)
	if err != nil {
		return err
	}

	if listing.UserID != ownerID {
		return ErrListingNotOwned
	}

	result := s.ormDB.Model(schema.Listing{}).
		Where("id = ? AND status = ?", listingID, schema.ListingActive).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrListingNotActive
	}

	if err := s.mongo.RemoveListingPoint(listingID); err != nil {
		log.WithField("prefix", "store").WithError(err).Error("remove listing point")
	}

	return nil
}

// SetListingExpiration stores the predicted expiration date of a listing
func (s *FruitShareStore) SetListingExpiration(listingID string, expiration time.Time) error {
	return s.ormDB.Model(schema.Listing{}).
		Where("id = ?", listingID).
		Update("expiration_date", expiration).Error
}

// ExpireListings closes active listings whose availability window has
// passed. It returns how many listings were closed.
func (s *FruitShareStore) ExpireListings() (int64, error) {
	result := s.ormDB.Model(schema.Listing{}).
		Where("status = ? AND available_end < now()", schema.ListingActive).
		Update("status", schema.ListingCompleted)

	return result.RowsAffected, result.Error
}

// HasAcceptedRequest reports whether a requester holds an accepted
// pickup request against a listing. This is the only channel through
// which a non-owner gains exact-address visibility.
func (s *FruitShareStore) HasAcceptedRequest(listingID, requesterID string) (bool, error) {
	var count int
	if err := s.ormDB.Model(schema.PickupRequest{}).
		Where("listing_id = ? AND requester_id = ? AND status = ?", listingID, requesterID, schema.RequestAccepted).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}
