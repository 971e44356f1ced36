package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	"github.com/lib/pq"

	"github.com/fruitshare/fruitshare-api/schema"
)

var (
	ErrRequestNotFound      = fmt.Errorf("pickup request not found")
	ErrDuplicateRequest     = fmt.Errorf("you already have a request for this listing")
	ErrSelfRequest          = fmt.Errorf("you cannot request your own listing")
	ErrInvalidTransition    = fmt.Errorf("the request does not allow this transition")
	ErrTransitionForbidden  = fmt.Errorf("you are not allowed to perform this transition")
	ErrIncompleteCompletion = fmt.Errorf("completing a pickup requires a rating and the picked up quantity")
)

// CreateRequest makes a pending pickup request against an active
// listing. Duplicates are rejected by the unique constraint on
// (listing_id, requester_id), not by a racy pre-read.
func (s *FruitShareStore) CreateRequest(listingID, requesterID, message string) (*schema.PickupRequest, error) {
	listing, err := s.GetListing(listingID)
	if err != nil {
		return nil, err
	}

	if listing.Status != schema.ListingActive {
		return nil, ErrListingNotActive
	}

	if listing.UserID == requesterID {
		return nil, ErrSelfRequest
	}

	req := schema.PickupRequest{
		ID:          uuid.New(),
		ListingID:   listing.ID,
		RequesterID: requesterID,
		Message:     message,
		Status:      schema.RequestPending,
	}

	if err := s.ormDB.Create(&req).Error; err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return nil, ErrDuplicateRequest
		}
		return nil, err
	}

	return &req, nil
}

// GetRequest returns a pickup request along with its listing
func (s *FruitShareStore) GetRequest(id string) (*schema.PickupRequest, *schema.Listing, error) {
	var req schema.PickupRequest
	if err := s.ormDB.Where("id = ?", id).First(&req).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, nil, ErrRequestNotFound
		}
		return nil, nil, err
	}

	listing, err := s.GetListing(req.ListingID.String())
	if err != nil {
		return nil, nil, err
	}

	return &req, listing, nil
}

// TransitionRequest moves a pickup request through its lifecycle on
// behalf of an actor. The row is locked for the duration of the
// transaction and the update is conditional on the status the decision
// was made against, so a rejected transition never touches stored state
// and a completed request accrues reputation exactly once.
func (s *FruitShareStore) TransitionRequest(actorID, requestID string, target schema.RequestStatus, completion *schema.Completion) (*schema.PickupRequest, error) {
	tx := s.ormDB.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	var req schema.PickupRequest
	if err := tx.Set("gorm:query_option", "FOR UPDATE").
		Where("id = ?", requestID).First(&req).Error; err != nil {
		tx.Rollback()
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}

	var listing schema.Listing
	if err := tx.Where("id = ?", req.ListingID).First(&listing).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if !schema.IsParty(actorID, req, listing) {
		tx.Rollback()
		return nil, ErrTransitionForbidden
	}

	if !req.Status.CanTransitionTo(target) {
		tx.Rollback()
		return nil, ErrInvalidTransition
	}

	if !schema.TransitionAllowed(req, listing, actorID, target) {
		tx.Rollback()
		return nil, ErrTransitionForbidden
	}

	updates := map[string]interface{}{
		"status": target,
	}

	if target == schema.RequestCompleted {
		if completion == nil || !completion.Valid() {
			tx.Rollback()
			return nil, ErrIncompleteCompletion
		}

		now := time.Now().UTC()
		updates["rating"] = completion.Rating
		updates["picked_up_quantity"] = completion.PickedUpQuantity
		updates["completed_at"] = now
	}

	result := tx.Model(schema.PickupRequest{}).
		Where("id = ? AND status = ?", req.ID, req.Status).
		Updates(updates)
	if result.Error != nil {
		tx.Rollback()
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		tx.Rollback()
		return nil, ErrInvalidTransition
	}

	if target == schema.RequestCompleted {
		// the listing owner's counters accrue the rating
		if err := recordRating(tx, listing.UserID, completion.Rating); err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	updated, _, err := s.GetRequest(requestID)
	return updated, err
}

// ListIncomingRequests returns the requests made against the owner's
// listings, newest first.
func (s *FruitShareStore) ListIncomingRequests(ownerID string) ([]RequestDetail, error) {
	requests := []schema.PickupRequest{}
	if err := s.ormDB.
		Joins("JOIN listings ON listings.id = pickup_requests.listing_id").
		Where("listings.user_id = ?", ownerID).
		Order("pickup_requests.created_at desc").
		Find(&requests).Error; err != nil {
		return nil, err
	}

	return s.attachDetails(requests)
}

// ListOutgoingRequests returns the requests the user has made, newest
// first.
func (s *FruitShareStore) ListOutgoingRequests(requesterID string) ([]RequestDetail, error) {
	requests := []schema.PickupRequest{}
	if err := s.ormDB.
		Where("requester_id = ?", requesterID).
		Order("created_at desc").
		Find(&requests).Error; err != nil {
		return nil, err
	}

	return s.attachDetails(requests)
}

// ListListingRequests returns all requests for one of the owner's
// listings, newest first.
func (s *FruitShareStore) ListListingRequests(ownerID, listingID string) ([]RequestDetail, error) {
	listing, err := s.GetListing(listingID)
	if err != nil {
		return nil, err
	}

	if listing.UserID != ownerID {
		return nil, ErrListingNotOwned
	}

	requests := []schema.PickupRequest{}
	if err := s.ormDB.
		Where("listing_id = ?", listingID).
		Order("created_at desc").
		Find(&requests).Error; err != nil {
		return nil, err
	}

	return s.attachDetails(requests)
}

func (s *FruitShareStore) attachDetails(requests []schema.PickupRequest) ([]RequestDetail, error) {
	details := make([]RequestDetail, 0, len(requests))
	if len(requests) == 0 {
		return details, nil
	}

	listingIDs := make([]uuid.UUID, 0, len(requests))
	requesterIDs := make([]string, 0, len(requests))
	for _, r := range requests {
		listingIDs = append(listingIDs, r.ListingID)
		requesterIDs = append(requesterIDs, r.RequesterID)
	}

	listings := []schema.Listing{}
	if err := s.ormDB.Where("id IN (?)", listingIDs).Find(&listings).Error; err != nil {
		return nil, err
	}
	listingByID := map[uuid.UUID]schema.Listing{}
	for _, l := range listings {
		listingByID[l.ID] = l
	}

	users := []schema.User{}
	if err := s.ormDB.Where("id IN (?)", requesterIDs).Find(&users).Error; err != nil {
		return nil, err
	}
	userByID := map[string]schema.User{}
	for _, u := range users {
		userByID[u.ID] = u
	}

	for _, r := range requests {
		details = append(details, RequestDetail{
			Request:   r,
			Listing:   listingByID[r.ListingID],
			Requester: userByID[r.RequesterID],
		})
	}

	return details, nil
}
