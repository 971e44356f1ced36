package schema

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type RequestStatus string

const (
	RequestPending   RequestStatus = "pending"
	RequestAccepted  RequestStatus = "accepted"
	RequestDeclined  RequestStatus = "declined"
	RequestCompleted RequestStatus = "completed"
	RequestCancelled RequestStatus = "cancelled"
)

type Rating string

const (
	RatingThumbsUp   Rating = "thumbs_up"
	RatingThumbsDown Rating = "thumbs_down"
)

func (r Rating) Valid() bool {
	return r == RatingThumbsUp || r == RatingThumbsDown
}

// PickupRequest is a claim by one user against another's listing. It
// gates exact-address disclosure and chat access. A requester makes at
// most one request per listing, enforced by the composite unique index.
type PickupRequest struct {
	ID               uuid.UUID     `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	ListingID        uuid.UUID     `json:"listing_id" gorm:"type:uuid;unique_index:idx_listing_requester"`
	RequesterID      string        `json:"requester_id" gorm:"unique_index:idx_listing_requester"`
	Message          string        `json:"message"`
	Status           RequestStatus `json:"status" sql:"default:'pending'"`
	Rating           *Rating       `json:"rating"`
	PickedUpQuantity *string       `json:"picked_up_quantity"`
	CompletedAt      *time.Time    `json:"completed_at"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

// Completion carries the fields that must accompany the transition to
// the completed state.
type Completion struct {
	PickedUpQuantity string `json:"picked_up_quantity"`
	Rating           Rating `json:"rating"`
}

func (c Completion) Valid() bool {
	return strings.TrimSpace(c.PickedUpQuantity) != "" && c.Rating.Valid()
}

// CanTransitionTo reports whether the lifecycle permits moving from s to
// target. Declined, completed and cancelled are terminal.
func (s RequestStatus) CanTransitionTo(target RequestStatus) bool {
	switch s {
	case RequestPending:
		return target == RequestAccepted || target == RequestDeclined || target == RequestCancelled
	case RequestAccepted:
		return target == RequestCompleted || target == RequestCancelled
	default:
		return false
	}
}

// TransitionAllowed reports whether the acting user may move the request
// to the target state. Accept and decline belong to the listing owner,
// cancellation to the requester, completion to either party.
func TransitionAllowed(req PickupRequest, listing Listing, actorID string, target RequestStatus) bool {
	switch target {
	case RequestAccepted, RequestDeclined:
		return actorID == listing.UserID
	case RequestCancelled:
		return actorID == req.RequesterID
	case RequestCompleted:
		return actorID == req.RequesterID || actorID == listing.UserID
	default:
		return false
	}
}

// IsParty reports whether a user is one of the two parties of a request.
func IsParty(viewerID string, req PickupRequest, listing Listing) bool {
	return viewerID != "" && (viewerID == req.RequesterID || viewerID == listing.UserID)
}

// CanAccessThread guards both reading and writing the chat thread of a
// request. It is the same predicate for both directions.
func CanAccessThread(viewerID string, req PickupRequest, listing Listing) bool {
	return IsParty(viewerID, req, listing)
}
