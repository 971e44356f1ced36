package store

import (
	"time"

	"github.com/jinzhu/gorm"

	"github.com/fruitshare/fruitshare-api/schema"
)

// ListingParams carries everything needed to persist a new listing. The
// approximate coordinates must already be fuzzed by the caller.
type ListingParams struct {
	OwnerID        string
	FruitType      string
	Quantity       string
	Description    string
	FullAddress    string
	City           string
	State          string
	ZipCode        string
	ApproximateLat float64
	ApproximateLng float64
	AvailableStart time.Time
	AvailableEnd   time.Time
	PickupNotes    string
}

// RequestDetail bundles a pickup request with its listing and requester
// for list views. The API layer is responsible for projecting the
// listing before returning it.
type RequestDetail struct {
	Request   schema.PickupRequest
	Listing   schema.Listing
	Requester schema.User
}

// fruitshare main datastore
type FruitShareCore interface {
	Ping() error

	// Account
	CreateAccount(id, email, displayName string) (*schema.User, error)
	GetAccount(id string) (*schema.User, error)
	DeleteAccount(id string) error

	// Property
	UpsertProperty(userID, address string, lat, lng float64, live schema.Location) (*schema.Property, error)
	GetProperty(userID string) (*schema.Property, error)
	DeleteProperty(userID string) error

	// Listing
	CreateListing(params ListingParams) (*schema.Listing, error)
	GetListing(id string) (*schema.Listing, error)
	ListActiveListings(fruitType string) ([]schema.Listing, error)
	ListListingsByIDs(ids []string) ([]schema.Listing, error)
	UpdateListingStatus(ownerID, listingID string, status schema.ListingStatus) error
	SetListingExpiration(listingID string, expiration time.Time) error
	ExpireListings() (int64, error)
	HasAcceptedRequest(listingID, requesterID string) (bool, error)

	// Pickup requests
	CreateRequest(listingID, requesterID, message string) (*schema.PickupRequest, error)
	GetRequest(id string) (*schema.PickupRequest, *schema.Listing, error)
	ListIncomingRequests(ownerID string) ([]RequestDetail, error)
	ListOutgoingRequests(requesterID string) ([]RequestDetail, error)
	ListListingRequests(ownerID, listingID string) ([]RequestDetail, error)
	TransitionRequest(actorID, requestID string, target schema.RequestStatus, completion *schema.Completion) (*schema.PickupRequest, error)

	// Reputation
	RecordRating(userID string, rating schema.Rating) error

	// Messages
	ListMessages(viewerID, requestID string) ([]schema.Message, error)
	AppendMessage(viewerID, requestID, content string) (*schema.Message, error)
}

// FruitShareStore is an implementation of FruitShareCore
type FruitShareStore struct {
	ormDB *gorm.DB
	mongo MongoStore
}

func NewFruitShareStore(ormDB *gorm.DB, mongo MongoStore) *FruitShareStore {
	return &FruitShareStore{
		ormDB: ormDB,
		mongo: mongo,
	}
}

// Ping is to check the storage health status
func (s *FruitShareStore) Ping() error {
	return s.ormDB.DB().Ping()
}
