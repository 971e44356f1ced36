package schema

import (
	"time"

	"github.com/google/uuid"
)

type ListingStatus string

const (
	ListingActive    ListingStatus = "active"
	ListingPending   ListingStatus = "pending"
	ListingCompleted ListingStatus = "completed"
	ListingCancelled ListingStatus = "cancelled"
)

// Listing is a public advertisement of available fruit. The full address
// is private: the approximate coordinates are derived from it once at
// creation time and are the only location ever shown to the public.
type Listing struct {
	ID             uuid.UUID     `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	UserID         string        `json:"user_id"`
	FruitType      string        `json:"fruit_type"`
	Quantity       string        `json:"quantity"`
	Description    string        `json:"description"`
	FullAddress    string        `json:"full_address"`
	City           string        `json:"city"`
	State          string        `json:"state"`
	ZipCode        string        `json:"zip_code"`
	ApproximateLat float64       `json:"approximate_lat"`
	ApproximateLng float64       `json:"approximate_lng"`
	AvailableStart time.Time     `json:"available_start"`
	AvailableEnd   time.Time     `json:"available_end"`
	ExpirationDate *time.Time    `json:"expiration_date"`
	PickupNotes    string        `json:"pickup_notes"`
	Status         ListingStatus `json:"status" sql:"default:'active'"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// PublicListing is the projection of a listing without its full address.
type PublicListing struct {
	ID             uuid.UUID     `json:"id"`
	UserID         string        `json:"user_id"`
	FruitType      string        `json:"fruit_type"`
	Quantity       string        `json:"quantity"`
	Description    string        `json:"description"`
	City           string        `json:"city"`
	State          string        `json:"state"`
	ZipCode        string        `json:"zip_code"`
	ApproximateLat float64       `json:"approximate_lat"`
	ApproximateLng float64       `json:"approximate_lng"`
	AvailableStart time.Time     `json:"available_start"`
	AvailableEnd   time.Time     `json:"available_end"`
	ExpirationDate *time.Time    `json:"expiration_date"`
	PickupNotes    string        `json:"pickup_notes"`
	Status         ListingStatus `json:"status"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// Public strips the full address from a listing.
func (l Listing) Public() PublicListing {
	return PublicListing{
		ID:             l.ID,
		UserID:         l.UserID,
		FruitType:      l.FruitType,
		Quantity:       l.Quantity,
		Description:    l.Description,
		City:           l.City,
		State:          l.State,
		ZipCode:        l.ZipCode,
		ApproximateLat: l.ApproximateLat,
		ApproximateLng: l.ApproximateLng,
		AvailableStart: l.AvailableStart,
		AvailableEnd:   l.AvailableEnd,
		ExpirationDate: l.ExpirationDate,
		PickupNotes:    l.PickupNotes,
		Status:         l.Status,
		CreatedAt:      l.CreatedAt,
		UpdatedAt:      l.UpdatedAt,
	}
}

// CanSeeExactAddress reports whether a viewer may read the full address
// of a listing. The owner always may. Anyone else needs an accepted
// pickup request against the listing. Every read path that returns a
// listing, embedded or not, must go through this check.
func CanSeeExactAddress(viewerID string, listing Listing, hasAcceptedRequest bool) bool {
	if viewerID == "" {
		return false
	}

	if viewerID == listing.UserID {
		return true
	}

	return hasAcceptedRequest
}
