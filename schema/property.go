package schema

import (
	"time"

	"github.com/google/uuid"
)

// Property is a user's verified home location. It is the source of truth
// for the exact address of every listing the user creates. A user has at
// most one property, enforced by the unique index on user_id.
type Property struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	UserID     string    `json:"user_id" gorm:"unique_index"`
	Address    string    `json:"address"`
	Lat        float64   `json:"lat"`
	Lng        float64   `json:"lng"`
	IsVerified bool      `json:"is_verified"`
	DetectedAt time.Time `json:"detected_at"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
