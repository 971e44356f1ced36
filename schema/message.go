package schema

import (
	"time"

	"github.com/google/uuid"
)

// Message belongs to the chat thread of a pickup request. Messages are
// append-only and ordered by creation time.
type Message struct {
	ID              uuid.UUID  `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	PickupRequestID uuid.UUID  `json:"pickup_request_id" gorm:"type:uuid;index"`
	SenderID        string     `json:"sender_id"`
	Content         string     `json:"content"`
	CreatedAt       time.Time  `json:"created_at"`
	ReadAt          *time.Time `json:"read_at"`
}
