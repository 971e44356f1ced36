package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"

	"github.com/fruitshare/fruitshare-api/geo"
	"github.com/fruitshare/fruitshare-api/schema"
)

// MaxPropertyDistanceMeters bounds how far a claimed property may be
// from the live GPS reading at save time.
const MaxPropertyDistanceMeters = 50.0

var ErrPropertyNotFound = fmt.Errorf("property not found")

// ProximityError is returned when a claimed property location is too far
// from the user's live position. The measured distance is reported back
// so the user understands why verification failed.
type ProximityError struct {
	DistanceMeters float64
}

func (e *ProximityError) Error() string {
	return fmt.Sprintf("property is %.0f meters away from your current position (max %.0f)", e.DistanceMeters, MaxPropertyDistanceMeters)
}

// UpsertProperty verifies that the candidate location is physically
// consistent with the live GPS reading and, if so, replaces the caller's
// single property row. The upsert is keyed on user_id so that one
// property per user holds under concurrent setup attempts.
func (s *FruitShareStore) UpsertProperty(userID, address string, lat, lng float64, live schema.Location) (*schema.Property, error) {
	distance := geo.DistanceMeters(lat, lng, live.Latitude, live.Longitude)
	if distance > MaxPropertyDistanceMeters {
		return nil, &ProximityError{DistanceMeters: distance}
	}

	now := time.Now().UTC()
	if err := s.ormDB.Exec(
		`INSERT INTO properties (id, user_id, address, lat, lng, is_verified, detected_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, TRUE, ?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET
			address = EXCLUDED.address,
			lat = EXCLUDED.lat,
			lng = EXCLUDED.lng,
			is_verified = TRUE,
			detected_at = EXCLUDED.detected_at,
			updated_at = EXCLUDED.updated_at;`,
		uuid.New(), userID, address, lat, lng, now, now, now,
	).Error; err != nil {
		return nil, err
	}

	return s.GetProperty(userID)
}

// GetProperty returns the single property of a user
func (s *FruitShareStore) GetProperty(userID string) (*schema.Property, error) {
	var p schema.Property
	if err := s.ormDB.Where("user_id = ?", userID).First(&p).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}
	return &p, nil
}

// DeleteProperty removes the caller's property
func (s *FruitShareStore) DeleteProperty(userID string) error {
	return s.ormDB.Delete(schema.Property{}, "user_id = ?", userID).Error
}
