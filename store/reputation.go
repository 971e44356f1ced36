package store

import (
	"fmt"

	"github.com/jinzhu/gorm"

	"github.com/fruitshare/fruitshare-api/schema"
)

var ErrInvalidRating = fmt.Errorf("invalid rating")

// RecordRating increments exactly one of the user's two reputation
// counters. The increment happens in SQL so concurrent completions for
// the same owner never lose an update.
func (s *FruitShareStore) RecordRating(userID string, rating schema.Rating) error {
	return recordRating(s.ormDB, userID, rating)
}

func recordRating(db *gorm.DB, userID string, rating schema.Rating) error {
	var column string
	switch rating {
	case schema.RatingThumbsUp:
		column = "thumbs_up_count"
	case schema.RatingThumbsDown:
		column = "thumbs_down_count"
	default:
		return ErrInvalidRating
	}

	result := db.Model(schema.User{}).
		Where("id = ?", userID).
		Update(column, gorm.Expr(column+" + 1"))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}

	return nil
}
