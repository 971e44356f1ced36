package schema

import (
	"time"
)

type User struct {
	ID              string    `json:"id" gorm:"primary_key"`
	Email           string    `json:"email"`
	DisplayName     string    `json:"display_name"`
	ThumbsUpCount   int64     `json:"thumbs_up_count"`
	ThumbsDownCount int64     `json:"thumbs_down_count"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// PositivityRatio returns the percentage of thumbs-up ratings over all
// ratings the user has accrued. A user without ratings has a ratio of 0.
func (u User) PositivityRatio() int {
	total := u.ThumbsUpCount + u.ThumbsDownCount
	if total == 0 {
		return 0
	}

	return int(float64(u.ThumbsUpCount) / float64(total) * 100)
}
