package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPositivityRatio(t *testing.T) {
	assert.Equal(t, 0, User{}.PositivityRatio())
	assert.Equal(t, 100, User{ThumbsUpCount: 7}.PositivityRatio())
	assert.Equal(t, 0, User{ThumbsDownCount: 3}.PositivityRatio())
	assert.Equal(t, 75, User{ThumbsUpCount: 3, ThumbsDownCount: 1}.PositivityRatio())
	assert.Equal(t, 66, User{ThumbsUpCount: 2, ThumbsDownCount: 1}.PositivityRatio())
}
