package schema

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestPublicProjectionDropsFullAddress(t *testing.T) {
	listing := Listing{
		ID:          uuid.New(),
		UserID:      "owner",
		FruitType:   "lemon",
		FullAddress: "123 Orchard Lane, Santa Rosa, CA 95401",
		City:        "Santa Rosa",
		State:       "CA",
	}

	public := listing.Public()

	data, err := json.Marshal(public)
	assert.NoError(t, err)

	var fields map[string]interface{}
	assert.NoError(t, json.Unmarshal(data, &fields))

	_, present := fields["full_address"]
	assert.False(t, present, "full_address must not appear in the public projection")
	assert.Equal(t, "Santa Rosa", fields["city"])
	assert.Equal(t, "lemon", fields["fruit_type"])
}

func TestCanSeeExactAddress(t *testing.T) {
	listing := Listing{UserID: "owner"}

	assert.True(t, CanSeeExactAddress("owner", listing, false))
	assert.True(t, CanSeeExactAddress("requester", listing, true))
	assert.False(t, CanSeeExactAddress("requester", listing, false))
	assert.False(t, CanSeeExactAddress("", listing, false))
	assert.False(t, CanSeeExactAddress("", listing, true))
}
