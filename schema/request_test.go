package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionTo(t *testing.T) {
	cases := []struct {
		from    RequestStatus
		to      RequestStatus
		allowed bool
	}{
		{RequestPending, RequestAccepted, true},
		{RequestPending, RequestDeclined, true},
		{RequestPending, RequestCancelled, true},
		{RequestPending, RequestCompleted, false},
		{RequestPending, RequestPending, false},

		{RequestAccepted, RequestCompleted, true},
		{RequestAccepted, RequestCancelled, true},
		{RequestAccepted, RequestDeclined, false},
		{RequestAccepted, RequestPending, false},

		{RequestDeclined, RequestAccepted, false},
		{RequestDeclined, RequestPending, false},
		{RequestCompleted, RequestCancelled, false},
		{RequestCancelled, RequestAccepted, false},
		{RequestCancelled, RequestPending, false},
	}

	for _, c := range cases {
		assert.Equal(t, c.allowed, c.from.CanTransitionTo(c.to),
			"transition %s -> %s", c.from, c.to)
	}
}

func TestTransitionAllowedByActor(t *testing.T) {
	req := PickupRequest{RequesterID: "requester"}
	listing := Listing{UserID: "owner"}

	cases := []struct {
		actor   string
		target  RequestStatus
		allowed bool
	}{
		{"owner", RequestAccepted, true},
		{"requester", RequestAccepted, false},
		{"owner", RequestDeclined, true},
		{"requester", RequestDeclined, false},
		{"requester", RequestCancelled, true},
		{"owner", RequestCancelled, false},
		{"owner", RequestCompleted, true},
		{"requester", RequestCompleted, true},
		{"owner", RequestPending, false},
	}

	for _, c := range cases {
		assert.Equal(t, c.allowed, TransitionAllowed(req, listing, c.actor, c.target),
			"actor %s target %s", c.actor, c.target)
	}
}

func TestIsParty(t *testing.T) {
	req := PickupRequest{RequesterID: "requester"}
	listing := Listing{UserID: "owner"}

	assert.True(t, IsParty("owner", req, listing))
	assert.True(t, IsParty("requester", req, listing))
	assert.False(t, IsParty("stranger", req, listing))
	assert.False(t, IsParty("", req, listing))

	assert.True(t, CanAccessThread("owner", req, listing))
	assert.False(t, CanAccessThread("stranger", req, listing))
}

func TestCompletionValid(t *testing.T) {
	assert.True(t, Completion{PickedUpQuantity: "2 bags", Rating: RatingThumbsUp}.Valid())
	assert.True(t, Completion{PickedUpQuantity: "all of it", Rating: RatingThumbsDown}.Valid())

	assert.False(t, Completion{PickedUpQuantity: "", Rating: RatingThumbsUp}.Valid())
	assert.False(t, Completion{PickedUpQuantity: "   ", Rating: RatingThumbsUp}.Valid())
	assert.False(t, Completion{PickedUpQuantity: "2 bags", Rating: ""}.Valid())
	assert.False(t, Completion{PickedUpQuantity: "2 bags", Rating: "five stars"}.Valid())
}
