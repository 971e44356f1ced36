package background

import (
	"github.com/fruitshare/fruitshare-api/schema"
)

// NotifyRequestCreated is a background job to tell a listing owner that
// someone wants to pick up their fruit
func (m *BackgroundManager) NotifyRequestCreated(requestID string) error {
	req, listing, err := m.store.GetRequest(requestID)
	if err != nil {
		return err
	}

	requester, err := m.store.GetAccount(req.RequesterID)
	if err != nil {
		return err
	}

	name := requester.DisplayName
	if name == "" {
		name = "A neighbor"
	}

	return m.notifyUser(listing.UserID, "notification.request_created",
		map[string]interface{}{
			"Requester": name,
			"FruitType": listing.FruitType,
		},
		map[string]interface{}{
			"notification_type": "REQUEST_CREATED",
			"request_id":        req.ID.String(),
			"listing_id":        listing.ID.String(),
		})
}

// NotifyRequestDecided is a background job to tell a requester that the
// owner accepted or declined their pickup request
func (m *BackgroundManager) NotifyRequestDecided(requestID string, status string) error {
	req, listing, err := m.store.GetRequest(requestID)
	if err != nil {
		return err
	}

	owner, err := m.store.GetAccount(listing.UserID)
	if err != nil {
		return err
	}

	name := owner.DisplayName
	if name == "" {
		name = "The owner"
	}

	messageID := "notification.request_declined"
	if schema.RequestStatus(status) == schema.RequestAccepted {
		messageID = "notification.request_accepted"
	}

	return m.notifyUser(req.RequesterID, messageID,
		map[string]interface{}{
			"Owner":     name,
			"FruitType": listing.FruitType,
		},
		map[string]interface{}{
			"notification_type": "REQUEST_DECIDED",
			"request_id":        req.ID.String(),
			"listing_id":        listing.ID.String(),
			"status":            status,
		})
}
