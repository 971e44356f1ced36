package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/fruitshare/fruitshare-api/schema"
)

var (
	ErrThreadForbidden = fmt.Errorf("only the requester and the listing owner may access this thread")
	ErrEmptyMessage    = fmt.Errorf("message content is required")
)

// ListMessages returns the chat thread of a pickup request in ascending
// creation order. Only the two parties of the request may read it. The
// counterparty's unread messages are marked read on the way out.
func (s *FruitShareStore) ListMessages(viewerID, requestID string) ([]schema.Message, error) {
	req, listing, err := s.GetRequest(requestID)
	if err != nil {
		return nil, err
	}

	if !schema.CanAccessThread(viewerID, *req, *listing) {
		return nil, ErrThreadForbidden
	}

	messages := []schema.Message{}
	if err := s.ormDB.
		Where("pickup_request_id = ?", req.ID).
		Order("created_at asc").
		Find(&messages).Error; err != nil {
		return nil, err
	}

	if err := s.ormDB.Model(schema.Message{}).
		Where("pickup_request_id = ? AND sender_id <> ? AND read_at IS NULL", req.ID, viewerID).
		Update("read_at", time.Now().UTC()).Error; err != nil {
		log.WithField("prefix", "store").WithError(err).Error("mark messages read")
	}

	return messages, nil
}

// AppendMessage adds a message to the thread of a pickup request. The
// write side uses the same access predicate as the read side.
func (s *FruitShareStore) AppendMessage(viewerID, requestID, content string) (*schema.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyMessage
	}

	req, listing, err := s.GetRequest(requestID)
	if err != nil {
		return nil, err
	}

	if !schema.CanAccessThread(viewerID, *req, *listing) {
		return nil, ErrThreadForbidden
	}

	m := schema.Message{
		ID:              uuid.New(),
		PickupRequestID: req.ID,
		SenderID:        viewerID,
		Content:         content,
	}

	if err := s.ormDB.Create(&m).Error; err != nil {
		return nil, err
	}

	return &m, nil
}
