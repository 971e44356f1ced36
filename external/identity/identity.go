package identity

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
)

var (
	ErrInvalidAssertion = fmt.Errorf("identity assertion rejected")
	errEmptyEndpoint    = fmt.Errorf("empty identity endpoint")
)

// Identity is the profile the provider vouches for
type Identity struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
}

// Provider verifies that a signed timestamp assertion belongs to the
// claimed user. The verification itself lives in an external identity
// service.
type Provider interface {
	Verify(ctx context.Context, userID, timestamp string, signature []byte) (*Identity, error)
}

type provider struct {
	endpoint string
	client   *http.Client
}

type verifyRequest struct {
	UserID    string `json:"user_id"`
	Timestamp string `json:"timestamp"`
	Signature string `json:"signature"`
}

type verifyResponse struct {
	Status   string   `json:"status"`
	Identity Identity `json:"identity"`
}

func (p provider) Verify(ctx context.Context, userID, timestamp string, signature []byte) (*Identity, error) {
	if p.endpoint == "" {
		return nil, errEmptyEndpoint
	}

	body, err := json.Marshal(verifyRequest{
		UserID:    userID,
		Timestamp: timestamp,
		Signature: hex.EncodeToString(signature),
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", p.endpoint+"/verify", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, ErrInvalidAssertion
	}

	d, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var r verifyResponse
	if err := json.Unmarshal(d, &r); err != nil {
		return nil, err
	}

	if r.Status != "ok" {
		return nil, ErrInvalidAssertion
	}

	return &r.Identity, nil
}

func New(endpoint string, client *http.Client) Provider {
	return &provider{
		endpoint: endpoint,
		client:   client,
	}
}
