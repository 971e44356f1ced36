package freshness

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"time"
)

var (
	errEmptyEndpoint  = fmt.Errorf("empty freshness endpoint")
	errResponseStatus = fmt.Errorf("freshness service response not ok")
)

// Predictor estimates when a batch of fruit will spoil
type Predictor interface {
	PredictExpiration(ctx context.Context, fruitType string, availableStart time.Time) (time.Time, error)
}

type predictor struct {
	endpoint string
	token    string
	client   *http.Client
}

type predictRequest struct {
	FruitType      string `json:"fruit_type"`
	AvailableStart string `json:"available_start"`
}

type predictResponse struct {
	Status         string `json:"status"`
	ExpirationDate string `json:"expiration_date"`
}

func (p predictor) PredictExpiration(ctx context.Context, fruitType string, availableStart time.Time) (time.Time, error) {
	if p.endpoint == "" {
		return time.Time{}, errEmptyEndpoint
	}

	body, err := json.Marshal(predictRequest{
		FruitType:      fruitType,
		AvailableStart: availableStart.Format("2006-01-02"),
	})
	if err != nil {
		return time.Time{}, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", p.endpoint+"/predict", bytes.NewReader(body))
	if err != nil {
		return time.Time{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.token)

	resp, err := p.client.Do(req)
	if err != nil {
		return time.Time{}, err
	}
	defer resp.Body.Close()

	d, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return time.Time{}, err
	}

	var r predictResponse
	if err := json.Unmarshal(d, &r); err != nil {
		return time.Time{}, err
	}

	if r.Status != "ok" {
		return time.Time{}, errResponseStatus
	}

	return time.Parse("2006-01-02", r.ExpirationDate)
}

func New(endpoint, token string, client *http.Client) Predictor {
	return &predictor{
		endpoint: endpoint,
		token:    token,
		client:   client,
	}
}
