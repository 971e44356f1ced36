package pushcenter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"

	"github.com/spf13/viper"
)

// NotificationRequest is the payload sent to the push gateway. Headings
// and contents are keyed by language code.
type NotificationRequest struct {
	AppID    string                 `json:"app_id"`
	Headings map[string]string      `json:"headings,omitempty"`
	Contents map[string]string      `json:"contents,omitempty"`
	Filters  []map[string]string    `json:"filters,omitempty"`
	Data     map[string]interface{} `json:"data,omitempty"`
}

type Client struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

func NewClient(client *http.Client) *Client {
	return &Client{
		endpoint: viper.GetString("pushcenter.endpoint"),
		apiKey:   viper.GetString("pushcenter.apikey"),
		client:   client,
	}
}

// SendNotification delivers a push payload to the gateway. Delivery is
// best effort; messaging itself stays pull based.
func (c *Client) SendNotification(ctx context.Context, notification *NotificationRequest) error {
	body, err := json.Marshal(notification)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.endpoint+"/notifications", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Basic "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		d, _ := ioutil.ReadAll(resp.Body)
		return fmt.Errorf("push gateway response %d: %s", resp.StatusCode, string(d))
	}

	return nil
}

// UserFilter targets a notification at a single user tag
func UserFilter(userID string) []map[string]string {
	return []map[string]string{
		{
			"field":    "tag",
			"key":      "user_id",
			"relation": "=",
			"value":    userID,
		},
	}
}
