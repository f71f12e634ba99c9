package responseurl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"wskproxy/clients"
	"wskproxy/models"
)

// Client posts relay messages to chat platform response urls. No credentials are sent;
// the url itself is the capability.
type Client struct {
	httpClient *http.Client
}

func NewClient(httpClient *http.Client) *Client {
	return &Client{httpClient: httpClient}
}

func (c *Client) Post(ctx context.Context, responseURL string, message models.RelayMessage) error {
	var payload bytes.Buffer
	encoder := json.NewEncoder(&payload)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(message); err != nil {
		return fmt.Errorf("failed to encode relay message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, responseURL, &payload)
	if err != nil {
		return fmt.Errorf("failed to build response url request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to post to response url: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return &models.RelayStatusError{
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	return nil
}

var _ clients.ResponseURLClient = (*Client)(nil)
