package dragon

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Client talks to the external dragon storage API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the dragon API at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// List fetches all dragons.
func (c *Client) List(ctx context.Context) ([]Dragon, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("dragon API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("dragon API returned status %d", resp.StatusCode)
	}

	var dragons []Dragon
	if err := json.NewDecoder(resp.Body).Decode(&dragons); err != nil {
		return nil, fmt.Errorf("failed to decode dragon list: %w", err)
	}

	return dragons, nil
}

// Get fetches a single dragon by id.
func (c *Client) Get(ctx context.Context, id string) (*Dragon, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+id, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("dragon API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("dragon API returned status %d", resp.StatusCode)
	}

	var d Dragon
	if err := json.NewDecoder(resp.Body).Decode(&d); err != nil {
		return nil, fmt.Errorf("failed to decode dragon: %w", err)
	}

	return &d, nil
}

// Delete removes a dragon by id. Any 2xx response counts as success.
func (c *Client) Delete(ctx context.Context, id string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/"+id, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("dragon API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("dragon API returned status %d", resp.StatusCode)
	}

	return nil
}
