// Package upstream fetches the dealership's inventory from the AutoTrader
// listing API.
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"motorhub/pkg/models"
)

// Client issues authenticated GETs against the listing API. The response is
// either a bare JSON array of listings or an object wrapping the array under
// "listings" or "vehicles", depending on the feed version.
type Client struct {
	URL      string
	Username string
	Password string
	HTTP     *http.Client
}

func NewClient(url, username, password string) *Client {
	return &Client{
		URL:      url,
		Username: username,
		Password: password,
		HTTP:     &http.Client{Timeout: 10 * time.Second},
	}
}

// FetchListings performs one GET and normalizes the response shape into a
// plain list of raw listings. Any transport error, non-200 status or
// unexpected body shape is returned as an error, never a panic.
func (c *Client) FetchListings(ctx context.Context) ([]models.RawListing, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("autotrader: build request: %w", err)
	}
	req.SetBasicAuth(c.Username, c.Password)
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("autotrader: request: %w", err)
	}

	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("autotrader: status %d: %s", resp.StatusCode, truncate(body, 300))
	}

	// bare array first
	var items []models.RawListing
	if err := json.Unmarshal(body, &items); err == nil {
		return items, nil
	}

	var wrapper struct {
		Listings []models.RawListing `json:"listings"`
		Vehicles []models.RawListing `json:"vehicles"`
	}
	if err := json.Unmarshal(body, &wrapper); err != nil {
		return nil, fmt.Errorf("autotrader: decode: %w", err)
	}
	if len(wrapper.Listings) > 0 {
		return wrapper.Listings, nil
	}
	if len(wrapper.Vehicles) > 0 {
		return wrapper.Vehicles, nil
	}
	return []models.RawListing{}, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
