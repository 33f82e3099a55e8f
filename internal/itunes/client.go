// Package itunes wraps the public iTunes catalog endpoints: keyword search
// and bulk lookup by track ID.
package itunes

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultBaseURL = "https://itunes.apple.com"

type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func NewClient() *Client {
	return &Client{
		BaseURL: defaultBaseURL,
		HTTP:    &http.Client{Timeout: 30 * time.Second},
	}
}

type searchResponse struct {
	ResultCount int       `json:"resultCount"`
	Results     []wireApp `json:"results"`
}

// Search queries the catalog for software matching keyword. The country code
// scopes the storefront; limit caps the number of results.
func (c *Client) Search(ctx context.Context, keyword, country string, limit int) ([]App, error) {
	q := url.Values{}
	q.Set("term", keyword)
	q.Set("country", country)
	q.Set("entity", "software")
	q.Set("limit", strconv.Itoa(limit))
	return c.fetch(ctx, c.BaseURL+"/search?"+q.Encode())
}

// Lookup resolves a batch of track IDs to their catalog entries. IDs missing
// from the storefront are silently absent from the result.
func (c *Client) Lookup(ctx context.Context, ids []int64, country string) ([]App, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	q := url.Values{}
	q.Set("id", strings.Join(parts, ","))
	q.Set("country", country)
	q.Set("entity", "software")
	return c.fetch(ctx, c.BaseURL+"/lookup?"+q.Encode())
}

func (c *Client) fetch(ctx context.Context, rawURL string) ([]App, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("querying catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog returned status %d", resp.StatusCode)
	}

	var sr searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("decoding catalog response: %w", err)
	}

	apps := make([]App, 0, len(sr.Results))
	for _, w := range sr.Results {
		apps = append(apps, w.app())
	}
	return apps, nil
}
