// Package review collects customer reviews from the storefront's paginated
// review feed.
package review

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// NotAvailable substitutes any field the feed omits for an entry.
const NotAvailable = "N/A"

// Review is one customer review as flattened from the feed.
type Review struct {
	Author  string `json:"author"`
	Rating  string `json:"rating"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Version string `json:"version"`
	Updated string `json:"updated"`
}

// Collector pages through an app's review feed. Delay is the pause between
// successive page requests; the feed throttles aggressive clients.
type Collector struct {
	BaseURL string
	HTTP    *http.Client
	Delay   time.Duration
}

func NewCollector() *Collector {
	return &Collector{
		BaseURL: "https://itunes.apple.com",
		HTTP:    &http.Client{Timeout: 30 * time.Second},
		Delay:   time.Second,
	}
}

// Collect fetches up to limit reviews for the app, walking 1-indexed feed
// pages until the limit is reached or the feed runs out of entries. It never
// returns an error: a failed page request or decode stops collection and the
// reviews gathered so far are returned with aborted set to true, so callers
// can tell a complete run from a cut-short one.
func (c *Collector) Collect(ctx context.Context, appID int64, country string, limit int) (reviews []Review, aborted bool) {
	for page := 1; len(reviews) < limit; page++ {
		if page > 1 {
			select {
			case <-ctx.Done():
				return reviews, true
			case <-time.After(c.Delay):
			}
		}

		entries, err := c.fetchPage(ctx, appID, country, page)
		if err != nil {
			return reviews, true
		}
		if len(entries) == 0 {
			break // feed exhausted
		}
		for _, e := range entries {
			reviews = append(reviews, e.review())
		}
	}

	if len(reviews) > limit {
		reviews = reviews[:limit]
	}
	return reviews, false
}

// The feed nests every field one level deep behind a "label" leaf.
type label struct {
	Label string `json:"label"`
}

type entryAuthor struct {
	Name label `json:"name"`
}

type feedEntry struct {
	Author  *entryAuthor `json:"author"`
	Rating  *label       `json:"im:rating"`
	Title   *label       `json:"title"`
	Content *label       `json:"content"`
	Version *label       `json:"im:version"`
	Updated *label       `json:"updated"`
}

func (e feedEntry) review() Review {
	author := NotAvailable
	if e.Author != nil && e.Author.Name.Label != "" {
		author = e.Author.Name.Label
	}
	return Review{
		Author:  author,
		Rating:  text(e.Rating),
		Title:   text(e.Title),
		Content: text(e.Content),
		Version: text(e.Version),
		Updated: text(e.Updated),
	}
}

func text(l *label) string {
	if l == nil || l.Label == "" {
		return NotAvailable
	}
	return l.Label
}

type feedPage struct {
	Feed struct {
		Entry json.RawMessage `json:"entry"`
	} `json:"feed"`
}

// fetchPage returns the entries of one feed page. A missing, null, or
// non-array entry field is the feed's end-of-data signal and yields an empty
// slice, not an error.
func (c *Collector) fetchPage(ctx context.Context, appID int64, country string, page int) ([]feedEntry, error) {
	u := fmt.Sprintf("%s/%s/rss/customerreviews/page=%d/id=%d/sortby=mostrecent/json",
		c.BaseURL, country, page, appID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching review page %d: %w", page, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("review feed returned status %d", resp.StatusCode)
	}

	var fp feedPage
	if err := json.NewDecoder(resp.Body).Decode(&fp); err != nil {
		return nil, fmt.Errorf("decoding review page %d: %w", page, err)
	}

	if len(fp.Feed.Entry) == 0 || string(fp.Feed.Entry) == "null" {
		return nil, nil
	}
	var entries []feedEntry
	if err := json.Unmarshal(fp.Feed.Entry, &entries); err != nil {
		return nil, nil // single object or other non-array shape: end of data
	}
	return entries, nil
}
