// Package charts reads the storefront's top-applications feed and resolves
// the chart entries to catalog track IDs.
package charts

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/mmcdole/gofeed"
)

// Kind selects which chart to read.
type Kind string

const (
	TopFree Kind = "free"
	TopPaid Kind = "paid"
)

func (k Kind) valid() bool {
	return k == TopFree || k == TopPaid
}

type Feed struct {
	BaseURL string
	parser  *gofeed.Parser
}

func NewFeed() *Feed {
	return &Feed{
		BaseURL: "https://itunes.apple.com",
		parser:  gofeed.NewParser(),
	}
}

// TopAppIDs fetches the chart feed and returns the track IDs of its entries,
// in chart order. Entries whose ID cannot be extracted are skipped.
func (f *Feed) TopAppIDs(ctx context.Context, country string, kind Kind, count int) ([]int64, error) {
	if !kind.valid() {
		return nil, fmt.Errorf("unknown chart kind %q (valid: free, paid)", kind)
	}

	url := fmt.Sprintf("%s/%s/rss/top%sapplications/limit=%d/xml", f.BaseURL, country, kind, count)
	feed, err := f.parser.ParseURLWithContext(url, ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching top %s chart: %w", kind, err)
	}

	ids := make([]int64, 0, len(feed.Items))
	for _, item := range feed.Items {
		if id, ok := trackID(item.GUID); ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

var trackIDPattern = regexp.MustCompile(`/id(\d+)`)

// trackID pulls the numeric track ID out of a chart entry's ID URL, e.g.
// https://apps.apple.com/tw/app/some-app/id1234567890?mt=8 -> 1234567890.
func trackID(guid string) (int64, bool) {
	matches := trackIDPattern.FindAllStringSubmatch(guid, -1)
	if len(matches) == 0 {
		return 0, false
	}
	id, err := strconv.ParseInt(matches[len(matches)-1][1], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
