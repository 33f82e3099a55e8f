// Package scan drives one batch run: search the catalog, collect reviews per
// app, score, and rank. Apps are processed strictly one at a time; reviews
// for an app are fully collected before it is scored.
package scan

import (
	"context"
	"fmt"
	"sort"

	"github.com/firstfu/app-store-crawler/internal/cred"
	"github.com/firstfu/app-store-crawler/internal/itunes"
	"github.com/firstfu/app-store-crawler/internal/review"
)

// Searcher is the catalog search collaborator.
type Searcher interface {
	Search(ctx context.Context, keyword, country string, limit int) ([]itunes.App, error)
}

// Collector gathers reviews for one app.
type Collector interface {
	Collect(ctx context.Context, appID int64, country string, limit int) ([]review.Review, bool)
}

// ScoredApp is one ranked result: the catalog entry, the reviews that fed the
// score, and the score itself. Never mutated after creation.
type ScoredApp struct {
	App     itunes.App      `json:"app"`
	Reviews []review.Review `json:"reviews"`
	Score   float64         `json:"credibilityScore"`

	// ReviewsAborted records that review collection for this app was cut
	// short by a feed failure; the score used the partial set.
	ReviewsAborted bool `json:"-"`

	Breakdown cred.Breakdown `json:"-"`
}

type Options struct {
	Country     string
	SearchLimit int
	ReviewLimit int

	// Progress, when set, is called before each app is processed.
	Progress func(n, total int, app itunes.App)
}

// Run searches the catalog for keyword and scores every hit. A search failure
// aborts the run; per-app review failures only degrade that app's input.
func Run(ctx context.Context, s Searcher, c Collector, keyword string, opts Options) ([]ScoredApp, error) {
	apps, err := s.Search(ctx, keyword, opts.Country, opts.SearchLimit)
	if err != nil {
		return nil, fmt.Errorf("searching catalog: %w", err)
	}
	return ScoreApps(ctx, c, apps, opts), nil
}

// ScoreApps collects reviews for each app, scores it, and returns the batch
// sorted descending by score.
func ScoreApps(ctx context.Context, c Collector, apps []itunes.App, opts Options) []ScoredApp {
	scored := make([]ScoredApp, 0, len(apps))
	for i, app := range apps {
		if opts.Progress != nil {
			opts.Progress(i+1, len(apps), app)
		}
		reviews, aborted := c.Collect(ctx, app.ID, opts.Country, opts.ReviewLimit)
		b := cred.ScoreWithBreakdown(app, reviews)
		scored = append(scored, ScoredApp{
			App:            app,
			Reviews:        reviews,
			Score:          b.Final,
			ReviewsAborted: aborted,
			Breakdown:      b,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}
