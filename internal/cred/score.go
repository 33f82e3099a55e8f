// Package cred computes a heuristic credibility score (roughly 0–100) for a
// catalog app from its listing metadata and collected reviews.
package cred

import (
	"math"
	"time"
	"unicode/utf8"

	"github.com/firstfu/app-store-crawler/internal/itunes"
	"github.com/firstfu/app-store-crawler/internal/review"
)

const (
	weightRating  = 0.40
	weightVolume  = 0.30
	weightQuality = 0.20
	weightAnomaly = 0.10
)

// Breakdown shows how each component contributed to the final score.
type Breakdown struct {
	CountWeight   float64
	ReviewQuality float64
	DistFactor    float64
	TimeDecay     float64
	Final         float64
}

// Score computes the credibility score for an app. It is a pure function of
// its inputs (and the clock, through time decay).
func Score(app itunes.App, reviews []review.Review) float64 {
	return ScoreWithBreakdown(app, reviews).Final
}

// ScoreWithBreakdown computes the credibility score with component details.
func ScoreWithBreakdown(app itunes.App, reviews []review.Review) Breakdown {
	return scoreAt(app, reviews, time.Now())
}

func scoreAt(app itunes.App, reviews []review.Review, now time.Time) Breakdown {
	b := Breakdown{
		CountWeight:   countWeight(app.RatingCount),
		ReviewQuality: reviewQuality(reviews),
		DistFactor:    distFactor(app.Rating, app.RatingCount),
		TimeDecay:     timeDecayAt(app.UpdatedAt, now),
	}
	base := (app.Rating*weightRating +
		b.CountWeight*weightVolume +
		b.ReviewQuality*weightQuality +
		b.DistFactor*weightAnomaly) * 100
	b.Final = round2(base * (0.8 + 0.2*b.TimeDecay))
	return b
}

// countWeight dampens the rating count logarithmically: 0 with no ratings,
// saturating at 1.0 around ten thousand.
func countWeight(n int64) float64 {
	if n <= 0 {
		return 0
	}
	return math.Min(1, math.Log(float64(n)+1)/math.Log(10000))
}

// reviewQuality blends average content length with the share of reviews whose
// content looks like genuine prose rather than filler.
func reviewQuality(reviews []review.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}

	var totalLen, valid int
	for _, r := range reviews {
		n := utf8.RuneCountInString(r.Content)
		totalLen += n
		if n > 10 && !repeatedRune(r.Content) {
			valid++
		}
	}

	avgLen := float64(totalLen) / float64(len(reviews))
	validRatio := float64(valid) / float64(len(reviews))
	return (math.Min(1, avgLen/100) + validRatio) / 2
}

// repeatedRune reports whether s is one rune repeated, e.g. "!!!!!".
func repeatedRune(s string) bool {
	first, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return false
	}
	for _, r := range s {
		if r != first {
			return false
		}
	}
	return true
}

// distFactor flags a suspicious rating distribution: a near-perfect average
// from very few raters suggests inflation.
func distFactor(rating float64, count int64) float64 {
	if rating > 4.8 && count < 100 {
		return 0.7
	}
	return 1.0
}

// timeDecayAt returns exponential decay over days since the last update:
// 1.0 for an update today, ~0.37 after a year. A missing or unparsable
// timestamp gets the neutral 0.5 rather than failing the score.
func timeDecayAt(updated string, now time.Time) float64 {
	t, err := time.Parse(time.RFC3339, updated)
	if err != nil {
		return 0.5
	}
	days := now.Sub(t).Hours() / 24
	if days < 0 {
		days = 0
	}
	return math.Exp(-days / 365)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
