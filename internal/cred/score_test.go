package cred

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/firstfu/app-store-crawler/internal/itunes"
	"github.com/firstfu/app-store-crawler/internal/review"
)

func TestCountWeightBoundaries(t *testing.T) {
	if got := countWeight(0); got != 0 {
		t.Errorf("countWeight(0) = %v, want 0", got)
	}
	if got := countWeight(-5); got != 0 {
		t.Errorf("countWeight(-5) = %v, want 0", got)
	}
	// ln(9999+1)/ln(10000) is exactly 1.
	if got := countWeight(9999); got != 1 {
		t.Errorf("countWeight(9999) = %v, want 1", got)
	}
	if got := countWeight(10000); got != 1 {
		t.Errorf("countWeight(10000) = %v, want saturation at 1", got)
	}
	if got := countWeight(1000000); got != 1 {
		t.Errorf("countWeight(1000000) = %v, want saturation at 1", got)
	}
}

func TestCountWeightMonotonic(t *testing.T) {
	prev := 0.0
	for _, n := range []int64{1, 2, 5, 10, 50, 100, 500, 1000, 5000, 9999, 10000, 50000} {
		w := countWeight(n)
		if w < prev {
			t.Fatalf("countWeight(%d) = %v decreased below %v", n, w, prev)
		}
		prev = w
	}
}

func TestReviewQualityEmpty(t *testing.T) {
	if got := reviewQuality(nil); got != 0 {
		t.Errorf("reviewQuality(nil) = %v, want exactly 0", got)
	}
}

func TestRepeatedRune(t *testing.T) {
	tests := []struct {
		content string
		want    bool
	}{
		{"!!!!!", true},
		{"aaaaaa", true},
		{"a", true},
		{"ああああああああああああ", true},
		{"aaab", false},
		{"Great app, works well every day!", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := repeatedRune(tt.content); got != tt.want {
			t.Errorf("repeatedRune(%q) = %v, want %v", tt.content, got, tt.want)
		}
	}
}

func TestRepeatedContentNeverValid(t *testing.T) {
	// A long run of one character beats the length bar but must still count
	// as invalid, so a single such review yields validRatio 0.
	rs := []review.Review{{Content: strings.Repeat("!", 50)}}
	got := reviewQuality(rs)
	want := (math.Min(1, 50.0/100) + 0) / 2
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("reviewQuality = %v, want %v", got, want)
	}
}

func TestReviewQualityBlend(t *testing.T) {
	rs := []review.Review{
		{Content: "Great app, works well every day!"},             // 32 runes, valid
		{Content: "meh"},                                          // short, invalid
		{Content: strings.Repeat("x", 40)},                        // repeated, invalid
		{Content: "Solid tracker, syncs fast and never crashes."}, // 44 runes, valid
	}
	avgLen := float64(32+3+40+44) / 4
	want := (math.Min(1, avgLen/100) + 2.0/4) / 2
	if got := reviewQuality(rs); math.Abs(got-want) > 1e-12 {
		t.Errorf("reviewQuality = %v, want %v", got, want)
	}
}

func TestDistFactor(t *testing.T) {
	tests := []struct {
		rating float64
		count  int64
		want   float64
	}{
		{4.9, 50, 0.7},
		{4.81, 99, 0.7},
		{4.8, 50, 1.0},  // rating must exceed 4.8
		{4.9, 100, 1.0}, // count must be below 100
		{4.9, 5000, 1.0},
		{3.2, 10, 1.0},
	}
	for _, tt := range tests {
		if got := distFactor(tt.rating, tt.count); got != tt.want {
			t.Errorf("distFactor(%v, %d) = %v, want %v", tt.rating, tt.count, got, tt.want)
		}
	}
}

func TestTimeDecay(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	if got := timeDecayAt("", now); got != 0.5 {
		t.Errorf("missing timestamp: got %v, want 0.5", got)
	}
	if got := timeDecayAt("last tuesday", now); got != 0.5 {
		t.Errorf("malformed timestamp: got %v, want 0.5", got)
	}
	if got := timeDecayAt("2024-06-01T12:00:00Z", now); got != 1 {
		t.Errorf("zero elapsed days: got %v, want 1", got)
	}

	// Strictly decreasing as elapsed time grows.
	prev := math.Inf(1)
	for _, ts := range []string{
		"2024-05-31T12:00:00Z",
		"2024-03-01T12:00:00Z",
		"2023-06-01T12:00:00Z",
		"2014-06-01T12:00:00Z",
	} {
		d := timeDecayAt(ts, now)
		if d >= prev {
			t.Fatalf("decay for %s = %v, not below %v", ts, d, prev)
		}
		prev = d
	}
	if prev > 0.001 {
		t.Errorf("decade-old update should decay close to 0, got %v", prev)
	}
}

func TestScoreKnownValue(t *testing.T) {
	// rating 4.0 -> 1.6, countWeight(9999) = 1 -> 0.3, no reviews -> 0,
	// distFactor 1 -> 0.1, decay fallback 0.5 -> base 200 * 0.9 = 180.
	app := itunes.App{Rating: 4.0, RatingCount: 9999}
	b := scoreAt(app, nil, time.Now())
	if b.Final != 180.00 {
		t.Errorf("score = %v, want 180.00", b.Final)
	}
}

func TestScoreInflationExample(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	app := itunes.App{
		Rating:      4.9,
		RatingCount: 50,
		UpdatedAt:   now.Format(time.RFC3339),
	}
	rs := []review.Review{{Content: "Great app, works well every day!"}} // 32 runes

	b := scoreAt(app, rs, now)

	if b.DistFactor != 0.7 {
		t.Errorf("distFactor = %v, want inflation flag 0.7", b.DistFactor)
	}
	if b.TimeDecay != 1 {
		t.Errorf("timeDecay = %v, want 1 for an update today", b.TimeDecay)
	}

	cw := math.Log(51) / math.Log(10000)
	rq := (0.32 + 1.0) / 2
	want := round2((4.9*0.4 + cw*0.3 + rq*0.2 + 0.7*0.1) * 100) // decay factor is 1
	if b.Final != want {
		t.Errorf("score = %v, want %v", b.Final, want)
	}
}

func TestScoreDeterministic(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	app := itunes.App{Rating: 3.7, RatingCount: 812, UpdatedAt: "2024-01-15T00:00:00Z"}
	rs := []review.Review{
		{Content: "Does exactly what it says on the tin."},
		{Content: "meh"},
	}
	a := scoreAt(app, rs, now)
	b := scoreAt(app, rs, now)
	if a != b {
		t.Errorf("identical inputs produced different breakdowns: %+v vs %+v", a, b)
	}
}

func TestScoreRewardsVolumeAndQuality(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	app := itunes.App{Rating: 4.2, RatingCount: 500, UpdatedAt: "2024-05-01T00:00:00Z"}

	thin := []review.Review{
		{Content: "good app sure"},
		{Content: "ok"},
	}
	rich := []review.Review{
		{Content: "Been using this daily for months, the sync across devices is flawless."},
		{Content: "The budgeting categories are flexible and the reports actually help."},
		{Content: "Support replied within a day and the fix shipped in the next release."},
		{Content: "Widgets are handy, and the watch app keeps logging quick on the go."},
	}

	lo := scoreAt(app, thin, now).Final
	hi := scoreAt(app, rich, now).Final
	if hi <= lo {
		t.Errorf("higher volume and quality must score strictly higher: %v <= %v", hi, lo)
	}
}

func TestScoreNotClamped(t *testing.T) {
	// The raw 0-5 rating scale deliberately pushes the base past 100; the
	// composition must not renormalize or clamp it.
	app := itunes.App{Rating: 5.0, RatingCount: 100000, UpdatedAt: time.Now().Format(time.RFC3339)}
	if got := Score(app, nil); got <= 100 {
		t.Errorf("expected an unclamped score above 100, got %v", got)
	}
}
