package ui

import (
	"strings"
	"testing"

	"github.com/firstfu/app-store-crawler/internal/itunes"
	"github.com/firstfu/app-store-crawler/internal/scan"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{2048, "2.0 KB"},
		{52428800, "50.0 MB"},
		{3 << 30, "3.0 GB"},
	}
	for _, tt := range tests {
		if got := FormatBytes(tt.in); got != tt.want {
			t.Errorf("FormatBytes(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRankLineMarksPartialRuns(t *testing.T) {
	sa := scan.ScoredApp{
		App:            itunes.App{Name: "Flaky", Developer: "Dev", Rating: 4.1, RatingCount: 12},
		Score:          55.5,
		ReviewsAborted: true,
	}
	line := RankLine(3, sa)
	if !strings.Contains(line, "Flaky") || !strings.Contains(line, "partial reviews") {
		t.Errorf("unexpected rank line: %q", line)
	}

	sa.ReviewsAborted = false
	if strings.Contains(RankLine(3, sa), "partial") {
		t.Error("clean runs must not be marked partial")
	}
}

func TestAppCardFields(t *testing.T) {
	sa := scan.ScoredApp{
		App: itunes.App{
			Name: "Budget Buddy", Developer: "Penny Labs", Genre: "Finance",
			Rating: 4.6, RatingCount: 3200, Version: "3.1.0",
			SizeBytes: 52428800, MinimumOS: "15.0",
			StoreURL: "https://apps.apple.com/tw/app/id1",
		},
		Score: 83.42,
	}
	card := AppCard(sa)
	for _, want := range []string{
		"Budget Buddy", "Penny Labs", "Finance", "83.42",
		"50.0 MB", "iOS 15.0", "scored on 0 reviews",
	} {
		if !strings.Contains(card, want) {
			t.Errorf("card missing %q:\n%s", want, card)
		}
	}
}
