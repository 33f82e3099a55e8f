// Package ui renders scan results for the terminal.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/firstfu/app-store-crawler/internal/scan"
)

var (
	colorPrimary = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}
	colorDim     = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#626262"}
	colorGreen   = lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#25D366"}
	colorWarn    = lipgloss.AdaptiveColor{Light: "#C98A00", Dark: "#F5C518"}
	colorBorder  = lipgloss.AdaptiveColor{Light: "#DBDBDB", Dark: "#383838"}

	nameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	scoreStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorGreen)

	warnStyle = lipgloss.NewStyle().
			Foreground(colorWarn)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)
)

// RankLine renders one row of the ranking summary.
func RankLine(rank int, sa scan.ScoredApp) string {
	a := sa.App
	line := fmt.Sprintf("%2d. %s %s  %s",
		rank,
		scoreStyle.Render(fmt.Sprintf("%7.2f", sa.Score)),
		nameStyle.Render(a.Name),
		labelStyle.Render(fmt.Sprintf("%s · %.1f★ (%d)", a.Developer, a.Rating, a.RatingCount)),
	)
	if sa.ReviewsAborted {
		line += " " + warnStyle.Render("[partial reviews]")
	}
	return line
}

// AppCard renders the full detail card for one scored app.
func AppCard(sa scan.ScoredApp) string {
	a := sa.App
	var b strings.Builder

	b.WriteString(nameStyle.Render(a.Name) + "\n")
	b.WriteString(scoreStyle.Render(fmt.Sprintf("Credibility: %.2f", sa.Score)) + "\n\n")

	rows := []struct{ label, value string }{
		{"Developer", a.Developer},
		{"Genre", a.Genre},
		{"Price", a.PriceLabel()},
		{"Rating", fmt.Sprintf("%.1f (%d ratings)", a.Rating, a.RatingCount)},
		{"Version", a.Version},
		{"Size", FormatBytes(a.SizeBytes)},
		{"Minimum OS", "iOS " + a.MinimumOS},
		{"Updated", a.UpdatedAt},
		{"Store URL", a.StoreURL},
	}
	for _, r := range rows {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-11s", r.label)) + " " + r.value + "\n")
	}

	b.WriteString("\n" + labelStyle.Render(fmt.Sprintf(
		"volume %.3f · quality %.3f · anomaly %.1f · decay %.3f",
		sa.Breakdown.CountWeight, sa.Breakdown.ReviewQuality,
		sa.Breakdown.DistFactor, sa.Breakdown.TimeDecay)))

	if sa.ReviewsAborted {
		b.WriteString("\n" + warnStyle.Render(fmt.Sprintf(
			"review feed failed mid-collection; scored on %d reviews", len(sa.Reviews))))
	} else {
		b.WriteString("\n" + labelStyle.Render(fmt.Sprintf("scored on %d reviews", len(sa.Reviews))))
	}

	return cardStyle.Render(b.String())
}

// FormatBytes renders a byte count in a human unit.
func FormatBytes(b int64) string {
	switch {
	case b >= 1<<30:
		return fmt.Sprintf("%.1f GB", float64(b)/(1<<30))
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
