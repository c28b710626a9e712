package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"lifeweeks/internal/life"
)

// SummaryMarkdown builds a markdown report of the result, used by the
// one-shot estimate command.
func SummaryMarkdown(res *life.Result) string {
	var b strings.Builder

	b.WriteString("# Life in Weeks\n\n")
	fmt.Fprintf(&b, "**Projected Horizon:** %d years · **%.1f%%** completed\n\n", res.EstimatedAgeYears, res.PercentLived())
	fmt.Fprintf(&b, "| Weeks Lived | Weeks Left | Total |\n|---:|---:|---:|\n| %d | %d | %d |\n\n",
		res.WeeksLived, res.RemainingWeeks, res.TotalWeeks)

	fmt.Fprintf(&b, "> %s\n\n", res.Analysis)

	b.WriteString("## Optimization Protocol\n\n")
	for _, tip := range res.HealthTips {
		fmt.Fprintf(&b, "- %s\n", tip)
	}

	b.WriteString("\n## Life Stages\n\n")
	for _, s := range res.LifeStages {
		fmt.Fprintf(&b, "- **%s** (%d-%d): %s\n", s.Name, s.StartAge, s.EndAge, s.Description)
	}

	b.WriteString("\n## Key Markers & Goals\n\n")
	for _, m := range res.Milestones {
		fmt.Fprintf(&b, "- %s **%s** (age %d): %s\n", m.Glyph, m.Title, m.AgeYears, m.Description)
	}

	return b.String()
}

// RenderMarkdown renders markdown for the terminal via glamour. Falls back
// to the raw markdown when the renderer cannot be constructed.
func RenderMarkdown(md string, width int) string {
	if width <= 0 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}
