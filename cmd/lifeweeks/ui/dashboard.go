package ui

import (
	"fmt"
	"strings"

	"lifeweeks/internal/life"
)

const progressBarWidth = 40

const disclaimer = "Disclaimer: This tool is for entertainment and informational purposes only. " +
	"The life expectancy and milestones generated are estimates based on general statistical " +
	"data and AI analysis. They do not constitute medical advice, diagnosis, or prognosis."

// RenderDashboard draws the stats header shown above the grid: projected
// horizon, percent lived with a progress bar, week counts, the analysis
// quote, and the health tips.
func RenderDashboard(styles Styles, res *life.Result) string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Life in Weeks"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render(fmt.Sprintf("Projected Horizon: %d years", res.EstimatedAgeYears)))
	b.WriteString("\n\n")

	pct := res.PercentLived()
	b.WriteString(styles.StatValue.Render(fmt.Sprintf("%.1f%%", pct)))
	b.WriteString(styles.Muted.Render(" completed"))
	b.WriteString("\n")
	b.WriteString(renderBar(styles, pct))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("%s %s    %s %s\n",
		styles.StatLabel.Render("Weeks Lived"),
		styles.StatValue.Render(fmt.Sprintf("%d", res.WeeksLived)),
		styles.StatLabel.Render("Weeks Left"),
		styles.StatValue.Render(fmt.Sprintf("%d", res.RemainingWeeks))))

	b.WriteString(styles.SectionHeader.Render("Actuarial Analysis"))
	b.WriteString("\n")
	b.WriteString(styles.Quote.Render(fmt.Sprintf("“%s”", res.Analysis)))
	b.WriteString("\n")

	b.WriteString(styles.SectionHeader.Render("Optimization Protocol"))
	b.WriteString("\n")
	for _, tip := range res.HealthTips {
		b.WriteString(styles.Tip.Render("✦ " + tip))
		b.WriteString("\n")
	}

	return b.String()
}

// RenderFooter draws the disclaimer shown under the grid.
func RenderFooter(styles Styles) string {
	return styles.Disclaimer.Render(disclaimer)
}

// renderBar draws a fixed-width progress bar. Percentages outside [0, 100]
// are clamped for display only; the underlying counts stay untouched.
func renderBar(styles Styles, pct float64) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := int(pct / 100 * progressBarWidth)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", progressBarWidth-filled)
	return styles.Body.Render(bar)
}
