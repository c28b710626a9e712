package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"lifeweeks/internal/grid"
	"lifeweeks/internal/life"
)

// Cell runes per temporal bucket. Milestone weeks show their glyph instead.
const (
	pastCellRune    = "■"
	currentCellRune = "█"
	futureCellRune  = "·"
)

// GridView renders a laid-out grid. Cell styles are cached per color so a
// 4000-week render does not rebuild a lipgloss style per cell.
type GridView struct {
	styles     Styles
	cellStyles map[string]lipgloss.Style
}

// NewGridView creates a grid renderer with the given styles.
func NewGridView(styles Styles) *GridView {
	return &GridView{
		styles:     styles,
		cellStyles: make(map[string]lipgloss.Style),
	}
}

func (v *GridView) cellStyle(color string) lipgloss.Style {
	if s, ok := v.cellStyles[color]; ok {
		return s
	}
	s := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	v.cellStyles[color] = s
	return s
}

// renderCell maps a week cell to a single styled rune, or its milestone
// glyph when one is anchored there.
func (v *GridView) renderCell(cell grid.WeekCell) string {
	if glyph, ok := cell.Glyph(); ok {
		return glyph
	}
	st := cell.Style()
	switch cell.Bucket {
	case grid.Current:
		return v.cellStyle(st.Background).Bold(true).Render(currentCellRune)
	case grid.Past:
		return v.cellStyle(st.Background).Render(pastCellRune)
	default:
		return v.cellStyle(st.Border).Render(futureCellRune)
	}
}

// Render draws the full decade-partitioned grid: one row per age year,
// decade bands separated by a blank line, age gutter on the left.
func (v *GridView) Render(g *grid.Grid) string {
	var b strings.Builder

	for _, decade := range g.Decades {
		for _, year := range decade.Years {
			b.WriteString(v.styles.AgeGutter.Render(fmt.Sprintf("%d", year)))
			for w := 0; w < life.GridWeeksPerYear; w++ {
				b.WriteString(v.renderCell(g.Cell(year, w)))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	return b.String()
}

// RenderLegend draws the stage legend and the milestone key below the grid.
// The milestone key doubles as the tooltip surface in the terminal: every
// milestone on the timeline is listed with its age and description.
func (v *GridView) RenderLegend(res *life.Result) string {
	var b strings.Builder

	b.WriteString(v.styles.SectionHeader.Render("Life Stages"))
	b.WriteString("\n")
	for _, stage := range res.LifeStages {
		dot := v.cellStyle(stage.Color).Render("●")
		b.WriteString(fmt.Sprintf("  %s %s (%d-%d)  %s\n",
			dot,
			v.styles.LegendItem.Render(stage.Name),
			stage.StartAge, stage.EndAge,
			v.styles.Muted.Render(stage.Description)))
	}
	b.WriteString(fmt.Sprintf("  %s %s\n",
		v.styles.Bold.Render(currentCellRune),
		v.styles.LegendItem.Render("Current week")))

	b.WriteString(v.styles.SectionHeader.Render("Key Markers & Goals"))
	b.WriteString("\n")
	for _, m := range res.Milestones {
		b.WriteString(fmt.Sprintf("  %s %s %s  %s\n",
			m.Glyph,
			v.styles.LegendItem.Render(m.Title),
			v.styles.Muted.Render(fmt.Sprintf("(age %d)", m.AgeYears)),
			v.styles.Muted.Render(m.Description)))
	}

	return b.String()
}

// DescribeCell renders the tooltip content for a single week: age, week
// number, temporal bucket, and every milestone anchored there in
// aggregation order.
func (v *GridView) DescribeCell(g *grid.Grid, year, week int) string {
	cell := g.Cell(year, week)

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n",
		v.styles.Bold.Render(fmt.Sprintf("Age %d", year)),
		v.styles.Muted.Render(fmt.Sprintf("WK %d · %s", week+1, cell.Bucket)))
	for _, m := range cell.Milestones {
		fmt.Fprintf(&b, "%s %s: %s\n", m.Glyph, v.styles.Bold.Render(m.Title), m.Description)
	}
	return b.String()
}
