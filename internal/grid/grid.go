// Package grid lays out a life-expectancy result onto a decade-partitioned
// week grid. Layout is a pure function of the result: identical input
// produces a structurally identical grid, and cell lookups never mutate
// state, so a grid can be re-rendered any number of times.
package grid

import (
	"math"

	"lifeweeks/internal/life"
)

// NeutralStageColor is used for lived weeks that fall into a gap in the
// externally-supplied stage ranges. Malformed stage data is tolerated,
// never reported as an error.
const NeutralStageColor = "#cbd5e1"

// Cell style constants per temporal bucket.
const (
	currentWeekColor  = "#1C1917"
	futureWeekColor   = "#ffffff"
	futureWeekBorder  = "#e5e5e5"
	transparentBorder = "transparent"
	pastWeekOpacity   = 0.8
)

// Bucket classifies a week relative to the weeks already lived.
type Bucket int

const (
	Past Bucket = iota
	Current
	Future
)

func (b Bucket) String() string {
	switch b {
	case Past:
		return "past"
	case Current:
		return "current"
	default:
		return "future"
	}
}

// Decade is one horizontal band of the grid: ages [10i, min(10i+9, last)].
type Decade struct {
	Index    int   `json:"index"`
	StartAge int   `json:"startAge"`
	EndAge   int   `json:"endAge"`
	Years    []int `json:"years"`
}

// WeekCell is the derived visual state of a single week. Computed on
// demand, never persisted.
type WeekCell struct {
	AbsoluteWeekIndex int
	Bucket            Bucket
	StageColor        string // empty for future weeks
	Milestones        []life.Milestone
}

// Glyph returns the visible glyph for the cell: the first milestone in
// aggregation order. The remaining milestones stay available for the
// tooltip via Milestones.
func (c WeekCell) Glyph() (string, bool) {
	if len(c.Milestones) == 0 {
		return "", false
	}
	return c.Milestones[0].Glyph, true
}

// CellStyle is the presentational triple consumed by the rendering
// boundary.
type CellStyle struct {
	Background string
	Opacity    float64
	Border     string
}

// Style derives the cell's background/opacity/border from its temporal
// bucket and stage color.
func (c WeekCell) Style() CellStyle {
	switch c.Bucket {
	case Past:
		color := c.StageColor
		if color == "" {
			color = NeutralStageColor
		}
		return CellStyle{Background: color, Opacity: pastWeekOpacity, Border: transparentBorder}
	case Current:
		return CellStyle{Background: currentWeekColor, Opacity: 1, Border: currentWeekColor}
	default:
		return CellStyle{Background: futureWeekColor, Opacity: 1, Border: futureWeekBorder}
	}
}

// Grid is the laid-out week grid. Stage and milestone lookups are resolved
// through indexes built once in Layout, so per-cell queries are O(1)
// instead of rescanning the stage and milestone lists.
type Grid struct {
	Decades []Decade

	weeksLived       int
	stageColorByYear []string
	milestonesByWeek map[int][]life.Milestone
}

// Layout partitions the projected lifespan into decades and builds the
// per-year stage index and per-week milestone index.
func Layout(res *life.Result) *Grid {
	totalYears := res.EstimatedAgeYears
	if totalYears < 0 {
		totalYears = 0
	}

	decadeCount := int(math.Ceil(float64(totalYears) / 10))
	decades := make([]Decade, 0, decadeCount)
	for i := 0; i < decadeCount; i++ {
		startAge := i * 10
		endAge := startAge + 9
		if endAge > totalYears-1 {
			endAge = totalYears - 1
		}
		years := make([]int, 0, endAge-startAge+1)
		for y := startAge; y <= endAge; y++ {
			years = append(years, y)
		}
		decades = append(decades, Decade{Index: i, StartAge: startAge, EndAge: endAge, Years: years})
	}

	// Resolve each year's stage color up front. First matching stage wins;
	// gaps resolve to the neutral color at style time.
	stageColorByYear := make([]string, totalYears)
	for y := 0; y < totalYears; y++ {
		for _, s := range res.LifeStages {
			if s.Contains(y) {
				stageColorByYear[y] = s.Color
				break
			}
		}
	}

	milestonesByWeek := make(map[int][]life.Milestone, len(res.Milestones))
	for _, m := range res.Milestones {
		week := m.AgeYears*life.GridWeeksPerYear + life.MilestoneAnchorWeek
		milestonesByWeek[week] = append(milestonesByWeek[week], m)
	}

	return &Grid{
		Decades:          decades,
		weeksLived:       res.WeeksLived,
		stageColorByYear: stageColorByYear,
		milestonesByWeek: milestonesByWeek,
	}
}

// Cell returns the derived state for intra-year week w (0-51) of the given
// age year.
func (g *Grid) Cell(year, week int) WeekCell {
	return g.CellAt(year*life.GridWeeksPerYear + week)
}

// CellAt returns the derived state for an absolute week index.
func (g *Grid) CellAt(absoluteWeek int) WeekCell {
	cell := WeekCell{
		AbsoluteWeekIndex: absoluteWeek,
		Milestones:        g.milestonesByWeek[absoluteWeek],
	}

	switch {
	case absoluteWeek < g.weeksLived:
		cell.Bucket = Past
	case absoluteWeek == g.weeksLived:
		cell.Bucket = Current
	default:
		cell.Bucket = Future
		return cell
	}

	year := absoluteWeek / life.GridWeeksPerYear
	if year >= 0 && year < len(g.stageColorByYear) && g.stageColorByYear[year] != "" {
		cell.StageColor = g.stageColorByYear[year]
	} else {
		cell.StageColor = NeutralStageColor
	}
	return cell
}

// WeeksLived returns the lived-week count the grid was laid out with.
func (g *Grid) WeeksLived() int {
	return g.weeksLived
}
