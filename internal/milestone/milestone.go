// Package milestone normalizes and aggregates the three milestone sources:
// the estimation provider (or its fixed fallback set), the cultural ritual
// calendar, and user-entered goals. All functions are pure.
package milestone

import (
	"sort"

	"lifeweeks/internal/life"
)

// Glyph defaults per source. A provider entry that arrives without a glyph
// gets the generic marker; a custom goal gets the target.
const (
	PlaceholderGlyph = "📍"
	GoalGlyph        = "🎯"
)

// goalDescription tags every user-entered milestone.
const goalDescription = "Personal Goal"

// FromProvider normalizes a provider-supplied milestone: the glyph is
// defaulted, everything else is taken verbatim.
func FromProvider(ageYears int, title, glyph, description string) life.Milestone {
	if glyph == "" {
		glyph = PlaceholderGlyph
	}
	return life.Milestone{
		AgeYears:    ageYears,
		Title:       title,
		Glyph:       glyph,
		Description: description,
	}
}

// FromCustom normalizes a user-entered goal: age and title verbatim, glyph
// defaulted, description fixed to the personal-goal tag.
func FromCustom(goal life.CustomMilestone) life.Milestone {
	glyph := goal.Glyph
	if glyph == "" {
		glyph = GoalGlyph
	}
	return life.Milestone{
		AgeYears:    goal.AgeYears,
		Title:       goal.Title,
		Glyph:       glyph,
		Description: goalDescription,
	}
}

// FromCustoms normalizes a slice of goals preserving their order.
func FromCustoms(goals []life.CustomMilestone) []life.Milestone {
	if len(goals) == 0 {
		return nil
	}
	out := make([]life.Milestone, len(goals))
	for i, g := range goals {
		out[i] = FromCustom(g)
	}
	return out
}

// Aggregate concatenates already-normalized lists in their given precedence
// order, then stable-sorts by age. Stability is load-bearing: within equal
// ages, source precedence and each list's internal order survive, which
// pins down glyph selection when several milestones land on the same week.
func Aggregate(lists ...[]life.Milestone) []life.Milestone {
	total := 0
	for _, l := range lists {
		total += len(l)
	}
	merged := make([]life.Milestone, 0, total)
	for _, l := range lists {
		merged = append(merged, l...)
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].AgeYears < merged[j].AgeYears
	})
	return merged
}
