package estimator

import (
	"math"
	"strings"

	"lifeweeks/internal/life"
	"lifeweeks/internal/milestone"
	"lifeweeks/internal/provider"
)

// FallbackAgeYears is the estimated age used when the provider fails or
// omits the estimate.
const FallbackAgeYears = 80

// stagePalette colors stages the provider returned without a color,
// indexed cyclically by the stage's position in the list.
var stagePalette = [...]string{"#22d3ee", "#4ade80", "#facc15", "#f472b6", "#a78bfa"}

const (
	genericAnalysis  = "Based on general population averages."
	fallbackAnalysis = "Could not generate precise estimate. Using global average."
)

func genericTips() []string {
	return []string{"Maintain a balanced diet.", "Exercise regularly.", "Get enough sleep."}
}

func fallbackTips() []string {
	return []string{"Focus on cardio.", "Reduce sugar intake.", "Stay hydrated."}
}

// defaulted is the fully-populated form of a provider payload: every field
// has been resolved to a usable value.
type defaulted struct {
	EstimatedAgeYears int
	Analysis          string
	HealthTips        []string
	LifeStages        []life.Stage
	Milestones        []life.Milestone
}

// applyDefaults resolves each payload field independently. This is the one
// place every per-field fallback rule lives:
//
//   - estimatedAge absent or non-positive  -> FallbackAgeYears
//   - analysis absent or blank             -> generic analysis
//   - healthTips empty                     -> 3-item generic list
//   - lifeStages empty                     -> canonical Youth/Prime/Wisdom
//   - stage without color                  -> cyclic palette by position
//   - milestones empty                     -> fixed biological fallback set
//   - milestone without glyph              -> placeholder glyph
//
// The biological fallback set substitutes for an empty provider list; the
// two are never merged.
func applyDefaults(p *provider.Payload) defaulted {
	d := defaulted{EstimatedAgeYears: FallbackAgeYears}

	if p.EstimatedAge != nil && *p.EstimatedAge > 0 {
		d.EstimatedAgeYears = *p.EstimatedAge
	}

	d.Analysis = genericAnalysis
	if p.Analysis != nil && strings.TrimSpace(*p.Analysis) != "" {
		d.Analysis = *p.Analysis
	}

	d.HealthTips = p.HealthTips
	if len(d.HealthTips) == 0 {
		d.HealthTips = genericTips()
	}

	if len(p.LifeStages) > 0 {
		d.LifeStages = make([]life.Stage, len(p.LifeStages))
		for i, s := range p.LifeStages {
			color := s.Color
			if color == "" {
				color = stagePalette[i%len(stagePalette)]
			}
			d.LifeStages[i] = life.Stage{
				Name:        s.Stage,
				StartAge:    s.StartAge,
				EndAge:      s.EndAge,
				Color:       color,
				Description: s.Description,
			}
		}
	} else {
		d.LifeStages = canonicalStages(d.EstimatedAgeYears)
	}

	if len(p.Milestones) > 0 {
		d.Milestones = make([]life.Milestone, len(p.Milestones))
		for i, m := range p.Milestones {
			d.Milestones[i] = milestone.FromProvider(m.Age, m.Title, m.Glyph, m.Description)
		}
	} else {
		d.Milestones = milestone.FallbackBiological()
	}

	return d
}

// canonicalStages is the three-stage partition used when the provider
// returns no stages at all.
func canonicalStages(estimatedAge int) []life.Stage {
	return []life.Stage{
		{Name: "Youth", StartAge: 0, EndAge: 18, Color: "#22d3ee", Description: "Learning & Growth"},
		{Name: "Prime", StartAge: 19, EndAge: 60, Color: "#facc15", Description: "Building & Creating"},
		{Name: "Wisdom", StartAge: 61, EndAge: estimatedAge, Color: "#f472b6", Description: "Reflection & Legacy"},
	}
}

// fallbackResult is the deterministic result used when the provider call
// fails outright: fixed age, fixed narrative, and a two-stage partition
// splitting lived from remaining time at the current age.
func fallbackResult(currentAge float64, weeksLived int, customs []life.Milestone) *life.Result {
	totalWeeks := weekCount(FallbackAgeYears)
	flooredAge := int(math.Floor(currentAge))

	return &life.Result{
		EstimatedAgeYears: FallbackAgeYears,
		WeeksLived:        weeksLived,
		TotalWeeks:        totalWeeks,
		RemainingWeeks:    totalWeeks - weeksLived,
		Analysis:          fallbackAnalysis,
		HealthTips:        fallbackTips(),
		LifeStages: []life.Stage{
			{Name: "Past", StartAge: 0, EndAge: flooredAge, Color: "#94a3b8", Description: "Time already lived"},
			{Name: "Future", StartAge: flooredAge, EndAge: FallbackAgeYears, Color: "#e2e8f0", Description: "Time remaining"},
		},
		Milestones: milestone.Aggregate(milestone.FallbackBiological(), milestone.Cultural(), customs),
	}
}
