// Package life defines the core data model for the life-in-weeks
// visualization: user input, milestones, life stages, and the assembled
// life-expectancy result, plus the time constants the week math depends on.
package life

import (
	"errors"
	"time"
)

// Time constants for age and week arithmetic.
//
// WeeksPerYear and GridWeeksPerYear intentionally disagree. The scalar week
// counts (WeeksLived, TotalWeeks) use the precise average Gregorian year
// length of 365.2425/7 weeks, while the grid addresses weeks with a flat
// 52-week year so that every age row has the same width. The ~1.25 day/year
// drift between the two is a deliberate product decision carried over from
// the original design; reconciling them would shift observable milestone
// placement on the grid.
const (
	// DaysPerYear is the Julian year length used for fractional ages.
	DaysPerYear = 365.25

	// WeeksPerYear converts fractional ages to lived/total week counts.
	WeeksPerYear = 52.1775

	// GridWeeksPerYear is the fixed row width of the week grid.
	GridWeeksPerYear = 52

	// MilestoneAnchorWeek is the intra-year week a milestone is pinned to.
	// Mid-year is a visually stable default rather than a precise date.
	MilestoneAnchorWeek = 26
)

// Input validation errors. These are the only errors that cross the
// estimator boundary; provider and layout anomalies are absorbed internally.
var (
	ErrMissingBirthDate = errors.New("birth date is required")
	ErrFutureBirthDate  = errors.New("birth date must be in the past")
	ErrNegativeMetric   = errors.New("numeric fields must be non-negative")
	ErrNegativeGoalAge  = errors.New("custom milestone age must be non-negative")
)

// Gender is the self-reported gender passed to the estimation provider.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// ActivityLevel is the self-reported physical activity level.
type ActivityLevel string

const (
	ActivitySedentary ActivityLevel = "sedentary"
	ActivityModerate  ActivityLevel = "moderate"
	ActivityActive    ActivityLevel = "active"
	ActivityAthlete   ActivityLevel = "athlete"
)

// CustomMilestone is a user-entered personal goal pinned to an age.
type CustomMilestone struct {
	Title    string `json:"title"`
	AgeYears int    `json:"age"`
	Glyph    string `json:"glyph"`
}

// UserInput carries everything the user supplies on the onboarding form.
// BirthDate is the only required field; zero-valued numeric fields are
// treated as "not specified".
type UserInput struct {
	BirthDate        time.Time         `json:"birthDate"`
	Ethnicity        string            `json:"ethnicity,omitempty"`
	Gender           Gender            `json:"gender,omitempty"`
	HeightCm         float64           `json:"heightCm,omitempty"`
	WeightKg         float64           `json:"weightKg,omitempty"`
	BloodPressureSys float64           `json:"bloodPressureSys,omitempty"`
	BloodPressureDia float64           `json:"bloodPressureDia,omitempty"`
	BloodSugar       float64           `json:"bloodSugar,omitempty"` // mg/dL
	ActivityLevel    ActivityLevel     `json:"activityLevel,omitempty"`
	CustomMilestones []CustomMilestone `json:"customMilestones,omitempty"`
}

// Validate checks the input invariants: a parseable past birth date and
// non-negative numeric fields. now is injected so callers control the clock.
func (in UserInput) Validate(now time.Time) error {
	if in.BirthDate.IsZero() {
		return ErrMissingBirthDate
	}
	if !in.BirthDate.Before(now) {
		return ErrFutureBirthDate
	}
	for _, v := range []float64{in.HeightCm, in.WeightKg, in.BloodPressureSys, in.BloodPressureDia, in.BloodSugar} {
		if v < 0 {
			return ErrNegativeMetric
		}
	}
	for _, m := range in.CustomMilestones {
		if m.AgeYears < 0 {
			return ErrNegativeGoalAge
		}
	}
	return nil
}

// AgeYearsAt returns the fractional age at the given instant, expressed in
// 365.25-day years.
func (in UserInput) AgeYearsAt(now time.Time) float64 {
	return now.Sub(in.BirthDate).Hours() / (24 * DaysPerYear)
}

// Milestone is a titled event anchored to an integer age. Provenance
// (provider, cultural calendar, custom goal) is not stored on the record;
// it is expressed through aggregation order instead.
type Milestone struct {
	AgeYears    int    `json:"age"`
	Title       string `json:"title"`
	Glyph       string `json:"glyph"`
	Description string `json:"description"`
}

// Stage is a named age range with a display color, partitioning the
// lifespan. Stage data originates from an untrusted external source, so
// consumers must tolerate gaps and overlaps.
type Stage struct {
	Name        string `json:"stage"`
	StartAge    int    `json:"startAge"`
	EndAge      int    `json:"endAge"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

// Contains reports whether the given integer age falls inside the stage.
func (s Stage) Contains(ageYears int) bool {
	return ageYears >= s.StartAge && ageYears <= s.EndAge
}

// Result is the assembled life-expectancy estimate. It is constructed once
// per estimation request and consumed read-only by the layout engine.
// RemainingWeeks may be zero or negative when the estimate does not exceed
// the lived span; that is a valid, displayable state.
type Result struct {
	EstimatedAgeYears int         `json:"estimatedAge"`
	WeeksLived        int         `json:"weeksLived"`
	TotalWeeks        int         `json:"totalWeeks"`
	RemainingWeeks    int         `json:"remainingWeeks"`
	Analysis          string      `json:"analysis"`
	HealthTips        []string    `json:"healthTips"`
	LifeStages        []Stage     `json:"lifeStages"`
	Milestones        []Milestone `json:"milestones"`
}

// PercentLived returns the share of the projected lifespan already lived,
// in the range [0, 100] for ordinary inputs. Returns 0 when TotalWeeks is 0.
func (r *Result) PercentLived() float64 {
	if r.TotalWeeks == 0 {
		return 0
	}
	return float64(r.WeeksLived) / float64(r.TotalWeeks) * 100
}
