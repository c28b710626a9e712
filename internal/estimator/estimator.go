// Package estimator owns the life-expectancy estimation façade: it computes
// the current age, invokes the external estimation capability, applies the
// fallback policy, and assembles the result consumed by the layout engine.
//
// The façade fails closed. Provider errors never propagate to callers; only
// input validation errors cross this boundary.
package estimator

import (
	"context"
	"math"
	"time"

	"lifeweeks/internal/life"
	"lifeweeks/internal/logging"
	"lifeweeks/internal/milestone"
	"lifeweeks/internal/provider"
)

// Estimator wraps the estimation capability. The client is an explicit
// dependency injected at construction; its lifecycle belongs to the
// composition root.
type Estimator struct {
	client provider.Client
	now    func() time.Time
}

// Option configures an Estimator.
type Option func(*Estimator)

// WithClock overrides the time source. Used by tests to pin "now".
func WithClock(now func() time.Time) Option {
	return func(e *Estimator) { e.now = now }
}

// New creates an Estimator around the given estimation client.
func New(client provider.Client, options ...Option) *Estimator {
	e := &Estimator{
		client: client,
		now:    time.Now,
	}
	for _, opt := range options {
		opt(e)
	}
	return e
}

// Estimate produces a complete, renderable result for the given input.
// It returns an error only for invalid input; any provider failure resolves
// into the deterministic fallback result instead.
func (e *Estimator) Estimate(ctx context.Context, input life.UserInput) (*life.Result, error) {
	now := e.now()
	if err := input.Validate(now); err != nil {
		return nil, err
	}

	currentAge := input.AgeYearsAt(now)
	weeksLived := weekCount(currentAge)
	customs := milestone.FromCustoms(input.CustomMilestones)

	payload, err := e.client.Estimate(ctx, buildRequest(input, currentAge))
	if err != nil || payload == nil {
		logging.EstimatorWarn("estimate: provider unavailable, using fallback result: %v", err)
		return fallbackResult(currentAge, weeksLived, customs), nil
	}

	d := applyDefaults(payload)
	totalWeeks := weekCount(float64(d.EstimatedAgeYears))

	logging.Estimator("estimate: age=%.1f estimated=%d lived=%d total=%d stages=%d",
		currentAge, d.EstimatedAgeYears, weeksLived, totalWeeks, len(d.LifeStages))

	return &life.Result{
		EstimatedAgeYears: d.EstimatedAgeYears,
		WeeksLived:        weeksLived,
		TotalWeeks:        totalWeeks,
		RemainingWeeks:    totalWeeks - weeksLived,
		Analysis:          d.Analysis,
		HealthTips:        d.HealthTips,
		LifeStages:        d.LifeStages,
		Milestones:        milestone.Aggregate(d.Milestones, milestone.Cultural(), customs),
	}, nil
}

// weekCount converts a fractional age to a whole week count using the
// precise weeks-per-year constant. floor on both the lived and total side
// keeps remaining = total - lived exact.
func weekCount(ageYears float64) int {
	return int(math.Floor(ageYears * life.WeeksPerYear))
}

// buildRequest summarizes the input for the provider.
func buildRequest(input life.UserInput, currentAge float64) provider.Request {
	return provider.Request{
		CurrentAgeYears:  currentAge,
		Ethnicity:        input.Ethnicity,
		Gender:           string(input.Gender),
		HeightCm:         input.HeightCm,
		WeightKg:         input.WeightKg,
		BloodPressureSys: input.BloodPressureSys,
		BloodPressureDia: input.BloodPressureDia,
		BloodSugar:       input.BloodSugar,
		ActivityLevel:    string(input.ActivityLevel),
	}
}
