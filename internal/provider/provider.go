// Package provider defines the external estimation capability: a structured
// request summarizing the user's demographics and vitals, and the partial
// payload the capability returns. The transport is opaque and substitutable;
// the estimator façade treats every payload field as potentially absent.
package provider

import "context"

// Request summarizes the user input for the estimation capability.
// Zero-valued fields mean "not specified".
type Request struct {
	CurrentAgeYears  float64
	Ethnicity        string
	Gender           string
	HeightCm         float64
	WeightKg         float64
	BloodPressureSys float64
	BloodPressureDia float64
	BloodSugar       float64
	ActivityLevel    string
}

// Payload is the provider's response with every field optional. Scalars are
// pointers so "absent" and "zero" stay distinguishable; the estimator owns
// the single defaulting pass that turns this into a complete result.
type Payload struct {
	EstimatedAge *int               `json:"estimatedAge"`
	Analysis     *string            `json:"analysis"`
	HealthTips   []string           `json:"healthTips"`
	LifeStages   []StagePayload     `json:"lifeStages"`
	Milestones   []MilestonePayload `json:"milestones"`
}

// StagePayload is an untrusted life-stage record. Ranges may gap or
// overlap; the layout engine tolerates both.
type StagePayload struct {
	Stage       string `json:"stage"`
	StartAge    int    `json:"startAge"`
	EndAge      int    `json:"endAge"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

// MilestonePayload is a provider milestone record. The wire field for the
// glyph is "emoji", matching the response schema sent with the request.
type MilestonePayload struct {
	Age         int    `json:"age"`
	Title       string `json:"title"`
	Glyph       string `json:"emoji"`
	Description string `json:"description"`
}

// Client is the estimation capability. Implementations may fail with
// network, parse, or schema errors; callers are expected to absorb those
// into a fallback path rather than propagate them.
type Client interface {
	Estimate(ctx context.Context, req Request) (*Payload, error)
}
