package estimator

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"lifeweeks/internal/life"
	"lifeweeks/internal/milestone"
	"lifeweeks/internal/provider"
)

func TestMain(m *testing.M) {
	// The opencensus stats worker is started by package init when the genai
	// dependency is linked; it is not a leak from code under test.
	goleak.VerifyTestMain(m, goleak.IgnoreTopFunction("go.opencensus.io/stats/view.(*worker).start"))
}

// fakeClient records the request it was given and returns a canned payload.
type fakeClient struct {
	payload *provider.Payload
	err     error

	calls   int
	lastReq provider.Request
}

func (f *fakeClient) Estimate(ctx context.Context, req provider.Request) (*provider.Payload, error) {
	f.calls++
	f.lastReq = req
	return f.payload, f.err
}

var fixedNow = time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

// birthYearsAgo returns a birth date exactly n Julian years before fixedNow.
func birthYearsAgo(n int) time.Time {
	return fixedNow.Add(-time.Duration(n*365*24)*time.Hour - time.Duration(n*6)*time.Hour)
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestEstimate_WeekArithmetic(t *testing.T) {
	client := &fakeClient{payload: &provider.Payload{EstimatedAge: intPtr(80)}}
	est := New(client, WithClock(fixedClock))

	res, err := est.Estimate(context.Background(), life.UserInput{BirthDate: birthYearsAgo(30)})
	require.NoError(t, err)

	// floor(30 * 52.1775) and floor(80 * 52.1775).
	assert.Equal(t, 1565, res.WeeksLived)
	assert.Equal(t, 4174, res.TotalWeeks)
	assert.Equal(t, 2609, res.RemainingWeeks)
	assert.Equal(t, res.TotalWeeks-res.WeeksLived, res.RemainingWeeks)
}

func TestEstimate_ShortEstimateGoesNegative(t *testing.T) {
	// An estimate below the current age yields a negative remainder; the
	// arithmetic is reported as-is, clamping is a rendering concern.
	client := &fakeClient{payload: &provider.Payload{EstimatedAge: intPtr(25)}}
	est := New(client, WithClock(fixedClock))

	res, err := est.Estimate(context.Background(), life.UserInput{BirthDate: birthYearsAgo(30)})
	require.NoError(t, err)
	assert.Less(t, res.RemainingWeeks, 0)
}

func TestEstimate_InvalidInputSkipsProvider(t *testing.T) {
	client := &fakeClient{}
	est := New(client, WithClock(fixedClock))

	_, err := est.Estimate(context.Background(), life.UserInput{})
	require.ErrorIs(t, err, life.ErrMissingBirthDate)

	_, err = est.Estimate(context.Background(), life.UserInput{BirthDate: fixedNow.AddDate(1, 0, 0)})
	require.ErrorIs(t, err, life.ErrFutureBirthDate)

	assert.Zero(t, client.calls, "provider must not be called for invalid input")
}

func TestEstimate_ProviderFailureFallsBack(t *testing.T) {
	client := &fakeClient{err: errors.New("quota exceeded")}
	est := New(client, WithClock(fixedClock))

	res, err := est.Estimate(context.Background(), life.UserInput{BirthDate: birthYearsAgo(30)})
	require.NoError(t, err, "provider failures must not surface to the caller")

	assert.Equal(t, 80, res.EstimatedAgeYears)
	assert.Equal(t, "Could not generate precise estimate. Using global average.", res.Analysis)
	assert.Equal(t, []string{"Focus on cardio.", "Reduce sugar intake.", "Stay hydrated."}, res.HealthTips)

	require.Len(t, res.LifeStages, 2)
	past, future := res.LifeStages[0], res.LifeStages[1]
	assert.Equal(t, life.Stage{Name: "Past", StartAge: 0, EndAge: 30, Color: "#94a3b8", Description: "Time already lived"}, past)
	assert.Equal(t, life.Stage{Name: "Future", StartAge: 30, EndAge: 80, Color: "#e2e8f0", Description: "Time remaining"}, future)
}

func TestEstimate_NilPayloadFallsBack(t *testing.T) {
	client := &fakeClient{}
	est := New(client, WithClock(fixedClock))

	res, err := est.Estimate(context.Background(), life.UserInput{BirthDate: birthYearsAgo(30)})
	require.NoError(t, err)
	assert.Equal(t, 80, res.EstimatedAgeYears)
}

func TestEstimate_FallbackIsDeterministic(t *testing.T) {
	input := life.UserInput{BirthDate: birthYearsAgo(30)}

	a, err := New(&fakeClient{err: errors.New("down")}, WithClock(fixedClock)).Estimate(context.Background(), input)
	require.NoError(t, err)
	b, err := New(&fakeClient{err: errors.New("different failure")}, WithClock(fixedClock)).Estimate(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, a, b, "fallback must not depend on the failure mode")
}

func TestEstimate_PartialPayloadDefaultsPerField(t *testing.T) {
	client := &fakeClient{payload: &provider.Payload{
		EstimatedAge: intPtr(85),
		Analysis:     strPtr("Excellent markers."),
		// HealthTips, LifeStages, Milestones all absent.
	}}
	est := New(client, WithClock(fixedClock))

	res, err := est.Estimate(context.Background(), life.UserInput{BirthDate: birthYearsAgo(30)})
	require.NoError(t, err)

	// Present fields survive untouched.
	assert.Equal(t, 85, res.EstimatedAgeYears)
	assert.Equal(t, "Excellent markers.", res.Analysis)

	// Absent fields are defaulted independently.
	assert.Equal(t, []string{"Maintain a balanced diet.", "Exercise regularly.", "Get enough sleep."}, res.HealthTips)
	require.Len(t, res.LifeStages, 3)
	assert.Equal(t, "Wisdom", res.LifeStages[2].Name)
	assert.Equal(t, 85, res.LifeStages[2].EndAge, "final canonical stage extends to the estimated age")
}

func TestEstimate_EmptyMilestonesSubstitutedNotMerged(t *testing.T) {
	client := &fakeClient{payload: &provider.Payload{EstimatedAge: intPtr(80)}}
	est := New(client, WithClock(fixedClock))

	res, err := est.Estimate(context.Background(), life.UserInput{BirthDate: birthYearsAgo(30)})
	require.NoError(t, err)

	want := len(milestone.FallbackBiological()) + len(milestone.Cultural())
	assert.Len(t, res.Milestones, want)

	var sawBiological bool
	for _, m := range res.Milestones {
		if m.Title == "Frontal Lobe Maturity" {
			sawBiological = true
		}
	}
	assert.True(t, sawBiological, "biological fallback set missing from aggregation")
}

func TestEstimate_ProviderMilestonesReplaceFallbackSet(t *testing.T) {
	client := &fakeClient{payload: &provider.Payload{
		EstimatedAge: intPtr(80),
		Milestones: []provider.MilestonePayload{
			{Age: 33, Title: "Career Shift"},
		},
	}}
	est := New(client, WithClock(fixedClock))

	res, err := est.Estimate(context.Background(), life.UserInput{BirthDate: birthYearsAgo(30)})
	require.NoError(t, err)

	var shift *life.Milestone
	for i := range res.Milestones {
		if res.Milestones[i].Title == "Frontal Lobe Maturity" {
			t.Fatal("fallback set must not be merged alongside provider milestones")
		}
		if res.Milestones[i].Title == "Career Shift" {
			shift = &res.Milestones[i]
		}
	}
	require.NotNil(t, shift)
	assert.Equal(t, milestone.PlaceholderGlyph, shift.Glyph, "glyphless provider milestone takes the placeholder")
}

func TestEstimate_CustomGoalsSortedIntoTimeline(t *testing.T) {
	client := &fakeClient{payload: &provider.Payload{EstimatedAge: intPtr(80)}}
	est := New(client, WithClock(fixedClock))

	res, err := est.Estimate(context.Background(), life.UserInput{
		BirthDate: birthYearsAgo(30),
		CustomMilestones: []life.CustomMilestone{
			{Title: "Climb Everest", AgeYears: 45, Glyph: "🏔"},
		},
	})
	require.NoError(t, err)

	require.True(t, sort.SliceIsSorted(res.Milestones, func(i, j int) bool {
		return res.Milestones[i].AgeYears < res.Milestones[j].AgeYears
	}), "milestone timeline must be sorted by age")

	everest := -1
	presbyopia := -1
	for i, m := range res.Milestones {
		switch m.Title {
		case "Climb Everest":
			everest = i
		case "Presbyopia":
			presbyopia = i
		}
	}
	require.GreaterOrEqual(t, everest, 0)
	require.GreaterOrEqual(t, presbyopia, 0)
	// Both land at age 45; the goal comes from the lowest-precedence source.
	assert.Greater(t, everest, presbyopia, "custom goal must sort after the equal-aged fallback milestone")
}

func TestEstimate_RequestCarriesDemographics(t *testing.T) {
	client := &fakeClient{payload: &provider.Payload{EstimatedAge: intPtr(80)}}
	est := New(client, WithClock(fixedClock))

	_, err := est.Estimate(context.Background(), life.UserInput{
		BirthDate:     birthYearsAgo(30),
		Gender:        life.GenderFemale,
		HeightCm:      170,
		ActivityLevel: life.ActivityActive,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, client.calls)
	assert.InDelta(t, 30, client.lastReq.CurrentAgeYears, 0.01)
	assert.Equal(t, "female", client.lastReq.Gender)
	assert.Equal(t, 170.0, client.lastReq.HeightCm)
	assert.Equal(t, "active", client.lastReq.ActivityLevel)
}

func TestApplyDefaults_StagePaletteCycles(t *testing.T) {
	stages := make([]provider.StagePayload, 6)
	for i := range stages {
		stages[i] = provider.StagePayload{Stage: "s", StartAge: i * 10, EndAge: i*10 + 9}
	}
	d := applyDefaults(&provider.Payload{EstimatedAge: intPtr(80), LifeStages: stages})

	require.Len(t, d.LifeStages, 6)
	assert.Equal(t, "#22d3ee", d.LifeStages[0].Color)
	assert.Equal(t, "#a78bfa", d.LifeStages[4].Color)
	assert.Equal(t, "#22d3ee", d.LifeStages[5].Color, "palette wraps after five stages")
}

func TestApplyDefaults_NonPositiveAge(t *testing.T) {
	d := applyDefaults(&provider.Payload{EstimatedAge: intPtr(0)})
	assert.Equal(t, FallbackAgeYears, d.EstimatedAgeYears)

	d = applyDefaults(&provider.Payload{EstimatedAge: intPtr(-3)})
	assert.Equal(t, FallbackAgeYears, d.EstimatedAgeYears)
}

func TestApplyDefaults_BlankAnalysis(t *testing.T) {
	d := applyDefaults(&provider.Payload{Analysis: strPtr("   ")})
	assert.Equal(t, "Based on general population averages.", d.Analysis)
}
