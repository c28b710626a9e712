package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"lifeweeks/internal/life"
)

const birthDateLayout = "2006-01-02"

// parseInput converts the form fields into a UserInput. Only the birth
// date is required; blank numeric fields stay zero ("not specified").
func (m Model) parseInput() (life.UserInput, error) {
	var input life.UserInput

	raw := strings.TrimSpace(m.inputs[fieldBirthDate].Value())
	if raw == "" {
		return input, life.ErrMissingBirthDate
	}
	birth, err := time.Parse(birthDateLayout, raw)
	if err != nil {
		return input, fmt.Errorf("birth date must be YYYY-MM-DD: %w", err)
	}
	input.BirthDate = birth

	input.Ethnicity = strings.TrimSpace(m.inputs[fieldEthnicity].Value())
	input.Gender = life.Gender(strings.ToLower(strings.TrimSpace(m.inputs[fieldGender].Value())))
	input.ActivityLevel = life.ActivityLevel(strings.ToLower(strings.TrimSpace(m.inputs[fieldActivity].Value())))

	numeric := []struct {
		field int
		dst   *float64
		name  string
	}{
		{fieldHeight, &input.HeightCm, "height"},
		{fieldWeight, &input.WeightKg, "weight"},
		{fieldBPSys, &input.BloodPressureSys, "systolic blood pressure"},
		{fieldBPDia, &input.BloodPressureDia, "diastolic blood pressure"},
		{fieldBloodSugar, &input.BloodSugar, "blood sugar"},
	}
	for _, n := range numeric {
		raw := strings.TrimSpace(m.inputs[n.field].Value())
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			return input, fmt.Errorf("%s must be a non-negative number", n.name)
		}
		*n.dst = v
	}

	input.CustomMilestones = m.goals
	return input, nil
}

// addGoal appends the goal sub-form to the milestone list and clears it.
// Invalid entries are reported like any other input error.
func (m Model) addGoal() Model {
	title := strings.TrimSpace(m.inputs[fieldGoalTitle].Value())
	rawAge := strings.TrimSpace(m.inputs[fieldGoalAge].Value())
	if title == "" || rawAge == "" {
		m.inputErr = fmt.Errorf("a goal needs a title and an age")
		return m
	}
	age, err := strconv.Atoi(rawAge)
	if err != nil || age < 0 {
		m.inputErr = life.ErrNegativeGoalAge
		return m
	}

	m.goals = append(m.goals, life.CustomMilestone{
		Title:    title,
		AgeYears: age,
		Glyph:    strings.TrimSpace(m.inputs[fieldGoalGlyph].Value()),
	})
	m.inputs[fieldGoalTitle].Reset()
	m.inputs[fieldGoalAge].Reset()
	m.inputs[fieldGoalGlyph].Reset()
	m.inputErr = nil
	return m
}

// estimateCmd runs the estimation off the update loop. The estimator fails
// closed, so the only error that can come back is an input error.
func (m Model) estimateCmd(input life.UserInput) tea.Cmd {
	est := m.est
	return func() tea.Msg {
		res, err := est.Estimate(context.Background(), input)
		if err != nil {
			return inputErrMsg{err: err}
		}
		return estimateDoneMsg{result: res}
	}
}
