package tui

import (
	"errors"
	"testing"
	"time"

	"lifeweeks/cmd/lifeweeks/ui"
	"lifeweeks/internal/estimator"
	"lifeweeks/internal/life"
	"lifeweeks/internal/provider"
)

func testModel(t *testing.T) Model {
	t.Helper()
	est := estimator.New(provider.Unavailable(errors.New("offline")))
	return New(est, ui.NewStyles(ui.LightTheme()))
}

func TestParseInput_BirthDateRequired(t *testing.T) {
	m := testModel(t)

	_, err := m.parseInput()
	if !errors.Is(err, life.ErrMissingBirthDate) {
		t.Errorf("err = %v, want ErrMissingBirthDate", err)
	}

	m.inputs[fieldBirthDate].SetValue("not-a-date")
	if _, err := m.parseInput(); err == nil {
		t.Error("malformed birth date accepted")
	}
}

func TestParseInput_BlankNumericsStayZero(t *testing.T) {
	m := testModel(t)
	m.inputs[fieldBirthDate].SetValue("1995-06-01")
	m.inputs[fieldHeight].SetValue("170")

	input, err := m.parseInput()
	if err != nil {
		t.Fatalf("parseInput: %v", err)
	}

	want, _ := time.Parse(birthDateLayout, "1995-06-01")
	if !input.BirthDate.Equal(want) {
		t.Errorf("birth date = %v, want %v", input.BirthDate, want)
	}
	if input.HeightCm != 170 {
		t.Errorf("height = %v, want 170", input.HeightCm)
	}
	if input.WeightKg != 0 || input.BloodSugar != 0 {
		t.Errorf("blank numerics must stay zero: %+v", input)
	}
}

func TestParseInput_RejectsNegativeNumeric(t *testing.T) {
	m := testModel(t)
	m.inputs[fieldBirthDate].SetValue("1995-06-01")
	m.inputs[fieldWeight].SetValue("-70")

	if _, err := m.parseInput(); err == nil {
		t.Error("negative weight accepted")
	}
}

func TestAddGoal(t *testing.T) {
	m := testModel(t)

	m.inputs[fieldGoalTitle].SetValue("Climb Everest")
	m.inputs[fieldGoalAge].SetValue("45")
	m.inputs[fieldGoalGlyph].SetValue("🏔")
	m = m.addGoal()

	if m.inputErr != nil {
		t.Fatalf("addGoal: %v", m.inputErr)
	}
	if len(m.goals) != 1 {
		t.Fatalf("goals = %d, want 1", len(m.goals))
	}
	got := m.goals[0]
	if got.Title != "Climb Everest" || got.AgeYears != 45 || got.Glyph != "🏔" {
		t.Errorf("goal = %+v", got)
	}
	if m.inputs[fieldGoalTitle].Value() != "" {
		t.Error("goal sub-form not cleared after adding")
	}
}

func TestAddGoal_Invalid(t *testing.T) {
	m := testModel(t)

	// Missing age.
	m.inputs[fieldGoalTitle].SetValue("Sail the Atlantic")
	m = m.addGoal()
	if m.inputErr == nil || len(m.goals) != 0 {
		t.Errorf("goal without age accepted: err=%v goals=%d", m.inputErr, len(m.goals))
	}

	// Negative age.
	m.inputs[fieldGoalAge].SetValue("-1")
	m = m.addGoal()
	if !errors.Is(m.inputErr, life.ErrNegativeGoalAge) {
		t.Errorf("err = %v, want ErrNegativeGoalAge", m.inputErr)
	}
}
