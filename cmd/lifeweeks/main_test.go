package main

import (
	"testing"

	"lifeweeks/internal/life"
)

func TestParseGoal(t *testing.T) {
	tests := []struct {
		raw     string
		want    life.CustomMilestone
		wantErr bool
	}{
		{raw: "Climb Everest:45", want: life.CustomMilestone{Title: "Climb Everest", AgeYears: 45}},
		{raw: "Climb Everest:45:🏔", want: life.CustomMilestone{Title: "Climb Everest", AgeYears: 45, Glyph: "🏔"}},
		{raw: "Retire early: 55 ", want: life.CustomMilestone{Title: "Retire early", AgeYears: 55}},
		{raw: "no age", wantErr: true},
		{raw: "bad age:soon", wantErr: true},
		{raw: "negative:-3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := parseGoal(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseGoal(%q) accepted, want error", tt.raw)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseGoal(%q): %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("parseGoal(%q) = %+v, want %+v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestBuildEstimateInput(t *testing.T) {
	estBirthDate = "1995-06-01"
	estGender = "Female"
	estActivity = "ACTIVE"
	estHeight = 170
	estGoals = []string{"Climb Everest:45:🏔"}
	t.Cleanup(func() {
		estBirthDate, estGender, estActivity = "", "", ""
		estHeight = 0
		estGoals = nil
	})

	input, err := buildEstimateInput()
	if err != nil {
		t.Fatalf("buildEstimateInput: %v", err)
	}

	if input.Gender != life.GenderFemale {
		t.Errorf("gender = %q, want normalized %q", input.Gender, life.GenderFemale)
	}
	if input.ActivityLevel != life.ActivityActive {
		t.Errorf("activity = %q, want normalized %q", input.ActivityLevel, life.ActivityActive)
	}
	if len(input.CustomMilestones) != 1 || input.CustomMilestones[0].Glyph != "🏔" {
		t.Errorf("custom milestones = %+v", input.CustomMilestones)
	}
}
