package provider

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestPayload_PartialJSON(t *testing.T) {
	raw := `{"estimatedAge": 82, "milestones": [{"age": 30, "title": "Physical Peak", "emoji": "💪"}]}`

	var p Payload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if p.EstimatedAge == nil || *p.EstimatedAge != 82 {
		t.Errorf("estimatedAge = %v, want 82", p.EstimatedAge)
	}
	if p.Analysis != nil {
		t.Errorf("absent analysis should stay nil, got %q", *p.Analysis)
	}
	if len(p.HealthTips) != 0 || len(p.LifeStages) != 0 {
		t.Errorf("absent lists should stay empty: %+v", p)
	}
	if len(p.Milestones) != 1 || p.Milestones[0].Glyph != "💪" {
		t.Errorf("milestone glyph not read from the emoji field: %+v", p.Milestones)
	}
}

func TestPayload_ZeroVersusAbsentAge(t *testing.T) {
	var p Payload
	if err := json.Unmarshal([]byte(`{"estimatedAge": 0}`), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if p.EstimatedAge == nil || *p.EstimatedAge != 0 {
		t.Errorf("explicit zero must be distinguishable from absent, got %v", p.EstimatedAge)
	}
}

func TestBuildPrompt(t *testing.T) {
	prompt := buildPrompt(Request{
		CurrentAgeYears: 30.5,
		Gender:          "female",
		HeightCm:        170,
	})

	for _, want := range []string{
		"Current Age: 30.5 years",
		"Gender: female",
		"Height 170cm",
		"Ethnicity: Not specified",
		"Weight ?kg",
		"Frontal Lobe Maturity",
		"Return JSON only.",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestUnavailable(t *testing.T) {
	cause := errors.New("no API key configured")
	client := Unavailable(cause)

	payload, err := client.Estimate(context.Background(), Request{CurrentAgeYears: 30})
	if payload != nil {
		t.Errorf("payload = %+v, want nil", payload)
	}
	if !errors.Is(err, cause) {
		t.Errorf("err = %v, want wrapped %v", err, cause)
	}
}
