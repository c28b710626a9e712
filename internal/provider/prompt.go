package provider

import (
	"fmt"
	"strings"
)

// orUnspecified renders an optional string field for the prompt.
func orUnspecified(s string) string {
	if strings.TrimSpace(s) == "" {
		return "Not specified"
	}
	return s
}

// orUnknown renders an optional numeric field for the prompt.
func orUnknown(v float64) string {
	if v == 0 {
		return "?"
	}
	return fmt.Sprintf("%g", v)
}

// buildPrompt summarizes the request for the model and spells out the task,
// including the biological/sociological markers the response must cover.
func buildPrompt(req Request) string {
	var b strings.Builder

	b.WriteString("Based on the following user data, estimate life expectancy and map out significant biological, psychological, and sociological milestones.\n\n")
	b.WriteString("User Data:\n")
	fmt.Fprintf(&b, "- Current Age: %.1f years\n", req.CurrentAgeYears)
	fmt.Fprintf(&b, "- Ethnicity: %s\n", orUnspecified(req.Ethnicity))
	fmt.Fprintf(&b, "- Gender: %s\n", orUnspecified(req.Gender))
	fmt.Fprintf(&b, "- BMI Context: Height %scm, Weight %skg\n", orUnknown(req.HeightCm), orUnknown(req.WeightKg))
	fmt.Fprintf(&b, "- Blood Pressure: %s / %s\n", orUnknown(req.BloodPressureSys), orUnknown(req.BloodPressureDia))
	fmt.Fprintf(&b, "- Blood Sugar: %s mg/dL\n", orUnknown(req.BloodSugar))
	fmt.Fprintf(&b, "- Activity Level: %s\n", orUnspecified(req.ActivityLevel))

	b.WriteString(`
Task:
1. Estimate life expectancy (integer years) based on health factors.
2. Provide a short, insightful analysis (1 sentence).
3. Give 3 actionable, specific health tips.
4. Define life stages (Youth, Growth, Prime, Wisdom, Legacy).
5. IDENTIFY MILESTONES (ages are integers). You MUST include these SPECIFIC BIOLOGICAL/SOCIOLOGICAL MARKERS with their corresponding EMOJIS:
   - "Frontal Lobe Maturity" (Brain fully developed, ~25) -> 🧠
   - "Physical Peak" (Max strength/speed, ~27-30) -> 💪
   - "Bone Density Peak" (Peak skeletal mass, ~30) -> 🦴
   - "Sarcopenia Onset" (Muscle mass decline begins, usually ~30-40) -> 📉
   - "Fertility Changes" (Biological shifts, ~35-40) -> 🧬
   - "Presbyopia" (Need reading glasses, ~45) -> 👓
   - "Cognitive Decline Onset" (Processing speed slows, usually ~45-50) -> 🧩
   - "Parental Loss" (Statistical estimate of parents passing, ~50-65) -> 🕯️
   - "Empty Nest" (Kids leaving home, statistical estimate) -> 🐦
   - "Grandparenthood" (~55-65) -> 🍼
   - "Retirement" (~60-67) -> 🌅
   - "Peak Happiness" (U-curve upswing, ~70+) -> 😊

Return JSON only.
`)

	return b.String()
}
