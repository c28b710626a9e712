package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"lifeweeks/cmd/lifeweeks/ui"
	"lifeweeks/internal/grid"
	"lifeweeks/internal/life"
	"lifeweeks/internal/logging"
)

var (
	estBirthDate  string
	estEthnicity  string
	estGender     string
	estHeight     float64
	estWeight     float64
	estBPSys      float64
	estBPDia      float64
	estBloodSugar float64
	estActivity   string
	estGoals      []string
	estJSON       bool
	estWidth      int
)

// estimateCmd runs a single estimation and prints the dashboard and grid
// (or the raw result as JSON).
var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Run one estimation and print the life grid",
	Long: `Runs a single life-expectancy estimation and renders the result.

Custom goals are repeatable and use the form "title:age" or
"title:age:glyph":

  lifeweeks estimate --birth-date 1995-06-01 --goal "Climb Everest:45:🏔"`,
	RunE: runEstimate,
}

func init() {
	estimateCmd.Flags().StringVar(&estBirthDate, "birth-date", "", "birth date, YYYY-MM-DD (required)")
	estimateCmd.Flags().StringVar(&estEthnicity, "ethnicity", "", "ethnicity")
	estimateCmd.Flags().StringVar(&estGender, "gender", "", "male, female or other")
	estimateCmd.Flags().Float64Var(&estHeight, "height", 0, "height in cm")
	estimateCmd.Flags().Float64Var(&estWeight, "weight", 0, "weight in kg")
	estimateCmd.Flags().Float64Var(&estBPSys, "bp-sys", 0, "systolic blood pressure")
	estimateCmd.Flags().Float64Var(&estBPDia, "bp-dia", 0, "diastolic blood pressure")
	estimateCmd.Flags().Float64Var(&estBloodSugar, "blood-sugar", 0, "blood sugar in mg/dL")
	estimateCmd.Flags().StringVar(&estActivity, "activity", "", "sedentary, moderate, active or athlete")
	estimateCmd.Flags().StringArrayVar(&estGoals, "goal", nil, "custom milestone, \"title:age[:glyph]\" (repeatable)")
	estimateCmd.Flags().BoolVar(&estJSON, "json", false, "print the result as JSON")
	estimateCmd.Flags().IntVar(&estWidth, "width", 100, "render width for the summary")
	_ = estimateCmd.MarkFlagRequired("birth-date")
}

func runEstimate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	defer logging.Close()

	input, err := buildEstimateInput()
	if err != nil {
		return err
	}

	est, closeClient := newEstimator(cmd.Context(), cfg)
	defer closeClient()

	res, err := est.Estimate(cmd.Context(), input)
	if err != nil {
		return err
	}
	logger.Info("estimate complete",
		zap.Int("estimated_age", res.EstimatedAgeYears),
		zap.Int("weeks_lived", res.WeeksLived),
		zap.Int("weeks_remaining", res.RemainingWeeks))

	if estJSON {
		data, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	styles := ui.NewStyles(ui.ThemeFor(cfg.UI.Theme))
	fmt.Print(ui.RenderMarkdown(ui.SummaryMarkdown(res), estWidth))

	gridView := ui.NewGridView(styles)
	laid := grid.Layout(res)
	fmt.Println(gridView.Render(laid))
	fmt.Println(ui.RenderFooter(styles))
	return nil
}

// buildEstimateInput converts the command flags into a UserInput.
func buildEstimateInput() (life.UserInput, error) {
	var input life.UserInput

	birth, err := time.Parse("2006-01-02", estBirthDate)
	if err != nil {
		return input, fmt.Errorf("birth date must be YYYY-MM-DD: %w", err)
	}
	input.BirthDate = birth
	input.Ethnicity = estEthnicity
	input.Gender = life.Gender(strings.ToLower(estGender))
	input.HeightCm = estHeight
	input.WeightKg = estWeight
	input.BloodPressureSys = estBPSys
	input.BloodPressureDia = estBPDia
	input.BloodSugar = estBloodSugar
	input.ActivityLevel = life.ActivityLevel(strings.ToLower(estActivity))

	for _, raw := range estGoals {
		goal, err := parseGoal(raw)
		if err != nil {
			return input, err
		}
		input.CustomMilestones = append(input.CustomMilestones, goal)
	}
	return input, nil
}

// parseGoal parses "title:age" or "title:age:glyph".
func parseGoal(raw string) (life.CustomMilestone, error) {
	parts := strings.SplitN(raw, ":", 3)
	if len(parts) < 2 {
		return life.CustomMilestone{}, fmt.Errorf("goal %q must be \"title:age[:glyph]\"", raw)
	}
	age, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || age < 0 {
		return life.CustomMilestone{}, fmt.Errorf("goal %q has an invalid age", raw)
	}
	goal := life.CustomMilestone{
		Title:    strings.TrimSpace(parts[0]),
		AgeYears: age,
	}
	if len(parts) == 3 {
		goal.Glyph = strings.TrimSpace(parts[2])
	}
	return goal, nil
}
