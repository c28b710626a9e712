package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"lifeweeks/cmd/lifeweeks/tui"
	"lifeweeks/cmd/lifeweeks/ui"
	"lifeweeks/internal/config"
	"lifeweeks/internal/estimator"
	"lifeweeks/internal/logging"
	"lifeweeks/internal/provider"
)

const version = "1.0.0"

var (
	// Global flags
	verbose    bool
	configPath string

	// Logger for non-interactive commands
	logger *zap.Logger
)

// rootCmd represents the base command. Run without arguments it starts the
// interactive onboarding form.
var rootCmd = &cobra.Command{
	Use:   "lifeweeks",
	Short: "lifeweeks - your life on a decade-by-week grid",
	Long: `lifeweeks renders a "life in weeks" visualization.

It collects demographic and biometric inputs, asks a generative-AI
estimation service for a life expectancy with narrative analysis, health
tips, life stages and milestones, then draws a decade-by-week grid with
life-stage colors and milestone markers.

Run without arguments to start the interactive interface.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip logger init for interactive mode (it has its own UI)
		if cmd.Use == "lifeweeks" && cmd.CalledAs() == "lifeweeks" {
			return nil
		}

		zapCfg := zap.NewProductionConfig()
		if verbose {
			zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zapCfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive(cmd.Context())
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the lifeweeks version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("lifeweeks %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.lifeweeks/config.yaml)")

	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig resolves the config path, loads it, and brings up the
// categorized debug logging.
func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	stateDir, err := config.StateDir()
	if err != nil {
		return nil, err
	}
	if err := logging.Initialize(stateDir, logging.Options{
		DebugMode:  cfg.Logging.DebugMode,
		Level:      cfg.Logging.Level,
		JSONFormat: cfg.Logging.JSONFormat,
	}); err != nil {
		return nil, err
	}

	logging.Boot("lifeweeks %s starting, config=%s", version, path)
	return cfg, nil
}

// newEstimator is the composition root: it builds the provider client from
// config and injects it into the façade. A missing or unusable credential
// degrades to the offline client so every run still renders via the
// fallback policy.
func newEstimator(ctx context.Context, cfg *config.Config) (*estimator.Estimator, func()) {
	closeFn := func() {}

	var client provider.Client
	if cfg.Provider.APIKey == "" {
		logging.BootWarn("no API key configured; estimates will use the fallback result")
		client = provider.Unavailable(errors.New("no API key configured"))
	} else {
		gemini, err := provider.NewGeminiClient(ctx, provider.GeminiConfig{
			APIKey:          cfg.Provider.APIKey,
			Model:           cfg.Provider.Model,
			Timeout:         cfg.Provider.TimeoutDuration(),
			MaxOutputTokens: int32(cfg.Provider.MaxOutputTokens),
		})
		if err != nil {
			logging.BootError("provider client unavailable: %v", err)
			client = provider.Unavailable(err)
		} else {
			client = gemini
			closeFn = func() { _ = gemini.Close() }
		}
	}

	return estimator.New(client), closeFn
}

// runInteractive launches the Bubble Tea interface.
func runInteractive(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	defer logging.Close()

	est, closeClient := newEstimator(ctx, cfg)
	defer closeClient()

	styles := ui.NewStyles(ui.ThemeFor(cfg.UI.Theme))
	program := tea.NewProgram(tui.New(est, styles), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("interactive session failed: %w", err)
	}
	return nil
}
