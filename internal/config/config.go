// Package config loads and persists lifeweeks configuration from a YAML
// file under the user's state directory, with environment overrides for
// the credential and model.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all lifeweeks configuration.
type Config struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	// Estimation provider settings
	Provider ProviderConfig `yaml:"provider"`

	// Terminal UI settings
	UI UIConfig `yaml:"ui"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// ProviderConfig configures the Gemini estimation client.
type ProviderConfig struct {
	APIKey          string `yaml:"api_key"`
	Model           string `yaml:"model"`
	Timeout         string `yaml:"timeout"`
	MaxOutputTokens int    `yaml:"max_output_tokens"`
}

// TimeoutDuration parses the configured timeout, falling back to two
// minutes on absent or malformed values.
func (p ProviderConfig) TimeoutDuration() time.Duration {
	d, err := time.ParseDuration(p.Timeout)
	if err != nil || d <= 0 {
		return 2 * time.Minute
	}
	return d
}

// UIConfig configures the terminal UI.
type UIConfig struct {
	Theme string `yaml:"theme"` // light, dark, auto
}

// LoggingConfig configures the categorized debug logging.
type LoggingConfig struct {
	DebugMode  bool   `yaml:"debug_mode"`
	Level      string `yaml:"level"` // debug, info, warn, error
	JSONFormat bool   `yaml:"json_format"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name:    "lifeweeks",
		Version: "1.0.0",
		Provider: ProviderConfig{
			Model:   "gemini-2.5-flash",
			Timeout: "2m",
		},
		UI: UIConfig{
			Theme: "auto",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// StateDir returns the per-user state directory (~/.lifeweeks), creating
// it if needed.
func StateDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot resolve home directory: %w", err)
	}
	dir := filepath.Join(home, ".lifeweeks")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create state directory: %w", err)
	}
	return dir, nil
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	dir, err := StateDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads configuration from path. A missing file is not an error: the
// defaults are returned. Environment overrides are applied either way.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

// Save writes the configuration to path.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides layers environment variables over the file values.
// GEMINI_API_KEY matches the credential name the Gemini tooling ecosystem
// uses; the LIFEWEEKS_* variants win when both are set.
func applyEnvOverrides(c *Config) {
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.Provider.APIKey = v
	}
	if v := os.Getenv("LIFEWEEKS_API_KEY"); v != "" {
		c.Provider.APIKey = v
	}
	if v := os.Getenv("LIFEWEEKS_MODEL"); v != "" {
		c.Provider.Model = v
	}
}
