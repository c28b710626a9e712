// Package ui provides the terminal rendering for lifeweeks: lipgloss
// styling plus the week-grid and dashboard views. Purely presentational;
// all state comes in through the result and grid types.
package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Ink-and-paper palette carried over from the product's visual identity.
var (
	LightBackground = lipgloss.Color("#fafaf9") // paper
	LightForeground = lipgloss.Color("#1C1917") // ink
	LightMuted      = lipgloss.Color("#a8a29e")
	LightBorder     = lipgloss.Color("#e7e5e4")

	DarkBackground = lipgloss.Color("#1C1917")
	DarkForeground = lipgloss.Color("#fafaf9")
	DarkMuted      = lipgloss.Color("#78716c")
	DarkBorder     = lipgloss.Color("#44403c")

	// Semantic colors
	Destructive = lipgloss.Color("#e53935")
	Highlight   = lipgloss.Color("#facc15")
)

// Theme holds the current color scheme.
type Theme struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme.
func LightTheme() Theme {
	return Theme{
		Background: LightBackground,
		Foreground: LightForeground,
		Muted:      LightMuted,
		Border:     LightBorder,
	}
}

// DarkTheme returns the dark mode theme.
func DarkTheme() Theme {
	return Theme{
		Background: DarkBackground,
		Foreground: DarkForeground,
		Muted:      DarkMuted,
		Border:     DarkBorder,
		IsDark:     true,
	}
}

// ThemeFor resolves a configured theme name; "auto" falls back to terminal
// detection.
func ThemeFor(name string) Theme {
	switch name {
	case "light":
		return LightTheme()
	case "dark":
		return DarkTheme()
	default:
		return DetectTheme()
	}
}

// DetectTheme auto-detects dark mode from COLORFGBG, defaulting to light.
func DetectTheme() Theme {
	if colorTerm := os.Getenv("COLORFGBG"); colorTerm != "" {
		parts := strings.Split(colorTerm, ";")
		if len(parts) == 2 {
			if bgIdx, err := strconv.Atoi(parts[1]); err == nil {
				if (bgIdx >= 0 && bgIdx <= 6) || bgIdx == 8 {
					return DarkTheme()
				}
			}
		}
	}
	return LightTheme()
}

// Styles holds the styled components used across views.
type Styles struct {
	Theme Theme

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Bold     lipgloss.Style

	StatLabel lipgloss.Style
	StatValue lipgloss.Style
	Quote     lipgloss.Style
	Tip       lipgloss.Style

	SectionHeader lipgloss.Style
	LegendItem    lipgloss.Style
	AgeGutter     lipgloss.Style
	Disclaimer    lipgloss.Style

	Error   lipgloss.Style
	Spinner lipgloss.Style
	Prompt  lipgloss.Style
	Card    lipgloss.Style
}

// NewStyles creates a Styles instance for the given theme.
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,

		Title: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		Subtitle: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Italic(true),

		Body: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Bold: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		StatLabel: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Transform(strings.ToUpper),

		StatValue: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		Quote: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Italic(true).
			PaddingLeft(2),

		Tip: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			PaddingLeft(2),

		SectionHeader: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Bold(true).
			Transform(strings.ToUpper).
			MarginTop(1),

		LegendItem: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		AgeGutter: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Width(4).
			Align(lipgloss.Right).
			MarginRight(1),

		Disclaimer: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Italic(true).
			Width(78),

		Error: lipgloss.NewStyle().
			Foreground(Destructive).
			Bold(true),

		Spinner: lipgloss.NewStyle().
			Foreground(Highlight),

		Prompt: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(1, 2),
	}
}
