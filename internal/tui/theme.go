// Package tui provides terminal themes, styles, and the request
// spinner used by the webtools command.
package tui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds the color values for terminal output.
type Theme struct {
	Name string

	Accent    lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Dim       lipgloss.Color
	Border    lipgloss.Color
}

// DarkTheme is the default dark terminal theme.
var DarkTheme = Theme{
	Name:      "dark",
	Accent:    lipgloss.Color("#38bdf8"),
	Success:   lipgloss.Color("#22c55e"),
	Warning:   lipgloss.Color("#eab308"),
	Error:     lipgloss.Color("#ef4444"),
	Primary:   lipgloss.Color("#e0e0e8"),
	Secondary: lipgloss.Color("#888888"),
	Dim:       lipgloss.Color("#5a5a70"),
	Border:    lipgloss.Color("#2a2a3a"),
}

// LightTheme is the light terminal theme.
var LightTheme = Theme{
	Name:      "light",
	Accent:    lipgloss.Color("#0369a1"),
	Success:   lipgloss.Color("#15803d"),
	Warning:   lipgloss.Color("#a16207"),
	Error:     lipgloss.Color("#b91c1c"),
	Primary:   lipgloss.Color("#0f172a"),
	Secondary: lipgloss.Color("#374151"),
	Dim:       lipgloss.Color("#4b5563"),
	Border:    lipgloss.Color("#d1d5db"),
}

// Detect returns the theme selected by flag, env, or terminal
// heuristics, in that order.
func Detect(flagVal string) Theme {
	// 1. --theme flag
	switch strings.ToLower(flagVal) {
	case "dark":
		return DarkTheme
	case "light":
		return LightTheme
	}

	// 2. WEBTOOLS_THEME env
	if env := os.Getenv("WEBTOOLS_THEME"); env != "" {
		switch strings.ToLower(env) {
		case "dark":
			return DarkTheme
		case "light":
			return LightTheme
		}
	}

	// 3. COLORFGBG heuristic (format: "fg;bg")
	if colorfgbg := os.Getenv("COLORFGBG"); colorfgbg != "" {
		parts := strings.Split(colorfgbg, ";")
		if len(parts) >= 2 {
			bg := parts[len(parts)-1]
			// bg 7 and 15 are the usual light backgrounds
			if bg == "15" || bg == "7" {
				return LightTheme
			}
		}
	}

	// 4. Default to dark
	return DarkTheme
}

// StyleSet contains pre-computed lipgloss styles derived from a theme.
type StyleSet struct {
	Theme Theme

	Title    lipgloss.Style
	URL      lipgloss.Style
	Snippet  lipgloss.Style
	Meta     lipgloss.Style
	ErrTxt   lipgloss.Style
	Success  lipgloss.Style
	Key      lipgloss.Style
	Value    lipgloss.Style
	Answer   lipgloss.Style
	ListItem lipgloss.Style
}

// NewStyleSet creates a StyleSet from a theme.
func NewStyleSet(theme Theme) *StyleSet {
	return &StyleSet{
		Theme: theme,

		Title:   lipgloss.NewStyle().Foreground(theme.Primary).Bold(true),
		URL:     lipgloss.NewStyle().Foreground(theme.Accent),
		Snippet: lipgloss.NewStyle().Foreground(theme.Secondary),
		Meta:    lipgloss.NewStyle().Foreground(theme.Dim),
		ErrTxt:  lipgloss.NewStyle().Foreground(theme.Error),
		Success: lipgloss.NewStyle().Foreground(theme.Success),

		Key: lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Width(14),
		Value: lipgloss.NewStyle().
			Foreground(theme.Primary),

		Answer: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		ListItem: lipgloss.NewStyle().
			Foreground(theme.Primary),
	}
}
