// Package ui provides the visual styling for the metrodesk terminal
// dashboard, with light/dark mode support.
package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. Semantic status colors are shared between modes so the
// fleet badges read the same everywhere.
var (
	// Light mode
	LightBackground = lipgloss.Color("#f4f6f8")
	LightForeground = lipgloss.Color("#0f2436")
	LightPrimary    = lipgloss.Color("#0f5e63") // Metro teal
	LightAccent     = lipgloss.Color("#1a8a91")
	LightSecondary  = lipgloss.Color("#dfe6ec")
	LightMuted      = lipgloss.Color("#7a8b99")
	LightBorder     = lipgloss.Color("#cdd7df")
	LightCard       = lipgloss.Color("#ffffff")

	// Dark mode
	DarkBackground = lipgloss.Color("#10181f")
	DarkForeground = lipgloss.Color("#e8eef2")
	DarkPrimary    = lipgloss.Color("#35b5bd")
	DarkAccent     = lipgloss.Color("#1a8a91")
	DarkSecondary  = lipgloss.Color("#1b2836")
	DarkMuted      = lipgloss.Color("#5d7282")
	DarkBorder     = lipgloss.Color("#2a3a48")
	DarkCard       = lipgloss.Color("#16222d")

	// Semantic colors (same in both modes)
	StatusReady       = lipgloss.Color("#43a047") // green
	StatusMaintenance = lipgloss.Color("#fb8c00") // amber
	StatusAlert       = lipgloss.Color("#e53935") // red
	Info              = lipgloss.Color("#2196f3")
)

// Theme holds the current color scheme.
type Theme struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Secondary  lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Card       lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme.
func LightTheme() Theme {
	return Theme{
		Background: LightBackground,
		Foreground: LightForeground,
		Primary:    LightPrimary,
		Accent:     LightAccent,
		Secondary:  LightSecondary,
		Muted:      LightMuted,
		Border:     LightBorder,
		Card:       LightCard,
		IsDark:     false,
	}
}

// DarkTheme returns the dark mode theme.
func DarkTheme() Theme {
	return Theme{
		Background: DarkBackground,
		Foreground: DarkForeground,
		Primary:    DarkPrimary,
		Accent:     DarkAccent,
		Secondary:  DarkSecondary,
		Muted:      DarkMuted,
		Border:     DarkBorder,
		Card:       DarkCard,
		IsDark:     true,
	}
}

// ThemeByName resolves a configured theme name; "auto" and unknown names
// fall back to terminal detection.
func ThemeByName(name string) Theme {
	switch name {
	case "light":
		return LightTheme()
	case "dark":
		return DarkTheme()
	default:
		return DetectTheme()
	}
}

// DetectTheme guesses the terminal background from COLORFGBG, defaulting
// to dark.
func DetectTheme() Theme {
	if v := os.Getenv("COLORFGBG"); v != "" {
		// Format is "foreground;background"; ANSI indices 0-6 and 8 are
		// dark backgrounds.
		parts := strings.Split(v, ";")
		if len(parts) == 2 {
			if bg, err := strconv.Atoi(parts[1]); err == nil {
				if bg == 7 || (bg >= 9 && bg <= 15) {
					return LightTheme()
				}
			}
		}
	}
	return DarkTheme()
}

// Styles holds all the styled components used by the dashboard.
type Styles struct {
	Theme Theme

	// Layout
	Header  lipgloss.Style
	Content lipgloss.Style
	Sidebar lipgloss.Style
	Card    lipgloss.Style

	// Text
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Bold     lipgloss.Style

	// Interactive
	Prompt      lipgloss.Style
	UserInput   lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	// Status
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	// Components
	Spinner lipgloss.Style
	Divider lipgloss.Style
	Badge   lipgloss.Style
}

// NewStyles creates a Styles instance for the given theme.
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,

		Header: lipgloss.NewStyle().
			Background(theme.Primary).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 2).
			Bold(true),

		Content: lipgloss.NewStyle().
			Padding(1, 2),

		Sidebar: lipgloss.NewStyle().
			Padding(1, 2).
			BorderRight(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(theme.Border),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			MarginBottom(1),

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

		Prompt: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true),

		UserInput: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		TabActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(theme.Accent).
			Padding(0, 1).
			Bold(true),

		TabInactive: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 1),

		Success: lipgloss.NewStyle().
			Foreground(StatusReady).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(StatusAlert).
			Bold(true),

		Warning: lipgloss.NewStyle().
			Foreground(StatusMaintenance).
			Bold(true),

		Info: lipgloss.NewStyle().
			Foreground(Info),

		Spinner: lipgloss.NewStyle().
			Foreground(theme.Accent),

		Divider: lipgloss.NewStyle().
			Foreground(theme.Border),

		Badge: lipgloss.NewStyle().
			Background(theme.Accent).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 1).
			Bold(true),
	}
}

// DefaultStyles returns styles with the auto-detected theme.
func DefaultStyles() Styles {
	return NewStyles(DetectTheme())
}

// StatusStyle returns the badge style for a fleet status color.
func StatusStyle(color lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(color).
		Foreground(lipgloss.Color("#ffffff")).
		Padding(0, 1).
		Bold(true)
}

// RenderDivider returns a horizontal divider of the given width.
func (s Styles) RenderDivider(width int) string {
	if width <= 0 {
		return ""
	}
	return s.Divider.Render(strings.Repeat("─", width))
}
