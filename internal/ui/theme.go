// Package ui provides terminal presentation helpers: color theme, TTY
// detection and the write progress display with a plain-text fallback.
package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Colors holds the hex palette used across the CLI.
type Colors struct {
	Primary   string
	Secondary string
	Success   string
	Warning   string
	Error     string
	Muted     string
}

// Theme is the shared visual configuration.
type Theme struct {
	Colors  Colors
	NoColor bool
}

// NewTheme returns the default theme. NO_COLOR disables color output.
func NewTheme() *Theme {
	return &Theme{
		Colors: Colors{
			Primary:   "#02569B",
			Secondary: "#13B9FD",
			Success:   "#2E7D32",
			Warning:   "#F9A825",
			Error:     "#C62828",
			Muted:     "#78909C",
		},
		NoColor: os.Getenv("NO_COLOR") != "",
	}
}

// Style returns a foreground style for hex, or a plain style when color is off.
func (t *Theme) Style(hex string) lipgloss.Style {
	if t.NoColor || hex == "" {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
}
