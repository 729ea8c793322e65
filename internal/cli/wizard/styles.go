package wizard

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Wizard palette.
const (
	ColorPrimary   = "#13B9FD"
	ColorSecondary = "#02569B"
	ColorSuccess   = "#66BB6A"
	ColorError     = "#EF5350"
	ColorText      = "#ECEFF1"
	ColorMuted     = "#90A4AE"
	ColorBorder    = "#37474F"
)

// newWizardTheme creates the huh theme used by every form.
func newWizardTheme() *huh.Theme {
	t := huh.ThemeBase()

	primary := lipgloss.AdaptiveColor{Light: ColorSecondary, Dark: ColorPrimary}
	green := lipgloss.AdaptiveColor{Light: "#2E7D32", Dark: ColorSuccess}
	red := lipgloss.AdaptiveColor{Light: "#C62828", Dark: ColorError}
	text := lipgloss.AdaptiveColor{Light: "#263238", Dark: ColorText}
	muted := lipgloss.AdaptiveColor{Light: "#78909C", Dark: ColorMuted}
	border := lipgloss.AdaptiveColor{Light: "#CFD8DC", Dark: ColorBorder}

	t.Focused.Base = t.Focused.Base.BorderForeground(border)
	t.Focused.Card = t.Focused.Base
	t.Focused.Title = t.Focused.Title.Foreground(primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(red)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(red)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(primary).SetString("> ")
	t.Focused.Option = t.Focused.Option.Foreground(text)
	t.Focused.MultiSelectSelector = t.Focused.MultiSelectSelector.Foreground(primary)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(green)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(green).SetString("[x] ")
	t.Focused.UnselectedOption = t.Focused.UnselectedOption.Foreground(text)
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(muted).SetString("[ ] ")
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(primary)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(muted)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipgloss.HiddenBorder())
	t.Blurred.Card = t.Blurred.Base

	t.Group.Title = t.Focused.Title
	t.Group.Description = t.Focused.Description

	return t
}
