// Package styles provides shared lipgloss styles for UI components.
//
// This package centralizes color definitions and styling to ensure
// visual consistency across the static and prompt packages.
package styles

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Colors of the active theme. See [Init].
var (
	Primary color.Color = DefaultTheme.Primary
	Accent  color.Color = DefaultTheme.Accent
	Success color.Color = DefaultTheme.Success
	Error   color.Color = DefaultTheme.Error
	Muted   color.Color = DefaultTheme.Muted
	Normal  color.Color = DefaultTheme.Normal
	Warning color.Color = DefaultTheme.Warning
)

// Common styles
var (
	// Bold applies bold formatting
	Bold = lipgloss.NewStyle().Bold(true)

	// AccentStyle applies the accent color with bold
	AccentStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().Foreground(Success)
	ErrorStyle   = lipgloss.NewStyle().Foreground(Error)
	MutedStyle   = lipgloss.NewStyle().Foreground(Muted)
	NormalStyle  = lipgloss.NewStyle().Foreground(Normal)

	// WarningStyle marks worktrees with local changes
	WarningStyle = lipgloss.NewStyle().Foreground(Warning)

	// HighlightStyle for highlighting matched characters (bold, underline)
	HighlightStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true).
			Underline(true)
)
