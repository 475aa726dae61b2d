package styles

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Theme defines the color palette for UI components
type Theme struct {
	Primary color.Color // titles
	Accent  color.Color // selected items, fuzzy matches
	Success color.Color
	Error   color.Color
	Muted   color.Color // hints, skipped worktrees
	Normal  color.Color
	Warning color.Color // dirty worktrees
}

var (
	// DefaultTheme is the default color scheme
	DefaultTheme = Theme{
		Primary: lipgloss.Color("62"),  // cyan/teal
		Accent:  lipgloss.Color("212"), // pink/magenta
		Success: lipgloss.Color("82"),  // green
		Error:   lipgloss.Color("196"), // red
		Muted:   lipgloss.Color("240"), // dark gray
		Normal:  lipgloss.Color("252"), // light gray
		Warning: lipgloss.Color("214"), // orange
	}

	// DraculaTheme is based on the Dracula color scheme
	DraculaTheme = Theme{
		Primary: lipgloss.Color("#bd93f9"),
		Accent:  lipgloss.Color("#ff79c6"),
		Success: lipgloss.Color("#50fa7b"),
		Error:   lipgloss.Color("#ff5555"),
		Muted:   lipgloss.Color("#6272a4"),
		Normal:  lipgloss.Color("#f8f8f2"),
		Warning: lipgloss.Color("#ffb86c"),
	}

	// NordTheme is based on the Nord color scheme
	NordTheme = Theme{
		Primary: lipgloss.Color("#88c0d0"),
		Accent:  lipgloss.Color("#b48ead"),
		Success: lipgloss.Color("#a3be8c"),
		Error:   lipgloss.Color("#bf616a"),
		Muted:   lipgloss.Color("#4c566a"),
		Normal:  lipgloss.Color("#eceff4"),
		Warning: lipgloss.Color("#ebcb8b"),
	}

	// NoneTheme renders without any colors (uses terminal defaults).
	// Formatting (bold/underline) is preserved.
	NoneTheme = Theme{
		Primary: lipgloss.NoColor{},
		Accent:  lipgloss.NoColor{},
		Success: lipgloss.NoColor{},
		Error:   lipgloss.NoColor{},
		Muted:   lipgloss.NoColor{},
		Normal:  lipgloss.NoColor{},
		Warning: lipgloss.NoColor{},
	}
)

var themes = map[string]Theme{
	"default": DefaultTheme,
	"dracula": DraculaTheme,
	"nord":    NordTheme,
	"none":    NoneTheme,
}

var currentTheme = DefaultTheme

// Current returns the current theme
func Current() Theme {
	return currentTheme
}

// Init activates the named theme. Unknown and empty names select the
// default theme. Call this after loading config and before any UI is shown.
func Init(name string) {
	theme, ok := themes[name]
	if !ok {
		theme = DefaultTheme
	}
	currentTheme = theme
	applyTheme(theme)
}

// applyTheme updates all global style variables to use the given theme
func applyTheme(t Theme) {
	Primary = t.Primary
	Accent = t.Accent
	Success = t.Success
	Error = t.Error
	Muted = t.Muted
	Normal = t.Normal
	Warning = t.Warning

	AccentStyle = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	SuccessStyle = lipgloss.NewStyle().Foreground(t.Success)
	ErrorStyle = lipgloss.NewStyle().Foreground(t.Error)
	MutedStyle = lipgloss.NewStyle().Foreground(t.Muted)
	NormalStyle = lipgloss.NewStyle().Foreground(t.Normal)
	WarningStyle = lipgloss.NewStyle().Foreground(t.Warning)

	HighlightStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true).
		Underline(true)
}
