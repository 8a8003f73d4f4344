package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines semantic color roles for dialogs and output.
type Theme struct {
	Primary   lipgloss.Color // Mauve - titles, dialog borders
	Secondary lipgloss.Color // Subtext0 - table headers
	Accent    lipgloss.Color // Green - success
	Muted     lipgloss.Color // Overlay2 - descriptions
	SoftMuted lipgloss.Color // Overlay1 - help text
	Text      lipgloss.Color // Text - normal text
	Error     lipgloss.Color // Red - error messages
	Warning   lipgloss.Color // Peach - warnings, runs in progress
	Link      lipgloss.Color // Blue - URLs and links
}

// Latte returns the Catppuccin Latte (light) theme.
func Latte() Theme {
	return Theme{
		Primary:   lipgloss.Color("#8839ef"),
		Secondary: lipgloss.Color("#6c6f85"),
		Accent:    lipgloss.Color("#40a02b"),
		Muted:     lipgloss.Color("#7c7f93"),
		SoftMuted: lipgloss.Color("#8c8fa1"),
		Text:      lipgloss.Color("#4c4f69"),
		Error:     lipgloss.Color("#d20f39"),
		Warning:   lipgloss.Color("#fe640b"),
		Link:      lipgloss.Color("#1e66f5"),
	}
}

// Macchiato returns the Catppuccin Macchiato (medium-dark) theme.
func Macchiato() Theme {
	return Theme{
		Primary:   lipgloss.Color("#c6a0f6"),
		Secondary: lipgloss.Color("#a5adcb"),
		Accent:    lipgloss.Color("#a6da95"),
		Muted:     lipgloss.Color("#939ab7"),
		SoftMuted: lipgloss.Color("#8087a2"),
		Text:      lipgloss.Color("#cad3f5"),
		Error:     lipgloss.Color("#ed8796"),
		Warning:   lipgloss.Color("#f5a97f"),
		Link:      lipgloss.Color("#8aadf4"),
	}
}
