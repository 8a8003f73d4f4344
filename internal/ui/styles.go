// Package ui holds the lipgloss styles shared by dialogs and command output.
package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/lxkasmehl/runsync-dispatch/internal/ui/theme"
)

// Styles for dialogs and command output.
var (
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	HelpStyle     lipgloss.Style
	NormalStyle   lipgloss.Style
	SuccessStyle  lipgloss.Style
	ErrorStyle    lipgloss.Style
	WarningStyle  lipgloss.Style
	LinkStyle     lipgloss.Style
	DialogStyle   lipgloss.Style
	HeaderStyle   lipgloss.Style
)

func init() {
	Apply(theme.Detect())
}

// Apply rebuilds every style from t.
func Apply(t theme.Theme) {
	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Primary)

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(t.Muted)

	HelpStyle = lipgloss.NewStyle().
		Foreground(t.SoftMuted)

	NormalStyle = lipgloss.NewStyle().
		Foreground(t.Text)

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent)

	ErrorStyle = lipgloss.NewStyle().
		Foreground(t.Error)

	WarningStyle = lipgloss.NewStyle().
		Foreground(t.Warning)

	LinkStyle = lipgloss.NewStyle().
		Underline(true).
		Foreground(t.Link)

	DialogStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Primary).
		Padding(1, 2)

	HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Secondary)
}

// ConclusionStyle picks a style for a workflow run status/conclusion pair.
func ConclusionStyle(status, conclusion string) lipgloss.Style {
	if status != "completed" {
		return WarningStyle
	}

	switch conclusion {
	case "success":
		return SuccessStyle
	case "failure", "cancelled", "timed_out":
		return ErrorStyle
	default:
		return SubtitleStyle
	}
}
