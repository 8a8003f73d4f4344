// Package theme holds the light and dark palettes used for terminal output.
package theme

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// EnvTheme forces a palette: light, dark, or auto.
const EnvTheme = "RUNSYNC_THEME"

// Select maps a palette name to a Theme. Unknown names and "auto" follow darkBackground.
func Select(name string, darkBackground bool) Theme {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "light", "latte":
		return Latte()
	case "dark", "macchiato":
		return Macchiato()
	}

	if darkBackground {
		return Macchiato()
	}

	return Latte()
}

// Detect picks the palette from RUNSYNC_THEME, querying the terminal background only when needed.
func Detect() Theme {
	name := os.Getenv(EnvTheme)

	switch strings.ToLower(strings.TrimSpace(name)) {
	case "light", "latte", "dark", "macchiato":
		return Select(name, false)
	}

	return Select(name, lipgloss.HasDarkBackground())
}
