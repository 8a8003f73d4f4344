package kv

import (
	"fmt"
	"os"
	"path/filepath"
)

const appDir = "runsync"

// DurablePath returns the default location of the durable credential file.
func DurablePath(filename string) string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appDir, filename)
	}

	home, _ := os.UserHomeDir()

	return filepath.Join(home, ".config", appDir, filename)
}

// SessionPath returns the default location of the session-scoped credential file.
// XDG_RUNTIME_DIR is cleared at logout; without it a per-user temp directory is used.
func SessionPath() string {
	if xdg := os.Getenv("XDG_RUNTIME_DIR"); xdg != "" {
		return filepath.Join(xdg, appDir, "session.json")
	}

	return filepath.Join(os.TempDir(), fmt.Sprintf("%s-%d", appDir, os.Getuid()), "session.json")
}
