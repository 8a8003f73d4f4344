// Package browser opens GitHub pages in the user's web browser.
package browser

import (
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/cli/safeexec"
)

// EnvLauncher names an explicit browser command, as gh does with GH_BROWSER.
const EnvLauncher = "RUNSYNC_BROWSER"

// execCommand is overridden in tests to avoid launching a browser.
var execCommand = func(name string, args ...string) cmdRunner {
	return exec.Command(name, args...)
}

var lookPath = safeexec.LookPath

type cmdRunner interface {
	Start() error
}

// Open opens target in the configured launcher or the platform default browser.
// Only http and https URLs are accepted.
func Open(target string) error {
	if err := validate(target); err != nil {
		return err
	}

	name, args, err := command(runtime.GOOS, launcher(), target)
	if err != nil {
		return err
	}

	if err := execCommand(name, args...).Start(); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}

	return nil
}

func launcher() string {
	for _, key := range []string{EnvLauncher, "BROWSER"} {
		if value := strings.TrimSpace(os.Getenv(key)); value != "" {
			return value
		}
	}

	return ""
}

func validate(target string) error {
	u, err := url.Parse(target)
	if err != nil {
		return fmt.Errorf("invalid URL %q: %w", target, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("refusing to open %q: only http and https URLs are supported", target)
	}

	if u.Host == "" {
		return fmt.Errorf("invalid URL %q: missing host", target)
	}

	return nil
}

// command returns the program and arguments that open target on goos.
func command(goos, custom, target string) (string, []string, error) {
	if custom != "" {
		fields := strings.Fields(custom)

		path, err := lookPath(fields[0])
		if err != nil {
			return "", nil, fmt.Errorf("browser launcher %q not found: %w", fields[0], err)
		}

		return path, append(fields[1:], target), nil
	}

	switch goos {
	case "darwin":
		return "open", []string{target}, nil
	case "windows":
		return "cmd", []string{"/c", "start", "", strings.ReplaceAll(target, "&", "^&")}, nil
	default:
		return "xdg-open", []string{target}, nil
	}
}
