package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/lxkasmehl/runsync-dispatch/internal/config"
)

const logLevelEnvKey = "RUNSYNC_LOG_LEVEL"

// redacted replaces the value of any log attribute that could carry a credential.
const redacted = "[redacted]"

var secretAttrKeys = map[string]bool{
	"token":         true,
	"password":      true,
	"authorization": true,
}

// levelChoice is the raw log level together with where it came from.
type levelChoice struct {
	raw    string
	origin string
}

// chooseLogLevel picks the first non-blank level: --log-level, then RUNSYNC_LOG_LEVEL, then log_level.
func chooseLogLevel(flagLevel, envLevel, configLevel string) levelChoice {
	candidates := []levelChoice{
		{raw: flagLevel, origin: "flag"},
		{raw: envLevel, origin: "env"},
		{raw: configLevel, origin: "config"},
	}

	for _, c := range candidates {
		if strings.TrimSpace(c.raw) != "" {
			return c
		}
	}

	return levelChoice{origin: "default"}
}

// setupLogger installs the default slog logger writing to w. A bad --log-level is an error;
// a bad env or config value falls back to the default level and yields a warning line.
func setupLogger(w io.Writer, flagLevel, configLevel string) (*slog.Logger, string, error) {
	envLevel := os.Getenv(logLevelEnvKey)
	choice := chooseLogLevel(flagLevel, envLevel, configLevel)

	level, err := parseLogLevel(choice.raw)
	if err == nil {
		return installLogger(w, level), "", nil
	}

	var warning string

	switch choice.origin {
	case "flag":
		return nil, "", fmt.Errorf("invalid --log-level %q (expected debug, info, warn or error)", flagLevel)
	case "env":
		warning = fmt.Sprintf("warning: ignoring %s=%q; using %s", logLevelEnvKey, envLevel, config.DefaultLogLevel)
	case "config":
		warning = fmt.Sprintf("warning: ignoring log_level %q from the config file; using %s", configLevel, config.DefaultLogLevel)
	}

	fallback, _ := parseLogLevel("")

	return installLogger(w, fallback), warning, nil
}

func parseLogLevel(raw string) (slog.Level, error) {
	value := strings.ToLower(strings.TrimSpace(raw))

	switch value {
	case "":
		value = config.DefaultLogLevel
	case "warning":
		value = "warn"
	}

	if numeric, err := strconv.Atoi(value); err == nil {
		return slog.Level(numeric), nil
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(value)); err != nil {
		return slog.LevelWarn, fmt.Errorf("invalid log level %q", raw)
	}

	return level, nil
}

func installLogger(w io.Writer, level slog.Level) *slog.Logger {
	logger := newLogger(w, level)
	slog.SetDefault(logger)

	return logger
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: redactSecrets,
	}))
}

func redactSecrets(_ []string, attr slog.Attr) slog.Attr {
	if secretAttrKeys[strings.ToLower(attr.Key)] {
		return slog.String(attr.Key, redacted)
	}

	return attr
}
