package cli

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    slog.Level
		wantErr bool
	}{
		{name: "default warn", raw: "", want: slog.LevelWarn},
		{name: "debug", raw: "debug", want: slog.LevelDebug},
		{name: "upper case", raw: " INFO ", want: slog.LevelInfo},
		{name: "warn", raw: "warn", want: slog.LevelWarn},
		{name: "warning alias", raw: "Warning", want: slog.LevelWarn},
		{name: "error", raw: "error", want: slog.LevelError},
		{name: "numeric", raw: "-4", want: slog.LevelDebug},
		{name: "invalid", raw: "verbose", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseLogLevel(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}

				return
			}

			if err != nil {
				t.Fatalf("parse level: %v", err)
			}

			if got != tt.want {
				t.Errorf("parseLogLevel(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestChooseLogLevel(t *testing.T) {
	tests := []struct {
		name                string
		flag, env, cfg      string
		wantRaw, wantOrigin string
	}{
		{name: "flag wins", flag: "debug", env: "error", cfg: "warn", wantRaw: "debug", wantOrigin: "flag"},
		{name: "env next", env: "warn", cfg: "info", wantRaw: "warn", wantOrigin: "env"},
		{name: "config last", cfg: "error", wantRaw: "error", wantOrigin: "config"},
		{name: "blank is skipped", flag: "  ", cfg: "info", wantRaw: "info", wantOrigin: "config"},
		{name: "nothing set", wantOrigin: "default"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := chooseLogLevel(tt.flag, tt.env, tt.cfg)
			if got.raw != tt.wantRaw || got.origin != tt.wantOrigin {
				t.Errorf("chooseLogLevel() = %+v, want raw=%q origin=%q", got, tt.wantRaw, tt.wantOrigin)
			}
		})
	}
}

func TestSetupLogger(t *testing.T) {
	t.Run("flag overrides invalid env", func(t *testing.T) {
		t.Setenv(logLevelEnvKey, "invalid")

		_, warning, err := setupLogger(&bytes.Buffer{}, "debug", "info")
		if err != nil {
			t.Fatalf("setup logger: %v", err)
		}

		if warning != "" {
			t.Errorf("expected no warning, got %q", warning)
		}
	})

	t.Run("invalid flag returns error", func(t *testing.T) {
		t.Setenv(logLevelEnvKey, "")

		if _, _, err := setupLogger(&bytes.Buffer{}, "verbose", ""); err == nil {
			t.Fatal("expected error for invalid flag")
		}
	})

	t.Run("invalid env warns", func(t *testing.T) {
		t.Setenv(logLevelEnvKey, "loud")

		logger, warning, err := setupLogger(&bytes.Buffer{}, "", "")
		if err != nil {
			t.Fatalf("setup logger: %v", err)
		}

		if !strings.Contains(warning, logLevelEnvKey) {
			t.Errorf("expected env warning, got %q", warning)
		}

		if logger == nil {
			t.Error("expected a fallback logger")
		}
	})

	t.Run("invalid config warns", func(t *testing.T) {
		t.Setenv(logLevelEnvKey, "")

		_, warning, err := setupLogger(&bytes.Buffer{}, "", "chatty")
		if err != nil {
			t.Fatalf("setup logger: %v", err)
		}

		if !strings.Contains(warning, "log_level") {
			t.Errorf("expected config warning, got %q", warning)
		}
	})

	t.Run("writes to the given writer", func(t *testing.T) {
		t.Setenv(logLevelEnvKey, "")

		var buf bytes.Buffer

		logger, _, err := setupLogger(&buf, "debug", "")
		if err != nil {
			t.Fatalf("setup logger: %v", err)
		}

		logger.Debug("dispatching workflow", "workflow", "runsync.yml")

		if !strings.Contains(buf.String(), "runsync.yml") {
			t.Errorf("expected debug line, got %q", buf.String())
		}
	})
}

func TestNewLogger_RedactsSecrets(t *testing.T) {
	var buf bytes.Buffer

	logger := newLogger(&buf, slog.LevelDebug)
	logger.Debug("resolved credentials", "token", "ghp_abc123", "Password", "hunter2", "task_type", "sync")

	out := buf.String()
	if strings.Contains(out, "ghp_abc123") || strings.Contains(out, "hunter2") {
		t.Errorf("secret leaked into log output: %q", out)
	}

	if !strings.Contains(out, "task_type=sync") || !strings.Contains(out, redacted) {
		t.Errorf("unexpected log output: %q", out)
	}
}
