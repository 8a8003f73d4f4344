package cli

import (
	"context"
	"errors"
	"net/http"

	rserr "github.com/lxkasmehl/runsync-dispatch/internal/errors"
)

func formatCLIError(err error) []string {
	if err == nil {
		return nil
	}

	lines := []string{"error: " + err.Error()}

	if rserr.IsCredentialMissing(err) {
		lines = append(lines,
			"hint: save a token with: runsync token save <token>",
			"hint: the token needs the repo and workflow scopes and must start with ghp_.",
		)
		return uniqueLines(lines)
	}

	// Runs failures stay generic.
	var runsErr *rserr.RunsError
	if errors.As(err, &runsErr) {
		return uniqueLines(append(lines, "hint: rerun with --log-level debug for details."))
	}

	var rejection *rserr.RemoteRejectionError
	if errors.As(err, &rejection) {
		switch rejection.StatusCode {
		case http.StatusUnauthorized:
			lines = append(lines, "hint: the token was rejected; it may be expired or revoked. Run: runsync token clear")
		case http.StatusForbidden:
			lines = append(lines, "hint: the token lacks permission; it needs the workflow scope.")
		case http.StatusNotFound:
			lines = append(lines, "hint: check repository and workflow in your config, and that the token can see the repository.")
		case http.StatusUnprocessableEntity:
			lines = append(lines, "hint: check that the ref exists and the workflow accepts task_type and password inputs.")
		}
		return uniqueLines(lines)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return uniqueLines(append(lines, "hint: request timed out; increase http_timeout in the config."))
	}

	var netErr *rserr.NetworkError
	if errors.As(err, &netErr) {
		lines = append(lines, "hint: check your network connection and api_url in the config.")
	}

	return uniqueLines(lines)
}

func uniqueLines(lines []string) []string {
	seen := make(map[string]struct{}, len(lines))
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if line == "" {
			continue
		}
		if _, ok := seen[line]; ok {
			continue
		}
		seen[line] = struct{}{}
		out = append(out, line)
	}
	return out
}
