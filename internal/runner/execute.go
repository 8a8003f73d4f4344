package runner

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	gh "github.com/cli/go-gh/v2"
)

// RunConfig holds the configuration for running a workflow through the gh CLI.
type RunConfig struct {
	Repo     string
	Workflow string
	Ref      string
	Inputs   map[string]string
}

// BuildArgs constructs the gh workflow run arguments. Inputs are emitted in
// key order and empty values are skipped.
func BuildArgs(cfg RunConfig) []string {
	args := []string{"workflow", "run", cfg.Workflow}

	if cfg.Repo != "" {
		args = append(args, "--repo", cfg.Repo)
	}

	if cfg.Ref != "" {
		args = append(args, "--ref", cfg.Ref)
	}

	keys := make([]string, 0, len(cfg.Inputs))
	for k := range cfg.Inputs {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	for _, k := range keys {
		if v := cfg.Inputs[k]; v != "" {
			args = append(args, "-f", k+"="+v)
		}
	}

	return args
}

// FormatCommand returns a human-readable command string.
func FormatCommand(args []string) string {
	quoted := make([]string, len(args))
	for i, arg := range args {
		if strings.ContainsAny(arg, " \t\"'$`\\") {
			quoted[i] = fmt.Sprintf("%q", arg)
		} else {
			quoted[i] = arg
		}
	}

	return "gh " + strings.Join(quoted, " ")
}

// DryRun returns the command that would be executed without running it.
func DryRun(cfg RunConfig) string {
	return FormatCommand(BuildArgs(cfg))
}

var execInteractive = gh.ExecInteractive

// Execute runs the workflow using the gh CLI, printing the command first.
func Execute(ctx context.Context, out io.Writer, cfg RunConfig, display string) error {
	args := BuildArgs(cfg)

	fmt.Fprintln(out, "Running command:")
	fmt.Fprintln(out, "  "+display)
	fmt.Fprintln(out)

	if err := execInteractive(ctx, args...); err != nil {
		return fmt.Errorf("gh workflow run failed: %w", err)
	}

	return nil
}
