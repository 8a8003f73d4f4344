// Package cli implements the runsync command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/lxkasmehl/runsync-dispatch/internal/browser"
	"github.com/lxkasmehl/runsync-dispatch/internal/credential"
	"github.com/lxkasmehl/runsync-dispatch/internal/kv"
	"github.com/lxkasmehl/runsync-dispatch/internal/runner"
)

// Alerter shows a blocking message.
type Alerter interface {
	Alert(ctx context.Context, title, message string) error
}

// Options carries the process streams and the collaborators commands use.
// Zero values select the real implementations.
type Options struct {
	Version string
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer

	Transport http.RoundTripper
	Prompter  credential.Prompter
	Alerter   Alerter

	// Durable and Session replace the configured credential storage.
	Durable kv.Store
	Session kv.Store

	HistoryPath    string
	OpenBrowser    func(url string) error
	WriteClipboard func(text string) error
	RunGH          func(ctx context.Context, out io.Writer, cfg runner.RunConfig, display string) error
	DetectRepo     func(host string) (string, error)
	WorkDir        string
}

// Execute runs the command line with the process arguments and returns the exit code.
func Execute(version string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return Run(ctx, Options{Version: version}, os.Args[1:])
}

// Run executes args and returns the exit code. Errors are written to opts.Stderr.
func Run(ctx context.Context, opts Options, args []string) int {
	a := newApp(opts)
	defer a.close()

	root := newRootCmd(a)
	root.SetArgs(args)

	if err := root.ExecuteContext(ctx); err != nil {
		for _, line := range formatCLIError(err) {
			fmt.Fprintln(a.opts.Stderr, line)
		}

		return 1
	}

	return 0
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runsync",
		Short: "Start RunSync workflow tasks on GitHub Actions",
		Long: "runsync dispatches the RunSync workflow with a task type and password,\n" +
			"and lists its most recent runs.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
	}

	cmd.Version = a.opts.Version
	cmd.SetIn(a.opts.Stdin)
	cmd.SetOut(a.opts.Stdout)
	cmd.SetErr(a.opts.Stderr)

	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default $RUNSYNC_CONFIG or ~/.config/runsync/config.yml)")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")

	cmd.AddCommand(
		newTriggerCmd(a),
		newRunsCmd(a),
		newTokenCmd(a),
		newPasswordCmd(a),
		newOpenCmd(a),
		newInstructionsCmd(a),
		newCommandCmd(a),
		newHistoryCmd(a),
	)

	return cmd
}

func (o Options) withDefaults() Options {
	if o.Stdin == nil {
		o.Stdin = os.Stdin
	}

	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}

	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}

	if o.OpenBrowser == nil {
		o.OpenBrowser = browser.Open
	}

	if o.WriteClipboard == nil {
		o.WriteClipboard = clipboard.WriteAll
	}

	if o.RunGH == nil {
		o.RunGH = runner.Execute
	}

	if o.DetectRepo == nil {
		o.DetectRepo = runner.DetectRepo
	}

	if o.WorkDir == "" {
		o.WorkDir = "."
	}

	if o.Version == "" {
		o.Version = "dev"
	}

	return o
}
