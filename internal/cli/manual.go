package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lxkasmehl/runsync-dispatch/internal/config"
	"github.com/lxkasmehl/runsync-dispatch/internal/runner"
	"github.com/lxkasmehl/runsync-dispatch/internal/ui"
	"github.com/lxkasmehl/runsync-dispatch/internal/workflow"
)

func newInstructionsCmd(a *app) *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "instructions <task-type>",
		Short: "Show the steps to start the workflow by hand",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			target, err := a.target()
			if err != nil {
				return err
			}

			pw, err := a.resolvePassword(ctx, cmd.Flags().Changed("password"), password)
			if err != nil {
				return err
			}

			manual := runner.Manual{
				ActionsURL: target.ActionsURL(),
				TaskType:   args[0],
				Password:   pw,
			}

			if wf := a.localWorkflow(); wf != nil {
				manual.WorkflowName = wf.Name
			}

			return a.opts.Alerter.Alert(ctx, "Manual workflow run", runner.Instructions(manual))
		},
	}

	cmd.Flags().StringVarP(&password, "password", "p", "", "password to show in the steps (default: saved password, then prompt)")

	return cmd
}

func newCommandCmd(a *app) *cobra.Command {
	var (
		password string
		copyCmd  bool
		run      bool
	)

	cmd := &cobra.Command{
		Use:   "command <task-type>",
		Short: "Print the gh CLI command that starts the workflow",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			pw, err := a.resolvePassword(ctx, cmd.Flags().Changed("password"), password)
			if err != nil {
				return err
			}

			rc := runner.RunConfig{
				Workflow: a.cfg.Workflow,
				Ref:      a.cfg.Ref,
				Inputs: map[string]string{
					workflow.TaskTypeInput: args[0],
					workflow.PasswordInput: pw,
				},
			}

			if a.cfg.Repository != config.AutoRepository {
				rc.Repo = a.cfg.Repository
			}

			masked := rc
			masked.Inputs = runner.MaskInputs(rc.Inputs, workflow.PasswordInput)

			switch {
			case run:
				return a.opts.RunGH(ctx, out, rc, runner.DryRun(masked))
			case copyCmd:
				if err := a.opts.WriteClipboard(runner.DryRun(rc)); err != nil {
					return fmt.Errorf("failed to copy to clipboard: %w", err)
				}

				fmt.Fprintln(out, runner.DryRun(masked))
				fmt.Fprintln(out, ui.SuccessStyle.Render("Copied to clipboard."))
			default:
				fmt.Fprintln(out, runner.DryRun(rc))
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&password, "password", "p", "", "password input (default: saved password, then prompt)")
	cmd.Flags().BoolVar(&copyCmd, "copy", false, "copy the command to the clipboard instead of printing it")
	cmd.Flags().BoolVar(&run, "run", false, "run the command with the gh CLI")

	return cmd
}
