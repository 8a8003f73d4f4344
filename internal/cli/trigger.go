package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lxkasmehl/runsync-dispatch/internal/ui"
)

func newTriggerCmd(a *app) *cobra.Command {
	var (
		password string
		open     bool
	)

	cmd := &cobra.Command{
		Use:   "trigger <task-type>",
		Short: "Start the workflow for a task type",
		Long: "Dispatch the configured workflow once with task_type and password inputs.\n" +
			"The password defaults to the saved one and is prompted for otherwise.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			taskType := args[0]

			a.checkTaskType(taskType)

			svc, err := a.service()
			if err != nil {
				return err
			}

			flagSet := cmd.Flags().Changed("password")

			result, err := svc.TriggerWith(ctx, taskType, func(ctx context.Context) (string, error) {
				return a.resolvePassword(ctx, flagSet, password)
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.SuccessStyle.Render(result.Message))
			fmt.Fprintf(out, "Follow the run at %s\n", ui.LinkStyle.Render(result.WorkflowURL))

			a.recordDispatch(svc.Target(), taskType)

			if open {
				if err := a.opts.OpenBrowser(result.WorkflowURL); err != nil {
					a.logger.Warn("failed to open browser", "url", result.WorkflowURL, "error", err)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&password, "password", "p", "", "password sent as the password input (default: saved password, then prompt)")
	cmd.Flags().BoolVar(&open, "open", false, "open the Actions page after a successful dispatch")

	return cmd
}
