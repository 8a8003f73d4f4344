package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newOpenCmd(a *app) *cobra.Command {
	var workflowPage bool

	cmd := &cobra.Command{
		Use:   "open",
		Short: "Open the repository's Actions page in the browser",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			target, err := a.target()
			if err != nil {
				return err
			}

			url := target.ActionsURL()
			if workflowPage {
				url = target.WorkflowURL()
			}

			fmt.Fprintln(cmd.OutOrStdout(), url)

			return a.opts.OpenBrowser(url)
		},
	}

	cmd.Flags().BoolVar(&workflowPage, "workflow", false, "open the page of the dispatched workflow instead")

	return cmd
}
