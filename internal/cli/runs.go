package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

func newRunsCmd(a *app) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List the most recent workflow runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := a.service()
			if err != nil {
				return err
			}

			runs, err := svc.ListRecentRuns(cmd.Context())
			if err != nil {
				return err
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")

				return enc.Encode(runs)
			}

			return writeRuns(cmd.OutOrStdout(), runs)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output JSON")

	return cmd
}
