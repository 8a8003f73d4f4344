package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/lxkasmehl/runsync-dispatch/internal/history"
)

func newHistoryCmd(a *app) *cobra.Command {
	var (
		jsonOutput bool
		limit      int
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List previously dispatched task types, most used first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			owner, repo, err := a.repository()
			if err != nil {
				return err
			}

			store, err := history.LoadFrom(a.historyPath())
			if err != nil {
				return err
			}

			entries := store.TopForRepo(owner+"/"+repo, a.cfg.Workflow, limit)

			if jsonOutput {
				if entries == nil {
					entries = []history.Entry{}
				}

				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")

				return enc.Encode(entries)
			}

			return writeHistory(cmd.OutOrStdout(), entries)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output JSON")
	cmd.Flags().IntVar(&limit, "limit", 10, "maximum number of entries (0 for all)")

	return cmd
}
