package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lxkasmehl/runsync-dispatch/internal/ui"
)

func newTokenCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Manage the saved GitHub token",
	}

	cmd.AddCommand(newTokenSaveCmd(a), newTokenClearCmd(a))

	return cmd
}

func newTokenSaveCmd(a *app) *cobra.Command {
	var session bool

	cmd := &cobra.Command{
		Use:   "save <token|->",
		Short: "Save a personal access token (use - to read it from stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := readSecretArg(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}

			tokens, err := a.tokenStore()
			if err != nil {
				return err
			}

			scope := "durable"
			if session {
				scope = "session"
				err = tokens.SaveSession(token)
			} else {
				err = tokens.Save(token)
			}

			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.SuccessStyle.Render(fmt.Sprintf("Token saved (%s).", scope)))

			return nil
		},
	}

	cmd.Flags().BoolVar(&session, "session", false, "keep the token only until logout")

	return cmd
}

func newTokenClearCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove the saved token from both durable and session storage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tokens, err := a.tokenStore()
			if err != nil {
				return err
			}

			tokens.Clear()
			fmt.Fprintln(cmd.OutOrStdout(), "Token cleared.")

			return nil
		},
	}
}

// readSecretArg returns arg, or the first line of in when arg is "-".
func readSecretArg(in io.Reader, arg string) (string, error) {
	if arg != "-" {
		return arg, nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read from stdin: %w", err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}
