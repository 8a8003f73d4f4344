package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lxkasmehl/runsync-dispatch/internal/ui"
)

var errPasswordMismatch = errors.New("password does not match")

func newPasswordCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "password",
		Short: "Manage the saved RunSync password",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "save <password|->",
			Short: "Save the password sent with each dispatch (use - to read it from stdin)",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				password, err := readSecretArg(cmd.InOrStdin(), args[0])
				if err != nil {
					return err
				}

				passwords, err := a.passwordStore()
				if err != nil {
					return err
				}

				if err := passwords.Save(password); err != nil {
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), ui.SuccessStyle.Render("Password saved."))

				return nil
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Remove the saved password",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				passwords, err := a.passwordStore()
				if err != nil {
					return err
				}

				passwords.Clear()
				fmt.Fprintln(cmd.OutOrStdout(), "Password cleared.")

				return nil
			},
		},
		&cobra.Command{
			Use:   "validate <candidate|->",
			Short: "Check a candidate against the saved password",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				candidate, err := readSecretArg(cmd.InOrStdin(), args[0])
				if err != nil {
					return err
				}

				passwords, err := a.passwordStore()
				if err != nil {
					return err
				}

				if !passwords.Validate(cmd.Context(), candidate) {
					return errPasswordMismatch
				}

				fmt.Fprintln(cmd.OutOrStdout(), ui.SuccessStyle.Render("Password matches."))

				return nil
			},
		},
	)

	return cmd
}
