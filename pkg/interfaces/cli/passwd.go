package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPasswdCommand(app func() *App) *cobra.Command {
	var (
		current     string
		newPassword string
	)
	cmd := &cobra.Command{
		Use:   "passwd",
		Short: "Change the acting user's password",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			user, err := a.Auth.Authenticate(a.User.Username, current)
			if err != nil {
				return err
			}
			if err := a.Auth.ChangePassword(user.ID, newPassword); err != nil {
				return err
			}
			if err := a.Bridge.Commit(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "password changed for %s\n", user.Username)
			return nil
		},
	}
	cmd.Flags().StringVar(&current, "current", "", "current password")
	cmd.Flags().StringVar(&newPassword, "new", "", "new password")
	_ = cmd.MarkFlagRequired("current")
	_ = cmd.MarkFlagRequired("new")
	return cmd
}
