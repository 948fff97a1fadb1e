package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/magliflex/planner/pkg/domain/entities"
)

func newLotsCommand(app func() *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lots",
		Short: "List and manage planned lots",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			lots, err := a.PlanRepo.GetAllLots()
			if err != nil {
				return err
			}
			a.Renderer.Lots(lots)
			return nil
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "complete <lot-id>",
			Short: "Mark a lot completed",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				a := app()
				id := entities.LotID(args[0])
				if err := a.Planning.Complete(cmd.Context(), a.User, id); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "lot %s completed\n", id)
				return nil
			},
		},
		&cobra.Command{
			Use:   "delete <lot-id>",
			Short: "Delete a lot",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				a := app()
				id := entities.LotID(args[0])
				if err := a.Planning.Delete(cmd.Context(), a.User, id); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "lot %s deleted\n", id)
				return nil
			},
		},
	)
	return cmd
}
