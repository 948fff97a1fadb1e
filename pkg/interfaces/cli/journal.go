package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/magliflex/planner/pkg/domain/entities"
)

func newJournalCommand(app func() *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Show and correct the warehouse movement journal",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			entries, err := a.Warehouse.Journal(a.User)
			if err != nil {
				return err
			}
			materials, err := a.MaterialRepo.GetAllMaterials()
			if err != nil {
				return err
			}
			index := make(map[entities.MaterialID]*entities.RawMaterial, len(materials))
			for _, m := range materials {
				index[m.ID] = m
			}
			a.Renderer.Journal(entries, index)
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <entry-id>",
		Short: "Delete a journal entry, reverting its stock effect",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			id := entities.JournalEntryID(args[0])
			if err := a.Warehouse.DeleteEntry(a.User, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "journal entry %s deleted\n", id)
			return nil
		},
	})
	return cmd
}

func newNotificationsCommand(app func() *App) *cobra.Command {
	return &cobra.Command{
		Use:   "notifications",
		Short: "Show stored notifications such as low-stock alerts",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			notifications, err := a.NotificationRepo.GetAllNotifications()
			if err != nil {
				return err
			}
			a.Renderer.Notifications(notifications)
			return nil
		},
	}
}
