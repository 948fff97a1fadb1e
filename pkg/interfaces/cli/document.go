package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/magliflex/planner/pkg/infrastructure/persistence"
	"github.com/magliflex/planner/pkg/infrastructure/seed"
)

func newSeedCommand(app func() *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Write the demo dataset to the data file",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			if _, err := os.Stat(a.Config.DataFile); err == nil && !force {
				return fmt.Errorf("%s already exists; rerun with --force to overwrite", a.Config.DataFile)
			}

			if err := a.Bridge.LoadDocument(seed.Document(time.Now())); err != nil {
				return err
			}
			// Compute the derived fields the raw dataset leaves empty.
			if err := a.Planning.RecalculateAll(cmd.Context()); err != nil {
				return err
			}
			if err := a.Bridge.Commit(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "demo dataset written to %s\n", a.Config.DataFile)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing data file")
	return cmd
}

func newImportCommand(app func() *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <legacy.json>",
		Short: "Import a document exported by the browser-era tool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()

			raw, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			migrated, err := persistence.MigrateLegacy(raw)
			if err != nil {
				return err
			}
			var doc persistence.Document
			if err := json.Unmarshal(migrated, &doc); err != nil {
				return fmt.Errorf("migrated document does not decode: %w", err)
			}

			if err := a.Bridge.LoadDocument(&doc); err != nil {
				return err
			}
			if err := a.Planning.RecalculateAll(cmd.Context()); err != nil {
				return err
			}
			if err := a.Bridge.Commit(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %s into %s\n", args[0], a.Config.DataFile)
			return nil
		},
	}
	return cmd
}
