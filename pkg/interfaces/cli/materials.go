package cli

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/magliflex/planner/pkg/domain/entities"
	"github.com/magliflex/planner/pkg/domain/services/bomcheck"
)

func newMaterialsCommand(app func() *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "materials",
		Short: "Raw-material stock operations",
	}

	var (
		articleID string
		quantity  int64
	)
	check := &cobra.Command{
		Use:   "check",
		Short: "Check stock sufficiency for a hypothetical lot",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			article, err := a.ArticleRepo.GetArticle(entities.ArticleID(articleID))
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
			result := bomcheck.Check(article, entities.Quantity(quantity), index)
			a.Renderer.Shortages(result.Shortages)
			return nil
		},
	}
	check.Flags().StringVar(&articleID, "article", "", "article id")
	check.Flags().Int64Var(&quantity, "qty", 0, "quantity in pieces")
	_ = check.MarkFlagRequired("article")
	_ = check.MarkFlagRequired("qty")

	stock := &cobra.Command{
		Use:   "stock",
		Short: "List current stock levels",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			materials, err := a.MaterialRepo.GetAllMaterials()
			if err != nil {
				return err
			}
			for _, m := range materials {
				fmt.Fprintf(cmd.OutOrStdout(), "%-30s %10s %s\n", m.Name, m.CurrentStock, m.Unit)
			}
			return nil
		},
	}

	var (
		loadMaterial string
		loadQty      string
		loadRef      string
	)
	load := &cobra.Command{
		Use:   "load",
		Short: "Receive stock and record a load entry in the journal",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			qty, err := decimal.NewFromString(loadQty)
			if err != nil {
				return fmt.Errorf("invalid --qty: %w", err)
			}
			entry, err := a.Warehouse.Load(a.User, entities.MaterialID(loadMaterial), qty, loadRef)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "load entry %s recorded\n", entry.ID)
			return nil
		},
	}
	load.Flags().StringVar(&loadMaterial, "material", "", "material id")
	load.Flags().StringVar(&loadQty, "qty", "", "quantity received")
	load.Flags().StringVar(&loadRef, "ref", "", "supplier or document reference")
	_ = load.MarkFlagRequired("material")
	_ = load.MarkFlagRequired("qty")

	var (
		consumeEntry string
		consumeQty   string
	)
	consume := &cobra.Command{
		Use:   "consume",
		Short: "Register the actual consumption against a load entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			qty, err := decimal.NewFromString(consumeQty)
			if err != nil {
				return fmt.Errorf("invalid --qty: %w", err)
			}
			unload, err := a.Warehouse.RegisterConsumption(a.User, entities.JournalEntryID(consumeEntry), qty)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "consumption registered, unload entry %s\n", unload.ID)
			return nil
		},
	}
	consume.Flags().StringVar(&consumeEntry, "entry", "", "load entry id")
	consume.Flags().StringVar(&consumeQty, "qty", "", "quantity actually consumed")
	_ = consume.MarkFlagRequired("entry")
	_ = consume.MarkFlagRequired("qty")

	cmd.AddCommand(check, stock, load, consume)
	return cmd
}
