package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/magliflex/planner/pkg/application/services/planning"
	"github.com/magliflex/planner/pkg/domain/entities"
	"github.com/magliflex/planner/pkg/domain/services/workcalendar"
)

func newPlanCommand(app func() *App) *cobra.Command {
	var (
		articleID string
		quantity  int64
		start     string
		delivery  string
		lotType   string
		priority  string
		notes     string
		override  bool
		save      bool
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Schedule a production or sample lot",
		Long: `Schedule a lot for an article. Give --start for forward scheduling
(when will it be done?) or --delivery for backward scheduling (when must
production start?). The result is discarded unless --save is set.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()

			req := planning.CalculateRequest{
				User:      a.User,
				ArticleID: entities.ArticleID(articleID),
				Quantity:  entities.Quantity(quantity),
				Type:      entities.LotType(lotType),
				Priority:  entities.Priority(priority),
				Notes:     notes,
				Override:  override,
			}
			if start != "" {
				t, err := workcalendar.ParseDate(start)
				if err != nil {
					return fmt.Errorf("invalid --start: %w", err)
				}
				req.StartDate = t
			}
			if delivery != "" {
				t, err := workcalendar.ParseDate(delivery)
				if err != nil {
					return fmt.Errorf("invalid --delivery: %w", err)
				}
				req.DeliveryDate = t
			}

			draft, err := a.Planning.Calculate(cmd.Context(), req)
			var shortage *planning.ShortageError
			if errors.As(err, &shortage) {
				a.Renderer.Shortages(shortage.Shortages)
				return fmt.Errorf("rerun with --override to plan despite the shortage")
			}
			if err != nil {
				return err
			}

			if draft.Forward != nil {
				a.Renderer.ForwardSchedule(draft.Lot, draft.Forward)
			} else {
				a.Renderer.BackwardSchedule(draft.Lot, draft.Backward)
			}
			if len(draft.Shortages) > 0 {
				a.Renderer.Shortages(draft.Shortages)
			}

			if !save {
				fmt.Fprintln(cmd.OutOrStdout(), "(draft only; rerun with --save to keep it)")
				return nil
			}
			lot, err := a.Planning.Save(cmd.Context(), a.User, draft)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "lot %s saved\n", lot.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&articleID, "article", "", "article id")
	cmd.Flags().Int64Var(&quantity, "qty", 0, "quantity in pieces")
	cmd.Flags().StringVar(&start, "start", "", "start date (YYYY-MM-DD) for forward scheduling")
	cmd.Flags().StringVar(&delivery, "delivery", "", "delivery date (YYYY-MM-DD) for backward scheduling")
	cmd.Flags().StringVar(&lotType, "type", string(entities.LotProduction), "lot type: production or sample")
	cmd.Flags().StringVar(&priority, "priority", string(entities.PriorityMedium), "priority: high, medium or low")
	cmd.Flags().StringVar(&notes, "notes", "", "free-form note")
	cmd.Flags().BoolVar(&override, "override", false, "plan despite a raw-material shortage")
	cmd.Flags().BoolVar(&save, "save", false, "persist the lot")
	_ = cmd.MarkFlagRequired("article")
	_ = cmd.MarkFlagRequired("qty")

	return cmd
}
