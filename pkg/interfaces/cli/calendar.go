package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/magliflex/planner/pkg/domain/services/workcalendar"
)

func newCalendarCommand(app func() *App) *cobra.Command {
	var week string

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Weekly delivery and workload calendars",
	}
	cmd.PersistentFlags().StringVar(&week, "week", "", "any date (YYYY-MM-DD) inside the week to show; default this week")

	// anchorDate resolves the --week flag, falling back to the anchor the
	// document remembers from the last session, then to today.
	anchorDate := func(remembered string) (time.Time, error) {
		if week != "" {
			return workcalendar.ParseDate(week)
		}
		if remembered != "" {
			if t, err := workcalendar.ParseDate(remembered); err == nil {
				return t, nil
			}
		}
		return workcalendar.Normalize(time.Now()), nil
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "delivery",
			Short: "Lots by delivery date",
			RunE: func(cmd *cobra.Command, args []string) error {
				a := app()
				anchor, err := anchorDate(a.Bridge.DeliveryWeekStart)
				if err != nil {
					return fmt.Errorf("invalid --week: %w", err)
				}
				view, err := a.Views.DeliveryWeek(anchor)
				if err != nil {
					return err
				}
				a.Renderer.DeliveryWeek(view)
				a.Bridge.DeliveryWeekStart = workcalendar.DateKey(view.WeekStart)
				return a.Bridge.Commit()
			},
		},
		&cobra.Command{
			Use:   "workload",
			Short: "Per-department workload",
			RunE: func(cmd *cobra.Command, args []string) error {
				a := app()
				anchor, err := anchorDate(a.Bridge.WorkloadWeekStart)
				if err != nil {
					return fmt.Errorf("invalid --week: %w", err)
				}
				view, err := a.Views.WorkloadWeek(anchor)
				if err != nil {
					return err
				}
				a.Renderer.WorkloadWeek(view)
				a.Bridge.WorkloadWeekStart = workcalendar.DateKey(view.WeekStart)
				return a.Bridge.Commit()
			},
		},
	)
	return cmd
}
