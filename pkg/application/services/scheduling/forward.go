package scheduling

import (
	"context"
	"fmt"
	"math"

	"github.com/rs/zerolog/log"

	"github.com/magliflex/planner/pkg/application/dto"
	"github.com/magliflex/planner/pkg/domain/entities"
	"github.com/magliflex/planner/pkg/domain/services/workcalendar"
)

// ScheduleForward walks the calendar day by day from the requested start
// date, producing the bottleneck capacity's worth of pieces on each working
// day until the full quantity is scheduled. Non-working days accumulate no
// workload. The walk is bounded by Config.MaxPlanningDays; hitting the cap
// returns a degraded result with the unscheduled remainder reported, never
// an error and never a silently truncated schedule.
func (s *Scheduler) ScheduleForward(ctx context.Context, req ForwardRequest) (*dto.ForwardScheduleResult, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid forward scheduling request: %w", err)
	}

	startDate := workcalendar.Normalize(req.StartDate)
	if !req.AllowPastStart && startDate.Before(referenceToday(req.Today)) {
		return nil, fmt.Errorf("start date %s cannot be in the past", workcalendar.DateKey(startDate))
	}

	snap, err := s.takeSnapshot()
	if err != nil {
		return nil, err
	}

	result := &dto.ForwardScheduleResult{
		DailyWorkload: make(entities.DailyWorkload),
	}

	// Capacity figures are static for the duration of the call, so the
	// bottleneck is the same on every day of the walk.
	bottleneck := s.bottleneckCapacity(req.Article, snap, &result.Warnings)

	assignments := make(map[entities.PhaseID]entities.MachineID, len(req.Article.Cycle))
	for _, step := range req.Article.Cycle {
		assignments[step.PhaseID] = assignMachine(step, snap.machines)
	}

	remaining := req.Quantity
	current := startDate
	if !snap.calendar.IsWorkingDay(current) {
		current = snap.calendar.NextWorkingDay(current)
	}

	for iteration := 0; remaining > 0; iteration++ {
		if iteration >= s.config.MaxPlanningDays {
			result.CapReached = true
			result.Warnings = append(result.Warnings, fmt.Sprintf(
				"scheduling exceeded the %d-day safety cap with %d of %d pieces unscheduled; delivery date is a degraded estimate",
				s.config.MaxPlanningDays, remaining, req.Quantity))
			log.Warn().
				Str("article", req.Article.Code).
				Int64("remaining", int64(remaining)).
				Msg("forward scheduling hit the safety cap")
			break
		}

		piecesToday := entities.Quantity(math.Floor(math.Min(float64(remaining), bottleneck)))
		if piecesToday > 0 {
			dateKey := workcalendar.DateKey(current)
			day := make(entities.DayLoad, len(req.Article.Cycle))
			for _, step := range req.Article.Cycle {
				day[step.PhaseID] = entities.PhaseLoad{
					Quantity: piecesToday,
					Machine:  assignments[step.PhaseID],
				}
			}
			result.DailyWorkload[dateKey] = day
			remaining -= piecesToday
		}

		if remaining <= 0 {
			break
		}
		current = snap.calendar.NextWorkingDay(current)
	}

	result.Scheduled = req.Quantity - remaining
	result.Remaining = remaining
	result.EstimatedDeliveryDate = current
	return result, nil
}
