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

// ScheduleBackward computes when production must start to hit a requested
// delivery date under the hour-budget model. Every routing step's labour
// content (hours per unit x quantity) accrues against its department; the
// department needing the most working days dictates the span, plus a fixed
// handoff buffer of ceil(steps / HandoffDivisor) working days. The walk
// then counts working days backward from the delivery date, inclusive.
//
// Hours are reported as one aggregate per department for the whole lot;
// day-by-day distribution is a display concern handled by the workload
// calendar, not part of this contract.
func (s *Scheduler) ScheduleBackward(ctx context.Context, req BackwardRequest) (*dto.BackwardScheduleResult, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid backward scheduling request: %w", err)
	}

	deliveryDate := workcalendar.Normalize(req.DeliveryDate)
	if !req.AllowPastDelivery && deliveryDate.Before(referenceToday(req.Today)) {
		return nil, fmt.Errorf("delivery date %s cannot be in the past", workcalendar.DateKey(deliveryDate))
	}

	snap, err := s.takeSnapshot()
	if err != nil {
		return nil, err
	}

	result := &dto.BackwardScheduleResult{
		DepartmentHours: make(map[entities.DepartmentID]float64),
	}

	for _, step := range req.Article.Cycle {
		if step.HoursPerUnit <= 0 {
			phaseName := string(step.PhaseID)
			if phase, ok := snap.phases[step.PhaseID]; ok {
				phaseName = phase.Name
			}
			warn := fmt.Sprintf("cycle step for phase %q has no hours-per-unit duration; it contributes no hour budget", phaseName)
			log.Warn().Str("phase", phaseName).Msg("cycle step has no duration for hour-budget scheduling")
			result.Warnings = append(result.Warnings, warn)
			continue
		}

		departmentID, ok := snap.departmentForStep(step)
		if !ok {
			warn := fmt.Sprintf("no department covers phase %s; its hours are not budgeted", step.PhaseID)
			log.Warn().Str("phase", string(step.PhaseID)).Msg("no department covers cycle step phase")
			result.Warnings = append(result.Warnings, warn)
			continue
		}

		result.DepartmentHours[departmentID] += step.HoursPerUnit * float64(req.Quantity)
	}

	maxDepartmentDays := 0
	for _, hours := range result.DepartmentHours {
		days := int(math.Ceil(hours / s.config.DepartmentDayHours))
		if days > maxDepartmentDays {
			maxDepartmentDays = days
		}
	}

	result.BufferDays = int(math.Ceil(float64(len(req.Article.Cycle)) / float64(s.config.HandoffDivisor)))
	result.TotalWorkingDays = maxDepartmentDays + result.BufferDays

	// Walk backward from the delivery date, counting only working days,
	// with the delivery date itself counting when it is a working day.
	current := deliveryDate
	counted := 0
	for counted < result.TotalWorkingDays {
		if snap.calendar.IsWorkingDay(current) {
			counted++
			if counted == result.TotalWorkingDays {
				break
			}
		}
		current = workcalendar.AddDays(current, -1)
	}
	result.SuggestedStartDate = current

	return result, nil
}
