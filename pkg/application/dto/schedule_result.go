package dto

import (
	"time"

	"github.com/magliflex/planner/pkg/domain/entities"
)

// ForwardScheduleResult contains the complete output of a forward
// (piece-throughput) scheduling run
type ForwardScheduleResult struct {
	DailyWorkload         entities.DailyWorkload
	EstimatedDeliveryDate time.Time

	// Scheduled and Remaining account for every requested piece. Remaining
	// is non-zero only when the safety cap was hit; a partial schedule is
	// reported, never silently discarded.
	Scheduled entities.Quantity
	Remaining entities.Quantity

	// CapReached marks a degraded result: the iteration guard fired before
	// the full quantity could be scheduled and EstimatedDeliveryDate is the
	// last attempted date, not a real delivery commitment.
	CapReached bool

	Warnings []string
}

// BackwardScheduleResult contains the output of a backward (hour-budget)
// scheduling run. Department hours are aggregate totals for the whole lot;
// the hour-budget model does not distribute them day by day.
type BackwardScheduleResult struct {
	SuggestedStartDate time.Time

	// TotalWorkingDays = max over departments of their required days,
	// plus BufferDays of inter-department handoff.
	TotalWorkingDays int
	BufferDays       int

	DepartmentHours map[entities.DepartmentID]float64

	Warnings []string
}
