package entities

import "fmt"

// LotID identifies a planning lot
type LotID string

// LotType distinguishes production runs from samples
type LotType string

const (
	LotProduction LotType = "production"
	LotSample     LotType = "sample"
)

// Valid reports whether the lot type is one of the known values
func (t LotType) Valid() bool {
	return t == LotProduction || t == LotSample
}

// Priority is the scheduling priority of a lot
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Valid reports whether the priority is one of the known values
func (p Priority) Valid() bool {
	return p == PriorityHigh || p == PriorityMedium || p == PriorityLow
}

// LotStatus is the lifecycle state of a saved lot. Completed is terminal:
// the legacy application offers no way back to pending and neither do we.
type LotStatus string

const (
	StatusPending   LotStatus = "pending"
	StatusCompleted LotStatus = "completed"
)

// PhaseLoad is one phase's share of a day's workload
type PhaseLoad struct {
	Quantity Quantity  `json:"quantity"`
	Machine  MachineID `json:"machine"`
}

// DayLoad maps phase to its load for one date
type DayLoad map[PhaseID]PhaseLoad

// DailyWorkload maps ISO dates (YYYY-MM-DD) to the day's per-phase load
type DailyWorkload map[string]DayLoad

// Lot represents a saved production or sample planning lot. Dates are ISO
// YYYY-MM-DD strings in storage form; computation happens on time.Time.
type Lot struct {
	ID        LotID     `json:"id"`
	ArticleID ArticleID `json:"articleId"`
	Quantity  Quantity  `json:"quantity"`
	Type      LotType   `json:"type"`
	Priority  Priority  `json:"priority"`

	// StartDate is given for forward-scheduled lots,
	// EstimatedDeliveryDate is computed from it.
	StartDate             string `json:"startDate,omitempty"`
	EstimatedDeliveryDate string `json:"estimatedDeliveryDate,omitempty"`

	// DeliveryDate is given for backward-scheduled lots,
	// SuggestedStartDate is computed from it.
	DeliveryDate       string `json:"deliveryDate,omitempty"`
	SuggestedStartDate string `json:"suggestedStartDate,omitempty"`

	Status LotStatus `json:"status"`
	Notes  string    `json:"notes,omitempty"`

	DailyWorkload DailyWorkload `json:"dailyWorkload"`

	// DepartmentHours is the aggregate hour budget per department for
	// backward-scheduled lots; they carry no day-by-day distribution.
	DepartmentHours  map[DepartmentID]float64 `json:"departmentHours,omitempty"`
	TotalWorkingDays int                      `json:"totalWorkingDays,omitempty"`
}

// Completed reports whether the lot reached its terminal state
func (l *Lot) Completed() bool {
	return l.Status == StatusCompleted
}

// Complete transitions a pending lot to completed. Completed is terminal,
// completing twice is rejected.
func (l *Lot) Complete() error {
	if l.Status == StatusCompleted {
		return fmt.Errorf("lot %s is already completed", l.ID)
	}
	l.Status = StatusCompleted
	return nil
}

// ScheduledQuantity sums the bottleneck-phase quantity across all days. For
// a fully scheduled lot it equals Quantity.
func (l *Lot) ScheduledQuantity(phase PhaseID) Quantity {
	var total Quantity
	for _, day := range l.DailyWorkload {
		if load, ok := day[phase]; ok {
			total += load.Quantity
		}
	}
	return total
}
