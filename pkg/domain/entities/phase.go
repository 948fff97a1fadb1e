package entities

import "fmt"

// PhaseID identifies a processing phase
type PhaseID string

// Phase represents a named processing step articles are routed through.
// A phase either carries a flat DailyCapacity (manual or generic phases) or
// derives its throughput from the machine pool bound by the cycle step.
type Phase struct {
	ID   PhaseID `json:"id"`
	Name string  `json:"name"`

	// MinutesPerPiece is the nominal run time per piece, used as a default
	// when a cycle step does not override it.
	MinutesPerPiece float64 `json:"time,omitempty"`

	// DailyCapacity is the flat pieces-per-day figure for phases that are
	// not machine bound. Zero means undefined; the scheduler treats an
	// undefined capacity on an unbound step as zero throughput.
	DailyCapacity Quantity `json:"dailyCapacity,omitempty"`
}

// NewPhase creates a validated Phase
func NewPhase(id PhaseID, name string, minutesPerPiece float64, dailyCapacity Quantity) (*Phase, error) {
	if id == "" {
		return nil, fmt.Errorf("phase id cannot be empty")
	}
	if name == "" {
		return nil, fmt.Errorf("phase name cannot be empty")
	}
	if minutesPerPiece < 0 {
		return nil, fmt.Errorf("phase minutes per piece cannot be negative, got %v", minutesPerPiece)
	}
	if dailyCapacity < 0 {
		return nil, fmt.Errorf("phase daily capacity cannot be negative, got %d", dailyCapacity)
	}

	return &Phase{
		ID:              id,
		Name:            name,
		MinutesPerPiece: minutesPerPiece,
		DailyCapacity:   dailyCapacity,
	}, nil
}

// HasDailyCapacity reports whether the phase defines a flat daily capacity
func (p *Phase) HasDailyCapacity() bool {
	return p.DailyCapacity > 0
}
