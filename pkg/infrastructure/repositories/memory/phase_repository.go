package memory

import (
	"fmt"
	"sort"

	"github.com/magliflex/planner/pkg/domain/entities"
	"github.com/magliflex/planner/pkg/domain/repositories"
)

// PhaseRepository provides in-memory phase storage
type PhaseRepository struct {
	phases map[entities.PhaseID]*entities.Phase
}

// NewPhaseRepository creates a new in-memory phase repository
func NewPhaseRepository() *PhaseRepository {
	return &PhaseRepository{phases: make(map[entities.PhaseID]*entities.Phase)}
}

// Verify interface compliance
var _ repositories.PhaseRepository = (*PhaseRepository)(nil)

// LoadPhases loads phases into the repository
func (r *PhaseRepository) LoadPhases(phases []*entities.Phase) error {
	for _, p := range phases {
		if err := r.SavePhase(p); err != nil {
			return err
		}
	}
	return nil
}

// SavePhase inserts or replaces a phase
func (r *PhaseRepository) SavePhase(phase *entities.Phase) error {
	if phase == nil || phase.ID == "" {
		return fmt.Errorf("cannot save phase without id")
	}
	r.phases[phase.ID] = phase
	return nil
}

// GetPhase returns the phase with the given id
func (r *PhaseRepository) GetPhase(id entities.PhaseID) (*entities.Phase, error) {
	phase, exists := r.phases[id]
	if !exists {
		return nil, fmt.Errorf("phase not found: %s", id)
	}
	return phase, nil
}

// GetAllPhases returns all phases sorted by name
func (r *PhaseRepository) GetAllPhases() ([]*entities.Phase, error) {
	phases := make([]*entities.Phase, 0, len(r.phases))
	for _, p := range r.phases {
		phases = append(phases, p)
	}
	sort.Slice(phases, func(i, j int) bool { return phases[i].Name < phases[j].Name })
	return phases, nil
}

// DeletePhase removes a phase
func (r *PhaseRepository) DeletePhase(id entities.PhaseID) error {
	if _, exists := r.phases[id]; !exists {
		return fmt.Errorf("phase not found: %s", id)
	}
	delete(r.phases, id)
	return nil
}
