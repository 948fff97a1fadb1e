package memory

import (
	"fmt"
	"sort"

	"github.com/magliflex/planner/pkg/domain/entities"
	"github.com/magliflex/planner/pkg/domain/repositories"
)

// PlanRepository provides in-memory storage for planning lots
type PlanRepository struct {
	lots map[entities.LotID]*entities.Lot
}

// NewPlanRepository creates a new in-memory plan repository
func NewPlanRepository() *PlanRepository {
	return &PlanRepository{lots: make(map[entities.LotID]*entities.Lot)}
}

// Verify interface compliance
var _ repositories.PlanRepository = (*PlanRepository)(nil)

// LoadLots loads lots into the repository
func (r *PlanRepository) LoadLots(lots []*entities.Lot) error {
	for _, l := range lots {
		if err := r.SaveLot(l); err != nil {
			return err
		}
	}
	return nil
}

// SaveLot inserts or replaces a lot
func (r *PlanRepository) SaveLot(lot *entities.Lot) error {
	if lot == nil || lot.ID == "" {
		return fmt.Errorf("cannot save lot without id")
	}
	r.lots[lot.ID] = lot
	return nil
}

// GetLot returns the lot with the given id
func (r *PlanRepository) GetLot(id entities.LotID) (*entities.Lot, error) {
	lot, exists := r.lots[id]
	if !exists {
		return nil, fmt.Errorf("lot not found: %s", id)
	}
	return lot, nil
}

// GetAllLots returns all lots ordered by start date, then id for stability
func (r *PlanRepository) GetAllLots() ([]*entities.Lot, error) {
	lots := make([]*entities.Lot, 0, len(r.lots))
	for _, l := range r.lots {
		lots = append(lots, l)
	}
	sort.Slice(lots, func(i, j int) bool {
		if lots[i].StartDate != lots[j].StartDate {
			return lots[i].StartDate < lots[j].StartDate
		}
		return lots[i].ID < lots[j].ID
	})
	return lots, nil
}

// DeleteLot removes a lot
func (r *PlanRepository) DeleteLot(id entities.LotID) error {
	if _, exists := r.lots[id]; !exists {
		return fmt.Errorf("lot not found: %s", id)
	}
	delete(r.lots, id)
	return nil
}
