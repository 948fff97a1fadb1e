package repositories

import "github.com/magliflex/planner/pkg/domain/entities"

// PlanRepository provides access to saved planning lots
type PlanRepository interface {
	GetLot(id entities.LotID) (*entities.Lot, error)
	GetAllLots() ([]*entities.Lot, error)
	SaveLot(lot *entities.Lot) error
	DeleteLot(id entities.LotID) error
	LoadLots(lots []*entities.Lot) error
}
