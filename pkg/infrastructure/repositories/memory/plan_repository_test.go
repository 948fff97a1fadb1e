package memory

import (
	"testing"

	"github.com/magliflex/planner/pkg/domain/entities"
)

func TestPlanRepository_CRUD(t *testing.T) {
	repo := NewPlanRepository()

	lot := &entities.Lot{
		ID:        "LOT-1",
		ArticleID: "ART-1",
		Quantity:  100,
		Type:      entities.LotProduction,
		Priority:  entities.PriorityHigh,
		StartDate: "2026-09-07",
		Status:    entities.StatusPending,
	}

	if err := repo.SaveLot(lot); err != nil {
		t.Fatalf("SaveLot failed: %v", err)
	}

	got, err := repo.GetLot("LOT-1")
	if err != nil {
		t.Fatalf("GetLot failed: %v", err)
	}
	if got.Quantity != 100 {
		t.Errorf("Expected quantity 100, got %d", got.Quantity)
	}

	if err := repo.DeleteLot("LOT-1"); err != nil {
		t.Fatalf("DeleteLot failed: %v", err)
	}
	if _, err := repo.GetLot("LOT-1"); err == nil {
		t.Error("Expected GetLot after delete to fail")
	}
	if err := repo.DeleteLot("LOT-1"); err == nil {
		t.Error("Expected deleting a missing lot to fail")
	}
}

func TestPlanRepository_GetAllLots_Ordering(t *testing.T) {
	repo := NewPlanRepository()

	if err := repo.LoadLots([]*entities.Lot{
		{ID: "LOT-B", ArticleID: "ART-1", Quantity: 1, StartDate: "2026-09-14", Status: entities.StatusPending},
		{ID: "LOT-A", ArticleID: "ART-1", Quantity: 1, StartDate: "2026-09-07", Status: entities.StatusPending},
		{ID: "LOT-C", ArticleID: "ART-1", Quantity: 1, StartDate: "2026-09-07", Status: entities.StatusPending},
	}); err != nil {
		t.Fatalf("LoadLots failed: %v", err)
	}

	lots, err := repo.GetAllLots()
	if err != nil {
		t.Fatalf("GetAllLots failed: %v", err)
	}
	if len(lots) != 3 {
		t.Fatalf("Expected 3 lots, got %d", len(lots))
	}
	if lots[0].ID != "LOT-A" || lots[1].ID != "LOT-C" || lots[2].ID != "LOT-B" {
		t.Errorf("Unexpected ordering: %s, %s, %s", lots[0].ID, lots[1].ID, lots[2].ID)
	}
}

func TestPlanRepository_SaveWithoutID(t *testing.T) {
	repo := NewPlanRepository()
	if err := repo.SaveLot(&entities.Lot{}); err == nil {
		t.Error("Expected saving a lot without id to fail")
	}
}
