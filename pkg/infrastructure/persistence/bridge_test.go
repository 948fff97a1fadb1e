package persistence

import (
	"path/filepath"
	"testing"

	"github.com/magliflex/planner/pkg/domain/entities"
	"github.com/magliflex/planner/pkg/infrastructure/repositories/memory"
)

type bridgeFixture struct {
	bridge   *Bridge
	planRepo *memory.PlanRepository
}

func newBridgeFixture(t *testing.T) *bridgeFixture {
	t.Helper()
	store := NewStore(filepath.Join(t.TempDir(), "planner.json"))
	planRepo := memory.NewPlanRepository()
	bridge := NewBridge(
		store,
		memory.NewPhaseRepository(),
		memory.NewMachineRepository(),
		memory.NewDepartmentRepository(),
		memory.NewMaterialRepository(),
		memory.NewArticleRepository(),
		planRepo,
		memory.NewJournalRepository(),
		memory.NewNotificationRepository(),
		memory.NewUserRepository(),
		memory.NewHolidayRepository(),
	)
	return &bridgeFixture{bridge: bridge, planRepo: planRepo}
}

func TestBridgeCommitAndReload(t *testing.T) {
	f := newBridgeFixture(t)

	if err := f.bridge.Load(); err != nil {
		t.Fatalf("Load() on a fresh store error = %v", err)
	}

	lot := &entities.Lot{
		ID:        "LOT-1",
		ArticleID: "ART-1",
		Quantity:  50,
		Status:    entities.StatusPending,
		StartDate: "2026-09-07",
	}
	if err := f.planRepo.SaveLot(lot); err != nil {
		t.Fatal(err)
	}
	f.bridge.DeliveryWeekStart = "2026-09-07"

	if err := f.bridge.Commit(); err != nil {
		t.Fatalf("Commit() error = %v", err)
	}

	// A second bridge over the same file sees the committed state.
	second := newBridgeFixture(t)
	second.bridge.store = f.bridge.store
	if err := second.bridge.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	reloaded, err := second.planRepo.GetLot("LOT-1")
	if err != nil {
		t.Fatalf("GetLot() after reload error = %v", err)
	}
	if reloaded.Quantity != 50 {
		t.Errorf("quantity = %d, want 50", reloaded.Quantity)
	}
	if second.bridge.DeliveryWeekStart != "2026-09-07" {
		t.Errorf("delivery week anchor = %q", second.bridge.DeliveryWeekStart)
	}
}

func TestBridgeLoadDocumentNormalizes(t *testing.T) {
	f := newBridgeFixture(t)

	doc := &Document{
		ProductionPlan: []*entities.Lot{
			{ID: "LOT-1", ArticleID: "ART-1", Quantity: 10},
		},
	}
	if err := f.bridge.LoadDocument(doc); err != nil {
		t.Fatalf("LoadDocument() error = %v", err)
	}

	lot, err := f.planRepo.GetLot("LOT-1")
	if err != nil {
		t.Fatal(err)
	}
	if lot.Status != entities.StatusPending {
		t.Errorf("status should default to pending, got %q", lot.Status)
	}
}
