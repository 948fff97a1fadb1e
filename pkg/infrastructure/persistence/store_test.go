package persistence

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/magliflex/planner/pkg/domain/entities"
)

func TestLoadMissingFileYieldsEmptyDocument(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "planner.json"))

	doc, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if doc.Phases == nil || doc.ProductionPlan == nil || doc.Users == nil {
		t.Error("missing file should yield a document with empty slices, not nils")
	}
	if len(doc.Phases) != 0 {
		t.Errorf("expected empty phases, got %d", len(doc.Phases))
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "planner.json"))

	stock := decimal.NewFromFloat(12.5)
	doc := &Document{
		Phases: []*entities.Phase{
			{ID: "PH-1", Name: "Tessitura", MinutesPerPiece: 60},
		},
		RawMaterials: []*entities.RawMaterial{
			{ID: "MAT-1", Name: "Filato di Cotone", Unit: "kg", CurrentStock: stock},
		},
		ProductionPlan: []*entities.Lot{
			{
				ID:        "LOT-1",
				ArticleID: "ART-1",
				Quantity:  100,
				Status:    entities.StatusPending,
				StartDate: "2026-09-07",
				DailyWorkload: entities.DailyWorkload{
					"2026-09-07": {"PH-1": {Quantity: 100, Machine: "MCH-1"}},
				},
			},
		},
		CurrentDeliveryWeekStartDate: "2026-09-07",
	}
	doc.normalize()

	if err := store.Save(doc); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(loaded.Phases) != 1 || loaded.Phases[0].Name != "Tessitura" {
		t.Errorf("phases did not round-trip: %+v", loaded.Phases)
	}
	if !loaded.RawMaterials[0].CurrentStock.Equal(stock) {
		t.Errorf("stock did not round-trip: got %s, want %s", loaded.RawMaterials[0].CurrentStock, stock)
	}
	lot := loaded.ProductionPlan[0]
	if lot.DailyWorkload["2026-09-07"]["PH-1"].Quantity != 100 {
		t.Errorf("daily workload did not round-trip: %+v", lot.DailyWorkload)
	}
	if loaded.CurrentDeliveryWeekStartDate != "2026-09-07" {
		t.Errorf("week anchor did not round-trip: %q", loaded.CurrentDeliveryWeekStartDate)
	}
}

func TestSaveDoesNotClobberOnEncodeOfPriorFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "planner.json")
	store := NewStore(path)

	if err := store.Save(&Document{}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	// No temp files left behind after a successful save.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the document in %s, found %d entries", dir, len(entries))
	}
}

func TestLoadRejectsCorruptDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planner.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := NewStore(path).Load()
	if err == nil {
		t.Fatal("expected an error for a corrupt document")
	}
}

func TestNormalizeFillsNestedDefaults(t *testing.T) {
	doc := &Document{
		Departments: []*entities.Department{
			{ID: "DEP-1", Name: "Tessitura"},
		},
		ProductionPlan: []*entities.Lot{
			{ID: "LOT-1", ArticleID: "ART-1", Quantity: 10},
		},
	}
	doc.normalize()

	dept := doc.Departments[0]
	if dept.PhaseIDs == nil || dept.MachineTypes == nil || dept.Finenesses == nil {
		t.Error("department nested arrays should default to empty")
	}
	lot := doc.ProductionPlan[0]
	if lot.DailyWorkload == nil {
		t.Error("lot daily workload should default to empty")
	}
	if lot.Status != entities.StatusPending {
		t.Errorf("lot status should default to pending, got %q", lot.Status)
	}
}
