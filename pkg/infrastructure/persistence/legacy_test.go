package persistence

import (
	"testing"

	"github.com/goccy/go-json"

	"github.com/magliflex/planner/pkg/domain/entities"
)

const legacyDocument = `{
  "phases": [
    {"id": 1, "name": "Preparazione Filati", "time": 5, "dailyCapacity": 1000},
    {"id": 2, "name": "Tessitura", "time": 60}
  ],
  "machines": [
    {"id": 105, "name": "Rettilinea Finezza 7 A", "capacity": 3.125, "currentUsage": 0, "fineness": 7}
  ],
  "departments": [
    {"id": 1002, "name": "Reparto Tessitura", "machineTypes": ["Rettilinea"], "finenesses": ["3", "7"], "phaseIds": [2]},
    {"id": 1008, "name": "Reparto Confezionamento", "machineTypes": [], "finenesses": [7]}
  ],
  "rawMaterials": [
    {"id": 201, "name": "Filato di Cotone", "unit": "kg", "currentStock": 500}
  ],
  "warehouseJournal": [
    {"id": 9001, "date": "2026-08-01", "materialId": 201, "type": "load", "quantity": 500, "reference": "Fornitore X"},
    {"id": 9002, "date": "2026-08-02", "materialId": 201, "type": "consumption", "quantity": 20, "reference": "Consumo"}
  ],
  "articles": [
    {
      "id": 301, "code": "ART-001", "description": "Maglietta Basic",
      "cycle": [{"phaseId": 1, "time": 5}, {"phaseId": 2, "time": 60, "machineType": "Rettilinea", "fineness": 7}],
      "bom": [{"materialId": 201, "quantity": 0.2, "unit": "kg"}]
    }
  ],
  "productionPlan": [
    {
      "id": 8001, "articleId": 301, "quantity": 100, "type": "production", "priority": "high",
      "startDate": "2026-09-07", "estimatedDeliveryDate": null, "status": "pending", "dailyWorkload": {}
    }
  ],
  "notifications": [],
  "users": [
    {"id": 1, "username": "admin", "password": "admin", "roles": ["admin"], "forcePasswordChange": false}
  ],
  "currentDeliveryWeekStartDate": "2026-09-07T00:00:00.000Z",
  "currentWorkloadWeekStartDate": null
}`

func migrate(t *testing.T) *Document {
	t.Helper()
	out, err := MigrateLegacy([]byte(legacyDocument))
	if err != nil {
		t.Fatalf("MigrateLegacy() error = %v", err)
	}
	var doc Document
	if err := json.Unmarshal(out, &doc); err != nil {
		t.Fatalf("migrated document does not decode: %v", err)
	}
	doc.normalize()
	return &doc
}

func TestMigrateLegacyStringifiesIDs(t *testing.T) {
	doc := migrate(t)

	if doc.Phases[0].ID != "1" {
		t.Errorf("phase id = %q, want \"1\"", doc.Phases[0].ID)
	}
	if doc.Articles[0].Cycle[1].PhaseID != "2" {
		t.Errorf("cycle phase id = %q, want \"2\"", doc.Articles[0].Cycle[1].PhaseID)
	}
	if doc.Articles[0].BOM[0].MaterialID != "201" {
		t.Errorf("bom material id = %q, want \"201\"", doc.Articles[0].BOM[0].MaterialID)
	}
	if doc.ProductionPlan[0].ArticleID != "301" {
		t.Errorf("lot article id = %q, want \"301\"", doc.ProductionPlan[0].ArticleID)
	}
	if doc.WarehouseJournal[0].MaterialID != "201" {
		t.Errorf("journal material id = %q, want \"201\"", doc.WarehouseJournal[0].MaterialID)
	}
}

func TestMigrateLegacyDepartments(t *testing.T) {
	doc := migrate(t)

	tessitura := doc.Departments[0]
	if len(tessitura.Finenesses) != 2 || tessitura.Finenesses[0] != 3 || tessitura.Finenesses[1] != 7 {
		t.Errorf("finenesses = %v, want [3 7]", tessitura.Finenesses)
	}
	if len(tessitura.PhaseIDs) != 1 || tessitura.PhaseIDs[0] != "2" {
		t.Errorf("phase ids = %v, want [2]", tessitura.PhaseIDs)
	}

	confezionamento := doc.Departments[1]
	if confezionamento.PhaseIDs == nil || len(confezionamento.PhaseIDs) != 0 {
		t.Errorf("missing phaseIds should migrate to empty, got %v", confezionamento.PhaseIDs)
	}
}

func TestMigrateLegacyJournalTypes(t *testing.T) {
	doc := migrate(t)

	if doc.WarehouseJournal[0].Type != entities.JournalLoad {
		t.Errorf("load entry type = %q", doc.WarehouseJournal[0].Type)
	}
	if doc.WarehouseJournal[1].Type != entities.JournalUnload {
		t.Errorf("consumption entry should migrate to unload, got %q", doc.WarehouseJournal[1].Type)
	}
}

func TestMigrateLegacyDatesAndAnchors(t *testing.T) {
	doc := migrate(t)

	if doc.ProductionPlan[0].EstimatedDeliveryDate != "" {
		t.Errorf("null estimated delivery date should be dropped, got %q", doc.ProductionPlan[0].EstimatedDeliveryDate)
	}
	if doc.CurrentDeliveryWeekStartDate != "2026-09-07" {
		t.Errorf("week anchor = %q, want 2026-09-07", doc.CurrentDeliveryWeekStartDate)
	}
	if doc.CurrentWorkloadWeekStartDate != "" {
		t.Errorf("null week anchor should be dropped, got %q", doc.CurrentWorkloadWeekStartDate)
	}
}

func TestMigrateLegacyRejectsGarbage(t *testing.T) {
	if _, err := MigrateLegacy([]byte("{broken")); err == nil {
		t.Fatal("expected an error for invalid JSON")
	}
}
