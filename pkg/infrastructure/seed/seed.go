// Package seed builds the demo dataset: the phase catalog, machine park,
// departments, materials and articles of a small knitwear workshop, plus a
// few starter lots. It mirrors the demo data the original tool shipped with.
package seed

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/magliflex/planner/pkg/domain/entities"
	"github.com/magliflex/planner/pkg/domain/services/workcalendar"
	"github.com/magliflex/planner/pkg/infrastructure/persistence"
)

// hourly converts a pieces-per-day figure to pieces per hour on an 8-hour day
func hourly(piecesPerDay float64) float64 {
	return piecesPerDay / 8
}

// Document builds the sample dataset anchored on the given date
func Document(today time.Time) *persistence.Document {
	todayKey := workcalendar.DateKey(workcalendar.Normalize(today))

	doc := &persistence.Document{
		Phases: []*entities.Phase{
			{ID: "phase-prep", Name: "Preparazione Filati", MinutesPerPiece: 5, DailyCapacity: 1000},
			{ID: "phase-knit", Name: "Tessitura", MinutesPerPiece: 60},
			{ID: "phase-link", Name: "Rammaglio", MinutesPerPiece: 45, DailyCapacity: 800},
			{ID: "phase-sew", Name: "Cucitura", MinutesPerPiece: 20, DailyCapacity: 1200},
			{ID: "phase-qc", Name: "Controllo Qualità", MinutesPerPiece: 10, DailyCapacity: 1500},
			{ID: "phase-iron", Name: "Rifinitura e Stiro", MinutesPerPiece: 15, DailyCapacity: 1000},
			{ID: "phase-pack", Name: "Etichettatura e Confezionamento", MinutesPerPiece: 5, DailyCapacity: 2000},
		},
		Machines:    machines(),
		Departments: departments(),
		RawMaterials: []*entities.RawMaterial{
			{ID: "mat-cotton", Name: "Filato di Cotone", Unit: "kg", CurrentStock: decimal.NewFromInt(500)},
			{ID: "mat-buttons", Name: "Bottoni", Unit: "pz", CurrentStock: decimal.NewFromInt(1000)},
			{ID: "mat-labels", Name: "Etichette", Unit: "pz", CurrentStock: decimal.NewFromInt(2000)},
			{ID: "mat-merino", Name: "Filato di Lana Merino", Unit: "kg", CurrentStock: decimal.NewFromInt(300)},
			{ID: "mat-zips", Name: "Cerniere", Unit: "pz", CurrentStock: decimal.NewFromInt(500)},
		},
		WarehouseJournal: []*entities.JournalEntry{
			{ID: "jrn-1", Date: todayKey, MaterialID: "mat-cotton", Type: entities.JournalLoad, Quantity: decimal.NewFromInt(500), Reference: "Fornitore X"},
			{ID: "jrn-2", Date: todayKey, MaterialID: "mat-buttons", Type: entities.JournalLoad, Quantity: decimal.NewFromInt(1000), Reference: "Fornitore Y"},
			{ID: "jrn-3", Date: todayKey, MaterialID: "mat-merino", Type: entities.JournalLoad, Quantity: decimal.NewFromInt(300), Reference: "Fornitore Z"},
		},
		Articles: articles(),
		ProductionPlan: []*entities.Lot{
			{
				ID:        "lot-1",
				ArticleID: "art-001",
				Quantity:  100,
				Type:      entities.LotProduction,
				Priority:  entities.PriorityHigh,
				StartDate: todayKey,
				Status:    entities.StatusPending,
				Notes:     "Urgent order",
			},
			{
				ID:        "lot-2",
				ArticleID: "art-002",
				Quantity:  50,
				Type:      entities.LotSample,
				Priority:  entities.PriorityMedium,
				StartDate: workcalendar.DateKey(workcalendar.AddDays(today, 7)),
				Status:    entities.StatusPending,
				Notes:     "New sample for client C",
			},
			{
				ID:        "lot-3",
				ArticleID: "art-003",
				Quantity:  20,
				Type:      entities.LotProduction,
				Priority:  entities.PriorityLow,
				StartDate: workcalendar.DateKey(workcalendar.AddDays(today, 14)),
				Status:    entities.StatusPending,
				Notes:     "First batch of integral sweaters",
			},
		},
		Users: []*entities.User{
			{ID: "usr-admin", Username: "admin", Password: "admin", Roles: []entities.Role{entities.RoleAdmin, entities.RolePlanning, entities.RoleWarehouse}},
			{ID: "usr-planner", Username: "planner", Password: "planner", Roles: []entities.Role{entities.RolePlanning}},
			{ID: "usr-warehouse", Username: "warehouse", Password: "warehouse", Roles: []entities.Role{entities.RoleWarehouse}},
		},
		CurrentDeliveryWeekStartDate: workcalendar.DateKey(workcalendar.StartOfWeek(today)),
		CurrentWorkloadWeekStartDate: workcalendar.DateKey(workcalendar.StartOfWeek(today)),
	}
	return doc
}

func machines() []*entities.Machine {
	pool := []struct {
		prefix   string
		fineness entities.Fineness
		perDay   float64
		count    int
	}{
		{"Rettilinea Finezza 3", 3, 8, 2},
		{"Rettilinea Finezza 5", 5, 15, 2},
		{"Rettilinea Finezza 7", 7, 25, 3},
		{"Rettilinea Finezza 12", 12, 35, 7},
		{"Rettilinea Finezza 14", 14, 40, 3},
		{"Integrale Finezza 7", 7, 12, 1},
	}

	var out []*entities.Machine
	n := 0
	for _, p := range pool {
		for i := 0; i < p.count; i++ {
			n++
			out = append(out, &entities.Machine{
				ID:             entities.MachineID(fmt.Sprintf("mch-%03d", n)),
				Name:           fmt.Sprintf("%s %c", p.prefix, 'A'+i),
				HourlyCapacity: hourly(p.perDay),
				Fineness:       p.fineness,
			})
		}
	}
	return out
}

func departments() []*entities.Department {
	return []*entities.Department{
		{ID: "dep-prep", Name: "Reparto Preparazione Filati", MachineTypes: []string{}, Finenesses: []entities.Fineness{}, PhaseIDs: []entities.PhaseID{"phase-prep"}},
		{ID: "dep-rett", Name: "Reparto Tessitura Rettilinea", MachineTypes: []string{"Rettilinea"}, Finenesses: []entities.Fineness{3, 5, 7, 12, 14}, PhaseIDs: []entities.PhaseID{"phase-knit"}},
		{ID: "dep-int", Name: "Reparto Tessitura Integrale", MachineTypes: []string{"Integrale"}, Finenesses: []entities.Fineness{7}, PhaseIDs: []entities.PhaseID{"phase-knit"}},
		{ID: "dep-link", Name: "Reparto Rammaglio", MachineTypes: []string{}, Finenesses: []entities.Fineness{}, PhaseIDs: []entities.PhaseID{"phase-link"}},
		{ID: "dep-sew", Name: "Reparto Cucitura", MachineTypes: []string{}, Finenesses: []entities.Fineness{}, PhaseIDs: []entities.PhaseID{"phase-sew"}},
		{ID: "dep-qc", Name: "Reparto Controllo Qualità", MachineTypes: []string{}, Finenesses: []entities.Fineness{}, PhaseIDs: []entities.PhaseID{"phase-qc"}},
		{ID: "dep-iron", Name: "Reparto Rifinitura e Stiro", MachineTypes: []string{}, Finenesses: []entities.Fineness{}, PhaseIDs: []entities.PhaseID{"phase-iron"}},
		{ID: "dep-pack", Name: "Reparto Etichettatura e Confezionamento", MachineTypes: []string{}, Finenesses: []entities.Fineness{}, PhaseIDs: []entities.PhaseID{"phase-pack"}},
	}
}

func articles() []*entities.Article {
	return []*entities.Article{
		{
			ID:          "art-001",
			Code:        "ART-001",
			Description: "Maglietta Basic Cotone",
			Color:       "Bianco",
			Client:      "Client A",
			Cycle: []entities.CycleStep{
				{PhaseID: "phase-prep", MinutesPerPiece: 5, HoursPerUnit: 5.0 / 60},
				{PhaseID: "phase-knit", MinutesPerPiece: 60, HoursPerUnit: 1, MachineType: "Rettilinea", Fineness: 7},
				{PhaseID: "phase-sew", MinutesPerPiece: 20, HoursPerUnit: 20.0 / 60},
				{PhaseID: "phase-qc", MinutesPerPiece: 10, HoursPerUnit: 10.0 / 60},
				{PhaseID: "phase-iron", MinutesPerPiece: 15, HoursPerUnit: 15.0 / 60},
				{PhaseID: "phase-pack", MinutesPerPiece: 5, HoursPerUnit: 5.0 / 60},
			},
			BOM: []entities.BOMLine{
				{MaterialID: "mat-cotton", QuantityPerUnit: decimal.NewFromFloat(0.2), Unit: "kg"},
			},
		},
		{
			ID:          "art-002",
			Code:        "ART-002",
			Description: "Felpa con Cappuccio Lana",
			Color:       "Grigio",
			Client:      "Client B",
			Cycle: []entities.CycleStep{
				{PhaseID: "phase-prep", MinutesPerPiece: 7, HoursPerUnit: 7.0 / 60},
				{PhaseID: "phase-knit", MinutesPerPiece: 70, HoursPerUnit: 70.0 / 60, MachineType: "Rettilinea", Fineness: 12},
				{PhaseID: "phase-link", MinutesPerPiece: 45, HoursPerUnit: 45.0 / 60},
				{PhaseID: "phase-sew", MinutesPerPiece: 25, HoursPerUnit: 25.0 / 60},
				{PhaseID: "phase-qc", MinutesPerPiece: 12, HoursPerUnit: 12.0 / 60},
				{PhaseID: "phase-iron", MinutesPerPiece: 20, HoursPerUnit: 20.0 / 60},
				{PhaseID: "phase-pack", MinutesPerPiece: 8, HoursPerUnit: 8.0 / 60},
			},
			BOM: []entities.BOMLine{
				{MaterialID: "mat-merino", QuantityPerUnit: decimal.NewFromFloat(0.5), Unit: "kg"},
				{MaterialID: "mat-zips", QuantityPerUnit: decimal.NewFromInt(1), Unit: "pz"},
			},
		},
		{
			ID:          "art-003",
			Code:        "ART-003",
			Description: "Maglione Integrale",
			Color:       "Nero",
			Client:      "Client C",
			Cycle: []entities.CycleStep{
				{PhaseID: "phase-prep", MinutesPerPiece: 8, HoursPerUnit: 8.0 / 60},
				{PhaseID: "phase-knit", MinutesPerPiece: 90, HoursPerUnit: 1.5, MachineType: "Integrale", Fineness: 7},
				{PhaseID: "phase-qc", MinutesPerPiece: 15, HoursPerUnit: 15.0 / 60},
				{PhaseID: "phase-iron", MinutesPerPiece: 20, HoursPerUnit: 20.0 / 60},
				{PhaseID: "phase-pack", MinutesPerPiece: 10, HoursPerUnit: 10.0 / 60},
			},
			BOM: []entities.BOMLine{
				{MaterialID: "mat-merino", QuantityPerUnit: decimal.NewFromFloat(0.7), Unit: "kg"},
			},
		},
	}
}
