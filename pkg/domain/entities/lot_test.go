package entities

import "testing"

func TestLot_CompleteIsTerminal(t *testing.T) {
	lot := &Lot{ID: "LOT-1", ArticleID: "ART-1", Quantity: 100, Status: StatusPending}

	if err := lot.Complete(); err != nil {
		t.Fatalf("Expected completing a pending lot to succeed: %v", err)
	}
	if !lot.Completed() {
		t.Error("Expected lot to report completed")
	}

	if err := lot.Complete(); err == nil {
		t.Error("Expected completing an already completed lot to be rejected")
	}
}

func TestLot_ScheduledQuantity(t *testing.T) {
	lot := &Lot{
		ID:       "LOT-1",
		Quantity: 250,
		DailyWorkload: DailyWorkload{
			"2026-09-07": {"PH-KNIT": {Quantity: 100, Machine: "MCH-1"}},
			"2026-09-08": {"PH-KNIT": {Quantity: 100, Machine: "MCH-1"}},
			"2026-09-09": {"PH-KNIT": {Quantity: 50, Machine: "MCH-1"}},
		},
	}

	if got := lot.ScheduledQuantity("PH-KNIT"); got != 250 {
		t.Errorf("Expected scheduled quantity 250, got %d", got)
	}
	if got := lot.ScheduledQuantity("PH-SEW"); got != 0 {
		t.Errorf("Expected scheduled quantity 0 for unscheduled phase, got %d", got)
	}
}

func TestLotEnums(t *testing.T) {
	if !LotProduction.Valid() || !LotSample.Valid() {
		t.Error("Expected production and sample lot types to be valid")
	}
	if LotType("prototype").Valid() {
		t.Error("Did not expect unknown lot type to be valid")
	}

	if !PriorityHigh.Valid() || !PriorityMedium.Valid() || !PriorityLow.Valid() {
		t.Error("Expected known priorities to be valid")
	}
	if Priority("urgent").Valid() {
		t.Error("Did not expect unknown priority to be valid")
	}
}
