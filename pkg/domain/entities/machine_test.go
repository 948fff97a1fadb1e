package entities

import "testing"

func TestMachine_Validation(t *testing.T) {
	machine, err := NewMachine("MCH-1", "Rettilinea Finezza 12 A", 4.375, 12)
	if err != nil {
		t.Fatalf("Expected valid machine creation to succeed: %v", err)
	}
	if machine.Fineness != 12 {
		t.Errorf("Expected fineness 12, got %d", machine.Fineness)
	}

	if _, err := NewMachine("", "Rettilinea A", 1, 3); err == nil {
		t.Error("Expected error for empty machine id")
	}
	if _, err := NewMachine("MCH-1", "", 1, 3); err == nil {
		t.Error("Expected error for empty machine name")
	}
	if _, err := NewMachine("MCH-1", "Rettilinea A", 0, 3); err == nil {
		t.Error("Expected error for zero capacity")
	}
	if _, err := NewMachine("MCH-1", "Rettilinea A", -1, 3); err == nil {
		t.Error("Expected error for negative capacity")
	}
}

func TestMachine_TypeFromNamePrefix(t *testing.T) {
	testCases := []struct {
		name     string
		expected string
	}{
		{"Rettilinea Finezza 12 A", "Rettilinea"},
		{"Integrale Finezza 7 A", "Integrale"},
		{"Circolare", "Circolare"},
		{"", ""},
	}

	for _, tc := range testCases {
		machine := &Machine{Name: tc.name}
		if got := machine.Type(); got != tc.expected {
			t.Errorf("Type() for %q: expected %q, got %q", tc.name, tc.expected, got)
		}
	}
}

func TestMachine_Matches(t *testing.T) {
	machine := &Machine{ID: "MCH-1", Name: "Rettilinea Finezza 7 B", HourlyCapacity: 3.125, Fineness: 7}

	if !machine.Matches("Rettilinea", 7) {
		t.Error("Expected machine to match Rettilinea fineness 7")
	}
	if machine.Matches("Rettilinea", 12) {
		t.Error("Did not expect machine to match fineness 12")
	}
	if machine.Matches("Integrale", 7) {
		t.Error("Did not expect machine to match type Integrale")
	}
}
