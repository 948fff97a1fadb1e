package entities

import (
	"fmt"
	"strings"
)

// MachineID identifies a machine
type MachineID string

// NoMachine marks a workload entry produced on a phase with no machine in
// inventory at all.
const NoMachine MachineID = ""

// Fineness is the gauge classification restricting which machines can run a
// given routing step. Zero means the machine (or step) is not gauge bound.
type Fineness int

// Machine represents a production machine. The machine type is implied by
// the first word of its name ("Rettilinea Finezza 12 A" is a "Rettilinea"),
// a convention inherited from the catalog this tool replaces.
type Machine struct {
	ID   MachineID `json:"id"`
	Name string    `json:"name"`

	// HourlyCapacity is the nominal pieces-per-hour throughput.
	HourlyCapacity float64 `json:"capacity"`

	CurrentUsage float64  `json:"currentUsage,omitempty"`
	Fineness     Fineness `json:"fineness,omitempty"`
}

// NewMachine creates a validated Machine
func NewMachine(id MachineID, name string, hourlyCapacity float64, fineness Fineness) (*Machine, error) {
	if id == "" {
		return nil, fmt.Errorf("machine id cannot be empty")
	}
	if name == "" {
		return nil, fmt.Errorf("machine name cannot be empty")
	}
	if hourlyCapacity <= 0 {
		return nil, fmt.Errorf("machine capacity must be positive, got %v", hourlyCapacity)
	}
	if fineness < 0 {
		return nil, fmt.Errorf("machine fineness cannot be negative, got %d", fineness)
	}

	return &Machine{
		ID:             id,
		Name:           name,
		HourlyCapacity: hourlyCapacity,
		Fineness:       fineness,
	}, nil
}

// Type returns the machine type derived from the name prefix
func (m *Machine) Type() string {
	fields := strings.Fields(m.Name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// Matches reports whether the machine can run a step requiring the given
// machine type and fineness
func (m *Machine) Matches(machineType string, fineness Fineness) bool {
	return m.Type() == machineType && m.Fineness == fineness
}
