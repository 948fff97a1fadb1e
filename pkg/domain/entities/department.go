package entities

import "fmt"

// DepartmentID identifies a department
type DepartmentID string

// Department aggregates the phases and machine pools that belong to one
// production area, used for workload roll-up on the weekly calendar.
type Department struct {
	ID           DepartmentID `json:"id"`
	Name         string       `json:"name"`
	MachineTypes []string     `json:"machineTypes"`
	Finenesses   []Fineness   `json:"finenesses"`
	PhaseIDs     []PhaseID    `json:"phaseIds"`
}

// NewDepartment creates a validated Department
func NewDepartment(id DepartmentID, name string, machineTypes []string, finenesses []Fineness, phaseIDs []PhaseID) (*Department, error) {
	if id == "" {
		return nil, fmt.Errorf("department id cannot be empty")
	}
	if name == "" {
		return nil, fmt.Errorf("department name cannot be empty")
	}

	return &Department{
		ID:           id,
		Name:         name,
		MachineTypes: machineTypes,
		Finenesses:   finenesses,
		PhaseIDs:     phaseIDs,
	}, nil
}

// CoversPhase reports whether the department owns the given phase
func (d *Department) CoversPhase(id PhaseID) bool {
	for _, pid := range d.PhaseIDs {
		if pid == id {
			return true
		}
	}
	return false
}
