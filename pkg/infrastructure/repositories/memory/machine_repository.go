package memory

import (
	"fmt"
	"sort"

	"github.com/magliflex/planner/pkg/domain/entities"
	"github.com/magliflex/planner/pkg/domain/repositories"
)

// MachineRepository provides in-memory machine storage
type MachineRepository struct {
	machines map[entities.MachineID]*entities.Machine
}

// NewMachineRepository creates a new in-memory machine repository
func NewMachineRepository() *MachineRepository {
	return &MachineRepository{machines: make(map[entities.MachineID]*entities.Machine)}
}

// Verify interface compliance
var _ repositories.MachineRepository = (*MachineRepository)(nil)

// LoadMachines loads machines into the repository
func (r *MachineRepository) LoadMachines(machines []*entities.Machine) error {
	for _, m := range machines {
		if err := r.SaveMachine(m); err != nil {
			return err
		}
	}
	return nil
}

// SaveMachine inserts or replaces a machine
func (r *MachineRepository) SaveMachine(machine *entities.Machine) error {
	if machine == nil || machine.ID == "" {
		return fmt.Errorf("cannot save machine without id")
	}
	r.machines[machine.ID] = machine
	return nil
}

// GetMachine returns the machine with the given id
func (r *MachineRepository) GetMachine(id entities.MachineID) (*entities.Machine, error) {
	machine, exists := r.machines[id]
	if !exists {
		return nil, fmt.Errorf("machine not found: %s", id)
	}
	return machine, nil
}

// GetAllMachines returns all machines sorted by name. The sort keeps
// machine assignment deterministic: "first machine in inventory" always
// means the same machine for a given dataset.
func (r *MachineRepository) GetAllMachines() ([]*entities.Machine, error) {
	machines := make([]*entities.Machine, 0, len(r.machines))
	for _, m := range r.machines {
		machines = append(machines, m)
	}
	sort.Slice(machines, func(i, j int) bool { return machines[i].Name < machines[j].Name })
	return machines, nil
}

// DeleteMachine removes a machine
func (r *MachineRepository) DeleteMachine(id entities.MachineID) error {
	if _, exists := r.machines[id]; !exists {
		return fmt.Errorf("machine not found: %s", id)
	}
	delete(r.machines, id)
	return nil
}
