// Package scheduling implements the lot scheduling and workload-projection
// core: a forward day-by-day walk driven by per-machine piece throughput,
// and a backward walk driven by per-department hour budgets. Each lot is
// scheduled independently against nominal capacity; there is no cross-lot
// contention modeling.
package scheduling

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/magliflex/planner/pkg/domain/entities"
	"github.com/magliflex/planner/pkg/domain/repositories"
	"github.com/magliflex/planner/pkg/domain/services/workcalendar"
)

// Scheduler computes schedules against read-only snapshots of the phase,
// machine, department and holiday catalogs taken at call time.
type Scheduler struct {
	phaseRepo      repositories.PhaseRepository
	machineRepo    repositories.MachineRepository
	departmentRepo repositories.DepartmentRepository
	holidayRepo    repositories.HolidayRepository
	config         Config
	validate       *validator.Validate
}

// NewScheduler creates a Scheduler with the default configuration
func NewScheduler(
	phaseRepo repositories.PhaseRepository,
	machineRepo repositories.MachineRepository,
	departmentRepo repositories.DepartmentRepository,
	holidayRepo repositories.HolidayRepository,
) *Scheduler {
	return NewSchedulerWithConfig(phaseRepo, machineRepo, departmentRepo, holidayRepo, DefaultConfig())
}

// NewSchedulerWithConfig creates a Scheduler with a custom configuration
func NewSchedulerWithConfig(
	phaseRepo repositories.PhaseRepository,
	machineRepo repositories.MachineRepository,
	departmentRepo repositories.DepartmentRepository,
	holidayRepo repositories.HolidayRepository,
	config Config,
) *Scheduler {
	return &Scheduler{
		phaseRepo:      phaseRepo,
		machineRepo:    machineRepo,
		departmentRepo: departmentRepo,
		holidayRepo:    holidayRepo,
		config:         config.normalized(),
		validate:       validator.New(),
	}
}

// ForwardRequest asks for a forward (piece-throughput) schedule: given the
// desired start date, when will the lot be done?
type ForwardRequest struct {
	Article   *entities.Article `validate:"required"`
	Quantity  entities.Quantity `validate:"required,gt=0"`
	StartDate time.Time         `validate:"required"`

	// AllowPastStart permits recomputing an already-saved lot whose start
	// date has passed. New lots must start today or later.
	AllowPastStart bool

	// Today overrides the reference date for the past-start check, mainly
	// for tests. Zero means time.Now().
	Today time.Time
}

// BackwardRequest asks for a backward (hour-budget) schedule: given the
// requested delivery date, when must production start?
type BackwardRequest struct {
	Article      *entities.Article `validate:"required"`
	Quantity     entities.Quantity `validate:"required,gt=0"`
	DeliveryDate time.Time         `validate:"required"`

	AllowPastDelivery bool
	Today             time.Time
}

// snapshot is the read-only catalog state one scheduling call runs against
type snapshot struct {
	phases      map[entities.PhaseID]*entities.Phase
	machines    []*entities.Machine
	departments []*entities.Department
	calendar    *workcalendar.Calendar
}

func (s *Scheduler) takeSnapshot() (*snapshot, error) {
	phases, err := s.phaseRepo.GetAllPhases()
	if err != nil {
		return nil, fmt.Errorf("failed to load phases: %w", err)
	}
	machines, err := s.machineRepo.GetAllMachines()
	if err != nil {
		return nil, fmt.Errorf("failed to load machines: %w", err)
	}
	departments, err := s.departmentRepo.GetAllDepartments()
	if err != nil {
		return nil, fmt.Errorf("failed to load departments: %w", err)
	}
	holidays, err := s.holidayRepo.GetAllHolidays()
	if err != nil {
		return nil, fmt.Errorf("failed to load holidays: %w", err)
	}

	phaseIndex := make(map[entities.PhaseID]*entities.Phase, len(phases))
	for _, p := range phases {
		phaseIndex[p.ID] = p
	}

	return &snapshot{
		phases:      phaseIndex,
		machines:    machines,
		departments: departments,
		calendar:    workcalendar.New(holidays),
	}, nil
}

// departmentForStep resolves which department a routing step belongs to: an
// explicit DepartmentID on the step wins, otherwise the first department
// whose phase list covers the step's phase.
func (snap *snapshot) departmentForStep(step entities.CycleStep) (entities.DepartmentID, bool) {
	if step.DepartmentID != "" {
		return step.DepartmentID, true
	}
	for _, d := range snap.departments {
		if d.CoversPhase(step.PhaseID) {
			return d.ID, true
		}
	}
	return "", false
}

func referenceToday(explicit time.Time) time.Time {
	if explicit.IsZero() {
		return workcalendar.Normalize(time.Now())
	}
	return workcalendar.Normalize(explicit)
}
