package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/magliflex/planner/pkg/domain/entities"
	"github.com/magliflex/planner/pkg/infrastructure/repositories/memory"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type fixture struct {
	phases      []*entities.Phase
	machines    []*entities.Machine
	departments []*entities.Department
	holidays    []*entities.Holiday
}

func newTestScheduler(t *testing.T, config Config, f fixture) *Scheduler {
	t.Helper()

	phaseRepo := memory.NewPhaseRepository()
	require.NoError(t, phaseRepo.LoadPhases(f.phases))

	machineRepo := memory.NewMachineRepository()
	require.NoError(t, machineRepo.LoadMachines(f.machines))

	departmentRepo := memory.NewDepartmentRepository()
	require.NoError(t, departmentRepo.LoadDepartments(f.departments))

	holidayRepo := memory.NewHolidayRepository()
	require.NoError(t, holidayRepo.LoadHolidays(f.holidays))

	return NewSchedulerWithConfig(phaseRepo, machineRepo, departmentRepo, holidayRepo, config)
}

// singlePhaseArticle builds an article with one flat-capacity phase, the
// canonical fixture for bottleneck accounting.
func singlePhaseArticle() (*entities.Article, fixture) {
	article := &entities.Article{
		ID:   "ART-1",
		Code: "ART-001",
		Cycle: []entities.CycleStep{
			{PhaseID: "PH-SEW", MinutesPerPiece: 20},
		},
	}
	f := fixture{
		phases: []*entities.Phase{
			{ID: "PH-SEW", Name: "Cucitura", MinutesPerPiece: 20, DailyCapacity: 100},
		},
	}
	return article, f
}
