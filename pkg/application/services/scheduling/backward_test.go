package scheduling

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magliflex/planner/pkg/domain/entities"
	"github.com/magliflex/planner/pkg/domain/services/workcalendar"
)

func hourBudgetFixture() (*entities.Article, fixture) {
	article := &entities.Article{
		ID:   "ART-1",
		Code: "ART-001",
		Cycle: []entities.CycleStep{
			{PhaseID: "PH-PREP", HoursPerUnit: 0.5},
			{PhaseID: "PH-KNIT", HoursPerUnit: 2, DepartmentID: "DEP-KNIT"},
		},
	}
	f := fixture{
		phases: []*entities.Phase{
			{ID: "PH-PREP", Name: "Preparazione Filati"},
			{ID: "PH-KNIT", Name: "Tessitura"},
		},
		departments: []*entities.Department{
			{ID: "DEP-PREP", Name: "Reparto Preparazione", PhaseIDs: []entities.PhaseID{"PH-PREP"}},
			{ID: "DEP-KNIT", Name: "Reparto Tessitura", PhaseIDs: []entities.PhaseID{"PH-KNIT"}},
		},
	}
	return article, f
}

func TestScheduleBackward_HourBudget(t *testing.T) {
	article, f := hourBudgetFixture()
	scheduler := newTestScheduler(t, DefaultConfig(), f)

	// 10 units: prep 5h -> 1 day, knit 20h -> 3 days. Buffer ceil(2/2) = 1.
	// Total 4 working days back from Friday 2026-09-11 -> Tuesday 8th.
	result, err := scheduler.ScheduleBackward(context.Background(), BackwardRequest{
		Article:      article,
		Quantity:     10,
		DeliveryDate: date(2026, time.September, 11),
		Today:        date(2026, time.September, 1),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.BufferDays)
	assert.Equal(t, 4, result.TotalWorkingDays)
	assert.Equal(t, "2026-09-08", workcalendar.DateKey(result.SuggestedStartDate))

	assert.InDelta(t, 5.0, result.DepartmentHours["DEP-PREP"], 1e-9)
	assert.InDelta(t, 20.0, result.DepartmentHours["DEP-KNIT"], 1e-9)
}

func TestScheduleBackward_InverseOfWorkingDayCount(t *testing.T) {
	article, f := hourBudgetFixture()
	f.holidays = []*entities.Holiday{{ID: "H1", Date: "2026-09-09"}}
	scheduler := newTestScheduler(t, DefaultConfig(), f)

	result, err := scheduler.ScheduleBackward(context.Background(), BackwardRequest{
		Article:      article,
		Quantity:     10,
		DeliveryDate: date(2026, time.September, 11),
		Today:        date(2026, time.September, 1),
	})
	require.NoError(t, err)

	// The invariant includes the buffer: counting working days from the
	// suggested start through the delivery date, inclusive, yields exactly
	// the total (which already contains the buffer days).
	cal := workcalendar.New(f.holidays)
	counted := cal.WorkingDaysBetween(result.SuggestedStartDate, date(2026, time.September, 11))
	assert.Equal(t, result.TotalWorkingDays, counted)

	// The Wednesday holiday pushes the start a day earlier than in the
	// holiday-free case.
	assert.Equal(t, "2026-09-07", workcalendar.DateKey(result.SuggestedStartDate))
}

func TestScheduleBackward_WeekendDeliveryDate(t *testing.T) {
	article, f := hourBudgetFixture()
	scheduler := newTestScheduler(t, DefaultConfig(), f)

	// Saturday delivery: the backward count starts at Friday.
	result, err := scheduler.ScheduleBackward(context.Background(), BackwardRequest{
		Article:      article,
		Quantity:     10,
		DeliveryDate: date(2026, time.September, 12),
		Today:        date(2026, time.September, 1),
	})
	require.NoError(t, err)

	cal := workcalendar.New(nil)
	counted := cal.WorkingDaysBetween(result.SuggestedStartDate, date(2026, time.September, 12))
	assert.Equal(t, result.TotalWorkingDays, counted)
}

func TestScheduleBackward_StepWithoutDuration(t *testing.T) {
	article, f := hourBudgetFixture()
	article.Cycle = append(article.Cycle, entities.CycleStep{PhaseID: "PH-PREP"})
	scheduler := newTestScheduler(t, DefaultConfig(), f)

	result, err := scheduler.ScheduleBackward(context.Background(), BackwardRequest{
		Article:      article,
		Quantity:     10,
		DeliveryDate: date(2026, time.September, 11),
		Today:        date(2026, time.September, 1),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, result.Warnings, "a duration-less step is a data-quality warning")
	// The extra step still counts toward the handoff buffer: ceil(3/2) = 2.
	assert.Equal(t, 2, result.BufferDays)
}

func TestScheduleBackward_Validation(t *testing.T) {
	article, f := hourBudgetFixture()
	scheduler := newTestScheduler(t, DefaultConfig(), f)

	_, err := scheduler.ScheduleBackward(context.Background(), BackwardRequest{
		Article:      article,
		Quantity:     0,
		DeliveryDate: date(2026, time.September, 11),
	})
	assert.Error(t, err, "zero quantity must be rejected")

	_, err = scheduler.ScheduleBackward(context.Background(), BackwardRequest{
		Article:      article,
		Quantity:     10,
		DeliveryDate: date(2026, time.August, 1),
		Today:        date(2026, time.September, 1),
	})
	assert.Error(t, err, "past delivery date must be rejected for new lots")
}

func TestScheduleBackward_ConfigurableBuffer(t *testing.T) {
	article, f := hourBudgetFixture()
	config := DefaultConfig()
	config.HandoffDivisor = 1 // one buffer day per routing step
	scheduler := newTestScheduler(t, config, f)

	result, err := scheduler.ScheduleBackward(context.Background(), BackwardRequest{
		Article:      article,
		Quantity:     10,
		DeliveryDate: date(2026, time.September, 11),
		Today:        date(2026, time.September, 1),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.BufferDays)
	assert.Equal(t, 5, result.TotalWorkingDays)
}
