package planning

import (
	"sort"
	"time"

	"github.com/samber/lo"

	"github.com/magliflex/planner/pkg/domain/entities"
	"github.com/magliflex/planner/pkg/domain/repositories"
	"github.com/magliflex/planner/pkg/domain/services/workcalendar"
)

// DeliveryDay is one calendar day of the weekly delivery view
type DeliveryDay struct {
	Date    time.Time
	DateKey string
	Working bool
	Lots    []*entities.Lot
}

// DeliveryWeek is the seven-day delivery calendar starting on weekStart
type DeliveryWeek struct {
	WeekStart time.Time
	Days      [7]DeliveryDay
}

// DepartmentLoad is the aggregated load of one department for one day
type DepartmentLoad struct {
	Department *entities.Department
	Pieces     entities.Quantity
	Hours      float64
	Lots       []entities.LotID
}

// WorkloadDay is one calendar day of the weekly workload view
type WorkloadDay struct {
	Date        time.Time
	DateKey     string
	Working     bool
	Departments []*DepartmentLoad
}

// WorkloadWeek is the seven-day per-department workload calendar
type WorkloadWeek struct {
	WeekStart time.Time
	Days      [7]WorkloadDay
}

// Views aggregates saved lots into the two weekly calendars the planner
// navigates. It reads, never writes.
type Views struct {
	planRepo       repositories.PlanRepository
	departmentRepo repositories.DepartmentRepository
	holidayRepo    repositories.HolidayRepository
}

// NewViews creates a calendar view builder
func NewViews(
	planRepo repositories.PlanRepository,
	departmentRepo repositories.DepartmentRepository,
	holidayRepo repositories.HolidayRepository,
) *Views {
	return &Views{
		planRepo:       planRepo,
		departmentRepo: departmentRepo,
		holidayRepo:    holidayRepo,
	}
}

// DeliveryWeek builds the delivery calendar for the week containing anchor.
// A lot appears on the day it is due: estimated delivery date for
// forward-scheduled lots, the requested delivery date for backward ones.
// Completed lots stay visible; the calendar is a record, not a todo list.
func (v *Views) DeliveryWeek(anchor time.Time) (*DeliveryWeek, error) {
	lots, err := v.planRepo.GetAllLots()
	if err != nil {
		return nil, err
	}
	calendar, err := v.calendar()
	if err != nil {
		return nil, err
	}

	byDate := lo.GroupBy(lots, func(lot *entities.Lot) string {
		if lot.EstimatedDeliveryDate != "" {
			return lot.EstimatedDeliveryDate
		}
		return lot.DeliveryDate
	})

	week := &DeliveryWeek{WeekStart: workcalendar.StartOfWeek(anchor)}
	for i := 0; i < 7; i++ {
		date := workcalendar.AddDays(week.WeekStart, i)
		key := workcalendar.DateKey(date)
		week.Days[i] = DeliveryDay{
			Date:    date,
			DateKey: key,
			Working: calendar.IsWorkingDay(date),
			Lots:    byDate[key],
		}
	}
	return week, nil
}

// WorkloadWeek builds the workload calendar for the week containing anchor.
// Piece-throughput lots contribute their per-phase daily quantities, rolled
// up to the department covering each phase; hour-budget lots spread their
// department hours evenly across the working days between suggested start
// and delivery.
func (v *Views) WorkloadWeek(anchor time.Time) (*WorkloadWeek, error) {
	lots, err := v.planRepo.GetAllLots()
	if err != nil {
		return nil, err
	}
	departments, err := v.departmentRepo.GetAllDepartments()
	if err != nil {
		return nil, err
	}
	calendar, err := v.calendar()
	if err != nil {
		return nil, err
	}

	week := &WorkloadWeek{WeekStart: workcalendar.StartOfWeek(anchor)}
	for i := 0; i < 7; i++ {
		date := workcalendar.AddDays(week.WeekStart, i)
		day := WorkloadDay{
			Date:    date,
			DateKey: workcalendar.DateKey(date),
			Working: calendar.IsWorkingDay(date),
		}

		loads := make(map[entities.DepartmentID]*DepartmentLoad)
		for _, lot := range lots {
			if lot.Completed() {
				continue
			}
			v.accumulatePieces(loads, departments, lot, day.DateKey)
			v.accumulateHours(loads, departments, calendar, lot, date)
		}

		day.Departments = lo.Values(loads)
		sort.Slice(day.Departments, func(a, b int) bool {
			return day.Departments[a].Department.Name < day.Departments[b].Department.Name
		})
		week.Days[i] = day
	}
	return week, nil
}

// accumulatePieces rolls a forward-scheduled lot's per-phase load for one
// date up to departments via phase coverage.
func (v *Views) accumulatePieces(
	loads map[entities.DepartmentID]*DepartmentLoad,
	departments []*entities.Department,
	lot *entities.Lot,
	dateKey string,
) {
	dayLoad, ok := lot.DailyWorkload[dateKey]
	if !ok {
		return
	}
	for phaseID, phaseLoad := range dayLoad {
		dept, found := lo.Find(departments, func(d *entities.Department) bool {
			return d.CoversPhase(phaseID)
		})
		if !found {
			continue
		}
		load := ensureLoad(loads, dept)
		load.Pieces += phaseLoad.Quantity
		if !lo.Contains(load.Lots, lot.ID) {
			load.Lots = append(load.Lots, lot.ID)
		}
	}
}

// accumulateHours spreads a backward-scheduled lot's department hour budget
// evenly over the working days between its suggested start and delivery.
func (v *Views) accumulateHours(
	loads map[entities.DepartmentID]*DepartmentLoad,
	departments []*entities.Department,
	calendar *workcalendar.Calendar,
	lot *entities.Lot,
	date time.Time,
) {
	if len(lot.DepartmentHours) == 0 || lot.TotalWorkingDays <= 0 {
		return
	}
	start, err := workcalendar.ParseDate(lot.SuggestedStartDate)
	if err != nil {
		return
	}
	end, err := workcalendar.ParseDate(lot.DeliveryDate)
	if err != nil {
		return
	}
	if date.Before(start) || date.After(end) || !calendar.IsWorkingDay(date) {
		return
	}

	for deptID, hours := range lot.DepartmentHours {
		dept, found := lo.Find(departments, func(d *entities.Department) bool {
			return d.ID == deptID
		})
		if !found {
			continue
		}
		load := ensureLoad(loads, dept)
		load.Hours += hours / float64(lot.TotalWorkingDays)
		if !lo.Contains(load.Lots, lot.ID) {
			load.Lots = append(load.Lots, lot.ID)
		}
	}
}

func (v *Views) calendar() (*workcalendar.Calendar, error) {
	holidays, err := v.holidayRepo.GetAllHolidays()
	if err != nil {
		return nil, err
	}
	return workcalendar.New(holidays), nil
}

func ensureLoad(loads map[entities.DepartmentID]*DepartmentLoad, dept *entities.Department) *DepartmentLoad {
	if load, ok := loads[dept.ID]; ok {
		return load
	}
	load := &DepartmentLoad{Department: dept}
	loads[dept.ID] = load
	return load
}
