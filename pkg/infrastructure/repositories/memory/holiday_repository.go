package memory

import (
	"fmt"
	"sort"

	"github.com/magliflex/planner/pkg/domain/entities"
	"github.com/magliflex/planner/pkg/domain/repositories"
)

// HolidayRepository provides in-memory holiday storage
type HolidayRepository struct {
	holidays map[string]*entities.Holiday
}

// NewHolidayRepository creates a new in-memory holiday repository
func NewHolidayRepository() *HolidayRepository {
	return &HolidayRepository{holidays: make(map[string]*entities.Holiday)}
}

// Verify interface compliance
var _ repositories.HolidayRepository = (*HolidayRepository)(nil)

// LoadHolidays loads holidays into the repository
func (r *HolidayRepository) LoadHolidays(holidays []*entities.Holiday) error {
	for _, h := range holidays {
		if err := r.SaveHoliday(h); err != nil {
			return err
		}
	}
	return nil
}

// SaveHoliday inserts or replaces a holiday
func (r *HolidayRepository) SaveHoliday(holiday *entities.Holiday) error {
	if holiday == nil || holiday.ID == "" {
		return fmt.Errorf("cannot save holiday without id")
	}
	r.holidays[holiday.ID] = holiday
	return nil
}

// GetAllHolidays returns all holidays sorted by date
func (r *HolidayRepository) GetAllHolidays() ([]*entities.Holiday, error) {
	holidays := make([]*entities.Holiday, 0, len(r.holidays))
	for _, h := range r.holidays {
		holidays = append(holidays, h)
	}
	sort.Slice(holidays, func(i, j int) bool { return holidays[i].Date < holidays[j].Date })
	return holidays, nil
}

// DeleteHoliday removes a holiday
func (r *HolidayRepository) DeleteHoliday(id string) error {
	if _, exists := r.holidays[id]; !exists {
		return fmt.Errorf("holiday not found: %s", id)
	}
	delete(r.holidays, id)
	return nil
}
