package entities

import (
	"fmt"
	"time"
)

// Holiday is a non-working date looked up by the working-day calendar
type Holiday struct {
	ID          string `json:"id"`
	Date        string `json:"date"` // ISO YYYY-MM-DD
	Description string `json:"description,omitempty"`
}

// NewHoliday creates a validated Holiday
func NewHoliday(id, date, description string) (*Holiday, error) {
	if id == "" {
		return nil, fmt.Errorf("holiday id cannot be empty")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, fmt.Errorf("holiday date must be YYYY-MM-DD, got %q: %w", date, err)
	}

	return &Holiday{
		ID:          id,
		Date:        date,
		Description: description,
	}, nil
}
