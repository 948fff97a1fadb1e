// Package workcalendar decides which dates production can run on: weekdays
// that are not company holidays. All date math is pure and normalizes to
// midnight UTC so that callers can compare dates directly.
package workcalendar

import (
	"time"

	"github.com/magliflex/planner/pkg/domain/entities"
)

// ISODate is the storage format for calendar dates
const ISODate = "2006-01-02"

// Calendar answers working-day questions against a fixed holiday snapshot
type Calendar struct {
	holidays map[string]struct{}
}

// New creates a Calendar from a holiday snapshot
func New(holidays []*entities.Holiday) *Calendar {
	set := make(map[string]struct{}, len(holidays))
	for _, h := range holidays {
		set[h.Date] = struct{}{}
	}
	return &Calendar{holidays: set}
}

// DateKey formats a date as the ISO YYYY-MM-DD key used by workload maps
func DateKey(t time.Time) string {
	return t.Format(ISODate)
}

// ParseDate parses an ISO YYYY-MM-DD date into a midnight-UTC time
func ParseDate(s string) (time.Time, error) {
	return time.Parse(ISODate, s)
}

// Normalize truncates a time to midnight UTC
func Normalize(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// AddDays returns the date n days after t without mutating the input
func AddDays(t time.Time, n int) time.Time {
	return Normalize(t).AddDate(0, 0, n)
}

// StartOfWeek returns the Monday of the week containing t. Sunday belongs
// to the week that started six days earlier, not the one starting tomorrow.
func StartOfWeek(t time.Time) time.Time {
	d := Normalize(t)
	switch d.Weekday() {
	case time.Sunday:
		return d.AddDate(0, 0, -6)
	default:
		return d.AddDate(0, 0, -(int(d.Weekday()) - 1))
	}
}

// IsWorkingDay reports whether t is a Monday-Friday date that is not a
// holiday
func (c *Calendar) IsWorkingDay(t time.Time) bool {
	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	_, holiday := c.holidays[DateKey(t)]
	return !holiday
}

// NextWorkingDay returns the first working day strictly after t
func (c *Calendar) NextWorkingDay(t time.Time) time.Time {
	d := AddDays(t, 1)
	for !c.IsWorkingDay(d) {
		d = AddDays(d, 1)
	}
	return d
}

// PreviousWorkingDay returns the first working day strictly before t
func (c *Calendar) PreviousWorkingDay(t time.Time) time.Time {
	d := AddDays(t, -1)
	for !c.IsWorkingDay(d) {
		d = AddDays(d, -1)
	}
	return d
}

// WorkingDaysBetween counts the working days in [start, end] inclusive.
// Returns 0 when end precedes start.
func (c *Calendar) WorkingDaysBetween(start, end time.Time) int {
	d := Normalize(start)
	last := Normalize(end)
	count := 0
	for !d.After(last) {
		if c.IsWorkingDay(d) {
			count++
		}
		d = d.AddDate(0, 0, 1)
	}
	return count
}
