package workcalendar

import (
	"testing"
	"time"

	"github.com/magliflex/planner/pkg/domain/entities"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIsWorkingDay_Weekends(t *testing.T) {
	cal := New(nil)

	// 2026-09-05 is a Saturday, 2026-09-06 a Sunday.
	if cal.IsWorkingDay(date(2026, time.September, 5)) {
		t.Error("Expected Saturday to be non-working")
	}
	if cal.IsWorkingDay(date(2026, time.September, 6)) {
		t.Error("Expected Sunday to be non-working")
	}
	for day := 7; day <= 11; day++ {
		if !cal.IsWorkingDay(date(2026, time.September, day)) {
			t.Errorf("Expected 2026-09-%02d to be a working day", day)
		}
	}
}

func TestIsWorkingDay_Holidays(t *testing.T) {
	cal := New([]*entities.Holiday{
		{ID: "H1", Date: "2026-12-25", Description: "Natale"},
		{ID: "H2", Date: "2026-12-08", Description: "Immacolata"},
	})

	// Both fall on weekdays in 2026.
	if cal.IsWorkingDay(date(2026, time.December, 25)) {
		t.Error("Expected Christmas to be non-working")
	}
	if cal.IsWorkingDay(date(2026, time.December, 8)) {
		t.Error("Expected December 8th to be non-working")
	}
	if !cal.IsWorkingDay(date(2026, time.December, 9)) {
		t.Error("Expected December 9th to be a working day")
	}
}

func TestStartOfWeek(t *testing.T) {
	testCases := []struct {
		name     string
		input    time.Time
		expected time.Time
	}{
		{"monday stays", date(2026, time.September, 7), date(2026, time.September, 7)},
		{"wednesday", date(2026, time.September, 9), date(2026, time.September, 7)},
		{"saturday", date(2026, time.September, 12), date(2026, time.September, 7)},
		{"sunday belongs to previous week", date(2026, time.September, 13), date(2026, time.September, 7)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := StartOfWeek(tc.input)
			if !got.Equal(tc.expected) {
				t.Errorf("StartOfWeek(%s): expected %s, got %s",
					DateKey(tc.input), DateKey(tc.expected), DateKey(got))
			}
			if got.Weekday() != time.Monday {
				t.Errorf("StartOfWeek(%s) is not a Monday", DateKey(tc.input))
			}
			// Idempotence
			if again := StartOfWeek(got); !again.Equal(got) {
				t.Errorf("StartOfWeek not idempotent: %s -> %s", DateKey(got), DateKey(again))
			}
		})
	}
}

func TestAddDays_Pure(t *testing.T) {
	input := date(2026, time.September, 7)
	got := AddDays(input, 3)

	if !got.Equal(date(2026, time.September, 10)) {
		t.Errorf("Expected 2026-09-10, got %s", DateKey(got))
	}
	if !input.Equal(date(2026, time.September, 7)) {
		t.Error("AddDays mutated its input")
	}
	if back := AddDays(input, -7); !back.Equal(date(2026, time.August, 31)) {
		t.Errorf("Expected 2026-08-31, got %s", DateKey(back))
	}
}

func TestWorkingDaysBetween(t *testing.T) {
	cal := New([]*entities.Holiday{{ID: "H1", Date: "2026-09-09"}})

	// Mon 7th .. Fri 11th with Wednesday 9th a holiday.
	if got := cal.WorkingDaysBetween(date(2026, time.September, 7), date(2026, time.September, 11)); got != 4 {
		t.Errorf("Expected 4 working days, got %d", got)
	}
	// Full two weeks including both weekends.
	if got := cal.WorkingDaysBetween(date(2026, time.September, 7), date(2026, time.September, 20)); got != 9 {
		t.Errorf("Expected 9 working days, got %d", got)
	}
	// Inverted range.
	if got := cal.WorkingDaysBetween(date(2026, time.September, 11), date(2026, time.September, 7)); got != 0 {
		t.Errorf("Expected 0 working days for inverted range, got %d", got)
	}
}

func TestNextAndPreviousWorkingDay(t *testing.T) {
	cal := New([]*entities.Holiday{{ID: "H1", Date: "2026-09-07"}})

	// Friday 4th: next working day skips the weekend and the Monday holiday.
	if got := cal.NextWorkingDay(date(2026, time.September, 4)); !got.Equal(date(2026, time.September, 8)) {
		t.Errorf("Expected 2026-09-08, got %s", DateKey(got))
	}
	// Tuesday 8th: previous working day skips the Monday holiday and weekend.
	if got := cal.PreviousWorkingDay(date(2026, time.September, 8)); !got.Equal(date(2026, time.September, 4)) {
		t.Errorf("Expected 2026-09-04, got %s", DateKey(got))
	}
}
