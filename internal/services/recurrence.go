package services

import (
	"fmt"
	"time"

	"github.com/jinzhu/now"

	"github.com/yukikurage/home-inventory-api/internal/models"
)

// Advance moves from by interval units. Months and years use calendar
// arithmetic: when the target month is shorter the day is clamped to its
// last day, so Jan 31 + 1 month is Feb 28 or Feb 29.
func Advance(from time.Time, interval int, unit models.RecurrenceUnit) (time.Time, error) {
	switch unit {
	case models.RecurrenceDaily:
		return from.AddDate(0, 0, interval), nil
	case models.RecurrenceWeekly:
		return from.AddDate(0, 0, 7*interval), nil
	case models.RecurrenceMonthly:
		return addMonths(from, interval), nil
	case models.RecurrenceYearly:
		return addMonths(from, 12*interval), nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidRecurrenceUnit, unit)
}

func addMonths(t time.Time, months int) time.Time {
	first := now.With(t).BeginningOfMonth().AddDate(0, months, 0)
	day := t.Day()
	if last := now.With(first).EndOfMonth().Day(); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}
