package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yukikurage/home-inventory-api/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 9, 30, 0, 0, time.UTC)
}

func TestAdvance(t *testing.T) {
	tests := []struct {
		name     string
		from     time.Time
		interval int
		unit     models.RecurrenceUnit
		want     time.Time
	}{
		{"daily", date(2024, time.February, 28), 2, models.RecurrenceDaily, date(2024, time.March, 1)},
		{"weekly", date(2024, time.January, 1), 3, models.RecurrenceWeekly, date(2024, time.January, 22)},
		{"monthly", date(2024, time.January, 1), 2, models.RecurrenceMonthly, date(2024, time.March, 1)},
		{"monthly clamps in leap year", date(2024, time.January, 31), 1, models.RecurrenceMonthly, date(2024, time.February, 29)},
		{"monthly clamps in common year", date(2023, time.January, 31), 1, models.RecurrenceMonthly, date(2023, time.February, 28)},
		{"monthly to thirty day month", date(2024, time.March, 31), 1, models.RecurrenceMonthly, date(2024, time.April, 30)},
		{"monthly across year end", date(2024, time.November, 15), 3, models.RecurrenceMonthly, date(2025, time.February, 15)},
		{"yearly", date(2023, time.June, 10), 2, models.RecurrenceYearly, date(2025, time.June, 10)},
		{"yearly from leap day", date(2024, time.February, 29), 1, models.RecurrenceYearly, date(2025, time.February, 28)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Advance(tt.from, tt.interval, tt.unit)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestAdvance_KeepsClockAndZone(t *testing.T) {
	loc := time.FixedZone("JST", 9*60*60)
	from := time.Date(2024, time.January, 31, 23, 45, 0, 0, loc)

	got, err := Advance(from, 1, models.RecurrenceMonthly)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, time.February, 29, 23, 45, 0, 0, loc), got)
}

func TestAdvance_UnknownUnit(t *testing.T) {
	_, err := Advance(date(2024, time.January, 1), 1, models.RecurrenceUnit("HOURLY"))
	assert.ErrorIs(t, err, ErrInvalidRecurrenceUnit)
}
