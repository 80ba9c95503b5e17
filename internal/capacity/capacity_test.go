package capacity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/calendar"
	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/domain"
)

func sprint(start, end string) *domain.Sprint {
	return &domain.Sprint{
		ID:        "s1",
		Name:      "Sprint 1",
		StartDate: calendar.MustParseDate(start),
		EndDate:   calendar.MustParseDate(end),
	}
}

func holiday(start, end string) *domain.Holiday {
	return &domain.Holiday{
		ID:        start,
		Name:      "holiday",
		StartDate: calendar.MustParseDate(start),
		EndDate:   calendar.MustParseDate(end),
	}
}

func TestDailyHoursFromString(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"08:00", 8},
		{"07:30", 7.5},
		{"00:45", 0.75},
		{"09:15", 9.25},
	}
	for _, tt := range tests {
		got, err := DailyHoursFromString(tt.in)
		require.NoError(t, err, tt.in)
		assert.InDelta(t, tt.want, got, 1e-9, tt.in)
	}
}

func TestDailyHoursFromString_Malformed(t *testing.T) {
	for _, in := range []string{"", "8:00", "08:0", "0800", "08-00", "aa:bb", " 08:00", "08:00:00"} {
		_, err := DailyHoursFromString(in)
		var formatErr *FormatError
		require.True(t, errors.As(err, &formatErr), "%q should fail", in)
		assert.Equal(t, in, formatErr.Value)
	}
}

func TestPlannedHoursForSprint(t *testing.T) {
	s := sprint("2025-01-06", "2025-01-10")
	assert.Equal(t, 40.0, PlannedHoursForSprint(s, 8, nil, true))

	holidays := []*domain.Holiday{holiday("2025-01-08", "2025-01-08")}
	// holidays kept as working days
	assert.Equal(t, 40.0, PlannedHoursForSprint(s, 8, holidays, true))
	// holidays subtracted
	assert.Equal(t, 32.0, PlannedHoursForSprint(s, 8, holidays, false))
}

func TestPlannedHoursForSprint_HolidayOnWeekend(t *testing.T) {
	s := sprint("2025-05-12", "2025-05-23")
	holidays := []*domain.Holiday{holiday("2025-05-17", "2025-05-19")}
	assert.Equal(t, 9*7.5, PlannedHoursForSprint(s, 7.5, holidays, false))
}

func TestPlannedHoursForSprint_InvertedRange(t *testing.T) {
	s := sprint("2025-01-10", "2025-01-06")
	assert.Zero(t, PlannedHoursForSprint(s, 8, nil, true))
	assert.Zero(t, PlannedHoursForSprint(s, 8, nil, false))
}

func TestForSprint(t *testing.T) {
	s := sprint("2025-10-27", "2025-11-07")
	holidays := []*domain.Holiday{holiday("2025-10-28", "2025-10-29")}

	got := ForSprint(s, 8, holidays, false)
	assert.Equal(t, SprintCapacity{
		SprintID:        "s1",
		BusinessDays:    8,
		DailyHours:      8,
		PlannedHours:    64,
		IncludeHolidays: false,
	}, got)

	assert.Equal(t, 10, ForSprint(s, 8, holidays, true).BusinessDays)
}
