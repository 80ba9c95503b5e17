// Package capacity turns a sprint's date range and the daily planning hour into the
// number of hours a single person can be planned for.
package capacity

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/calendar"
	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/domain"
)

var hourPattern = regexp.MustCompile(`^(\d{2}):(\d{2})$`)

// FormatError is returned for daily planning hours that are not in HH:mm form.
type FormatError struct {
	Value string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("daily planning hour %q must be in HH:mm format", e.Value)
}

// DailyHoursFromString converts "HH:mm" to fractional hours, e.g. "07:30" -> 7.5.
func DailyHoursFromString(hourStr string) (float64, error) {
	m := hourPattern.FindStringSubmatch(hourStr)
	if m == nil {
		return 0, &FormatError{Value: hourStr}
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	return float64(hour) + float64(minute)/60, nil
}

// BusinessDays counts the working days of the sprint. With includeHolidays set the
// holidays stay in the count as working days; otherwise their weekdays are removed.
func BusinessDays(sprint *domain.Sprint, holidays []*domain.Holiday, includeHolidays bool) int {
	if includeHolidays {
		return calendar.BusinessDayCount(sprint.StartDate, sprint.EndDate)
	}
	excluded := calendar.ExpandHolidayDates(domain.HolidayRanges(holidays))
	return calendar.BusinessDayCountExcluding(sprint.StartDate, sprint.EndDate, excluded)
}

// PlannedHoursForSprint returns businessDays * dailyHours.
//
// includeHolidays == true does NOT subtract holidays: they are counted as working days.
// Existing sprint hour figures depend on this meaning.
func PlannedHoursForSprint(sprint *domain.Sprint, dailyHours float64, holidays []*domain.Holiday, includeHolidays bool) float64 {
	return float64(BusinessDays(sprint, holidays, includeHolidays)) * dailyHours
}

// SprintCapacity is the per-sprint row of the sprint list.
type SprintCapacity struct {
	SprintID        string  `json:"sprintId"`
	BusinessDays    int     `json:"businessDays"`
	DailyHours      float64 `json:"dailyHours"`
	PlannedHours    float64 `json:"plannedHours"`
	IncludeHolidays bool    `json:"includeHolidays"`
}

func ForSprint(sprint *domain.Sprint, dailyHours float64, holidays []*domain.Holiday, includeHolidays bool) SprintCapacity {
	days := BusinessDays(sprint, holidays, includeHolidays)
	return SprintCapacity{
		SprintID:        sprint.ID,
		BusinessDays:    days,
		DailyHours:      dailyHours,
		PlannedHours:    float64(days) * dailyHours,
		IncludeHolidays: includeHolidays,
	}
}
