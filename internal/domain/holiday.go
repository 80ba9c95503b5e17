package domain

import (
	"time"

	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/calendar"
)

type Holiday struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	StartDate calendar.Date `json:"startDate"`
	EndDate   calendar.Date `json:"endDate"`
}

func (h *Holiday) Range() calendar.Range {
	return calendar.Range{Start: h.StartDate, End: h.EndDate}
}

func HolidayRanges(holidays []*Holiday) []calendar.Range {
	ranges := make([]calendar.Range, 0, len(holidays))
	for _, h := range holidays {
		ranges = append(ranges, h.Range())
	}
	return ranges
}

type holidayTemplate struct {
	name  string
	month time.Month
	day   int
}

// fixed-date national holidays offered when filling a year's calendar
var holidayTemplates = []holidayTemplate{
	{"Yılbaşı", time.January, 1},
	{"23 Nisan", time.April, 23},
	{"1 Mayıs", time.May, 1},
	{"19 Mayıs", time.May, 19},
	{"30 Ağustos", time.August, 30},
	{"29 Ekim", time.October, 29},
}

// HolidayTemplates returns the fixed-date holidays of year, without ids.
func HolidayTemplates(year int) []*Holiday {
	holidays := make([]*Holiday, 0, len(holidayTemplates))
	for _, t := range holidayTemplates {
		d := calendar.NewDate(year, t.month, t.day)
		holidays = append(holidays, &Holiday{Name: t.name, StartDate: d, EndDate: d})
	}
	return holidays
}
