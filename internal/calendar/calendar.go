// Package calendar counts business days over inclusive civil date ranges.
package calendar

import "time"

// Range is an inclusive interval of calendar days.
type Range struct {
	Start Date
	End   Date
}

func IsWeekend(d Date) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// Days calls fn for every day in [start, end]. Nothing is visited when end is before start.
func Days(start, end Date, fn func(Date)) {
	if end.Before(start) {
		return
	}
	for cur := start; !cur.After(end); cur = cur.AddDays(1) {
		fn(cur)
	}
}

// BusinessDayCount counts the non-weekend days in [start, end]. An inverted range is
// empty rather than an error.
func BusinessDayCount(start, end Date) int {
	return BusinessDayCountExcluding(start, end, nil)
}

// BusinessDayCountExcluding is BusinessDayCount minus any day in holidays.
func BusinessDayCountExcluding(start, end Date, holidays DateSet) int {
	count := 0
	Days(start, end, func(d Date) {
		if !IsWeekend(d) && !holidays.Contains(d) {
			count++
		}
	})
	return count
}

// ExpandHolidayDates enumerates the weekdays covered by the given ranges. Weekend days
// are left out since business-day counting already skips them.
func ExpandHolidayDates(ranges []Range) DateSet {
	set := make(DateSet)
	for _, r := range ranges {
		Days(r.Start, r.End, func(d Date) {
			if !IsWeekend(d) {
				set.Add(d)
			}
		})
	}
	return set
}

// Covers reports whether d falls inside any of the ranges, weekends included.
func Covers(ranges []Range, d Date) bool {
	for _, r := range ranges {
		if !d.Before(r.Start) && !d.After(r.End) {
			return true
		}
	}
	return false
}

// MonthGrid returns the 42 days (6 weeks, Monday first) shown for a month view,
// starting from the Monday on or before the first of the month.
func MonthGrid(year int, month time.Month) []Date {
	first := NewDate(year, month, 1)
	offset := (int(first.Weekday()) + 6) % 7
	start := first.AddDays(-offset)

	grid := make([]Date, 42)
	for i := range grid {
		grid[i] = start.AddDays(i)
	}
	return grid
}
