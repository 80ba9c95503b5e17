package calendar

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) Date { return MustParseDate(s) }

func TestIsWeekend(t *testing.T) {
	assert.False(t, IsWeekend(d("2025-01-06"))) // Monday
	assert.False(t, IsWeekend(d("2025-01-10"))) // Friday
	assert.True(t, IsWeekend(d("2025-01-11")))
	assert.True(t, IsWeekend(d("2025-01-12")))
}

func TestBusinessDayCount(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		want       int
	}{
		{"full week", "2025-01-06", "2025-01-12", 5},
		{"single weekday", "2025-01-08", "2025-01-08", 1},
		{"single saturday", "2025-01-11", "2025-01-11", 0},
		{"two weeks", "2025-01-06", "2025-01-17", 10},
		{"inverted range", "2025-01-12", "2025-01-06", 0},
		{"across month end", "2025-01-30", "2025-02-03", 3},
		{"leap day", "2024-02-28", "2024-03-01", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BusinessDayCount(d(tt.start), d(tt.end)))
		})
	}
}

func TestBusinessDayCount_IgnoresLocalZone(t *testing.T) {
	ist, err := time.LoadLocation("Europe/Istanbul")
	if err != nil {
		t.Skip("zoneinfo unavailable")
	}
	// 00:30 local on Monday is still Sunday in UTC; the local calendar day wins.
	start := FromTime(time.Date(2025, 1, 6, 0, 30, 0, 0, ist))
	end := FromTime(time.Date(2025, 1, 10, 23, 59, 0, 0, ist))
	assert.Equal(t, 5, BusinessDayCount(start, end))
}

func TestExpandHolidayDates_SkipsWeekends(t *testing.T) {
	// 2025-05-17 is a Saturday, 2025-05-19 a Monday.
	set := ExpandHolidayDates([]Range{{Start: d("2025-05-17"), End: d("2025-05-19")}})
	assert.Equal(t, NewDateSet(d("2025-05-19")), set)

	for day := range ExpandHolidayDates([]Range{{Start: d("2025-01-01"), End: d("2025-03-31")}}) {
		assert.False(t, IsWeekend(day), day.String())
	}
}

func TestExpandHolidayDates_Overlapping(t *testing.T) {
	set := ExpandHolidayDates([]Range{
		{Start: d("2025-10-28"), End: d("2025-10-29")},
		{Start: d("2025-10-29"), End: d("2025-10-29")},
		{Start: d("2025-11-05"), End: d("2025-11-01")},
	})
	assert.Len(t, set, 2)
	assert.True(t, set.Contains(d("2025-10-28")))
	assert.True(t, set.Contains(d("2025-10-29")))
}

func TestBusinessDayCountExcluding(t *testing.T) {
	holidays := ExpandHolidayDates([]Range{{Start: d("2025-05-19"), End: d("2025-05-19")}})
	assert.Equal(t, 9, BusinessDayCountExcluding(d("2025-05-12"), d("2025-05-23"), holidays))
	assert.Equal(t, 10, BusinessDayCountExcluding(d("2025-05-12"), d("2025-05-23"), nil))
	assert.Equal(t, 0, BusinessDayCountExcluding(d("2025-05-23"), d("2025-05-12"), holidays))

	// a weekend date in the set is never double-subtracted
	withWeekend := NewDateSet(d("2025-05-17"), d("2025-05-19"))
	assert.Equal(t, 9, BusinessDayCountExcluding(d("2025-05-12"), d("2025-05-23"), withWeekend))
}

func TestCovers(t *testing.T) {
	ranges := []Range{{Start: d("2025-04-23"), End: d("2025-04-23")}, {Start: d("2025-08-29"), End: d("2025-08-31")}}
	assert.True(t, Covers(ranges, d("2025-04-23")))
	assert.True(t, Covers(ranges, d("2025-08-30")))
	assert.False(t, Covers(ranges, d("2025-04-24")))
}

func TestMonthGrid(t *testing.T) {
	grid := MonthGrid(2025, time.October)
	require.Len(t, grid, 42)
	// October 2025 starts on a Wednesday
	assert.Equal(t, d("2025-09-29"), grid[0])
	assert.Equal(t, time.Monday, grid[0].Weekday())
	assert.Equal(t, d("2025-10-01"), grid[2])
	assert.Equal(t, d("2025-11-09"), grid[41])
}

func TestDateJSON(t *testing.T) {
	var payload struct {
		Start Date `json:"start"`
		End   Date `json:"end"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"start":"2025-01-06","end":""}`), &payload))
	assert.Equal(t, d("2025-01-06"), payload.Start)
	assert.True(t, payload.End.IsZero())

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"start":"2025-01-06","end":""}`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"start":"06.01.2025"}`), &payload))
}
