package datetime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthEnd(t *testing.T) {
	tests := []struct {
		name     string
		year     int
		month    time.Month
		expected string
	}{
		{name: "January", year: 1980, month: time.January, expected: "1980-01-31"},
		{name: "Leap February", year: 1980, month: time.February, expected: "1980-02-29"},
		{name: "Common February", year: 1981, month: time.February, expected: "1981-02-28"},
		{name: "April", year: 2001, month: time.April, expected: "2001-04-30"},
		{name: "December", year: 2013, month: time.December, expected: "2013-12-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MonthEnd(tt.year, tt.month).Format("2006-01-02"))
		})
	}
}

func TestMonthEnds(t *testing.T) {
	dates := MonthEnds(1980, 2013)
	require.Len(t, dates, 34*12)
	assert.Equal(t, "1980-01", MonthKey(dates[0]))
	assert.Equal(t, "2013-12", MonthKey(dates[len(dates)-1]))
	for i := 1; i < len(dates); i++ {
		require.True(t, dates[i].After(dates[i-1]), "dates not ascending at index %d", i)
	}

	assert.Nil(t, MonthEnds(2014, 2013))
}

func TestInRange(t *testing.T) {
	start := Day(1980, time.January, 1)
	end := Day(1980, time.July, 31)

	tests := []struct {
		name     string
		date     time.Time
		expected bool
	}{
		{name: "Start boundary", date: start, expected: true},
		{name: "End boundary", date: end, expected: true},
		{name: "End boundary late in the day", date: time.Date(1980, time.July, 31, 23, 59, 0, 0, time.UTC), expected: true},
		{name: "Day after end", date: Day(1980, time.August, 1), expected: false},
		{name: "Day before start", date: Day(1979, time.December, 31), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, InRange(tt.date, start, end))
		})
	}
}

func TestMustParseTimePanicsOnInvalidInput(t *testing.T) {
	assert.Panics(t, func() {
		MustParseTime(DateTimeLayout, "not-a-date")
	})
}
