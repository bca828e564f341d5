package dataset

import (
	"testing"
	"time"

	"github.com/iwvelando/automobile-sales/pkg/datetime"
	"github.com/stretchr/testify/assert"
)

func TestIsRecession(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		expected bool
	}{
		{"1980 recession start", datetime.Day(1980, time.January, 1), true},
		{"1980 recession end", datetime.Day(1980, time.July, 31), true},
		{"Day after 1980 recession", datetime.Day(1980, time.August, 1), false},
		{"Gap between 1980 and 1981", datetime.Day(1981, time.June, 30), false},
		{"1981-82 recession start", datetime.Day(1981, time.July, 1), true},
		{"1981-82 recession end", datetime.Day(1982, time.November, 30), true},
		{"After 1981-82 recession", datetime.Day(1982, time.December, 31), false},
		{"1990-91 recession", datetime.Day(1990, time.October, 31), true},
		{"1991 recovery", datetime.Day(1991, time.April, 30), false},
		{"2001 recession start", datetime.Day(2001, time.March, 1), true},
		{"Before 2001 recession", datetime.Day(2001, time.February, 28), false},
		{"Great Recession start", datetime.Day(2007, time.December, 31), true},
		{"Great Recession end", datetime.Day(2009, time.June, 30), true},
		{"After Great Recession", datetime.Day(2009, time.July, 31), false},
		{"Late in the final day", datetime.MustParseTime(time.RFC3339, "2009-06-30T18:00:00Z"), true},
		{"Quiet year", datetime.Day(1995, time.May, 31), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsRecession(tt.date))
		})
	}
}

func TestRecessionMonthCount(t *testing.T) {
	count := 0
	for _, date := range datetime.MonthEnds(1980, 2013) {
		if IsRecession(date) {
			count++
		}
	}
	// 7 + 17 + 9 + 9 + 19 months
	assert.Equal(t, 61, count)
}

func TestRecessionIntervalsCopy(t *testing.T) {
	intervals := RecessionIntervals()
	assert.Len(t, intervals, 5)

	intervals[0].End = datetime.Day(1980, time.December, 31)
	assert.False(t, IsRecession(datetime.Day(1980, time.August, 1)))
}
