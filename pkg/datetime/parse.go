// Package datetime provides date and time utility functions.
package datetime

import (
	"time"

	"github.com/iwvelando/automobile-sales/pkg/constants"
)

const (
	// DateTimeLayout is the month format used for keys in output.
	DateTimeLayout = constants.DateTimeLayout
)

// MustParseTime parses a date string using the given layout and panics on error.
// This is intended for use in tests where the date string is known to be valid.
func MustParseTime(layout, dateStr string) time.Time {
	t, err := time.Parse(layout, dateStr)
	if err != nil {
		panic(err)
	}
	return t
}

// MonthEnd returns midnight UTC on the last day of the given month.
func MonthEnd(year int, month time.Month) time.Time {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)
}

// Day builds a UTC date at midnight.
func Day(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// TruncateDay drops the time-of-day component, keeping the calendar date in UTC.
func TruncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return Day(y, m, d)
}

// MonthEnds returns the month-end dates from startYear-01 through endYear-12
// inclusive, in ascending order.
func MonthEnds(startYear, endYear int) []time.Time {
	if endYear < startYear {
		return nil
	}
	dates := make([]time.Time, 0, (endYear-startYear+1)*constants.MonthsPerYear)
	for year := startYear; year <= endYear; year++ {
		for month := time.January; month <= time.December; month++ {
			dates = append(dates, MonthEnd(year, month))
		}
	}
	return dates
}

// InRange reports whether t falls on or between start and end, compared by
// calendar day.
func InRange(t, start, end time.Time) bool {
	day := TruncateDay(t)
	return !day.Before(TruncateDay(start)) && !day.After(TruncateDay(end))
}

// MonthKey formats a date as its month key, e.g. 1980-07.
func MonthKey(t time.Time) string {
	return t.Format(DateTimeLayout)
}
