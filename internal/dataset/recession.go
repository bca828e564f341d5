package dataset

import (
	"time"

	"github.com/iwvelando/automobile-sales/pkg/datetime"
)

// RecessionInterval is a closed [Start, End] range of calendar days.
type RecessionInterval struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls within the interval, both ends inclusive.
func (r RecessionInterval) Contains(t time.Time) bool {
	return datetime.InRange(t, r.Start, r.End)
}

// US recessions between 1980 and 2013.
var recessionIntervals = [...]RecessionInterval{
	{Start: datetime.Day(1980, time.January, 1), End: datetime.Day(1980, time.July, 31)},
	{Start: datetime.Day(1981, time.July, 1), End: datetime.Day(1982, time.November, 30)},
	{Start: datetime.Day(1990, time.July, 1), End: datetime.Day(1991, time.March, 31)},
	{Start: datetime.Day(2001, time.March, 1), End: datetime.Day(2001, time.November, 30)},
	{Start: datetime.Day(2007, time.December, 1), End: datetime.Day(2009, time.June, 30)},
}

// RecessionIntervals returns a copy of the fixed recession calendar.
func RecessionIntervals() []RecessionInterval {
	out := make([]RecessionInterval, len(recessionIntervals))
	copy(out, recessionIntervals[:])
	return out
}

// IsRecession reports whether t falls inside any recession interval.
func IsRecession(t time.Time) bool {
	for _, interval := range recessionIntervals {
		if interval.Contains(t) {
			return true
		}
	}
	return false
}
