package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/iwvelando/automobile-sales/pkg/constants"
)

// Kind is the report view.
type Kind int

// Report kinds.
const (
	KindYearly Kind = iota + 1
	KindRecession
)

// Kinds returns every report kind in dropdown order.
func Kinds() []Kind {
	return []Kind{KindYearly, KindRecession}
}

// String returns the dropdown label for the kind.
func (k Kind) String() string {
	switch k {
	case KindYearly:
		return constants.StatisticsYearly
	case KindRecession:
		return constants.StatisticsRecession
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// MarshalText encodes the dropdown label.
func (k Kind) MarshalText() ([]byte, error) {
	if k != KindYearly && k != KindRecession {
		return nil, fmt.Errorf("invalid report kind %d", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText accepts anything ParseKind does.
func (k *Kind) UnmarshalText(text []byte) error {
	kind, ok := ParseKind(string(text))
	if !ok {
		return fmt.Errorf("unknown report kind %q", text)
	}
	*k = kind
	return nil
}

// ParseKind accepts a dropdown label or a short alias ("yearly",
// "recession"), case-insensitively.
func ParseKind(statistics string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(statistics)) {
	case strings.ToLower(constants.StatisticsYearly), "yearly":
		return KindYearly, true
	case strings.ToLower(constants.StatisticsRecession), "recession":
		return KindRecession, true
	default:
		return 0, false
	}
}

// Selection picks a report view. Year is meaningful only for KindYearly.
type Selection struct {
	Kind Kind `json:"kind"`
	Year int  `json:"year,omitempty"`
}

// Yearly selects the yearly report for year.
func Yearly(year int) Selection {
	return Selection{Kind: KindYearly, Year: year}
}

// RecessionPeriod selects the recession period report.
func RecessionPeriod() Selection {
	return Selection{Kind: KindRecession}
}

// String describes the selection, e.g. "Yearly Statistics (2010)".
func (s Selection) String() string {
	if s.Kind == KindYearly {
		return fmt.Sprintf("%s (%d)", s.Kind, s.Year)
	}
	return s.Kind.String()
}

// ParseSelection turns the two dashboard inputs into a selection. It returns
// false when no report should be produced: unknown statistics, or a yearly
// report without a numeric year. The year input is ignored for the recession
// report. Years outside the dataset are accepted and produce empty per-year
// aggregates.
func ParseSelection(statistics, year string) (Selection, bool) {
	kind, ok := ParseKind(statistics)
	if !ok {
		return Selection{}, false
	}
	if kind == KindRecession {
		return RecessionPeriod(), true
	}

	y, err := strconv.Atoi(strings.TrimSpace(year))
	if err != nil {
		return Selection{}, false
	}
	return Yearly(y), true
}

// YearSelectorDisabled reports whether the year input should be disabled for
// the given statistics value. Only the yearly report uses it.
func YearSelectorDisabled(statistics string) bool {
	kind, ok := ParseKind(statistics)
	return !ok || kind != KindYearly
}
