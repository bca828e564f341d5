// Package validation provides common validation utilities.
package validation

import (
	"fmt"

	"github.com/iwvelando/automobile-sales/internal/dataset"
	"github.com/iwvelando/automobile-sales/internal/report"
	"github.com/iwvelando/automobile-sales/pkg/constants"
)

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	switch format {
	case constants.OutputFormatPretty, constants.OutputFormatCSV, constants.OutputFormatJSON:
		return nil
	default:
		return fmt.Errorf("expected output format of %s, %s or %s, got %s",
			constants.OutputFormatPretty, constants.OutputFormatCSV, constants.OutputFormatJSON, format)
	}
}

// ValidateStatistics checks that statistics names a report.
func ValidateStatistics(statistics string) error {
	if _, ok := report.ParseKind(statistics); !ok {
		return fmt.Errorf("expected statistics of %q or %q, got %q",
			constants.StatisticsYearly, constants.StatisticsRecession, statistics)
	}
	return nil
}

// YearWarning returns a warning when year lies outside the generated range,
// or an empty string otherwise.
func YearWarning(year int) string {
	if !dataset.ValidYear(year) {
		return fmt.Sprintf("year %d is outside %d-%d; per-year charts will be empty",
			year, constants.StartYear, constants.EndYear)
	}
	return ""
}
