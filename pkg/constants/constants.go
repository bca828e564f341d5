// Package constants provides shared constants for the automobile-sales application.
package constants

// DateTimeLayout is the month format used for keys in output and in
// configuration values.
const DateTimeLayout = "2006-01"

// Dataset range and shape
const (
	// StartYear is the first calendar year covered by the generated dataset
	StartYear = 1980

	// EndYear is the last calendar year covered by the generated dataset
	EndYear = 2013

	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DefaultSeed is the seed used when none is configured
	DefaultSeed uint64 = 42
)

// Rounding constants
const (
	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)

// Report selection values as presented by the dashboard dropdown
const (
	// StatisticsYearly selects the yearly report
	StatisticsYearly = "Yearly Statistics"

	// StatisticsRecession selects the recession period report
	StatisticsRecession = "Recession Period Statistics"
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// EnvPrefix prefixes environment overrides, e.g. AUTOSALES_DATASET_SEED
	EnvPrefix = "AUTOSALES"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the dashboard
	DefaultServerAddress = ":8050"

	// DefaultShutdownTimeoutSeconds bounds graceful shutdown
	DefaultShutdownTimeoutSeconds = 10

	// DefaultChartWidthInches and DefaultChartHeightInches size rendered PNG charts
	DefaultChartWidthInches  = 8
	DefaultChartHeightInches = 5
)

// DashboardTitle is the page heading shown above both reports.
const DashboardTitle = "Automobile Sales Statistics Dashboard"
