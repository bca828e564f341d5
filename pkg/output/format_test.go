package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/iwvelando/automobile-sales/internal/dataset"
	"github.com/iwvelando/automobile-sales/internal/report"
	"github.com/iwvelando/automobile-sales/pkg/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() report.Report {
	return report.Report{
		Selection: report.Yearly(2010),
		Aggregates: []report.Aggregate{
			{
				Name:  report.YearlySalesByMonth,
				Title: "Total Monthly Automobile Sales",
				Chart: report.ChartLine,
				Points: []report.Point{
					{Key: "1", X: 1, Value: 5123.5, Count: 5},
					{Key: "2", X: 2, Value: 4980, Count: 5},
				},
			},
			{
				Name:  report.YearlyAdSpendByVehicleType,
				Title: "Total Advertisement Expenditure for Each Vehicle",
				Chart: report.ChartPie,
				Points: []report.Point{
					{Key: "Executivecar", Value: 3000000, Count: 12},
					{Key: "Sports", Value: 1000000, Count: 12},
				},
			},
			{
				Name:   report.YearlySalesByVehicleType,
				Title:  "Average Vehicles Sold by Vehicle Type in the year 2010",
				Chart:  report.ChartBar,
				Points: []report.Point{},
			},
		},
	}
}

func TestPrettyFormat(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrettyFormat(&buf, sampleReport()))
	output := buf.String()

	expected := []string{
		"=== Yearly Statistics (2010) ===",
		"--- Total Monthly Automobile Sales ---",
		"5,123.50",
		"--- Total Advertisement Expenditure for Each Vehicle ---",
		"$3,000,000.00",
		"75.0%",
		"25.0%",
		"(no data)",
	}
	for _, want := range expected {
		assert.Contains(t, output, want)
	}
}

func TestPrettyFormatSeriesLabels(t *testing.T) {
	r := report.Report{
		Selection: report.RecessionPeriod(),
		Aggregates: []report.Aggregate{{
			Name:  report.RecessionUnemploymentEffect,
			Title: "Effect of Unemployment Rate on Vehicle Type and Sales",
			Chart: report.ChartBar,
			Points: []report.Point{
				{Key: "8.25", Series: "Sports", X: 8.25, Value: 410, Count: 1},
			},
		}},
	}

	var buf bytes.Buffer
	require.NoError(t, PrettyFormat(&buf, r))
	assert.Contains(t, buf.String(), "8.25 / Sports")
}

func TestWriteFormats(t *testing.T) {
	tests := []struct {
		name      string
		format    string
		expectErr bool
		contains  string
	}{
		{name: "Pretty", format: constants.OutputFormatPretty, contains: "==="},
		{name: "CSV", format: constants.OutputFormatCSV, contains: "aggregate,key,series,value,count"},
		{name: "JSON", format: constants.OutputFormatJSON, contains: `"aggregates"`},
		{name: "Unknown", format: "xml", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := Write(&buf, tt.format, sampleReport())
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, buf.String(), tt.contains)
		})
	}
}

func TestJSONFormatRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSONFormat(&buf, sampleReport()))

	var decoded struct {
		Selection struct {
			Kind string `json:"kind"`
			Year int    `json:"year"`
		} `json:"selection"`
		Aggregates []report.Aggregate `json:"aggregates"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, constants.StatisticsYearly, decoded.Selection.Kind)
	assert.Equal(t, 2010, decoded.Selection.Year)
	assert.Len(t, decoded.Aggregates, 3)
}

func TestSummaryFormat(t *testing.T) {
	summary := dataset.Generate(nil, constants.DefaultSeed).Summary()

	var buf bytes.Buffer
	require.NoError(t, SummaryFormat(&buf, summary))
	output := buf.String()
	for _, want := range []string{"Records:                   2,040", "1980-2013", "Recession records:         305"} {
		assert.Contains(t, output, want)
	}
}
