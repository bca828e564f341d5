package testutil

import (
	"testing"

	"github.com/iwvelando/automobile-sales/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindAggregate(t *testing.T) {
	aggregates := []report.Aggregate{
		{Name: report.YearlySalesByYear, Points: []report.Point{{Key: "1980", Value: 1000}}},
		{Name: report.YearlySalesByMonth, Points: []report.Point{{Key: "1", Value: 2000}}},
	}

	tests := []struct {
		name          string
		searchName    string
		expectFound   bool
		expectedValue float64
	}{
		{
			name:          "Find existing aggregate",
			searchName:    report.YearlySalesByYear,
			expectFound:   true,
			expectedValue: 1000,
		},
		{
			name:          "Find second aggregate",
			searchName:    report.YearlySalesByMonth,
			expectFound:   true,
			expectedValue: 2000,
		},
		{
			name:        "Search for non-existent aggregate",
			searchName:  "missing",
			expectFound: false,
		},
		{
			name:        "Empty search name",
			searchName:  "",
			expectFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FindAggregate(aggregates, tt.searchName)
			if !tt.expectFound {
				assert.Nil(t, result)
				return
			}
			require.NotNil(t, result)
			assert.Equal(t, tt.expectedValue, result.Points[0].Value)
		})
	}
}

func TestFindAggregateReturnsPointerIntoSlice(t *testing.T) {
	aggregates := []report.Aggregate{{Name: "a"}}
	result := FindAggregate(aggregates, "a")
	require.NotNil(t, result)
	result.Title = "changed"
	assert.Equal(t, "changed", aggregates[0].Title)
}

func TestFindAggregateEmptySlice(t *testing.T) {
	assert.Nil(t, FindAggregate(nil, "a"))
}

func TestFindPoint(t *testing.T) {
	aggregate := report.Aggregate{Points: []report.Point{
		{Key: "5.5", Series: "Sports", Value: 10},
		{Key: "5.5", Series: "Executivecar", Value: 20},
	}}

	p := FindPoint(aggregate, "5.5", "Executivecar")
	require.NotNil(t, p)
	assert.Equal(t, 20.0, p.Value)
	assert.Nil(t, FindPoint(aggregate, "5.5", ""))
}
