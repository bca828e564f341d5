package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name      string
		format    string
		expectErr bool
	}{
		{
			name:      "Valid pretty format",
			format:    "pretty",
			expectErr: false,
		},
		{
			name:      "Valid csv format",
			format:    "csv",
			expectErr: false,
		},
		{
			name:      "Valid json format",
			format:    "json",
			expectErr: false,
		},
		{
			name:      "Empty format",
			format:    "",
			expectErr: true,
		},
		{
			name:      "Case sensitive - uppercase",
			format:    "PRETTY",
			expectErr: true,
		},
		{
			name:      "Leading/trailing spaces",
			format:    " csv ",
			expectErr: true,
		},
		{
			name:      "XML format not supported",
			format:    "xml",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateStatistics(t *testing.T) {
	tests := []struct {
		statistics string
		expectErr  bool
	}{
		{"Yearly Statistics", false},
		{"Recession Period Statistics", false},
		{"yearly", false},
		{"recession", false},
		{"", true},
		{"Monthly Statistics", true},
	}

	for _, tt := range tests {
		t.Run(tt.statistics, func(t *testing.T) {
			err := ValidateStatistics(tt.statistics)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestYearWarning(t *testing.T) {
	tests := []struct {
		year        int
		expectEmpty bool
	}{
		{1980, true},
		{2013, true},
		{1995, true},
		{1979, false},
		{2014, false},
	}

	for _, tt := range tests {
		warning := YearWarning(tt.year)
		assert.Equal(t, tt.expectEmpty, warning == "", "YearWarning(%d) = %q", tt.year, warning)
	}
}
