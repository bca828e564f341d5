package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/iwvelando/automobile-sales/pkg/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfiguration(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		missing    bool
		wantError  bool
		wantSeed   uint64
		wantAddr   string
		wantFormat string
	}{
		{
			name:       "Non-existent config file uses defaults",
			missing:    true,
			wantSeed:   constants.DefaultSeed,
			wantAddr:   constants.DefaultServerAddress,
			wantFormat: constants.OutputFormatPretty,
		},
		{
			name: "Full config file",
			content: `dataset:
  seed: 7
server:
  address: ":9000"
  shutdownTimeout: 3s
output:
  format: json
`,
			wantSeed:   7,
			wantAddr:   ":9000",
			wantFormat: constants.OutputFormatJSON,
		},
		{
			name:       "Partial config keeps defaults",
			content:    "logging:\n  level: debug\n",
			wantSeed:   constants.DefaultSeed,
			wantAddr:   constants.DefaultServerAddress,
			wantFormat: constants.OutputFormatPretty,
		},
		{
			name:      "Malformed YAML",
			content:   "dataset: [unclosed",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nonexistent.yaml")
			if !tt.missing {
				path = writeConfig(t, tt.content)
			}

			config, err := LoadConfiguration(path)
			if tt.wantError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSeed, config.Dataset.Seed)
			assert.Equal(t, tt.wantAddr, config.Server.Address)
			assert.Equal(t, tt.wantFormat, config.Output.Format)
		})
	}
}

func TestLoadConfigurationDuration(t *testing.T) {
	path := writeConfig(t, "server:\n  shutdownTimeout: 3s\n")
	config, err := LoadConfiguration(path)
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, config.Server.ShutdownTimeout)
}

func TestLoadConfigurationEnvOverride(t *testing.T) {
	t.Setenv("AUTOSALES_DATASET_SEED", "99")
	t.Setenv("AUTOSALES_SERVER_ADDRESS", ":7000")

	config, err := LoadConfiguration("")
	require.NoError(t, err)
	assert.Equal(t, uint64(99), config.Dataset.Seed)
	assert.Equal(t, ":7000", config.Server.Address)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, LoadDotEnv(filepath.Join(dir, "missing.env")), "missing .env should not fail")

	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("AUTOSALES_OUTPUT_FORMAT=csv\n"), 0o600))
	t.Setenv("AUTOSALES_OUTPUT_FORMAT", "")
	require.NoError(t, os.Unsetenv("AUTOSALES_OUTPUT_FORMAT"))

	require.NoError(t, LoadDotEnv(path))
	config, err := LoadConfiguration("")
	require.NoError(t, err)
	assert.Equal(t, constants.OutputFormatCSV, config.Output.Format)
}

func TestValidateConfiguration(t *testing.T) {
	tests := []struct {
		name          string
		modify        func(c *Configuration)
		expectedCount int
		contains      string
	}{
		{
			name:          "Defaults are clean",
			modify:        func(c *Configuration) {},
			expectedCount: 0,
		},
		{
			name:          "Bad output format",
			modify:        func(c *Configuration) { c.Output.Format = "xml" },
			expectedCount: 1,
			contains:      "output format",
		},
		{
			name:          "Unknown statistics",
			modify:        func(c *Configuration) { c.Output.Statistics = "Monthly" },
			expectedCount: 1,
			contains:      "statistics",
		},
		{
			name:          "Year out of range",
			modify:        func(c *Configuration) { c.Output.Year = 1979 },
			expectedCount: 1,
			contains:      "1979",
		},
		{
			name: "Year ignored for recession",
			modify: func(c *Configuration) {
				c.Output.Statistics = constants.StatisticsRecession
				c.Output.Year = 1979
			},
			expectedCount: 0,
		},
		{
			name: "Server problems",
			modify: func(c *Configuration) {
				c.Server.Address = ""
				c.Server.ShutdownTimeout = 0
			},
			expectedCount: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := Default()
			tt.modify(config)
			warnings := config.ValidateConfiguration()
			require.Len(t, warnings, tt.expectedCount)
			if tt.contains != "" {
				assert.Contains(t, warnings[0], tt.contains)
			}
		})
	}
}

func TestConfigurationYAML(t *testing.T) {
	data, err := Default().YAML()
	require.NoError(t, err)
	assert.Contains(t, string(data), "shutdownTimeout: 10s")

	var decoded map[string]interface{}
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	for _, key := range []string{"dataset", "server", "logging", "output", "export"} {
		assert.Contains(t, decoded, key)
	}

	reloaded, err := LoadConfigurationFromReader(strings.NewReader(string(data)))
	require.NoError(t, err)
	assert.Equal(t, *Default(), *reloaded)
}
