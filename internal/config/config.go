// Package config defines the data structures related to configuration and
// includes functions for loading and validating it.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/iwvelando/automobile-sales/internal/report"
	"github.com/iwvelando/automobile-sales/pkg/constants"
	"github.com/iwvelando/automobile-sales/pkg/validation"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Configuration holds all configuration for automobile-sales.
type Configuration struct {
	Dataset DatasetConfig `yaml:"dataset" mapstructure:"dataset"`
	Server  ServerConfig  `yaml:"server" mapstructure:"server"`
	Logging LoggingConfig `yaml:"logging,omitempty" mapstructure:"logging"`
	Output  OutputConfig  `yaml:"output,omitempty" mapstructure:"output"`
	Export  ExportConfig  `yaml:"export,omitempty" mapstructure:"export"`
}

// DatasetConfig controls generation of the synthetic table.
type DatasetConfig struct {
	Seed uint64 `yaml:"seed" mapstructure:"seed"`
}

// ServerConfig defines runtime parameters for the HTTP dashboard.
type ServerConfig struct {
	Address         string        `yaml:"address" mapstructure:"address"`
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout" mapstructure:"shutdownTimeout"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty" mapstructure:"level"`           // debug, info, warn, error
	Format     string `yaml:"format,omitempty" mapstructure:"format"`         // json, console
	OutputFile string `yaml:"outputFile,omitempty" mapstructure:"outputFile"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format     string `yaml:"format,omitempty" mapstructure:"format"` // pretty, csv, json
	Statistics string `yaml:"statistics,omitempty" mapstructure:"statistics"`
	Year       int    `yaml:"year,omitempty" mapstructure:"year"`
}

// ExportConfig controls the export command.
type ExportConfig struct {
	Directory      string `yaml:"directory,omitempty" mapstructure:"directory"`
	IncludeDataset bool   `yaml:"includeDataset" mapstructure:"includeDataset"`
}

// Default returns the configuration used when no file is present.
func Default() *Configuration {
	return &Configuration{
		Dataset: DatasetConfig{Seed: constants.DefaultSeed},
		Server: ServerConfig{
			Address:         constants.DefaultServerAddress,
			ShutdownTimeout: constants.DefaultShutdownTimeoutSeconds * time.Second,
		},
		Logging: LoggingConfig{Level: "info", Format: "json"},
		Output: OutputConfig{
			Format:     constants.OutputFormatPretty,
			Statistics: constants.StatisticsYearly,
			Year:       constants.StartYear,
		},
		Export: ExportConfig{Directory: ".", IncludeDataset: true},
	}
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. A missing file yields the defaults, still subject to
// AUTOSALES_* environment overrides.
func LoadConfiguration(configPath string) (*Configuration, error) {
	if configPath == "" {
		return LoadConfigurationFromReader(nil)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return LoadConfigurationFromReader(nil)
		}
		return nil, fmt.Errorf("error reading config file, %w", err)
	}
	return LoadConfigurationFromReader(bytes.NewReader(data))
}

// LoadConfigurationFromReader loads YAML configuration from r. A nil reader
// yields the defaults with environment overrides applied.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := newViper()

	if r != nil {
		if err := v.ReadConfig(r); err != nil {
			return nil, fmt.Errorf("error reading config data, %w", err)
		}
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}
	return &configuration, nil
}

// LoadDotEnv loads environment variables from an optional .env file. A
// missing file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := Default()
	v.SetDefault("dataset.seed", defaults.Dataset.Seed)
	v.SetDefault("server.address", defaults.Server.Address)
	v.SetDefault("server.shutdownTimeout", defaults.Server.ShutdownTimeout)
	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.format", defaults.Logging.Format)
	v.SetDefault("logging.outputFile", defaults.Logging.OutputFile)
	v.SetDefault("output.format", defaults.Output.Format)
	v.SetDefault("output.statistics", defaults.Output.Statistics)
	v.SetDefault("output.year", defaults.Output.Year)
	v.SetDefault("export.directory", defaults.Export.Directory)
	v.SetDefault("export.includeDataset", defaults.Export.IncludeDataset)
	return v
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if err := validation.ValidateOutputFormat(c.Output.Format); err != nil {
		warnings = append(warnings, err.Error())
	}

	if err := validation.ValidateStatistics(c.Output.Statistics); err != nil {
		warnings = append(warnings, err.Error())
	} else if kind, _ := report.ParseKind(c.Output.Statistics); kind == report.KindYearly {
		if warning := validation.YearWarning(c.Output.Year); warning != "" {
			warnings = append(warnings, warning)
		}
	}

	if c.Server.ShutdownTimeout <= 0 {
		warnings = append(warnings, fmt.Sprintf("server shutdownTimeout %s is not positive; shutdown will not wait for requests",
			c.Server.ShutdownTimeout))
	}

	if c.Server.Address == "" {
		warnings = append(warnings, "server address is empty; the dashboard will listen on :http")
	}

	return warnings
}

// YAML serializes the configuration.
func (c *Configuration) YAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to encode configuration: %w", err)
	}
	return data, nil
}
