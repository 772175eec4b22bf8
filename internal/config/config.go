package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Input   InputConfig   `yaml:"input" envconfig:"INPUT"`
	Output  OutputConfig  `yaml:"output" envconfig:"OUTPUT"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
}

// InputConfig describes where the survey spreadsheet is read from
type InputConfig struct {
	Path  string `yaml:"path" envconfig:"PATH" validate:"required"`
	Sheet string `yaml:"sheet" envconfig:"SHEET" validate:"required"`
}

// OutputConfig describes the report files the run produces
type OutputConfig struct {
	Dir         string  `yaml:"dir" envconfig:"DIR" validate:"required"`
	ReportFile  string  `yaml:"report_file" envconfig:"REPORT_FILE" validate:"required,filename"`
	ChartFile   string  `yaml:"chart_file" envconfig:"CHART_FILE" validate:"required,filename"`
	CSVFile     string  `yaml:"csv_file" envconfig:"CSV_FILE" validate:"required,filename"`
	JSONFile    string  `yaml:"json_file" envconfig:"JSON_FILE" validate:"required,filename"`
	ChartWidth  float64 `yaml:"chart_width" envconfig:"CHART_WIDTH" validate:"gt=0"`
	ChartHeight float64 `yaml:"chart_height" envconfig:"CHART_HEIGHT" validate:"gt=0"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn warning error"`
	Format   string `yaml:"format" envconfig:"FORMAT" validate:"oneof=json text"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" validate:"required"`
}

// Load loads configuration from defaults, an optional YAML file and
// environment variables, in increasing order of precedence.
// An empty configFile means the well-known locations are probed.
func Load(configFile string) (*Config, error) {
	cfg := Default()

	if configFile == "" {
		configFile = getConfigFilePath()
	}
	if configFile != "" {
		if _, err := os.Stat(configFile); err == nil {
			if err := loadFromFile(configFile, cfg); err != nil {
				return nil, fmt.Errorf("failed to load config from file: %w", err)
			}
		}
	}

	// Environment variables override file values
	var envCfg Config
	if err := envconfig.Process("RANK", &envCfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}
	merged := mergeConfigs(*cfg, envCfg)

	if err := merged.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &merged, nil
}

// loadFromFile overlays configuration from a YAML file onto cfg.
// Keys absent from the file keep their current values.
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return err
	}

	return nil
}

// mergeConfigs merges the override config onto the base config.
// Zero-valued override fields keep the base value.
func mergeConfigs(base, override Config) Config {
	if override.Input.Path != "" {
		base.Input.Path = override.Input.Path
	}
	if override.Input.Sheet != "" {
		base.Input.Sheet = override.Input.Sheet
	}

	if override.Output.Dir != "" {
		base.Output.Dir = override.Output.Dir
	}
	if override.Output.ReportFile != "" {
		base.Output.ReportFile = override.Output.ReportFile
	}
	if override.Output.ChartFile != "" {
		base.Output.ChartFile = override.Output.ChartFile
	}
	if override.Output.CSVFile != "" {
		base.Output.CSVFile = override.Output.CSVFile
	}
	if override.Output.JSONFile != "" {
		base.Output.JSONFile = override.Output.JSONFile
	}
	if override.Output.ChartWidth != 0 {
		base.Output.ChartWidth = override.Output.ChartWidth
	}
	if override.Output.ChartHeight != 0 {
		base.Output.ChartHeight = override.Output.ChartHeight
	}

	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}
	if override.Logging.Format != "" {
		base.Logging.Format = override.Logging.Format
	}
	if override.Logging.Output != "" {
		base.Logging.Output = override.Logging.Output
	}
	if override.Logging.FilePath != "" {
		base.Logging.FilePath = override.Logging.FilePath
	}

	return base
}

// validate validates the configuration using struct tags
func (c *Config) validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, formatValidationError(fe))
			}
			return fmt.Errorf("%s", strings.Join(msgs, "; "))
		}
		return err
	}
	return nil
}

// getConfigFilePath returns the path to the config file
func getConfigFilePath() string {
	locations := []string{
		"config.yaml",
		"configs/config.yaml",
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}

	return "" // No config file found, use env vars only
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Input: InputConfig{
			Path:  "data/data.xlsx",
			Sheet: "Sheet1",
		},
		Output: OutputConfig{
			Dir:         "outputs",
			ReportFile:  "ranking.txt",
			ChartFile:   "rank_order.png",
			CSVFile:     "ranking.csv",
			JSONFile:    "ranking.json",
			ChartWidth:  12,
			ChartHeight: 8,
		},
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "file",
			FilePath: "logs/rank-report.log",
		},
	}
}
