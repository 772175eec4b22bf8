// Package config provides centralized configuration management for the
// ranking analyzer. It handles loading configuration from multiple sources,
// validation, and path resolution for a run.
//
// # Configuration Sources
//
// Configuration is loaded from the following sources in order of precedence:
//
//	1. Environment variables (highest priority)
//	2. Configuration file (YAML)
//	3. Default values (lowest priority)
//
// CLI flags are applied by the driver on top of the loaded configuration.
//
// # Environment Variables
//
// All environment variables follow the pattern RANK_* for namespacing:
//
//	RANK_INPUT_PATH=data/data.xlsx
//	RANK_INPUT_SHEET=Sheet1
//	RANK_OUTPUT_DIR=outputs
//	RANK_LOGGING_LEVEL=info
//
// # Path Management
//
// The package provides centralized path management through the Paths type,
// which resolves all file system paths relative to the working directory:
//
//	paths, err := config.NewPaths(cfg)
//	reportPath := paths.ReportFile
//	chartPath := paths.ChartFile
//
// # Validation
//
// All configuration is validated at load time with struct tags: required
// fields, enumerated values (log level, format, output mode), positive
// chart dimensions, and bare file names for output files.
//
// # Usage
//
// Load configuration at application startup:
//
//	cfg, err := config.Load("")
//	if err != nil {
//	    log.Fatal(err)
//	}
package config
