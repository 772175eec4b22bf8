package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Paths contains all resolved file system paths for a run.
// This is the single source of truth for where the run reads and writes.
type Paths struct {
	WorkingDir string
	DataDir    string
	OutputsDir string
	LogsDir    string

	// Input
	InputFile string

	// Output files inside OutputsDir
	ReportFile string
	ChartFile  string
	CSVFile    string
	JSONFile   string

	// Log file
	LogFile string
}

// NewPaths resolves all paths from the configuration.
// Relative paths are resolved against the current working directory,
// which is where the analysis is expected to run from.
func NewPaths(cfg *Config) (*Paths, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	resolve := func(path string) string {
		if filepath.IsAbs(path) {
			return path
		}
		return filepath.Join(wd, path)
	}

	inputFile := resolve(cfg.Input.Path)
	outputsDir := resolve(cfg.Output.Dir)
	logFile := resolve(cfg.Logging.FilePath)

	return &Paths{
		WorkingDir: wd,
		DataDir:    filepath.Dir(inputFile),
		OutputsDir: outputsDir,
		LogsDir:    filepath.Dir(logFile),

		InputFile: inputFile,

		ReportFile: filepath.Join(outputsDir, cfg.Output.ReportFile),
		ChartFile:  filepath.Join(outputsDir, cfg.Output.ChartFile),
		CSVFile:    filepath.Join(outputsDir, cfg.Output.CSVFile),
		JSONFile:   filepath.Join(outputsDir, cfg.Output.JSONFile),

		LogFile: logFile,
	}, nil
}

// EnsureOutputDir creates the outputs directory if it does not exist.
// It is called only once the run has results to write, so failed runs
// leave no artifacts behind.
func (p *Paths) EnsureOutputDir() error {
	if err := os.MkdirAll(p.OutputsDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", p.OutputsDir, err)
	}
	return nil
}

// GetOutputPath returns the path for a file inside the outputs directory
func (p *Paths) GetOutputPath(filename string) string {
	return filepath.Join(p.OutputsDir, filename)
}

// FileExists checks if a file exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// LogPathResolution logs the resolved paths for debugging
func (p *Paths) LogPathResolution() {
	logger := slog.Default()
	if logger == nil {
		return
	}

	logger.Debug("Path resolution summary",
		slog.Group("directories",
			slog.String("working", p.WorkingDir),
			slog.String("data", p.DataDir),
			slog.String("outputs", p.OutputsDir),
			slog.String("logs", p.LogsDir),
		),
		slog.Group("files",
			slog.String("input", p.InputFile),
			slog.String("report", p.ReportFile),
			slog.String("chart", p.ChartFile),
			slog.String("csv", p.CSVFile),
			slog.String("json", p.JSONFile),
		))
}
