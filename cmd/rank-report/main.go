package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"rankcli/internal/config"
	apperrors "rankcli/internal/errors"
	"rankcli/internal/infrastructure"
	"rankcli/internal/ranking"
	"rankcli/internal/report"
	"rankcli/internal/survey"
)

func main() {
	input := flag.String("input", "", "survey spreadsheet to analyze (.xlsx or .csv, defaults to data/data.xlsx)")
	sheet := flag.String("sheet", "", "workbook sheet to read (defaults to Sheet1)")
	out := flag.String("out", "", "output directory for reports (defaults to outputs)")
	reportFile := flag.String("report", "", "text report file name inside the output directory")
	chartFile := flag.String("chart", "", "chart image file name inside the output directory")
	csvFile := flag.String("csv", "", "CSV export file name inside the output directory")
	jsonFile := flag.String("json", "", "JSON export file name inside the output directory")
	configFile := flag.String("config", "", "config file path (defaults to config.yaml, configs/config.yaml)")
	quiet := flag.Bool("quiet", false, "suppress progress output on stdout")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	applyFlags(cfg, *input, *sheet, *out, *reportFile, *chartFile, *csvFile, *jsonFile)

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	paths, err := config.NewPaths(cfg)
	if err != nil {
		logger.Error("Failed to resolve paths", "error", err)
		os.Exit(1)
	}
	paths.LogPathResolution()

	// One trace ID for the whole run so every log line can be correlated.
	ctx := infrastructure.ContextWithTraceID(context.Background())

	logger.InfoContext(ctx, "Starting ranking analysis",
		slog.String("input", paths.InputFile),
		slog.String("outputs_dir", paths.OutputsDir))

	summaries, err := run(ctx, cfg, paths, *quiet)
	if err != nil {
		switch {
		case apperrors.IsType(err, apperrors.ErrTypeInput):
			fmt.Printf("Error: %s not found.\n", paths.InputFile)
			logger.ErrorContext(ctx, "Input file missing", "error", err)
			os.Exit(1)
		case apperrors.IsType(err, apperrors.ErrTypeNoColumns):
			fmt.Println("No ranking columns found.")
			logger.InfoContext(ctx, "Run halted: no ranking columns", "error", err)
			return
		case apperrors.IsType(err, apperrors.ErrTypeEmpty):
			fmt.Println("No rankings could be calculated.")
			logger.InfoContext(ctx, "Run halted: no rankings derived", "error", err)
			return
		default:
			logger.ErrorContext(ctx, "Ranking analysis failed", "error", err)
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	if !*quiet {
		fmt.Println()
		fmt.Print(report.Render(summaries))
	}

	logger.InfoContext(ctx, "Ranking analysis completed",
		slog.Int("courses", len(summaries)),
		slog.String("report", paths.ReportFile),
		slog.String("chart", paths.ChartFile))
}

// run executes the whole analysis pipeline and returns the sorted course
// summaries. The typed errors for a missing input, no ranking columns and
// an empty aggregation pass through for main to translate into the
// user-facing halt behavior; no outputs are written on any error.
func run(ctx context.Context, cfg *config.Config, paths *config.Paths, quiet bool) ([]ranking.CourseSummary, error) {
	progress := func(format string, args ...any) {
		if !quiet {
			fmt.Printf(format+"\n", args...)
		}
	}

	progress("Loading data from %s...", paths.InputFile)
	table, err := survey.ReadTable(ctx, paths.InputFile, cfg.Input.Sheet)
	if err != nil {
		return nil, err
	}

	cols, err := survey.ClassifyColumns(table.Headers)
	if err != nil {
		return nil, err
	}
	progress("Found %d ranking columns.", len(cols))

	progress("Calculating global rankings...")
	records := ranking.Flatten(ctx, table, cols)

	summaries, err := ranking.Aggregate(ctx, records)
	if err != nil {
		return nil, err
	}

	if err := paths.EnsureOutputDir(); err != nil {
		return nil, apperrors.NewStorageError("failed to create outputs directory", err)
	}

	if err := report.WriteText(paths.ReportFile, summaries); err != nil {
		return nil, err
	}
	progress("Ranking text saved to %s", paths.ReportFile)

	if err := report.WriteCSV(paths.CSVFile, summaries); err != nil {
		return nil, err
	}
	if err := report.WriteJSON(paths.JSONFile, summaries); err != nil {
		return nil, err
	}

	progress("Generating visualization...")
	if err := report.WriteChart(paths.ChartFile, summaries, cfg.Output.ChartWidth, cfg.Output.ChartHeight); err != nil {
		return nil, err
	}
	progress("Ranking plot saved to %s", paths.ChartFile)

	return summaries, nil
}

// applyFlags overlays non-empty flag values onto the loaded configuration.
// Flags take precedence over environment variables and the config file.
func applyFlags(cfg *config.Config, input, sheet, out, reportFile, chartFile, csvFile, jsonFile string) {
	if input != "" {
		cfg.Input.Path = input
	}
	if sheet != "" {
		cfg.Input.Sheet = sheet
	}
	if out != "" {
		cfg.Output.Dir = out
	}
	if reportFile != "" {
		cfg.Output.ReportFile = reportFile
	}
	if chartFile != "" {
		cfg.Output.ChartFile = chartFile
	}
	if csvFile != "" {
		cfg.Output.CSVFile = csvFile
	}
	if jsonFile != "" {
		cfg.Output.JSONFile = jsonFile
	}
}
