package report

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	apperrors "rankcli/internal/errors"
	"rankcli/internal/ranking"
)

// csvHeader is the column layout of the CSV export
var csvHeader = []string{"Course", "AverageRank", "N", "StdDev"}

// WriteCSV exports the summary table as a CSV report, one row per course in
// summary order.
func WriteCSV(path string, summaries []ranking.CourseSummary) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return apperrors.NewStorageError(fmt.Sprintf("failed to create directory for %s", path), err)
	}

	file, err := os.Create(path)
	if err != nil {
		return apperrors.NewStorageError(fmt.Sprintf("failed to create CSV report %s", path), err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if err := writer.Write(csvHeader); err != nil {
		return apperrors.NewStorageError("failed to write CSV header", err)
	}

	for _, s := range summaries {
		record := []string{
			s.Course,
			formatFloat(s.AverageRank),
			strconv.Itoa(s.Count),
			formatStdDev(s.StdDev),
		}
		if err := writer.Write(record); err != nil {
			return apperrors.NewStorageError(fmt.Sprintf("failed to write CSV record for %s", s.Course), err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return apperrors.NewStorageError(fmt.Sprintf("failed to flush CSV report %s", path), err)
	}

	slog.Info("CSV report written",
		slog.String("path", path),
		slog.Int("courses", len(summaries)))

	return nil
}
