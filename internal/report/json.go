package report

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"time"

	apperrors "rankcli/internal/errors"
	"rankcli/internal/ranking"
)

// courseJSON is one course's summary in the JSON export. StdDev is a
// pointer because JSON has no NaN; an undefined deviation serializes as
// null.
type courseJSON struct {
	Course      string   `json:"course"`
	AverageRank float64  `json:"average_rank"`
	Count       int      `json:"n"`
	StdDev      *float64 `json:"std_dev"`
}

// reportJSON is the top-level JSON export document
type reportJSON struct {
	GeneratedAt time.Time    `json:"generated_at"`
	Count       int          `json:"count"`
	Courses     []courseJSON `json:"courses"`
}

// WriteJSON exports the summary table as an indented JSON document in
// summary order.
func WriteJSON(path string, summaries []ranking.CourseSummary) error {
	doc := reportJSON{
		GeneratedAt: time.Now().UTC(),
		Count:       len(summaries),
		Courses:     make([]courseJSON, 0, len(summaries)),
	}

	for _, s := range summaries {
		course := courseJSON{
			Course:      s.Course,
			AverageRank: s.AverageRank,
			Count:       s.Count,
		}
		if !math.IsNaN(s.StdDev) {
			stdDev := s.StdDev
			course.StdDev = &stdDev
		}
		doc.Courses = append(doc.Courses, course)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return apperrors.NewStorageError("failed to marshal JSON report", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return apperrors.NewStorageError(fmt.Sprintf("failed to create directory for %s", path), err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return apperrors.NewStorageError(fmt.Sprintf("failed to write JSON report %s", path), err)
	}

	slog.Info("JSON report written",
		slog.String("path", path),
		slog.Int("courses", len(summaries)))

	return nil
}
