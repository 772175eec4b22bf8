package report

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	apperrors "rankcli/internal/errors"
	"rankcli/internal/ranking"
)

// reportBanner is the first line of the text report
const reportBanner = "Course Ranking (Based on Average Global Rank - Lower is Better)"

// Render builds the full text report: the banner, a separator rule, then
// the fixed-width summary table with the best (lowest) average rank first.
func Render(summaries []ranking.CourseSummary) string {
	var b strings.Builder

	b.WriteString(reportBanner + "\n")
	b.WriteString(strings.Repeat("=", 64) + "\n\n")

	courseWidth := len("Course")
	for _, s := range summaries {
		if len(s.Course) > courseWidth {
			courseWidth = len(s.Course)
		}
	}

	fmt.Fprintf(&b, "%-*s  %12s  %5s  %8s\n", courseWidth, "Course", "Average Rank", "N", "Std Dev")
	for _, s := range summaries {
		fmt.Fprintf(&b, "%-*s  %12s  %5d  %8s\n",
			courseWidth, s.Course,
			formatFloat(s.AverageRank),
			s.Count,
			formatStdDev(s.StdDev))
	}

	return b.String()
}

// WriteText writes the rendered report to path as UTF-8 text, creating the
// parent directory as needed.
func WriteText(path string, summaries []ranking.CourseSummary) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return apperrors.NewStorageError(fmt.Sprintf("failed to create directory for %s", path), err)
	}

	if err := os.WriteFile(path, []byte(Render(summaries)), 0644); err != nil {
		return apperrors.NewStorageError(fmt.Sprintf("failed to write text report %s", path), err)
	}

	slog.Info("Text report written",
		slog.String("path", path),
		slog.Int("courses", len(summaries)))

	return nil
}
