package report

import (
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	apperrors "rankcli/internal/errors"
	"rankcli/internal/ranking"
)

// barColor is the fill color of the ranking bars
var barColor = color.RGBA{R: 0x35, G: 0xb7, B: 0x79, A: 0xff}

// WriteChart renders the summaries as a horizontal bar chart PNG: one bar
// per course, best (lowest) average rank at the top, each bar annotated
// with its average to two decimals. Width and height are in inches.
func WriteChart(path string, summaries []ranking.CourseSummary, width, height float64) error {
	p := plot.New()
	p.Title.Text = "Average Course Ranking (Lower Rank = More Beneficial)"
	p.X.Label.Text = "Average Global Rank"
	p.Y.Label.Text = "Course"

	// NominalY puts index 0 at the bottom of the axis, so positions are
	// reversed to keep the best course on top.
	values := make(plotter.Values, len(summaries))
	courses := make([]string, len(summaries))
	labels := plotter.XYLabels{
		XYs:    make(plotter.XYs, len(summaries)),
		Labels: make([]string, len(summaries)),
	}
	var maxRank float64
	for i, s := range summaries {
		j := len(summaries) - 1 - i
		values[j] = s.AverageRank
		courses[j] = s.Course
		labels.XYs[j] = plotter.XY{X: s.AverageRank, Y: float64(j)}
		labels.Labels[j] = " " + formatFloat(s.AverageRank)
		if s.AverageRank > maxRank {
			maxRank = s.AverageRank
		}
	}

	bars, err := plotter.NewBarChart(values, vg.Points(18))
	if err != nil {
		return apperrors.NewStorageError("failed to build bar chart", err)
	}
	bars.Horizontal = true
	bars.Color = barColor
	bars.LineStyle.Width = 0

	annotations, err := plotter.NewLabels(labels)
	if err != nil {
		return apperrors.NewStorageError("failed to build bar annotations", err)
	}

	p.Add(bars, annotations)
	p.NominalY(courses...)
	p.X.Min = 0
	// Headroom on the right so the annotations stay inside the frame.
	p.X.Max = maxRank * 1.1

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return apperrors.NewStorageError(fmt.Sprintf("failed to create directory for %s", path), err)
	}

	if err := p.Save(vg.Length(width)*vg.Inch, vg.Length(height)*vg.Inch, path); err != nil {
		return apperrors.NewStorageError(fmt.Sprintf("failed to save chart %s", path), err)
	}

	slog.Info("Ranking chart written",
		slog.String("path", path),
		slog.Int("bars", len(summaries)))

	return nil
}
