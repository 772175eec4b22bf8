package ranking

import (
	"context"
	"log/slog"
	"math"
	"sort"

	"github.com/montanaflynn/stats"

	apperrors "rankcli/internal/errors"
)

// Aggregate reduces flattened records to one summary per course, sorted
// ascending by average global rank. Ties keep first-appearance order. An
// empty record set returns a typed error so the driver can halt gracefully.
func Aggregate(ctx context.Context, records []Record) ([]CourseSummary, error) {
	if len(records) == 0 {
		return nil, apperrors.NewEmptyAggregationError()
	}

	ranksByCourse := make(map[string][]float64)
	var courseOrder []string
	for _, rec := range records {
		if _, seen := ranksByCourse[rec.Course]; !seen {
			courseOrder = append(courseOrder, rec.Course)
		}
		ranksByCourse[rec.Course] = append(ranksByCourse[rec.Course], float64(rec.GlobalRank))
	}

	summaries := make([]CourseSummary, 0, len(courseOrder))
	for _, course := range courseOrder {
		ranks := ranksByCourse[course]

		// Mean cannot fail here: every listed course has at least one rank.
		mean, _ := stats.Mean(ranks)

		// Sample standard deviation needs two observations.
		stdDev := math.NaN()
		if len(ranks) >= 2 {
			stdDev, _ = stats.StandardDeviationSample(ranks)
		}

		summaries = append(summaries, CourseSummary{
			Course:      course,
			AverageRank: mean,
			Count:       len(ranks),
			StdDev:      stdDev,
		})
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].AverageRank < summaries[j].AverageRank
	})

	slog.Default().InfoContext(ctx, "course summaries aggregated",
		"courses", len(summaries),
		"records", len(records))

	return summaries, nil
}
