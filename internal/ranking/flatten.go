package ranking

import (
	"context"
	"log/slog"
	"sort"
	"strconv"

	"rankcli/internal/survey"
)

// bucketEntry is a parsed rank cell waiting to be flattened.
type bucketEntry struct {
	course  string
	rawRank float64
}

// Flatten converts each respondent's bucketed ranks into one global ranking.
// Within a bucket, entries order by raw rank; equal raw ranks keep column
// order. Buckets concatenate in priority order, most beneficial first, and
// global positions renumber 1..K per respondent. Blank cells mean the course
// was not placed in that bucket; unparseable cells are skipped with a
// warning, matching how sparse survey exports are tolerated elsewhere.
func Flatten(ctx context.Context, table *survey.ResponseTable, cols []survey.ColumnDescriptor) []Record {
	logger := slog.Default()

	var records []Record
	for i, row := range table.Rows {
		respondent := row[survey.RespondentIDColumn]
		if respondent == "" {
			respondent = strconv.Itoa(i)
		}

		buckets := make([][]bucketEntry, len(survey.Buckets()))
		for _, col := range cols {
			cell := row[col.Header]
			if cell == "" {
				continue
			}

			rank, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				logger.WarnContext(ctx, "skipping unparseable rank cell",
					"respondent", respondent,
					"column", col.Header,
					"value", cell)
				continue
			}

			buckets[col.Bucket] = append(buckets[col.Bucket], bucketEntry{
				course:  col.Course,
				rawRank: rank,
			})
		}

		globalRank := 0
		for _, bucket := range buckets {
			// Stable sort keeps column order for equal raw ranks.
			sort.SliceStable(bucket, func(a, b int) bool {
				return bucket[a].rawRank < bucket[b].rawRank
			})

			for _, entry := range bucket {
				globalRank++
				records = append(records, Record{
					Respondent: respondent,
					Course:     entry.course,
					GlobalRank: globalRank,
				})
			}
		}
	}

	logger.InfoContext(ctx, "global rankings calculated",
		"respondents", len(table.Rows),
		"records", len(records))

	return records
}
