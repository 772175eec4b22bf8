// Package ranking turns bucketed survey responses into global course
// rankings and per-course summary statistics.
//
// Respondents rank courses inside three preference buckets. Flatten merges
// each respondent's buckets into a single ordering where a global rank of 1
// is the course the respondent found most beneficial overall. Aggregate then
// reduces those per-respondent orderings to one summary per course, sorted
// so the best average rank comes first.
//
// # Usage
//
//	records := ranking.Flatten(ctx, table, cols)
//	summaries, err := ranking.Aggregate(ctx, records)
//	if err != nil {
//		// no respondent produced a usable ranking
//	}
package ranking
