// Package survey handles ingestion of course preference survey exports.
// It reads the raw spreadsheet into a header-keyed table and recognizes the
// ranking columns that carry bucketed course preferences.
//
// # Architecture
//
// The package has two components:
//
// 1. Reader: loads an .xlsx or .csv export into a ResponseTable
// 2. Classifier: scans headers for ranking columns and extracts each
// column's bucket and course
//
// # Usage
//
// Reading an export:
//
//	table, err := survey.ReadTable(ctx, "data/data.xlsx", "Sheet1")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Recognizing ranking columns:
//
//	cols, err := survey.ClassifyColumns(table.Headers)
//	if err != nil {
//	    // no header matched the ranking pattern
//	}
//
// # Column Headers
//
// Ranking columns follow the export convention
//
//	<prefix> - Ranks - <category> - <course> - Rank
//
// where <category> is one of "Most Beneficial", "Neutral" or
// "Least Beneficial". All other columns are ignored.
//
// # Error Handling
//
// A missing input file and a table without ranking columns are reported as
// typed application errors so the driver can distinguish them from
// unexpected failures.
package survey
