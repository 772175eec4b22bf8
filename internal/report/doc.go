// Package report writes the per-course ranking summaries to their output
// formats: a fixed-width text report, CSV and JSON exports, and a horizontal
// bar chart image.
//
// All writers take the summaries in their final sorted order (ascending by
// average global rank) and preserve it; ordering decisions belong to the
// aggregation step, not to presentation.
//
// # Usage
//
//	if err := report.WriteText(paths.ReportFile, summaries); err != nil {
//	    return err
//	}
//	if err := report.WriteChart(paths.ChartFile, summaries, 12, 8); err != nil {
//	    return err
//	}
//
// # Error Handling
//
// Writers create missing parent directories and wrap every failure as a
// typed storage error.
package report
