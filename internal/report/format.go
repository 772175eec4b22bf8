package report

import (
	"math"
	"strconv"
)

// formatFloat formats a value with exactly 2 decimal places, so an average
// of 1.5 renders as 1.50 in every output format.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}

// formatStdDev renders a standard deviation cell. A course ranked by fewer
// than two respondents has no sample deviation and renders as NaN.
func formatStdDev(f float64) string {
	if math.IsNaN(f) {
		return "NaN"
	}
	return formatFloat(f)
}
