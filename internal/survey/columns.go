package survey

import (
	"regexp"
	"strings"

	apperrors "rankcli/internal/errors"
)

// rankPattern recognizes ranking column headers of the form
// "<prefix> - Ranks - <category> - <course> - Rank". The course segment is
// greedy, so course names that themselves contain " - " keep their full text.
var rankPattern = regexp.MustCompile(`.* - Ranks - (Most Beneficial|Neutral|Least Beneficial) - (.*) - Rank`)

// ClassifyColumns scans headers for ranking columns and extracts each
// match's bucket and course name. Non-matching headers are ignored.
// Descriptors are returned in header order. When nothing matches, a typed
// no-columns error is returned so the driver can halt gracefully.
func ClassifyColumns(headers []string) ([]ColumnDescriptor, error) {
	var cols []ColumnDescriptor

	for _, header := range headers {
		m := rankPattern.FindStringSubmatch(header)
		if m == nil {
			continue
		}

		bucket, ok := ParseBucket(m[1])
		if !ok {
			continue
		}

		course := strings.TrimSpace(m[2])
		if course == "" {
			continue
		}

		cols = append(cols, ColumnDescriptor{
			Header: header,
			Bucket: bucket,
			Course: course,
		})
	}

	if len(cols) == 0 {
		return nil, apperrors.NewNoColumnsError()
	}

	return cols, nil
}
