package survey

import "fmt"

// RespondentIDColumn is the header of the optional respondent identifier
// column. Rows without it are identified by their position.
const RespondentIDColumn = "Response ID"

// Bucket identifies the preference bucket a ranking column belongs to.
// The integer value is the bucket's flattening priority: lower comes first.
type Bucket int

const (
	// BucketMostBeneficial holds the courses a respondent found most beneficial
	BucketMostBeneficial Bucket = iota
	// BucketNeutral holds the courses a respondent was neutral about
	BucketNeutral
	// BucketLeastBeneficial holds the courses a respondent found least beneficial
	BucketLeastBeneficial
)

// Buckets returns all buckets in flattening priority order
func Buckets() []Bucket {
	return []Bucket{BucketMostBeneficial, BucketNeutral, BucketLeastBeneficial}
}

// String returns the category literal used in column headers
func (b Bucket) String() string {
	switch b {
	case BucketMostBeneficial:
		return "Most Beneficial"
	case BucketNeutral:
		return "Neutral"
	case BucketLeastBeneficial:
		return "Least Beneficial"
	default:
		return fmt.Sprintf("Bucket(%d)", int(b))
	}
}

// IsValid checks if the bucket is one of the three known categories
func (b Bucket) IsValid() bool {
	return b >= BucketMostBeneficial && b <= BucketLeastBeneficial
}

// ParseBucket maps a category literal from a column header to its bucket
func ParseBucket(category string) (Bucket, bool) {
	switch category {
	case "Most Beneficial":
		return BucketMostBeneficial, true
	case "Neutral":
		return BucketNeutral, true
	case "Least Beneficial":
		return BucketLeastBeneficial, true
	default:
		return 0, false
	}
}

// Row holds one respondent's cells keyed by trimmed header.
// Cells beyond a short physical row are simply absent.
type Row map[string]string

// ResponseTable is the raw contents of a survey export
type ResponseTable struct {
	Headers []string
	Rows    []Row
}

// ColumnDescriptor describes one recognized ranking column.
// Descriptors keep header encounter order, which later acts as the
// tie-break order when ranks collide within a bucket.
type ColumnDescriptor struct {
	Header string
	Bucket Bucket
	Course string
}
