package ranking

// Record is one course's global position in one respondent's flattened
// ranking. GlobalRank starts at 1 and lower is better.
type Record struct {
	Respondent string
	Course     string
	GlobalRank int
}

// CourseSummary aggregates one course's global ranks across all respondents.
// StdDev is the sample standard deviation and is NaN when the course was
// ranked by fewer than two respondents.
type CourseSummary struct {
	Course      string
	AverageRank float64
	Count       int
	StdDev      float64
}
