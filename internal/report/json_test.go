package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "ranking.json")

	require.NoError(t, WriteJSON(path, sampleSummaries()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc struct {
		GeneratedAt string `json:"generated_at"`
		Count       int    `json:"count"`
		Courses     []struct {
			Course      string   `json:"course"`
			AverageRank float64  `json:"average_rank"`
			Count       int      `json:"n"`
			StdDev      *float64 `json:"std_dev"`
		} `json:"courses"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.NotEmpty(t, doc.GeneratedAt)
	require.Equal(t, 3, doc.Count)
	require.Len(t, doc.Courses, 3)

	assert.Equal(t, "Algorithms", doc.Courses[0].Course)
	assert.InDelta(t, 1.5, doc.Courses[0].AverageRank, 1e-9)
	require.NotNil(t, doc.Courses[0].StdDev)
	assert.InDelta(t, 0.70710678, *doc.Courses[0].StdDev, 1e-6)

	// A single-respondent course has no sample deviation.
	assert.Equal(t, "Ethics", doc.Courses[2].Course)
	assert.Nil(t, doc.Courses[2].StdDev)
}
