package report

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rankcli/internal/ranking"
)

func sampleSummaries() []ranking.CourseSummary {
	return []ranking.CourseSummary{
		{Course: "Algorithms", AverageRank: 1.5, Count: 2, StdDev: 0.7071067811865476},
		{Course: "Operating Systems", AverageRank: 2, Count: 3, StdDev: 1},
		{Course: "Ethics", AverageRank: 3.5, Count: 1, StdDev: math.NaN()},
	}
}

func TestRender(t *testing.T) {
	lines := strings.Split(Render(sampleSummaries()), "\n")
	require.Len(t, lines, 8) // banner, rule, blank, header, 3 rows, trailing newline

	assert.Equal(t, "Course Ranking (Based on Average Global Rank - Lower is Better)", lines[0])
	assert.Equal(t, strings.Repeat("=", 64), lines[1])
	assert.Empty(t, lines[2])

	assert.Contains(t, lines[3], "Course")
	assert.Contains(t, lines[3], "Average Rank")

	// The course column pads to the longest name so numeric columns align.
	assert.True(t, strings.HasPrefix(lines[4], "Algorithms        "))
	assert.Len(t, lines[4], len(lines[3]))
	assert.Len(t, lines[5], len(lines[3]))
	assert.Contains(t, lines[4], "1.50")
	assert.Contains(t, lines[5], "2.00")
	assert.Contains(t, lines[6], "NaN")
}

func TestRender_TwoDecimalFormatting(t *testing.T) {
	out := Render([]ranking.CourseSummary{
		{Course: "Databases", AverageRank: 2, Count: 4, StdDev: 0.5},
	})

	assert.Contains(t, out, "2.00")
	assert.Contains(t, out, "0.50")
	assert.NotContains(t, out, " 2 \n")
}

func TestWriteText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "ranking.txt")

	require.NoError(t, WriteText(path, sampleSummaries()))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Render(sampleSummaries()), string(content))
}

func TestWriteText_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ranking.txt")

	require.NoError(t, WriteText(path, sampleSummaries()))
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, WriteText(path, sampleSummaries()))
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
