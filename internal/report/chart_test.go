package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteChart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "charts", "rank_order.png")

	require.NoError(t, WriteChart(path, sampleSummaries(), 12, 8))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestWriteChart_SingleCourse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rank_order.png")

	require.NoError(t, WriteChart(path, sampleSummaries()[:1], 12, 8))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
