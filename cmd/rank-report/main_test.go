package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"rankcli/internal/config"
	apperrors "rankcli/internal/errors"
)

// writeWorkbook builds an xlsx survey fixture with the given header row and
// data rows.
func writeWorkbook(t *testing.T, path string, rows [][]any) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for r, row := range rows {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue("Sheet1", cell, value))
		}
	}

	require.NoError(t, f.SaveAs(path))
}

func testConfig(t *testing.T, inputPath string) (*config.Config, *config.Paths) {
	t.Helper()

	cfg := config.Default()
	cfg.Input.Path = inputPath
	cfg.Output.Dir = filepath.Join(t.TempDir(), "outputs")

	paths, err := config.NewPaths(cfg)
	require.NoError(t, err)
	return cfg, paths
}

func TestRun_TwoRespondentScenario(t *testing.T) {
	// Respondent A puts X in Most Beneficial and Y in Neutral; respondent B
	// reverses the preference with Y in Most Beneficial and X in Least
	// Beneficial. Both courses average 1.50 and X wins the tie by appearing
	// first among the ranking columns.
	mbX := "S - Ranks - Most Beneficial - Course X - Rank"
	mbY := "S - Ranks - Most Beneficial - Course Y - Rank"
	nY := "S - Ranks - Neutral - Course Y - Rank"
	lbX := "S - Ranks - Least Beneficial - Course X - Rank"

	input := filepath.Join(t.TempDir(), "data.xlsx")
	writeWorkbook(t, input, [][]any{
		{"Response ID", mbX, mbY, nY, lbX},
		{"R_A", 1, "", 1, ""},
		{"R_B", "", 1, "", 1},
	})

	cfg, paths := testConfig(t, input)
	summaries, err := run(context.Background(), cfg, paths, true)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	assert.Equal(t, "Course X", summaries[0].Course)
	assert.InDelta(t, 1.5, summaries[0].AverageRank, 1e-9)
	assert.Equal(t, 2, summaries[0].Count)
	assert.Equal(t, "Course Y", summaries[1].Course)
	assert.InDelta(t, 1.5, summaries[1].AverageRank, 1e-9)

	for _, out := range []string{paths.ReportFile, paths.CSVFile, paths.JSONFile, paths.ChartFile} {
		info, err := os.Stat(out)
		require.NoError(t, err, "missing output %s", out)
		assert.Greater(t, info.Size(), int64(0))
	}
}

func TestRun_TextReportIsByteIdentical(t *testing.T) {
	header := []any{"Response ID"}
	row := []any{"R_1"}
	for i, course := range []string{"Algebra", "Networks", "Compilers"} {
		header = append(header, fmt.Sprintf("S - Ranks - Neutral - %s - Rank", course))
		row = append(row, i+1)
	}

	input := filepath.Join(t.TempDir(), "data.xlsx")
	writeWorkbook(t, input, [][]any{header, row})

	cfg, paths := testConfig(t, input)

	_, err := run(context.Background(), cfg, paths, true)
	require.NoError(t, err)
	first, err := os.ReadFile(paths.ReportFile)
	require.NoError(t, err)

	_, err = run(context.Background(), cfg, paths, true)
	require.NoError(t, err)
	second, err := os.ReadFile(paths.ReportFile)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRun_CSVInput(t *testing.T) {
	input := filepath.Join(t.TempDir(), "data.csv")
	csvContent := "Response ID,S - Ranks - Most Beneficial - Algebra - Rank\n" +
		"R_1,1\n"
	require.NoError(t, os.WriteFile(input, []byte(csvContent), 0644))

	cfg, paths := testConfig(t, input)
	summaries, err := run(context.Background(), cfg, paths, true)
	require.NoError(t, err)

	require.Len(t, summaries, 1)
	assert.Equal(t, "Algebra", summaries[0].Course)
	assert.InDelta(t, 1.0, summaries[0].AverageRank, 1e-9)
}

func TestRun_MissingInputWritesNothing(t *testing.T) {
	cfg, paths := testConfig(t, filepath.Join(t.TempDir(), "absent.xlsx"))

	_, err := run(context.Background(), cfg, paths, true)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeInput))

	_, statErr := os.Stat(paths.OutputsDir)
	assert.True(t, os.IsNotExist(statErr), "outputs directory should not be created")
}

func TestRun_NoRankingColumns(t *testing.T) {
	input := filepath.Join(t.TempDir(), "data.xlsx")
	writeWorkbook(t, input, [][]any{
		{"Response ID", "Favorite Color"},
		{"R_1", "green"},
	})

	cfg, paths := testConfig(t, input)

	_, err := run(context.Background(), cfg, paths, true)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeNoColumns))

	_, statErr := os.Stat(paths.OutputsDir)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRun_AllRanksMissing(t *testing.T) {
	input := filepath.Join(t.TempDir(), "data.xlsx")
	writeWorkbook(t, input, [][]any{
		{"Response ID", "S - Ranks - Neutral - Algebra - Rank"},
		{"R_1", ""},
		{"R_2", ""},
	})

	cfg, paths := testConfig(t, input)

	_, err := run(context.Background(), cfg, paths, true)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeEmpty))
}

func TestApplyFlags(t *testing.T) {
	cfg := config.Default()

	applyFlags(cfg, "survey.xlsx", "Responses", "", "out.txt", "", "", "")

	assert.Equal(t, "survey.xlsx", cfg.Input.Path)
	assert.Equal(t, "Responses", cfg.Input.Sheet)
	assert.Equal(t, "outputs", cfg.Output.Dir, "empty flag keeps the configured value")
	assert.Equal(t, "out.txt", cfg.Output.ReportFile)
	assert.Equal(t, "rank_order.png", cfg.Output.ChartFile)
}
