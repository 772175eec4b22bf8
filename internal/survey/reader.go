package survey

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	apperrors "rankcli/internal/errors"
)

// ReadTable loads a survey export into a ResponseTable. Files with a .csv
// extension are read as CSV; everything else is read as an Excel workbook
// from the given sheet. A missing file is reported as a typed input error.
func ReadTable(ctx context.Context, path, sheet string) (*ResponseTable, error) {
	logger := slog.Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, apperrors.NewInputError(fmt.Sprintf("%s not found", path), err)
	}

	var rows [][]string
	var err error

	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".csv" {
		rows, err = readCSVRows(path)
	} else {
		rows, err = readExcelRows(path, sheet)
	}
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, apperrors.NewParsingError(fmt.Sprintf("%s has no header row", path), nil)
	}

	table := buildTable(rows)

	logger.InfoContext(ctx, "survey export loaded",
		"path", path,
		"columns", len(table.Headers),
		"respondents", len(table.Rows))

	return table, nil
}

// readExcelRows reads raw cell values from the named sheet, falling back to
// the workbook's first sheet when the named one is absent.
func readExcelRows(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, apperrors.NewParsingError(fmt.Sprintf("failed to open workbook %s", path), err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		fallback := f.GetSheetName(0)
		if fallback == "" || fallback == sheet {
			return nil, apperrors.NewParsingError(fmt.Sprintf("failed to read sheet %q", sheet), err)
		}
		rows, err = f.GetRows(fallback)
		if err != nil {
			return nil, apperrors.NewParsingError(fmt.Sprintf("failed to read sheet %q", fallback), err)
		}
	}

	return rows, nil
}

// readCSVRows reads raw records from a CSV export
func readCSVRows(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, apperrors.NewInputError(fmt.Sprintf("failed to open %s", path), err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	// Survey exports may have ragged rows; length checks happen per cell.
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, apperrors.NewParsingError(fmt.Sprintf("failed to read %s", path), err)
	}

	return rows, nil
}

// buildTable converts raw rows into a header-keyed table.
// Headers and cells are whitespace-trimmed; cells beyond the header count
// are dropped and short rows leave their trailing headers unset.
func buildTable(rows [][]string) *ResponseTable {
	headerRow := rows[0]
	headers := make([]string, len(headerRow))
	for i, header := range headerRow {
		headers[i] = strings.TrimSpace(header)
	}

	dataRows := make([]Row, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rowData := make(Row, len(headers))
		for j, cell := range row {
			if j < len(headers) {
				rowData[headers[j]] = strings.TrimSpace(cell)
			}
		}
		dataRows = append(dataRows, rowData)
	}

	return &ResponseTable{
		Headers: headers,
		Rows:    dataRows,
	}
}
