// Package parser provides the excelize-facing read and write helpers.
package parser

import (
	"errors"
	"strconv"

	"github.com/ukaji3/scorelens/pkg/scorelens/models"
	"github.com/xuri/excelize/v2"
)

// ErrNoColumns indicates the header row of the sheet is empty.
var ErrNoColumns = errors.New("sheet has no header columns")

// ReadTable reads a sheet into a Table. Row 1 supplies the column names,
// all later rows become data rows in sheet order. Cell values keep their
// native type: int64 for integers, float64 for decimals, string for text,
// nil for empty cells. Ragged rows are padded with nil to the column count.
func ReadTable(f *excelize.File, sheetName string) (models.Table, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return models.Table{}, err
	}

	header := headerNames(rows)
	if len(header) == 0 {
		return models.Table{}, ErrNoColumns
	}

	t := models.Table{Columns: header}
	for _, row := range rows[1:] {
		values := make([]any, len(header))
		for j := range header {
			if j < len(row) && row[j] != "" {
				values[j] = parseValue(row[j])
			}
		}
		t.Rows = append(t.Rows, values)
	}
	return t, nil
}

// ReadHeader returns the row-1 header names of a sheet.
func ReadHeader(f *excelize.File, sheetName string) ([]string, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}
	return headerNames(rows), nil
}

// headerNames extracts row 1 trimmed of trailing empty cells.
func headerNames(rows [][]string) []string {
	if len(rows) == 0 {
		return nil
	}
	header := rows[0]
	end := len(header)
	for end > 0 && header[end-1] == "" {
		end--
	}
	return header[:end]
}

// parseValue attempts to parse a cell's string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) any {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Return as string
	return s
}
