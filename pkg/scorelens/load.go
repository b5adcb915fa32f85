// Package scorelens loads score spreadsheets, analyzes score distributions,
// and writes edited values back into the original workbook without touching
// its formatting.
package scorelens

import (
	"fmt"
	"io"
	"os"

	"github.com/ukaji3/scorelens/pkg/scorelens/models"
	"github.com/ukaji3/scorelens/pkg/scorelens/parser"
	"github.com/xuri/excelize/v2"
)

// Load reads the active sheet of an xlsx stream into a Table. Column names
// come from row 1, data rows from row 2 on, with native cell types kept.
func Load(r io.Reader) (models.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return models.Table{}, &ParseError{Err: fmt.Errorf("%w: %v", ErrInvalidFormat, err)}
	}
	defer f.Close()

	t, err := parser.ReadTable(f, activeSheet(f))
	if err != nil {
		return models.Table{}, &ParseError{Err: err}
	}
	return t, nil
}

// LoadFile reads a Table from an xlsx file on disk.
func LoadFile(path string) (models.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return models.Table{}, err
	}
	defer f.Close()
	return Load(f)
}

// Classify classifies every column of the table for score candidacy.
func Classify(t models.Table) []models.ColumnInfo {
	return parser.ClassifyColumns(t)
}

// ScoreColumns returns the numeric candidate columns in table order.
// Returns ErrNoNumericColumn when nothing survives classification.
func ScoreColumns(t models.Table) ([]string, error) {
	names := parser.ScoreColumns(parser.ClassifyColumns(t))
	if len(names) == 0 {
		return nil, ErrNoNumericColumn
	}
	return names, nil
}

// DefaultColumn picks the default analysis column: the last numeric
// candidate in table order.
func DefaultColumn(t models.Table) (string, error) {
	names, err := ScoreColumns(t)
	if err != nil {
		return "", err
	}
	return names[len(names)-1], nil
}

// activeSheet returns the name of the workbook's active sheet.
func activeSheet(f *excelize.File) string {
	return f.GetSheetName(f.GetActiveSheetIndex())
}
