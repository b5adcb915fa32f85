package parser

import (
	"github.com/ukaji3/scorelens/pkg/scorelens/models"
	"github.com/xuri/excelize/v2"
)

// ApplyTable writes the table's values into the sheet's data region,
// row i into sheet row i+2 (row 1 is the header and is never touched).
// Only cell values change; the style index at each position is left as is,
// so surviving rows keep their original formatting.
func ApplyTable(f *excelize.File, sheetName string, t models.Table) error {
	for i, row := range t.Rows {
		for j, v := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return err
			}
		}
	}
	return nil
}

// TrimRows deletes every sheet row past lastKeep, bottom-up so row numbers
// stay stable while deleting. Styles of removed rows go with them.
func TrimRows(f *excelize.File, sheetName string, lastKeep int) error {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return err
	}
	for r := len(rows); r > lastKeep; r-- {
		if err := f.RemoveRow(sheetName, r); err != nil {
			return err
		}
	}
	return nil
}
