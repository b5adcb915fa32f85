package scorelens

import (
	"bytes"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/ukaji3/scorelens/pkg/scorelens/models"
	"github.com/xuri/excelize/v2"
)

// buildStyledWorkbook creates a workbook with a bold filled header, a styled
// data region, and widened columns, mimicking a hand-formatted score sheet.
func buildStyledWorkbook(t *testing.T, dataRows int) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Sheet1"

	header := []any{"姓名", "成绩"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		t.Fatalf("Failed to set header: %v", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFF0"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"004225"}},
	})
	if err != nil {
		t.Fatalf("Failed to create header style: %v", err)
	}
	if err := f.SetCellStyle(sheet, "A1", "B1", headerStyle); err != nil {
		t.Fatalf("Failed to style header: %v", err)
	}

	bodyStyle, err := f.NewStyle(&excelize.Style{
		Fill:   excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"D4AF37"}},
		Border: []excelize.Border{{Type: "bottom", Color: "1C1C1C", Style: 1}},
	})
	if err != nil {
		t.Fatalf("Failed to create body style: %v", err)
	}

	for i := 0; i < dataRows; i++ {
		row := []any{fmt.Sprintf("学生%d", i+1), 60 + i}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("Failed to set row %d: %v", i+2, err)
		}
		first, _ := excelize.CoordinatesToCellName(1, i+2)
		last, _ := excelize.CoordinatesToCellName(2, i+2)
		if err := f.SetCellStyle(sheet, first, last, bodyStyle); err != nil {
			t.Fatalf("Failed to style row %d: %v", i+2, err)
		}
	}

	if err := f.SetColWidth(sheet, "A", "B", 18); err != nil {
		t.Fatalf("Failed to set column width: %v", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("Failed to serialize workbook: %v", err)
	}
	return buf.Bytes()
}

func editedTable(rows int) models.Table {
	t := models.Table{Columns: []string{"姓名", "成绩"}}
	for i := 0; i < rows; i++ {
		t.Rows = append(t.Rows, []any{fmt.Sprintf("学生%d", i+1), int64(90 + i)})
	}
	return t
}

func TestUpdateValueFidelity(t *testing.T) {
	original := buildStyledWorkbook(t, 5)
	edited := editedTable(5)

	out, err := Update(original, edited, DefaultUpdateOptions())
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	got, err := Load(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("Failed to load output: %v", err)
	}
	if !reflect.DeepEqual(got, edited) {
		t.Errorf("Read-back table differs.\ngot:  %#v\nwant: %#v", got, edited)
	}
}

func TestUpdatePreservesStyles(t *testing.T) {
	original := buildStyledWorkbook(t, 5)
	edited := editedTable(5)

	out, err := Update(original, edited, DefaultUpdateOptions())
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	before, err := excelize.OpenReader(bytes.NewReader(original))
	if err != nil {
		t.Fatalf("Failed to reopen original: %v", err)
	}
	defer before.Close()
	after, err := excelize.OpenReader(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("Failed to open output: %v", err)
	}
	defer after.Close()

	// Header plus every surviving data cell must keep its style index.
	for row := 1; row <= 6; row++ {
		for col := 1; col <= 2; col++ {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			wantStyle, err := before.GetCellStyle("Sheet1", cell)
			if err != nil {
				t.Fatalf("GetCellStyle(original, %s): %v", cell, err)
			}
			gotStyle, err := after.GetCellStyle("Sheet1", cell)
			if err != nil {
				t.Fatalf("GetCellStyle(output, %s): %v", cell, err)
			}
			if gotStyle != wantStyle {
				t.Errorf("Cell %s style changed: %d -> %d", cell, wantStyle, gotStyle)
			}
		}
	}

	// Column widths carry over too.
	wantWidth, _ := before.GetColWidth("Sheet1", "A")
	gotWidth, _ := after.GetColWidth("Sheet1", "A")
	if gotWidth != wantWidth {
		t.Errorf("Column A width changed: %v -> %v", wantWidth, gotWidth)
	}
}

func TestUpdateShrinkTrimsRows(t *testing.T) {
	original := buildStyledWorkbook(t, 5)
	edited := editedTable(2)

	out, err := Update(original, edited, DefaultUpdateOptions())
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("Failed to open output: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	if len(rows) != 3 { // header + 2 data rows
		t.Errorf("Expected 3 sheet rows after shrink, got %d", len(rows))
	}
}

func TestUpdateGrowAddsUnstyledRows(t *testing.T) {
	original := buildStyledWorkbook(t, 3)
	edited := editedTable(5)

	out, err := Update(original, edited, DefaultUpdateOptions())
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	got, err := Load(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("Failed to load output: %v", err)
	}
	if len(got.Rows) != 5 {
		t.Fatalf("Expected 5 data rows after grow, got %d", len(got.Rows))
	}

	f, err := excelize.OpenReader(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("Failed to open output: %v", err)
	}
	defer f.Close()

	// Rows past the original's extent get no inherited style.
	styledCell, _ := f.GetCellStyle("Sheet1", "B2")
	grownCell, _ := f.GetCellStyle("Sheet1", "B6")
	if grownCell == styledCell {
		t.Errorf("Grown row unexpectedly inherited style %d", grownCell)
	}
}

func TestUpdateShapeError(t *testing.T) {
	original := buildStyledWorkbook(t, 3)
	edited := models.Table{
		Columns: []string{"姓名", "成绩"},
		Rows: [][]any{
			{"学生1", int64(90)},
			{"学生2"}, // short row
		},
	}

	_, err := Update(original, edited, DefaultUpdateOptions())
	var shapeErr *ShapeError
	if !errors.As(err, &shapeErr) {
		t.Fatalf("Expected ShapeError, got %v", err)
	}
	if shapeErr.Row != 1 || shapeErr.Got != 1 || shapeErr.Want != 2 {
		t.Errorf("Unexpected ShapeError fields: %+v", shapeErr)
	}
}

func TestUpdateHeaderMismatch(t *testing.T) {
	original := buildStyledWorkbook(t, 3)
	edited := editedTable(3)
	edited.Columns = []string{"名字", "分数"}

	_, err := Update(original, edited, DefaultUpdateOptions())
	if !errors.Is(err, ErrHeaderMismatch) {
		t.Fatalf("Expected ErrHeaderMismatch, got %v", err)
	}

	// The check is skippable for callers that reorder on purpose.
	opts := UpdateOptions{ValidateHeader: false}
	if _, err := Update(original, edited, opts); err != nil {
		t.Errorf("Update without header validation failed: %v", err)
	}
}

func TestUpdateBadOriginal(t *testing.T) {
	_, err := Update([]byte("not a workbook"), editedTable(1), DefaultUpdateOptions())
	var formatErr *FormatError
	if !errors.As(err, &formatErr) {
		t.Fatalf("Expected FormatError, got %v", err)
	}
	if formatErr.Op != "open" {
		t.Errorf("Expected op %q, got %q", "open", formatErr.Op)
	}
}

func TestUpdateRepeatableValues(t *testing.T) {
	original := buildStyledWorkbook(t, 4)
	edited := editedTable(4)

	first, err := Update(original, edited, DefaultUpdateOptions())
	if err != nil {
		t.Fatalf("First update failed: %v", err)
	}
	second, err := Update(original, edited, DefaultUpdateOptions())
	if err != nil {
		t.Fatalf("Second update failed: %v", err)
	}

	t1, err := Load(bytes.NewReader(first))
	if err != nil {
		t.Fatalf("Failed to load first output: %v", err)
	}
	t2, err := Load(bytes.NewReader(second))
	if err != nil {
		t.Fatalf("Failed to load second output: %v", err)
	}
	if !reflect.DeepEqual(t1, t2) {
		t.Errorf("Repeated exports produced different values")
	}
}
