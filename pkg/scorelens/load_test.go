package scorelens

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestLoad(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sheet1"
	f.SetCellValue(sheet, "A1", "姓名")
	f.SetCellValue(sheet, "B1", "成绩")
	f.SetCellValue(sheet, "A2", "学生1")
	f.SetCellValue(sheet, "B2", 92)

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("Failed to serialize workbook: %v", err)
	}

	tbl, err := Load(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(tbl.Columns) != 2 || len(tbl.Rows) != 1 {
		t.Fatalf("Unexpected table shape: %d columns, %d rows", len(tbl.Columns), len(tbl.Rows))
	}
	if tbl.Rows[0][1] != int64(92) {
		t.Errorf("Expected int64(92), got %v (type: %T)", tbl.Rows[0][1], tbl.Rows[0][1])
	}
}

func TestLoadInvalidFormat(t *testing.T) {
	_, err := Load(strings.NewReader("definitely not a zip archive"))

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("Expected ParseError, got %v", err)
	}
	if !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("Expected ErrInvalidFormat in chain, got %v", err)
	}
}

func TestLoadNoColumns(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("Failed to serialize workbook: %v", err)
	}

	_, err = Load(bytes.NewReader(buf.Bytes()))
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("Expected ParseError for empty sheet, got %v", err)
	}
}

func TestDefaultColumn(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sheet1"
	f.SetCellValue(sheet, "A1", "姓名")
	f.SetCellValue(sheet, "B1", "平时成绩")
	f.SetCellValue(sheet, "C1", "期末成绩")
	f.SetCellValue(sheet, "A2", "学生1")
	f.SetCellValue(sheet, "B2", 80)
	f.SetCellValue(sheet, "C2", 85)

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("Failed to serialize workbook: %v", err)
	}
	tbl, err := Load(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// The default is the last numeric candidate.
	def, err := DefaultColumn(tbl)
	if err != nil {
		t.Fatalf("DefaultColumn failed: %v", err)
	}
	if def != "期末成绩" {
		t.Errorf("Expected default column 期末成绩, got %q", def)
	}
}

func TestScoreColumnsNoneNumeric(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sheet1"
	f.SetCellValue(sheet, "A1", "姓名")
	f.SetCellValue(sheet, "B1", "评语")
	f.SetCellValue(sheet, "A2", "学生1")
	f.SetCellValue(sheet, "B2", "良好")

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("Failed to serialize workbook: %v", err)
	}
	tbl, err := Load(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if _, err := ScoreColumns(tbl); !errors.Is(err, ErrNoNumericColumn) {
		t.Errorf("Expected ErrNoNumericColumn, got %v", err)
	}
}
