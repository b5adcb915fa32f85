package scorelens

import (
	"bytes"
	"math"
	"testing"

	"github.com/ukaji3/scorelens/pkg/scorelens/stats"
)

func TestDemoShape(t *testing.T) {
	tbl := Demo(1)

	if len(tbl.Rows) != DemoRows {
		t.Fatalf("Expected %d rows, got %d", DemoRows, len(tbl.Rows))
	}
	if len(tbl.Columns) != 3 {
		t.Fatalf("Expected 3 columns, got %v", tbl.Columns)
	}
	if tbl.Columns[0] != "姓名" || tbl.Columns[2] != "期末考核(必填)" {
		t.Errorf("Unexpected columns: %v", tbl.Columns)
	}
	if _, ok := tbl.Aligned(); !ok {
		t.Errorf("Demo table has misaligned rows")
	}

	// The final-score column follows normal(75, 10); the mean of 50 draws
	// should land well within 5 of the target.
	values, _ := tbl.ColumnValues("期末考核(必填)")
	xs := stats.Clean(values)
	if len(xs) != DemoRows {
		t.Fatalf("Expected %d numeric values, got %d", DemoRows, len(xs))
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	mean := sum / float64(len(xs))
	if math.Abs(mean-demoFinalMean) > 5 {
		t.Errorf("Demo final score mean %.2f too far from %d", mean, demoFinalMean)
	}

	// Daily scores stay inside [60, 100).
	daily, _ := tbl.ColumnValues("平时成绩")
	for i, v := range stats.Clean(daily) {
		if v < 60 || v >= 100 {
			t.Errorf("Row %d daily score %v out of range", i, v)
		}
	}
}

func TestDemoReproducible(t *testing.T) {
	a := Demo(42)
	b := Demo(42)
	for i := range a.Rows {
		for j := range a.Rows[i] {
			if a.Rows[i][j] != b.Rows[i][j] {
				t.Fatalf("Same seed produced different value at (%d,%d)", i, j)
			}
		}
	}
}

func TestExportPlainRoundTrip(t *testing.T) {
	tbl := Demo(7)

	out, err := ExportPlain(tbl)
	if err != nil {
		t.Fatalf("ExportPlain failed: %v", err)
	}

	got, err := Load(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("Failed to load exported workbook: %v", err)
	}
	if len(got.Rows) != DemoRows {
		t.Errorf("Expected %d rows, got %d", DemoRows, len(got.Rows))
	}
	if len(got.Columns) != 3 {
		t.Errorf("Expected 3 columns, got %v", got.Columns)
	}
	if got.Rows[0][0] != "学生1" {
		t.Errorf("Expected 学生1 in first cell, got %v", got.Rows[0][0])
	}
}
