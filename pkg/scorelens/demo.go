package scorelens

import (
	"fmt"
	"math/rand"

	"github.com/ukaji3/scorelens/pkg/scorelens/models"
	"github.com/xuri/excelize/v2"
)

// Demo data shape: 50 students, daily scores uniform in [60, 100), final
// scores normal around 75 with stddev 10.
const (
	DemoRows      = 50
	demoFinalMean = 75
	demoFinalStd  = 10
)

// Demo generates the demo score table. A fixed seed gives a reproducible
// table; callers wanting variety pass a varying seed.
func Demo(seed int64) models.Table {
	rng := rand.New(rand.NewSource(seed))
	t := models.Table{Columns: []string{"姓名", "平时成绩", "期末考核(必填)"}}
	for i := 1; i <= DemoRows; i++ {
		t.Rows = append(t.Rows, []any{
			fmt.Sprintf("学生%d", i),
			int64(rng.Intn(40) + 60),
			int64(rng.NormFloat64()*demoFinalStd + demoFinalMean),
		})
	}
	return t
}

// ExportPlain writes a table into a freshly constructed workbook with
// default styling, header in row 1. Used for demo export, where there is
// no original file to preserve.
func ExportPlain(t models.Table) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := activeSheet(f)
	header := make([]any, len(t.Columns))
	for j, name := range t.Columns {
		header[j] = name
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}
	for i, row := range t.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		values := append([]any(nil), row...)
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
