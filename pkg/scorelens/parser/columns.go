package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/scorelens/pkg/scorelens/models"
)

// ExcludedHeaders are header names never considered score columns,
// regardless of their content.
var ExcludedHeaders = []string{"序号", "班级", "学号", "姓名", "备注", "ID", "No"}

// excludedSubstrings disqualify a header when contained anywhere in it.
var excludedSubstrings = []string{"学号", "姓名", "班级"}

// ClassifyColumns classifies every column of the table. The result has one
// entry per column in table order, each with a kind and, when not numeric,
// a reason.
func ClassifyColumns(t models.Table) []models.ColumnInfo {
	infos := make([]models.ColumnInfo, 0, len(t.Columns))
	for j, name := range t.Columns {
		infos = append(infos, classifyColumn(t, j, name))
	}
	return infos
}

func classifyColumn(t models.Table, idx int, name string) models.ColumnInfo {
	if reason, excluded := excludedHeader(name); excluded {
		return models.ColumnInfo{Name: name, Kind: models.ColumnExcluded, Reason: reason}
	}

	seen := 0
	for i, row := range t.Rows {
		v := row[idx]
		if models.Missing(v) {
			continue
		}
		seen++
		if _, ok := models.Coerce(v); !ok {
			return models.ColumnInfo{
				Name:   name,
				Kind:   models.ColumnNonNumeric,
				Reason: fmt.Sprintf("row %d value %v is not numeric", i+2, v),
			}
		}
	}
	if seen == 0 {
		return models.ColumnInfo{Name: name, Kind: models.ColumnEmpty, Reason: "no non-missing values"}
	}
	return models.ColumnInfo{Name: name, Kind: models.ColumnNumeric}
}

func excludedHeader(name string) (string, bool) {
	for _, ex := range ExcludedHeaders {
		if name == ex {
			return fmt.Sprintf("header %q is on the exclusion list", name), true
		}
	}
	for _, sub := range excludedSubstrings {
		if strings.Contains(name, sub) {
			return fmt.Sprintf("header %q contains %q", name, sub), true
		}
	}
	return "", false
}

// ScoreColumns returns the names of numeric candidate columns in table order.
func ScoreColumns(infos []models.ColumnInfo) []string {
	var names []string
	for _, info := range infos {
		if info.Kind == models.ColumnNumeric {
			names = append(names, info.Name)
		}
	}
	return names
}
