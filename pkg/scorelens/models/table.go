// Package models defines data structures for score sheet analysis.
package models

// Table represents tabular sheet data: named columns in a fixed order
// and rows of cell values aligned by column position.
//
// Cell values are one of int64, float64, string, or nil (missing).
type Table struct {
	// Columns holds the header names in sheet order. Names are unique.
	Columns []string `json:"columns"`
	// Rows holds the data rows. Every row has exactly len(Columns) values.
	Rows [][]any `json:"rows"`
}

// ColumnIndex returns the position of the named column, or -1 if absent.
func (t Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// ColumnValues returns all values of the named column in row order.
// The second return is false when the column does not exist.
func (t Table) ColumnValues(name string) ([]any, bool) {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return nil, false
	}
	values := make([]any, len(t.Rows))
	for i, row := range t.Rows {
		values[i] = row[idx]
	}
	return values, true
}

// Aligned reports whether every row has exactly len(Columns) values.
// The first misaligned row index is returned when it does not.
func (t Table) Aligned() (int, bool) {
	for i, row := range t.Rows {
		if len(row) != len(t.Columns) {
			return i, false
		}
	}
	return -1, true
}
