package scorelens

import (
	"errors"
	"fmt"

	"github.com/ukaji3/scorelens/pkg/scorelens/stats"
)

// ErrInvalidFormat indicates the input stream is not a valid xlsx workbook.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrNoNumericColumn indicates no column survived classification as a
// numeric score candidate.
var ErrNoNumericColumn = errors.New("no numeric score column found")

// ErrHeaderMismatch indicates the edited table's column names do not match
// row 1 of the original sheet.
var ErrHeaderMismatch = errors.New("table columns do not match sheet header")

// ErrInsufficientData indicates fewer than 2 valid values in the selected
// column.
var ErrInsufficientData = stats.ErrInsufficientData

// ParseError reports a failure to read an uploaded workbook into a table.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// FormatError reports a failure to re-open or serialize the original
// workbook during a format-preserving export.
type FormatError struct {
	Op  string // "open" or "save"
	Err error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("format-preserving export: %s: %v", e.Op, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// ShapeError reports an edited row whose length differs from the table's
// column count.
type ShapeError struct {
	Row  int // 0-based row index
	Got  int
	Want int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("row %d has %d values, want %d", e.Row, e.Got, e.Want)
}
