package scorelens

import (
	"bytes"
	"fmt"
	"slices"

	"github.com/ukaji3/scorelens/pkg/scorelens/models"
	"github.com/ukaji3/scorelens/pkg/scorelens/parser"
	"github.com/xuri/excelize/v2"
)

// UpdateOptions configures Update.
type UpdateOptions struct {
	// ValidateHeader checks that the edited table's column names match
	// row 1 of the original sheet before writing anything. A mismatch
	// would silently misplace every value, so this is on by default.
	ValidateHeader bool
}

// DefaultUpdateOptions returns the default update options.
func DefaultUpdateOptions() UpdateOptions {
	return UpdateOptions{ValidateHeader: true}
}

// Update writes the edited table's values into a fresh in-memory copy of
// the original workbook and returns the serialized result. Cell styles,
// column widths, merged regions and the header row are inherited from the
// original wherever a row still exists; when the edited table has fewer
// rows, trailing sheet rows are removed. Rows added past the original's
// extent come out unstyled.
//
// The original bytes are re-opened on every call, never cached, so repeated
// exports from the same upload cannot corrupt each other.
func Update(original []byte, edited models.Table, opts UpdateOptions) ([]byte, error) {
	if i, ok := edited.Aligned(); !ok {
		return nil, &ShapeError{Row: i, Got: len(edited.Rows[i]), Want: len(edited.Columns)}
	}

	f, err := excelize.OpenReader(bytes.NewReader(original))
	if err != nil {
		return nil, &FormatError{Op: "open", Err: err}
	}
	defer f.Close()

	sheet := activeSheet(f)
	if opts.ValidateHeader {
		header, err := parser.ReadHeader(f, sheet)
		if err != nil {
			return nil, &FormatError{Op: "open", Err: err}
		}
		if !slices.Equal(header, edited.Columns) {
			return nil, fmt.Errorf("%w: sheet has %v, table has %v", ErrHeaderMismatch, header, edited.Columns)
		}
	}

	if err := parser.ApplyTable(f, sheet, edited); err != nil {
		return nil, err
	}
	// Row 1 is the header, so the last row to keep is N+1.
	if err := parser.TrimRows(f, sheet, len(edited.Rows)+1); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, &FormatError{Op: "save", Err: err}
	}
	return buf.Bytes(), nil
}
