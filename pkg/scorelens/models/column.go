package models

// ColumnKind classifies a column for score analysis candidacy.
type ColumnKind string

const (
	// ColumnNumeric means every non-missing value coerces to a number.
	ColumnNumeric ColumnKind = "numeric"
	// ColumnExcluded means the header matched the identity-column
	// exclusion rules (name, class, student ID and similar).
	ColumnExcluded ColumnKind = "excluded"
	// ColumnNonNumeric means at least one non-missing value failed
	// numeric coercion.
	ColumnNonNumeric ColumnKind = "non_numeric"
	// ColumnEmpty means the column has no non-missing values at all.
	ColumnEmpty ColumnKind = "empty"
)

// ColumnInfo is the per-column classification result.
type ColumnInfo struct {
	// Name is the header name from row 1.
	Name string `json:"name"`
	// Kind is the classification outcome.
	Kind ColumnKind `json:"kind"`
	// Reason explains non-numeric or excluded outcomes (empty for numeric).
	Reason string `json:"reason,omitempty"`
}
