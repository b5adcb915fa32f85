package scorelens

import (
	"fmt"

	"github.com/ukaji3/scorelens/pkg/scorelens/models"
	"github.com/ukaji3/scorelens/pkg/scorelens/stats"
)

// Summarize cleans the named column and computes its distribution summary.
// The cleaned sample is returned alongside for chart rendering.
func Summarize(t models.Table, column string) (models.Summary, []float64, error) {
	values, ok := t.ColumnValues(column)
	if !ok {
		return models.Summary{}, nil, fmt.Errorf("no such column %q", column)
	}
	xs := stats.Clean(values)
	sum, err := stats.Summarize(column, xs)
	if err != nil {
		return models.Summary{}, nil, err
	}
	return sum, xs, nil
}
