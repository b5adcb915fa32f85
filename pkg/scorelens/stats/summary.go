// Package stats computes distribution summaries for score columns.
package stats

import (
	"errors"

	"github.com/ukaji3/scorelens/pkg/scorelens/models"
	"gonum.org/v1/gonum/stat"
)

// Grading thresholds and chart binning shared by summary and rendering.
const (
	// FailingBelow marks values strictly below it as failing.
	FailingBelow = 60.0
	// ExcellentAbove marks values strictly above it as excellent.
	ExcellentAbove = 90.0
	// HistogramBins is the fixed bin count of the distribution chart.
	HistogramBins = 15
)

// ErrInsufficientData indicates fewer than 2 valid values in the sample.
var ErrInsufficientData = errors.New("insufficient data: need at least 2 valid values")

// Clean coerces a column's raw cell values to floats, dropping missing
// values and values that fail numeric coercion.
func Clean(values []any) []float64 {
	var xs []float64
	for _, v := range values {
		if f, ok := models.Coerce(v); ok {
			xs = append(xs, f)
		}
	}
	return xs
}

// Summarize computes the distribution summary for a cleaned sample.
func Summarize(column string, xs []float64) (models.Summary, error) {
	if len(xs) < 2 {
		return models.Summary{}, ErrInsufficientData
	}

	s := models.Summary{
		Column: column,
		Count:  len(xs),
		Mean:   stat.Mean(xs, nil),
		StdDev: stat.StdDev(xs, nil),
		Min:    xs[0],
		Max:    xs[0],
	}
	for _, x := range xs {
		if x < s.Min {
			s.Min = x
		}
		if x > s.Max {
			s.Max = x
		}
		if x < FailingBelow {
			s.Failing.Count++
		}
		if x > ExcellentAbove {
			s.Excellent.Count++
		}
	}

	n := float64(len(xs))
	s.Failing.Threshold = FailingBelow
	s.Failing.Proportion = float64(s.Failing.Count) / n
	s.Excellent.Threshold = ExcellentAbove
	s.Excellent.Proportion = float64(s.Excellent.Count) / n
	return s, nil
}

// XRange returns the chart x-axis range: the sample range widened by 5 on
// each side, widened a further 5 per side when the span is under 10.
func XRange(s models.Summary) (xmin, xmax float64) {
	xmin, xmax = s.Min-5, s.Max+5
	if s.Max-s.Min < 10 {
		xmin -= 5
		xmax += 5
	}
	return xmin, xmax
}
