package models

// Band counts values on one side of a grading threshold.
type Band struct {
	// Threshold is the boundary value (exclusive on both bands).
	Threshold float64 `json:"threshold"`
	// Count is the number of values in the band.
	Count int `json:"count"`
	// Proportion is Count divided by the valid sample size.
	Proportion float64 `json:"proportion"`
}

// Summary holds the distribution statistics for one numeric column.
type Summary struct {
	// Column is the analyzed column name.
	Column string `json:"column"`
	// Count is the number of valid numeric values.
	Count int `json:"count"`
	// Mean is the arithmetic mean.
	Mean float64 `json:"mean"`
	// StdDev is the sample standard deviation (n-1 denominator).
	StdDev float64 `json:"std_dev"`
	// Min and Max bound the valid sample.
	Min float64 `json:"min"`
	Max float64 `json:"max"`
	// Failing counts values strictly below 60.
	Failing Band `json:"failing"`
	// Excellent counts values strictly above 90.
	Excellent Band `json:"excellent"`
}
