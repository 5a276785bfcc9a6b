package analytics

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// ChangeSummary describes the change between the first and the last point of a series
type ChangeSummary struct {
	Absolute   decimal.Decimal
	Percentage float64
	StartValue decimal.Decimal
	EndValue   decimal.Decimal
}

// SummarizeChange compares the first and last points of a series, raw or aggregated.
// It reports false for an empty series and when the starting value is not positive,
// since a percentage over a zero or negative baseline is meaningless.
func SummarizeChange(series []Point) (ChangeSummary, bool) {
	if len(series) == 0 {
		return ChangeSummary{}, false
	}

	sorted := sortedCopy(series)
	start := sorted[0].Amount
	end := sorted[len(sorted)-1].Amount

	if !start.IsPositive() {
		return ChangeSummary{}, false
	}

	absolute := end.Sub(start)
	return ChangeSummary{
		Absolute:   absolute,
		Percentage: percentOf(absolute, start),
		StartValue: start,
		EndValue:   end,
	}, true
}

// percentOf returns part/base*100; base must be positive
func percentOf(part, base decimal.Decimal) float64 {
	return part.Div(base).Mul(hundred).InexactFloat64()
}
