package analytics

import (
	"time"

	"github.com/shopspring/decimal"
)

// Change is an absolute change with an optional percentage.
// HasPercentage is false when the baseline is not positive.
type Change struct {
	Absolute      decimal.Decimal
	Percentage    float64
	HasPercentage bool
}

func changeFrom(baseline, current decimal.Decimal) Change {
	c := Change{Absolute: current.Sub(baseline)}
	if baseline.IsPositive() {
		c.Percentage = percentOf(c.Absolute, baseline)
		c.HasPercentage = true
	}
	return c
}

// TotalChange compares current with the first value ever recorded
func TotalChange(series []Point, current decimal.Decimal) (Change, bool) {
	if len(series) == 0 {
		return Change{}, false
	}
	sorted := sortedCopy(series)
	return changeFrom(sorted[0].Amount, current), true
}

// YearOverYear compares current with the value known one year before now.
// With a single calendar year of history the previous year counts as zero.
func YearOverYear(series []Point, current decimal.Decimal, now time.Time, cal CalendarRules) (Change, bool) {
	if len(series) == 0 {
		return Change{}, false
	}
	sorted := sortedCopy(series)

	baseline := decimal.Zero
	if len(yearEnds(sorted, cal)) > 1 {
		oneYearAgo, err := cal.AddDate(now, -1, 0, 0)
		if err != nil {
			return Change{}, false
		}
		if v, ok := valueAsOf(sorted, oneYearAgo); ok {
			baseline = v
		}
	}

	return changeFrom(baseline, current), true
}

// AverageYearlyGrowth averages the percentage changes between consecutive year-end values.
// Years starting from a non-positive value are skipped; it reports false when no
// year-over-year change can be computed.
func AverageYearlyGrowth(series []Point, cal CalendarRules) (float64, bool) {
	ends := yearEnds(sortedCopy(series), cal)
	if len(ends) < 2 {
		return 0, false
	}

	var sum float64
	var count int
	for i := 1; i < len(ends); i++ {
		prev := ends[i-1]
		if !prev.IsPositive() {
			continue
		}
		sum += percentOf(ends[i].Sub(prev), prev)
		count++
	}

	if count == 0 {
		return 0, false
	}
	return sum / float64(count), true
}

// yearEnds returns the last value of every calendar year present in a sorted series
func yearEnds(sorted []Point, cal CalendarRules) []decimal.Decimal {
	var ends []decimal.Decimal
	lastYear := 0
	for i, p := range sorted {
		y, _, _ := cal.Components(p.Time)
		if i > 0 && y == lastYear {
			ends[len(ends)-1] = p.Amount
			continue
		}
		ends = append(ends, p.Amount)
		lastYear = y
	}
	return ends
}

// AutoSelectPeriod picks the period that best fits the span of a series
func AutoSelectPeriod(series []Point, cal CalendarRules) Period {
	if len(series) == 0 {
		return Month
	}
	sorted := sortedCopy(series)
	span := cal.DaysBetween(sorted[0].Time, sorted[len(sorted)-1].Time)

	switch {
	case span < monthSpanDays:
		return Week
	case span < yearSpanDays:
		return Month
	default:
		return Year
	}
}
