package analytics

import (
	"time"

	"github.com/shopspring/decimal"
)

// carry is the forward-fill accumulator threaded through the bins of a series
type carry struct {
	next   int             // index of the first point not folded in yet
	amount decimal.Decimal // last known amount
}

// advance folds every point at or before boundary into the accumulator
func (c carry) advance(sorted []Point, boundary time.Time) carry {
	for c.next < len(sorted) && !sorted[c.next].Time.After(boundary) {
		c.amount = sorted[c.next].Amount
		c.next++
	}
	return c
}

// forwardFill emits one point per boundary carrying the last known amount at or before it.
// A boundary preceding every point carries the first amount.
func forwardFill(sorted []Point, boundaries []time.Time) []Point {
	if len(sorted) == 0 {
		return nil
	}

	acc := carry{amount: sorted[0].Amount}
	bins := make([]Point, 0, len(boundaries))
	for _, boundary := range boundaries {
		acc = acc.advance(sorted, boundary)
		bins = append(bins, Point{Time: boundary, Amount: acc.amount})
	}
	return bins
}

// binBoundaries lists the end boundary of every unit interval from the one containing
// the first point through the one containing the last point.
// A calendar failure stops the enumeration; the boundaries found so far are returned
// together with the error.
func binBoundaries(sorted []Point, unit Unit, cal CalendarRules) ([]time.Time, error) {
	first, err := cal.Interval(unit, sorted[0].Time)
	if err != nil {
		return nil, err
	}
	last, err := cal.Interval(unit, sorted[len(sorted)-1].Time)
	if err != nil {
		return nil, err
	}

	var boundaries []time.Time
	iv := first
	for !iv.Start.After(last.Start) {
		boundary, err := binBoundary(unit, iv, cal)
		if err != nil {
			return boundaries, err
		}
		boundaries = append(boundaries, boundary)

		next, err := cal.Interval(unit, iv.End)
		if err != nil {
			return boundaries, err
		}
		if !next.Start.After(iv.Start) {
			break
		}
		iv = next
	}
	return boundaries, nil
}

// binBoundary is the instant a bin of the given interval is stamped with.
// Quarters end on their last day; the other units end on the exclusive interval end.
func binBoundary(unit Unit, iv Interval, cal CalendarRules) (time.Time, error) {
	if unit == UnitQuarter {
		return cal.AddDate(cal.StartOfDay(iv.End), 0, 0, -1)
	}
	return iv.End, nil
}

// binBy resamples a sorted series to one forward-filled point per calendar unit.
// When the calendar fails part way the bins computed so far are returned; when it fails
// before the first bin the input is returned unchanged.
func binBy(sorted []Point, unit Unit, cal CalendarRules) []Point {
	if len(sorted) == 0 {
		return sorted
	}

	boundaries, _ := binBoundaries(sorted, unit, cal)
	if len(boundaries) == 0 {
		return sorted
	}
	return forwardFill(sorted, boundaries)
}
