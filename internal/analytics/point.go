package analytics

import (
	"slices"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Point is one dated amount: a recorded snapshot on input, a chart point on output
type Point struct {
	Time   time.Time
	Amount decimal.Decimal
}

// NewPoint creates a Point
func NewPoint(t time.Time, amount decimal.Decimal) Point {
	return Point{Time: t, Amount: amount}
}

func byTime(a, b Point) int { return a.Time.Compare(b.Time) }

// sortedCopy returns a chronologically sorted copy of series; the input is never reordered
func sortedCopy(series []Point) []Point {
	out := slices.Clone(series)
	slices.SortStableFunc(out, byTime)
	return out
}

// valueAsOf returns the amount of the latest point at or before t.
// sorted must be in chronological order.
func valueAsOf(sorted []Point, t time.Time) (decimal.Decimal, bool) {
	i := sort.Search(len(sorted), func(i int) bool { return sorted[i].Time.After(t) })
	if i == 0 {
		return decimal.Zero, false
	}
	return sorted[i-1].Amount, true
}

// flatLine returns a two-point horizontal line
func flatLine(start, end time.Time, amount decimal.Decimal) []Point {
	return []Point{
		{Time: start, Amount: amount},
		{Time: end, Amount: amount},
	}
}

// filterWindow keeps the points of sorted that fall inside w
func filterWindow(sorted []Point, w Window) []Point {
	out := make([]Point, 0, len(sorted))
	for _, p := range sorted {
		if w.Contains(p.Time) {
			out = append(out, p)
		}
	}
	return out
}
