package analytics

import (
	"slices"
	"time"
)

// maxChartPoints is the number of points a chart is reduced to
const maxChartPoints = 5

// limitToFive reduces a binned series to at most five points for a clean x-axis.
//
// The reduced series holds the forward-filled values at the first and last timestamps of
// the original series, plus points evenly spaced by day between the first and last bin,
// each valued by forward-fill lookup into the bins. Points are deduplicated by calendar
// day. Series of five points or less, or spanning a single day, are returned as is.
func limitToFive(binned, original []Point, cal CalendarRules) []Point {
	if len(binned) <= maxChartPoints {
		return binned
	}

	first, last := binned[0], binned[len(binned)-1]
	start := cal.StartOfDay(first.Time)
	span := cal.DaysBetween(start, cal.StartOfDay(last.Time))
	if span <= 1 {
		return binned
	}

	picked := make([]Point, 0, maxChartPoints)
	if len(original) > 0 {
		for _, anchor := range []time.Time{original[0].Time, original[len(original)-1].Time} {
			if amount, ok := valueAsOf(binned, anchor); ok {
				picked = append(picked, Point{Time: anchor, Amount: amount})
			}
		}
	}

	slots := maxChartPoints - len(picked)
	for i := 1; i <= slots; i++ {
		at, err := cal.AddDate(start, 0, 0, span*i/(slots+1))
		if err != nil {
			break
		}
		amount, ok := valueAsOf(binned, at)
		if !ok || containsDay(picked, at, cal) {
			continue
		}
		picked = append(picked, Point{Time: at, Amount: amount})
	}

	slices.SortStableFunc(picked, byTime)
	unique := dedupeByDay(picked, cal)
	if len(unique) < 2 {
		return []Point{first, last}
	}
	return unique
}

func containsDay(points []Point, t time.Time, cal CalendarRules) bool {
	day := cal.StartOfDay(t)
	for _, p := range points {
		if cal.StartOfDay(p.Time).Equal(day) {
			return true
		}
	}
	return false
}

// dedupeByDay keeps the first point of every calendar day of a sorted series
func dedupeByDay(sorted []Point, cal CalendarRules) []Point {
	out := make([]Point, 0, len(sorted))
	var lastDay time.Time
	for i, p := range sorted {
		day := cal.StartOfDay(p.Time)
		if i > 0 && day.Equal(lastDay) {
			continue
		}
		out = append(out, p)
		lastDay = day
	}
	return out
}

// sample reduces values to at most max points by uniform stride, keeping the first and
// the last point
func sample(values []Point, max int) []Point {
	if len(values) <= max || max < 2 {
		return values
	}

	lastIndex := len(values) - 1
	out := make([]Point, 0, max)
	for i := 0; i < max; i++ {
		out = append(out, values[i*lastIndex/(max-1)])
	}
	return out
}
