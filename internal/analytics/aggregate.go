package analytics

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	// showAllMaxPoints is the point count up to which month and year charts skip binning
	showAllMaxPoints = 7
	// weeklyMaxPoints is the point count up to which year charts bin by week
	weeklyMaxPoints = 30

	// emptyAllTimeDays is the span of the placeholder line of an empty all-time chart
	emptyAllTimeDays = 7
)

// Aggregate reduces a series of snapshots to a small, chronologically ordered set of
// chart points for the given period.
//
// Logic:
//  1. An empty series becomes a flat zero line over the period window
//  2. The series is sorted and, for Week/Month/Year, filtered to the current window;
//     a window without snapshots is drawn flat at the last value known before it
//  3. A single remaining point is expanded to a flat line
//  4. The points are binned by calendar unit depending on the period and their density;
//     a single resulting bin is expanded like a single point
//  5. The result is reduced to at most five points
//
// Aggregate never mutates series and is safe for concurrent use.
func Aggregate(series []Point, period Period, now time.Time, cal CalendarRules) []Point {
	window, bounded := ResolveWindow(period, now, cal)

	if len(series) == 0 {
		return zeroLine(window, bounded, now, cal)
	}

	sorted := sortedCopy(series)

	filtered := sorted
	if bounded {
		filtered = filterWindow(sorted, window)
		if len(filtered) == 0 {
			// Nothing recorded inside the window: carry the latest earlier value across it
			latest, ok := valueAsOf(sorted, window.End)
			if !ok {
				return zeroLine(window, bounded, now, cal)
			}
			filtered = flatLine(window.Start, window.End, latest)
		}
	}

	if len(filtered) == 1 {
		return singleLine(filtered[0], window, bounded, period, now, cal)
	}

	binned := binForPeriod(filtered, period, cal)
	if len(binned) == 1 {
		// Every snapshot fell into the same bin
		return singleLine(Point{Time: filtered[len(filtered)-1].Time, Amount: binned[0].Amount}, window, bounded, period, now, cal)
	}

	// The original series anchors the reduction on real snapshot dates
	return limitToFive(binned, sorted, cal)
}

// binForPeriod applies the density rules of each period
func binForPeriod(sorted []Point, period Period, cal CalendarRules) []Point {
	switch period {
	case Week:
		return sorted
	case Month:
		if len(sorted) <= showAllMaxPoints {
			return sorted
		}
		return binBy(sorted, UnitWeek, cal)
	case Year:
		switch {
		case len(sorted) <= showAllMaxPoints:
			return sorted
		case len(sorted) <= weeklyMaxPoints:
			return binBy(sorted, UnitWeek, cal)
		default:
			return binBy(sorted, UnitMonth, cal)
		}
	default:
		binned, _ := allTimeBins(sorted, cal)
		return binned
	}
}

// singleLine draws a lone value: flat across a bounded window, bracketed by padding otherwise
func singleLine(p Point, window Window, bounded bool, period Period, now time.Time, cal CalendarRules) []Point {
	if bounded {
		return flatLine(window.Start, window.End, p.Amount)
	}
	return expandSingle(p, period, now, cal)
}

// zeroLine is the placeholder drawn when there is nothing to show
func zeroLine(window Window, bounded bool, now time.Time, cal CalendarRules) []Point {
	if bounded {
		return flatLine(window.Start, window.End, decimal.Zero)
	}

	today := cal.StartOfDay(now)
	past, err := cal.AddDate(today, 0, 0, -emptyAllTimeDays)
	if err != nil {
		return []Point{{Time: today, Amount: decimal.Zero}}
	}
	return flatLine(past, today, decimal.Zero)
}
