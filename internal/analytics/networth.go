package analytics

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// NetWorthHistory combines per-asset series into one net-worth series.
//
// For every distinct snapshot time across all assets, the net worth is the sum of each
// asset's latest value at or before that time. When the last snapshot is older than
// today, a point for today carrying the current total is appended.
func NetWorthHistory(assets [][]Point, now time.Time, cal CalendarRules) []Point {
	sortedAssets := make([][]Point, 0, len(assets))
	var times []time.Time
	for _, series := range assets {
		if len(series) == 0 {
			continue
		}
		sorted := sortedCopy(series)
		sortedAssets = append(sortedAssets, sorted)
		for _, p := range sorted {
			times = append(times, p.Time)
		}
	}

	if len(times) == 0 {
		return zeroLine(Window{}, false, now, cal)
	}

	slices.SortFunc(times, time.Time.Compare)
	times = slices.CompactFunc(times, time.Time.Equal)

	history := make([]Point, 0, len(times)+1)
	for _, t := range times {
		total := decimal.Zero
		for _, sorted := range sortedAssets {
			if v, ok := valueAsOf(sorted, t); ok {
				total = total.Add(v)
			}
		}
		history = append(history, Point{Time: t, Amount: total})
	}

	today := cal.StartOfDay(now)
	if last := history[len(history)-1]; cal.StartOfDay(last.Time).Before(today) {
		history = append(history, Point{Time: today, Amount: last.Amount})
	}

	return history
}
