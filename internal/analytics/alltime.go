package analytics

const (
	// maxAllTimePoints bounds raw and yearly all-time series before the final reduction
	maxAllTimePoints = 50
	// maxWeeklyBins is the weekly bin count above which sub-year spans switch to months
	maxWeeklyBins = 50
	// maxMonthlyBins is the monthly bin count above which multi-year spans switch to quarters
	maxMonthlyBins = 60

	monthSpanDays   = 30
	quarterSpanDays = 90
	yearSpanDays    = 365
	fiveYearDays    = 1825
)

// allTimeBins picks a bin size from the span and density of a sorted series, targeting
// roughly 30 to 50 points. It returns the bins and the unit chosen; UnitDay means the raw
// points were kept.
func allTimeBins(sorted []Point, cal CalendarRules) ([]Point, Unit) {
	if len(sorted) == 0 {
		return sorted, UnitDay
	}

	first, last := sorted[0], sorted[len(sorted)-1]
	span := cal.DaysBetween(first.Time, last.Time)

	fy, fm, _ := cal.Components(first.Time)
	ly, lm, _ := cal.Components(last.Time)

	switch {
	case fy == ly && fm == lm:
		return binBy(sorted, UnitWeek, cal), UnitWeek

	case span < monthSpanDays:
		return sample(sorted, maxAllTimePoints), UnitDay

	case span < quarterSpanDays:
		return binBy(sorted, UnitWeek, cal), UnitWeek

	case span < yearSpanDays:
		if weekly := binBy(sorted, UnitWeek, cal); len(weekly) <= maxWeeklyBins {
			return weekly, UnitWeek
		}
		return binBy(sorted, UnitMonth, cal), UnitMonth

	case span < fiveYearDays:
		if monthly := binBy(sorted, UnitMonth, cal); len(monthly) <= maxMonthlyBins {
			return monthly, UnitMonth
		}
		return binBy(sorted, UnitQuarter, cal), UnitQuarter

	default:
		return sample(binBy(sorted, UnitYear, cal), maxAllTimePoints), UnitYear
	}
}
