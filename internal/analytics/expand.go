package analytics

import "time"

// padding is the number of days drawn before and after a lone value
type padding struct {
	back    int
	forward int
}

func paddingFor(period Period) padding {
	switch period {
	case Week:
		return padding{back: 14, forward: 7}
	case Month:
		return padding{back: 60, forward: 30}
	case Year:
		return padding{back: 180, forward: 180}
	default:
		return padding{back: 30, forward: 30}
	}
}

// expandSingle draws a flat line bracketing a single known value: a point some days
// before it, the value's own day, and the later of today and some days after it.
func expandSingle(p Point, period Period, now time.Time, cal CalendarRules) []Point {
	pad := paddingFor(period)
	today := cal.StartOfDay(now)
	day := cal.StartOfDay(p.Time)

	out := make([]Point, 0, 3)
	if past, err := cal.AddDate(day, 0, 0, -pad.back); err == nil {
		out = append(out, Point{Time: past, Amount: p.Amount})
	}
	out = append(out, Point{Time: day, Amount: p.Amount})

	future := today
	if ahead, err := cal.AddDate(day, 0, 0, pad.forward); err == nil && ahead.After(today) {
		future = ahead
	}
	out = append(out, Point{Time: future, Amount: p.Amount})

	return out
}
