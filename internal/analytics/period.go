package analytics

import (
	"fmt"
	"strings"
	"time"
)

// Period is the user-selected display window of a chart
type Period int

const (
	Week Period = iota
	Month
	Year
	AllTime
)

// Periods lists every period in display order
var Periods = []Period{Week, Month, Year, AllTime}

func (p Period) String() string {
	switch p {
	case Week:
		return "Week"
	case Month:
		return "Month"
	case Year:
		return "Year"
	case AllTime:
		return "All Time"
	default:
		return fmt.Sprintf("Period(%d)", int(p))
	}
}

// ParsePeriod parses a period name such as "week", "month", "year" or "all"
func ParsePeriod(s string) (Period, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "week", "weekly", "w":
		return Week, nil
	case "month", "monthly", "m":
		return Month, nil
	case "year", "yearly", "y":
		return Year, nil
	case "all", "alltime", "all time", "all-time", "all_time":
		return AllTime, nil
	default:
		return Week, fmt.Errorf("unknown period %q", s)
	}
}

// unit returns the calendar unit whose current interval bounds the period
func (p Period) unit() (Unit, bool) {
	switch p {
	case Week:
		return UnitWeek, true
	case Month:
		return UnitMonth, true
	case Year:
		return UnitYear, true
	default:
		return 0, false
	}
}

// Window is the filtering window of a bounded period
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window, boundaries included
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// ResolveWindow returns the current calendar week, month or year containing now,
// with its end clamped to now. AllTime has no window and reports false, as does a
// period whose interval the calendar cannot compute.
func ResolveWindow(period Period, now time.Time, cal CalendarRules) (Window, bool) {
	unit, bounded := period.unit()
	if !bounded {
		return Window{}, false
	}

	iv, err := cal.Interval(unit, now)
	if err != nil {
		return Window{}, false
	}

	return Window{Start: iv.Start, End: now}, true
}
