package analytics

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnsupportedDate is returned by CalendarRules when a date falls outside the supported range
var ErrUnsupportedDate = errors.New("unsupported date")

// Unit is a calendar unit used to bin a series
type Unit int

const (
	UnitDay Unit = iota
	UnitWeek
	UnitMonth
	UnitQuarter
	UnitYear
)

func (u Unit) String() string {
	switch u {
	case UnitDay:
		return "day"
	case UnitWeek:
		return "week"
	case UnitMonth:
		return "month"
	case UnitQuarter:
		return "quarter"
	case UnitYear:
		return "year"
	default:
		return fmt.Sprintf("unit(%d)", int(u))
	}
}

// Interval is a half-open calendar interval [Start, End)
type Interval struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the interval
func (iv Interval) Contains(t time.Time) bool {
	return !t.Before(iv.Start) && t.Before(iv.End)
}

// CalendarRules is the calendar capability the aggregator depends on.
// Every operation that can fail returns an explicit error instead of a fallback value;
// the aggregator decides how to degrade.
type CalendarRules interface {
	// Interval returns the calendar interval of the given unit containing t
	Interval(unit Unit, t time.Time) (Interval, error)

	// StartOfDay returns midnight of the day containing t
	StartOfDay(t time.Time) time.Time

	// AddDate adds years, months and days to t
	AddDate(t time.Time, years, months, days int) (time.Time, error)

	// Date builds midnight of the given civil date
	Date(year int, month time.Month, day int) (time.Time, error)

	// Components extracts the civil date of t
	Components(t time.Time) (year int, month time.Month, day int)

	// DaysBetween returns the number of calendar days from a to b (negative if b is before a)
	DaysBetween(a, b time.Time) int
}

const (
	minSupportedYear = 1
	maxSupportedYear = 9999
)

// Gregorian implements CalendarRules on the proleptic Gregorian calendar in a fixed location.
// The zero value uses time.Local and weeks starting on Sunday; use NewGregorian for ISO weeks.
type Gregorian struct {
	Location     *time.Location
	FirstWeekday time.Weekday
}

// NewGregorian creates a Gregorian calendar. A nil location means time.Local.
func NewGregorian(loc *time.Location, firstWeekday time.Weekday) Gregorian {
	return Gregorian{Location: loc, FirstWeekday: firstWeekday}
}

// ISOCalendar returns a Gregorian calendar in loc whose weeks start on Monday
func ISOCalendar(loc *time.Location) Gregorian {
	return NewGregorian(loc, time.Monday)
}

func (g Gregorian) location() *time.Location {
	if g.Location == nil {
		return time.Local
	}
	return g.Location
}

func (g Gregorian) check(t time.Time) error {
	if y := t.In(g.location()).Year(); y < minSupportedYear || y > maxSupportedYear {
		return fmt.Errorf("%w: year %d", ErrUnsupportedDate, y)
	}
	return nil
}

// Interval returns the calendar interval of the given unit containing t
func (g Gregorian) Interval(unit Unit, t time.Time) (Interval, error) {
	if err := g.check(t); err != nil {
		return Interval{}, err
	}

	loc := g.location()
	y, m, d := t.In(loc).Date()

	var iv Interval
	switch unit {
	case UnitDay:
		iv.Start = time.Date(y, m, d, 0, 0, 0, 0, loc)
		iv.End = iv.Start.AddDate(0, 0, 1)
	case UnitWeek:
		offset := (int(t.In(loc).Weekday()) - int(g.FirstWeekday) + 7) % 7
		iv.Start = time.Date(y, m, d-offset, 0, 0, 0, 0, loc)
		iv.End = iv.Start.AddDate(0, 0, 7)
	case UnitMonth:
		iv.Start = time.Date(y, m, 1, 0, 0, 0, 0, loc)
		iv.End = iv.Start.AddDate(0, 1, 0)
	case UnitQuarter:
		firstMonth := time.Month((int(m)-1)/3*3 + 1)
		iv.Start = time.Date(y, firstMonth, 1, 0, 0, 0, 0, loc)
		iv.End = iv.Start.AddDate(0, 3, 0)
	case UnitYear:
		iv.Start = time.Date(y, time.January, 1, 0, 0, 0, 0, loc)
		iv.End = iv.Start.AddDate(1, 0, 0)
	default:
		return Interval{}, fmt.Errorf("unknown calendar unit %s", unit)
	}

	if err := g.check(iv.Start); err != nil {
		return Interval{}, err
	}
	if err := g.check(iv.End); err != nil {
		return Interval{}, err
	}
	return iv, nil
}

// StartOfDay returns midnight of the day containing t
func (g Gregorian) StartOfDay(t time.Time) time.Time {
	loc := g.location()
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// AddDate adds years, months and days to t
func (g Gregorian) AddDate(t time.Time, years, months, days int) (time.Time, error) {
	out := t.In(g.location()).AddDate(years, months, days)
	if err := g.check(out); err != nil {
		return time.Time{}, err
	}
	return out, nil
}

// Date builds midnight of the given civil date, normalizing overflowing months and days
func (g Gregorian) Date(year int, month time.Month, day int) (time.Time, error) {
	out := time.Date(year, month, day, 0, 0, 0, 0, g.location())
	if err := g.check(out); err != nil {
		return time.Time{}, err
	}
	return out, nil
}

// Components extracts the civil date of t
func (g Gregorian) Components(t time.Time) (int, time.Month, int) {
	return t.In(g.location()).Date()
}

// DaysBetween returns the number of calendar days from a to b
func (g Gregorian) DaysBetween(a, b time.Time) int {
	ay, am, ad := g.Components(a)
	by, bm, bd := g.Components(b)
	return civilDays(by, bm, bd) - civilDays(ay, am, ad)
}

// civilDays returns the number of days since 1970-01-01 of a proleptic Gregorian date.
// It avoids time.Duration, which overflows for spans longer than ~292 years.
func civilDays(y int, m time.Month, d int) int {
	if m <= time.February {
		y--
	}
	era := y / 400
	if y < 0 && y%400 != 0 {
		era--
	}
	yoe := y - era*400
	mp := (int(m) + 9) % 12
	doy := (153*mp+2)/5 + d - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - 719468
}

var _ CalendarRules = Gregorian{}
