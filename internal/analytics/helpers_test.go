package analytics

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cal = ISOCalendar(time.UTC)

// now is a Thursday; its ISO week starts on Monday 2026-10-12
var now = time.Date(2026, time.October, 15, 12, 0, 0, 0, time.UTC)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func pt(t time.Time, amount int64) Point {
	return Point{Time: t, Amount: decimal.NewFromInt(amount)}
}

// daily returns n points, one per day from start, with amounts base, base+1, ...
func daily(start time.Time, n int, base int64) []Point {
	out := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, pt(start.AddDate(0, 0, i), base+int64(i)))
	}
	return out
}

func requirePoints(t *testing.T, want, got []Point) {
	t.Helper()
	require.Len(t, got, len(want), "got %v", got)
	for i := range want {
		assert.True(t, want[i].Time.Equal(got[i].Time), "point %d: time %s, want %s", i, got[i].Time, want[i].Time)
		assert.True(t, want[i].Amount.Equal(got[i].Amount), "point %d: amount %s, want %s", i, got[i].Amount, want[i].Amount)
	}
}

func assertChronological(t *testing.T, points []Point) {
	t.Helper()
	for i := 1; i < len(points); i++ {
		assert.False(t, points[i].Time.Before(points[i-1].Time), "point %d is before point %d", i, i-1)
	}
}

var errCalendar = errors.New("calendar unavailable")

// flakyCalendar fails every Interval call once its budget is spent
type flakyCalendar struct {
	Gregorian
	remaining *int
}

func newFlakyCalendar(budget int) flakyCalendar {
	return flakyCalendar{Gregorian: cal, remaining: &budget}
}

func (f flakyCalendar) Interval(unit Unit, t time.Time) (Interval, error) {
	if *f.remaining <= 0 {
		return Interval{}, errCalendar
	}
	*f.remaining--
	return f.Gregorian.Interval(unit, t)
}
