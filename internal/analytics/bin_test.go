package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinBy(t *testing.T) {
	tests := []struct {
		name   string
		unit   Unit
		series []Point
		want   []Point
	}{
		{
			name:   "Week keeps the last value of the week",
			unit:   UnitWeek,
			series: []Point{pt(day(2026, time.October, 5), 100), pt(day(2026, time.October, 7), 200)},
			want:   []Point{pt(day(2026, time.October, 12), 200)},
		},
		{
			name:   "Empty weeks carry the previous value",
			unit:   UnitWeek,
			series: []Point{pt(day(2026, time.October, 5), 100), pt(day(2026, time.October, 27), 300)},
			want: []Point{
				pt(day(2026, time.October, 12), 100),
				pt(day(2026, time.October, 19), 100),
				pt(day(2026, time.October, 26), 100),
				pt(day(2026, time.November, 2), 300),
			},
		},
		{
			name: "Quarters are stamped on their last day",
			unit: UnitQuarter,
			series: []Point{
				pt(day(2025, time.February, 10), 100),
				pt(day(2025, time.May, 5), 200),
				pt(day(2025, time.August, 20), 300),
			},
			want: []Point{
				pt(day(2025, time.March, 31), 100),
				pt(day(2025, time.June, 30), 200),
				pt(day(2025, time.September, 30), 300),
			},
		},
		{
			name:   "Years",
			unit:   UnitYear,
			series: []Point{pt(day(2019, time.June, 1), 10), pt(day(2021, time.March, 1), 30)},
			want: []Point{
				pt(day(2020, time.January, 1), 10),
				pt(day(2021, time.January, 1), 10),
				pt(day(2022, time.January, 1), 30),
			},
		},
		{
			name:   "Months",
			unit:   UnitMonth,
			series: []Point{pt(day(2026, time.January, 31), 1), pt(day(2026, time.February, 1), 2), pt(day(2026, time.March, 15), 3)},
			want: []Point{
				pt(day(2026, time.February, 1), 2),
				pt(day(2026, time.March, 1), 2),
				pt(day(2026, time.April, 1), 3),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requirePoints(t, tt.want, binBy(tt.series, tt.unit, cal))
		})
	}
}

func TestBinBy_Empty(t *testing.T) {
	assert.Empty(t, binBy(nil, UnitWeek, cal))
}

func TestForwardFill(t *testing.T) {
	sorted := []Point{pt(day(2026, time.March, 1), 1), pt(day(2026, time.March, 10), 2)}

	got := forwardFill(sorted, []time.Time{
		day(2026, time.February, 1),
		day(2026, time.March, 10),
		day(2026, time.April, 1),
	})

	requirePoints(t, []Point{
		pt(day(2026, time.February, 1), 1),
		pt(day(2026, time.March, 10), 2),
		pt(day(2026, time.April, 1), 2),
	}, got)
}

func TestCarry_Advance(t *testing.T) {
	sorted := []Point{
		pt(day(2026, time.March, 1), 1),
		pt(day(2026, time.March, 2), 2),
		pt(day(2026, time.March, 3), 3),
	}

	c := carry{}.advance(sorted, day(2026, time.March, 2))
	assert.Equal(t, 2, c.next)
	assert.Equal(t, "2", c.amount.String())

	c = c.advance(sorted, day(2026, time.March, 2))
	assert.Equal(t, 2, c.next, "advancing to the same boundary folds nothing")
}

func TestBinBy_CalendarFailure(t *testing.T) {
	series := []Point{pt(day(2026, time.October, 5), 100), pt(day(2026, time.October, 27), 300)}

	t.Run("Stops part way and keeps the bins computed", func(t *testing.T) {
		// first, last and one step succeed
		got := binBy(series, UnitWeek, newFlakyCalendar(3))
		requirePoints(t, []Point{
			pt(day(2026, time.October, 12), 100),
			pt(day(2026, time.October, 19), 100),
		}, got)
	})

	t.Run("Returns the input when no bin can be computed", func(t *testing.T) {
		got := binBy(series, UnitWeek, newFlakyCalendar(0))
		requirePoints(t, series, got)
	})

	t.Run("Reports the error", func(t *testing.T) {
		boundaries, err := binBoundaries(series, UnitWeek, newFlakyCalendar(3))
		require.ErrorIs(t, err, errCalendar)
		assert.Len(t, boundaries, 2)
	})
}
