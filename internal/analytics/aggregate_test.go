package analytics

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate_EmptySeries(t *testing.T) {
	t.Run("Week draws a zero line over the window", func(t *testing.T) {
		got := Aggregate(nil, Week, now, cal)
		requirePoints(t, []Point{pt(day(2026, time.October, 12), 0), pt(now, 0)}, got)
	})

	t.Run("All time draws a zero line over the last week", func(t *testing.T) {
		got := Aggregate([]Point{}, AllTime, now, cal)
		requirePoints(t, []Point{pt(day(2026, time.October, 8), 0), pt(day(2026, time.October, 15), 0)}, got)
	})
}

func TestAggregate_SinglePoint(t *testing.T) {
	t.Run("Bounded period spans the window", func(t *testing.T) {
		got := Aggregate([]Point{pt(now, 5000)}, Month, now, cal)
		requirePoints(t, []Point{pt(day(2026, time.October, 1), 5000), pt(now, 5000)}, got)
	})

	t.Run("All time brackets the value", func(t *testing.T) {
		single := pt(time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC), 750)
		got := Aggregate([]Point{single}, AllTime, now, cal)
		requirePoints(t, []Point{
			pt(day(2026, time.August, 2), 750),
			pt(day(2026, time.September, 1), 750),
			pt(day(2026, time.October, 15), 750),
		}, got)
	})

	t.Run("All time pads past today for a recent value", func(t *testing.T) {
		single := pt(day(2026, time.October, 10), 10)
		got := Aggregate([]Point{single}, AllTime, now, cal)
		require.Len(t, got, 3)
		assert.True(t, got[2].Time.Equal(day(2026, time.November, 9)))
	})
}

func TestAggregate_NothingInsideWindow(t *testing.T) {
	t.Run("Carries the latest earlier value across the window", func(t *testing.T) {
		series := []Point{
			pt(day(2026, time.August, 10), 100),
			pt(day(2026, time.September, 20), 300),
		}
		got := Aggregate(series, Month, now, cal)
		requirePoints(t, []Point{pt(day(2026, time.October, 1), 300), pt(now, 300)}, got)
	})

	t.Run("Only future snapshots fall back to a zero line", func(t *testing.T) {
		series := []Point{pt(day(2026, time.November, 2), 100)}
		got := Aggregate(series, Month, now, cal)
		requirePoints(t, []Point{pt(day(2026, time.October, 1), 0), pt(now, 0)}, got)
	})
}

func TestAggregate_WeekIsLimitedToFivePoints(t *testing.T) {
	start := day(2026, time.October, 12)
	series := make([]Point, 0, 20)
	for i := 0; i < 20; i++ {
		series = append(series, pt(start.Add(time.Duration(i)*4*time.Hour), 100+int64(i)))
	}

	got := Aggregate(series, Week, now, cal)

	requirePoints(t, []Point{
		pt(day(2026, time.October, 12), 100),
		pt(day(2026, time.October, 13), 106),
		pt(day(2026, time.October, 14), 112),
		pt(time.Date(2026, time.October, 15, 4, 0, 0, 0, time.UTC), 119),
	}, got)
}

func TestAggregate_MonthBinsByWeek(t *testing.T) {
	series := make([]Point, 0, 10)
	for i := 0; i < 10; i++ {
		series = append(series, pt(time.Date(2026, time.October, 1+i, 9, 0, 0, 0, time.UTC), 100+int64(i)))
	}

	got := Aggregate(series, Month, now, cal)

	requirePoints(t, []Point{
		pt(day(2026, time.October, 5), 103),
		pt(day(2026, time.October, 12), 109),
	}, got)
}

func TestAggregate_MonthShowsFewPointsAsIs(t *testing.T) {
	series := []Point{
		pt(day(2026, time.October, 3), 10),
		pt(day(2026, time.October, 1), 5),
		pt(day(2026, time.October, 7), 20),
	}

	got := Aggregate(series, Month, now, cal)

	requirePoints(t, []Point{
		pt(day(2026, time.October, 1), 5),
		pt(day(2026, time.October, 3), 10),
		pt(day(2026, time.October, 7), 20),
	}, got)
}

func TestAggregate_SingleBin(t *testing.T) {
	t.Run("Month with every snapshot on one day spans the window", func(t *testing.T) {
		series := make([]Point, 0, 10)
		for i := 0; i < 10; i++ {
			series = append(series, pt(time.Date(2026, time.October, 14, i, 0, 0, 0, time.UTC), 100+int64(i)))
		}

		got := Aggregate(series, Month, now, cal)

		requirePoints(t, []Point{pt(day(2026, time.October, 1), 109), pt(now, 109)}, got)
	})

	t.Run("All time with every snapshot in one week brackets the value", func(t *testing.T) {
		series := []Point{
			pt(day(2026, time.October, 12), 1),
			pt(day(2026, time.October, 13), 2),
			pt(day(2026, time.October, 14), 3),
		}

		got := Aggregate(series, AllTime, now, cal)

		requirePoints(t, []Point{
			pt(day(2026, time.September, 14), 3),
			pt(day(2026, time.October, 14), 3),
			pt(day(2026, time.November, 13), 3),
		}, got)
	})
}

func TestAggregate_YearBinsByWeekAndReduces(t *testing.T) {
	// 20 fortnightly snapshots from Monday 2026-01-05 through 2026-09-28
	start := day(2026, time.January, 5)
	series := make([]Point, 0, 20)
	for i := 0; i < 20; i++ {
		series = append(series, pt(start.AddDate(0, 0, 14*i), 1000+10*int64(i)))
	}

	got := Aggregate(series, Year, now, cal)

	require.Len(t, got, 5)
	assertChronological(t, got)
	assert.Equal(t, len(got), len(dedupeByDay(got, cal)), "one point per day")

	last := got[len(got)-1]
	assert.True(t, last.Time.Equal(day(2026, time.September, 28)), "last point is anchored on the latest snapshot")
	assert.True(t, last.Amount.Equal(decimal.NewFromInt(1190)))
}

func TestAggregate_BinnedChartStartsAtFirstBin(t *testing.T) {
	// The first weekly bin closes on 2026-01-12. The first snapshot precedes every bin,
	// so the chart starts at the first evenly spaced day after that bin instead.
	start := day(2026, time.January, 5)
	series := make([]Point, 0, 20)
	for i := 0; i < 20; i++ {
		series = append(series, pt(start.AddDate(0, 0, 14*i), 1000+10*int64(i)))
	}

	got := Aggregate(series, Year, now, cal)

	require.NotEmpty(t, got)
	assert.True(t, got[0].Time.After(day(2026, time.January, 12)), "first point %s", got[0].Time)
	assert.True(t, got[0].Time.Equal(day(2026, time.March, 6)), "first point %s", got[0].Time)
	assert.True(t, got[0].Amount.Equal(decimal.NewFromInt(1040)), "carries the bin closing on 2026-03-02")
}

func TestAggregate_YearBinsByMonthAndReduces(t *testing.T) {
	start := time.Date(2026, time.January, 3, 9, 0, 0, 0, time.UTC)
	series := make([]Point, 0, 40)
	for i := 0; i < 40; i++ {
		series = append(series, pt(start.AddDate(0, 0, 7*i), 1000+10*int64(i)))
	}

	got := Aggregate(series, Year, now, cal)

	require.Len(t, got, 5)
	assertChronological(t, got)
	assert.Equal(t, len(got), len(dedupeByDay(got, cal)), "one point per day")

	last := got[len(got)-1]
	assert.True(t, last.Time.Equal(time.Date(2026, time.October, 3, 9, 0, 0, 0, time.UTC)), "last point is anchored on the latest snapshot")
	assert.True(t, last.Amount.Equal(decimal.NewFromInt(1380)), "monthly bins forward-fill the last snapshot before October 1")
}

func TestAggregate_AllTimeFewPointsUnchanged(t *testing.T) {
	series := []Point{
		pt(day(2026, time.September, 20), 100),
		pt(day(2026, time.October, 5), 200),
	}

	got := Aggregate(series, AllTime, now, cal)

	requirePoints(t, series, got)
}

func TestAggregate_DoesNotMutateInput(t *testing.T) {
	series := []Point{
		pt(day(2026, time.October, 9), 3),
		pt(day(2026, time.October, 1), 1),
		pt(day(2026, time.October, 5), 2),
	}
	before := append([]Point(nil), series...)

	Aggregate(series, Month, now, cal)

	requirePoints(t, before, series)
}

func TestAggregate_OutputIsBounded(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 6, 12, 40, 120, 400} {
		series := make([]Point, 0, n)
		for i := 0; i < n; i++ {
			series = append(series, pt(now.Add(-time.Duration(i)*37*time.Hour), int64(i)))
		}

		for _, period := range Periods {
			t.Run(fmt.Sprintf("%s/%d", period, n), func(t *testing.T) {
				got := Aggregate(series, period, now, cal)

				assert.NotEmpty(t, got)
				assert.LessOrEqual(t, len(got), max(maxChartPoints, n))
				assertChronological(t, got)
			})
		}
	}
}

func TestAggregate_CalendarFailureDegrades(t *testing.T) {
	series := daily(day(2025, time.January, 1), 200, 1)

	// The window cannot be resolved, so the period behaves as unbounded
	got := Aggregate(series, Year, now, newFlakyCalendar(0))

	assert.NotEmpty(t, got)
	assert.LessOrEqual(t, len(got), maxChartPoints)
	assertChronological(t, got)
}
