package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllTimeBins(t *testing.T) {
	tests := []struct {
		name     string
		series   []Point
		wantUnit Unit
		wantLen  int
	}{
		{
			name:     "Same month bins by week",
			series:   daily(day(2025, time.October, 1), 10, 1),
			wantUnit: UnitWeek,
			wantLen:  2,
		},
		{
			name:     "Under two months bins by week",
			series:   daily(day(2025, time.August, 1), 60, 1),
			wantUnit: UnitWeek,
			wantLen:  10,
		},
		{
			name:     "Under a year with few weeks bins by week",
			series:   daily(day(2025, time.January, 1), 200, 1),
			wantUnit: UnitWeek,
			wantLen:  29,
		},
		{
			name:     "Under a year with too many weeks bins by month",
			series:   daily(day(2025, time.January, 1), 360, 1),
			wantUnit: UnitMonth,
			wantLen:  12,
		},
		{
			name:     "Over a year bins by month",
			series:   daily(day(2025, time.January, 1), 400, 1),
			wantUnit: UnitMonth,
			wantLen:  14,
		},
		{
			name: "Too many months bins by quarter",
			series: []Point{
				pt(day(2020, time.January, 31), 100),
				pt(day(2022, time.June, 15), 200),
				pt(day(2025, time.January, 27), 300),
			},
			wantUnit: UnitQuarter,
			wantLen:  21,
		},
		{
			name:     "Five years or more bins by year",
			series:   []Point{pt(day(2000, time.January, 1), 1), pt(day(2010, time.June, 1), 2)},
			wantUnit: UnitYear,
			wantLen:  11,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, unit := allTimeBins(tt.series, cal)
			assert.Equal(t, tt.wantUnit, unit)
			assert.Len(t, got, tt.wantLen)
			assertChronological(t, got)
		})
	}
}

func TestAllTimeBins_DenseDailyOverAYearAvoidsWeeks(t *testing.T) {
	series := daily(day(2025, time.January, 1), 400, 1)
	require.Greater(t, len(binBy(series, UnitWeek, cal)), maxWeeklyBins)

	_, unit := allTimeBins(series, cal)
	assert.Equal(t, UnitMonth, unit)
}

func TestAllTimeBins_QuarterValues(t *testing.T) {
	series := []Point{
		pt(day(2020, time.January, 31), 100),
		pt(day(2022, time.June, 15), 200),
		pt(day(2025, time.January, 27), 300),
	}

	got, _ := allTimeBins(series, cal)

	require.Len(t, got, 21)
	assert.True(t, got[0].Time.Equal(day(2020, time.March, 31)))
	assert.Equal(t, "100", got[0].Amount.String())
	assert.True(t, got[20].Time.Equal(day(2025, time.March, 31)))
	assert.Equal(t, "300", got[20].Amount.String())
}

func TestAllTimeBins_ShortSpanSamplesRawPoints(t *testing.T) {
	start := day(2025, time.September, 20)
	series := make([]Point, 0, 60)
	for i := 0; i < 60; i++ {
		series = append(series, pt(start.Add(time.Duration(i)*6*time.Hour), int64(i)))
	}

	got, unit := allTimeBins(series, cal)

	assert.Equal(t, UnitDay, unit)
	require.Len(t, got, maxAllTimePoints)
	assert.Equal(t, series[0], got[0])
	assert.Equal(t, series[59], got[len(got)-1])
}

func TestAllTimeBins_ManyYearsAreSampled(t *testing.T) {
	series := make([]Point, 0, 61)
	for y := 1950; y <= 2010; y++ {
		series = append(series, pt(day(y, time.January, 1), int64(y)))
	}

	got, unit := allTimeBins(series, cal)

	assert.Equal(t, UnitYear, unit)
	require.Len(t, got, maxAllTimePoints)
	assert.True(t, got[len(got)-1].Time.Equal(day(2011, time.January, 1)))
}
