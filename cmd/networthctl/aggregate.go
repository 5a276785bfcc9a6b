package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/simaogato/networth-backend/internal/analytics"
	"github.com/simaogato/networth-backend/internal/config"
	"github.com/simaogato/networth-backend/internal/format"
)

// snapshot is one entry of an aggregate input file
type snapshot struct {
	Date  string          `json:"date"`
	Value decimal.Decimal `json:"value"`
}

type aggregateCmd struct {
	period    string
	now       string
	timezone  string
	weekStart string
	currency  string
	out       io.Writer
}

func (*aggregateCmd) Name() string     { return "aggregate" }
func (*aggregateCmd) Synopsis() string { return "aggregate a file of snapshots into chart points" }
func (*aggregateCmd) Usage() string {
	return `networthctl aggregate [-period <week|month|year|all>] [-now <date>] [<file.json>]

  Reads a JSON array of {"date": "2026-01-31", "value": "1234.56"} snapshots
  (from the file, or stdin when omitted) and prints the chart points of the period
  together with the change over the period.
`
}

func (c *aggregateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "period", "all", "chart period (week, month, year, all)")
	f.StringVar(&c.now, "now", "", "reference date (defaults to now)")
	f.StringVar(&c.timezone, "tz", "Local", "time zone of the calendar")
	f.StringVar(&c.weekStart, "week-start", "monday", "first day of the week (sunday, monday, saturday)")
	f.StringVar(&c.currency, "currency", "USD", "currency used to display amounts")
}

func (c *aggregateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	period, err := analytics.ParsePeriod(c.period)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	cal, err := calendarFor(c.timezone, c.weekStart)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	loc := cal.Location

	now := time.Now().In(loc)
	if c.now != "" {
		if now, err = parseDate(c.now, loc); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	var in io.Reader = os.Stdin
	if f.NArg() > 0 {
		file, err := os.Open(f.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		in = file
	}

	series, err := readSnapshots(in, loc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	out := c.out
	if out == nil {
		out = os.Stdout
	}
	renderAggregate(out, series, period, now, cal, format.New(c.currency, false))
	return subcommands.ExitSuccess
}

// readSnapshots decodes a JSON array of snapshots into chart points
func readSnapshots(r io.Reader, loc *time.Location) ([]analytics.Point, error) {
	var entries []snapshot
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("failed to decode snapshots: %w", err)
	}

	points := make([]analytics.Point, 0, len(entries))
	for i, e := range entries {
		t, err := parseDate(e.Date, loc)
		if err != nil {
			return nil, fmt.Errorf("snapshot %d: %w", i, err)
		}
		points = append(points, analytics.NewPoint(t, e.Value))
	}
	return points, nil
}

// renderAggregate prints the aggregated points of series and their change
func renderAggregate(w io.Writer, series []analytics.Point, period analytics.Period, now time.Time, cal analytics.CalendarRules, f format.Formatter) {
	points := analytics.Aggregate(series, period, now, cal)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tVALUE")
	for _, p := range points {
		fmt.Fprintf(tw, "%s\t%s\n", p.Time.Format(time.DateOnly), f.Format(p.Amount))
	}
	tw.Flush()

	if change, ok := analytics.SummarizeChange(points); ok {
		fmt.Fprintf(w, "\n%s (%s)\n",
			analytics.DescribeChange(change.Absolute, period, f.Format),
			analytics.DescribePercentage(change.Percentage, period))
	}
}

func calendarFor(timezone, weekStart string) (analytics.Gregorian, error) {
	cc := config.CalendarConfig{Timezone: timezone, WeekStart: weekStart}

	loc, err := cc.Location()
	if err != nil {
		return analytics.Gregorian{}, err
	}
	first, err := cc.FirstWeekday()
	if err != nil {
		return analytics.Gregorian{}, err
	}

	return analytics.NewGregorian(loc, first), nil
}

// parseDate accepts "2006-01-02" in loc, or RFC 3339
func parseDate(value string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(time.DateOnly, value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD or RFC 3339", value)
	}
	return t, nil
}
