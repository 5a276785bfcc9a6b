package main

import (
	"context"
	"flag"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	grpcadapter "github.com/simaogato/networth-backend/internal/adapter/grpc"
)

// amount renders a decimal string from the server, or "-" when absent
func (r *remote) amount(value string) string {
	if value == "" {
		return "-"
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return value
	}
	return r.formatter().Format(d)
}

type assetsCmd struct{ remote }

func (*assetsCmd) Name() string     { return "assets" }
func (*assetsCmd) Synopsis() string { return "list assets with their current value" }
func (*assetsCmd) Usage() string {
	return `networthctl assets [-addr <host:port>]

  Lists every asset with its current value and the date it was last valued.
`
}

func (c *assetsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.call(ctx, func(ctx context.Context, client *grpcadapter.Client) error {
		resp, err := client.ListAssets(ctx, &grpcadapter.ListAssetsRequest{})
		if err != nil {
			return err
		}

		tw := tabwriter.NewWriter(c.writer(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tNAME\tVALUE\tUPDATED")
		for _, a := range resp.Assets {
			updated := "-"
			if a.LastUpdated != nil {
				updated = a.LastUpdated.Format(time.DateOnly)
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", a.ID, a.Name, c.amount(a.CurrentValue), updated)
		}
		return tw.Flush()
	})
}

type createAssetCmd struct {
	remote
	name  string
	value string
	date  string
}

func (*createAssetCmd) Name() string     { return "create-asset" }
func (*createAssetCmd) Synopsis() string { return "create an asset, optionally with a first value" }
func (*createAssetCmd) Usage() string {
	return `networthctl create-asset -name <name> [-value <amount>] [-d <date>]
`
}

func (c *createAssetCmd) SetFlags(f *flag.FlagSet) {
	c.remote.SetFlags(f)
	f.StringVar(&c.name, "name", "", "asset name")
	f.StringVar(&c.value, "value", "", "initial value")
	f.StringVar(&c.date, "d", "", "date of the initial value (defaults to today)")
}

func (c *createAssetCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Println(c.Usage())
		return subcommands.ExitUsageError
	}
	return c.call(ctx, func(ctx context.Context, client *grpcadapter.Client) error {
		resp, err := client.CreateAsset(ctx, &grpcadapter.CreateAssetRequest{
			Name:         c.name,
			InitialValue: c.value,
			Date:         c.date,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(c.writer(), "Created %s (%s)\n", resp.Asset.Name, resp.Asset.ID)
		return nil
	})
}

type recordCmd struct {
	remote
	assetID string
	value   string
	date    string
}

func (*recordCmd) Name() string     { return "record" }
func (*recordCmd) Synopsis() string { return "record a new value of an asset" }
func (*recordCmd) Usage() string {
	return `networthctl record -asset <id> -value <amount> [-d <date>]
`
}

func (c *recordCmd) SetFlags(f *flag.FlagSet) {
	c.remote.SetFlags(f)
	f.StringVar(&c.assetID, "asset", "", "asset ID")
	f.StringVar(&c.value, "value", "", "value of the asset")
	f.StringVar(&c.date, "d", "", "valuation date (defaults to now)")
}

func (c *recordCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.assetID == "" || c.value == "" {
		fmt.Println(c.Usage())
		return subcommands.ExitUsageError
	}
	return c.call(ctx, func(ctx context.Context, client *grpcadapter.Client) error {
		resp, err := client.RecordValue(ctx, &grpcadapter.RecordValueRequest{
			AssetID: c.assetID,
			Value:   c.value,
			Date:    c.date,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(c.writer(), "Recorded %s on %s\n", c.amount(resp.Value.Value), resp.Value.Date.Format(time.DateOnly))
		return nil
	})
}

type chartCmd struct {
	remote
	period  string
	assetID string
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "display the chart points of the net worth or of an asset" }
func (*chartCmd) Usage() string {
	return `networthctl chart [-period <week|month|year|all>] [-asset <id>]
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	c.remote.SetFlags(f)
	f.StringVar(&c.period, "period", "all", "chart period (week, month, year, all)")
	f.StringVar(&c.assetID, "asset", "", "chart a single asset instead of the net worth")
}

func (c *chartCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.call(ctx, func(ctx context.Context, client *grpcadapter.Client) error {
		var chart *grpcadapter.Chart
		if c.assetID != "" {
			resp, err := client.GetAssetChart(ctx, &grpcadapter.GetAssetChartRequest{AssetID: c.assetID, Period: c.period})
			if err != nil {
				return err
			}
			chart = resp.Chart
		} else {
			resp, err := client.GetNetWorthChart(ctx, &grpcadapter.GetNetWorthChartRequest{Period: c.period})
			if err != nil {
				return err
			}
			chart = resp.Chart
		}

		w := c.writer()
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintf(tw, "DATE\t%s\n", chart.Period)
		for _, p := range chart.Points {
			fmt.Fprintf(tw, "%s\t%s\n", p.Date.Format(time.DateOnly), c.amount(p.Value))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		if chart.Change != nil {
			fmt.Fprintf(w, "\n%s\n", chart.Change.Description)
		}
		return nil
	})
}

type netWorthCmd struct{ remote }

func (*netWorthCmd) Name() string     { return "networth" }
func (*netWorthCmd) Synopsis() string { return "display the current net worth" }
func (*netWorthCmd) Usage() string {
	return `networthctl networth
`
}

func (c *netWorthCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.call(ctx, func(ctx context.Context, client *grpcadapter.Client) error {
		resp, err := client.GetNetWorth(ctx, &grpcadapter.GetNetWorthRequest{})
		if err != nil {
			return err
		}
		fmt.Fprintln(c.writer(), resp.Formatted)
		return nil
	})
}

type allocationCmd struct{ remote }

func (*allocationCmd) Name() string     { return "allocation" }
func (*allocationCmd) Synopsis() string { return "display how the net worth is spread across assets" }
func (*allocationCmd) Usage() string {
	return `networthctl allocation
`
}

func (c *allocationCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.call(ctx, func(ctx context.Context, client *grpcadapter.Client) error {
		resp, err := client.GetAllocation(ctx, &grpcadapter.GetAllocationRequest{})
		if err != nil {
			return err
		}

		tw := tabwriter.NewWriter(c.writer(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tVALUE\tSHARE")
		for _, s := range resp.Slices {
			fmt.Fprintf(tw, "%s\t%s\t%.1f%%\n", s.Name, c.amount(s.Value), s.Percentage)
		}
		fmt.Fprintf(tw, "Total\t%s\t\n", c.amount(resp.Total))
		return tw.Flush()
	})
}

type insightsCmd struct{ remote }

func (*insightsCmd) Name() string     { return "insights" }
func (*insightsCmd) Synopsis() string { return "display long-term net worth insights" }
func (*insightsCmd) Usage() string {
	return `networthctl insights
`
}

func (c *insightsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.call(ctx, func(ctx context.Context, client *grpcadapter.Client) error {
		resp, err := client.GetInsights(ctx, &grpcadapter.GetInsightsRequest{})
		if err != nil {
			return err
		}

		w := c.writer()
		fmt.Fprintf(w, "Net worth:      %s\n", c.amount(resp.CurrentValue))
		if resp.TotalChange != nil {
			fmt.Fprintf(w, "Total change:   %s%s\n", resp.TotalChange.Description, percentSuffix(resp.TotalChange.Percentage))
		}
		if resp.YearOverYear != nil {
			fmt.Fprintf(w, "Year over year: %s%s\n", resp.YearOverYear.Description, percentSuffix(resp.YearOverYear.Percentage))
		}
		if resp.AverageYearlyGrowth != nil {
			fmt.Fprintf(w, "Yearly growth:  %.1f%% on average\n", *resp.AverageYearlyGrowth)
		}
		fmt.Fprintf(w, "Suggested view: %s\n", resp.SuggestedPeriod)
		return nil
	})
}

func percentSuffix(p *float64) string {
	if p == nil {
		return ""
	}
	return fmt.Sprintf(" (%+.1f%%)", *p)
}

type widgetCmd struct {
	remote
	refresh bool
}

func (*widgetCmd) Name() string     { return "widget" }
func (*widgetCmd) Synopsis() string { return "display the published widget snapshot" }
func (*widgetCmd) Usage() string {
	return `networthctl widget [-refresh]
`
}

func (c *widgetCmd) SetFlags(f *flag.FlagSet) {
	c.remote.SetFlags(f)
	f.BoolVar(&c.refresh, "refresh", false, "republish the snapshot before displaying it")
}

func (c *widgetCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.call(ctx, func(ctx context.Context, client *grpcadapter.Client) error {
		var (
			resp *grpcadapter.WidgetSnapshotResponse
			err  error
		)
		if c.refresh {
			resp, err = client.RefreshWidget(ctx, &grpcadapter.RefreshWidgetRequest{})
		} else {
			resp, err = client.GetWidgetSnapshot(ctx, &grpcadapter.GetWidgetSnapshotRequest{})
		}
		if err != nil {
			return err
		}

		s := resp.Snapshot
		w := c.writer()
		fmt.Fprintln(w, s.Headline)
		if s.ChangeText != "" {
			fmt.Fprintln(w, s.ChangeText)
		}
		fmt.Fprintf(w, "%d points, updated %s\n", len(s.History), s.LastUpdated.Format(time.RFC3339))
		return nil
	})
}
