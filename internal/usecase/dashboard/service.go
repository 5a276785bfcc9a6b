package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/simaogato/networth-backend/internal/analytics"
	"github.com/simaogato/networth-backend/internal/domain"
	"github.com/simaogato/networth-backend/internal/usecase/allocator"
)

// maxConcurrentLoads bounds the per-asset queries issued in parallel
const maxConcurrentLoads = 8

// NetWorthResult represents the calculated net worth
type NetWorthResult struct {
	Total    decimal.Decimal
	Holdings []domain.Holding
}

// Chart is an aggregated series ready to draw, with its change over the period
type Chart struct {
	Period    analytics.Period
	Points    []analytics.Point
	Change    analytics.ChangeSummary
	HasChange bool
}

// Insights summarizes the long-term evolution of the net worth
type Insights struct {
	CurrentValue decimal.Decimal

	TotalChange    analytics.Change
	HasTotalChange bool

	YearOverYear    analytics.Change
	HasYearOverYear bool

	AverageYearlyGrowth    float64
	HasAverageYearlyGrowth bool

	SuggestedPeriod analytics.Period
}

// DashboardService handles dashboard-related operations
type DashboardService struct {
	AssetRepo domain.AssetRepository
	ValueRepo domain.AssetValueRepository
	Calendar  analytics.CalendarRules
	Now       func() time.Time
}

// NewDashboardService creates a new DashboardService instance
func NewDashboardService(
	assetRepo domain.AssetRepository,
	valueRepo domain.AssetValueRepository,
	calendar analytics.CalendarRules,
) *DashboardService {
	return &DashboardService{
		AssetRepo: assetRepo,
		ValueRepo: valueRepo,
		Calendar:  calendar,
		Now:       time.Now,
	}
}

// GetNetWorth calculates the total net worth
// Logic:
//   - Each asset contributes its latest recorded value
//   - Assets without any value contribute nothing
func (s *DashboardService) GetNetWorth(ctx context.Context) (*NetWorthResult, error) {
	holdings, err := s.holdings(ctx)
	if err != nil {
		return nil, err
	}

	return &NetWorthResult{
		Total:    allocator.Total(holdings),
		Holdings: holdings,
	}, nil
}

// NetWorthHistory returns the raw net-worth series: on every snapshot date, the sum of
// each asset's latest value at or before it, with today appended
func (s *DashboardService) NetWorthHistory(ctx context.Context) ([]analytics.Point, error) {
	series, err := s.assetSeries(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.NetWorthHistory(series, s.Now(), s.Calendar), nil
}

// NetWorthChart aggregates the net-worth history for one period
func (s *DashboardService) NetWorthChart(ctx context.Context, period analytics.Period) (*Chart, error) {
	history, err := s.NetWorthHistory(ctx)
	if err != nil {
		return nil, err
	}
	chart := s.chart(history, period, s.Now())
	return &chart, nil
}

// NetWorthCharts aggregates the net-worth history for several periods at once.
// The history is loaded once; each period is aggregated concurrently.
func (s *DashboardService) NetWorthCharts(ctx context.Context, periods []analytics.Period) ([]Chart, error) {
	history, err := s.NetWorthHistory(ctx)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	charts := make([]Chart, len(periods))

	var g errgroup.Group
	for i, period := range periods {
		i, period := i, period
		g.Go(func() error {
			charts[i] = s.chart(history, period, now)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return charts, nil
}

// AssetChart aggregates the value history of a single asset for one period
func (s *DashboardService) AssetChart(ctx context.Context, assetID uuid.UUID, period analytics.Period) (*Chart, error) {
	if _, err := s.AssetRepo.GetByID(ctx, assetID); err != nil {
		return nil, err
	}

	values, err := s.ValueRepo.ListByAsset(ctx, assetID)
	if err != nil {
		return nil, fmt.Errorf("failed to list values of asset %s: %w", assetID, err)
	}

	chart := s.chart(domain.Points(values), period, s.Now())
	return &chart, nil
}

// Allocation breaks the net worth down by asset, largest first
func (s *DashboardService) Allocation(ctx context.Context) ([]allocator.Share[domain.Holding], decimal.Decimal, error) {
	holdings, err := s.holdings(ctx)
	if err != nil {
		return nil, decimal.Zero, err
	}

	total := allocator.Total(holdings)
	return allocator.CalculateAllocation(holdings, total), total, nil
}

// Insights computes the long-term change figures of the net worth.
// The current total and the history are loaded concurrently.
func (s *DashboardService) Insights(ctx context.Context) (*Insights, error) {
	var (
		current decimal.Decimal
		history []analytics.Point
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		holdings, err := s.holdings(gctx)
		if err != nil {
			return err
		}
		current = allocator.Total(holdings)
		return nil
	})
	g.Go(func() error {
		var err error
		history, err = s.NetWorthHistory(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	insights := &Insights{
		CurrentValue:    current,
		SuggestedPeriod: analytics.AutoSelectPeriod(history, s.Calendar),
	}
	insights.TotalChange, insights.HasTotalChange = analytics.TotalChange(history, current)
	insights.YearOverYear, insights.HasYearOverYear = analytics.YearOverYear(history, current, s.Now(), s.Calendar)
	insights.AverageYearlyGrowth, insights.HasAverageYearlyGrowth = analytics.AverageYearlyGrowth(history, s.Calendar)

	return insights, nil
}

func (s *DashboardService) chart(series []analytics.Point, period analytics.Period, now time.Time) Chart {
	points := analytics.Aggregate(series, period, now, s.Calendar)
	change, ok := analytics.SummarizeChange(points)
	return Chart{Period: period, Points: points, Change: change, HasChange: ok}
}

// holdings loads every asset with its latest value
func (s *DashboardService) holdings(ctx context.Context) ([]domain.Holding, error) {
	assets, err := s.AssetRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}

	holdings := make([]domain.Holding, len(assets))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLoads)
	for i, asset := range assets {
		i, asset := i, asset
		g.Go(func() error {
			latest, err := s.ValueRepo.GetLatest(gctx, asset.ID)
			if err != nil && !errors.Is(err, domain.ErrNotFound) {
				return fmt.Errorf("failed to get current value of asset %s: %w", asset.ID, err)
			}
			holdings[i] = domain.Holding{Asset: asset, Latest: latest}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return holdings, nil
}

// assetSeries loads the value history of every asset
func (s *DashboardService) assetSeries(ctx context.Context) ([][]analytics.Point, error) {
	assets, err := s.AssetRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}

	series := make([][]analytics.Point, len(assets))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLoads)
	for i, asset := range assets {
		i, asset := i, asset
		g.Go(func() error {
			values, err := s.ValueRepo.ListByAsset(gctx, asset.ID)
			if err != nil {
				return fmt.Errorf("failed to list values of asset %s: %w", asset.ID, err)
			}
			series[i] = domain.Points(values)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return series, nil
}
