package grpc

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/simaogato/networth-backend/internal/analytics"
	"github.com/simaogato/networth-backend/internal/domain"
	"github.com/simaogato/networth-backend/internal/format"
	"github.com/simaogato/networth-backend/internal/usecase/asset"
	"github.com/simaogato/networth-backend/internal/usecase/dashboard"
	"github.com/simaogato/networth-backend/internal/usecase/valuation"
	"github.com/simaogato/networth-backend/internal/usecase/widget"
)

// Server implements the NetWorthService gRPC server
type Server struct {
	AssetService     *asset.AssetService
	ValuationService *valuation.ValuationService
	DashboardService *dashboard.DashboardService
	Widget           *widget.Publisher

	// Formatter renders the human readable amounts of responses
	Formatter format.Formatter

	// Location interprets request dates given without a time zone
	Location *time.Location
}

var _ NetWorthServiceServer = (*Server)(nil)

// NewServer creates a new gRPC server instance
func NewServer(
	assetService *asset.AssetService,
	valuationService *valuation.ValuationService,
	dashboardService *dashboard.DashboardService,
	publisher *widget.Publisher,
	formatter format.Formatter,
	location *time.Location,
) *Server {
	if location == nil {
		location = time.Local
	}
	return &Server{
		AssetService:     assetService,
		ValuationService: valuationService,
		DashboardService: dashboardService,
		Widget:           publisher,
		Formatter:        formatter,
		Location:         location,
	}
}

// CreateAsset handles the CreateAsset RPC
func (s *Server) CreateAsset(ctx context.Context, req *CreateAssetRequest) (*CreateAssetResponse, error) {
	input := asset.CreateAssetInput{Name: req.Name}

	if req.InitialValue != "" {
		value, err := parseAmount("initial_value", req.InitialValue)
		if err != nil {
			return nil, err
		}
		input.InitialValue = &value
	}

	date, err := s.parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	input.Date = date

	holding, err := s.AssetService.CreateAsset(ctx, input)
	if err != nil {
		return nil, mapError(err)
	}

	return &CreateAssetResponse{Asset: holdingToMessage(*holding)}, nil
}

// RenameAsset handles the RenameAsset RPC
func (s *Server) RenameAsset(ctx context.Context, req *RenameAssetRequest) (*RenameAssetResponse, error) {
	assetID, err := parseID("asset_id", req.AssetID)
	if err != nil {
		return nil, err
	}

	if _, err := s.AssetService.RenameAsset(ctx, assetID, req.Name); err != nil {
		return nil, mapError(err)
	}

	holding, err := s.AssetService.GetAsset(ctx, assetID)
	if err != nil {
		return nil, mapError(err)
	}

	return &RenameAssetResponse{Asset: holdingToMessage(*holding)}, nil
}

// DeleteAsset handles the DeleteAsset RPC
func (s *Server) DeleteAsset(ctx context.Context, req *DeleteAssetRequest) (*DeleteAssetResponse, error) {
	assetID, err := parseID("asset_id", req.AssetID)
	if err != nil {
		return nil, err
	}

	if err := s.AssetService.DeleteAsset(ctx, assetID); err != nil {
		return nil, mapError(err)
	}

	return &DeleteAssetResponse{}, nil
}

// ListAssets handles the ListAssets RPC
func (s *Server) ListAssets(ctx context.Context, _ *ListAssetsRequest) (*ListAssetsResponse, error) {
	holdings, err := s.AssetService.ListAssets(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	assets := make([]*Asset, 0, len(holdings))
	for _, h := range holdings {
		assets = append(assets, holdingToMessage(h))
	}

	return &ListAssetsResponse{Assets: assets}, nil
}

// RecordValue handles the RecordValue RPC
func (s *Server) RecordValue(ctx context.Context, req *RecordValueRequest) (*RecordValueResponse, error) {
	assetID, err := parseID("asset_id", req.AssetID)
	if err != nil {
		return nil, err
	}

	value, err := parseAmount("value", req.Value)
	if err != nil {
		return nil, err
	}

	date, err := s.parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	entry, err := s.ValuationService.RecordValue(ctx, valuation.RecordValueInput{
		AssetID: assetID,
		Value:   value,
		Date:    date,
	})
	if err != nil {
		return nil, mapError(err)
	}

	return &RecordValueResponse{Value: assetValueToMessage(entry)}, nil
}

// UpdateValue handles the UpdateValue RPC
func (s *Server) UpdateValue(ctx context.Context, req *UpdateValueRequest) (*UpdateValueResponse, error) {
	valueID, err := parseID("value_id", req.ValueID)
	if err != nil {
		return nil, err
	}

	value, err := parseAmount("value", req.Value)
	if err != nil {
		return nil, err
	}

	date, err := s.parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	entry, err := s.ValuationService.UpdateValue(ctx, valuation.UpdateValueInput{
		ID:    valueID,
		Value: value,
		Date:  date,
	})
	if err != nil {
		return nil, mapError(err)
	}

	return &UpdateValueResponse{Value: assetValueToMessage(entry)}, nil
}

// DeleteValue handles the DeleteValue RPC
func (s *Server) DeleteValue(ctx context.Context, req *DeleteValueRequest) (*DeleteValueResponse, error) {
	valueID, err := parseID("value_id", req.ValueID)
	if err != nil {
		return nil, err
	}

	if err := s.ValuationService.DeleteValue(ctx, valueID); err != nil {
		return nil, mapError(err)
	}

	return &DeleteValueResponse{}, nil
}

// GetValueHistory handles the GetValueHistory RPC
func (s *Server) GetValueHistory(ctx context.Context, req *GetValueHistoryRequest) (*GetValueHistoryResponse, error) {
	assetID, err := parseID("asset_id", req.AssetID)
	if err != nil {
		return nil, err
	}

	entries, err := s.ValuationService.History(ctx, assetID)
	if err != nil {
		return nil, mapError(err)
	}

	values := make([]*AssetValue, 0, len(entries))
	for _, entry := range entries {
		values = append(values, assetValueToMessage(entry))
	}

	resp := &GetValueHistoryResponse{Values: values}

	current, ok, err := s.ValuationService.CurrentValue(ctx, assetID)
	if err != nil {
		return nil, mapError(err)
	}
	if ok {
		resp.CurrentValue = current.String()
	}

	return resp, nil
}

// GetNetWorth handles the GetNetWorth RPC
func (s *Server) GetNetWorth(ctx context.Context, _ *GetNetWorthRequest) (*GetNetWorthResponse, error) {
	result, err := s.DashboardService.GetNetWorth(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	return &GetNetWorthResponse{
		TotalNetWorth:  result.Total.String(),
		Formatted:      s.Formatter.Format(result.Total),
		CurrencySymbol: s.Formatter.Symbol(),
	}, nil
}

// GetNetWorthChart handles the GetNetWorthChart RPC
func (s *Server) GetNetWorthChart(ctx context.Context, req *GetNetWorthChartRequest) (*GetNetWorthChartResponse, error) {
	period, err := parsePeriod(req.Period)
	if err != nil {
		return nil, err
	}

	chart, err := s.DashboardService.NetWorthChart(ctx, period)
	if err != nil {
		return nil, mapError(err)
	}

	return &GetNetWorthChartResponse{Chart: s.chartToMessage(*chart)}, nil
}

// GetNetWorthCharts handles the GetNetWorthCharts RPC.
// Without periods every period is returned.
func (s *Server) GetNetWorthCharts(ctx context.Context, req *GetNetWorthChartsRequest) (*GetNetWorthChartsResponse, error) {
	periods := analytics.Periods
	if len(req.Periods) > 0 {
		periods = make([]analytics.Period, 0, len(req.Periods))
		for _, name := range req.Periods {
			period, err := parsePeriod(name)
			if err != nil {
				return nil, err
			}
			periods = append(periods, period)
		}
	}

	charts, err := s.DashboardService.NetWorthCharts(ctx, periods)
	if err != nil {
		return nil, mapError(err)
	}

	resp := &GetNetWorthChartsResponse{Charts: make([]*Chart, 0, len(charts))}
	for _, chart := range charts {
		resp.Charts = append(resp.Charts, s.chartToMessage(chart))
	}
	return resp, nil
}

// GetAssetChart handles the GetAssetChart RPC
func (s *Server) GetAssetChart(ctx context.Context, req *GetAssetChartRequest) (*GetAssetChartResponse, error) {
	assetID, err := parseID("asset_id", req.AssetID)
	if err != nil {
		return nil, err
	}

	period, err := parsePeriod(req.Period)
	if err != nil {
		return nil, err
	}

	chart, err := s.DashboardService.AssetChart(ctx, assetID, period)
	if err != nil {
		return nil, mapError(err)
	}

	return &GetAssetChartResponse{Chart: s.chartToMessage(*chart)}, nil
}

// GetAllocation handles the GetAllocation RPC
func (s *Server) GetAllocation(ctx context.Context, _ *GetAllocationRequest) (*GetAllocationResponse, error) {
	shares, total, err := s.DashboardService.Allocation(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	resp := &GetAllocationResponse{
		Total:  total.String(),
		Slices: make([]*AllocationSlice, 0, len(shares)),
	}
	for _, share := range shares {
		resp.Slices = append(resp.Slices, &AllocationSlice{
			AssetID:    share.Entity.Asset.ID.String(),
			Name:       share.Entity.Asset.Name,
			Value:      share.Value.String(),
			Percentage: share.Percentage,
		})
	}
	return resp, nil
}

// GetInsights handles the GetInsights RPC
func (s *Server) GetInsights(ctx context.Context, _ *GetInsightsRequest) (*GetInsightsResponse, error) {
	insights, err := s.DashboardService.Insights(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	resp := &GetInsightsResponse{
		CurrentValue:    insights.CurrentValue.String(),
		SuggestedPeriod: insights.SuggestedPeriod.String(),
	}
	if insights.HasTotalChange {
		resp.TotalChange = s.changeToMessage(insights.TotalChange, analytics.AllTime)
	}
	if insights.HasYearOverYear {
		resp.YearOverYear = s.changeToMessage(insights.YearOverYear, analytics.Year)
	}
	if insights.HasAverageYearlyGrowth {
		growth := insights.AverageYearlyGrowth
		resp.AverageYearlyGrowth = &growth
	}
	return resp, nil
}

// RefreshWidget handles the RefreshWidget RPC
func (s *Server) RefreshWidget(ctx context.Context, _ *RefreshWidgetRequest) (*WidgetSnapshotResponse, error) {
	snapshot, err := s.Widget.Refresh(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	return &WidgetSnapshotResponse{Snapshot: s.snapshotToMessage(snapshot)}, nil
}

// GetWidgetSnapshot handles the GetWidgetSnapshot RPC
func (s *Server) GetWidgetSnapshot(ctx context.Context, _ *GetWidgetSnapshotRequest) (*WidgetSnapshotResponse, error) {
	snapshot, err := s.Widget.Load(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	return &WidgetSnapshotResponse{Snapshot: s.snapshotToMessage(snapshot)}, nil
}

func (s *Server) parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(time.DateOnly, value, s.Location)
	if err != nil {
		return time.Time{}, status.Errorf(codes.InvalidArgument, "invalid date format %q: expected YYYY-MM-DD or RFC 3339", value)
	}
	return t, nil
}

func parseID(field, value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "invalid %s format: %v", field, err)
	}
	return id, nil
}

func parseAmount(field, value string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, status.Errorf(codes.InvalidArgument, "invalid %s format: %v", field, err)
	}
	return amount, nil
}

// parsePeriod reads a period name; empty selects All Time
func parsePeriod(value string) (analytics.Period, error) {
	if strings.TrimSpace(value) == "" {
		return analytics.AllTime, nil
	}
	period, err := analytics.ParsePeriod(value)
	if err != nil {
		return 0, status.Errorf(codes.InvalidArgument, "%v", err)
	}
	return period, nil
}

// holdingToMessage converts a domain Holding to an Asset message
func holdingToMessage(h domain.Holding) *Asset {
	msg := &Asset{
		ID:          h.Asset.ID.String(),
		Name:        h.Asset.Name,
		CreatedDate: h.Asset.CreatedDate,
	}
	if value, ok := h.CurrentValue(); ok {
		updated := h.LastUpdated()
		msg.CurrentValue = value.String()
		msg.LastUpdated = &updated
	}
	return msg
}

func assetValueToMessage(v *domain.AssetValue) *AssetValue {
	return &AssetValue{
		ID:      v.ID.String(),
		AssetID: v.AssetID.String(),
		Date:    v.Date,
		Value:   v.Value.String(),
	}
}

func pointsToMessage(points []analytics.Point) []ChartPoint {
	out := make([]ChartPoint, 0, len(points))
	for _, p := range points {
		out = append(out, ChartPoint{Date: p.Time, Value: p.Amount.String()})
	}
	return out
}

func (s *Server) chartToMessage(chart dashboard.Chart) *Chart {
	msg := &Chart{
		Period: chart.Period.String(),
		Points: pointsToMessage(chart.Points),
	}
	if chart.HasChange {
		percentage := chart.Change.Percentage
		msg.Change = &Change{
			Absolute:    chart.Change.Absolute.String(),
			Formatted:   s.Formatter.FormatSigned(chart.Change.Absolute),
			Percentage:  &percentage,
			Description: analytics.DescribeChange(chart.Change.Absolute, chart.Period, s.Formatter.Format),
		}
	}
	return msg
}

func (s *Server) changeToMessage(change analytics.Change, period analytics.Period) *Change {
	msg := &Change{
		Absolute:    change.Absolute.String(),
		Formatted:   s.Formatter.FormatSigned(change.Absolute),
		Description: analytics.DescribeChange(change.Absolute, period, s.Formatter.Format),
	}
	if change.HasPercentage {
		percentage := change.Percentage
		msg.Percentage = &percentage
	}
	return msg
}

func (s *Server) snapshotToMessage(snapshot *domain.WidgetSnapshot) *WidgetSnapshot {
	headline := s.Widget.Headline(snapshot)
	return &WidgetSnapshot{
		CurrentValue: snapshot.CurrentValue.String(),
		History:      pointsToMessage(snapshot.History),
		CurrencyCode: snapshot.CurrencyCode,
		Anonymized:   snapshot.Anonymized,
		LastUpdated:  snapshot.LastUpdated,
		Headline:     headline.Value,
		ChangeText:   headline.Change,
	}
}

// mapError converts domain errors to gRPC status errors
func mapError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
