package grpc

import "time"

// Asset is an asset with its current value.
// CurrentValue is empty when no value was recorded yet.
type Asset struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	CreatedDate  time.Time  `json:"created_date"`
	CurrentValue string     `json:"current_value,omitempty"`
	LastUpdated  *time.Time `json:"last_updated,omitempty"`
}

// AssetValue is a dated valuation snapshot
type AssetValue struct {
	ID      string    `json:"id"`
	AssetID string    `json:"asset_id"`
	Date    time.Time `json:"date"`
	Value   string    `json:"value"`
}

// ChartPoint is one point of an aggregated series
type ChartPoint struct {
	Date  time.Time `json:"date"`
	Value string    `json:"value"`
}

// Change is the difference between two values.
// Percentage is omitted when the baseline is not positive.
type Change struct {
	Absolute    string   `json:"absolute"`
	Formatted   string   `json:"formatted"`
	Percentage  *float64 `json:"percentage,omitempty"`
	Description string   `json:"description,omitempty"`
}

// Chart is an aggregated series with its change over the period
type Chart struct {
	Period string       `json:"period"`
	Points []ChartPoint `json:"points"`
	Change *Change      `json:"change,omitempty"`
}

// AllocationSlice is the share of the net worth held by one asset
type AllocationSlice struct {
	AssetID    string  `json:"asset_id"`
	Name       string  `json:"name"`
	Value      string  `json:"value"`
	Percentage float64 `json:"percentage"`
}

// WidgetSnapshot is the published widget summary
type WidgetSnapshot struct {
	CurrentValue string       `json:"current_value"`
	History      []ChartPoint `json:"history"`
	CurrencyCode string       `json:"currency_code"`
	Anonymized   bool         `json:"anonymized"`
	LastUpdated  time.Time    `json:"last_updated"`
	Headline     string       `json:"headline"`
	ChangeText   string       `json:"change_text,omitempty"`
}

// Dates are accepted as "2006-01-02" or RFC 3339; empty means now.

type CreateAssetRequest struct {
	Name         string `json:"name"`
	InitialValue string `json:"initial_value,omitempty"`
	Date         string `json:"date,omitempty"`
}

type CreateAssetResponse struct {
	Asset *Asset `json:"asset"`
}

type RenameAssetRequest struct {
	AssetID string `json:"asset_id"`
	Name    string `json:"name"`
}

type RenameAssetResponse struct {
	Asset *Asset `json:"asset"`
}

type DeleteAssetRequest struct {
	AssetID string `json:"asset_id"`
}

type DeleteAssetResponse struct{}

type ListAssetsRequest struct{}

type ListAssetsResponse struct {
	Assets []*Asset `json:"assets"`
}

type RecordValueRequest struct {
	AssetID string `json:"asset_id"`
	Value   string `json:"value"`
	Date    string `json:"date,omitempty"`
}

type RecordValueResponse struct {
	Value *AssetValue `json:"value"`
}

type UpdateValueRequest struct {
	ValueID string `json:"value_id"`
	Value   string `json:"value"`
	Date    string `json:"date,omitempty"`
}

type UpdateValueResponse struct {
	Value *AssetValue `json:"value"`
}

type DeleteValueRequest struct {
	ValueID string `json:"value_id"`
}

type DeleteValueResponse struct{}

type GetValueHistoryRequest struct {
	AssetID string `json:"asset_id"`
}

type GetValueHistoryResponse struct {
	Values []*AssetValue `json:"values"`
	// CurrentValue is empty when the asset has no recorded value
	CurrentValue string `json:"current_value,omitempty"`
}

type GetNetWorthRequest struct{}

type GetNetWorthResponse struct {
	TotalNetWorth  string `json:"total_net_worth"`
	Formatted      string `json:"formatted"`
	CurrencySymbol string `json:"currency_symbol"`
}

type GetNetWorthChartRequest struct {
	Period string `json:"period"`
}

type GetNetWorthChartResponse struct {
	Chart *Chart `json:"chart"`
}

type GetNetWorthChartsRequest struct {
	Periods []string `json:"periods,omitempty"`
}

type GetNetWorthChartsResponse struct {
	Charts []*Chart `json:"charts"`
}

type GetAssetChartRequest struct {
	AssetID string `json:"asset_id"`
	Period  string `json:"period"`
}

type GetAssetChartResponse struct {
	Chart *Chart `json:"chart"`
}

type GetAllocationRequest struct{}

type GetAllocationResponse struct {
	Total  string             `json:"total"`
	Slices []*AllocationSlice `json:"slices"`
}

type GetInsightsRequest struct{}

type GetInsightsResponse struct {
	CurrentValue        string   `json:"current_value"`
	TotalChange         *Change  `json:"total_change,omitempty"`
	YearOverYear        *Change  `json:"year_over_year,omitempty"`
	AverageYearlyGrowth *float64 `json:"average_yearly_growth,omitempty"`
	SuggestedPeriod     string   `json:"suggested_period"`
}

type RefreshWidgetRequest struct{}

type GetWidgetSnapshotRequest struct{}

type WidgetSnapshotResponse struct {
	Snapshot *WidgetSnapshot `json:"snapshot"`
}
