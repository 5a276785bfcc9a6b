package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAsset_Validate(t *testing.T) {
	tests := []struct {
		name    string
		asset   Asset
		wantErr bool
		errMsg  string
	}{
		{
			name:  "Named asset should pass",
			asset: Asset{ID: uuid.New(), Name: "Savings Account", CreatedDate: time.Now()},
		},
		{
			name:    "Empty name should fail",
			asset:   Asset{ID: uuid.New(), Name: ""},
			wantErr: true,
			errMsg:  "asset name cannot be empty",
		},
		{
			name:    "Blank name should fail",
			asset:   Asset{ID: uuid.New(), Name: "   "},
			wantErr: true,
			errMsg:  "asset name cannot be empty",
		},
		{
			name:    "Overlong name should fail",
			asset:   Asset{ID: uuid.New(), Name: strings.Repeat("x", 101)},
			wantErr: true,
			errMsg:  "longer than 100",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.asset.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidArgument)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAsset_IsDemo(t *testing.T) {
	assert.True(t, (&Asset{Name: "Demo: Rolex"}).IsDemo())
	assert.False(t, (&Asset{Name: "Rolex"}).IsDemo())
}

func TestAssetValue_Validate(t *testing.T) {
	tests := []struct {
		name    string
		value   AssetValue
		wantErr bool
		errMsg  string
	}{
		{
			name:  "Positive value should pass",
			value: AssetValue{ID: uuid.New(), AssetID: uuid.New(), Date: time.Now(), Value: decimal.NewFromInt(100)},
		},
		{
			name:  "Zero value should pass",
			value: AssetValue{ID: uuid.New(), AssetID: uuid.New(), Date: time.Now(), Value: decimal.Zero},
		},
		{
			name:    "Negative value should fail",
			value:   AssetValue{ID: uuid.New(), AssetID: uuid.New(), Date: time.Now(), Value: decimal.NewFromInt(-1)},
			wantErr: true,
			errMsg:  "cannot be negative",
		},
		{
			name:    "Missing asset should fail",
			value:   AssetValue{ID: uuid.New(), Date: time.Now(), Value: decimal.NewFromInt(1)},
			wantErr: true,
			errMsg:  "must belong to an asset",
		},
		{
			name:    "Missing date should fail",
			value:   AssetValue{ID: uuid.New(), AssetID: uuid.New(), Value: decimal.NewFromInt(1)},
			wantErr: true,
			errMsg:  "must have a date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.value.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidArgument)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestHolding_CurrentValue(t *testing.T) {
	asset := &Asset{ID: uuid.New(), Name: "Cash"}

	_, ok := Holding{Asset: asset}.CurrentValue()
	assert.False(t, ok)
	assert.True(t, Holding{Asset: asset}.LastUpdated().IsZero())

	date := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	h := Holding{Asset: asset, Latest: &AssetValue{AssetID: asset.ID, Date: date, Value: decimal.NewFromInt(42)}}
	v, ok := h.CurrentValue()
	assert.True(t, ok)
	assert.True(t, v.Equal(decimal.NewFromInt(42)))
	assert.Equal(t, date, h.LastUpdated())
}

func TestPoints(t *testing.T) {
	date := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	values := []*AssetValue{{Date: date, Value: decimal.NewFromInt(5)}}

	points := Points(values)

	assert.Len(t, points, 1)
	assert.Equal(t, date, points[0].Time)
	assert.True(t, points[0].Amount.Equal(decimal.NewFromInt(5)))
}
