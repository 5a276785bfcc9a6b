package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/simaogato/networth-backend/internal/analytics"
)

// AssetValue is a dated valuation snapshot of an asset.
// The latest snapshot of an asset is its current value.
type AssetValue struct {
	ID      uuid.UUID
	AssetID uuid.UUID
	Date    time.Time
	Value   decimal.Decimal
}

// Validate ensures the snapshot adheres to domain rules
func (v *AssetValue) Validate() error {
	if v.AssetID == uuid.Nil {
		return fmt.Errorf("%w: asset value must belong to an asset", ErrInvalidArgument)
	}
	if v.Date.IsZero() {
		return fmt.Errorf("%w: asset value must have a date", ErrInvalidArgument)
	}
	if v.Value.IsNegative() {
		return fmt.Errorf("%w: asset value cannot be negative", ErrInvalidArgument)
	}
	return nil
}

// Point converts the snapshot to a chart point
func (v *AssetValue) Point() analytics.Point {
	return analytics.NewPoint(v.Date, v.Value)
}

// Points converts snapshots to chart points, keeping their order
func Points(values []*AssetValue) []analytics.Point {
	points := make([]analytics.Point, 0, len(values))
	for _, v := range values {
		points = append(points, v.Point())
	}
	return points
}
