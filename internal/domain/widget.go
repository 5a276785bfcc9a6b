package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/simaogato/networth-backend/internal/analytics"
)

// WidgetSnapshot is the precomputed net-worth summary published for home-screen widgets
type WidgetSnapshot struct {
	CurrentValue decimal.Decimal
	History      []analytics.Point
	CurrencyCode string
	Anonymized   bool
	LastUpdated  time.Time
}

// WidgetRefresher rebuilds the published widget snapshot after data changes
type WidgetRefresher interface {
	Refresh(ctx context.Context) (*WidgetSnapshot, error)
}
