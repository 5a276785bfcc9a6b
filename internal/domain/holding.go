package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Holding is an asset together with its latest valuation, if any
type Holding struct {
	Asset  *Asset
	Latest *AssetValue
}

// CurrentValue returns the latest recorded value of the asset
func (h Holding) CurrentValue() (decimal.Decimal, bool) {
	if h.Latest == nil {
		return decimal.Zero, false
	}
	return h.Latest.Value, true
}

// LastUpdated returns the date of the latest valuation, or the zero time
func (h Holding) LastUpdated() time.Time {
	if h.Latest == nil {
		return time.Time{}
	}
	return h.Latest.Date
}
