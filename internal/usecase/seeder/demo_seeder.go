package seeder

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/simaogato/networth-backend/internal/domain"
)

// demoValue is a valuation recorded monthsAgo months before seeding
type demoValue struct {
	monthsAgo int
	value     int64
}

// DemoAsset defines a demo asset and its value history, oldest first
type DemoAsset struct {
	Name   string
	Values []demoValue
}

// DemoAssets is the demo portfolio; names get the domain.DemoPrefix when seeded
var DemoAssets = []DemoAsset{
	{Name: "Stock Portfolio", Values: []demoValue{
		{24, 45000}, {20, 51000}, {18, 52000}, {16, 49000}, {15, 48000}, {13, 53000}, {12, 55000}, {10, 60000},
		{9, 62000}, {7, 60000}, {6, 58000}, {4, 63000}, {3, 67000}, {2, 69000}, {1, 71000}, {0, 72500},
	}},
	{Name: "Savings Account", Values: []demoValue{
		{12, 10000}, {10, 11200}, {9, 12000}, {7, 13200}, {6, 15000}, {4, 16500}, {3, 18500}, {1, 20500}, {0, 22000},
	}},
	{Name: "Real Estate", Values: []demoValue{
		{36, 450000}, {30, 455000}, {24, 465000}, {21, 470000}, {18, 480000}, {15, 485000}, {12, 495000},
		{9, 500000}, {6, 510000}, {3, 518000}, {0, 525000},
	}},
	{Name: "Retirement Account", Values: []demoValue{
		{24, 85000}, {20, 88000}, {18, 92000}, {15, 95000}, {13, 98000}, {12, 105000}, {9, 112000},
		{6, 118000}, {4, 122000}, {2, 128000}, {0, 132000},
	}},
	{Name: "Investment Portfolio", Values: []demoValue{
		{15, 25000}, {13, 27000}, {12, 28000}, {10, 29500}, {9, 31000}, {7, 28500}, {6, 29000},
		{4, 32000}, {3, 34000}, {1, 35500}, {0, 36500},
	}},
	{Name: "Dogecoin", Values: []demoValue{
		{12, 850}, {11, 1200}, {10, 980}, {9, 1450}, {8, 1100}, {7, 1650}, {6, 1350},
		{5, 1800}, {4, 1520}, {3, 1950}, {2, 1720}, {1, 2100}, {0, 1850},
	}},
	{Name: "Rolex", Values: []demoValue{
		{24, 12500}, {20, 12800}, {18, 13200}, {15, 13000}, {12, 13800}, {9, 14200}, {7, 13900},
		{6, 14500}, {4, 14900}, {2, 15200}, {0, 15500},
	}},
	{Name: "Copper", Values: []demoValue{
		{12, 8200}, {10, 8500}, {9, 7800}, {8, 9200}, {7, 8800}, {6, 9500}, {5, 8900},
		{4, 10200}, {3, 9600}, {2, 10500}, {1, 9800}, {0, 10800},
	}},
}

// DemoSeeder fills the database with a demo portfolio
type DemoSeeder struct {
	assetRepo domain.AssetRepository
	valueRepo domain.AssetValueRepository
	now       func() time.Time
}

// NewDemoSeeder creates a new DemoSeeder instance
func NewDemoSeeder(assetRepo domain.AssetRepository, valueRepo domain.AssetValueRepository) *DemoSeeder {
	return &DemoSeeder{
		assetRepo: assetRepo,
		valueRepo: valueRepo,
		now:       time.Now,
	}
}

// Seed replaces any existing demo assets with a fresh demo portfolio dated relative to now.
// Assets the user created are never touched.
func (s *DemoSeeder) Seed(ctx context.Context) error {
	if _, err := s.ClearDemo(ctx); err != nil {
		return err
	}

	today := s.now()
	for _, demo := range DemoAssets {
		created := today.AddDate(0, -demo.Values[0].monthsAgo, 0)
		asset := &domain.Asset{
			ID:          uuid.New(),
			Name:        domain.DemoPrefix + demo.Name,
			CreatedDate: created,
		}

		// Validate before creating
		if err := asset.Validate(); err != nil {
			return err
		}

		if err := s.assetRepo.Create(ctx, asset); err != nil {
			return fmt.Errorf("failed to create demo asset %q: %w", asset.Name, err)
		}

		for _, v := range demo.Values {
			value := &domain.AssetValue{
				ID:      uuid.New(),
				AssetID: asset.ID,
				Date:    today.AddDate(0, -v.monthsAgo, 0),
				Value:   decimal.NewFromInt(v.value),
			}
			if err := s.valueRepo.Add(ctx, value); err != nil {
				return fmt.Errorf("failed to record demo value for %q: %w", asset.Name, err)
			}
		}
	}

	return nil
}

// ClearDemo deletes every demo asset and returns how many were removed
func (s *DemoSeeder) ClearDemo(ctx context.Context) (int, error) {
	assets, err := s.assetRepo.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list assets: %w", err)
	}

	removed := 0
	for _, asset := range assets {
		if !asset.IsDemo() {
			continue
		}
		if err := s.assetRepo.Delete(ctx, asset.ID); err != nil {
			return removed, fmt.Errorf("failed to delete demo asset %q: %w", asset.Name, err)
		}
		removed++
	}

	return removed, nil
}
