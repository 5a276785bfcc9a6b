package asset

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/simaogato/networth-backend/internal/domain"
	"github.com/simaogato/networth-backend/internal/logger"
)

// CreateAssetInput represents the input for creating an asset
type CreateAssetInput struct {
	Name         string
	InitialValue *decimal.Decimal // optional first valuation
	Date         time.Time        // date of the initial value, defaults to now
}

// AssetService handles asset lifecycle operations
type AssetService struct {
	AssetRepo domain.AssetRepository
	ValueRepo domain.AssetValueRepository

	// Widget is refreshed after every change; nil disables publishing
	Widget domain.WidgetRefresher

	Now func() time.Time
}

// NewAssetService creates a new AssetService instance
func NewAssetService(
	assetRepo domain.AssetRepository,
	valueRepo domain.AssetValueRepository,
	widget domain.WidgetRefresher,
) *AssetService {
	return &AssetService{
		AssetRepo: assetRepo,
		ValueRepo: valueRepo,
		Widget:    widget,
		Now:       time.Now,
	}
}

// CreateAsset creates an asset, optionally with a first valuation
// Logic:
//  1. Validate the asset and the initial value before writing anything
//  2. Create the asset, together with the initial value in one transaction if one was given
func (s *AssetService) CreateAsset(ctx context.Context, input CreateAssetInput) (*domain.Holding, error) {
	now := s.Now()
	asset := &domain.Asset{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(input.Name),
		CreatedDate: now,
	}
	if err := asset.Validate(); err != nil {
		return nil, err
	}

	var initial *domain.AssetValue
	if input.InitialValue != nil {
		date := input.Date
		if date.IsZero() {
			date = now
		}
		initial = &domain.AssetValue{
			ID:      uuid.New(),
			AssetID: asset.ID,
			Date:    date,
			Value:   *input.InitialValue,
		}
		if err := initial.Validate(); err != nil {
			return nil, err
		}
	}

	if initial != nil {
		// The asset must not exist without the value it was created with
		if err := s.AssetRepo.CreateWithValue(ctx, asset, initial); err != nil {
			return nil, fmt.Errorf("failed to create asset with initial value: %w", err)
		}
	} else if err := s.AssetRepo.Create(ctx, asset); err != nil {
		return nil, fmt.Errorf("failed to create asset: %w", err)
	}

	s.refreshWidget(ctx)

	return &domain.Holding{Asset: asset, Latest: initial}, nil
}

// RenameAsset changes the name of an asset
func (s *AssetService) RenameAsset(ctx context.Context, id uuid.UUID, name string) (*domain.Asset, error) {
	asset, err := s.AssetRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	asset.Name = strings.TrimSpace(name)
	if err := asset.Validate(); err != nil {
		return nil, err
	}

	if err := s.AssetRepo.Update(ctx, asset); err != nil {
		return nil, fmt.Errorf("failed to rename asset: %w", err)
	}

	return asset, nil
}

// DeleteAsset removes an asset and its whole value history
func (s *AssetService) DeleteAsset(ctx context.Context, id uuid.UUID) error {
	if _, err := s.AssetRepo.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.AssetRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}

	s.refreshWidget(ctx)
	return nil
}

// GetAsset returns an asset with its current value
func (s *AssetService) GetAsset(ctx context.Context, id uuid.UUID) (*domain.Holding, error) {
	asset, err := s.AssetRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	latest, err := s.latest(ctx, id)
	if err != nil {
		return nil, err
	}

	return &domain.Holding{Asset: asset, Latest: latest}, nil
}

// ListAssets returns every asset with its current value
func (s *AssetService) ListAssets(ctx context.Context) ([]domain.Holding, error) {
	assets, err := s.AssetRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}

	holdings := make([]domain.Holding, 0, len(assets))
	for _, asset := range assets {
		latest, err := s.latest(ctx, asset.ID)
		if err != nil {
			return nil, err
		}
		holdings = append(holdings, domain.Holding{Asset: asset, Latest: latest})
	}

	return holdings, nil
}

// latest returns the most recent value of an asset, or nil when it has none
func (s *AssetService) latest(ctx context.Context, assetID uuid.UUID) (*domain.AssetValue, error) {
	value, err := s.ValueRepo.GetLatest(ctx, assetID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get current value of asset %s: %w", assetID, err)
	}
	return value, nil
}

// refreshWidget republishes the widget snapshot; failures only degrade the widget
func (s *AssetService) refreshWidget(ctx context.Context) {
	if s.Widget == nil {
		return
	}
	if _, err := s.Widget.Refresh(ctx); err != nil {
		log := logger.FromContext(ctx)
		log.Warn().Err(err).Msg("widget refresh failed")
	}
}
