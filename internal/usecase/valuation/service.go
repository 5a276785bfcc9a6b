package valuation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/simaogato/networth-backend/internal/domain"
	"github.com/simaogato/networth-backend/internal/logger"
)

// RecordValueInput represents a new valuation of an asset
type RecordValueInput struct {
	AssetID uuid.UUID
	Value   decimal.Decimal
	Date    time.Time // defaults to now
}

// UpdateValueInput represents a correction of an existing valuation
type UpdateValueInput struct {
	ID    uuid.UUID
	Value decimal.Decimal
	Date  time.Time // zero keeps the recorded date
}

// ValuationService handles the value history of assets
type ValuationService struct {
	AssetRepo domain.AssetRepository
	ValueRepo domain.AssetValueRepository

	// Widget is refreshed after every change; nil disables publishing
	Widget domain.WidgetRefresher

	Now func() time.Time
}

// NewValuationService creates a new ValuationService instance
func NewValuationService(
	assetRepo domain.AssetRepository,
	valueRepo domain.AssetValueRepository,
	widget domain.WidgetRefresher,
) *ValuationService {
	return &ValuationService{
		AssetRepo: assetRepo,
		ValueRepo: valueRepo,
		Widget:    widget,
		Now:       time.Now,
	}
}

// RecordValue records a new valuation snapshot for an asset
// Logic: Insert a new row into asset_values; the latest snapshot becomes the current value
func (s *ValuationService) RecordValue(ctx context.Context, input RecordValueInput) (*domain.AssetValue, error) {
	// Verify asset exists
	if _, err := s.AssetRepo.GetByID(ctx, input.AssetID); err != nil {
		return nil, err
	}

	date := input.Date
	if date.IsZero() {
		date = s.Now()
	}

	value := &domain.AssetValue{
		ID:      uuid.New(),
		AssetID: input.AssetID,
		Date:    date,
		Value:   input.Value,
	}
	if err := value.Validate(); err != nil {
		return nil, err
	}

	if err := s.ValueRepo.Add(ctx, value); err != nil {
		return nil, fmt.Errorf("failed to record value: %w", err)
	}

	s.refreshWidget(ctx)
	return value, nil
}

// UpdateValue corrects the amount and optionally the date of a recorded valuation
func (s *ValuationService) UpdateValue(ctx context.Context, input UpdateValueInput) (*domain.AssetValue, error) {
	value, err := s.ValueRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	value.Value = input.Value
	if !input.Date.IsZero() {
		value.Date = input.Date
	}
	if err := value.Validate(); err != nil {
		return nil, err
	}

	if err := s.ValueRepo.Update(ctx, value); err != nil {
		return nil, fmt.Errorf("failed to update value: %w", err)
	}

	s.refreshWidget(ctx)
	return value, nil
}

// DeleteValue removes a recorded valuation
func (s *ValuationService) DeleteValue(ctx context.Context, id uuid.UUID) error {
	if _, err := s.ValueRepo.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.ValueRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete value: %w", err)
	}

	s.refreshWidget(ctx)
	return nil
}

// CurrentValue returns the latest recorded value of an asset.
// An asset without history has no current value, which is not an error.
func (s *ValuationService) CurrentValue(ctx context.Context, assetID uuid.UUID) (decimal.Decimal, bool, error) {
	latest, err := s.ValueRepo.GetLatest(ctx, assetID)
	if errors.Is(err, domain.ErrNotFound) {
		return decimal.Zero, false, nil
	}
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("failed to get current value: %w", err)
	}
	return latest.Value, true, nil
}

// History returns every valuation of an asset in chronological order
func (s *ValuationService) History(ctx context.Context, assetID uuid.UUID) ([]*domain.AssetValue, error) {
	if _, err := s.AssetRepo.GetByID(ctx, assetID); err != nil {
		return nil, err
	}

	values, err := s.ValueRepo.ListByAsset(ctx, assetID)
	if err != nil {
		return nil, fmt.Errorf("failed to list values: %w", err)
	}
	return values, nil
}

func (s *ValuationService) refreshWidget(ctx context.Context) {
	if s.Widget == nil {
		return
	}
	if _, err := s.Widget.Refresh(ctx); err != nil {
		log := logger.FromContext(ctx)
		log.Warn().Err(err).Msg("widget refresh failed")
	}
}
