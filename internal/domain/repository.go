package domain

import (
	"context"

	"github.com/google/uuid"
)

// AssetRepository defines the interface for asset persistence operations
type AssetRepository interface {
	// GetByID retrieves an asset by its ID
	GetByID(ctx context.Context, id uuid.UUID) (*Asset, error)

	// Create creates a new asset
	Create(ctx context.Context, asset *Asset) error

	// CreateWithValue creates a new asset and its first snapshot atomically:
	// either both are stored or neither is
	CreateWithValue(ctx context.Context, asset *Asset, value *AssetValue) error

	// Update persists the name of an existing asset
	Update(ctx context.Context, asset *Asset) error

	// Delete removes an asset together with all its values
	Delete(ctx context.Context, id uuid.UUID) error

	// List retrieves all assets ordered by creation date
	List(ctx context.Context) ([]*Asset, error)
}

// AssetValueRepository defines the interface for valuation snapshot persistence operations
type AssetValueRepository interface {
	// Add creates a new snapshot
	Add(ctx context.Context, value *AssetValue) error

	// Update changes the value and date of an existing snapshot
	Update(ctx context.Context, value *AssetValue) error

	// Delete removes a snapshot
	Delete(ctx context.Context, id uuid.UUID) error

	// GetByID retrieves a snapshot by its ID
	GetByID(ctx context.Context, id uuid.UUID) (*AssetValue, error)

	// GetLatest retrieves the most recent snapshot of an asset
	// Returns an error wrapping ErrNotFound when the asset has no snapshots
	GetLatest(ctx context.Context, assetID uuid.UUID) (*AssetValue, error)

	// ListByAsset retrieves all snapshots of an asset in chronological order
	ListByAsset(ctx context.Context, assetID uuid.UUID) ([]*AssetValue, error)
}

// WidgetSnapshotRepository defines the interface for widget snapshot persistence
type WidgetSnapshotRepository interface {
	// Save replaces the stored snapshot
	Save(ctx context.Context, snapshot *WidgetSnapshot) error

	// Load retrieves the stored snapshot
	// Returns an error wrapping ErrNotFound when nothing was published yet
	Load(ctx context.Context) (*WidgetSnapshot, error)
}
