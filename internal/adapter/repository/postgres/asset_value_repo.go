package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/simaogato/networth-backend/internal/domain"
)

// assetValueRepository implements domain.AssetValueRepository
type assetValueRepository struct {
	db *DB
}

// NewAssetValueRepository creates a new asset value repository
func NewAssetValueRepository(db *DB) domain.AssetValueRepository {
	return &assetValueRepository{db: db}
}

// rowScanner is satisfied by *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func scanAssetValue(row rowScanner) (*domain.AssetValue, error) {
	var entry domain.AssetValue
	var valueStr string

	if err := row.Scan(&entry.ID, &entry.AssetID, &entry.Date, &valueStr); err != nil {
		return nil, err
	}

	// Parse value (NUMERIC)
	value, err := decimal.NewFromString(valueStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse value: %w", err)
	}
	entry.Value = value

	return &entry, nil
}

// Add creates a new snapshot
func (r *assetValueRepository) Add(ctx context.Context, entry *domain.AssetValue) error {
	query := `
		INSERT INTO asset_values (id, asset_id, date, value)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.ExecContext(ctx, query,
		entry.ID,
		entry.AssetID,
		entry.Date,
		entry.Value.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert asset value: %w", err)
	}

	return nil
}

// Update changes the value and date of an existing snapshot
func (r *assetValueRepository) Update(ctx context.Context, entry *domain.AssetValue) error {
	query := `
		UPDATE asset_values
		SET date = $2, value = $3
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, entry.ID, entry.Date, entry.Value.String())
	if err != nil {
		return fmt.Errorf("failed to update asset value: %w", err)
	}

	return requireAffected(result, "asset value", entry.ID)
}

// Delete removes a snapshot
func (r *assetValueRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM asset_values WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete asset value: %w", err)
	}

	return requireAffected(result, "asset value", id)
}

// GetByID retrieves a snapshot by its ID
func (r *assetValueRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.AssetValue, error) {
	query := `
		SELECT id, asset_id, date, value
		FROM asset_values
		WHERE id = $1
	`

	entry, err := scanAssetValue(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("asset value %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get asset value by ID: %w", err)
	}

	return entry, nil
}

// GetLatest retrieves the most recent snapshot of an asset
func (r *assetValueRepository) GetLatest(ctx context.Context, assetID uuid.UUID) (*domain.AssetValue, error) {
	query := `
		SELECT id, asset_id, date, value
		FROM asset_values
		WHERE asset_id = $1
		ORDER BY date DESC
		LIMIT 1
	`

	entry, err := scanAssetValue(r.db.QueryRowContext(ctx, query, assetID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("no values recorded for asset %s: %w", assetID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get latest asset value: %w", err)
	}

	return entry, nil
}

// ListByAsset retrieves all snapshots of an asset in chronological order
func (r *assetValueRepository) ListByAsset(ctx context.Context, assetID uuid.UUID) ([]*domain.AssetValue, error) {
	query := `
		SELECT id, asset_id, date, value
		FROM asset_values
		WHERE asset_id = $1
		ORDER BY date ASC
	`

	rows, err := r.db.QueryContext(ctx, query, assetID)
	if err != nil {
		return nil, fmt.Errorf("failed to list asset values: %w", err)
	}
	defer rows.Close()

	var entries []*domain.AssetValue
	for rows.Next() {
		entry, err := scanAssetValue(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan asset value: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating asset values: %w", err)
	}

	return entries, nil
}
