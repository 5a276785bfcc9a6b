package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/simaogato/networth-backend/internal/analytics"
	"github.com/simaogato/networth-backend/internal/domain"
)

// widgetSnapshotRepository implements domain.WidgetSnapshotRepository
type widgetSnapshotRepository struct {
	db *DB
}

// NewWidgetSnapshotRepository creates a new widget snapshot repository
func NewWidgetSnapshotRepository(db *DB) domain.WidgetSnapshotRepository {
	return &widgetSnapshotRepository{db: db}
}

// historyPoint is the JSONB representation of a chart point
type historyPoint struct {
	Date  time.Time       `json:"date"`
	Value decimal.Decimal `json:"value"`
}

// Save replaces the stored snapshot
func (r *widgetSnapshotRepository) Save(ctx context.Context, snapshot *domain.WidgetSnapshot) error {
	history := make([]historyPoint, 0, len(snapshot.History))
	for _, p := range snapshot.History {
		history = append(history, historyPoint{Date: p.Time, Value: p.Amount})
	}

	historyJSON, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("failed to encode widget history: %w", err)
	}

	query := `
		INSERT INTO widget_snapshots (id, current_value, history, currency_code, anonymized, last_updated)
		VALUES (1, $1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			current_value = EXCLUDED.current_value,
			history = EXCLUDED.history,
			currency_code = EXCLUDED.currency_code,
			anonymized = EXCLUDED.anonymized,
			last_updated = EXCLUDED.last_updated
	`

	_, err = r.db.ExecContext(ctx, query,
		snapshot.CurrentValue.String(),
		string(historyJSON),
		snapshot.CurrencyCode,
		snapshot.Anonymized,
		snapshot.LastUpdated,
	)
	if err != nil {
		return fmt.Errorf("failed to save widget snapshot: %w", err)
	}

	return nil
}

// Load retrieves the stored snapshot
func (r *widgetSnapshotRepository) Load(ctx context.Context) (*domain.WidgetSnapshot, error) {
	query := `
		SELECT current_value, history, currency_code, anonymized, last_updated
		FROM widget_snapshots
		WHERE id = 1
	`

	var snapshot domain.WidgetSnapshot
	var valueStr string
	var historyJSON []byte

	err := r.db.QueryRowContext(ctx, query).Scan(
		&valueStr,
		&historyJSON,
		&snapshot.CurrencyCode,
		&snapshot.Anonymized,
		&snapshot.LastUpdated,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("widget snapshot: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load widget snapshot: %w", err)
	}

	value, err := decimal.NewFromString(valueStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse current_value: %w", err)
	}
	snapshot.CurrentValue = value

	var history []historyPoint
	if err := json.Unmarshal(historyJSON, &history); err != nil {
		return nil, fmt.Errorf("failed to decode widget history: %w", err)
	}
	snapshot.History = make([]analytics.Point, 0, len(history))
	for _, p := range history {
		snapshot.History = append(snapshot.History, analytics.NewPoint(p.Date, p.Value))
	}

	return &snapshot, nil
}
