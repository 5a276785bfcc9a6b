package widget

import (
	"context"
	"fmt"
	"time"

	"github.com/simaogato/networth-backend/internal/analytics"
	"github.com/simaogato/networth-backend/internal/domain"
	"github.com/simaogato/networth-backend/internal/format"
	"github.com/simaogato/networth-backend/internal/logger"
	"github.com/simaogato/networth-backend/internal/usecase/dashboard"
)

// NetWorthSource provides the figures a widget snapshot is built from
type NetWorthSource interface {
	GetNetWorth(ctx context.Context) (*dashboard.NetWorthResult, error)
	NetWorthHistory(ctx context.Context) ([]analytics.Point, error)
}

// Headline is the display text of a snapshot
type Headline struct {
	Value  string // e.g. "$1,234.00"
	Change string // e.g. "Up $200.00 all time", empty without history
}

// Publisher builds the net-worth widget snapshot and stores it for widgets to read
type Publisher struct {
	Source    NetWorthSource
	Repo      domain.WidgetSnapshotRepository
	Formatter format.Formatter
	Calendar  analytics.CalendarRules

	// Period is the window the snapshot history is aggregated over
	Period analytics.Period

	Now func() time.Time
}

// NewPublisher creates a Publisher aggregating the history over all time
func NewPublisher(
	source NetWorthSource,
	repo domain.WidgetSnapshotRepository,
	formatter format.Formatter,
	calendar analytics.CalendarRules,
) *Publisher {
	return &Publisher{
		Source:    source,
		Repo:      repo,
		Formatter: formatter,
		Calendar:  calendar,
		Period:    analytics.AllTime,
		Now:       time.Now,
	}
}

// Refresh recomputes the snapshot from the current data and stores it
func (p *Publisher) Refresh(ctx context.Context) (*domain.WidgetSnapshot, error) {
	netWorth, err := p.Source.GetNetWorth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute net worth: %w", err)
	}

	history, err := p.Source.NetWorthHistory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute net worth history: %w", err)
	}

	now := p.Now()
	snapshot := &domain.WidgetSnapshot{
		CurrentValue: netWorth.Total,
		History:      analytics.Aggregate(history, p.Period, now, p.Calendar),
		CurrencyCode: p.Formatter.CurrencyCode,
		Anonymized:   p.Formatter.Anonymized,
		LastUpdated:  now,
	}

	if err := p.Repo.Save(ctx, snapshot); err != nil {
		return nil, fmt.Errorf("failed to save widget snapshot: %w", err)
	}

	log := logger.FromContext(ctx)
	log.Debug().
		Str("total", snapshot.CurrentValue.String()).
		Int("points", len(snapshot.History)).
		Msg("widget snapshot published")

	return snapshot, nil
}

// Load returns the last published snapshot
func (p *Publisher) Load(ctx context.Context) (*domain.WidgetSnapshot, error) {
	return p.Repo.Load(ctx)
}

// Headline renders a snapshot with the currency and anonymization it was published with
func (p *Publisher) Headline(snapshot *domain.WidgetSnapshot) Headline {
	f := format.New(snapshot.CurrencyCode, snapshot.Anonymized)

	h := Headline{Value: f.Format(snapshot.CurrentValue)}
	if change, ok := analytics.SummarizeChange(snapshot.History); ok {
		h.Change = analytics.DescribeChange(change.Absolute, p.Period, f.Format)
	}
	return h
}
