package widget

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/networth-backend/internal/analytics"
	"github.com/simaogato/networth-backend/internal/domain"
	"github.com/simaogato/networth-backend/internal/domain/mocks"
	"github.com/simaogato/networth-backend/internal/format"
	"github.com/simaogato/networth-backend/internal/usecase/dashboard"
)

var fixedNow = time.Date(2026, time.October, 15, 12, 0, 0, 0, time.UTC)

// MockNetWorthSource is a mock implementation of NetWorthSource for testing
type MockNetWorthSource struct {
	mock.Mock
}

func (m *MockNetWorthSource) GetNetWorth(ctx context.Context) (*dashboard.NetWorthResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dashboard.NetWorthResult), args.Error(1)
}

func (m *MockNetWorthSource) NetWorthHistory(ctx context.Context) ([]analytics.Point, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]analytics.Point), args.Error(1)
}

func newTestPublisher(anonymized bool) (*Publisher, *MockNetWorthSource, *mocks.WidgetSnapshotRepository) {
	source := new(MockNetWorthSource)
	repo := new(mocks.WidgetSnapshotRepository)

	p := NewPublisher(source, repo, format.New("USD", anonymized), analytics.ISOCalendar(time.UTC))
	p.Now = func() time.Time { return fixedNow }

	return p, source, repo
}

func history() []analytics.Point {
	return []analytics.Point{
		analytics.NewPoint(time.Date(2026, time.September, 20, 0, 0, 0, 0, time.UTC), decimal.NewFromInt(1000)),
		analytics.NewPoint(time.Date(2026, time.October, 5, 0, 0, 0, 0, time.UTC), decimal.NewFromInt(1200)),
	}
}

func TestRefresh(t *testing.T) {
	ctx := context.Background()
	p, source, repo := newTestPublisher(false)

	source.On("GetNetWorth", ctx).Return(&dashboard.NetWorthResult{Total: decimal.NewFromInt(1200)}, nil)
	source.On("NetWorthHistory", ctx).Return(history(), nil)
	repo.On("Save", ctx, mock.AnythingOfType("*domain.WidgetSnapshot")).Return(nil)

	snapshot, err := p.Refresh(ctx)

	require.NoError(t, err)
	assert.True(t, snapshot.CurrentValue.Equal(decimal.NewFromInt(1200)))
	assert.Len(t, snapshot.History, 2)
	assert.Equal(t, "USD", snapshot.CurrencyCode)
	assert.False(t, snapshot.Anonymized)
	assert.Equal(t, fixedNow, snapshot.LastUpdated)

	source.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestRefresh_SourceError(t *testing.T) {
	ctx := context.Background()
	p, source, repo := newTestPublisher(false)

	source.On("GetNetWorth", ctx).Return(nil, errors.New("database down"))

	_, err := p.Refresh(ctx)

	assert.ErrorContains(t, err, "failed to compute net worth")
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestHeadline(t *testing.T) {
	p, _, _ := newTestPublisher(false)
	snapshot := &domain.WidgetSnapshot{
		CurrentValue: decimal.NewFromInt(1200),
		History:      history(),
		CurrencyCode: "USD",
	}

	h := p.Headline(snapshot)

	assert.Equal(t, "$1,200.00", h.Value)
	assert.Equal(t, "Up $200.00 all time", h.Change)
}

func TestHeadline_Anonymized(t *testing.T) {
	p, _, _ := newTestPublisher(true)
	snapshot := &domain.WidgetSnapshot{CurrentValue: decimal.NewFromInt(1200), CurrencyCode: "USD", Anonymized: true}

	h := p.Headline(snapshot)

	assert.Equal(t, "****.**", h.Value)
	assert.Empty(t, h.Change, "no history, no change")
}
