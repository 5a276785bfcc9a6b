// Package mocks provides testify mocks of the domain repositories.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/simaogato/networth-backend/internal/domain"
)

// AssetRepository is a mock implementation of domain.AssetRepository
type AssetRepository struct {
	mock.Mock
}

func (m *AssetRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Asset, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Asset), args.Error(1)
}

func (m *AssetRepository) Create(ctx context.Context, asset *domain.Asset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}

func (m *AssetRepository) CreateWithValue(ctx context.Context, asset *domain.Asset, value *domain.AssetValue) error {
	args := m.Called(ctx, asset, value)
	return args.Error(0)
}

func (m *AssetRepository) Update(ctx context.Context, asset *domain.Asset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}

func (m *AssetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *AssetRepository) List(ctx context.Context) ([]*domain.Asset, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Asset), args.Error(1)
}

// AssetValueRepository is a mock implementation of domain.AssetValueRepository
type AssetValueRepository struct {
	mock.Mock
}

func (m *AssetValueRepository) Add(ctx context.Context, value *domain.AssetValue) error {
	args := m.Called(ctx, value)
	return args.Error(0)
}

func (m *AssetValueRepository) Update(ctx context.Context, value *domain.AssetValue) error {
	args := m.Called(ctx, value)
	return args.Error(0)
}

func (m *AssetValueRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *AssetValueRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.AssetValue, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AssetValue), args.Error(1)
}

func (m *AssetValueRepository) GetLatest(ctx context.Context, assetID uuid.UUID) (*domain.AssetValue, error) {
	args := m.Called(ctx, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AssetValue), args.Error(1)
}

func (m *AssetValueRepository) ListByAsset(ctx context.Context, assetID uuid.UUID) ([]*domain.AssetValue, error) {
	args := m.Called(ctx, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.AssetValue), args.Error(1)
}

// WidgetSnapshotRepository is a mock implementation of domain.WidgetSnapshotRepository
type WidgetSnapshotRepository struct {
	mock.Mock
}

func (m *WidgetSnapshotRepository) Save(ctx context.Context, snapshot *domain.WidgetSnapshot) error {
	args := m.Called(ctx, snapshot)
	return args.Error(0)
}

func (m *WidgetSnapshotRepository) Load(ctx context.Context) (*domain.WidgetSnapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WidgetSnapshot), args.Error(1)
}

// WidgetRefresher is a mock implementation of domain.WidgetRefresher
type WidgetRefresher struct {
	mock.Mock
}

func (m *WidgetRefresher) Refresh(ctx context.Context) (*domain.WidgetSnapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WidgetSnapshot), args.Error(1)
}

var (
	_ domain.AssetRepository          = (*AssetRepository)(nil)
	_ domain.AssetValueRepository     = (*AssetValueRepository)(nil)
	_ domain.WidgetSnapshotRepository = (*WidgetSnapshotRepository)(nil)
	_ domain.WidgetRefresher          = (*WidgetRefresher)(nil)
)
