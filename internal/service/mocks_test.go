package service

import (
	"context"

	"clientmap-api/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockRepository is a mock implementation of the repository interfaces
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ReplaceAll(ctx context.Context, records []models.Client) (int, error) {
	args := m.Called(ctx, records)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) ClearAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRepository) ListAll(ctx context.Context) ([]models.Client, error) {
	args := m.Called(ctx)
	return clients(args.Get(0)), args.Error(1)
}

func (m *MockRepository) ListMappable(ctx context.Context) ([]models.Client, error) {
	args := m.Called(ctx)
	return clients(args.Get(0)), args.Error(1)
}

func (m *MockRepository) SearchAll(ctx context.Context, term string) ([]models.Client, error) {
	args := m.Called(ctx, term)
	return clients(args.Get(0)), args.Error(1)
}

func (m *MockRepository) SearchRanked(ctx context.Context, term string) ([]models.Client, error) {
	args := m.Called(ctx, term)
	return clients(args.Get(0)), args.Error(1)
}

func (m *MockRepository) Stats(ctx context.Context) (*models.Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Stats), args.Error(1)
}

func clients(v any) []models.Client {
	if v == nil {
		return nil
	}
	return v.([]models.Client)
}

func coord(v float64) *float64 { return &v }

func client(id int64, name string, lon, lat float64, voided bool) models.Client {
	return models.Client{
		ID:         id,
		Name:       name,
		CoordX:     coord(lon),
		CoordY:     coord(lat),
		Identifier: "ID" + name,
		Voided:     voided,
	}
}
