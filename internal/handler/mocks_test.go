package handler

import (
	"context"
	"io"
	"time"

	"clientmap-api/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockClientService is a mock implementation of the ClientService interface
type MockClientService struct {
	mock.Mock
}

func (m *MockClientService) List(ctx context.Context) ([]models.Client, error) {
	args := m.Called(ctx)
	return clientsArg(args.Get(0)), args.Error(1)
}

func (m *MockClientService) Search(ctx context.Context, term string) ([]models.Client, error) {
	args := m.Called(ctx, term)
	return clientsArg(args.Get(0)), args.Error(1)
}

func (m *MockClientService) SearchRanked(ctx context.Context, term string) ([]models.Client, error) {
	args := m.Called(ctx, term)
	return clientsArg(args.Get(0)), args.Error(1)
}

func (m *MockClientService) Stats(ctx context.Context) (*models.Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Stats), args.Error(1)
}

// MockImportService is a mock implementation of the ImportService interface
type MockImportService struct {
	mock.Mock
}

func (m *MockImportService) Import(ctx context.Context, filename string, r io.Reader) (*models.ImportResult, error) {
	body, _ := io.ReadAll(r)
	args := m.Called(ctx, filename, string(body))
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ImportResult), args.Error(1)
}

func (m *MockImportService) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockMapService is a mock implementation of the MapService interface
type MockMapService struct {
	mock.Mock
}

func (m *MockMapService) Map(ctx context.Context, q models.MapQuery) (*models.MapResult, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MapResult), args.Error(1)
}

// MockAuthenticator is a mock implementation of the Authenticator interface
type MockAuthenticator struct {
	mock.Mock
}

func (m *MockAuthenticator) Login(password string) (string, time.Time, error) {
	args := m.Called(password)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func clientsArg(v any) []models.Client {
	if v == nil {
		return nil
	}
	return v.([]models.Client)
}
