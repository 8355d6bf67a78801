package service

import (
	"context"
	"fmt"

	"clientmap-api/internal/metrics"
	"clientmap-api/internal/models"
	"clientmap-api/internal/search"
)

// ClientRepository interface for dependency injection
type ClientRepository interface {
	ListAll(ctx context.Context) ([]models.Client, error)
	SearchAll(ctx context.Context, term string) ([]models.Client, error)
	SearchRanked(ctx context.Context, term string) ([]models.Client, error)
	Stats(ctx context.Context) (*models.Stats, error)
}

// ClientService contains the read side of the client records
type ClientService struct {
	repo ClientRepository
}

// NewClientService creates a new client service
func NewClientService(repo ClientRepository) *ClientService {
	return &ClientService{repo: repo}
}

// List returns every stored record ordered by name
func (s *ClientService) List(ctx context.Context) ([]models.Client, error) {
	clients, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list clients: %w", err)
	}
	return clients, nil
}

// Search matches term against name, legal name and identifier of mappable records
func (s *ClientService) Search(ctx context.Context, term string) ([]models.Client, error) {
	term, err := search.NormalizeTerm(term)
	if err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}

	clients, err := s.repo.SearchAll(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("service: failed to search clients: %w", err)
	}

	metrics.ObserveSearch(metrics.SearchAll, len(clients))
	return clients, nil
}

// SearchRanked matches term against name and legal name and returns the hits by relevance
func (s *ClientService) SearchRanked(ctx context.Context, term string) ([]models.Client, error) {
	term, err := search.NormalizeTerm(term)
	if err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}

	clients, err := s.repo.SearchRanked(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("service: failed to rank clients: %w", err)
	}

	metrics.ObserveSearch(metrics.SearchRanked, len(clients))
	return clients, nil
}

// Stats returns the record counters
func (s *ClientService) Stats(ctx context.Context) (*models.Stats, error) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to read stats: %w", err)
	}
	return stats, nil
}
