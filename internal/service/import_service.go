package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"clientmap-api/internal/ingest"
	"clientmap-api/internal/metrics"
	"clientmap-api/internal/models"

	"github.com/rs/zerolog/log"
)

// ImportRepository interface for dependency injection
type ImportRepository interface {
	ReplaceAll(ctx context.Context, records []models.Client) (int, error)
	ClearAll(ctx context.Context) error
}

// ImportService replaces the stored dataset with the contents of an uploaded document
type ImportService struct {
	repo ImportRepository
}

// NewImportService creates a new import service
func NewImportService(repo ImportRepository) *ImportService {
	return &ImportService{repo: repo}
}

// Import parses the document and fully replaces the stored records with it.
// An unreadable document leaves the store untouched.
func (s *ImportService) Import(ctx context.Context, filename string, r io.Reader) (*models.ImportResult, error) {
	batch, err := ingest.Parse(filename, r)
	if err != nil {
		metrics.ImportsTotal.WithLabelValues(metrics.ResultParseError).Inc()
		return nil, fmt.Errorf("service: failed to parse upload: %w", err)
	}

	return s.store(ctx, batch)
}

// ImportBatch fully replaces the stored records with an already normalized batch.
func (s *ImportService) ImportBatch(ctx context.Context, batch *ingest.Batch) (*models.ImportResult, error) {
	if batch == nil {
		return nil, errors.New("service: nil batch")
	}
	return s.store(ctx, batch)
}

func (s *ImportService) store(ctx context.Context, batch *ingest.Batch) (*models.ImportResult, error) {
	inserted, err := s.repo.ReplaceAll(ctx, batch.Records)
	if err != nil {
		metrics.ImportsTotal.WithLabelValues(metrics.ResultStoreError).Inc()
		return nil, fmt.Errorf("service: failed to replace clients: %w", err)
	}

	report := batch.Report
	metrics.ImportsTotal.WithLabelValues(metrics.ResultSuccess).Inc()
	metrics.ImportRowsTotal.WithLabelValues(models.StatusActive).Add(float64(report.Active))
	metrics.ImportRowsTotal.WithLabelValues(models.StatusVoided).Add(float64(report.Voided))
	metrics.UnrecognizedVoidedTotal.Add(float64(len(report.UnrecognizedVoided)))
	metrics.ImportWarningsTotal.Add(float64(len(report.Warnings)))

	log.Info().
		Str("file", report.FileName).
		Int("inserted", inserted).
		Int("voided", report.Voided).
		Int("warnings", len(report.Warnings)).
		Msg("clients replaced")

	return &models.ImportResult{Inserted: inserted, Report: report}, nil
}

// Clear deletes every stored record.
func (s *ImportService) Clear(ctx context.Context) error {
	if err := s.repo.ClearAll(ctx); err != nil {
		return fmt.Errorf("service: failed to clear clients: %w", err)
	}
	log.Info().Msg("clients cleared")
	return nil
}
