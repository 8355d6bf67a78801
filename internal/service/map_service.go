package service

import (
	"context"
	"fmt"
	"strings"

	"clientmap-api/internal/mapview"
	"clientmap-api/internal/metrics"
	"clientmap-api/internal/models"
)

// MapRepository interface for dependency injection
type MapRepository interface {
	ListMappable(ctx context.Context) ([]models.Client, error)
	SearchRanked(ctx context.Context, term string) ([]models.Client, error)
	Stats(ctx context.Context) (*models.Stats, error)
}

// Limits on the number of markers drawn.
type Limits struct {
	Default int
	Max     int
}

// MapService builds the map page view-model
type MapService struct {
	repo     MapRepository
	composer *mapview.Composer
	limits   Limits
}

// NewMapService creates a new map service
func NewMapService(repo MapRepository, composer *mapview.Composer, limits Limits) *MapService {
	if limits.Max < 1 {
		limits.Max = 100
	}
	if limits.Default < 1 || limits.Default > limits.Max {
		limits.Default = min(50, limits.Max)
	}
	return &MapService{repo: repo, composer: composer, limits: limits}
}

// Map selects the candidate records for q, picks the focus and composes the view.
//
// Without a term every mappable record is a candidate; with one the ranked search result is.
// Voided records are hidden unless ShowVoided is set, and OnlyActive always hides them.
// A single search hit becomes the focus. An explicit FocusID must be among the candidates.
func (s *MapService) Map(ctx context.Context, q models.MapQuery) (*models.MapResult, error) {
	limit, err := s.limit(q.Limit)
	if err != nil {
		return nil, err
	}
	if q.FocusID < 0 {
		return nil, fmt.Errorf("service: focus id %d: %w", q.FocusID, models.ErrInvalidQuery)
	}

	term := strings.TrimSpace(q.Term)
	var candidates []models.Client
	if term == "" {
		candidates, err = s.repo.ListMappable(ctx)
	} else {
		candidates, err = s.repo.SearchRanked(ctx, term)
	}
	if err != nil {
		return nil, fmt.Errorf("service: failed to load map candidates: %w", err)
	}

	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to read stats: %w", err)
	}

	candidates = filterVoided(candidates, q.ShowVoided && !q.OnlyActive)

	focus, err := pickFocus(candidates, q.FocusID, term != "")
	if err != nil {
		return nil, err
	}

	shown := candidates
	if len(shown) > limit {
		shown = shown[:limit]
	}
	if focus != nil && !containsID(shown, focus.ID) {
		shown = append(shown[:len(shown):len(shown)], *focus)
	}

	result := &models.MapResult{
		View:          s.composer.Compose(shown, focus),
		Term:          term,
		Focus:         focus,
		Matches:       len(candidates),
		TotalMappable: stats.Mappable,
	}
	for _, m := range result.View.Markers {
		switch {
		case m.Status == models.StatusSelected:
			result.Selected++
			if m.Voided {
				result.Voided++
			} else {
				result.Active++
			}
		case m.Voided:
			result.Voided++
		default:
			result.Active++
		}
	}

	if term != "" {
		metrics.ObserveSearch(metrics.SearchMap, len(candidates))
	}
	return result, nil
}

func (s *MapService) limit(requested int) (int, error) {
	if requested == 0 {
		return s.limits.Default, nil
	}
	if requested < 1 || requested > s.limits.Max {
		return 0, fmt.Errorf("service: limit must be between 1 and %d: %w", s.limits.Max, models.ErrInvalidQuery)
	}
	return requested, nil
}

func filterVoided(records []models.Client, keepVoided bool) []models.Client {
	if keepVoided {
		return records
	}
	out := make([]models.Client, 0, len(records))
	for _, r := range records {
		if !r.Voided {
			out = append(out, r)
		}
	}
	return out
}

func pickFocus(candidates []models.Client, focusID int64, searched bool) (*models.Client, error) {
	if focusID != 0 {
		for i := range candidates {
			if candidates[i].ID == focusID {
				focus := candidates[i]
				return &focus, nil
			}
		}
		return nil, fmt.Errorf("service: client %d: %w", focusID, models.ErrFocusNotFound)
	}
	if searched && len(candidates) == 1 {
		focus := candidates[0]
		return &focus, nil
	}
	return nil, nil
}

func containsID(records []models.Client, id int64) bool {
	for _, r := range records {
		if r.ID == id {
			return true
		}
	}
	return false
}
