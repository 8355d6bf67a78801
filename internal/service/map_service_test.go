package service

import (
	"context"
	"testing"

	"clientmap-api/internal/mapview"
	"clientmap-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestMapService(repo MapRepository) *MapService {
	return NewMapService(repo, mapview.NewComposer(mapview.Options{}), Limits{Default: 2, Max: 3})
}

func mappableFixture() []models.Client {
	return []models.Client{
		client(1, "Acme Corp", -73.25, -3.74, false),
		client(2, "Beta", -77.03, -12.05, true),
		client(3, "Gamma", -77.04, -12.06, false),
		client(4, "Delta", -77.05, -12.07, false),
	}
}

func markerIDs(view models.MapView) []int64 {
	ids := []int64{}
	for _, m := range view.Markers {
		ids = append(ids, m.ID)
	}
	return ids
}

func TestMapService_Map(t *testing.T) {
	stats := &models.Stats{Mappable: 4}

	tests := []struct {
		name         string
		query        models.MapQuery
		search       []models.Client
		expectedIDs  []int64
		expectedZoom int
		focusID      int64
		matches      int
		active       int
		voided       int
		selected     int
	}{
		{
			name:         "no term hides voided and applies default limit",
			query:        models.MapQuery{},
			expectedIDs:  []int64{1, 3},
			expectedZoom: mapview.DefaultZoom,
			matches:      3,
			active:       2,
		},
		{
			name:         "show voided",
			query:        models.MapQuery{ShowVoided: true, Limit: 3},
			expectedIDs:  []int64{1, 2, 3},
			expectedZoom: mapview.DefaultZoom,
			matches:      4,
			active:       2,
			voided:       1,
		},
		{
			name:         "only active wins over show voided",
			query:        models.MapQuery{ShowVoided: true, OnlyActive: true, Limit: 3},
			expectedIDs:  []int64{1, 3, 4},
			expectedZoom: mapview.DefaultZoom,
			matches:      3,
			active:       3,
		},
		{
			name:         "explicit focus beyond the limit is appended",
			query:        models.MapQuery{FocusID: 4, Limit: 1},
			expectedIDs:  []int64{1, 4},
			expectedZoom: mapview.FocusZoom,
			focusID:      4,
			matches:      3,
			active:       2,
			selected:     1,
		},
		{
			name:         "single search hit becomes focus",
			query:        models.MapQuery{Term: " acme "},
			search:       []models.Client{client(1, "Acme Corp", -73.25, -3.74, false)},
			expectedIDs:  []int64{1},
			expectedZoom: mapview.FocusZoom,
			focusID:      1,
			matches:      1,
			active:       1,
			selected:     1,
		},
		{
			name:  "single visible hit after hiding voided becomes focus",
			query: models.MapQuery{Term: "a"},
			search: []models.Client{
				client(2, "Beta", -77.03, -12.05, true),
				client(3, "Gamma", -77.04, -12.06, false),
			},
			expectedIDs:  []int64{3},
			expectedZoom: mapview.FocusZoom,
			focusID:      3,
			matches:      1,
			active:       1,
			selected:     1,
		},
		{
			name:         "several hits keep the fallback framing",
			query:        models.MapQuery{Term: "a", ShowVoided: true},
			search:       mappableFixture()[:2],
			expectedIDs:  []int64{1, 2},
			expectedZoom: mapview.DefaultZoom,
			matches:      2,
			active:       1,
			voided:       1,
		},
		{
			name:         "no hits",
			query:        models.MapQuery{Term: "zzz"},
			search:       []models.Client{},
			expectedIDs:  []int64{},
			expectedZoom: mapview.DefaultZoom,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			service := newTestMapService(mockRepo)

			if tt.search != nil {
				mockRepo.On("SearchRanked", mock.Anything, mock.Anything).Return(tt.search, nil)
			} else {
				mockRepo.On("ListMappable", mock.Anything).Return(mappableFixture(), nil)
			}
			mockRepo.On("Stats", mock.Anything).Return(stats, nil)

			result, err := service.Map(context.Background(), tt.query)
			require.NoError(t, err)

			assert.Equal(t, tt.expectedIDs, markerIDs(result.View))
			assert.Equal(t, tt.expectedZoom, result.View.Zoom)
			if tt.focusID != 0 {
				require.NotNil(t, result.Focus)
				assert.Equal(t, tt.focusID, result.Focus.ID)
				assert.Equal(t, models.Point{Lat: result.Focus.Lat(), Lon: result.Focus.Lon()}, result.View.Center)
			} else {
				assert.Nil(t, result.Focus)
				assert.Equal(t, models.Point{Lat: mapview.DefaultCenterLat, Lon: mapview.DefaultCenterLon}, result.View.Center)
			}
			assert.Equal(t, tt.matches, result.Matches)
			assert.Equal(t, 4, result.TotalMappable)
			assert.Equal(t, tt.active, result.Active)
			assert.Equal(t, tt.voided, result.Voided)
			assert.Equal(t, tt.selected, result.Selected)
		})
	}
}

func TestMapService_SearchTermIsTrimmed(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestMapService(mockRepo)

	mockRepo.On("SearchRanked", mock.Anything, "acme").Return([]models.Client{}, nil)
	mockRepo.On("Stats", mock.Anything).Return(&models.Stats{}, nil)

	result, err := service.Map(context.Background(), models.MapQuery{Term: "  acme  "})
	require.NoError(t, err)
	assert.Equal(t, "acme", result.Term)
	mockRepo.AssertExpectations(t)
}

func TestMapService_Errors(t *testing.T) {
	tests := []struct {
		name     string
		query    models.MapQuery
		listErr  error
		expected error
	}{
		{name: "limit too high", query: models.MapQuery{Limit: 4}, expected: models.ErrInvalidQuery},
		{name: "negative limit", query: models.MapQuery{Limit: -1}, expected: models.ErrInvalidQuery},
		{name: "negative focus", query: models.MapQuery{FocusID: -5}, expected: models.ErrInvalidQuery},
		{name: "focus hidden by filter", query: models.MapQuery{FocusID: 2}, expected: models.ErrFocusNotFound},
		{name: "unknown focus", query: models.MapQuery{FocusID: 99}, expected: models.ErrFocusNotFound},
		{name: "store failure", listErr: assert.AnError, expected: assert.AnError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			service := newTestMapService(mockRepo)

			mockRepo.On("ListMappable", mock.Anything).Maybe().Return(mappableFixture(), tt.listErr)
			mockRepo.On("Stats", mock.Anything).Maybe().Return(&models.Stats{}, nil)

			_, err := service.Map(context.Background(), tt.query)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestNewMapService_LimitDefaults(t *testing.T) {
	s := NewMapService(nil, mapview.NewComposer(mapview.Options{}), Limits{})
	assert.Equal(t, Limits{Default: 50, Max: 100}, s.limits)

	s = NewMapService(nil, mapview.NewComposer(mapview.Options{}), Limits{Default: 500, Max: 10})
	assert.Equal(t, Limits{Default: 10, Max: 10}, s.limits)
}
