package service

import (
	"context"
	"testing"

	"clientmap-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestClientService_Search(t *testing.T) {
	acme := client(1, "Acme Corp", -73.25, -3.74, false)

	tests := []struct {
		name        string
		term        string
		ranked      bool
		repoTerm    string
		mockClients []models.Client
		mockError   error
		expected    []models.Client
		expectedErr error
	}{
		{
			name:        "empty term",
			term:        "",
			expectedErr: models.ErrInvalidQuery,
		},
		{
			name:        "whitespace term ranked",
			term:        "   ",
			ranked:      true,
			expectedErr: models.ErrInvalidQuery,
		},
		{
			name:        "all fields trims term",
			term:        "  acme ",
			repoTerm:    "acme",
			mockClients: []models.Client{acme},
			expected:    []models.Client{acme},
		},
		{
			name:        "ranked",
			term:        "acme",
			ranked:      true,
			repoTerm:    "acme",
			mockClients: []models.Client{acme},
			expected:    []models.Client{acme},
		},
		{
			name:        "no results",
			term:        "nonexistent",
			repoTerm:    "nonexistent",
			mockClients: []models.Client{},
			expected:    []models.Client{},
		},
		{
			name:        "repository error",
			term:        "acme",
			ranked:      true,
			repoTerm:    "acme",
			mockError:   assert.AnError,
			expectedErr: assert.AnError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			mockRepo := new(MockRepository)
			service := NewClientService(mockRepo)

			method := "SearchAll"
			if tt.ranked {
				method = "SearchRanked"
			}
			if tt.repoTerm != "" {
				mockRepo.On(method, mock.Anything, tt.repoTerm).Return(tt.mockClients, tt.mockError)
			}

			// Execute
			var result []models.Client
			var err error
			if tt.ranked {
				result, err = service.SearchRanked(context.Background(), tt.term)
			} else {
				result, err = service.Search(context.Background(), tt.term)
			}

			// Assert
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestClientService_ListAndStats(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewClientService(mockRepo)

	all := []models.Client{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}
	stats := &models.Stats{Total: 2, Active: 2}
	mockRepo.On("ListAll", mock.Anything).Return(all, nil)
	mockRepo.On("Stats", mock.Anything).Return(stats, nil)

	list, err := service.List(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, all, list)

	got, err := service.Stats(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, stats, got)

	mockRepo.AssertExpectations(t)
}

func TestClientService_ListError(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewClientService(mockRepo)
	mockRepo.On("ListAll", mock.Anything).Return(nil, assert.AnError)
	mockRepo.On("Stats", mock.Anything).Return(nil, assert.AnError)

	_, err := service.List(context.Background())
	assert.ErrorIs(t, err, assert.AnError)

	_, err = service.Stats(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
}
