package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"clientmap-api/internal/ingest"
	"clientmap-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const sampleCSV = "Cliente,Razon social,Domicilio,Coord X,Coord Y,Identificador,Anulado\n" +
	"Empresa A,Empresa A S.A.,Av. Principal 123,-77.0428,-12.0464,EMP001,NO\n" +
	"Empresa B,,,-77.03,-12.05,EMP002,SI\n" +
	"Empresa C,,,,,EMP003,MAYBE\n"

func TestImportService_Import(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewImportService(mockRepo)

	mockRepo.On("ReplaceAll", mock.Anything, mock.MatchedBy(func(records []models.Client) bool {
		return len(records) == 3 && records[1].Voided && !records[2].Voided
	})).Return(3, nil)

	result, err := service.Import(context.Background(), "clientes.csv", strings.NewReader(sampleCSV))
	require.NoError(t, err)

	assert.Equal(t, 3, result.Inserted)
	assert.Equal(t, "clientes.csv", result.Report.FileName)
	assert.Equal(t, 3, result.Report.Rows)
	assert.Equal(t, 1, result.Report.Voided)
	assert.Equal(t, 2, result.Report.Active)
	assert.Equal(t, []string{"MAYBE"}, result.Report.UnrecognizedVoided)
	mockRepo.AssertExpectations(t)
}

func TestImportService_ImportUnreadableLeavesStoreUntouched(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewImportService(mockRepo)

	_, err := service.Import(context.Background(), "clientes.xls", strings.NewReader("legacy"))

	var parseErr *models.ParseError
	assert.ErrorAs(t, err, &parseErr)
	mockRepo.AssertNotCalled(t, "ReplaceAll", mock.Anything, mock.Anything)
}

func TestImportService_ImportStoreFailure(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewImportService(mockRepo)

	connErr := &models.ConnectionError{Op: "replace all", Err: errors.New("refused")}
	mockRepo.On("ReplaceAll", mock.Anything, mock.Anything).Return(0, connErr)

	_, err := service.Import(context.Background(), "clientes.csv", strings.NewReader(sampleCSV))

	var target *models.ConnectionError
	assert.ErrorAs(t, err, &target)
	mockRepo.AssertExpectations(t)
}

func TestImportService_ImportBatch(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewImportService(mockRepo)

	_, err := service.ImportBatch(context.Background(), nil)
	assert.Error(t, err)

	batch := &ingest.Batch{Records: []models.Client{}, Report: models.ImportReport{FileName: "empty.csv"}}
	mockRepo.On("ReplaceAll", mock.Anything, batch.Records).Return(0, nil)

	result, err := service.ImportBatch(context.Background(), batch)
	require.NoError(t, err)
	assert.Zero(t, result.Inserted)
	mockRepo.AssertExpectations(t)
}

func TestImportService_Clear(t *testing.T) {
	tests := []struct {
		name        string
		mockError   error
		expectError bool
	}{
		{name: "success"},
		{name: "repository error", mockError: assert.AnError, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			service := NewImportService(mockRepo)
			mockRepo.On("ClearAll", mock.Anything).Return(tt.mockError)

			err := service.Clear(context.Background())

			if tt.expectError {
				assert.ErrorIs(t, err, tt.mockError)
			} else {
				assert.NoError(t, err)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}
