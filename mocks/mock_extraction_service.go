package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"pleadmd/internal/domain"
	"pleadmd/internal/service"
)

// MockExtractionService is a mock implementation of service.ExtractionService.
type MockExtractionService struct {
	mock.Mock
}

func (m *MockExtractionService) Extract(ctx context.Context, file domain.UploadedFile, settings *domain.ConversionSettings) (*domain.ExtractedDocument, error) {
	args := m.Called(ctx, file, settings)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExtractedDocument), args.Error(1)
}

func (m *MockExtractionService) Clean(ctx context.Context, raw string, settings domain.ConversionSettings) (*service.CleanResult, error) {
	args := m.Called(ctx, raw, settings)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CleanResult), args.Error(1)
}
