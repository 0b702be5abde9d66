package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"pleadmd/internal/domain"
)

// MockConversionService is a mock implementation of service.ConversionService.
type MockConversionService struct {
	mock.Mock
}

func (m *MockConversionService) Convert(ctx context.Context, text string, settings *domain.ConversionSettings, examples []domain.ConversionExample) (domain.ConversionResult, error) {
	args := m.Called(ctx, text, settings, examples)
	return args.Get(0).(domain.ConversionResult), args.Error(1)
}

func (m *MockConversionService) Process(ctx context.Context, prompt string, settings *domain.ConversionSettings) (domain.ProcessResult, error) {
	args := m.Called(ctx, prompt, settings)
	return args.Get(0).(domain.ProcessResult), args.Error(1)
}
