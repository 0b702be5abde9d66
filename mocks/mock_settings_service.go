package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"pleadmd/internal/domain"
	"pleadmd/internal/service"
)

// MockSettingsService is a mock implementation of service.SettingsService.
type MockSettingsService struct {
	mock.Mock
}

func (m *MockSettingsService) GetSettings(ctx context.Context) (*domain.ConversionSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ConversionSettings), args.Error(1)
}

func (m *MockSettingsService) SaveSettings(ctx context.Context, settings domain.ConversionSettings) (*domain.ConversionSettings, error) {
	args := m.Called(ctx, settings)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ConversionSettings), args.Error(1)
}

func (m *MockSettingsService) ListExamples(ctx context.Context) ([]domain.ConversionExample, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ConversionExample), args.Error(1)
}

func (m *MockSettingsService) CreateExample(ctx context.Context, input service.ExampleInput) (*domain.ConversionExample, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ConversionExample), args.Error(1)
}

func (m *MockSettingsService) UpdateExample(ctx context.Context, id string, input service.ExampleInput) (*domain.ConversionExample, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ConversionExample), args.Error(1)
}

func (m *MockSettingsService) DeleteExample(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSettingsService) SelectedExamples(ctx context.Context, settings domain.ConversionSettings) ([]domain.ConversionExample, error) {
	args := m.Called(ctx, settings)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ConversionExample), args.Error(1)
}
