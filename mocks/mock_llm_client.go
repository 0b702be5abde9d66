package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"pleadmd/internal/domain"
)

// MockLLMClient is a mock implementation of port.LLMClient.
type MockLLMClient struct {
	mock.Mock
}

func (m *MockLLMClient) ProcessText(ctx context.Context, prompt string, settings domain.ConversionSettings) domain.ProcessResult {
	args := m.Called(ctx, prompt, settings)
	return args.Get(0).(domain.ProcessResult)
}

func (m *MockLLMClient) ConvertToMarkdown(ctx context.Context, text string, settings domain.ConversionSettings, examples []domain.ConversionExample) domain.ConversionResult {
	args := m.Called(ctx, text, settings, examples)
	return args.Get(0).(domain.ConversionResult)
}
