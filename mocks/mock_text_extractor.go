package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"pleadmd/internal/domain"
)

// MockTextExtractor is a mock implementation of port.TextExtractor.
type MockTextExtractor struct {
	mock.Mock
}

func (m *MockTextExtractor) Extract(ctx context.Context, fileType domain.FileType, r io.Reader) (string, error) {
	args := m.Called(ctx, fileType, r)
	return args.String(0), args.Error(1)
}
