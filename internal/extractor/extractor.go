package extractor

import (
	"context"
	"fmt"
	"io"
	"strings"

	"pleadmd/internal/domain"
)

// ExtractionError is an extraction failure that already carries its
// user-facing wrapping. Format is empty for the generic wrapping.
type ExtractionError struct {
	Format domain.FileType
	Err    error
}

func (e *ExtractionError) Error() string {
	if e.Format == "" {
		return fmt.Sprintf("Failed to extract text: %v", e.Err)
	}
	return fmt.Sprintf("Failed to extract text from %s: %v", strings.ToUpper(string(e.Format)), e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// Is matches domain.ErrExtractionFailed.
func (e *ExtractionError) Is(target error) bool {
	return target == domain.ErrExtractionFailed
}

// Extractor dispatches raw text extraction to the routine for each format.
// It implements port.TextExtractor.
type Extractor struct{}

// New creates an Extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extract reads r fully and returns its raw text.
func (e *Extractor) Extract(ctx context.Context, fileType domain.FileType, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	switch fileType {
	case domain.FileTypeTXT:
		return ExtractPlainText(r)
	case domain.FileTypeDOCX:
		return ExtractDOCX(r)
	case domain.FileTypePDF:
		return ExtractPDF(ctx, r)
	default:
		return "", fmt.Errorf("Unsupported file type: %s", fileType)
	}
}
