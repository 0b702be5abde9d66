package port

import (
	"context"
	"io"

	"pleadmd/internal/domain"
)

// TextExtractor pulls raw text out of a document of a known format.
type TextExtractor interface {
	Extract(ctx context.Context, fileType domain.FileType, r io.Reader) (string, error)
}
