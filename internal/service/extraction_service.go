package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"pleadmd/internal/domain"
	"pleadmd/internal/extractor"
	"pleadmd/internal/port"
	"pleadmd/internal/prompt"
	"pleadmd/internal/validator"
)

// CleanResult is the outcome of the PDF cleaning pass.
type CleanResult struct {
	Text     string
	Cleaned  bool
	Degraded bool
	Error    string
}

// ExtractionService defines the document extraction contract.
type ExtractionService interface {
	Extract(ctx context.Context, file domain.UploadedFile, settings *domain.ConversionSettings) (*domain.ExtractedDocument, error)
	Clean(ctx context.Context, raw string, settings domain.ConversionSettings) (*CleanResult, error)
}

type extractionService struct {
	extractor port.TextExtractor
	processor port.TextProcessor
	maxBytes  int64
	logger    zerolog.Logger
}

// NewExtractionService creates a new ExtractionService implementation.
// A non-positive maxBytes selects validator.DefaultMaxFileSize.
func NewExtractionService(
	extractor port.TextExtractor,
	processor port.TextProcessor,
	maxBytes int64,
	logger zerolog.Logger,
) ExtractionService {
	if maxBytes <= 0 {
		maxBytes = validator.DefaultMaxFileSize
	}
	return &extractionService{
		extractor: extractor,
		processor: processor,
		maxBytes:  maxBytes,
		logger:    logger.With().Str("component", "extractionService").Logger(),
	}
}

func (s *extractionService) Extract(ctx context.Context, file domain.UploadedFile, settings *domain.ConversionSettings) (*domain.ExtractedDocument, error) {
	if err := validator.ValidateFile(file.MIMEType, file.Name, file.Size, s.maxBytes); err != nil {
		return nil, err
	}

	mimeType := file.MIMEType
	if validator.IsGenericMIME(mimeType) {
		if rs, ok := file.Body.(io.ReadSeeker); ok {
			if sniffed, err := validator.SniffMIMEType(rs); err == nil && validator.ResolveFileType(sniffed, "") != "" {
				mimeType = sniffed
			}
		}
	}

	fileType := validator.ResolveFileType(mimeType, file.Name)
	if fileType == "" {
		return nil, fmt.Errorf("Unsupported file type: %s", mimeType)
	}
	if fileType == domain.FileTypePDF && settings == nil {
		return nil, domain.ErrPDFSettingsRequired
	}

	s.logger.Info().
		Str("file", file.Name).
		Str("type", string(fileType)).
		Int64("size", file.Size).
		Msg("extracting text")

	text, err := s.extractor.Extract(ctx, fileType, file.Body)
	if err != nil {
		return nil, wrapExtractionError(ctx, err)
	}

	doc := &domain.ExtractedDocument{
		FileName: file.Name,
		Size:     file.Size,
		MIMEType: file.MIMEType,
		FileType: fileType,
		Text:     text,
	}
	if fileType != domain.FileTypePDF {
		return doc, nil
	}

	cleaned, err := s.Clean(ctx, text, *settings)
	if err != nil {
		return nil, err
	}
	doc.Text = cleaned.Text
	doc.Cleaned = cleaned.Cleaned
	doc.Degraded = cleaned.Degraded
	doc.CleaningError = cleaned.Error
	return doc, nil
}

// Clean runs raw PDF text through the LLM. Any LLM failure falls back to the
// raw text with the result marked degraded.
func (s *extractionService) Clean(ctx context.Context, raw string, settings domain.ConversionSettings) (*CleanResult, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, domain.ErrNoTextToClean
	}

	result := s.processor.ProcessText(ctx, prompt.BuildCleaningPrompt(raw), settings)
	if result.Success {
		if content := strings.TrimSpace(result.Content); content != "" {
			return &CleanResult{Text: content, Cleaned: true}, nil
		}
	}

	reason := result.Error
	if result.Success {
		reason = "LLM returned empty content"
	}
	s.logger.Warn().
		Str("provider", settings.Provider).
		Str("reason", reason).
		Msg("text cleaning failed, using raw extracted text")
	return &CleanResult{Text: raw, Degraded: true, Error: reason}, nil
}

func wrapExtractionError(ctx context.Context, err error) error {
	var extractionErr *extractor.ExtractionError
	if errors.As(err, &extractionErr) {
		return err
	}
	if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
		return err
	}
	return &extractor.ExtractionError{Err: err}
}
