package service

import (
	"context"

	"github.com/rs/zerolog"

	"pleadmd/internal/domain"
	"pleadmd/internal/port"
)

// ConversionService defines the markdown conversion contract. Nil settings
// fall back to the saved settings; nil examples fall back to the saved
// examples selected by those settings.
type ConversionService interface {
	Convert(ctx context.Context, text string, settings *domain.ConversionSettings, examples []domain.ConversionExample) (domain.ConversionResult, error)
	Process(ctx context.Context, prompt string, settings *domain.ConversionSettings) (domain.ProcessResult, error)
}

type conversionService struct {
	llm      port.LLMClient
	settings SettingsService
	logger   zerolog.Logger
}

// NewConversionService creates a new ConversionService implementation.
func NewConversionService(llm port.LLMClient, settings SettingsService, logger zerolog.Logger) ConversionService {
	return &conversionService{
		llm:      llm,
		settings: settings,
		logger:   logger.With().Str("component", "conversionService").Logger(),
	}
}

func (s *conversionService) Convert(ctx context.Context, text string, settings *domain.ConversionSettings, examples []domain.ConversionExample) (domain.ConversionResult, error) {
	resolved, err := s.resolveSettings(ctx, settings)
	if err != nil {
		return domain.ConversionResult{}, err
	}
	if examples == nil {
		examples, err = s.settings.SelectedExamples(ctx, resolved)
		if err != nil {
			return domain.ConversionResult{}, err
		}
	}

	result := s.llm.ConvertToMarkdown(ctx, text, resolved, examples)
	event := s.logger.Info()
	if !result.Success {
		event = s.logger.Warn().Str("error", result.Error)
	}
	event.
		Str("provider", resolved.Provider).
		Int("examples", len(examples)).
		Int("tokens", result.TokensUsed).
		Int64("elapsed_ms", result.ProcessingTimeMs).
		Msg("conversion finished")
	return result, nil
}

func (s *conversionService) Process(ctx context.Context, prompt string, settings *domain.ConversionSettings) (domain.ProcessResult, error) {
	resolved, err := s.resolveSettings(ctx, settings)
	if err != nil {
		return domain.ProcessResult{}, err
	}
	return s.llm.ProcessText(ctx, prompt, resolved), nil
}

func (s *conversionService) resolveSettings(ctx context.Context, settings *domain.ConversionSettings) (domain.ConversionSettings, error) {
	if settings != nil {
		return *settings, nil
	}
	saved, err := s.settings.GetSettings(ctx)
	if err != nil {
		return domain.ConversionSettings{}, err
	}
	return *saved, nil
}
