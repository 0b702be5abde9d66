package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"pleadmd/internal/config"
	"pleadmd/internal/domain"
	"pleadmd/internal/port"
	"pleadmd/internal/provider"
)

// Storage keys for the persisted settings and example library.
const (
	SettingsKey = "legal-md-settings"
	ExamplesKey = "legal-md-examples"
)

// ExampleInput is the DTO for creating or updating a conversion example.
type ExampleInput struct {
	Name         string `json:"name" yaml:"name"`
	OriginalText string `json:"original_text" yaml:"original_text"`
	MarkdownText string `json:"markdown_text" yaml:"markdown_text"`
	PleadingType string `json:"pleading_type" yaml:"pleading_type"`
}

// SettingsService defines the contract for persisted settings and examples.
type SettingsService interface {
	GetSettings(ctx context.Context) (*domain.ConversionSettings, error)
	SaveSettings(ctx context.Context, settings domain.ConversionSettings) (*domain.ConversionSettings, error)
	ListExamples(ctx context.Context) ([]domain.ConversionExample, error)
	CreateExample(ctx context.Context, input ExampleInput) (*domain.ConversionExample, error)
	UpdateExample(ctx context.Context, id string, input ExampleInput) (*domain.ConversionExample, error)
	DeleteExample(ctx context.Context, id string) error
	SelectedExamples(ctx context.Context, settings domain.ConversionSettings) ([]domain.ConversionExample, error)
}

type settingsService struct {
	// mu serializes writes. Each write rewrites a whole stored value.
	mu sync.Mutex

	store    port.KeyValueStore
	registry *provider.Registry
	defaults domain.ConversionSettings
	logger   zerolog.Logger
}

// NewSettingsService creates a new SettingsService implementation.
func NewSettingsService(
	store port.KeyValueStore,
	registry *provider.Registry,
	llmCfg config.LLMConfig,
	logger zerolog.Logger,
) SettingsService {
	return &settingsService{
		store:    store,
		registry: registry,
		defaults: DefaultSettings(llmCfg),
		logger:   logger.With().Str("component", "settingsService").Logger(),
	}
}

// DefaultSettings builds the settings used before the user saves any.
func DefaultSettings(cfg config.LLMConfig) domain.ConversionSettings {
	s := domain.ConversionSettings{
		Provider:           cfg.Provider,
		Model:              cfg.Model,
		APIKey:             cfg.APIKey,
		Temperature:        cfg.Temperature,
		MaxTokens:          cfg.MaxTokens,
		UseExamples:        cfg.UseExamples,
		SelectedExampleIDs: []string{},
	}
	if cfg.Provider == domain.ProviderLocal {
		s.CustomBaseURL = cfg.BaseURL
	}
	return s
}

func (s *settingsService) GetSettings(ctx context.Context) (*domain.ConversionSettings, error) {
	settings := s.defaults
	settings.SelectedExampleIDs = []string{}
	found, err := s.load(ctx, SettingsKey, &settings)
	if err != nil {
		return nil, err
	}
	if !found {
		s.logger.Debug().Msg("no saved settings, using defaults")
	}
	return &settings, nil
}

func (s *settingsService) SaveSettings(ctx context.Context, settings domain.ConversionSettings) (*domain.ConversionSettings, error) {
	if err := s.validateSettings(settings); err != nil {
		return nil, err
	}
	if settings.SelectedExampleIDs == nil {
		settings.SelectedExampleIDs = []string{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.save(ctx, SettingsKey, settings); err != nil {
		return nil, err
	}
	s.logger.Info().Str("provider", settings.Provider).Str("model", settings.Model).Msg("settings saved")
	return &settings, nil
}

func (s *settingsService) validateSettings(settings domain.ConversionSettings) error {
	if _, ok := s.registry.Lookup(settings.Provider); !ok {
		return fmt.Errorf("%w: unknown provider %q", domain.ErrInvalidSettings, settings.Provider)
	}
	if settings.MaxTokens <= 0 {
		return fmt.Errorf("%w: max_tokens must be positive", domain.ErrInvalidSettings)
	}
	if settings.Temperature < 0 || settings.Temperature > 2 {
		return fmt.Errorf("%w: temperature must be between 0 and 2", domain.ErrInvalidSettings)
	}
	return nil
}

func (s *settingsService) ListExamples(ctx context.Context) ([]domain.ConversionExample, error) {
	examples := []domain.ConversionExample{}
	if _, err := s.load(ctx, ExamplesKey, &examples); err != nil {
		return nil, err
	}
	return examples, nil
}

func (s *settingsService) CreateExample(ctx context.Context, input ExampleInput) (*domain.ConversionExample, error) {
	if err := validateExample(input); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	examples, err := s.ListExamples(ctx)
	if err != nil {
		return nil, err
	}

	ex := domain.ConversionExample{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(input.Name),
		OriginalText: input.OriginalText,
		MarkdownText: input.MarkdownText,
		PleadingType: strings.TrimSpace(input.PleadingType),
	}
	examples = append(examples, ex)
	if err := s.save(ctx, ExamplesKey, examples); err != nil {
		return nil, err
	}
	s.logger.Info().Str("example_id", ex.ID).Msg("example created")
	return &ex, nil
}

func (s *settingsService) UpdateExample(ctx context.Context, id string, input ExampleInput) (*domain.ConversionExample, error) {
	if err := validateExample(input); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	examples, err := s.ListExamples(ctx)
	if err != nil {
		return nil, err
	}

	for i := range examples {
		if examples[i].ID != id {
			continue
		}
		examples[i].Name = strings.TrimSpace(input.Name)
		examples[i].OriginalText = input.OriginalText
		examples[i].MarkdownText = input.MarkdownText
		examples[i].PleadingType = strings.TrimSpace(input.PleadingType)
		if err := s.save(ctx, ExamplesKey, examples); err != nil {
			return nil, err
		}
		updated := examples[i]
		return &updated, nil
	}
	return nil, domain.ErrExampleNotFound
}

func (s *settingsService) DeleteExample(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	examples, err := s.ListExamples(ctx)
	if err != nil {
		return err
	}

	kept := make([]domain.ConversionExample, 0, len(examples))
	for _, ex := range examples {
		if ex.ID != id {
			kept = append(kept, ex)
		}
	}
	if len(kept) == len(examples) {
		return domain.ErrExampleNotFound
	}
	if err := s.save(ctx, ExamplesKey, kept); err != nil {
		return err
	}
	s.logger.Info().Str("example_id", id).Msg("example deleted")
	return nil
}

func (s *settingsService) SelectedExamples(ctx context.Context, settings domain.ConversionSettings) ([]domain.ConversionExample, error) {
	if !settings.UseExamples || len(settings.SelectedExampleIDs) == 0 {
		return nil, nil
	}
	all, err := s.ListExamples(ctx)
	if err != nil {
		return nil, err
	}
	return domain.SelectExamples(all, settings.SelectedExampleIDs), nil
}

func validateExample(input ExampleInput) error {
	if strings.TrimSpace(input.Name) == "" ||
		strings.TrimSpace(input.OriginalText) == "" ||
		strings.TrimSpace(input.MarkdownText) == "" {
		return domain.ErrInvalidExample
	}
	return nil
}

// load decodes the value under key into dst. It reports false, leaving dst
// untouched, when the key has never been written.
func (s *settingsService) load(ctx context.Context, key string, dst interface{}) (bool, error) {
	raw, err := s.store.Get(ctx, key)
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("loading %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("decoding %s: %w", key, err)
	}
	return true, nil
}

func (s *settingsService) save(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if err := s.store.Put(ctx, key, raw); err != nil {
		return fmt.Errorf("saving %s: %w", key, err)
	}
	return nil
}
