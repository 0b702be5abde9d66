// Package app assembles the extraction and conversion pipeline from config.
package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"pleadmd/internal/config"
	"pleadmd/internal/extractor"
	"pleadmd/internal/llm"
	"pleadmd/internal/port"
	"pleadmd/internal/provider"
	"pleadmd/internal/service"
	"pleadmd/internal/storage"
)

// App holds the services shared by the HTTP server and the CLI.
type App struct {
	Registry   *provider.Registry
	Store      port.KeyValueStore
	LLM        *llm.Client
	Extraction service.ExtractionService
	Conversion service.ConversionService
	Settings   service.SettingsService

	closeStore func() error
}

// New opens the configured settings store and wires the services on top of it.
func New(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*App, error) {
	store, closeStore, err := storage.Open(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("opening %s store: %w", cfg.Store.Backend, err)
	}

	registry := provider.NewRegistry(cfg.LLM.BaseURL)
	client := llm.NewClient(registry, cfg.LLM.Timeout(), logger)

	settingsSvc := service.NewSettingsService(store, registry, cfg.LLM, logger)

	return &App{
		Registry:   registry,
		Store:      store,
		LLM:        client,
		Extraction: service.NewExtractionService(extractor.New(), client, cfg.Upload.MaxFileSizeBytes(), logger),
		Conversion: service.NewConversionService(client, settingsSvc, logger),
		Settings:   settingsSvc,
		closeStore: closeStore,
	}, nil
}

// Close releases the settings store.
func (a *App) Close() error {
	if a.closeStore == nil {
		return nil
	}
	return a.closeStore()
}
