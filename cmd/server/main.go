package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"pleadmd/internal/app"
	"pleadmd/internal/config"
	"pleadmd/internal/handler"
	"pleadmd/internal/logger"
	"pleadmd/internal/router"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	lg := logger.Setup(cfg.Log)
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, lg)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	// Initialize handlers
	handlers := router.Handlers{
		Health:     handler.NewHealthHandler(a.Store),
		Provider:   handler.NewProviderHandler(a.Registry),
		Extract:    handler.NewExtractHandler(a.Extraction, a.Settings, cfg.Upload.MaxFileSizeBytes()),
		Conversion: handler.NewConversionHandler(a.Conversion),
		Settings:   handler.NewSettingsHandler(a.Settings),
	}

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      router.Setup(handlers, cfg.CORS.AllowedOrigins, lg),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		lg.Info().Str("addr", cfg.Server.Port).Str("store", cfg.Store.Backend).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	lg.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}
