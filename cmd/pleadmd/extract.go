package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"pleadmd/internal/app"
	"pleadmd/internal/domain"
)

var extractCmd = &cobra.Command{
	Use:   "extract <file>",
	Short: "Extract plain text from a TXT, DOCX or PDF file",
	Long: `Extract reads a pleading and prints its text. PDF text is cleaned through
the configured LLM; when cleaning fails the raw text is printed and a warning
is logged.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, lg, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = a.Close() }()

		settings, err := resolveSettings(cmd, a)
		if err != nil {
			return err
		}

		doc, err := extractFile(cmd.Context(), a, lg, args[0], &settings)
		if err != nil {
			return err
		}
		output, _ := cmd.Flags().GetString("output")
		return writeOutput(cmd, output, doc.Text)
	},
}

func init() {
	addSettingsFlags(extractCmd)
	extractCmd.Flags().StringP("output", "o", "", "write the text to this file instead of stdout")

	rootCmd.AddCommand(extractCmd)
}

// resolveSettings starts from the saved settings and applies flag overrides.
func resolveSettings(cmd *cobra.Command, a *app.App) (domain.ConversionSettings, error) {
	saved, err := a.Settings.GetSettings(cmd.Context())
	if err != nil {
		return domain.ConversionSettings{}, fmt.Errorf("loading saved settings: %w", err)
	}
	return applySettingsFlags(cmd, *saved)
}

func extractFile(ctx context.Context, a *app.App, lg zerolog.Logger, path string, settings *domain.ConversionSettings) (*domain.ExtractedDocument, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, errors.New(path + " is a directory")
	}

	doc, err := a.Extraction.Extract(ctx, domain.UploadedFile{
		Name: filepath.Base(path),
		Size: info.Size(),
		Body: f,
	}, settings)
	if err != nil {
		return nil, err
	}

	if doc.Degraded {
		lg.Warn().Str("file", path).Str("reason", doc.CleaningError).Msg("PDF cleaning failed, using raw text")
	}
	return doc, nil
}
