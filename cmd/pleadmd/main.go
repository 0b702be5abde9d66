// Package main is the pleadmd command line: extract text from legal documents
// and convert it to markdown with the configured LLM.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"pleadmd/internal/app"
	"pleadmd/internal/config"
	"pleadmd/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "pleadmd",
	Short: "Extract and convert legal pleadings to markdown",
	Long: `pleadmd extracts text from TXT, DOCX and PDF pleadings and converts it to
structured markdown through an LLM provider (OpenAI, Anthropic, Groq or a
local OpenAI-compatible server).

Configuration comes from PLEADMD_* environment variables. Saved settings from
the configured store are used unless overridden by flags.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
}

// openApp loads config and wires the pipeline for a subcommand.
func openApp(cmd *cobra.Command) (*app.App, zerolog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, zerolog.Nop(), fmt.Errorf("loading config: %w", err)
	}

	logCfg := config.LogConfig{Level: "warn", Format: "console"}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logCfg.Level = "debug"
	}
	lg := logger.SetupWithWriter(logCfg, os.Stderr)

	a, err := app.New(cmd.Context(), cfg, lg)
	if err != nil {
		return nil, lg, err
	}
	return a, lg, nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
