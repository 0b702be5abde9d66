package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"pleadmd/internal/domain"
)

func addSettingsFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("provider", "", "LLM provider: openai, anthropic, groq or local")
	f.String("model", "", "model name")
	f.String("api-key", "", "provider API key")
	f.String("base-url", "", "base URL for the local provider")
	f.String("custom-model", "", "model name sent to the local provider")
	f.Float64("temperature", 0, "sampling temperature (0-2)")
	f.Int("max-tokens", 0, "maximum completion tokens")
	f.String("prompt-file", "", "file whose contents replace the default conversion instructions")
}

// applySettingsFlags overrides base with every settings flag the user set.
func applySettingsFlags(cmd *cobra.Command, base domain.ConversionSettings) (domain.ConversionSettings, error) {
	f := cmd.Flags()
	s := base

	if f.Changed("provider") {
		s.Provider, _ = f.GetString("provider")
	}
	if f.Changed("model") {
		s.Model, _ = f.GetString("model")
	}
	if f.Changed("api-key") {
		s.APIKey, _ = f.GetString("api-key")
	}
	if f.Changed("base-url") {
		s.CustomBaseURL, _ = f.GetString("base-url")
	}
	if f.Changed("custom-model") {
		s.CustomModel, _ = f.GetString("custom-model")
	}
	if f.Changed("temperature") {
		s.Temperature, _ = f.GetFloat64("temperature")
	}
	if f.Changed("max-tokens") {
		s.MaxTokens, _ = f.GetInt("max-tokens")
	}
	if path, _ := f.GetString("prompt-file"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return s, fmt.Errorf("reading prompt file: %w", err)
		}
		s.CustomPrompt = string(data)
	}
	return s, nil
}

// examplesFile is the YAML layout accepted by --examples.
type examplesFile struct {
	Examples []domain.ConversionExample `yaml:"examples"`
}

// loadExamples reads few-shot examples from a YAML file. Entries missing an
// ID are numbered by position.
func loadExamples(path string) ([]domain.ConversionExample, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading examples file: %w", err)
	}

	var file examplesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing examples file %s: %w", path, err)
	}

	for i := range file.Examples {
		ex := &file.Examples[i]
		if ex.OriginalText == "" || ex.MarkdownText == "" {
			return nil, fmt.Errorf("example %d in %s: original_text and markdown_text are required", i+1, path)
		}
		if ex.ID == "" {
			ex.ID = fmt.Sprintf("file-%d", i+1)
		}
		if ex.Name == "" {
			ex.Name = ex.ID
		}
	}
	return file.Examples, nil
}

// writeOutput writes text to path, or to stdout when path is empty.
func writeOutput(cmd *cobra.Command, path, text string) error {
	if path == "" {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), text)
		return err
	}
	if err := os.WriteFile(path, []byte(text+"\n"), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
