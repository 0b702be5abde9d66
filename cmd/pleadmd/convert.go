package main

import (
	"errors"

	"github.com/spf13/cobra"

	"pleadmd/internal/domain"
)

var convertCmd = &cobra.Command{
	Use:   "convert <file>",
	Short: "Convert a pleading to markdown",
	Long: `Convert extracts the text of a TXT, DOCX or PDF pleading and sends it to the
configured LLM for markdown conversion. Few-shot examples come from --examples
when given, otherwise from the saved examples selected in the settings.`,
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

		var examples []domain.ConversionExample
		if path, _ := cmd.Flags().GetString("examples"); path != "" {
			if examples, err = loadExamples(path); err != nil {
				return err
			}
			settings.UseExamples = len(examples) > 0
		}
		if noExamples, _ := cmd.Flags().GetBool("no-examples"); noExamples {
			settings.UseExamples = false
		}

		doc, err := extractFile(cmd.Context(), a, lg, args[0], &settings)
		if err != nil {
			return err
		}

		result, err := a.Conversion.Convert(cmd.Context(), doc.Text, &settings, examples)
		if err != nil {
			return err
		}
		if !result.Success {
			return errors.New(result.Error)
		}

		lg.Info().
			Int("tokens_used", result.TokensUsed).
			Int64("processing_time_ms", result.ProcessingTimeMs).
			Msg("conversion complete")

		output, _ := cmd.Flags().GetString("output")
		return writeOutput(cmd, output, result.Markdown)
	},
}

func init() {
	addSettingsFlags(convertCmd)
	convertCmd.Flags().StringP("output", "o", "", "write the markdown to this file instead of stdout")
	convertCmd.Flags().String("examples", "", "YAML file of few-shot examples")
	convertCmd.Flags().Bool("no-examples", false, "convert without few-shot examples")

	rootCmd.AddCommand(convertCmd)
}
