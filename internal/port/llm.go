package port

import (
	"context"

	"pleadmd/internal/domain"
)

// TextProcessor sends a single prompt to an LLM. Failures are reported in
// the result, never as a Go error.
type TextProcessor interface {
	ProcessText(ctx context.Context, prompt string, settings domain.ConversionSettings) domain.ProcessResult
}

// MarkdownConverter turns extracted text into markdown through an LLM.
type MarkdownConverter interface {
	ConvertToMarkdown(ctx context.Context, text string, settings domain.ConversionSettings, examples []domain.ConversionExample) domain.ConversionResult
}

// LLMClient is implemented by llm.Client.
type LLMClient interface {
	TextProcessor
	MarkdownConverter
}
