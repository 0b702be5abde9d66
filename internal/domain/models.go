package domain

import "io"

// ProviderDescriptor describes an LLM backend. Descriptors are immutable and
// defined at startup by the provider registry.
type ProviderDescriptor struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	BaseURL        string       `json:"base_url"`
	RequiresAPIKey bool         `json:"requires_api_key"`
	Models         []string     `json:"models"`
	Kind           ProviderKind `json:"kind"`
}

// ConversionSettings carries the user's LLM configuration. It is passed by
// value into every pipeline call and never mutated there.
type ConversionSettings struct {
	Provider           string   `json:"provider" yaml:"provider"`
	Model              string   `json:"model" yaml:"model"`
	APIKey             string   `json:"api_key" yaml:"api_key"`
	Temperature        float64  `json:"temperature" yaml:"temperature"`
	MaxTokens          int      `json:"max_tokens" yaml:"max_tokens"`
	UseExamples        bool     `json:"use_examples" yaml:"use_examples"`
	SelectedExampleIDs []string `json:"selected_example_ids" yaml:"selected_example_ids"`
	CustomPrompt       string   `json:"custom_prompt,omitempty" yaml:"custom_prompt,omitempty"`
	CustomBaseURL      string   `json:"custom_base_url,omitempty" yaml:"custom_base_url,omitempty"`
	CustomModel        string   `json:"custom_model,omitempty" yaml:"custom_model,omitempty"`
}

// ConversionExample is a few-shot pair injected into the conversion prompt.
type ConversionExample struct {
	ID           string `json:"id" yaml:"id"`
	Name         string `json:"name" yaml:"name"`
	OriginalText string `json:"original_text" yaml:"original_text"`
	MarkdownText string `json:"markdown_text" yaml:"markdown_text"`
	PleadingType string `json:"pleading_type" yaml:"pleading_type"`
}

// UploadedFile is the file-like input handed to the extraction pipeline.
// Body is read only after the file passes validation.
type UploadedFile struct {
	Name     string
	MIMEType string
	Size     int64
	Body     io.Reader
}

// ExtractedDocument is produced once per upload and never updated in place.
type ExtractedDocument struct {
	FileName string   `json:"file_name"`
	Size     int64    `json:"size"`
	MIMEType string   `json:"mime_type"`
	FileType FileType `json:"file_type"`
	Text     string   `json:"text"`

	// Cleaned is true when the text came back from the LLM cleaning pass.
	Cleaned bool `json:"cleaned"`
	// Degraded is true when cleaning was attempted but the raw text was returned instead.
	Degraded      bool   `json:"degraded"`
	CleaningError string `json:"cleaning_error,omitempty"`
}

// ConversionResult is the uniform outcome of a markdown conversion.
// Exactly one of Markdown and Error is set, discriminated by Success.
type ConversionResult struct {
	Success          bool   `json:"success"`
	Markdown         string `json:"markdown,omitempty"`
	TokensUsed       int    `json:"tokens_used,omitempty"`
	Error            string `json:"error,omitempty"`
	ProcessingTimeMs int64  `json:"processing_time_ms"`
}

// ProcessResult is the outcome of a single-prompt LLM call.
type ProcessResult struct {
	Success          bool   `json:"success"`
	Content          string `json:"content,omitempty"`
	TokensUsed       int    `json:"tokens_used,omitempty"`
	Error            string `json:"error,omitempty"`
	ProcessingTimeMs int64  `json:"processing_time_ms"`
}

// SelectExamples returns the examples whose IDs appear in selectedIDs,
// keeping the order of all.
func SelectExamples(all []ConversionExample, selectedIDs []string) []ConversionExample {
	if len(all) == 0 || len(selectedIDs) == 0 {
		return nil
	}
	selected := make(map[string]struct{}, len(selectedIDs))
	for _, id := range selectedIDs {
		selected[id] = struct{}{}
	}
	var out []ConversionExample
	for _, ex := range all {
		if _, ok := selected[ex.ID]; ok {
			out = append(out, ex)
		}
	}
	return out
}
