package llm

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"pleadmd/internal/domain"
	"pleadmd/internal/prompt"
	"pleadmd/internal/provider"
)

// DefaultTimeout bounds every provider call when none is configured.
const DefaultTimeout = 60 * time.Second

// completion is the provider-neutral outcome of one chat call.
type completion struct {
	text   string
	tokens int
}

// Client sends prompts to the provider named in the settings. It keeps no
// per-call state and is safe for concurrent use.
type Client struct {
	registry *provider.Registry
	http     *http.Client
	timeout  time.Duration
	logger   zerolog.Logger
}

// NewClient creates a client. A non-positive timeout selects DefaultTimeout.
func NewClient(registry *provider.Registry, timeout time.Duration, logger zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		registry: registry,
		http:     &http.Client{},
		timeout:  timeout,
		logger:   logger.With().Str("component", "llm.Client").Logger(),
	}
}

// ProcessText sends a single prompt. Failures are reported in the result.
func (c *Client) ProcessText(ctx context.Context, promptText string, settings domain.ConversionSettings) domain.ProcessResult {
	if strings.TrimSpace(promptText) == "" {
		return domain.ProcessResult{Success: false, Error: "Prompt cannot be empty"}
	}

	start := time.Now()
	out, err := c.complete(ctx, promptText, settings)
	elapsed := time.Since(start).Milliseconds()
	if err != nil {
		return domain.ProcessResult{Success: false, Error: errorMessage(err), ProcessingTimeMs: elapsed}
	}
	return domain.ProcessResult{Success: true, Content: out.text, TokensUsed: out.tokens, ProcessingTimeMs: elapsed}
}

// ConvertToMarkdown builds the conversion prompt for text and sends it.
// Examples are included only when settings.UseExamples is set.
func (c *Client) ConvertToMarkdown(ctx context.Context, text string, settings domain.ConversionSettings, examples []domain.ConversionExample) domain.ConversionResult {
	if strings.TrimSpace(text) == "" {
		return domain.ConversionResult{Success: false, Error: "Text cannot be empty"}
	}

	start := time.Now()
	if !settings.UseExamples {
		examples = nil
	}
	promptText := prompt.BuildConversionPrompt(text, settings.CustomPrompt, examples)

	out, err := c.complete(ctx, promptText, settings)
	elapsed := time.Since(start).Milliseconds()
	if err != nil {
		return domain.ConversionResult{Success: false, Error: errorMessage(err), ProcessingTimeMs: elapsed}
	}
	return domain.ConversionResult{Success: true, Markdown: out.text, TokensUsed: out.tokens, ProcessingTimeMs: elapsed}
}

func (c *Client) complete(ctx context.Context, promptText string, settings domain.ConversionSettings) (completion, error) {
	desc, ok := c.registry.Lookup(settings.Provider)
	if !ok {
		return completion{}, newProviderError(settings.Provider, 0, "Invalid LLM provider: %s", settings.Provider)
	}

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var (
		out completion
		err error
	)
	switch desc.Kind {
	case domain.ProviderKindOpenAICompatible:
		out, err = c.callOpenAICompatible(callCtx, desc, promptText, settings)
	case domain.ProviderKindAnthropic:
		out, err = c.callAnthropic(callCtx, desc, promptText, settings)
	case domain.ProviderKindLocal:
		out, err = c.callLocal(callCtx, desc, promptText, settings)
	default:
		return completion{}, newProviderError(desc.ID, 0, "Invalid LLM provider: %s", desc.ID)
	}

	if err != nil {
		if errors.Is(callCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
			err = &TimeoutError{After: c.timeout}
		}
		c.logger.Debug().Err(err).Str("provider", desc.ID).Msg("llm call failed")
		return completion{}, err
	}
	c.logger.Debug().Str("provider", desc.ID).Int("tokens", out.tokens).Msg("llm call completed")
	return out, nil
}
