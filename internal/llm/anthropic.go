package llm

import (
	"context"
	"encoding/json"
	"fmt"

	"pleadmd/internal/domain"
)

const anthropicVersion = "2023-06-01"

type anthropicRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

// anthropicResponse models the Messages API response.
type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Usage struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
}

func (c *Client) callAnthropic(ctx context.Context, desc domain.ProviderDescriptor, promptText string, settings domain.ConversionSettings) (completion, error) {
	if settings.APIKey == "" {
		return completion{}, newProviderError(desc.ID, 0, "%s API key is required", desc.Name)
	}

	body := anthropicRequest{
		Model:       settings.Model,
		Messages:    []chatMessage{{Role: "user", Content: promptText}},
		MaxTokens:   settings.MaxTokens,
		Temperature: settings.Temperature,
	}
	headers := map[string]string{
		"x-api-key":         settings.APIKey,
		"anthropic-version": anthropicVersion,
	}

	status, respBody, err := c.postJSON(ctx, joinURL(desc.BaseURL, "/messages"), headers, body)
	if err != nil {
		return completion{}, err
	}
	if status < 200 || status > 299 {
		return completion{}, apiFailure(desc, status, respBody)
	}

	var resp anthropicResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return completion{}, fmt.Errorf("unmarshaling response: %w", err)
	}
	if len(resp.Content) == 0 || resp.Content[0].Text == "" {
		return completion{}, noContentError(desc)
	}
	return completion{text: resp.Content[0].Text, tokens: resp.Usage.InputTokens + resp.Usage.OutputTokens}, nil
}
