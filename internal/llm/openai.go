package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"pleadmd/internal/domain"
)

const localDefaultModel = "custom"

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatRequest is the OpenAI-compatible request body. Temperature is always
// sent, including zero.
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

func (c *Client) callOpenAICompatible(ctx context.Context, desc domain.ProviderDescriptor, promptText string, settings domain.ConversionSettings) (completion, error) {
	if settings.APIKey == "" {
		return completion{}, newProviderError(desc.ID, 0, "%s API key is required", desc.Name)
	}

	body := chatRequest{
		Model:       settings.Model,
		Messages:    []chatMessage{{Role: "user", Content: promptText}},
		Temperature: settings.Temperature,
		MaxTokens:   settings.MaxTokens,
	}
	headers := map[string]string{"Authorization": "Bearer " + settings.APIKey}

	status, respBody, err := c.postJSON(ctx, joinURL(desc.BaseURL, "/chat/completions"), headers, body)
	if err != nil {
		return completion{}, err
	}
	if status < 200 || status > 299 {
		return completion{}, apiFailure(desc, status, respBody)
	}
	return decodeChatCompletion(desc, respBody)
}

func (c *Client) callLocal(ctx context.Context, desc domain.ProviderDescriptor, promptText string, settings domain.ConversionSettings) (completion, error) {
	baseURL := settings.CustomBaseURL
	if baseURL == "" {
		baseURL = desc.BaseURL
	}
	if baseURL == "" {
		return completion{}, newProviderError(desc.ID, 0, "Custom base URL is required for local LLM")
	}
	model := settings.CustomModel
	if model == "" {
		model = localDefaultModel
	}

	body := chatRequest{
		Model:       model,
		Messages:    []chatMessage{{Role: "user", Content: promptText}},
		Temperature: settings.Temperature,
		MaxTokens:   settings.MaxTokens,
	}

	status, respBody, err := c.postJSON(ctx, joinURL(baseURL, "/chat/completions"), nil, body)
	if err != nil {
		return completion{}, err
	}
	if status < 200 || status > 299 {
		return completion{}, newProviderError(desc.ID, status, "Local API request failed: %d %s. %s",
			status, http.StatusText(status), string(respBody))
	}
	return decodeChatCompletion(desc, respBody)
}

func decodeChatCompletion(desc domain.ProviderDescriptor, body []byte) (completion, error) {
	var resp openai.ChatCompletionResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return completion{}, fmt.Errorf("unmarshaling response: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return completion{}, noContentError(desc)
	}
	return completion{text: resp.Choices[0].Message.Content, tokens: resp.Usage.TotalTokens}, nil
}

// apiFailure builds the error for a non-2xx response, preferring the
// provider's own error message.
func apiFailure(desc domain.ProviderDescriptor, status int, body []byte) error {
	var errResp openai.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != nil && errResp.Error.Message != "" {
		return newProviderError(desc.ID, status, "%s", errResp.Error.Message)
	}
	return newProviderError(desc.ID, status, "%s API request failed", desc.Name)
}

func (c *Client) postJSON(ctx context.Context, url string, headers map[string]string, payload interface{}) (int, []byte, error) {
	bodyBytes, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return 0, nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("reading response: %w", err)
	}
	return resp.StatusCode, respBody, nil
}

func joinURL(base, suffix string) string {
	return strings.TrimRight(base, "/") + suffix
}
