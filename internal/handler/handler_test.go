package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"pleadmd/internal/domain"
	"pleadmd/internal/handler"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newJSONContext(t *testing.T, method, path string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(method, path, &buf)
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder, data interface{}) handler.APIResponse {
	t.Helper()
	var raw struct {
		Success bool              `json:"success"`
		Data    json.RawMessage   `json:"data"`
		Error   *handler.APIError `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	if data != nil && len(raw.Data) > 0 {
		require.NoError(t, json.Unmarshal(raw.Data, data))
	}
	return handler.APIResponse{Success: raw.Success, Error: raw.Error}
}

func savedSettings() *domain.ConversionSettings {
	return &domain.ConversionSettings{
		Provider:    domain.ProviderOpenAI,
		Model:       "gpt-4o-mini",
		APIKey:      "sk-saved",
		Temperature: 0.1,
		MaxTokens:   4000,
	}
}
