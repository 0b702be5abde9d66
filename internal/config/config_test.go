package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pleadmd/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, int64(10), cfg.Upload.MaxFileSizeMB)
	assert.Equal(t, int64(10485760), cfg.Upload.MaxFileSizeBytes())
	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, "gpt-4o", cfg.LLM.Model)
	assert.Equal(t, 4000, cfg.LLM.MaxTokens)
	assert.InDelta(t, 0.3, cfg.LLM.Temperature, 1e-9)
	assert.True(t, cfg.LLM.UseExamples)
	assert.Equal(t, 60*time.Second, cfg.LLM.Timeout())
	assert.Equal(t, "file", cfg.Store.Backend)
	assert.NotEmpty(t, cfg.CORS.AllowedOrigins)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PLEADMD_LLM_PROVIDER", "anthropic")
	t.Setenv("PLEADMD_LLM_TIMEOUT_SECS", "15")
	t.Setenv("PLEADMD_STORE_BACKEND", "SQLite")
	t.Setenv("PLEADMD_CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("PLEADMD_UPLOAD_MAX_FILE_SIZE_MB", "25")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "anthropic", cfg.LLM.Provider)
	assert.Equal(t, 15*time.Second, cfg.LLM.Timeout())
	assert.Equal(t, "sqlite", cfg.Store.Backend)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, int64(25*1024*1024), cfg.Upload.MaxFileSizeBytes())
}

func TestLoad_PortFromPlatformEnv(t *testing.T) {
	t.Setenv("PORT", "9090")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Port)
}

func TestLoad_RejectsNonPositiveUploadLimit(t *testing.T) {
	t.Setenv("PLEADMD_UPLOAD_MAX_FILE_SIZE_MB", "0")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLLMConfig_TimeoutFallback(t *testing.T) {
	c := config.LLMConfig{}
	assert.Equal(t, 60*time.Second, c.Timeout())
}

func TestDBConfig_DSN(t *testing.T) {
	d := config.DBConfig{User: "u", Password: "p", Host: "h", Port: 5432, Name: "n", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p@h:5432/n?sslmode=disable", d.DSN())
}
