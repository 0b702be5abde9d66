package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	Log    LogConfig
	CORS   CORSConfig
	Upload UploadConfig
	LLM    LLMConfig
	Store  StoreConfig
	S3     S3Config
	DB     DBConfig
	SQLite SQLiteConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// UploadConfig holds limits applied to uploaded documents.
type UploadConfig struct {
	MaxFileSizeMB int64 `mapstructure:"max_file_size_mb"`
}

// MaxFileSizeBytes returns the upload ceiling in bytes.
func (u *UploadConfig) MaxFileSizeBytes() int64 {
	return u.MaxFileSizeMB * 1024 * 1024
}

// LLMConfig holds the default conversion settings and the per-call deadline.
type LLMConfig struct {
	Provider    string  `mapstructure:"provider"`
	Model       string  `mapstructure:"model"`
	APIKey      string  `mapstructure:"api_key"`
	Temperature float64 `mapstructure:"temperature"`
	MaxTokens   int     `mapstructure:"max_tokens"`
	UseExamples bool    `mapstructure:"use_examples"`
	BaseURL     string  `mapstructure:"base_url"`
	TimeoutSecs int     `mapstructure:"timeout_secs"`
}

// Timeout returns the per-call LLM deadline, defaulting to 60s.
func (l *LLMConfig) Timeout() time.Duration {
	if l.TimeoutSecs <= 0 {
		return 60 * time.Second
	}
	return time.Duration(l.TimeoutSecs) * time.Second
}

// StoreConfig selects the key-value backend used to persist settings and examples.
type StoreConfig struct {
	Backend string `mapstructure:"backend"`
	Dir     string `mapstructure:"dir"`
	Prefix  string `mapstructure:"prefix"`
}

// S3Config holds AWS S3 settings.
type S3Config struct {
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// SQLiteConfig holds settings for the embedded SQLite store.
type SQLiteConfig struct {
	Path string `mapstructure:"path"`
}

// Load reads configuration from environment variables with the PLEADMD_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("PLEADMD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "120s")
	v.SetDefault("server.environment", "development")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:5173,http://127.0.0.1:5173")

	// Upload defaults
	v.SetDefault("upload.max_file_size_mb", 10)

	// LLM defaults
	v.SetDefault("llm.provider", "openai")
	v.SetDefault("llm.model", "gpt-4o")
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.temperature", 0.3)
	v.SetDefault("llm.max_tokens", 4000)
	v.SetDefault("llm.use_examples", true)
	v.SetDefault("llm.base_url", "")
	v.SetDefault("llm.timeout_secs", 60)

	// Store defaults
	v.SetDefault("store.backend", "file")
	v.SetDefault("store.dir", ".pleadmd")
	v.SetDefault("store.prefix", "pleadmd/")

	// S3 defaults
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.bucket", "pleadmd-settings")
	v.SetDefault("s3.endpoint", "")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "pleadmd")
	v.SetDefault("db.password", "pleadmd_secret")
	v.SetDefault("db.name", "pleadmd_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 5)
	v.SetDefault("db.max_idle", 2)

	// SQLite defaults
	v.SetDefault("sqlite.path", ".pleadmd/pleadmd.db")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":             "PLEADMD_SERVER_PORT",
		"server.read_timeout":     "PLEADMD_SERVER_READ_TIMEOUT",
		"server.write_timeout":    "PLEADMD_SERVER_WRITE_TIMEOUT",
		"server.environment":      "PLEADMD_SERVER_ENVIRONMENT",
		"log.level":               "PLEADMD_LOG_LEVEL",
		"log.format":              "PLEADMD_LOG_FORMAT",
		"cors.allowed_origins":    "PLEADMD_CORS_ALLOWED_ORIGINS",
		"upload.max_file_size_mb": "PLEADMD_UPLOAD_MAX_FILE_SIZE_MB",
		"llm.provider":            "PLEADMD_LLM_PROVIDER",
		"llm.model":               "PLEADMD_LLM_MODEL",
		"llm.api_key":             "PLEADMD_LLM_API_KEY",
		"llm.temperature":         "PLEADMD_LLM_TEMPERATURE",
		"llm.max_tokens":          "PLEADMD_LLM_MAX_TOKENS",
		"llm.use_examples":        "PLEADMD_LLM_USE_EXAMPLES",
		"llm.base_url":            "PLEADMD_LLM_BASE_URL",
		"llm.timeout_secs":        "PLEADMD_LLM_TIMEOUT_SECS",
		"store.backend":           "PLEADMD_STORE_BACKEND",
		"store.dir":               "PLEADMD_STORE_DIR",
		"store.prefix":            "PLEADMD_STORE_PREFIX",
		"s3.region":               "PLEADMD_S3_REGION",
		"s3.bucket":               "PLEADMD_S3_BUCKET",
		"s3.endpoint":             "PLEADMD_S3_ENDPOINT",
		"s3.access_key":           "PLEADMD_S3_ACCESS_KEY",
		"s3.secret_key":           "PLEADMD_S3_SECRET_KEY",
		"db.host":                 "PLEADMD_DB_HOST",
		"db.port":                 "PLEADMD_DB_PORT",
		"db.user":                 "PLEADMD_DB_USER",
		"db.password":             "PLEADMD_DB_PASSWORD",
		"db.name":                 "PLEADMD_DB_NAME",
		"db.sslmode":              "PLEADMD_DB_SSLMODE",
		"db.max_open":             "PLEADMD_DB_MAX_OPEN",
		"db.max_idle":             "PLEADMD_DB_MAX_IDLE",
		"sqlite.path":             "PLEADMD_SQLITE_PATH",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if PLEADMD_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("PLEADMD_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{AllowedOrigins: corsOrigins}

	cfg.Upload = UploadConfig{
		MaxFileSizeMB: v.GetInt64("upload.max_file_size_mb"),
	}
	if cfg.Upload.MaxFileSizeMB <= 0 {
		return nil, fmt.Errorf("upload.max_file_size_mb must be positive, got %d", cfg.Upload.MaxFileSizeMB)
	}

	cfg.LLM = LLMConfig{
		Provider:    v.GetString("llm.provider"),
		Model:       v.GetString("llm.model"),
		APIKey:      v.GetString("llm.api_key"),
		Temperature: v.GetFloat64("llm.temperature"),
		MaxTokens:   v.GetInt("llm.max_tokens"),
		UseExamples: v.GetBool("llm.use_examples"),
		BaseURL:     v.GetString("llm.base_url"),
		TimeoutSecs: v.GetInt("llm.timeout_secs"),
	}

	cfg.Store = StoreConfig{
		Backend: strings.ToLower(v.GetString("store.backend")),
		Dir:     v.GetString("store.dir"),
		Prefix:  v.GetString("store.prefix"),
	}
	cfg.S3 = S3Config{
		Region:    v.GetString("s3.region"),
		Bucket:    v.GetString("s3.bucket"),
		Endpoint:  v.GetString("s3.endpoint"),
		AccessKey: v.GetString("s3.access_key"),
		SecretKey: v.GetString("s3.secret_key"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.SQLite = SQLiteConfig{
		Path: v.GetString("sqlite.path"),
	}

	return cfg, nil
}
