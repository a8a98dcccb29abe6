package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/multimind/internal/config"
)

func TestLoad(t *testing.T) {
	t.Run("should load config with defaults", func(t *testing.T) {
		// Clear environment
		os.Clearenv()

		cfg := config.Load()

		require.NotNil(t, cfg)

		require.Equal(t, 5000, cfg.Server.Port)
		require.Equal(t, 30, cfg.Server.ReadTimeout)
		require.Equal(t, 300, cfg.Server.WriteTimeout)
		require.Equal(t, int64(50<<20), cfg.Server.MaxBodyBytes)
		require.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
		require.Equal(t, "info", cfg.Log.Level)
		require.Empty(t, cfg.Catalog.File)

		require.Empty(t, cfg.Google.APIKey)
		require.Equal(t, "https://generativelanguage.googleapis.com/v1beta", cfg.Google.BaseURL)
		require.Equal(t, 2048, cfg.Google.MaxOutputTokens)

		require.Empty(t, cfg.OpenRouter.APIKey)
		require.Equal(t, "https://openrouter.ai/api/v1", cfg.OpenRouter.BaseURL)
		require.Equal(t, "MultiMind AI Chat App", cfg.OpenRouter.Title)

		require.Empty(t, cfg.Alibaba.APIKey)
		require.Equal(t, "https://dashscope.aliyuncs.com/api/v1", cfg.Alibaba.BaseURL)

		require.Equal(t, "localhost:6379", cfg.Redis.Addr)
		require.Equal(t, 5*time.Second, cfg.Relay.PersistTimeout)
	})

	t.Run("should load config from environment variables", func(t *testing.T) {
		// Set environment variables using t.Setenv for automatic cleanup
		t.Setenv("SERVER_PORT", "9000")
		t.Setenv("SERVER_WRITE_TIMEOUT", "0")
		t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:19006,https://app.example.com")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("MODELS_FILE", "/etc/multimind/models.yaml")
		t.Setenv("GOOGLE_API_KEY", "g-key")
		t.Setenv("OPENROUTER_API_KEY", "or-key")
		t.Setenv("OPENROUTER_TIMEOUT", "120")
		t.Setenv("ALIBABA_API_KEY", "ds-key")
		t.Setenv("ALIBABA_BASE_URL", "https://dashscope-intl.aliyuncs.com/api/v1")
		t.Setenv("REDIS_ADDR", "redis:6379")
		t.Setenv("REDIS_DB", "2")
		t.Setenv("SESSION_PERSIST_TIMEOUT", "2s")

		cfg := config.Load()

		require.NotNil(t, cfg)

		require.Equal(t, 9000, cfg.Server.Port)
		require.Equal(t, 0, cfg.Server.WriteTimeout)
		require.Equal(t, []string{"http://localhost:19006", "https://app.example.com"}, cfg.CORS.AllowedOrigins)
		require.Equal(t, "debug", cfg.Log.Level)
		require.Equal(t, "/etc/multimind/models.yaml", cfg.Catalog.File)
		require.Equal(t, "g-key", cfg.Google.APIKey)
		require.Equal(t, "or-key", cfg.OpenRouter.APIKey)
		require.Equal(t, 120, cfg.OpenRouter.Timeout)
		require.Equal(t, "ds-key", cfg.Alibaba.APIKey)
		require.Equal(t, "https://dashscope-intl.aliyuncs.com/api/v1", cfg.Alibaba.BaseURL)
		require.Equal(t, "redis:6379", cfg.Redis.Addr)
		require.Equal(t, 2, cfg.Redis.DB)
		require.Equal(t, 2*time.Second, cfg.Relay.PersistTimeout)
	})
}

func TestParseDependenciesConfig(t *testing.T) {
	os.Clearenv()
	cfg := config.Load()

	deps := config.ParseDependenciesConfig(cfg)

	require.Same(t, &cfg.Server, deps.Server)
	require.Same(t, &cfg.Google, deps.Google)
	require.Same(t, &cfg.Relay, deps.Relay)
}
