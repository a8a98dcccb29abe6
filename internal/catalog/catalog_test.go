package catalog_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/multimind/internal/catalog"
	"github.com/davidbz/multimind/internal/domain"
)

func TestLoad_EmbeddedDefault(t *testing.T) {
	c, err := catalog.Load(&catalog.Config{})
	require.NoError(t, err)

	models := c.List(context.Background())
	ids := make([]string, 0, len(models))
	for _, m := range models {
		ids = append(ids, m.ID)
	}

	require.Equal(t, []string{
		"gemini-pro", "gemini-flash",
		"deepseek-zero", "deepseek-chat",
		"qwen-vl", "qwen-plus", "qwen-max",
	}, ids)
}

func TestCatalog_Lookup(t *testing.T) {
	c, err := catalog.Load(nil)
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("should resolve a known model", func(t *testing.T) {
		m, lookupErr := c.Lookup(ctx, "deepseek-chat")
		require.NoError(t, lookupErr)
		require.Equal(t, "DeepSeek Chat V3", m.Name)
		require.Equal(t, domain.ProviderOpenRouter, m.Provider)
		require.Equal(t, "deepseek/deepseek-chat-v3-0324", m.UpstreamModelID)
		require.False(t, m.SupportsImage)
	})

	t.Run("should fail with ModelNotFound for unknown id", func(t *testing.T) {
		_, lookupErr := c.Lookup(ctx, "gpt-5")
		require.ErrorIs(t, lookupErr, domain.ErrModelNotFound)
		require.Contains(t, lookupErr.Error(), "gpt-5")
	})
}

func TestCatalog_ListIsACopy(t *testing.T) {
	c, err := catalog.Load(nil)
	require.NoError(t, err)
	ctx := context.Background()

	models := c.List(ctx)
	models[0].Name = "mutated"

	m, err := c.Lookup(ctx, models[0].ID)
	require.NoError(t, err)
	require.Equal(t, "Gemini 2.5 Pro", m.Name)
}

func TestParse_Validation(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "empty catalog",
			yaml:    "models: []",
			wantErr: "model catalog is empty",
		},
		{
			name: "duplicate id",
			yaml: `models:
  - {id: a, provider: google, upstream_model: x}
  - {id: a, provider: alibaba, upstream_model: y}`,
			wantErr: "registered twice",
		},
		{
			name:    "unknown provider",
			yaml:    `models: [{id: a, provider: anthropic, upstream_model: x}]`,
			wantErr: "unknown provider",
		},
		{
			name:    "missing upstream model",
			yaml:    `models: [{id: a, provider: google}]`,
			wantErr: "no upstream model",
		},
		{
			name:    "invalid yaml",
			yaml:    "models: [",
			wantErr: "failed to parse model catalog",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := catalog.Parse([]byte(tt.yaml))
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "models.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`models:
  - id: local
    provider: openrouter
    upstream_model: meta/llama
`), 0o600))

	c, err := catalog.Load(&catalog.Config{File: path})
	require.NoError(t, err)

	m, err := c.Lookup(context.Background(), "local")
	require.NoError(t, err)
	require.Equal(t, "local", m.Name, "name defaults to id")

	_, err = catalog.Load(&catalog.Config{File: filepath.Join(t.TempDir(), "missing.yaml")})
	require.Error(t, err)
}
