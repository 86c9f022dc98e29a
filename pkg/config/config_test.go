package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateHome points the loader at a throwaway config directory and
// clears the env vars the loader reads.
func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, v := range []string{
		"OPENROUTER_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY",
		"GOOGLE_API_KEY", "SERPER_API_KEY", "STENCIL_DB_PATH",
	} {
		t.Setenv(v, "")
	}
	return home
}

func writeConfigFile(t *testing.T, home, content string) {
	t.Helper()
	dir := filepath.Join(home, ".stencil")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644))
}

func TestLoadDefaults(t *testing.T) {
	home := isolateHome(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".stencil"), cfg.ConfigDir)
	assert.Equal(t, filepath.Join(home, ".stencil", "stencil.db"), cfg.DBPath)
	assert.Equal(t, 2000, cfg.Generation.MaxTokens)
	assert.Equal(t, 0.7, cfg.Generation.Temperature)
	assert.Equal(t, 0.9, cfg.Generation.TopP)
	assert.Empty(t, cfg.OpenRouterAPIKey)
}

func TestLoadFromFile(t *testing.T) {
	home := isolateHome(t)
	writeConfigFile(t, home, `
api_keys:
  openrouter: file-or-key
  serper: file-serper-key
db_path: /tmp/custom.db
generation:
  max_tokens: 500
  temperature: 0.2
`)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "file-or-key", cfg.OpenRouterAPIKey)
	assert.Equal(t, "file-serper-key", cfg.SerperAPIKey)
	assert.Equal(t, "/tmp/custom.db", cfg.DBPath)
	assert.Equal(t, 500, cfg.Generation.MaxTokens)
	assert.Equal(t, 0.2, cfg.Generation.Temperature)
	assert.Equal(t, 0.9, cfg.Generation.TopP, "unset sampling values fall back to defaults")
}

func TestEnvOverridesFile(t *testing.T) {
	home := isolateHome(t)
	writeConfigFile(t, home, `
api_keys:
  openrouter: file-key
db_path: /tmp/file.db
`)
	t.Setenv("OPENROUTER_API_KEY", "env-key")
	t.Setenv("STENCIL_DB_PATH", "/tmp/env.db")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.OpenRouterAPIKey)
	assert.Equal(t, "/tmp/env.db", cfg.DBPath)
}

func TestLoadIgnoresMalformedFile(t *testing.T) {
	home := isolateHome(t)
	writeConfigFile(t, home, "api_keys: [not: a: mapping")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.OpenRouterAPIKey)
}

func TestHasProvider(t *testing.T) {
	cfg := &Config{
		OpenRouterAPIKey: "a",
		GoogleAPIKey:     "b",
	}

	assert.True(t, cfg.HasProvider("openrouter"))
	assert.True(t, cfg.HasProvider("google"))
	assert.False(t, cfg.HasProvider("openai"))
	assert.False(t, cfg.HasProvider("anthropic"))
	assert.False(t, cfg.HasProvider("serper"))
	assert.False(t, cfg.HasProvider("unknown"))
}
