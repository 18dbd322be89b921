package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/voxsh/internal/domain"
)

func TestLoadWritesDefaultsOnFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	loader := NewFileLoader(path)

	cfg, err := loader.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultMaxTokens, cfg.Assistant.MaxTokens)
	assert.Equal(t, "OPENAI_API_KEY", cfg.Assistant.AuthEnvVar)
	assert.Equal(t, "pip install openaicli", cfg.Execution.InstallCommand)
	assert.Equal(t, "https://www.google.com", cfg.Browser.DefaultURL)
	assert.Equal(t, "Sent from AI terminal", cfg.Mail.DefaultBody)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(domain.SecureFilePermissions), info.Mode().Perm())
}

func TestLoadHydratesPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := []byte(`
assistant:
  model_id: gpt-4o
  max_tokens: 300
speech:
  enabled: false
browser:
  default_url: https://duckduckgo.com
`)
	require.NoError(t, os.WriteFile(path, raw, 0o600))

	cfg, err := NewFileLoader(path).Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "gpt-4o", cfg.Assistant.ModelID)
	assert.Equal(t, 300, cfg.Assistant.MaxTokens)
	assert.Equal(t, domain.DefaultEndpoint, cfg.Assistant.Endpoint)
	assert.False(t, cfg.Speech.Enabled)
	assert.Equal(t, domain.DefaultSpeechCommand, cfg.Speech.Command)
	assert.Equal(t, "https://duckduckgo.com", cfg.Browser.DefaultURL)
	assert.Equal(t, domain.DefaultSendmailPath, cfg.Mail.SendmailPath)
}

func TestLoadRejectsInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("assistant: [unclosed"), 0o600))

	_, err := NewFileLoader(path).Load(context.Background())
	assert.Error(t, err)
}

func TestPathHonorsEnvOverride(t *testing.T) {
	custom := filepath.Join(t.TempDir(), "custom.yaml")
	t.Setenv("VOXSH_CONFIG", custom)

	assert.Equal(t, custom, NewFileLoader("").Path())
	assert.Equal(t, "/etc/voxsh.yaml", NewFileLoader("/etc/voxsh.yaml").Path())
}
