package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "providers.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadProviderBootstrapConfig(t *testing.T) {
	path := writeConfigFile(t, `
providers:
  - name: OpenAI
    base_url: https://gateway.example.com/
    pricing_page_url: https://platform.openai.com/docs/pricing
  - name: anthropic
    enabled: false
  - name: google
`)

	cfg, err := LoadProviderBootstrapConfig(path)
	require.NoError(t, err)

	entries := cfg.Providers()
	require.Len(t, entries, 2)

	assert.Equal(t, "openai", entries[0].Name)
	// Trailing slash trimmed, name lower-cased.
	assert.Equal(t, "https://gateway.example.com", entries[0].BaseURL)
	assert.Equal(t, "google", entries[1].Name)
}

func TestLoadProviderBootstrapConfigErrors(t *testing.T) {
	_, err := LoadProviderBootstrapConfig("")
	assert.Error(t, err)

	_, err = LoadProviderBootstrapConfig(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)

	path := writeConfigFile(t, "providers: []\n")
	_, err = LoadProviderBootstrapConfig(path)
	assert.Error(t, err)

	path = writeConfigFile(t, `
providers:
  - name: openai
    enabled: false
`)
	_, err = LoadProviderBootstrapConfig(path)
	assert.Error(t, err, "config enabling no providers is invalid")

	path = writeConfigFile(t, `
providers:
  - base_url: https://example.com
`)
	_, err = LoadProviderBootstrapConfig(path)
	assert.Error(t, err, "name is required")
}
