package sources

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-api/internal/config"
)

func bootstrapConfig(t *testing.T, yaml string) *config.ProviderBootstrapConfig {
	t.Helper()
	path := filepath.Join(t.TempDir(), "providers.yml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))
	bootstrap, err := config.LoadProviderBootstrapConfig(path)
	require.NoError(t, err)
	return bootstrap
}

func TestBuildRoutesLiveSourcesThroughBaseURLOverrides(t *testing.T) {
	openaiSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/models", r.URL.Path)
		fmt.Fprint(w, `{"object":"list","data":[{"id":"gpt-test","object":"model","created":1715367049,"owned_by":"openai"}]}`)
	}))
	defer openaiSrv.Close()

	anthropicSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/models", r.URL.Path)
		require.Equal(t, "ak-test", r.Header.Get("x-api-key"))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"data":[{"id":"claude-test","display_name":"Claude Test"}],"has_more":false}`)
	}))
	defer anthropicSrv.Close()

	geminiSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1beta/models", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"models":[{"name":"models/gemini-test","displayName":"Gemini Test"}]}`)
	}))
	defer geminiSrv.Close()

	cfg := &config.Config{
		OpenAIAPIKey:    "sk-test",
		AnthropicAPIKey: "ak-test",
		GeminiAPIKey:    "gk-test",
		HTTPTimeout:     5 * time.Second,
		ProviderBootstrap: bootstrapConfig(t, fmt.Sprintf(`
providers:
  - name: openai
    base_url: %s
  - name: anthropic
    base_url: %s
  - name: google
    base_url: %s
`, openaiSrv.URL, anthropicSrv.URL, geminiSrv.URL)),
	}

	built := Build(cfg)
	require.Len(t, built, 3)

	wantIDs := map[string]string{
		"openai":    "gpt-test",
		"anthropic": "claude-test",
		"google":    "gemini-test",
	}
	for _, ps := range built {
		require.NotNil(t, ps.Live, ps.Provider)
		require.NotNil(t, ps.Fallback, ps.Provider)
		assert.NotEmpty(t, ps.Enrichment, ps.Provider)

		records, err := ps.Live.Fetch(context.Background())
		require.NoError(t, err, ps.Provider)
		assert.Contains(t, records, wantIDs[ps.Provider], ps.Provider)
	}
}

func TestBuildWithoutCredentialsDisablesLiveSources(t *testing.T) {
	built := Build(&config.Config{HTTPTimeout: 5 * time.Second})
	require.Len(t, built, 3)
	for _, ps := range built {
		assert.Nil(t, ps.Live, ps.Provider)
		assert.NotNil(t, ps.Fallback, ps.Provider)
	}
}
