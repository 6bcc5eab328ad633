package sources

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-api/internal/domain/catalog"
)

func TestStaticSourceOpenAI(t *testing.T) {
	src, err := NewStaticSource("openai")
	require.NoError(t, err)
	assert.Equal(t, catalog.SourceStaticFallback, src.Kind())

	records, err := src.Fetch(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, len(openaiStaticTable))

	rec, ok := records["gpt-5.2"]
	require.True(t, ok)
	require.NotNil(t, rec.Name)
	assert.Equal(t, "GPT-5.2", *rec.Name)
	require.NotNil(t, rec.Family)
	assert.Equal(t, "gpt-5.2", *rec.Family)
	require.NotNil(t, rec.ContextWindow)
	assert.Equal(t, 400_000, *rec.ContextWindow)
	require.NotNil(t, rec.MaxOutputTokens)
	assert.Equal(t, 128_000, *rec.MaxOutputTokens)
	require.NotNil(t, rec.Pricing.InputPer1M)
	assert.True(t, rec.Pricing.InputPer1M.Equal(decimal.NewFromFloat(1.75)))
	require.NotNil(t, rec.Pricing.CachedInputPer1M)
	assert.True(t, rec.Pricing.CachedInputPer1M.Equal(decimal.NewFromFloat(0.175)))
	require.NotNil(t, rec.Capabilities.Reasoning)
	assert.True(t, *rec.Capabilities.Reasoning)
	// Flags the table does not claim are absent, not false.
	assert.Nil(t, rec.Capabilities.FineTuning)

	deprecated, ok := records["gpt-3.5-turbo"]
	require.True(t, ok)
	require.NotNil(t, deprecated.Deprecated)
	assert.True(t, *deprecated.Deprecated)
}

func TestStaticSourceAllProviders(t *testing.T) {
	for _, provider := range []string{"openai", "anthropic", "google"} {
		src, err := NewStaticSource(provider)
		require.NoError(t, err, provider)

		records, err := src.Fetch(context.Background())
		require.NoError(t, err, provider)
		assert.NotEmpty(t, records, provider)
	}
}

func TestStaticSourceUnknownProvider(t *testing.T) {
	_, err := NewStaticSource("mistral")
	assert.Error(t, err)
}

func TestStaticEntriesOmitUnknownNumbers(t *testing.T) {
	records, err := mustStatic(t, "openai").Fetch(context.Background())
	require.NoError(t, err)

	// gpt-oss has no known max output tokens or cached input price.
	rec := records["gpt-oss-120b"]
	assert.Nil(t, rec.MaxOutputTokens)
	assert.Nil(t, rec.Pricing.CachedInputPer1M)
	require.NotNil(t, rec.Pricing.InputPer1M)
}

func mustStatic(t *testing.T, provider string) *StaticSource {
	t.Helper()
	src, err := NewStaticSource(provider)
	require.NoError(t, err)
	return src
}
