package sources

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const openaiPricingHTML = `
<html><body>
<table>
  <tr><th>Model</th><th>Input</th><th>Cached input</th><th>Output</th></tr>
  <tr><td>gpt-5.2</td><td>$1.75 / 1M tokens</td><td>$0.175</td><td>$14.00</td></tr>
  <tr><td>gpt-4o-mini</td><td>$0.15</td><td>n/a</td><td>$0.60</td></tr>
  <tr><td>some-free-model</td><td>free</td><td>-</td><td>free</td></tr>
</table>
</body></html>`

func TestParsePricingTablesLabelledColumns(t *testing.T) {
	records := parsePricingTables(openaiPricingHTML, NormalizeOpenAIPricingName)

	require.Len(t, records, 2)

	rec := records["gpt-5.2"]
	require.NotNil(t, rec.Pricing.InputPer1M)
	assert.True(t, rec.Pricing.InputPer1M.Equal(decimal.NewFromFloat(1.75)))
	require.NotNil(t, rec.Pricing.CachedInputPer1M)
	assert.True(t, rec.Pricing.CachedInputPer1M.Equal(decimal.NewFromFloat(0.175)))
	require.NotNil(t, rec.Pricing.OutputPer1M)
	assert.True(t, rec.Pricing.OutputPer1M.Equal(decimal.NewFromFloat(14.00)))

	mini := records["gpt-4o-mini"]
	assert.Nil(t, mini.Pricing.CachedInputPer1M)
	require.NotNil(t, mini.Pricing.OutputPer1M)
}

const anthropicPricingHTML = `
<html><body>
<table>
  <tr><th>Model</th><th>Price</th><th>Price</th></tr>
  <tr><td>Claude Opus 4.5</td><td>$5 / MTok</td><td>$25 / MTok</td></tr>
  <tr><td>Unrecognized Product</td><td>$1</td><td>$2</td></tr>
</table>
</body></html>`

func TestParsePricingTablesPositionalColumns(t *testing.T) {
	records := parsePricingTables(anthropicPricingHTML, NormalizeAnthropicPricingName)

	require.Len(t, records, 1)
	rec := records["claude-opus-4-5"]
	require.NotNil(t, rec.Pricing.InputPer1M)
	assert.True(t, rec.Pricing.InputPer1M.Equal(decimal.NewFromInt(5)))
	require.NotNil(t, rec.Pricing.OutputPer1M)
	assert.True(t, rec.Pricing.OutputPer1M.Equal(decimal.NewFromInt(25)))
}

func TestExtractPrice(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"$2.50 / 1M tokens", "2.5"},
		{"$1,048.00", "1048"},
		{"0.40", "0.4"},
		{"free", ""},
		{"n/a", ""},
		{"-", ""},
		{"", ""},
		{"contact sales", ""},
	}

	for _, tt := range tests {
		got := extractPrice(tt.text)
		if tt.want == "" {
			assert.Nil(t, got, "text %q", tt.text)
			continue
		}
		require.NotNil(t, got, "text %q", tt.text)
		want, err := decimal.NewFromString(tt.want)
		require.NoError(t, err)
		assert.True(t, got.Equal(want), "text %q: got %s", tt.text, got)
	}
}

func TestNormalizeAnthropicPricingName(t *testing.T) {
	assert.Equal(t, "claude-opus-4-5", NormalizeAnthropicPricingName("Claude Opus 4.5"))
	assert.Equal(t, "claude-sonnet-4-5-20250929", NormalizeAnthropicPricingName("Claude Sonnet 4.5 (latest)"))
	assert.Equal(t, "claude-3-opus-20240229", NormalizeAnthropicPricingName("Claude 3 Opus"))
	assert.Equal(t, "claude-x-custom", NormalizeAnthropicPricingName("claude-x-custom"))
	assert.Empty(t, NormalizeAnthropicPricingName("Some Other Product"))
}

func TestNormalizeGeminiPricingName(t *testing.T) {
	assert.Equal(t, "gemini-2.5-flash-lite", NormalizeGeminiPricingName("Gemini 2.5 Flash-Lite"))
	assert.Equal(t, "gemini-2.5-flash", NormalizeGeminiPricingName("Gemini 2.5 Flash"))
	assert.Equal(t, "gemini-2.5-pro", NormalizeGeminiPricingName("Gemini 2.5 Pro Preview"))
	assert.Empty(t, NormalizeGeminiPricingName("Imagen 3"))
}
