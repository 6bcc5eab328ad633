package catalog

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-api/internal/utils/ptr"
)

func TestMergeLaterPartialWins(t *testing.T) {
	now := time.Now().UTC()

	m := Merge("gpt-5.2", []PartialRecord{
		{
			Name:          ptr.ToString("GPT-5.2 (fallback)"),
			ContextWindow: ptr.ToInt(128000),
		},
		{
			Name:          ptr.ToString("GPT-5.2"),
			ContextWindow: ptr.ToInt(400000),
		},
	}, now)

	assert.Equal(t, "gpt-5.2", m.ID)
	assert.Equal(t, "GPT-5.2", m.Name)
	require.NotNil(t, m.ContextWindow)
	assert.Equal(t, 400000, *m.ContextWindow)
	assert.Equal(t, now, m.ScrapedAt)
}

func TestMergeAbsentFieldKeepsEarlierValue(t *testing.T) {
	m := Merge("gpt-5.2", []PartialRecord{
		{
			Name:            ptr.ToString("GPT-5.2"),
			Description:     ptr.ToString("Flagship model"),
			MaxOutputTokens: ptr.ToInt(128000),
		},
		{
			// Says nothing about name, description or output limit.
			ContextWindow: ptr.ToInt(400000),
		},
	}, time.Now())

	assert.Equal(t, "GPT-5.2", m.Name)
	assert.Equal(t, "Flagship model", m.Description)
	require.NotNil(t, m.MaxOutputTokens)
	assert.Equal(t, 128000, *m.MaxOutputTokens)
}

func TestMergeFalsyValueOverwrites(t *testing.T) {
	m := Merge("gpt-4-0314", []PartialRecord{
		{
			Deprecated: ptr.ToBool(true),
			Capabilities: CapabilityHints{
				Vision: ptr.ToBool(true),
			},
		},
		{
			// Present-and-false beats earlier true; this is not absence.
			Deprecated: ptr.ToBool(false),
			Capabilities: CapabilityHints{
				Vision: ptr.ToBool(false),
			},
		},
	}, time.Now())

	assert.False(t, m.Deprecated)
	assert.False(t, m.Capabilities.Vision)
}

func TestMergeEmptyStringOverwrites(t *testing.T) {
	m := Merge("gpt-4o", []PartialRecord{
		{Description: ptr.ToString("old description")},
		{Description: ptr.ToString("")},
	}, time.Now())

	assert.Empty(t, m.Description)
}

func TestMergePriceFieldsIndependent(t *testing.T) {
	m := Merge("gpt-5.2", []PartialRecord{
		{
			Pricing: PricingHints{
				InputPer1M:  ptr.ToDecimal(1.00),
				OutputPer1M: ptr.ToDecimal(8.00),
			},
		},
		{
			// Supplies only the input price; the output price must survive.
			Pricing: PricingHints{
				InputPer1M: ptr.ToDecimal(1.75),
			},
		},
	}, time.Now())

	require.NotNil(t, m.Pricing.InputPer1M)
	require.NotNil(t, m.Pricing.OutputPer1M)
	assert.True(t, m.Pricing.InputPer1M.Equal(decimal.NewFromFloat(1.75)))
	assert.True(t, m.Pricing.OutputPer1M.Equal(decimal.NewFromFloat(8.00)))
	assert.Nil(t, m.Pricing.CachedInputPer1M)
}

func TestMergeEndpointsNilVersusEmpty(t *testing.T) {
	m := Merge("tts-1", []PartialRecord{
		{Endpoints: []string{"/v1/audio/speech"}},
		{Endpoints: nil},
	}, time.Now())
	assert.Equal(t, []string{"/v1/audio/speech"}, m.Endpoints)

	m = Merge("tts-1", []PartialRecord{
		{Endpoints: []string{"/v1/audio/speech"}},
		{Endpoints: []string{}},
	}, time.Now())
	assert.NotNil(t, m.Endpoints)
	assert.Empty(t, m.Endpoints)
}

func TestMergeInfersFamilyOnlyWhenAbsent(t *testing.T) {
	m := Merge("gpt-4o-mini", nil, time.Now())
	assert.Equal(t, "gpt-4o", m.Family)

	m = Merge("gpt-4o-mini", []PartialRecord{
		{Family: ptr.ToString("custom-family")},
	}, time.Now())
	assert.Equal(t, "custom-family", m.Family)
}

func TestMergeNoPartialsYieldsDefaults(t *testing.T) {
	now := time.Now().UTC()
	m := Merge("unknown-model-x", nil, now)

	assert.Equal(t, "unknown-model-x", m.ID)
	assert.Empty(t, m.Name)
	assert.Empty(t, m.Family)
	assert.Nil(t, m.ContextWindow)
	assert.Nil(t, m.Pricing.InputPer1M)
	assert.False(t, m.Deprecated)
	assert.Equal(t, Capabilities{}, m.Capabilities)
	assert.Equal(t, now, m.ScrapedAt)
}
