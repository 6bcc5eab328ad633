package sources

import (
	"catalog-api/internal/config"
	"catalog-api/internal/domain/catalog"
	"catalog-api/internal/infrastructure/httpclients"
	"catalog-api/internal/infrastructure/logger"
)

// Default endpoints per provider. The bootstrap config file can override any
// of these per provider.
const (
	openAIBaseURL     = "https://api.openai.com"
	openAIDocsURL     = "https://developers.openai.com/api/docs/models"
	openAICompareURL  = "https://developers.openai.com/api/docs/models/compare"
	openAIPricingURL  = "https://platform.openai.com/docs/pricing"
	anthropicBaseURL  = "https://api.anthropic.com"
	anthropicPriceURL = "https://www.anthropic.com/pricing"
	geminiBaseURL     = "https://generativelanguage.googleapis.com"
	geminiPriceURL    = "https://ai.google.dev/gemini-api/docs/pricing"
)

type providerDefaults struct {
	baseURL    string
	docsURL    string
	pricingURL string
	normalize  func(string) string
}

var defaults = map[string]providerDefaults{
	"openai": {
		baseURL:    openAIBaseURL,
		docsURL:    openAIDocsURL,
		pricingURL: openAIPricingURL,
		normalize:  NormalizeOpenAIPricingName,
	},
	"anthropic": {
		baseURL:    anthropicBaseURL,
		pricingURL: anthropicPriceURL,
		normalize:  NormalizeAnthropicPricingName,
	},
	"google": {
		baseURL:    geminiBaseURL,
		pricingURL: geminiPriceURL,
		normalize:  NormalizeGeminiPricingName,
	},
}

// Build assembles the full source set for every configured provider.
// Providers without a credential get no live source; their id universe comes
// from the static fallback table.
func Build(cfg *config.Config) []catalog.ProviderSources {
	log := logger.GetLogger()

	entries := bootstrapEntries(cfg)
	result := make([]catalog.ProviderSources, 0, len(entries))

	for _, entry := range entries {
		def, ok := defaults[entry.Name]
		if !ok {
			log.Warn().Str("provider", entry.Name).Msg("unknown provider in bootstrap config, skipping")
			continue
		}

		baseURL := def.baseURL
		if entry.BaseURL != "" {
			baseURL = entry.BaseURL
		}
		pricingURL := def.pricingURL
		if entry.PricingPageURL != "" {
			pricingURL = entry.PricingPageURL
		}
		docsURL := def.docsURL
		if entry.DocsPageURL != "" {
			docsURL = entry.DocsPageURL
		}

		client := httpclients.NewClient(entry.Name+"-scraper", cfg.HTTPTimeout)

		ps := catalog.ProviderSources{Provider: entry.Name}

		static, err := NewStaticSource(entry.Name)
		if err != nil {
			log.Warn().Err(err).Str("provider", entry.Name).Msg("no static fallback")
		} else {
			ps.Fallback = static
		}

		if pricingURL != "" {
			ps.Enrichment = append(ps.Enrichment,
				NewPricingPageSource(client, entry.Name, pricingURL, def.normalize))
		}
		if entry.Name == "openai" && docsURL != "" {
			ps.Enrichment = append(ps.Enrichment,
				NewOpenAIDocsSource(client, docsURL, openAICompareURL))
		}

		apiKey := cfg.APIKeyFor(entry.Name)
		if apiKey == "" {
			log.Info().Str("provider", entry.Name).Msg("no API key configured, live source disabled")
		} else {
			switch entry.Name {
			case "openai":
				ps.Live = NewOpenAILiveSource(apiKey, baseURL, cfg.HTTPTimeout)
			case "anthropic":
				ps.Live = NewAnthropicLiveSource(client, baseURL, apiKey)
			case "google":
				ps.Live = NewGeminiLiveSource(client, baseURL, apiKey)
			}
		}

		result = append(result, ps)
	}
	return result
}

func bootstrapEntries(cfg *config.Config) []config.ProviderBootstrapEntry {
	if entries := cfg.ProviderBootstrap.Providers(); len(entries) > 0 {
		return entries
	}
	return []config.ProviderBootstrapEntry{
		{Name: "openai", Enabled: true},
		{Name: "anthropic", Enabled: true},
		{Name: "google", Enabled: true},
	}
}
