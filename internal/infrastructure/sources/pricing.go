package sources

import (
	"context"
	"strings"

	"resty.dev/v3"

	"catalog-api/internal/domain/catalog"
	"catalog-api/internal/infrastructure/logger"
)

// PricingPageSource scrapes a vendor pricing page for per-token prices. The
// pages are plain HTML tables; one normalize function per vendor maps the
// display-name column back to a model id.
type PricingPageSource struct {
	client    *resty.Client
	provider  string
	url       string
	normalize func(string) string
}

func NewPricingPageSource(client *resty.Client, provider, url string, normalize func(string) string) *PricingPageSource {
	return &PricingPageSource{client: client, provider: provider, url: url, normalize: normalize}
}

func (s *PricingPageSource) Kind() catalog.SourceKind { return catalog.SourcePricingPage }

func (s *PricingPageSource) Fetch(ctx context.Context) (map[string]catalog.PartialRecord, error) {
	var body string
	err := withRetry(ctx, s.provider+"_pricing_page", func() error {
		resp, ferr := s.client.R().SetContext(ctx).Get(s.url)
		if ferr != nil {
			return ferr
		}
		if resp.IsError() {
			return newStatusError(resp.StatusCode(), s.url)
		}
		body = resp.String()
		return nil
	})
	if err != nil {
		return nil, err
	}

	records := parsePricingTables(body, s.normalize)
	log := logger.GetLogger()
	log.Info().
		Str("provider", s.provider).
		Int("models_priced", len(records)).
		Msg("pricing page scraped")
	return records, nil
}

// parsePricingTables reads every table on the page. Tables with labelled
// input/output columns are read by header; otherwise the first two dollar
// amounts in the row are taken as input and output prices.
func parsePricingTables(doc string, normalize func(string) string) map[string]catalog.PartialRecord {
	records := make(map[string]catalog.PartialRecord)

	for _, table := range parseTables(doc) {
		labelled := false
		for _, h := range table.headers {
			if h == "input" || h == "output" {
				labelled = true
				break
			}
		}

		for _, row := range table.rows {
			id := normalize(row[0])
			if id == "" {
				continue
			}

			var pricing catalog.PricingHints
			if labelled {
				pricing.InputPer1M = extractPrice(table.cell(row, "input"))
				pricing.OutputPer1M = extractPrice(table.cell(row, "output"))
				pricing.CachedInputPer1M = extractPrice(table.cell(row, "cached input"))
			} else {
				for _, cell := range row[1:] {
					price := extractPrice(cell)
					if price == nil {
						continue
					}
					if pricing.InputPer1M == nil {
						pricing.InputPer1M = price
					} else if pricing.OutputPer1M == nil {
						pricing.OutputPer1M = price
						break
					}
				}
			}

			if pricing.InputPer1M == nil && pricing.OutputPer1M == nil {
				continue
			}
			records[id] = catalog.PartialRecord{Pricing: pricing}
		}
	}
	return records
}

// NormalizeOpenAIPricingName maps the model column of OpenAI's pricing page
// to a model id; the page already uses ids.
func NormalizeOpenAIPricingName(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

var anthropicDisplayNames = map[string]string{
	"claude opus 4.6":   "claude-opus-4-6",
	"claude opus 4.5":   "claude-opus-4-5",
	"claude sonnet 4.5": "claude-sonnet-4-5-20250929",
	"claude sonnet 4":   "claude-sonnet-4-20250514",
	"claude haiku 4.5":  "claude-haiku-4-5-20251001",
	"claude haiku 3.5":  "claude-3-5-haiku-20241022",
	"claude 3.5 sonnet": "claude-3-5-sonnet-20241022",
	"claude 3 opus":     "claude-3-opus-20240229",
}

// NormalizeAnthropicPricingName maps marketing display names from the
// Anthropic pricing page back to model ids.
func NormalizeAnthropicPricingName(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	for displayName, id := range anthropicDisplayNames {
		if strings.Contains(text, displayName) {
			return id
		}
	}
	if strings.HasPrefix(text, "claude-") {
		return text
	}
	return ""
}

var geminiDisplayNames = map[string]string{
	"gemini 2.5 flash-lite": "gemini-2.5-flash-lite",
	"gemini 2.5 pro":        "gemini-2.5-pro",
	"gemini 2.5 flash":      "gemini-2.5-flash",
	"gemini 2.0 flash-lite": "gemini-2.0-flash-lite",
	"gemini 2.0 flash":      "gemini-2.0-flash",
	"gemini 1.5 pro":        "gemini-1.5-pro",
	"gemini 1.5 flash":      "gemini-1.5-flash",
}

// NormalizeGeminiPricingName maps display names from the Gemini pricing page
// back to model ids. The "-lite" entries are matched first since the plain
// names are their prefixes.
func NormalizeGeminiPricingName(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	for _, displayName := range []string{
		"gemini 2.5 flash-lite", "gemini 2.5 pro", "gemini 2.5 flash",
		"gemini 2.0 flash-lite", "gemini 2.0 flash",
		"gemini 1.5 pro", "gemini 1.5 flash",
	} {
		if strings.Contains(text, displayName) {
			return geminiDisplayNames[displayName]
		}
	}
	if strings.HasPrefix(text, "gemini-") {
		return text
	}
	return ""
}
