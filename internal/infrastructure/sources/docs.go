package sources

import (
	"context"
	"strings"

	"resty.dev/v3"

	"catalog-api/internal/domain/catalog"
	"catalog-api/internal/infrastructure/logger"
	"catalog-api/internal/utils/ptr"
)

// OpenAIDocsSource scrapes OpenAI's documentation pages for names,
// descriptions and token limits. The compare page is the richer of the two;
// the models list page only adds names and descriptions for ids the compare
// page missed.
type OpenAIDocsSource struct {
	client     *resty.Client
	modelsURL  string
	compareURL string
}

func NewOpenAIDocsSource(client *resty.Client, modelsURL, compareURL string) *OpenAIDocsSource {
	return &OpenAIDocsSource{client: client, modelsURL: modelsURL, compareURL: compareURL}
}

func (s *OpenAIDocsSource) Kind() catalog.SourceKind { return catalog.SourceDocsPage }

func (s *OpenAIDocsSource) Fetch(ctx context.Context) (map[string]catalog.PartialRecord, error) {
	log := logger.GetLogger()
	records := make(map[string]catalog.PartialRecord)

	compareBody, err := s.get(ctx, "openai_docs_compare", s.compareURL)
	if err != nil {
		log.Warn().Err(err).Msg("compare page scrape failed")
	} else {
		for id, rec := range parseComparePage(compareBody) {
			records[id] = rec
		}
	}

	modelsBody, err := s.get(ctx, "openai_docs_models", s.modelsURL)
	if err != nil {
		log.Warn().Err(err).Msg("models page scrape failed")
	} else {
		for id, rec := range parseModelsPage(modelsBody) {
			if existing, ok := records[id]; ok {
				// Only fill fields the compare page left empty.
				if existing.Name == nil {
					existing.Name = rec.Name
				}
				if existing.Description == nil {
					existing.Description = rec.Description
				}
				records[id] = existing
			} else {
				records[id] = rec
			}
		}
	}

	if len(records) == 0 && err != nil {
		return nil, err
	}
	log.Info().Int("models_enriched", len(records)).Msg("openai docs pages scraped")
	return records, nil
}

func (s *OpenAIDocsSource) get(ctx context.Context, op, url string) (string, error) {
	var body string
	err := withRetry(ctx, op, func() error {
		resp, ferr := s.client.R().SetContext(ctx).Get(url)
		if ferr != nil {
			return ferr
		}
		if resp.IsError() {
			return newStatusError(resp.StatusCode(), url)
		}
		body = resp.String()
		return nil
	})
	return body, err
}

// parseComparePage reads the comparison tables: one row per model with
// labelled columns for context window and output limits.
func parseComparePage(doc string) map[string]catalog.PartialRecord {
	records := make(map[string]catalog.PartialRecord)

	for _, table := range parseTables(doc) {
		idCol := ""
		for _, h := range table.headers {
			if h == "model" || h == "id" {
				idCol = h
				break
			}
		}
		if idCol == "" {
			continue
		}

		for _, row := range table.rows {
			id := strings.ToLower(strings.TrimSpace(table.cell(row, idCol)))
			if id == "" {
				continue
			}
			rec := catalog.PartialRecord{}
			if v := extractInt(table.cell(row, "context window")); v != nil {
				rec.ContextWindow = v
			}
			if v := extractInt(table.cell(row, "max output tokens")); v != nil {
				rec.MaxOutputTokens = v
			} else if v := extractInt(table.cell(row, "max output")); v != nil {
				rec.MaxOutputTokens = v
			}
			if cutoff := strings.TrimSpace(table.cell(row, "knowledge cutoff")); cutoff != "" {
				rec.KnowledgeCutoff = ptr.ToString(cutoff)
			}
			records[id] = rec
		}
	}
	return records
}

// parseModelsPage reads names and descriptions from the docs model list:
// headings that look like model names followed by a description paragraph.
func parseModelsPage(doc string) map[string]catalog.PartialRecord {
	records := make(map[string]catalog.PartialRecord)

	for _, pair := range headings(doc) {
		title, desc := pair[0], pair[1]
		lower := strings.ToLower(title)
		if !looksLikeModelName(lower) {
			continue
		}
		id := strings.ReplaceAll(lower, " ", "-")
		rec := catalog.PartialRecord{Name: ptr.ToString(title)}
		if desc != "" {
			rec.Description = ptr.ToString(desc)
		}
		records[id] = rec
	}
	return records
}

func looksLikeModelName(lower string) bool {
	for _, prefix := range []string{"gpt-", "o1", "o3", "o4", "dall-e"} {
		if strings.Contains(lower, prefix) {
			return true
		}
	}
	return false
}
