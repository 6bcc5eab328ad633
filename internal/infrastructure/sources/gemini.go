package sources

import (
	"context"
	"strings"

	"resty.dev/v3"

	"catalog-api/internal/domain/catalog"
	"catalog-api/internal/infrastructure/logger"
	"catalog-api/internal/utils/ptr"
)

// GeminiLiveSource pulls model metadata from Google's Generative Language
// API, paginating with pageToken. Unlike the other live APIs this endpoint
// reports token limits directly.
type GeminiLiveSource struct {
	client  *resty.Client
	baseURL string
	apiKey  string
}

func NewGeminiLiveSource(client *resty.Client, baseURL, apiKey string) *GeminiLiveSource {
	return &GeminiLiveSource{client: client, baseURL: baseURL, apiKey: apiKey}
}

func (s *GeminiLiveSource) Kind() catalog.SourceKind { return catalog.SourceLiveAPI }

type geminiModelsPage struct {
	Models []struct {
		Name             string `json:"name"`
		DisplayName      string `json:"displayName"`
		Description      string `json:"description"`
		InputTokenLimit  int    `json:"inputTokenLimit"`
		OutputTokenLimit int    `json:"outputTokenLimit"`
	} `json:"models"`
	NextPageToken string `json:"nextPageToken"`
}

func (s *GeminiLiveSource) Fetch(ctx context.Context) (map[string]catalog.PartialRecord, error) {
	records := make(map[string]catalog.PartialRecord)
	pageToken := ""
	url := s.baseURL + "/v1beta/models"

	for {
		var page geminiModelsPage
		err := withRetry(ctx, "gemini_models", func() error {
			req := s.client.R().
				SetContext(ctx).
				SetQueryParam("key", s.apiKey).
				SetResult(&page)
			if pageToken != "" {
				req.SetQueryParam("pageToken", pageToken)
			}
			resp, ferr := req.Get(url)
			if ferr != nil {
				return ferr
			}
			if resp.IsError() {
				return newStatusError(resp.StatusCode(), url)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}

		for _, m := range page.Models {
			// The API names models "models/gemini-2.5-pro".
			id := strings.TrimPrefix(m.Name, "models/")
			rec := catalog.PartialRecord{
				Name:        ptr.ToString(m.DisplayName),
				Description: ptr.ToString(m.Description),
			}
			if m.InputTokenLimit > 0 {
				rec.ContextWindow = ptr.ToInt(m.InputTokenLimit)
			}
			if m.OutputTokenLimit > 0 {
				rec.MaxOutputTokens = ptr.ToInt(m.OutputTokenLimit)
			}
			records[id] = rec
		}

		pageToken = page.NextPageToken
		if pageToken == "" || len(page.Models) == 0 {
			break
		}
	}

	log := logger.GetLogger()
	log.Info().Int("models_found", len(records)).Msg("gemini model list fetched")
	return records, nil
}
