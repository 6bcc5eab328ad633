package sources

import (
	"context"
	"time"

	"resty.dev/v3"

	"catalog-api/internal/domain/catalog"
	"catalog-api/internal/infrastructure/logger"
	"catalog-api/internal/utils/ptr"
)

const anthropicAPIVersion = "2023-06-01"

// AnthropicLiveSource pulls model ids from Anthropic's /v1/models endpoint,
// paginating with after_id until has_more is false.
type AnthropicLiveSource struct {
	client  *resty.Client
	baseURL string
	apiKey  string
}

func NewAnthropicLiveSource(client *resty.Client, baseURL, apiKey string) *AnthropicLiveSource {
	return &AnthropicLiveSource{client: client, baseURL: baseURL, apiKey: apiKey}
}

func (s *AnthropicLiveSource) Kind() catalog.SourceKind { return catalog.SourceLiveAPI }

type anthropicModelsPage struct {
	Data []struct {
		ID          string    `json:"id"`
		DisplayName string    `json:"display_name"`
		CreatedAt   time.Time `json:"created_at"`
	} `json:"data"`
	HasMore bool `json:"has_more"`
}

func (s *AnthropicLiveSource) Fetch(ctx context.Context) (map[string]catalog.PartialRecord, error) {
	records := make(map[string]catalog.PartialRecord)
	afterID := ""
	url := s.baseURL + "/v1/models"

	for {
		var page anthropicModelsPage
		err := withRetry(ctx, "anthropic_models", func() error {
			req := s.client.R().
				SetContext(ctx).
				SetHeader("x-api-key", s.apiKey).
				SetHeader("anthropic-version", anthropicAPIVersion).
				SetQueryParam("limit", "100").
				SetResult(&page)
			if afterID != "" {
				req.SetQueryParam("after_id", afterID)
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

		for _, m := range page.Data {
			rec := catalog.PartialRecord{Name: ptr.ToString(m.DisplayName)}
			if !m.CreatedAt.IsZero() {
				rec.CreatedAt = ptr.ToTime(m.CreatedAt.UTC())
			}
			records[m.ID] = rec
		}

		if !page.HasMore || len(page.Data) == 0 {
			break
		}
		afterID = page.Data[len(page.Data)-1].ID
		if afterID == "" {
			break
		}
	}

	log := logger.GetLogger()
	log.Info().Int("models_found", len(records)).Msg("anthropic model list fetched")
	return records, nil
}
