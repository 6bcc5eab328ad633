package sources

import (
	"context"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"catalog-api/internal/domain/catalog"
	"catalog-api/internal/infrastructure/logger"
	"catalog-api/internal/utils/ptr"
)

// OpenAILiveSource pulls the authoritative model id list from OpenAI's
// /v1/models endpoint. The endpoint only reports ids, ownership and creation
// timestamps; everything else comes from enrichment sources.
type OpenAILiveSource struct {
	client *openai.Client
}

// NewOpenAILiveSource builds the live source. baseURL overrides the API host
// for tests and self-hosted gateways; empty keeps the default.
func NewOpenAILiveSource(apiKey, baseURL string, timeout time.Duration) *OpenAILiveSource {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL + "/v1"
	}
	cfg.HTTPClient = &http.Client{Timeout: timeout}
	return &OpenAILiveSource{client: openai.NewClientWithConfig(cfg)}
}

func (s *OpenAILiveSource) Kind() catalog.SourceKind { return catalog.SourceLiveAPI }

func (s *OpenAILiveSource) Fetch(ctx context.Context) (map[string]catalog.PartialRecord, error) {
	var list openai.ModelsList
	err := withRetry(ctx, "openai_models", func() error {
		var ferr error
		list, ferr = s.client.ListModels(ctx)
		return ferr
	})
	if err != nil {
		return nil, err
	}

	records := make(map[string]catalog.PartialRecord, len(list.Models))
	for _, m := range list.Models {
		rec := catalog.PartialRecord{}
		if m.CreatedAt > 0 {
			rec.CreatedAt = ptr.ToTime(time.Unix(m.CreatedAt, 0).UTC())
		}
		records[m.ID] = rec
	}

	log := logger.GetLogger()
	log.Info().Int("models_found", len(records)).Msg("openai model list fetched")
	return records, nil
}
