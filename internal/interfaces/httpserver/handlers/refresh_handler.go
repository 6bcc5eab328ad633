package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"catalog-api/internal/domain/catalog"
	"catalog-api/internal/infrastructure/logger"
	"catalog-api/internal/infrastructure/metrics"
	"catalog-api/internal/utils/platformerrors"
)

// RefreshHandler triggers a full catalog refresh on demand.
type RefreshHandler struct {
	refresher *catalog.Refresher
	store     *catalog.Store
}

func NewRefreshHandler(refresher *catalog.Refresher, store *catalog.Store) *RefreshHandler {
	return &RefreshHandler{refresher: refresher, store: store}
}

type refreshResponse struct {
	RunID          string         `json:"run_id"`
	ModelsFound    int            `json:"models_found"`
	ProviderCounts map[string]int `json:"provider_counts"`
	DurationMs     int64          `json:"duration_ms"`
	RefreshedAt    time.Time      `json:"refreshed_at"`
}

// Refresh serves POST /v1/refresh. A refresh already in flight yields 409
// immediately; there is no queueing.
func (h *RefreshHandler) Refresh(c *gin.Context) {
	start := time.Now()
	outcome, err := h.refresher.RefreshAndPublish(c.Request.Context(), h.store)
	if err != nil {
		if errors.Is(err, catalog.ErrRefreshInProgress) {
			metrics.RecordRefresh("http", "conflict", 0, 0)
			platformerrors.WriteConflict(c, "a refresh is already in progress")
			return
		}
		metrics.RecordRefresh("http", "error", 0, 0)
		platformerrors.WriteError(c, err, logger.GetLogger())
		return
	}

	metrics.RecordRefresh("http", "success", time.Since(start), len(outcome.Models))
	c.JSON(http.StatusOK, refreshResponse{
		RunID:          outcome.RunID,
		ModelsFound:    len(outcome.Models),
		ProviderCounts: outcome.ProviderCounts,
		DurationMs:     outcome.Duration.Milliseconds(),
		RefreshedAt:    h.store.Current().LastRefreshed,
	})
}
