package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"catalog-api/internal/config"
	"catalog-api/internal/domain/catalog"
)

// HealthHandler reports process liveness and catalog freshness.
type HealthHandler struct {
	store     *catalog.Store
	startedAt time.Time
}

func NewHealthHandler(store *catalog.Store) *HealthHandler {
	return &HealthHandler{store: store, startedAt: time.Now()}
}

type healthResponse struct {
	Status        string     `json:"status"`
	Version       string     `json:"version"`
	ModelsLoaded  int        `json:"models_loaded"`
	LastRefreshed *time.Time `json:"last_refreshed"`
	Refreshing    bool       `json:"refreshing"`
	UptimeSeconds float64    `json:"uptime_seconds"`
}

// Healthz always reports ok; an empty catalog is degraded service, not a
// dead process.
func (h *HealthHandler) Healthz(c *gin.Context) {
	snapshot := h.store.Current()

	var lastRefreshed *time.Time
	if !snapshot.LastRefreshed.IsZero() {
		t := snapshot.LastRefreshed
		lastRefreshed = &t
	}

	c.JSON(http.StatusOK, healthResponse{
		Status:        "ok",
		Version:       config.Version,
		ModelsLoaded:  len(snapshot.Models),
		LastRefreshed: lastRefreshed,
		Refreshing:    h.store.Refreshing(),
		UptimeSeconds: time.Since(h.startedAt).Seconds(),
	})
}
