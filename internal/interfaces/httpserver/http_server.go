package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"catalog-api/internal/config"
	"catalog-api/internal/domain/catalog"
	"catalog-api/internal/infrastructure/logger"
	"catalog-api/internal/interfaces/httpserver/handlers"
	middleware "catalog-api/internal/interfaces/httpserver/middlewares"
)

// HTTPServer is the public read/trigger surface of the catalog.
type HTTPServer struct {
	engine  *gin.Engine
	config  *config.Config
	health  *handlers.HealthHandler
	models  *handlers.ModelsHandler
	refresh *handlers.RefreshHandler
}

func NewHTTPServer(cfg *config.Config, store *catalog.Store, refresher *catalog.Refresher) *HTTPServer {
	if !config.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}

	server := &HTTPServer{
		engine:  gin.New(),
		config:  cfg,
		health:  handlers.NewHealthHandler(store),
		models:  handlers.NewModelsHandler(store),
		refresh: handlers.NewRefreshHandler(refresher, store),
	}

	server.engine.Use(gin.Recovery())
	server.engine.Use(middleware.RequestID())
	server.engine.Use(middleware.LoggingMiddleware(logger.GetLogger()))
	server.engine.Use(middleware.MetricsMiddleware())
	server.engine.Use(middleware.CORSMiddleware())

	server.bindRoutes()
	return server
}

func (s *HTTPServer) bindRoutes() {
	s.engine.GET("/healthz", s.health.Healthz)

	v1 := s.engine.Group("/v1")
	v1.GET("/models", s.models.List)
	v1.GET("/models/:id", s.models.Get)
	v1.POST("/refresh", s.refresh.Refresh)
}

// Engine exposes the router for handler tests.
func (s *HTTPServer) Engine() *gin.Engine {
	return s.engine
}

// Run serves the API until the context is cancelled, then shuts down
// gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.config.HTTPPort),
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return serveUntilDone(ctx, srv, "api")
}

// RunMetrics serves the Prometheus endpoint on its own port.
func RunMetrics(ctx context.Context, cfg *config.Config) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.MetricsPort),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return serveUntilDone(ctx, srv, "metrics")
}

func serveUntilDone(ctx context.Context, srv *http.Server, name string) error {
	log := logger.GetLogger()

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msgf("%s server listening", name)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown %s server: %w", name, err)
	}
	log.Info().Msgf("%s server stopped", name)
	return nil
}
