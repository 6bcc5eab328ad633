package main

import (
	"context"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"catalog-api/internal/config"
	"catalog-api/internal/domain/catalog"
	"catalog-api/internal/infrastructure/crontab"
	"catalog-api/internal/infrastructure/logger"
	"catalog-api/internal/infrastructure/modelstore"
	"catalog-api/internal/infrastructure/sources"
	"catalog-api/internal/interfaces/httpserver"
)

type Application struct {
	config     *config.Config
	httpServer *httpserver.HTTPServer
	crontab    *crontab.Crontab
}

func (application *Application) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var eg errgroup.Group
	eg.Go(func() error {
		err := application.crontab.Run(ctx)
		if err != nil {
			cancel()
		}
		return err
	})
	eg.Go(func() error {
		err := application.httpServer.Run(ctx)
		if err != nil {
			cancel()
		}
		return err
	})
	eg.Go(func() error {
		err := httpserver.RunMetrics(ctx, application.config)
		if err != nil {
			cancel()
		}
		return err
	})

	return eg.Wait()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback := logger.GetLogger()
		fallback.Fatal().Err(err).Msg("load config")
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fallback := logger.GetLogger()
		fallback.Fatal().Err(err).Msg("configure logger")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var repo catalog.ModelRepository
	if cfg.DBPath != "" {
		sqliteRepo, err := modelstore.New(cfg.DBPath)
		if err != nil {
			// Persistence is best-effort: a broken cache file must not keep
			// the service down.
			log.Warn().Err(err).Msg("snapshot persistence disabled")
		} else {
			repo = sqliteRepo
		}
	}

	store := catalog.NewStore(repo)
	if store.Restore(ctx) {
		log.Info().Msg("serving persisted snapshot until first refresh")
	}

	refresher := catalog.NewRefresher(sources.Build(cfg), cfg.FetchConcurrency)

	application := &Application{
		config:     cfg,
		httpServer: httpserver.NewHTTPServer(cfg, store, refresher),
		crontab:    crontab.NewCrontab(refresher, store, sources.Build),
	}

	log.Info().
		Str("service", cfg.ServiceName).
		Str("environment", cfg.Environment).
		Str("version", config.Version).
		Msg("starting catalog-api")

	if err := application.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
	log.Info().Msg("shutdown complete")
}
