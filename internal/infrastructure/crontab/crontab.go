package crontab

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mileusna/crontab"

	"catalog-api/internal/config"
	"catalog-api/internal/domain/catalog"
	"catalog-api/internal/infrastructure/logger"
	"catalog-api/internal/infrastructure/metrics"
	"catalog-api/internal/utils/platformerrors"
)

const DefaultRefreshIntervalMinutes = 60

// RebuildSources constructs a fresh provider source set from config, used
// when a reloaded environment carries rotated credentials.
type RebuildSources func(cfg *config.Config) []catalog.ProviderSources

// Crontab schedules periodic catalog refreshes. The first refresh runs
// immediately on startup so a cold process fills its snapshot without
// waiting for the first tick.
type Crontab struct {
	ctab      *crontab.Crontab
	refresher *catalog.Refresher
	store     *catalog.Store
	rebuild   RebuildSources
}

func NewCrontab(refresher *catalog.Refresher, store *catalog.Store, rebuild RebuildSources) *Crontab {
	return &Crontab{
		ctab:      crontab.New(),
		refresher: refresher,
		store:     store,
		rebuild:   rebuild,
	}
}

// Run executes one refresh immediately, schedules the periodic job, and
// blocks until the context is cancelled. An interval of zero disables the
// periodic job; the startup refresh and on-demand refreshes still run.
func (c *Crontab) Run(ctx context.Context) error {
	log := logger.GetLogger()
	cfg := config.GetGlobal()

	interval := DefaultRefreshIntervalMinutes
	if cfg != nil {
		interval = cfg.RefreshIntervalMinutes
	}
	timeout := 10 * time.Minute
	if cfg != nil && cfg.RefreshTimeout > 0 {
		timeout = cfg.RefreshTimeout
	}

	// execute once on server start
	c.refresh(ctx, timeout)

	if interval > 0 {
		if err := c.ctab.AddJob(cronExpr(interval), func() {
			jobCtx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()
			c.refresh(jobCtx, 0)
		}); err != nil {
			return platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to schedule refresh job")
		}
		log.Info().Int("interval_minutes", interval).Msg("catalog refresh scheduled")
	} else {
		log.Info().Msg("periodic refresh disabled, serving on-demand refreshes only")
	}

	if err := c.ctab.AddJob("* * * * *", c.reloadEnv); err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to schedule env reload job")
	}

	<-ctx.Done()
	c.ctab.Shutdown()
	return nil
}

// reloadEnv re-reads the environment and, when a provider credential
// changed, rebuilds the source set so rotated keys reach the next refresh
// without a restart.
func (c *Crontab) reloadEnv() {
	prev := config.GetGlobal()
	cfg, err := config.Load()
	if err != nil {
		log := logger.GetLogger()
		log.Warn().Err(err).Msg("env reload failed")
		return
	}
	if c.rebuild == nil || prev == nil || !credentialsChanged(prev, cfg) {
		return
	}
	c.refresher.SetProviders(c.rebuild(cfg))
	log := logger.GetLogger()
	log.Info().Msg("provider credentials rotated, sources rebuilt")
}

func credentialsChanged(prev, next *config.Config) bool {
	return prev.OpenAIAPIKey != next.OpenAIAPIKey ||
		prev.AnthropicAPIKey != next.AnthropicAPIKey ||
		prev.GeminiAPIKey != next.GeminiAPIKey
}

func (c *Crontab) refresh(ctx context.Context, timeout time.Duration) {
	log := logger.GetLogger()

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	start := time.Now()
	outcome, err := c.refresher.RefreshAndPublish(ctx, c.store)
	switch {
	case errors.Is(err, catalog.ErrRefreshInProgress):
		log.Info().Msg("refresh already running, skipping scheduled run")
		metrics.RecordRefresh("cron", "conflict", 0, 0)
	case err != nil:
		log.Error().Err(err).Msg("scheduled refresh failed")
		metrics.RecordRefresh("cron", "error", 0, 0)
	default:
		metrics.RecordRefresh("cron", "success", time.Since(start), len(outcome.Models))
	}
}

// cronExpr builds a crontab expression for the refresh interval. The minute
// field only accepts 0-59, so intervals of an hour and up are expressed as
// hourly schedules.
func cronExpr(intervalMinutes int) string {
	if intervalMinutes >= 60 {
		hours := intervalMinutes / 60
		if hours >= 24 {
			return "0 0 * * *"
		}
		if hours == 1 {
			return "0 * * * *"
		}
		return fmt.Sprintf("0 */%d * * *", hours)
	}
	return fmt.Sprintf("*/%d * * * *", intervalMinutes)
}
