package catalog

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/semaphore"

	"catalog-api/internal/infrastructure/logger"
	"catalog-api/internal/infrastructure/metrics"
	"catalog-api/internal/utils/platformerrors"
)

// RefreshOutcome reports one completed refresh run.
type RefreshOutcome struct {
	RunID          string         `json:"run_id"`
	Models         []*Model       `json:"-"`
	ProviderCounts map[string]int `json:"provider_counts"`
	StartedAt      time.Time      `json:"started_at"`
	Duration       time.Duration  `json:"duration"`
}

// Refresher coordinates all sources of all providers into one complete
// replacement batch. Fetches for independent providers run in parallel, and
// every network-bound fetch across all providers shares one bounded
// concurrency budget.
type Refresher struct {
	mu        sync.RWMutex
	providers []ProviderSources
	sem       *semaphore.Weighted
}

// NewRefresher creates a refresher with the given global fetch concurrency
// budget.
func NewRefresher(providers []ProviderSources, concurrency int64) *Refresher {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &Refresher{
		providers: providers,
		sem:       semaphore.NewWeighted(concurrency),
	}
}

// SetProviders replaces the configured provider set, e.g. after a credential
// rotation. Takes effect on the next refresh run; a run already in flight
// keeps the set it started with.
func (r *Refresher) SetProviders(providers []ProviderSources) {
	r.mu.Lock()
	r.providers = providers
	r.mu.Unlock()
}

func (r *Refresher) providerSet() []ProviderSources {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.providers
}

// Refresh pulls every configured source and merges the results into one
// complete model list. Source and provider failures degrade the result but
// never fail the run; a provider whose every source fails simply contributes
// nothing.
func (r *Refresher) Refresh(ctx context.Context) *RefreshOutcome {
	log := logger.GetLogger()
	start := time.Now()
	scrapedAt := start.UTC()

	providers := r.providerSet()

	var (
		mu     sync.Mutex
		wg     sync.WaitGroup
		all    []*Model
		counts = make(map[string]int, len(providers))
	)

	for _, ps := range providers {
		wg.Add(1)
		go func(ps ProviderSources) {
			defer wg.Done()
			models := r.refreshProvider(ctx, ps, scrapedAt)
			mu.Lock()
			all = append(all, models...)
			counts[ps.Provider] = len(models)
			mu.Unlock()
		}(ps)
	}
	wg.Wait()

	duration := time.Since(start)
	event := log.Info().
		Int("models_found", len(all)).
		Dur("duration", duration)
	for provider, count := range counts {
		event = event.Int(provider+"_count", count)
	}
	event.Msg("refresh complete")

	return &RefreshOutcome{
		RunID:          uuid.NewString(),
		Models:         all,
		ProviderCounts: counts,
		StartedAt:      start,
		Duration:       duration,
	}
}

// RefreshAndPublish acquires the store's single-flight permit, runs a full
// refresh, and publishes the result as one replacement batch. It returns
// ErrRefreshInProgress immediately when another refresh is running, and
// abandons the run without publishing when the context is cancelled before
// the publish point.
func (r *Refresher) RefreshAndPublish(ctx context.Context, store *Store) (*RefreshOutcome, error) {
	release, err := store.TryBeginRefresh()
	if err != nil {
		return nil, err
	}
	defer release()

	outcome := r.Refresh(ctx)
	if ctx.Err() != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, ctx.Err(), "refresh abandoned before publish")
	}

	store.Publish(ctx, outcome.Models)
	return outcome, nil
}

// sourceResult is one source's fetched records, tagged for merge ordering.
type sourceResult struct {
	kind    SourceKind
	order   int // registration order; lower registered first
	records map[string]PartialRecord
}

func (r *Refresher) refreshProvider(ctx context.Context, ps ProviderSources, scrapedAt time.Time) []*Model {
	log := logger.GetLogger().With().Str("provider", ps.Provider).Logger()

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		results []sourceResult
	)

	// Registration order fixes the tie-break between equal-rank sources:
	// the first registered wins.
	collect := func(src Source, order int) {
		records, err := r.fetchGated(ctx, src)
		if err != nil {
			log.Warn().Err(err).Str("source", string(src.Kind())).Msg("source fetch failed, contributes nothing")
			metrics.RecordSourceFailure(ps.Provider, string(src.Kind()))
			return
		}
		mu.Lock()
		results = append(results, sourceResult{kind: src.Kind(), order: order, records: records})
		mu.Unlock()
	}

	// The fallback table is local data: no concurrency budget needed.
	if ps.Fallback != nil {
		if records, err := ps.Fallback.Fetch(ctx); err == nil {
			results = append(results, sourceResult{kind: ps.Fallback.Kind(), order: 0, records: records})
		} else {
			log.Warn().Err(err).Msg("fallback source failed")
		}
	}

	for i, src := range ps.Enrichment {
		wg.Add(1)
		go func(src Source, order int) {
			defer wg.Done()
			collect(src, order)
		}(src, i+1)
	}

	if ps.Live != nil {
		wg.Add(1)
		go func(order int) {
			defer wg.Done()
			collect(ps.Live, order)
		}(len(ps.Enrichment) + 1)
	}
	wg.Wait()

	universe := r.chooseUniverse(log, ps, results)
	if len(universe) == 0 {
		return nil
	}

	sortSourceResults(results)

	models := make([]*Model, 0, len(universe))
	for id := range universe {
		partials := make([]PartialRecord, 0, len(results))
		for _, res := range results {
			if rec, ok := res.records[id]; ok {
				partials = append(partials, rec)
			}
		}
		m := Merge(id, partials, scrapedAt)
		if m.Provider == "" {
			m.Provider = ps.Provider
		}
		models = append(models, m)
	}
	return models
}

// chooseUniverse picks the candidate id set: the live source's ids, or the
// static fallback's ids when the live source failed or yielded none. This is
// the only point where an alternate source chooses ids rather than field
// values; enrichment-only ids are never included.
func (r *Refresher) chooseUniverse(log zerolog.Logger, ps ProviderSources, results []sourceResult) map[string]struct{} {
	var live, fallback map[string]PartialRecord
	for _, res := range results {
		switch res.kind {
		case SourceLiveAPI:
			live = res.records
		case SourceStaticFallback:
			fallback = res.records
		}
	}

	chosen := live
	if len(chosen) == 0 {
		if ps.Live != nil {
			log.Warn().Msg("live source yielded no ids, falling back to static universe")
		}
		chosen = fallback
	}

	universe := make(map[string]struct{}, len(chosen))
	for id := range chosen {
		universe[id] = struct{}{}
	}
	return universe
}

func (r *Refresher) fetchGated(ctx context.Context, src Source) (map[string]PartialRecord, error) {
	if err := r.sem.Acquire(ctx, 1); err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "fetch cancelled while waiting for concurrency permit")
	}
	defer r.sem.Release(1)
	return src.Fetch(ctx)
}

// sortSourceResults orders results for the merge fold: ascending priority
// rank, and among equal ranks descending registration order so that the
// first-registered source's values survive the fold.
func sortSourceResults(results []sourceResult) {
	sort.SliceStable(results, func(i, j int) bool {
		ri, rj := results[i].kind.Rank(), results[j].kind.Rank()
		if ri != rj {
			return ri < rj
		}
		return results[i].order > results[j].order
	})
}
