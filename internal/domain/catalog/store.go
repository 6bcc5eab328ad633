package catalog

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"catalog-api/internal/infrastructure/logger"
)

// ErrRefreshInProgress is returned by TryBeginRefresh when another refresh
// holds the single-flight permit. It is an expected outcome, not a fault.
var ErrRefreshInProgress = errors.New("refresh already in progress")

// ModelRepository persists resolved records so the process can start warm.
// Implementations store one row per model id with a self-describing blob.
type ModelRepository interface {
	ReplaceAll(ctx context.Context, models []*Model) error
	LoadAll(ctx context.Context) ([]*Model, error)
}

// Store holds the current immutable catalog snapshot.
//
// Reads never lock: Current loads an atomic pointer and every index on the
// returned snapshot is precomputed. Writers serialize through the
// single-flight refresh permit and replace the snapshot wholesale; nothing
// is ever mutated in place.
type Store struct {
	current    atomic.Pointer[Snapshot]
	refreshing atomic.Bool
	repo       ModelRepository // nil disables persistence
}

// NewStore creates a store seeded with an empty-but-valid snapshot. The
// repository may be nil to disable persistence.
func NewStore(repo ModelRepository) *Store {
	s := &Store{repo: repo}
	s.current.Store(BuildSnapshot(nil, time.Time{}))
	return s
}

// Current returns the current snapshot. Never blocks, never fails.
func (s *Store) Current() *Snapshot {
	return s.current.Load()
}

// Lookup returns the resolved record for id from the current snapshot.
func (s *Store) Lookup(id string) (*Model, bool) {
	m, ok := s.current.Load().Models[id]
	return m, ok
}

// TryBeginRefresh attempts to acquire the single-flight refresh permit
// without blocking. On success it returns a release function that must be
// called exactly once; on contention it returns ErrRefreshInProgress
// immediately. There is no queueing: callers decide how to surface the
// conflict.
func (s *Store) TryBeginRefresh() (func(), error) {
	if !s.refreshing.CompareAndSwap(false, true) {
		return nil, ErrRefreshInProgress
	}
	return func() { s.refreshing.Store(false) }, nil
}

// Refreshing reports whether a refresh currently holds the permit.
func (s *Store) Refreshing() bool {
	return s.refreshing.Load()
}

// Publish builds a new snapshot from the full replacement batch and swaps it
// in atomically. Concurrent readers observe either the previous or the new
// snapshot, never a mixture. Only the holder of the refresh permit may call
// Publish.
//
// The snapshot is persisted best-effort after the swap; persistence failures
// are logged and absorbed.
func (s *Store) Publish(ctx context.Context, models []*Model) *Snapshot {
	snapshot := BuildSnapshot(models, time.Now().UTC())
	s.current.Store(snapshot)
	s.persist(ctx, snapshot)
	return snapshot
}

// Restore loads persisted records and installs them through the same
// snapshot-build step as a fresh refresh. Returns true when data was loaded.
// Any persistence failure is treated as a cold start.
func (s *Store) Restore(ctx context.Context) bool {
	if s.repo == nil {
		return false
	}
	log := logger.GetLogger()

	models, err := s.repo.LoadAll(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("failed to load persisted snapshot, starting cold")
		return false
	}
	if len(models) == 0 {
		return false
	}

	s.current.Store(BuildSnapshot(models, time.Now().UTC()))
	log.Info().Int("count", len(models)).Msg("restored models from persisted snapshot")
	return true
}

func (s *Store) persist(ctx context.Context, snapshot *Snapshot) {
	if s.repo == nil {
		return
	}
	if err := s.repo.ReplaceAll(ctx, snapshot.List); err != nil {
		log := logger.GetLogger()
		log.Warn().Err(err).Msg("failed to persist snapshot")
	}
}
