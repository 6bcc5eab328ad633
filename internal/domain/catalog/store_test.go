package catalog

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-api/internal/utils/ptr"
)

type fakeRepo struct {
	mu     sync.Mutex
	stored []*Model
	fail   bool
}

func (r *fakeRepo) ReplaceAll(_ context.Context, models []*Model) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return errors.New("disk full")
	}
	r.stored = append([]*Model(nil), models...)
	return nil
}

func (r *fakeRepo) LoadAll(_ context.Context) ([]*Model, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return nil, errors.New("corrupt database")
	}
	return append([]*Model(nil), r.stored...), nil
}

func TestNewStoreServesEmptySnapshot(t *testing.T) {
	s := NewStore(nil)

	snap := s.Current()
	require.NotNil(t, snap)
	assert.True(t, snap.Empty())

	_, ok := s.Lookup("gpt-4o")
	assert.False(t, ok)
}

func TestTryBeginRefreshSingleFlight(t *testing.T) {
	s := NewStore(nil)

	release, err := s.TryBeginRefresh()
	require.NoError(t, err)
	assert.True(t, s.Refreshing())

	_, err = s.TryBeginRefresh()
	assert.ErrorIs(t, err, ErrRefreshInProgress)

	release()
	assert.False(t, s.Refreshing())

	release2, err := s.TryBeginRefresh()
	require.NoError(t, err)
	release2()
}

func TestPublishSwapsSnapshotAtomically(t *testing.T) {
	s := NewStore(nil)

	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
			}
			snap := s.Current()
			// A snapshot is always internally consistent: every listed
			// record is reachable by id.
			for _, m := range snap.List {
				if snap.Models[m.ID] != m {
					t.Error("snapshot views disagree")
					return
				}
			}
		}
	}()

	for i := 0; i < 100; i++ {
		s.Publish(context.Background(), []*Model{
			{ID: "gpt-4o", Name: "GPT-4o"},
			{ID: "claude-opus-4-5", Name: "Claude Opus 4.5"},
		})
	}
	close(stop)
	wg.Wait()

	m, ok := s.Lookup("gpt-4o")
	require.True(t, ok)
	assert.Equal(t, "GPT-4o", m.Name)
}

func TestSupersededSnapshotStaysValid(t *testing.T) {
	s := NewStore(nil)
	s.Publish(context.Background(), []*Model{{ID: "gpt-4o", Name: "old"}})

	held := s.Current()
	s.Publish(context.Background(), []*Model{{ID: "gpt-4o", Name: "new"}})

	assert.Equal(t, "old", held.Models["gpt-4o"].Name)
	assert.Equal(t, "new", s.Current().Models["gpt-4o"].Name)
}

func TestPersistRoundTrip(t *testing.T) {
	repo := &fakeRepo{}

	s := NewStore(repo)
	s.Publish(context.Background(), []*Model{
		{
			ID:            "gpt-5.2",
			Name:          "GPT-5.2",
			Provider:      "openai",
			ContextWindow: ptr.ToInt(400000),
			Pricing:       Pricing{InputPer1M: ptr.ToDecimal(1.75)},
		},
	})

	restored := NewStore(repo)
	require.True(t, restored.Restore(context.Background()))

	m, ok := restored.Lookup("gpt-5.2")
	require.True(t, ok)
	assert.Equal(t, "GPT-5.2", m.Name)
	require.NotNil(t, m.ContextWindow)
	assert.Equal(t, 400000, *m.ContextWindow)
	require.NotNil(t, m.Pricing.InputPer1M)
}

func TestPersistFailureDoesNotAffectReads(t *testing.T) {
	repo := &fakeRepo{fail: true}
	s := NewStore(repo)

	snap := s.Publish(context.Background(), []*Model{{ID: "gpt-4o"}})
	assert.Len(t, snap.List, 1)
	_, ok := s.Lookup("gpt-4o")
	assert.True(t, ok)
}

func TestRestoreFailureMeansColdStart(t *testing.T) {
	s := NewStore(&fakeRepo{fail: true})
	assert.False(t, s.Restore(context.Background()))
	assert.True(t, s.Current().Empty())

	// Nil repository disables persistence entirely.
	s = NewStore(nil)
	assert.False(t, s.Restore(context.Background()))
}

func TestRestoreEmptyRepositoryKeepsEmptySnapshot(t *testing.T) {
	s := NewStore(&fakeRepo{})
	assert.False(t, s.Restore(context.Background()))
	assert.True(t, s.Current().Empty())
	assert.True(t, s.Current().LastRefreshed.IsZero())
}
