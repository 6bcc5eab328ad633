package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSnapshotIndexesAgree(t *testing.T) {
	models := []*Model{
		{ID: "gpt-4o", Name: "GPT-4o", Family: "gpt-4o"},
		{ID: "gpt-4o-mini", Name: "GPT-4o mini", Family: "gpt-4o", Deprecated: true},
		{ID: "claude-sonnet-4-5", Name: "Claude Sonnet 4.5", Family: "claude-sonnet-4"},
		{ID: "mystery-model"},
	}
	refreshedAt := time.Now().UTC()

	snap := BuildSnapshot(models, refreshedAt)

	assert.Len(t, snap.Models, 4)
	assert.Len(t, snap.List, 4)
	assert.Len(t, snap.NonDeprecated, 3)
	assert.Equal(t, refreshedAt, snap.LastRefreshed)

	// Every view references the same record as the by-id map.
	for _, m := range snap.List {
		assert.Same(t, snap.Models[m.ID], m)
	}
	for _, group := range snap.ByFamily {
		for _, m := range group {
			assert.Same(t, snap.Models[m.ID], m)
		}
	}

	assert.Len(t, snap.ByFamily["gpt-4o"], 2)
	assert.Len(t, snap.ByFamily["claude-sonnet-4"], 1)
	// Records without a family appear in no group.
	_, ok := snap.ByFamily[""]
	assert.False(t, ok)
}

func TestBuildSnapshotSortsByDisplayName(t *testing.T) {
	snap := BuildSnapshot([]*Model{
		{ID: "zzz-unnamed"},
		{ID: "gpt-4o", Name: "GPT-4o"},
		{ID: "claude-opus-4-5", Name: "claude Opus 4.5"},
	}, time.Now())

	require.Len(t, snap.List, 3)
	// Case-insensitive by display name, ids fall back for unnamed records.
	assert.Equal(t, "claude-opus-4-5", snap.List[0].ID)
	assert.Equal(t, "gpt-4o", snap.List[1].ID)
	assert.Equal(t, "zzz-unnamed", snap.List[2].ID)
}

func TestBuildSnapshotDuplicateIDLastWins(t *testing.T) {
	snap := BuildSnapshot([]*Model{
		{ID: "gpt-4o", Name: "first"},
		{ID: "gpt-4o", Name: "second"},
	}, time.Now())

	assert.Len(t, snap.List, 1)
	assert.Equal(t, "second", snap.Models["gpt-4o"].Name)
}

func TestEmptySnapshot(t *testing.T) {
	snap := BuildSnapshot(nil, time.Time{})

	assert.True(t, snap.Empty())
	assert.NotNil(t, snap.Models)
	assert.Empty(t, snap.List)
	assert.Empty(t, snap.NonDeprecated)
	assert.True(t, snap.LastRefreshed.IsZero())
}
