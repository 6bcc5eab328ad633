package catalog

import (
	"sort"
	"strings"
	"time"
)

// Snapshot is an immutable, fully indexed view of the entire catalog at one
// refresh point. All views reference the same Model values; none is ever
// recomputed or mutated after construction. Readers holding a superseded
// snapshot keep a valid, frozen view.
type Snapshot struct {
	// Models maps model id to its resolved record.
	Models map[string]*Model
	// List holds all records sorted by display name (id fallback),
	// case-insensitively.
	List []*Model
	// NonDeprecated is List without deprecated records.
	NonDeprecated []*Model
	// ByFamily groups List by non-empty family.
	ByFamily map[string][]*Model

	LastRefreshed time.Time
}

// BuildSnapshot constructs a snapshot with all indexes precomputed. When the
// input contains duplicate ids the last occurrence wins in every view.
func BuildSnapshot(models []*Model, refreshedAt time.Time) *Snapshot {
	byID := make(map[string]*Model, len(models))
	for _, m := range models {
		byID[m.ID] = m
	}

	list := make([]*Model, 0, len(byID))
	for _, m := range byID {
		list = append(list, m)
	}
	sort.Slice(list, func(i, j int) bool {
		a := strings.ToLower(list[i].DisplayName())
		b := strings.ToLower(list[j].DisplayName())
		if a != b {
			return a < b
		}
		return list[i].ID < list[j].ID
	})

	nonDeprecated := make([]*Model, 0, len(list))
	byFamily := make(map[string][]*Model)
	for _, m := range list {
		if !m.Deprecated {
			nonDeprecated = append(nonDeprecated, m)
		}
		if m.Family != "" {
			byFamily[m.Family] = append(byFamily[m.Family], m)
		}
	}

	return &Snapshot{
		Models:        byID,
		List:          list,
		NonDeprecated: nonDeprecated,
		ByFamily:      byFamily,
		LastRefreshed: refreshedAt,
	}
}

// Empty reports whether the snapshot holds no models, i.e. no refresh or
// restore has completed yet.
func (s *Snapshot) Empty() bool {
	return len(s.Models) == 0
}
