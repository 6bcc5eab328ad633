package catalog

import "context"

// Source is one channel of model metadata for a provider. Fetch returns the
// source's view of every model it knows about; a source that knows nothing
// (e.g. credentials absent) returns an empty map, which is not an error.
//
// Implementations own their retry discipline and pagination loops; a
// returned error means the source is exhausted for this refresh.
type Source interface {
	Kind() SourceKind
	Fetch(ctx context.Context) (map[string]PartialRecord, error)
}

// ProviderSources bundles all sources configured for one provider.
//
// Live establishes the candidate id universe and is nil when the provider
// has no credentials. Fallback supplies both the lowest-priority field
// values and the substitute id universe when the live source fails or
// yields zero ids. Enrichment sources only ever contribute field values,
// never ids.
type ProviderSources struct {
	Provider   string
	Live       Source
	Enrichment []Source
	Fallback   Source
}
