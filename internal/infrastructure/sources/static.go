package sources

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"catalog-api/internal/domain/catalog"
	"catalog-api/internal/utils/ptr"
)

// StaticSource serves the built-in fallback table for one provider. It is
// the lowest-priority source and, when the live API is unavailable, the
// substitute id universe.
type StaticSource struct {
	provider string
	table    map[string]staticEntry
}

func NewStaticSource(provider string) (*StaticSource, error) {
	table, ok := staticTables[provider]
	if !ok {
		return nil, fmt.Errorf("no static fallback table for provider %q", provider)
	}
	return &StaticSource{provider: provider, table: table}, nil
}

func (s *StaticSource) Kind() catalog.SourceKind { return catalog.SourceStaticFallback }

func (s *StaticSource) Fetch(_ context.Context) (map[string]catalog.PartialRecord, error) {
	records := make(map[string]catalog.PartialRecord, len(s.table))
	for id, entry := range s.table {
		records[id] = entry.record()
	}
	return records, nil
}

// staticEntry is the compact shape of one fallback table row. Zero numeric
// values mean unknown and are omitted from the record; capability flags are
// only reported when true, since the table is the lowest-priority source and
// an explicit false could never override anything.
type staticEntry struct {
	name            string
	family          string
	contextWindow   int
	maxOutputTokens int
	deprecated      bool

	inputPer1M       float64
	outputPer1M      float64
	cachedInputPer1M float64

	reasoning        bool
	vision           bool
	functionCalling  bool
	structuredOutput bool
	streaming        bool
	jsonMode         bool
}

func (e staticEntry) record() catalog.PartialRecord {
	rec := catalog.PartialRecord{
		Name:   ptr.ToString(e.name),
		Family: ptr.ToString(e.family),
	}
	if e.contextWindow > 0 {
		rec.ContextWindow = ptr.ToInt(e.contextWindow)
	}
	if e.maxOutputTokens > 0 {
		rec.MaxOutputTokens = ptr.ToInt(e.maxOutputTokens)
	}
	if e.deprecated {
		rec.Deprecated = ptr.ToBool(true)
	}

	rec.Pricing = catalog.PricingHints{
		InputPer1M:       staticPrice(e.inputPer1M),
		OutputPer1M:      staticPrice(e.outputPer1M),
		CachedInputPer1M: staticPrice(e.cachedInputPer1M),
	}

	setIfTrue := func(dst **bool, v bool) {
		if v {
			*dst = ptr.ToBool(true)
		}
	}
	setIfTrue(&rec.Capabilities.Reasoning, e.reasoning)
	setIfTrue(&rec.Capabilities.Vision, e.vision)
	setIfTrue(&rec.Capabilities.FunctionCalling, e.functionCalling)
	setIfTrue(&rec.Capabilities.StructuredOutput, e.structuredOutput)
	setIfTrue(&rec.Capabilities.Streaming, e.streaming)
	setIfTrue(&rec.Capabilities.JSONMode, e.jsonMode)

	return rec
}

func staticPrice(v float64) *decimal.Decimal {
	if v == 0 {
		return nil
	}
	return ptr.ToDecimal(v)
}
