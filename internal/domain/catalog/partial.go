package catalog

import (
	"time"

	decimal "github.com/shopspring/decimal"
)

// SourceKind identifies one channel of data for a provider. Every kind has a
// fixed global priority rank; the merge resolves conflicting fields in favor
// of the higher rank.
type SourceKind string

const (
	SourceStaticFallback SourceKind = "static-fallback"
	SourcePricingPage    SourceKind = "pricing-page"
	SourceDocsPage       SourceKind = "docs-page"
	SourceLiveAPI        SourceKind = "live-api"
)

// Rank returns the merge priority of the source kind. Higher wins.
func (k SourceKind) Rank() int {
	switch k {
	case SourceLiveAPI:
		return 3
	case SourceDocsPage:
		return 2
	case SourcePricingPage:
		return 1
	case SourceStaticFallback:
		return 0
	}
	return 0
}

// CapabilityHints is one source's view of a model's feature flags. Nil means
// the source said nothing about the flag; an explicit false is preserved and
// can overwrite a lower-priority true.
type CapabilityHints struct {
	Vision           *bool
	Reasoning        *bool
	FunctionCalling  *bool
	StructuredOutput *bool
	Streaming        *bool
	FineTuning       *bool
	Logprobs         *bool
	JSONMode         *bool
	Distillation     *bool
	PredictedOutputs *bool
}

// PricingHints is one source's partial view of the price tuple. The three
// fields merge independently.
type PricingHints struct {
	InputPer1M       *decimal.Decimal
	OutputPer1M      *decimal.Decimal
	CachedInputPer1M *decimal.Decimal
}

// PartialRecord is one source's view of one model. Every field is
// independently present-or-absent; absent fields never participate in the
// merge. A nil Endpoints slice is absent, an empty non-nil slice is an
// explicit "no endpoints".
type PartialRecord struct {
	Name            *string
	Family          *string
	Provider        *string
	Description     *string
	ContextWindow   *int
	MaxOutputTokens *int
	KnowledgeCutoff *string
	Deprecated      *bool
	Capabilities    CapabilityHints
	Pricing         PricingHints
	Endpoints       []string
	CreatedAt       *time.Time
}
