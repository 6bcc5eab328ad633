package catalog

import (
	"time"

	decimal "github.com/shopspring/decimal"
)

// Capabilities holds the feature flags of a resolved model. Flags default to
// false when no source reports them.
type Capabilities struct {
	Vision           bool `json:"vision"`
	Reasoning        bool `json:"reasoning"`
	FunctionCalling  bool `json:"function_calling"`
	StructuredOutput bool `json:"structured_output"`
	Streaming        bool `json:"streaming"`
	FineTuning       bool `json:"fine_tuning"`
	Logprobs         bool `json:"logprobs"`
	JSONMode         bool `json:"json_mode"`
	Distillation     bool `json:"distillation"`
	PredictedOutputs bool `json:"predicted_outputs"`
}

// Pricing is the per-1M-token USD price tuple. Nil means no source reported
// the price.
type Pricing struct {
	InputPer1M       *decimal.Decimal `json:"input_price_per_1m"`
	OutputPer1M      *decimal.Decimal `json:"output_price_per_1m"`
	CachedInputPer1M *decimal.Decimal `json:"cached_input_price_per_1m"`
}

// Model is the fully resolved, canonical view of one model after merging all
// sources. Instances are immutable once published in a snapshot.
//
// Field defaults when no source supplies a value: strings are empty, numeric
// limits and timestamps are nil, booleans are false.
type Model struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Family          string       `json:"family"`
	Provider        string       `json:"provider"`
	Description     string       `json:"description"`
	ContextWindow   *int         `json:"context_window"`
	MaxOutputTokens *int         `json:"max_output_tokens"`
	KnowledgeCutoff string       `json:"knowledge_cutoff,omitempty"`
	Deprecated      bool         `json:"deprecated"`
	Capabilities    Capabilities `json:"capabilities"`
	Pricing         Pricing      `json:"pricing"`
	Endpoints       []string     `json:"endpoints,omitempty"`
	CreatedAt       *time.Time   `json:"created_at"`
	ScrapedAt       time.Time    `json:"scraped_at"`
}

// DisplayName returns the human readable name, falling back to the id.
func (m *Model) DisplayName() string {
	if m.Name != "" {
		return m.Name
	}
	return m.ID
}
