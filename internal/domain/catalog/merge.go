package catalog

import "time"

// Merge folds a model's partial records into one resolved Model.
//
// Partials must already be ordered by ascending merge precedence: an entry
// later in the slice unconditionally overwrites any field it defines, even
// when the new value is falsy. Absence, not falsiness, is what keeps an
// earlier value. Price tuple fields merge independently, so a later source
// supplying only the input price does not erase an earlier output price.
//
// The family is inferred from the id only when no source supplied it.
func Merge(id string, partials []PartialRecord, scrapedAt time.Time) *Model {
	m := &Model{
		ID:        id,
		ScrapedAt: scrapedAt,
	}

	for i := range partials {
		applyPartial(m, &partials[i])
	}

	if m.Family == "" {
		m.Family = InferFamily(id)
	}

	return m
}

func applyPartial(m *Model, p *PartialRecord) {
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.Family != nil {
		m.Family = *p.Family
	}
	if p.Provider != nil {
		m.Provider = *p.Provider
	}
	if p.Description != nil {
		m.Description = *p.Description
	}
	if p.ContextWindow != nil {
		v := *p.ContextWindow
		m.ContextWindow = &v
	}
	if p.MaxOutputTokens != nil {
		v := *p.MaxOutputTokens
		m.MaxOutputTokens = &v
	}
	if p.KnowledgeCutoff != nil {
		m.KnowledgeCutoff = *p.KnowledgeCutoff
	}
	if p.Deprecated != nil {
		m.Deprecated = *p.Deprecated
	}
	if p.Endpoints != nil {
		m.Endpoints = append([]string(nil), p.Endpoints...)
	}
	if p.CreatedAt != nil {
		v := *p.CreatedAt
		m.CreatedAt = &v
	}

	applyCapabilities(&m.Capabilities, &p.Capabilities)
	applyPricing(&m.Pricing, &p.Pricing)
}

func applyCapabilities(c *Capabilities, h *CapabilityHints) {
	if h.Vision != nil {
		c.Vision = *h.Vision
	}
	if h.Reasoning != nil {
		c.Reasoning = *h.Reasoning
	}
	if h.FunctionCalling != nil {
		c.FunctionCalling = *h.FunctionCalling
	}
	if h.StructuredOutput != nil {
		c.StructuredOutput = *h.StructuredOutput
	}
	if h.Streaming != nil {
		c.Streaming = *h.Streaming
	}
	if h.FineTuning != nil {
		c.FineTuning = *h.FineTuning
	}
	if h.Logprobs != nil {
		c.Logprobs = *h.Logprobs
	}
	if h.JSONMode != nil {
		c.JSONMode = *h.JSONMode
	}
	if h.Distillation != nil {
		c.Distillation = *h.Distillation
	}
	if h.PredictedOutputs != nil {
		c.PredictedOutputs = *h.PredictedOutputs
	}
}

func applyPricing(p *Pricing, h *PricingHints) {
	if h.InputPer1M != nil {
		v := *h.InputPer1M
		p.InputPer1M = &v
	}
	if h.OutputPer1M != nil {
		v := *h.OutputPer1M
		p.OutputPer1M = &v
	}
	if h.CachedInputPer1M != nil {
		v := *h.CachedInputPer1M
		p.CachedInputPer1M = &v
	}
}
