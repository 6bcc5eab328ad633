package handlers

import (
	"crypto/md5"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"catalog-api/internal/domain/catalog"
	"catalog-api/internal/utils/platformerrors"
)

// ModelsHandler serves the read side of the catalog. Every request reads one
// immutable snapshot, so filters and sorts never race a refresh.
type ModelsHandler struct {
	store *catalog.Store
}

func NewModelsHandler(store *catalog.Store) *ModelsHandler {
	return &ModelsHandler{store: store}
}

// listModelsQuery holds the supported filters. Capability flags are
// tri-state: absent means no filter, true/false require that value.
type listModelsQuery struct {
	Family            string   `form:"family"`
	Provider          string   `form:"provider"`
	Search            string   `form:"q"`
	MinContext        int      `form:"min_context"`
	MaxInputPrice     *float64 `form:"max_input_price"`
	MaxOutputPrice    *float64 `form:"max_output_price"`
	IncludeDeprecated bool     `form:"include_deprecated"`
	Sort              string   `form:"sort"`
	Order             string   `form:"order"`

	Vision           *bool `form:"vision"`
	Reasoning        *bool `form:"reasoning"`
	FunctionCalling  *bool `form:"function_calling"`
	StructuredOutput *bool `form:"structured_output"`
	Streaming        *bool `form:"streaming"`
	FineTuning       *bool `form:"fine_tuning"`
	Logprobs         *bool `form:"logprobs"`
	JSONMode         *bool `form:"json_mode"`
	Distillation     *bool `form:"distillation"`
	PredictedOutputs *bool `form:"predicted_outputs"`
}

type listModelsResponse struct {
	Object        string           `json:"object"`
	Data          []*catalog.Model `json:"data"`
	Total         int              `json:"total"`
	LastRefreshed *time.Time       `json:"last_refreshed"`
}

// List serves GET /v1/models with filtering, sorting and ETag-based caching.
// The ETag changes with every published snapshot.
func (h *ModelsHandler) List(c *gin.Context) {
	var query listModelsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		platformerrors.WriteValidationError(c, "invalid query parameters: "+err.Error())
		return
	}
	if !validSort(query.Sort) {
		platformerrors.WriteValidationError(c, fmt.Sprintf("unsupported sort key %q", query.Sort))
		return
	}

	snapshot := h.store.Current()

	etag := snapshotETag(snapshot)
	if match := c.GetHeader("If-None-Match"); match != "" && match == etag {
		c.Status(http.StatusNotModified)
		return
	}
	c.Header("ETag", etag)

	models := snapshot.List
	if !query.IncludeDeprecated {
		models = snapshot.NonDeprecated
	}
	filtered := filterModels(models, &query)
	sortModels(filtered, query.Sort, query.Order)

	var lastRefreshed *time.Time
	if !snapshot.LastRefreshed.IsZero() {
		t := snapshot.LastRefreshed
		lastRefreshed = &t
	}

	c.JSON(http.StatusOK, listModelsResponse{
		Object:        "list",
		Data:          filtered,
		Total:         len(filtered),
		LastRefreshed: lastRefreshed,
	})
}

// Get serves GET /v1/models/:id.
func (h *ModelsHandler) Get(c *gin.Context) {
	id := c.Param("id")
	model, ok := h.store.Lookup(id)
	if !ok {
		platformerrors.WriteNotFound(c, fmt.Sprintf("model %q not found", id))
		return
	}
	c.JSON(http.StatusOK, model)
}

func snapshotETag(s *catalog.Snapshot) string {
	return fmt.Sprintf("%q", fmt.Sprintf("%x",
		md5.Sum([]byte(s.LastRefreshed.UTC().Format(time.RFC3339Nano)))))
}

func filterModels(models []*catalog.Model, q *listModelsQuery) []*catalog.Model {
	result := make([]*catalog.Model, 0, len(models))
	for _, m := range models {
		if matchesQuery(m, q) {
			result = append(result, m)
		}
	}
	return result
}

func matchesQuery(m *catalog.Model, q *listModelsQuery) bool {
	if q.Family != "" && !strings.EqualFold(m.Family, q.Family) {
		return false
	}
	if q.Provider != "" && !strings.EqualFold(m.Provider, q.Provider) {
		return false
	}
	if q.Search != "" {
		needle := strings.ToLower(q.Search)
		if !strings.Contains(strings.ToLower(m.ID), needle) &&
			!strings.Contains(strings.ToLower(m.Name), needle) {
			return false
		}
	}
	if q.MinContext > 0 {
		if m.ContextWindow == nil || *m.ContextWindow < q.MinContext {
			return false
		}
	}
	// Price ceilings exclude models whose price is unknown: a caller with a
	// budget cannot assume an unpriced model fits it.
	if !priceAtMost(m.Pricing.InputPer1M, q.MaxInputPrice) {
		return false
	}
	if !priceAtMost(m.Pricing.OutputPer1M, q.MaxOutputPrice) {
		return false
	}

	caps := m.Capabilities
	for _, check := range []struct {
		filter *bool
		value  bool
	}{
		{q.Vision, caps.Vision},
		{q.Reasoning, caps.Reasoning},
		{q.FunctionCalling, caps.FunctionCalling},
		{q.StructuredOutput, caps.StructuredOutput},
		{q.Streaming, caps.Streaming},
		{q.FineTuning, caps.FineTuning},
		{q.Logprobs, caps.Logprobs},
		{q.JSONMode, caps.JSONMode},
		{q.Distillation, caps.Distillation},
		{q.PredictedOutputs, caps.PredictedOutputs},
	} {
		if check.filter != nil && *check.filter != check.value {
			return false
		}
	}
	return true
}

func priceAtMost(price *decimal.Decimal, ceiling *float64) bool {
	if ceiling == nil {
		return true
	}
	if price == nil {
		return false
	}
	return price.LessThanOrEqual(decimal.NewFromFloat(*ceiling))
}

func validSort(key string) bool {
	switch key {
	case "", "name", "id", "context_window", "input_price", "output_price", "created":
		return true
	}
	return false
}

// sortModels orders the filtered list. The input is already sorted by
// display name, so the empty key is a no-op. Models missing the sort field
// go last.
func sortModels(models []*catalog.Model, key, order string) {
	desc := strings.EqualFold(order, "desc")

	var less func(a, b *catalog.Model) bool
	switch key {
	case "", "name":
		if !desc {
			return
		}
		less = func(a, b *catalog.Model) bool {
			an, bn := strings.ToLower(a.DisplayName()), strings.ToLower(b.DisplayName())
			if an != bn {
				return an < bn
			}
			return a.ID < b.ID
		}
	case "id":
		less = func(a, b *catalog.Model) bool { return a.ID < b.ID }
	case "context_window":
		less = func(a, b *catalog.Model) bool {
			return intOrMin(a.ContextWindow) < intOrMin(b.ContextWindow)
		}
	case "input_price":
		less = priceLess(func(m *catalog.Model) *decimal.Decimal { return m.Pricing.InputPer1M })
	case "output_price":
		less = priceLess(func(m *catalog.Model) *decimal.Decimal { return m.Pricing.OutputPer1M })
	case "created":
		less = func(a, b *catalog.Model) bool {
			return timeOrZero(a.CreatedAt).Before(timeOrZero(b.CreatedAt))
		}
	default:
		return
	}

	sort.SliceStable(models, func(i, j int) bool {
		if desc {
			return less(models[j], models[i])
		}
		return less(models[i], models[j])
	})
}

func priceLess(field func(*catalog.Model) *decimal.Decimal) func(a, b *catalog.Model) bool {
	return func(a, b *catalog.Model) bool {
		ap, bp := field(a), field(b)
		switch {
		case ap == nil && bp == nil:
			return a.ID < b.ID
		case ap == nil:
			return false
		case bp == nil:
			return true
		}
		return ap.LessThan(*bp)
	}
}

func intOrMin(v *int) int {
	if v == nil {
		return -1
	}
	return *v
}

func timeOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
