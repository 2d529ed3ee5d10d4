package catalog

import (
	"context"
	"time"
)

// UpstreamModel is one entry of the raw OpenRouter model listing, reduced to
// the fields the synchronizer consumes.
type UpstreamModel struct {
	ID            string
	Name          string
	ContextLength int
	PromptPrice   string
	CompletePrice string
	Modality      string
}

// ListingClient fetches the full model listing from the upstream catalog.
type ListingClient interface {
	ListModels(ctx context.Context) ([]UpstreamModel, error)
}

// CachedModel is the normalized snapshot of one upstream model as persisted
// in the models cache. The whole cache is replaced on every sync run.
type CachedModel struct {
	ID             string
	Name           string
	Provider       string
	OpenRouterID   string
	VercelID       *string
	ContextWindow  *int
	InputPrice     *float64
	OutputPrice    *float64
	CachedPrice    *float64
	SupportsTools  bool
	SupportsVision bool
	SupportsJSON   bool
	Strengths      []string
	CachedAt       time.Time
}

// ModelFilter narrows cache lookups.
type ModelFilter struct {
	Provider *string
}

// ModelCacheRepository persists the denormalized catalog snapshot.
type ModelCacheRepository interface {
	// ReplaceAll clears the cache and inserts the given rows in one
	// transaction.
	ReplaceAll(ctx context.Context, models []CachedModel) error
	// FindByFilter returns cached models ordered by provider then name.
	FindByFilter(ctx context.Context, filter ModelFilter) ([]CachedModel, error)
}

// ModelPricing is the per-million-token price triple exposed by the API.
type ModelPricing struct {
	Input  float64  `json:"input"`
	Output float64  `json:"output"`
	Cached *float64 `json:"cached,omitempty"`
}

// ModelInfo is the API-facing view of a model, either hydrated from the
// cache or synthesized from a bare identifier.
type ModelInfo struct {
	Name          string       `json:"name"`
	OpenRouterID  string       `json:"openrouterId"`
	VercelID      *string      `json:"vercelId"`
	Provider      string       `json:"provider"`
	Pricing       ModelPricing `json:"pricing"`
	ContextWindow *int         `json:"contextWindow"`
	Strengths     []string     `json:"strengths,omitempty"`
}

// Info builds the API view of a cached row.
func (m *CachedModel) Info() ModelInfo {
	pricing := ModelPricing{Cached: m.CachedPrice}
	if m.InputPrice != nil {
		pricing.Input = *m.InputPrice
	}
	if m.OutputPrice != nil {
		pricing.Output = *m.OutputPrice
	}

	return ModelInfo{
		Name:          m.Name,
		OpenRouterID:  m.OpenRouterID,
		VercelID:      m.VercelID,
		Provider:      m.Provider,
		Pricing:       pricing,
		ContextWindow: m.ContextWindow,
		Strengths:     m.Strengths,
	}
}

// SyncResult reports one completed synchronization run.
type SyncResult struct {
	Count  int
	Models []CachedModel
}
