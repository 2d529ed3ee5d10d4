package advisor

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"llm-advisor/internal/domain/catalog"
	"llm-advisor/internal/utils/platformerrors"
)

// defaultModelListLimit caps the models listing when no limit is given.
const defaultModelListLimit = 100

// Recommendation is the resolution result for one category: the primary
// model after provider-filter substitution plus the surviving fallbacks.
type Recommendation struct {
	Category    string              `json:"category"`
	Recommended catalog.ModelInfo   `json:"recommended"`
	Fallbacks   []catalog.ModelInfo `json:"fallbacks"`
}

// ModelListing is a filtered page of the models cache.
type ModelListing struct {
	Models   []catalog.ModelInfo `json:"models"`
	Total    int                 `json:"total"`
	CachedAt *string             `json:"cached_at,omitempty"`
}

// Service resolves categories to recommended models and manages the
// operator-facing category configuration.
type Service struct {
	categories CategoryRepository
	models     catalog.ModelCacheRepository
	log        zerolog.Logger
}

// NewService constructs the advisor service.
func NewService(categories CategoryRepository, models catalog.ModelCacheRepository, log zerolog.Logger) *Service {
	return &Service{
		categories: categories,
		models:     models,
		log:        log,
	}
}

// ListCategories returns all categories ordered by id.
func (s *Service) ListCategories(ctx context.Context) ([]Category, error) {
	return s.categories.FindAll(ctx)
}

// GetCategory returns one category or a NOT_FOUND error.
func (s *Service) GetCategory(ctx context.Context, id string) (*Category, error) {
	return s.categories.FindByID(ctx, id)
}

// UpdateCategory applies an operator selection change and returns the
// updated category. The selected model cannot be cleared, only replaced.
func (s *Service) UpdateCategory(ctx context.Context, id string, input UpdateCategoryInput) (*Category, error) {
	if input.SelectedModel != nil && strings.TrimSpace(*input.SelectedModel) == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation, "selectedModel must not be empty", nil)
	}

	if _, err := s.categories.FindByID(ctx, id); err != nil {
		return nil, err
	}

	if !input.IsEmpty() {
		if err := s.categories.Update(ctx, id, input); err != nil {
			return nil, err
		}
	}

	return s.categories.FindByID(ctx, id)
}

// Resolve returns the recommended model for a category plus its ordered
// fallbacks. A provider filter is advisory: when neither fallback matches,
// the original selection is returned unfiltered rather than failing.
func (s *Service) Resolve(ctx context.Context, categoryID, providerFilter string) (*Recommendation, error) {
	category, err := s.categories.FindByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	cached, err := s.models.FindByFilter(ctx, catalog.ModelFilter{})
	if err != nil {
		return nil, err
	}
	byID := make(map[string]catalog.CachedModel, len(cached))
	for _, model := range cached {
		byID[model.OpenRouterID] = model
	}

	matchesProvider := func(openRouterID string) bool {
		if providerFilter == "" {
			return true
		}
		return strings.EqualFold(catalog.ExtractProvider(openRouterID), providerFilter)
	}

	recommendedID := category.SelectedModel
	if providerFilter != "" && !matchesProvider(recommendedID) {
		for _, alternative := range configuredFallbacks(category) {
			if matchesProvider(alternative) {
				recommendedID = alternative
				break
			}
		}
	}

	recommended := s.buildModelInfo(byID, recommendedID)
	if recommended == nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeNotFound, "model '"+recommendedID+"' not found", nil)
	}

	fallbacks := make([]catalog.ModelInfo, 0, 2)
	for _, fallbackID := range configuredFallbacks(category) {
		if fallbackID == recommendedID || !matchesProvider(fallbackID) {
			continue
		}
		if info := s.buildModelInfo(byID, fallbackID); info != nil {
			fallbacks = append(fallbacks, *info)
		}
	}

	return &Recommendation{
		Category:    categoryID,
		Recommended: *recommended,
		Fallbacks:   fallbacks,
	}, nil
}

// ListModels returns a filtered page of the models cache, ordered by
// provider then name. Total counts all matches before the limit.
func (s *Service) ListModels(ctx context.Context, provider string, limit int) (*ModelListing, error) {
	filter := catalog.ModelFilter{}
	if provider != "" {
		filter.Provider = &provider
	}

	rows, err := s.models.FindByFilter(ctx, filter)
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = defaultModelListLimit
	}
	limited := rows
	if len(limited) > limit {
		limited = limited[:limit]
	}

	listing := &ModelListing{
		Models: make([]catalog.ModelInfo, 0, len(limited)),
		Total:  len(rows),
	}
	for _, row := range limited {
		listing.Models = append(listing.Models, row.Info())
	}
	if len(limited) > 0 {
		cachedAt := limited[0].CachedAt.UTC().Format(time.RFC3339)
		listing.CachedAt = &cachedAt
	}

	return listing, nil
}

// buildModelInfo prefers the cached row and falls back to synthesized
// minimal info for identifiers missing from the cache.
func (s *Service) buildModelInfo(byID map[string]catalog.CachedModel, openRouterID string) *catalog.ModelInfo {
	if cached, ok := byID[openRouterID]; ok {
		info := cached.Info()
		return &info
	}
	return catalog.SynthesizeInfo(openRouterID)
}

// configuredFallbacks returns the non-empty fallback ids in configured order.
func configuredFallbacks(category *Category) []string {
	ids := make([]string, 0, 2)
	for _, fallback := range []*string{category.Fallback1, category.Fallback2} {
		if fallback != nil && *fallback != "" {
			ids = append(ids, *fallback)
		}
	}
	return ids
}
