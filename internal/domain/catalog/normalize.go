package catalog

import (
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// relevantProviders is the allow-list of vendor slugs retained by sync.
var relevantProviders = map[string]bool{
	"anthropic":  true,
	"openai":     true,
	"google":     true,
	"meta-llama": true,
	"mistralai":  true,
	"deepseek":   true,
	"cohere":     true,
	"perplexity": true,
}

// longContextThreshold is the context length at which a model earns the
// long-context strength tag.
const longContextThreshold = 200_000

// ExtractProvider returns the vendor slug preceding the first '/' of a
// qualified model identifier, or "unknown" for an empty identifier.
func ExtractProvider(modelID string) string {
	provider, _, _ := strings.Cut(modelID, "/")
	if provider == "" {
		return "unknown"
	}
	return provider
}

// ParsePrice converts an upstream per-token price string into a
// per-million-token price. Non-numeric input normalizes to 0.
func ParsePrice(priceStr string) float64 {
	price, err := strconv.ParseFloat(strings.TrimSpace(priceStr), 64)
	if err != nil {
		return 0
	}
	return price * 1_000_000
}

// IsRelevant reports whether the model's vendor slug is on the allow-list.
func IsRelevant(model UpstreamModel) bool {
	return relevantProviders[strings.ToLower(ExtractProvider(model.ID))]
}

// IsChatCapable rejects pure embedding/image entries. Models without a
// modality tag are usually chat models and pass.
func IsChatCapable(model UpstreamModel) bool {
	modality := strings.ToLower(model.Modality)
	if modality == "" {
		return true
	}
	return strings.Contains(modality, "text") || strings.Contains(modality, "multimodal")
}

// FilterAndSort keeps relevant chat-capable models and orders them
// deterministically by vendor slug, then display name (locale-aware).
func FilterAndSort(models []UpstreamModel) []UpstreamModel {
	kept := make([]UpstreamModel, 0, len(models))
	for _, model := range models {
		if IsRelevant(model) && IsChatCapable(model) {
			kept = append(kept, model)
		}
	}

	coll := collate.New(language.English)
	sort.SliceStable(kept, func(i, j int) bool {
		providerI := ExtractProvider(kept[i].ID)
		providerJ := ExtractProvider(kept[j].ID)
		if providerI != providerJ {
			return providerI < providerJ
		}
		return coll.CompareString(kept[i].Name, kept[j].Name) < 0
	})

	return kept
}

// DeriveStrengths maps model identifier substrings and context length onto
// capability tags. The result is deduplicated, insertion ordered.
func DeriveStrengths(model UpstreamModel) []string {
	var strengths []string
	add := func(tags ...string) {
		for _, tag := range tags {
			found := false
			for _, existing := range strengths {
				if existing == tag {
					found = true
					break
				}
			}
			if !found {
				strengths = append(strengths, tag)
			}
		}
	}

	id := strings.ToLower(model.ID)

	if strings.Contains(id, "claude") {
		add("instructions", "coding", "safety")
		switch {
		case strings.Contains(id, "sonnet"):
			add("tool-calling", "balanced")
		case strings.Contains(id, "opus"):
			add("reasoning", "complex-tasks")
		case strings.Contains(id, "haiku"):
			add("speed", "cost-effective")
		}
	}

	if strings.Contains(id, "gpt-4o") {
		add("multimodal", "structured-output")
		if strings.Contains(id, "mini") {
			add("speed", "cost-effective")
		} else {
			add("tool-calling", "reasoning")
		}
	}

	if strings.Contains(id, "o1") || strings.Contains(id, "o3") {
		add("reasoning", "math", "complex-problems")
	}

	if strings.Contains(id, "gemini") {
		if strings.Contains(id, "flash") {
			add("speed", "cost-effective")
		}
		if strings.Contains(id, "thinking") {
			add("reasoning")
		}
		if strings.Contains(id, "pro") {
			add("long-context", "multimodal")
		}
	}

	if strings.Contains(id, "deepseek") {
		add("coding", "cost-effective")
		if strings.Contains(id, "reasoner") {
			add("reasoning")
		}
	}

	if model.ContextLength >= longContextThreshold {
		add("long-context")
	}

	return strengths
}

// Normalize derives the cached row for one retained upstream entry.
func Normalize(model UpstreamModel) CachedModel {
	inputPrice := ParsePrice(model.PromptPrice)
	outputPrice := ParsePrice(model.CompletePrice)

	var contextWindow *int
	if model.ContextLength > 0 {
		length := model.ContextLength
		contextWindow = &length
	}

	return CachedModel{
		ID:             model.ID,
		Name:           model.Name,
		Provider:       strings.ToLower(ExtractProvider(model.ID)),
		OpenRouterID:   model.ID,
		VercelID:       VercelID(model.ID),
		ContextWindow:  contextWindow,
		InputPrice:     &inputPrice,
		OutputPrice:    &outputPrice,
		CachedPrice:    nil, // the upstream listing carries no cached-token price
		SupportsTools:  strings.Contains(model.ID, "claude") || strings.Contains(model.ID, "gpt-4"),
		SupportsVision: strings.Contains(strings.ToLower(model.Modality), "multimodal"),
		SupportsJSON:   true,
		Strengths:      DeriveStrengths(model),
	}
}

// SynthesizeInfo builds minimal model info for an identifier that is absent
// from the cache: provider from the slug, a humanized name, the static
// Vercel mapping, zero pricing. Returns nil for an empty identifier.
func SynthesizeInfo(openRouterID string) *ModelInfo {
	if strings.TrimSpace(openRouterID) == "" {
		return nil
	}

	name := openRouterID
	if _, rest, ok := strings.Cut(openRouterID, "/"); ok && rest != "" {
		name = strings.ReplaceAll(rest, "-", " ")
	}
	name = capitalize(name)

	return &ModelInfo{
		Name:          name,
		OpenRouterID:  openRouterID,
		VercelID:      VercelID(openRouterID),
		Provider:      ExtractProvider(openRouterID),
		Pricing:       ModelPricing{},
		ContextWindow: nil,
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
