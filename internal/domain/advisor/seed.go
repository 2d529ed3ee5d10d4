package advisor

import (
	"context"

	"llm-advisor/internal/utils/platformerrors"
)

// EnsureDefaults seeds the fixed category set exactly once: only when the
// categories table is empty at startup.
func (s *Service) EnsureDefaults(ctx context.Context) error {
	count, err := s.categories.Count(ctx)
	if err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "count categories")
	}
	if count > 0 {
		return nil
	}

	if err := s.categories.CreateAll(ctx, DefaultCategories()); err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "seed default categories")
	}
	s.log.Info().Int("count", len(DefaultCategories())).Msg("seeded default categories")
	return nil
}

// DefaultCategories returns the fixed category set seeded at first startup.
func DefaultCategories() []Category {
	return []Category{
		{
			ID:            "triage",
			Name:          "Triage / Classification",
			Description:   "Quick yes/no decisions, sentiment analysis, routing. Ideal when speed and cost matter more than maximum quality.",
			KeyProperty:   "speed_and_cost",
			SelectedModel: "anthropic/claude-3.5-haiku",
			Fallback1:     ptr("openai/gpt-4o-mini"),
			Fallback2:     ptr("google/gemini-2.0-flash-exp"),
		},
		{
			ID:            "writer",
			Name:          "Writer / Prose",
			Description:   "Writing emails, drafting copy, summarizing. Needs strong language quality and a natural style.",
			KeyProperty:   "language_quality",
			SelectedModel: "anthropic/claude-sonnet-4",
			Fallback1:     ptr("openai/gpt-4o"),
			Fallback2:     ptr("google/gemini-2.0-pro-exp"),
		},
		{
			ID:            "analyst",
			Name:          "Analyst / Decisions",
			Description:   "Complex analysis, root-cause work, strategic decisions. Needs deep understanding and sound judgment.",
			KeyProperty:   "intelligence",
			SelectedModel: "anthropic/claude-sonnet-4",
			Fallback1:     ptr("openai/gpt-4o"),
			Fallback2:     ptr("google/gemini-2.0-pro-exp"),
		},
		{
			ID:            "coder",
			Name:          "Coder / Programming",
			Description:   "Writing code, debugging, refactoring. Needs excellent code quality and framework knowledge.",
			KeyProperty:   "code_quality",
			SelectedModel: "anthropic/claude-sonnet-4",
			Fallback1:     ptr("openai/gpt-4o"),
			Fallback2:     ptr("google/gemini-2.0-pro-exp"),
		},
		{
			ID:            "tool-use",
			Name:          "Tool Use / Function Calling",
			Description:   "For agents that invoke tools and functions. Needs reliable tool calling with correct parameters.",
			KeyProperty:   "tool_calling_accuracy",
			SelectedModel: "anthropic/claude-sonnet-4",
			Fallback1:     ptr("openai/gpt-4o"),
			Fallback2:     ptr("google/gemini-2.0-pro-exp"),
		},
		{
			ID:            "structured",
			Name:          "Structured Output",
			Description:   "Generating JSON, schema-based extraction. Needs dependable, valid output that matches the schema exactly.",
			KeyProperty:   "output_reliability",
			SelectedModel: "openai/gpt-4o",
			Fallback1:     ptr("anthropic/claude-sonnet-4"),
			Fallback2:     ptr("google/gemini-2.0-pro-exp"),
		},
		{
			ID:            "reasoning",
			Name:          "Deep Reasoning",
			Description:   "Complex multi-step problems, mathematical reasoning. For tasks that require extended thinking.",
			KeyProperty:   "reasoning_depth",
			SelectedModel: "anthropic/claude-opus-4",
			Fallback1:     ptr("openai/o3-mini"),
			Fallback2:     ptr("google/gemini-2.0-flash-thinking-exp"),
		},
		{
			ID:            "long-context",
			Name:          "Long Context",
			Description:   "Large documents, RAG with many chunks. Needs a big context window (200k+) and strong retrieval behavior.",
			KeyProperty:   "context_window",
			SelectedModel: "google/gemini-2.0-pro-exp",
			Fallback1:     ptr("anthropic/claude-sonnet-4"),
			Fallback2:     ptr("openai/gpt-4o"),
		},
		{
			ID:            "vision",
			Name:          "Vision / Image Analysis",
			Description:   "Image analysis, screenshots, documents with figures. Needs strong multimodal capabilities.",
			KeyProperty:   "vision_quality",
			SelectedModel: "anthropic/claude-sonnet-4",
			Fallback1:     ptr("openai/gpt-4o"),
			Fallback2:     ptr("google/gemini-2.0-pro-exp"),
		},
		{
			ID:            "budget",
			Name:          "Budget / Savings",
			Description:   "Maximum savings on simple tasks. For workloads where cost matters more than quality.",
			KeyProperty:   "lowest_cost",
			SelectedModel: "google/gemini-2.0-flash-exp",
			Fallback1:     ptr("openai/gpt-4o-mini"),
			Fallback2:     ptr("anthropic/claude-3.5-haiku"),
		},
	}
}

func ptr(s string) *string {
	return &s
}
