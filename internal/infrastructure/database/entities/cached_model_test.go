package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"llm-advisor/internal/domain/catalog"
)

func TestCachedModelConversion(t *testing.T) {
	price := 3.0
	window := 200_000
	vercelID := "claude-sonnet-4-20250514"

	domainModel := &catalog.CachedModel{
		ID:            "anthropic/claude-sonnet-4",
		Name:          "Claude Sonnet 4",
		Provider:      "anthropic",
		OpenRouterID:  "anthropic/claude-sonnet-4",
		VercelID:      &vercelID,
		ContextWindow: &window,
		InputPrice:    &price,
		SupportsTools: true,
		SupportsJSON:  true,
		Strengths:     []string{"instructions", "coding", "safety", "tool-calling", "balanced"},
		CachedAt:      time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}

	entity, err := NewCachedModel(domainModel)
	require.NoError(t, err)
	require.JSONEq(t, `["instructions","coding","safety","tool-calling","balanced"]`, string(entity.Strengths))

	roundTripped, err := entity.EtoD()
	require.NoError(t, err)
	require.Equal(t, domainModel, roundTripped)
}

func TestCachedModelNoStrengths(t *testing.T) {
	entity, err := NewCachedModel(&catalog.CachedModel{ID: "cohere/command-r"})
	require.NoError(t, err)
	require.Empty(t, entity.Strengths)

	domainModel, err := entity.EtoD()
	require.NoError(t, err)
	require.Nil(t, domainModel.Strengths)
}
