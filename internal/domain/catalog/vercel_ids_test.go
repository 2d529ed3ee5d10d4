package catalog

import "testing"

func TestVercelID(t *testing.T) {
	tests := []struct {
		openRouterID string
		want         string
	}{
		{"anthropic/claude-sonnet-4", "claude-sonnet-4-20250514"},
		{"anthropic/claude-3.5-haiku", "claude-3-5-haiku-20241022"},
		{"openai/gpt-4o", "gpt-4o"},
		{"openai/o3-mini", "o3-mini"},
		{"google/gemini-2.0-flash-exp", "gemini-2.0-flash-exp"},
		{"mistralai/mixtral-8x7b-instruct", "open-mixtral-8x7b"},
		{"deepseek/deepseek-reasoner", "deepseek-reasoner"},
	}

	for _, tt := range tests {
		got := VercelID(tt.openRouterID)
		if got == nil || *got != tt.want {
			t.Errorf("VercelID(%q) = %v, want %q", tt.openRouterID, got, tt.want)
		}
	}
}

func TestVercelIDUnknown(t *testing.T) {
	// Exact match only: near-misses and unknown ids have no mapping.
	for _, id := range []string{"", "anthropic/claude-sonnet-4-20250514", "perplexity/sonar", "ANTHROPIC/CLAUDE-SONNET-4"} {
		if got := VercelID(id); got != nil {
			t.Errorf("VercelID(%q) = %q, want nil", id, *got)
		}
	}
}
