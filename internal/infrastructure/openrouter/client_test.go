package openrouter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"llm-advisor/internal/utils/platformerrors"
)

const listingPayload = `{
  "data": [
    {
      "id": "anthropic/claude-sonnet-4",
      "name": "Claude Sonnet 4",
      "context_length": 200000,
      "pricing": {"prompt": "0.000003", "completion": "0.000015"},
      "architecture": {"modality": "multimodal"}
    },
    {
      "id": "openai/gpt-4o-mini",
      "name": "GPT-4o Mini",
      "context_length": 128000,
      "pricing": {"prompt": "0.00000015", "completion": "0.0000006"},
      "architecture": {"modality": "text->text"}
    }
  ]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(ClientConfig{BaseURL: server.URL}, zerolog.Nop())
}

func TestListModels(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/models" {
			t.Errorf("path = %q, want /models", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(listingPayload))
	})

	models, err := client.ListModels(context.Background())
	if err != nil {
		t.Fatalf("ListModels failed: %v", err)
	}

	if len(models) != 2 {
		t.Fatalf("models = %d, want 2", len(models))
	}
	first := models[0]
	if first.ID != "anthropic/claude-sonnet-4" || first.Name != "Claude Sonnet 4" {
		t.Errorf("first model = %+v", first)
	}
	if first.ContextLength != 200000 {
		t.Errorf("ContextLength = %d", first.ContextLength)
	}
	if first.PromptPrice != "0.000003" || first.CompletePrice != "0.000015" {
		t.Errorf("prices = %q/%q", first.PromptPrice, first.CompletePrice)
	}
	if first.Modality != "multimodal" {
		t.Errorf("Modality = %q", first.Modality)
	}
}

func TestListModelsUpstreamError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.ListModels(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if !platformerrors.IsType(err, platformerrors.ErrorTypeExternal) {
		t.Errorf("error = %v, want EXTERNAL", err)
	}
}

func TestListModelsEmptyListing(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data": []}`))
	})

	models, err := client.ListModels(context.Background())
	if err != nil {
		t.Fatalf("ListModels failed: %v", err)
	}
	if len(models) != 0 {
		t.Errorf("models = %d, want 0", len(models))
	}
}
