package advisorapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(ClientConfig{BaseURL: server.URL})
}

func TestCategories(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/categories" {
			t.Errorf("path = %q", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(CategoriesResponse{Categories: []CategoryInfo{
			{ID: "tool-use", Name: "Tool Use / Function Calling", KeyProperty: "tool_calling_accuracy"},
		}})
	})

	resp, err := client.Categories(context.Background())
	if err != nil {
		t.Fatalf("Categories failed: %v", err)
	}
	if len(resp.Categories) != 1 || resp.Categories[0].ID != "tool-use" {
		t.Errorf("categories = %+v", resp.Categories)
	}
}

func TestModel(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/model" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("category"); got != "tool-use" {
			t.Errorf("category = %q", got)
		}
		if got := r.URL.Query().Get("provider"); got != "anthropic" {
			t.Errorf("provider = %q", got)
		}
		_ = json.NewEncoder(w).Encode(GetModelResponse{
			Category:    "tool-use",
			Recommended: ModelInfo{OpenRouterID: "anthropic/claude-sonnet-4", Provider: "anthropic"},
		})
	})

	resp, err := client.Model(context.Background(), "tool-use", "anthropic")
	if err != nil {
		t.Fatalf("Model failed: %v", err)
	}
	if resp.Recommended.OpenRouterID != "anthropic/claude-sonnet-4" {
		t.Errorf("recommended = %+v", resp.Recommended)
	}
}

func TestModelOmitsEmptyProvider(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if _, present := r.URL.Query()["provider"]; present {
			t.Error("provider param sent despite being empty")
		}
		_ = json.NewEncoder(w).Encode(GetModelResponse{Category: "writer"})
	})

	if _, err := client.Model(context.Background(), "writer", ""); err != nil {
		t.Fatalf("Model failed: %v", err)
	}
}

func TestAPIErrorPayload(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "category 'nope' not found"})
	})

	_, err := client.Model(context.Background(), "nope", "")
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "category 'nope' not found" {
		t.Errorf("error = %q, want upstream message", err)
	}
}

func TestAPIErrorWithoutBody(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.Categories(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "advisor API error: status 502" {
		t.Errorf("error = %q", err)
	}
}
