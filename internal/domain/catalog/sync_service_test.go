package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"llm-advisor/internal/utils/platformerrors"
)

type stubListingClient struct {
	models []UpstreamModel
	err    error
}

func (c *stubListingClient) ListModels(ctx context.Context) ([]UpstreamModel, error) {
	return c.models, c.err
}

type recordingCacheRepo struct {
	replaced [][]CachedModel
	err      error
}

func (r *recordingCacheRepo) ReplaceAll(ctx context.Context, models []CachedModel) error {
	if r.err != nil {
		return r.err
	}
	r.replaced = append(r.replaced, models)
	return nil
}

func (r *recordingCacheRepo) FindByFilter(ctx context.Context, filter ModelFilter) ([]CachedModel, error) {
	if len(r.replaced) == 0 {
		return nil, nil
	}
	return r.replaced[len(r.replaced)-1], nil
}

func newTestSyncService(client ListingClient, repo ModelCacheRepository) *SyncService {
	return NewSyncService(client, repo, zerolog.Nop())
}

func TestSyncReplacesCache(t *testing.T) {
	client := &stubListingClient{models: []UpstreamModel{
		{ID: "anthropic/claude-sonnet-4", Name: "Claude Sonnet 4", ContextLength: 200_000, PromptPrice: "0.000003", CompletePrice: "0.000015"},
		{ID: "qwen/qwen-2.5-72b", Name: "Qwen 2.5"},
		{ID: "openai/gpt-4o", Name: "GPT-4o", PromptPrice: "0.0000025", CompletePrice: "0.00001"},
	}}
	repo := &recordingCacheRepo{}

	result, err := newTestSyncService(client, repo).Sync(context.Background())
	if err != nil {
		t.Fatalf("Sync failed: %v", err)
	}

	if result.Count != 2 {
		t.Errorf("Count = %d, want 2", result.Count)
	}
	if len(repo.replaced) != 1 {
		t.Fatalf("ReplaceAll called %d times, want 1", len(repo.replaced))
	}
	stored := repo.replaced[0]
	if len(stored) != 2 {
		t.Fatalf("stored %d models, want 2", len(stored))
	}
	if stored[0].OpenRouterID != "anthropic/claude-sonnet-4" || stored[1].OpenRouterID != "openai/gpt-4o" {
		t.Errorf("stored order = %q, %q", stored[0].OpenRouterID, stored[1].OpenRouterID)
	}
}

func TestSyncUpstreamFailureLeavesCacheUntouched(t *testing.T) {
	upstreamErr := platformerrors.NewError(context.Background(), platformerrors.LayerInfrastructure,
		platformerrors.ErrorTypeExternal, "OpenRouter models API error (status 502)", nil)
	client := &stubListingClient{err: upstreamErr}
	repo := &recordingCacheRepo{}

	_, err := newTestSyncService(client, repo).Sync(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if !platformerrors.IsType(err, platformerrors.ErrorTypeExternal) {
		t.Errorf("error type not preserved: %v", err)
	}
	if len(repo.replaced) != 0 {
		t.Errorf("cache was touched after upstream failure")
	}
}

func TestSyncRepositoryFailure(t *testing.T) {
	client := &stubListingClient{models: []UpstreamModel{
		{ID: "anthropic/claude-sonnet-4", Name: "Claude Sonnet 4"},
	}}
	repo := &recordingCacheRepo{err: errors.New("disk full")}

	_, err := newTestSyncService(client, repo).Sync(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestSyncEmptyUpstreamClearsCache(t *testing.T) {
	repo := &recordingCacheRepo{}
	svc := newTestSyncService(&stubListingClient{models: []UpstreamModel{
		{ID: "anthropic/claude-sonnet-4", Name: "Claude Sonnet 4"},
	}}, repo)
	if _, err := svc.Sync(context.Background()); err != nil {
		t.Fatalf("first sync failed: %v", err)
	}

	svc = newTestSyncService(&stubListingClient{}, repo)
	result, err := svc.Sync(context.Background())
	if err != nil {
		t.Fatalf("second sync failed: %v", err)
	}
	if result.Count != 0 {
		t.Errorf("Count = %d, want 0", result.Count)
	}
	if stored := repo.replaced[len(repo.replaced)-1]; len(stored) != 0 {
		t.Errorf("cache not cleared, %d rows remain", len(stored))
	}
}
