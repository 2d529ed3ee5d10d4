package catalog

import (
	"context"

	"github.com/rs/zerolog"

	"llm-advisor/internal/utils/platformerrors"
)

// SyncService replaces the models cache with a freshly normalized snapshot
// of the upstream listing. One attempt per invocation; retries are the
// caller's decision.
type SyncService struct {
	client ListingClient
	repo   ModelCacheRepository
	log    zerolog.Logger
}

// NewSyncService constructs the synchronizer.
func NewSyncService(client ListingClient, repo ModelCacheRepository, log zerolog.Logger) *SyncService {
	return &SyncService{
		client: client,
		repo:   repo,
		log:    log,
	}
}

// Sync fetches the upstream listing, filters and normalizes it, and swaps
// the cache contents. The fetch must fully succeed before the cache is
// touched: an upstream failure aborts without clearing anything.
func (s *SyncService) Sync(ctx context.Context) (*SyncResult, error) {
	upstream, err := s.client.ListModels(ctx)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "fetch upstream model listing")
	}
	s.log.Info().Int("count", len(upstream)).Msg("fetched upstream model listing")

	retained := FilterAndSort(upstream)
	s.log.Info().Int("count", len(retained)).Msg("models retained after filtering")

	rows := make([]CachedModel, 0, len(retained))
	for _, model := range retained {
		rows = append(rows, Normalize(model))
	}

	if err := s.repo.ReplaceAll(ctx, rows); err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "replace models cache")
	}
	s.log.Info().Int("count", len(rows)).Msg("models cache replaced")

	return &SyncResult{Count: len(rows), Models: rows}, nil
}
