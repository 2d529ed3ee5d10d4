package handlers

import (
	"github.com/rs/zerolog"

	"llm-advisor/internal/domain/advisor"
	"llm-advisor/internal/domain/catalog"
)

// Provider wires HTTP handlers.
type Provider struct {
	Advisor *AdvisorHandler
	Sync    *SyncHandler
}

func NewProvider(advisorService *advisor.Service, syncService *catalog.SyncService, log zerolog.Logger) *Provider {
	return &Provider{
		Advisor: NewAdvisorHandler(advisorService, log),
		Sync:    NewSyncHandler(syncService, log),
	}
}
