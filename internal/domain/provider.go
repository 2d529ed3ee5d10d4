package domain

import (
	"github.com/google/wire"

	"llm-advisor/internal/domain/advisor"
	"llm-advisor/internal/domain/catalog"
)

// ServiceProvider provides all domain services
var ServiceProvider = wire.NewSet(
	catalog.NewSyncService,
	advisor.NewService,
)
