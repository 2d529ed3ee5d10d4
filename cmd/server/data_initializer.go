package main

import (
	"context"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"llm-advisor/internal/domain/advisor"
	"llm-advisor/internal/infrastructure/database"
)

// DataInitializer brings the store into a usable state at startup: schema
// migrations plus the one-time category seed.
type DataInitializer struct {
	DB      *gorm.DB
	Advisor *advisor.Service
	Log     zerolog.Logger
}

func (d *DataInitializer) Install(ctx context.Context) error {
	if err := database.Migrate(ctx, d.DB, d.Log); err != nil {
		return err
	}
	return d.Advisor.EnsureDefaults(ctx)
}
