package database

import (
	"context"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"llm-advisor/internal/infrastructure/database/entities"
)

// Migrate brings the schema up to date for all persisted aggregates.
func Migrate(ctx context.Context, db *gorm.DB, log zerolog.Logger) error {
	log.Info().Msg("running database migrations")

	if err := db.WithContext(ctx).AutoMigrate(
		&entities.Category{},
		&entities.CachedModel{},
	); err != nil {
		log.Error().Err(err).Msg("database migration failed")
		return err
	}

	log.Info().Msg("database migrations complete")
	return nil
}
