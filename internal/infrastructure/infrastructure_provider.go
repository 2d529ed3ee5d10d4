package infrastructure

import (
	"github.com/google/wire"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"llm-advisor/internal/config"
	"llm-advisor/internal/domain/catalog"
	"llm-advisor/internal/infrastructure/database"
	"llm-advisor/internal/infrastructure/logger"
	"llm-advisor/internal/infrastructure/openrouter"
	"llm-advisor/internal/infrastructure/repository/categoryrepo"
	"llm-advisor/internal/infrastructure/repository/modelcacherepo"
)

// ProvideConfig loads and provides the application configuration
func ProvideConfig() (*config.Config, error) {
	return config.Load()
}

// ProvideLogger configures and provides the global logger
func ProvideLogger(cfg *config.Config) zerolog.Logger {
	return logger.Init(cfg.LogLevel, cfg.LogFormat)
}

// ProvideDatabase provides a database connection
func ProvideDatabase(cfg *config.Config) (*gorm.DB, error) {
	logLevel := gormlogger.Warn
	if cfg.Environment == "development" {
		logLevel = gormlogger.Info
	}
	return database.Connect(database.Config{
		Path:     cfg.DatabasePath,
		LogLevel: logLevel,
	})
}

// ProvideOpenRouterClient provides the upstream catalog client
func ProvideOpenRouterClient(cfg *config.Config, log zerolog.Logger) *openrouter.Client {
	return openrouter.NewClient(openrouter.ClientConfig{
		BaseURL: cfg.OpenRouterBaseURL,
		Timeout: cfg.HTTPTimeout,
	}, log)
}

// Provider provides all infrastructure components
var Provider = wire.NewSet(
	ProvideConfig,
	ProvideLogger,
	ProvideDatabase,
	ProvideOpenRouterClient,
	wire.Bind(new(catalog.ListingClient), new(*openrouter.Client)),
	categoryrepo.NewGormRepository,
	modelcacherepo.NewGormRepository,
)
