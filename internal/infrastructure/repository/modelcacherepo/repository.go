package modelcacherepo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"llm-advisor/internal/domain/catalog"
	"llm-advisor/internal/infrastructure/database/entities"
	"llm-advisor/internal/utils/platformerrors"
)

// GormRepository persists the models cache through GORM.
type GormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates a model cache repository backed by the given handle.
func NewGormRepository(db *gorm.DB) catalog.ModelCacheRepository {
	return &GormRepository{db: db}
}

// ReplaceAll swaps the whole snapshot atomically. A failed insert rolls the
// delete back, leaving the previous snapshot intact.
func (r *GormRepository) ReplaceAll(ctx context.Context, models []catalog.CachedModel) error {
	cachedAt := time.Now().UTC()

	rows := make([]entities.CachedModel, 0, len(models))
	for i := range models {
		row, err := entities.NewCachedModel(&models[i])
		if err != nil {
			return platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
				platformerrors.ErrorTypeInternal, "failed to encode cached model", err)
		}
		row.CachedAt = cachedAt
		rows = append(rows, *row)
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&entities.CachedModel{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		return platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeDatabaseError, "failed to replace models cache", err)
	}
	return nil
}

func (r *GormRepository) FindByFilter(ctx context.Context, filter catalog.ModelFilter) ([]catalog.CachedModel, error) {
	query := r.db.WithContext(ctx).Order("provider, name")
	if filter.Provider != nil && *filter.Provider != "" {
		query = query.Where("provider = ?", *filter.Provider)
	}

	var rows []entities.CachedModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeDatabaseError, "failed to query models cache", err)
	}

	models := make([]catalog.CachedModel, 0, len(rows))
	for i := range rows {
		model, err := rows[i].EtoD()
		if err != nil {
			return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
				platformerrors.ErrorTypeInternal, "failed to decode cached model", err)
		}
		models = append(models, *model)
	}
	return models, nil
}
