package categoryrepo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"llm-advisor/internal/domain/advisor"
	"llm-advisor/internal/infrastructure/database/entities"
	"llm-advisor/internal/utils/platformerrors"
)

// GormRepository persists categories through GORM.
type GormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates a category repository backed by the given handle.
func NewGormRepository(db *gorm.DB) advisor.CategoryRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) FindAll(ctx context.Context) ([]advisor.Category, error) {
	var rows []entities.Category
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeDatabaseError, "failed to list categories", err)
	}

	categories := make([]advisor.Category, 0, len(rows))
	for i := range rows {
		categories = append(categories, *rows[i].EtoD())
	}
	return categories, nil
}

func (r *GormRepository) FindByID(ctx context.Context, id string) (*advisor.Category, error) {
	var row entities.Category
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeNotFound, "category not found: "+id, err)
	}
	if err != nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeDatabaseError, "failed to load category", err)
	}
	return row.EtoD(), nil
}

func (r *GormRepository) Update(ctx context.Context, id string, input advisor.UpdateCategoryInput) error {
	updates := map[string]any{"updated_at": time.Now().UTC()}
	if input.SelectedModel != nil {
		updates["selected_model"] = *input.SelectedModel
	}
	if input.Fallback1 != nil {
		updates["fallback_1"] = nullableModel(*input.Fallback1)
	}
	if input.Fallback2 != nil {
		updates["fallback_2"] = nullableModel(*input.Fallback2)
	}

	result := r.db.WithContext(ctx).Model(&entities.Category{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeDatabaseError, "failed to update category", result.Error)
	}
	if result.RowsAffected == 0 {
		return platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeNotFound, "category not found: "+id, gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *GormRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Category{}).Count(&count).Error; err != nil {
		return 0, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeDatabaseError, "failed to count categories", err)
	}
	return count, nil
}

func (r *GormRepository) CreateAll(ctx context.Context, categories []advisor.Category) error {
	if len(categories) == 0 {
		return nil
	}

	rows := make([]entities.Category, 0, len(categories))
	for i := range categories {
		rows = append(rows, *entities.NewCategory(&categories[i]))
	}

	if err := r.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeDatabaseError, "failed to create categories", err)
	}
	return nil
}

// nullableModel maps an empty selection to NULL so cleared fallbacks do not
// linger as empty strings.
func nullableModel(id string) *string {
	if id == "" {
		return nil
	}
	return &id
}
