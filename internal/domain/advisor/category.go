package advisor

import (
	"context"
	"time"
)

// Category is a named task archetype with an operator-configured preferred
// model and up to two fallbacks. The model references are soft: they may
// point at identifiers no longer present in the models cache.
type Category struct {
	ID            string
	Name          string
	Description   string
	KeyProperty   string
	SelectedModel string
	Fallback1     *string
	Fallback2     *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// UpdateCategoryInput carries the operator-mutable fields. Nil means leave
// untouched; an empty string on a fallback clears it.
type UpdateCategoryInput struct {
	SelectedModel *string
	Fallback1     *string
	Fallback2     *string
}

// IsEmpty reports whether the update would touch nothing.
func (in UpdateCategoryInput) IsEmpty() bool {
	return in.SelectedModel == nil && in.Fallback1 == nil && in.Fallback2 == nil
}

// CategoryRepository persists category definitions and selections.
type CategoryRepository interface {
	// FindAll returns all categories ordered by id.
	FindAll(ctx context.Context) ([]Category, error)
	// FindByID returns the category or a NOT_FOUND platform error.
	FindByID(ctx context.Context, id string) (*Category, error)
	// Update applies the given selection changes and bumps updated_at.
	Update(ctx context.Context, id string, input UpdateCategoryInput) error
	// Count returns the number of stored categories.
	Count(ctx context.Context) (int64, error)
	// CreateAll inserts the given categories.
	CreateAll(ctx context.Context, categories []Category) error
}
