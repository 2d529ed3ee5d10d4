package entities

import (
	"time"

	"llm-advisor/internal/domain/advisor"
)

// TableName specifies the table name for Category.
func (Category) TableName() string {
	return "categories"
}

// Category is the persisted category record.
type Category struct {
	ID            string  `gorm:"primaryKey;size:64"`
	Name          string  `gorm:"size:128;not null"`
	Description   string  `gorm:"type:text;not null"`
	KeyProperty   string  `gorm:"size:64;not null"`
	SelectedModel string  `gorm:"size:128;not null"`
	Fallback1     *string `gorm:"size:128"`
	Fallback2     *string `gorm:"size:128"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewCategory maps a domain category onto its persisted form.
func NewCategory(c *advisor.Category) *Category {
	return &Category{
		ID:            c.ID,
		Name:          c.Name,
		Description:   c.Description,
		KeyProperty:   c.KeyProperty,
		SelectedModel: c.SelectedModel,
		Fallback1:     c.Fallback1,
		Fallback2:     c.Fallback2,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

// EtoD converts the persisted record back into the domain type.
func (c *Category) EtoD() *advisor.Category {
	return &advisor.Category{
		ID:            c.ID,
		Name:          c.Name,
		Description:   c.Description,
		KeyProperty:   c.KeyProperty,
		SelectedModel: c.SelectedModel,
		Fallback1:     c.Fallback1,
		Fallback2:     c.Fallback2,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}
