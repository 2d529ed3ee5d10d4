package responses

import (
	"time"

	"llm-advisor/internal/domain/advisor"
)

// CategoryInfo is the compact category view for listing endpoints.
type CategoryInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	KeyProperty string `json:"keyProperty"`
}

// CategoriesResponse wraps the category listing.
type CategoriesResponse struct {
	Categories []CategoryInfo `json:"categories"`
}

// ConfigEntry is the full operator view of one category including the
// current model selection.
type ConfigEntry struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	KeyProperty   string  `json:"keyProperty"`
	SelectedModel string  `json:"selectedModel"`
	Fallback1     *string `json:"fallback1"`
	Fallback2     *string `json:"fallback2"`
	UpdatedAt     string  `json:"updatedAt"`
}

// ConfigResponse wraps the configuration listing.
type ConfigResponse struct {
	Config []ConfigEntry `json:"config"`
}

// UpdatedCategory is the selection state echoed back after an update.
type UpdatedCategory struct {
	ID            string  `json:"id"`
	SelectedModel string  `json:"selectedModel"`
	Fallback1     *string `json:"fallback1"`
	Fallback2     *string `json:"fallback2"`
	UpdatedAt     string  `json:"updatedAt"`
}

// UpdateConfigResponse is the POST config result.
type UpdateConfigResponse struct {
	Success  bool            `json:"success"`
	Category UpdatedCategory `json:"category"`
}

// SyncResponse reports one completed catalog synchronization.
type SyncResponse struct {
	Success     bool   `json:"success"`
	ModelsCount int    `json:"modelsCount"`
	Message     string `json:"message"`
}

// SyncInfoResponse describes how to trigger a synchronization.
type SyncInfoResponse struct {
	Info string `json:"info"`
	Note string `json:"note"`
}

// NewCategoryInfo builds the compact view of a category.
func NewCategoryInfo(c *advisor.Category) CategoryInfo {
	return CategoryInfo{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		KeyProperty: c.KeyProperty,
	}
}

// NewConfigEntry builds the operator view of a category.
func NewConfigEntry(c *advisor.Category) ConfigEntry {
	return ConfigEntry{
		ID:            c.ID,
		Name:          c.Name,
		Description:   c.Description,
		KeyProperty:   c.KeyProperty,
		SelectedModel: c.SelectedModel,
		Fallback1:     c.Fallback1,
		Fallback2:     c.Fallback2,
		UpdatedAt:     c.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// NewUpdatedCategory builds the selection echo for update responses.
func NewUpdatedCategory(c *advisor.Category) UpdatedCategory {
	return UpdatedCategory{
		ID:            c.ID,
		SelectedModel: c.SelectedModel,
		Fallback1:     c.Fallback1,
		Fallback2:     c.Fallback2,
		UpdatedAt:     c.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
