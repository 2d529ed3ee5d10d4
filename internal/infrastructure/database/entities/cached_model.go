package entities

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"llm-advisor/internal/domain/catalog"
)

// TableName specifies the table name for CachedModel.
func (CachedModel) TableName() string {
	return "models_cache"
}

// CachedModel is one persisted row of the catalog snapshot.
type CachedModel struct {
	ID             string  `gorm:"primaryKey;size:128"`
	Name           string  `gorm:"size:128;not null"`
	Provider       string  `gorm:"size:64;not null;index"`
	OpenRouterID   string  `gorm:"size:128;not null"`
	VercelID       *string `gorm:"size:128"`
	ContextWindow  *int
	InputPrice     *float64
	OutputPrice    *float64
	CachedPrice    *float64
	SupportsTools  bool           `gorm:"default:false"`
	SupportsVision bool           `gorm:"default:false"`
	SupportsJSON   bool           `gorm:"column:supports_json;default:false"`
	Strengths      datatypes.JSON `gorm:"type:json"`
	CachedAt       time.Time
}

// NewCachedModel maps a domain row onto its persisted form.
func NewCachedModel(m *catalog.CachedModel) (*CachedModel, error) {
	var strengths datatypes.JSON
	if len(m.Strengths) > 0 {
		data, err := json.Marshal(m.Strengths)
		if err != nil {
			return nil, err
		}
		strengths = datatypes.JSON(data)
	}

	return &CachedModel{
		ID:             m.ID,
		Name:           m.Name,
		Provider:       m.Provider,
		OpenRouterID:   m.OpenRouterID,
		VercelID:       m.VercelID,
		ContextWindow:  m.ContextWindow,
		InputPrice:     m.InputPrice,
		OutputPrice:    m.OutputPrice,
		CachedPrice:    m.CachedPrice,
		SupportsTools:  m.SupportsTools,
		SupportsVision: m.SupportsVision,
		SupportsJSON:   m.SupportsJSON,
		Strengths:      strengths,
		CachedAt:       m.CachedAt,
	}, nil
}

// EtoD converts the persisted record back into the domain type.
func (m *CachedModel) EtoD() (*catalog.CachedModel, error) {
	var strengths []string
	if len(m.Strengths) > 0 {
		if err := json.Unmarshal(m.Strengths, &strengths); err != nil {
			return nil, err
		}
	}

	return &catalog.CachedModel{
		ID:             m.ID,
		Name:           m.Name,
		Provider:       m.Provider,
		OpenRouterID:   m.OpenRouterID,
		VercelID:       m.VercelID,
		ContextWindow:  m.ContextWindow,
		InputPrice:     m.InputPrice,
		OutputPrice:    m.OutputPrice,
		CachedPrice:    m.CachedPrice,
		SupportsTools:  m.SupportsTools,
		SupportsVision: m.SupportsVision,
		SupportsJSON:   m.SupportsJSON,
		Strengths:      strengths,
		CachedAt:       m.CachedAt,
	}, nil
}
