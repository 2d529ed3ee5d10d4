package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"llm-advisor/internal/domain/advisor"
	"llm-advisor/internal/infrastructure/metrics"
	"llm-advisor/internal/interfaces/httpserver/responses"
	"llm-advisor/internal/utils/platformerrors"
)

// AdvisorHandler exposes the category configuration and resolution endpoints.
type AdvisorHandler struct {
	service *advisor.Service
	log     zerolog.Logger
}

func NewAdvisorHandler(service *advisor.Service, log zerolog.Logger) *AdvisorHandler {
	return &AdvisorHandler{
		service: service,
		log:     log.With().Str("component", "advisor-handler").Logger(),
	}
}

// ListCategories returns the compact category listing.
func (h *AdvisorHandler) ListCategories(c *gin.Context) {
	categories, err := h.service.ListCategories(c.Request.Context())
	if err != nil {
		responses.HandleError(c, err, "failed to list categories")
		return
	}

	resp := responses.CategoriesResponse{Categories: make([]responses.CategoryInfo, 0, len(categories))}
	for i := range categories {
		resp.Categories = append(resp.Categories, responses.NewCategoryInfo(&categories[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// GetConfig returns all categories with their current model selections.
func (h *AdvisorHandler) GetConfig(c *gin.Context) {
	categories, err := h.service.ListCategories(c.Request.Context())
	if err != nil {
		responses.HandleError(c, err, "failed to load configuration")
		return
	}

	resp := responses.ConfigResponse{Config: make([]responses.ConfigEntry, 0, len(categories))}
	for i := range categories {
		resp.Config = append(resp.Config, responses.NewConfigEntry(&categories[i]))
	}
	c.JSON(http.StatusOK, resp)
}

type updateConfigRequest struct {
	CategoryID    string  `json:"categoryId"`
	SelectedModel *string `json:"selectedModel"`
	Fallback1     *string `json:"fallback1"`
	Fallback2     *string `json:"fallback2"`
}

// UpdateConfig applies an operator selection change to one category.
func (h *AdvisorHandler) UpdateConfig(c *gin.Context) {
	var req updateConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "invalid request body")
		return
	}
	if req.CategoryID == "" {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "categoryId is required")
		return
	}

	category, err := h.service.UpdateCategory(c.Request.Context(), req.CategoryID, advisor.UpdateCategoryInput{
		SelectedModel: req.SelectedModel,
		Fallback1:     req.Fallback1,
		Fallback2:     req.Fallback2,
	})
	if err != nil {
		responses.HandleError(c, err, "failed to update category")
		return
	}

	h.log.Info().Str("category", category.ID).Str("selected_model", category.SelectedModel).
		Msg("category configuration updated")
	c.JSON(http.StatusOK, responses.UpdateConfigResponse{
		Success:  true,
		Category: responses.NewUpdatedCategory(category),
	})
}

// GetModel resolves a category to its recommended model and fallbacks.
func (h *AdvisorHandler) GetModel(c *gin.Context) {
	categoryID := c.Query("category")
	if categoryID == "" {
		metrics.RecordResolve("", "invalid")
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "parameter 'category' is required")
		return
	}

	recommendation, err := h.service.Resolve(c.Request.Context(), categoryID, c.Query("provider"))
	if err != nil {
		metrics.RecordResolve(categoryID, "error")
		responses.HandleError(c, err, "failed to resolve model")
		return
	}

	metrics.RecordResolve(categoryID, "success")
	c.JSON(http.StatusOK, recommendation)
}

// ListModels returns the filtered cached catalog.
func (h *AdvisorHandler) ListModels(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}

	listing, err := h.service.ListModels(c.Request.Context(), c.Query("provider"), limit)
	if err != nil {
		responses.HandleError(c, err, "failed to list models")
		return
	}
	c.JSON(http.StatusOK, listing)
}
