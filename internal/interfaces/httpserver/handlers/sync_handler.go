package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"llm-advisor/internal/domain/catalog"
	"llm-advisor/internal/infrastructure/metrics"
	"llm-advisor/internal/interfaces/httpserver/responses"
)

// SyncHandler exposes the catalog synchronization endpoints.
type SyncHandler struct {
	sync *catalog.SyncService
	log  zerolog.Logger
}

func NewSyncHandler(sync *catalog.SyncService, log zerolog.Logger) *SyncHandler {
	return &SyncHandler{
		sync: sync,
		log:  log.With().Str("component", "sync-handler").Logger(),
	}
}

// Info describes how to trigger a synchronization run.
func (h *SyncHandler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, responses.SyncInfoResponse{
		Info: "POST to this route to synchronize models from OpenRouter",
		Note: "requires Authorization header when AUTH_SECRET is set",
	})
}

// Trigger runs one synchronization pass against the upstream catalog.
func (h *SyncHandler) Trigger(c *gin.Context) {
	result, err := h.sync.Sync(c.Request.Context())
	if err != nil {
		metrics.RecordSyncRun("error", 0)
		h.log.Error().Err(err).Msg("catalog sync failed")
		responses.HandleError(c, err, "sync failed")
		return
	}

	metrics.RecordSyncRun("success", result.Count)
	c.JSON(http.StatusOK, responses.SyncResponse{
		Success:     true,
		ModelsCount: result.Count,
		Message:     fmt.Sprintf("%d models synchronized from OpenRouter", result.Count),
	})
}
