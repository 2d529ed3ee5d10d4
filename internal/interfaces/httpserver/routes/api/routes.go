package api

import (
	"github.com/gin-gonic/gin"

	"llm-advisor/internal/interfaces/httpserver/handlers"
	"llm-advisor/internal/interfaces/httpserver/middlewares"
)

// Routes encapsulates /api route registration.
type Routes struct {
	handlers   *handlers.Provider
	authSecret string
}

func NewRoutes(provider *handlers.Provider, authSecret string) *Routes {
	return &Routes{handlers: provider, authSecret: authSecret}
}

// Register attaches all advisor routes under the /api prefix. Mutating
// endpoints pass the shared-secret check first.
func (r *Routes) Register(router gin.IRouter) {
	group := router.Group("/api")
	auth := middlewares.SharedSecret(r.authSecret)

	group.GET("/categories", r.handlers.Advisor.ListCategories)
	group.GET("/config", r.handlers.Advisor.GetConfig)
	group.POST("/config", auth, r.handlers.Advisor.UpdateConfig)
	group.GET("/model", r.handlers.Advisor.GetModel)
	group.GET("/models", r.handlers.Advisor.ListModels)
	group.GET("/sync", r.handlers.Sync.Info)
	group.POST("/sync", auth, r.handlers.Sync.Trigger)
}
