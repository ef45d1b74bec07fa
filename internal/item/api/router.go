package api

import (
	"github.com/gin-gonic/gin"

	"github.com/ridloal/item-inventory-service/internal/platform/logger"
)

// NewRouter builds the engine: page routes at the root, JSON API under /api/v1.
func NewRouter(h *ItemHandler) *gin.Engine {
	router := gin.New()
	router.RedirectTrailingSlash = false
	router.Use(logger.GinMiddleware(), gin.Recovery())

	RegisterHealthRoutes(router)
	h.RegisterViewRoutes(router)

	apiV1 := router.Group("/api/v1")
	h.RegisterRoutes(apiV1)

	return router
}
