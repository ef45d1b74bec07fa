package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ridloal/item-inventory-service/internal/item/service"
	"github.com/ridloal/item-inventory-service/internal/platform/logger"
)

// RegisterViewRoutes binds the page routes. "/" and "/items" both render the list.
func (h *ItemHandler) RegisterViewRoutes(router gin.IRoutes) {
	router.GET("/", h.ListPage)
	router.GET("/items", h.ListPage)
	router.GET("/item/:id", h.DetailPage)
	router.GET("/about", h.AboutPage)
}

func RegisterHealthRoutes(router gin.IRoutes) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

func (h *ItemHandler) ListPage(c *gin.Context) {
	c.JSON(http.StatusOK, h.itemService.ListView(c.Request.Context(), c.Query("category")))
}

func (h *ItemHandler) DetailPage(c *gin.Context) {
	id, ok := parseItemID(c)
	if !ok {
		return
	}
	view, err := h.itemService.DetailView(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Hdl.DetailPage: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render item"})
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *ItemHandler) AboutPage(c *gin.Context) {
	c.JSON(http.StatusOK, h.itemService.AboutView(c.Request.Context()))
}
