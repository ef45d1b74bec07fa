package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ridloal/item-inventory-service/internal/item/domain"
	"github.com/ridloal/item-inventory-service/internal/item/service"
	"github.com/ridloal/item-inventory-service/internal/platform/logger"
)

const defaultSSEBuffer = 16

type ItemHandler struct {
	itemService service.ItemService
	sseBuffer   int
}

func NewItemHandler(is service.ItemService, sseBuffer int) *ItemHandler {
	if sseBuffer <= 0 {
		sseBuffer = defaultSSEBuffer
	}
	return &ItemHandler{itemService: is, sseBuffer: sseBuffer}
}

func (h *ItemHandler) RegisterRoutes(router *gin.RouterGroup) {
	itemRoutes := router.Group("/items")
	{
		itemRoutes.GET("", h.ListItems)
		itemRoutes.POST("", h.CreateItem)
		itemRoutes.GET("/count", h.CountItems)
		itemRoutes.GET("/events", h.StreamEvents)
		itemRoutes.POST("/reset", h.ResetItems)
		itemRoutes.GET("/:id", h.GetItem)
		itemRoutes.PATCH("/:id", h.UpdateItem)
		itemRoutes.PUT("/:id", h.UpdateItem)
		itemRoutes.DELETE("/:id", h.RemoveItem)
	}
}

func (h *ItemHandler) ListItems(c *gin.Context) {
	items := h.itemService.ListItems(c.Request.Context(), c.Query("category"))
	c.JSON(http.StatusOK, items)
}

func (h *ItemHandler) CountItems(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"count": h.itemService.CountItems(c.Request.Context())})
}

func (h *ItemHandler) GetItem(c *gin.Context) {
	id, ok := parseItemID(c)
	if !ok {
		return
	}
	item, err := h.itemService.GetItem(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Hdl.GetItem: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve item"})
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *ItemHandler) CreateItem(c *gin.Context) {
	var req domain.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	item, err := h.itemService.CreateItem(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Hdl.CreateItem: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create item"})
		return
	}
	c.JSON(http.StatusCreated, item)
}

// UpdateItem merges the body into the item. Unknown ids answer 204 because
// the store treats them as a no-op.
func (h *ItemHandler) UpdateItem(c *gin.Context) {
	id, ok := parseItemID(c)
	if !ok {
		return
	}
	var patch domain.ItemPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	item, err := h.itemService.UpdateItem(c.Request.Context(), id, patch)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Hdl.UpdateItem: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update item"})
		return
	}
	if item == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *ItemHandler) RemoveItem(c *gin.Context) {
	id, ok := parseItemID(c)
	if !ok {
		return
	}
	h.itemService.RemoveItem(c.Request.Context(), id)
	c.Status(http.StatusNoContent)
}

func (h *ItemHandler) ResetItems(c *gin.Context) {
	count := h.itemService.ResetItems(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"message": "Items restored from seed", "count": count})
}

func parseItemID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return 0, false
	}
	return id, true
}
