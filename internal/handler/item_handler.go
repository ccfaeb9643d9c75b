package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/shareit-hub/service-shareit/internal/application"
	"github.com/shareit-hub/service-shareit/internal/platform/httpx"
)

// ItemHandler handles HTTP requests for items and their comments.
type ItemHandler struct {
	service *application.ItemService
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(service *application.ItemService) *ItemHandler {
	return &ItemHandler{service: service}
}

// RegisterRoutes registers all item routes on the given router group.
func (h *ItemHandler) RegisterRoutes(r *gin.RouterGroup) {
	items := r.Group("/items")
	items.Use(httpx.SharerIDMiddleware())
	{
		items.POST("", h.CreateItem)
		items.GET("", h.ListOwnerItems)
		items.GET("/search", h.SearchItems)
		items.GET("/:id", h.GetItem)
		items.PATCH("/:id", h.UpdateItem)
		items.POST("/:id/comment", h.PostComment)
	}
}

// CreateItem handles POST /items.
func (h *ItemHandler) CreateItem(c *gin.Context) {
	userID, ok := sharerID(c)
	if !ok {
		return
	}
	var req application.CreateItemRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.Created(c, result)
}

// UpdateItem handles PATCH /items/:id.
func (h *ItemHandler) UpdateItem(c *gin.Context) {
	userID, ok := sharerID(c)
	if !ok {
		return
	}
	itemID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req application.UpdateItemRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.service.Update(c.Request.Context(), userID, itemID, req)
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.Success(c, result)
}

// GetItem handles GET /items/:id.
func (h *ItemHandler) GetItem(c *gin.Context) {
	userID, ok := sharerID(c)
	if !ok {
		return
	}
	itemID, ok := parseID(c, "id")
	if !ok {
		return
	}

	result, err := h.service.GetByID(c.Request.Context(), userID, itemID)
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.Success(c, result)
}

// ListOwnerItems handles GET /items?from=&size=.
func (h *ItemHandler) ListOwnerItems(c *gin.Context) {
	userID, ok := sharerID(c)
	if !ok {
		return
	}
	from, size, ok := parsePaging(c)
	if !ok {
		return
	}

	result, err := h.service.ListByOwner(c.Request.Context(), userID, from, size)
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.Success(c, result)
}

// SearchItems handles GET /items/search?text=&from=&size=.
func (h *ItemHandler) SearchItems(c *gin.Context) {
	from, size, ok := parsePaging(c)
	if !ok {
		return
	}

	result, err := h.service.Search(c.Request.Context(), c.Query("text"), from, size)
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.Success(c, result)
}

// PostComment handles POST /items/:id/comment.
func (h *ItemHandler) PostComment(c *gin.Context) {
	userID, ok := sharerID(c)
	if !ok {
		return
	}
	itemID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req application.CreateCommentRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.service.PostComment(c.Request.Context(), userID, itemID, req)
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.Success(c, result)
}
