package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/shareit-hub/service-shareit/internal/application"
	"github.com/shareit-hub/service-shareit/internal/platform/httpx"
)

// ItemRequestHandler handles HTTP requests for wanted-item requests.
type ItemRequestHandler struct {
	service *application.ItemRequestService
}

// NewItemRequestHandler creates a new ItemRequestHandler.
func NewItemRequestHandler(service *application.ItemRequestService) *ItemRequestHandler {
	return &ItemRequestHandler{service: service}
}

// RegisterRoutes registers all item request routes on the given router group.
func (h *ItemRequestHandler) RegisterRoutes(r *gin.RouterGroup) {
	requests := r.Group("/requests")
	requests.Use(httpx.SharerIDMiddleware())
	{
		requests.POST("", h.CreateRequest)
		requests.GET("", h.ListOwnRequests)
		requests.GET("/all", h.ListOtherRequests)
		requests.GET("/:id", h.GetRequest)
	}
}

// CreateRequest handles POST /requests.
func (h *ItemRequestHandler) CreateRequest(c *gin.Context) {
	userID, ok := sharerID(c)
	if !ok {
		return
	}
	var req application.CreateItemRequestRequest
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

// ListOwnRequests handles GET /requests.
func (h *ItemRequestHandler) ListOwnRequests(c *gin.Context) {
	userID, ok := sharerID(c)
	if !ok {
		return
	}

	result, err := h.service.ListOwn(c.Request.Context(), userID)
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.Success(c, result)
}

// ListOtherRequests handles GET /requests/all?from=&size=.
func (h *ItemRequestHandler) ListOtherRequests(c *gin.Context) {
	userID, ok := sharerID(c)
	if !ok {
		return
	}
	from, size, ok := parsePaging(c)
	if !ok {
		return
	}

	result, err := h.service.ListOthers(c.Request.Context(), userID, from, size)
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.Success(c, result)
}

// GetRequest handles GET /requests/:id.
func (h *ItemRequestHandler) GetRequest(c *gin.Context) {
	userID, ok := sharerID(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	result, err := h.service.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.Success(c, result)
}
