package handler

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shareit-hub/service-shareit/internal/application"
	bookingDomain "github.com/shareit-hub/service-shareit/internal/domain/booking"
	"github.com/shareit-hub/service-shareit/internal/platform/httpx"
)

// BookingHandler handles HTTP requests for booking operations.
type BookingHandler struct {
	service *application.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(service *application.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// RegisterRoutes registers all booking routes on the given router group.
func (h *BookingHandler) RegisterRoutes(r *gin.RouterGroup) {
	bookings := r.Group("/bookings")
	bookings.Use(httpx.SharerIDMiddleware())
	{
		bookings.POST("", h.CreateBooking)
		bookings.GET("", h.ListBookerBookings)
		bookings.GET("/owner", h.ListOwnerBookings)
		bookings.GET("/:id", h.GetBooking)
		bookings.PATCH("/:id", h.SetStatus)
	}
}

// CreateBooking handles POST /bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID, ok := sharerID(c)
	if !ok {
		return
	}

	var req application.CreateBookingRequest
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

// SetStatus handles PATCH /bookings/:id?approved=true|false.
func (h *BookingHandler) SetStatus(c *gin.Context) {
	userID, ok := sharerID(c)
	if !ok {
		return
	}
	bookingID, ok := parseID(c, "id")
	if !ok {
		return
	}
	approved, err := strconv.ParseBool(c.Query("approved"))
	if err != nil {
		httpx.BadRequest(c, "approved must be true or false")
		return
	}

	result, err := h.service.SetStatus(c.Request.Context(), userID, bookingID, approved)
	if err != nil {
		httpx.Error(c, err)
		return
	}

	httpx.Success(c, result)
}

// GetBooking handles GET /bookings/:id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	userID, ok := sharerID(c)
	if !ok {
		return
	}
	bookingID, ok := parseID(c, "id")
	if !ok {
		return
	}

	result, err := h.service.GetByID(c.Request.Context(), userID, bookingID)
	if err != nil {
		httpx.Error(c, err)
		return
	}

	httpx.Success(c, result)
}

// ListBookerBookings handles GET /bookings?state=&from=&size=.
func (h *BookingHandler) ListBookerBookings(c *gin.Context) {
	h.list(c, h.service.ListByBooker)
}

// ListOwnerBookings handles GET /bookings/owner?state=&from=&size=.
func (h *BookingHandler) ListOwnerBookings(c *gin.Context) {
	h.list(c, h.service.ListByOwner)
}

type bookingLister func(ctx context.Context, userID int64, state bookingDomain.State, from, size int) ([]application.BookingDTO, error)

func (h *BookingHandler) list(c *gin.Context, lister bookingLister) {
	userID, ok := sharerID(c)
	if !ok {
		return
	}
	state, err := bookingDomain.ParseState(c.DefaultQuery("state", "all"))
	if err != nil {
		httpx.Error(c, err)
		return
	}
	from, size, ok := parsePaging(c)
	if !ok {
		return
	}

	result, err := lister(c.Request.Context(), userID, state, from, size)
	if err != nil {
		httpx.Error(c, err)
		return
	}

	httpx.Success(c, result)
}
