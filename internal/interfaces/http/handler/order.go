package handler

import (
	"github.com/gin-gonic/gin"

	orderapp "github.com/storefront/backend/internal/application/order"
	"github.com/storefront/backend/internal/domain/identity"
	"github.com/storefront/backend/internal/interfaces/http/middleware"
)

// OrderHandler handles order API endpoints. Customers see only their
// own orders; the admin surface lists and manages all of them.
type OrderHandler struct {
	BaseHandler
	orderService *orderapp.Service
	accountRepo  identity.Repository
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService *orderapp.Service, accountRepo identity.Repository) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		accountRepo:  accountRepo,
	}
}

// ListMine returns the logged-in account's orders, newest first
func (h *OrderHandler) ListMine(c *gin.Context) {
	accountID, _ := middleware.GetAccountID(c)

	var filter orderapp.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.orderService.ListForAccount(c.Request.Context(), accountID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// GetMine returns one of the logged-in account's orders
func (h *OrderHandler) GetMine(c *gin.Context) {
	accountID, _ := middleware.GetAccountID(c)

	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.orderService.GetByIDForAccount(c.Request.Context(), id, accountID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, order)
}

// List returns all orders (admin)
func (h *OrderHandler) List(c *gin.Context) {
	var filter orderapp.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.orderService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// GetByID returns any order by ID (admin)
func (h *OrderHandler) GetByID(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.orderService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, order)
}

// UpdateStatus changes an order's fulfillment status (admin)
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	var req orderapp.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	order, err := h.orderService.UpdateStatus(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, order)
}

// RegisterRoutes registers order routes
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/orders")

	mine := orders.Group("/mine", middleware.RequireAuth(h.accountRepo))
	{
		mine.GET("", h.ListMine)
		mine.GET("/:id", h.GetMine)
	}

	admin := orders.Group("", middleware.RequireAuth(h.accountRepo), middleware.RequireAdmin())
	{
		admin.GET("", h.List)
		admin.GET("/:id", h.GetByID)
		admin.PUT("/:id/status", h.UpdateStatus)
	}
}
