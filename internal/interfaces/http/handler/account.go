package handler

import (
	"github.com/gin-gonic/gin"

	identityapp "github.com/storefront/backend/internal/application/identity"
	"github.com/storefront/backend/internal/domain/identity"
	"github.com/storefront/backend/internal/interfaces/http/middleware"
)

// AccountHandler handles the admin account management endpoints
type AccountHandler struct {
	BaseHandler
	identityService *identityapp.Service
	accountRepo     identity.Repository
}

// NewAccountHandler creates a new AccountHandler
func NewAccountHandler(identityService *identityapp.Service, accountRepo identity.Repository) *AccountHandler {
	return &AccountHandler{
		identityService: identityService,
		accountRepo:     accountRepo,
	}
}

// List returns accounts with filtering and pagination
func (h *AccountHandler) List(c *gin.Context) {
	var filter identityapp.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.identityService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// GetByID returns a single account
func (h *AccountHandler) GetByID(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid account ID")
		return
	}

	account, err := h.identityService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, account)
}

// Create creates an account with an explicit role
func (h *AccountHandler) Create(c *gin.Context) {
	var req identityapp.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	account, err := h.identityService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, account)
}

// Update applies a partial update to an account
func (h *AccountHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid account ID")
		return
	}

	var req identityapp.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	actorID, _ := middleware.GetAccountID(c)
	account, err := h.identityService.Update(c.Request.Context(), id, actorID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, account)
}

// Delete removes an account
func (h *AccountHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid account ID")
		return
	}

	actorID, _ := middleware.GetAccountID(c)
	if err := h.identityService.Delete(c.Request.Context(), id, actorID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// RegisterRoutes registers admin account routes
func (h *AccountHandler) RegisterRoutes(rg *gin.RouterGroup) {
	accounts := rg.Group("/accounts", middleware.RequireAuth(h.accountRepo), middleware.RequireAdmin())
	{
		accounts.GET("", h.List)
		accounts.GET("/:id", h.GetByID)
		accounts.POST("", h.Create)
		accounts.PUT("/:id", h.Update)
		accounts.DELETE("/:id", h.Delete)
	}
}
