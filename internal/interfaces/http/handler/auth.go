package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	identityapp "github.com/storefront/backend/internal/application/identity"
	"github.com/storefront/backend/internal/domain/identity"
	"github.com/storefront/backend/internal/infrastructure/config"
	"github.com/storefront/backend/internal/infrastructure/session"
	"github.com/storefront/backend/internal/interfaces/http/middleware"
)

// AuthHandler handles registration, login, and logout. Login binds the
// account to the existing session ID rather than rotating it, so a
// guest cart built before logging in survives the login.
type AuthHandler struct {
	BaseHandler
	identityService *identityapp.Service
	accountRepo     identity.Repository
	sessionStore    session.Store
	sessionConfig   config.SessionConfig
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(identityService *identityapp.Service, accountRepo identity.Repository, sessionStore session.Store, sessionConfig config.SessionConfig) *AuthHandler {
	return &AuthHandler{
		identityService: identityService,
		accountRepo:     accountRepo,
		sessionStore:    sessionStore,
		sessionConfig:   sessionConfig,
	}
}

// Register creates a user account and logs the session in
func (h *AuthHandler) Register(c *gin.Context) {
	var req identityapp.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	account, err := h.identityService.Register(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	if err := h.bindSession(c, account.ID); err != nil {
		h.InternalError(c, "Failed to establish session")
		return
	}

	h.Created(c, account)
}

// Login verifies credentials and attaches the account to the session
func (h *AuthHandler) Login(c *gin.Context) {
	var req identityapp.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	account, err := h.identityService.Authenticate(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	if err := h.bindSession(c, account.ID); err != nil {
		h.InternalError(c, "Failed to establish session")
		return
	}

	h.Success(c, account)
}

// Logout detaches the account from the session. The session ID and its
// cart stay valid for anonymous browsing.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.sessionStore.Delete(c.Request.Context(), middleware.GetSessionID(c)); err != nil {
		h.InternalError(c, "Failed to end session")
		return
	}

	h.NoContent(c)
}

// Me returns the logged-in account
func (h *AuthHandler) Me(c *gin.Context) {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	account, err := h.identityService.GetByID(c.Request.Context(), accountID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, account)
}

func (h *AuthHandler) bindSession(c *gin.Context, accountID int64) error {
	sessionID := middleware.GetSessionID(c)
	data := &session.Data{AccountID: accountID, CreatedAt: time.Now()}
	if err := h.sessionStore.Set(c.Request.Context(), sessionID, data, h.sessionConfig.TTL); err != nil {
		return err
	}
	// refresh the cookie lifetime alongside the server-side session
	middleware.SetSessionCookie(c, h.sessionConfig, sessionID)
	return nil
}

// RegisterRoutes registers auth routes
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/logout", h.Logout)
		auth.GET("/me", middleware.RequireAuth(h.accountRepo), h.Me)
	}
}
