package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/storefront/backend/internal/infrastructure/config"
	"github.com/storefront/backend/internal/infrastructure/session"
)

// Context keys set by the session middleware
const (
	// SessionIDKey holds the opaque session identifier
	SessionIDKey = "session_id"
	// AccountIDKey holds the authenticated account ID, if any
	AccountIDKey = "account_id"
)

// Session ensures every request carries a session cookie. Missing or
// unknown cookies get a freshly generated session ID; the cart and the
// login state hang off that ID. Authenticated sessions additionally
// resolve to an account ID from the session store.
func Session(store session.Store, cfg config.SessionConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(cfg.CookieName)
		if err != nil || sessionID == "" {
			sessionID = session.NewSessionID()
			setSessionCookie(c, cfg, sessionID)
		}
		c.Set(SessionIDKey, sessionID)

		// A store failure degrades the request to anonymous instead of
		// failing it; browsing and the cart do not need the store.
		if data, err := store.Get(c.Request.Context(), sessionID); err == nil && data != nil && data.AccountID != 0 {
			c.Set(AccountIDKey, data.AccountID)
		}

		c.Next()
	}
}

// GetSessionID returns the session ID established by the Session middleware
func GetSessionID(c *gin.Context) string {
	return c.GetString(SessionIDKey)
}

// GetAccountID returns the authenticated account ID, if the session is
// logged in
func GetAccountID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(AccountIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

// SetSessionCookie writes the session cookie using the configured
// attributes. Handlers call this after rotating the session ID at login.
func SetSessionCookie(c *gin.Context, cfg config.SessionConfig, sessionID string) {
	setSessionCookie(c, cfg, sessionID)
}

func setSessionCookie(c *gin.Context, cfg config.SessionConfig, sessionID string) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     cfg.CookieName,
		Value:    sessionID,
		Path:     cfg.Path,
		Domain:   cfg.Domain,
		MaxAge:   int(cfg.TTL.Seconds()),
		Secure:   cfg.Secure,
		HttpOnly: true,
		SameSite: sameSiteMode(cfg.SameSite),
	})
}

func sameSiteMode(mode string) http.SameSite {
	switch mode {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
