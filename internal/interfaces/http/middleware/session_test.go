package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storefront/backend/internal/infrastructure/config"
	"github.com/storefront/backend/internal/infrastructure/session"
)

func sessionTestConfig() config.SessionConfig {
	return config.SessionConfig{
		CookieName: "storefront_session",
		TTL:        time.Hour,
		SameSite:   "lax",
		Path:       "/",
	}
}

func sessionTestRouter(store session.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Session(store, sessionTestConfig()))
	r.GET("/probe", func(c *gin.Context) {
		accountID, _ := GetAccountID(c)
		c.JSON(http.StatusOK, gin.H{
			"session_id": GetSessionID(c),
			"account_id": accountID,
		})
	})
	return r
}

func TestSession_CreatesCookieWhenMissing(t *testing.T) {
	store := session.NewMemoryStore()
	defer store.Close()
	r := sessionTestRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "storefront_session", cookies[0].Name)
	assert.NotEmpty(t, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
}

func TestSession_ReusesExistingCookie(t *testing.T) {
	store := session.NewMemoryStore()
	defer store.Close()
	r := sessionTestRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.AddCookie(&http.Cookie{Name: "storefront_session", Value: "existing-session"})
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "existing-session")
	// no new cookie issued
	assert.Empty(t, w.Result().Cookies())
}

func TestSession_ResolvesAccountFromStore(t *testing.T) {
	store := session.NewMemoryStore()
	defer store.Close()
	r := sessionTestRouter(store)

	err := store.Set(context.Background(), "logged-in", &session.Data{AccountID: 42, CreatedAt: time.Now()}, time.Hour)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.AddCookie(&http.Cookie{Name: "storefront_session", Value: "logged-in"})
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"account_id":42`)
}

func TestSession_AnonymousWhenStoreHasNoEntry(t *testing.T) {
	store := session.NewMemoryStore()
	defer store.Close()
	r := sessionTestRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.AddCookie(&http.Cookie{Name: "storefront_session", Value: "anonymous"})
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"account_id":0`)
}
