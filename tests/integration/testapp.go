package integration

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	cartapp "github.com/storefront/backend/internal/application/cart"
	catalogapp "github.com/storefront/backend/internal/application/catalog"
	identityapp "github.com/storefront/backend/internal/application/identity"
	orderapp "github.com/storefront/backend/internal/application/order"
	"github.com/storefront/backend/internal/infrastructure/config"
	"github.com/storefront/backend/internal/infrastructure/persistence"
	"github.com/storefront/backend/internal/infrastructure/session"
	"github.com/storefront/backend/internal/interfaces/http/handler"
	"github.com/storefront/backend/internal/interfaces/http/middleware"
	"github.com/storefront/backend/internal/interfaces/http/router"
)

// App is the full HTTP stack wired against a containerized database
type App struct {
	Engine *gin.Engine
	DB     *TestDB
	Store  session.Store
}

// NewApp boots the API against a fresh PostgreSQL container
func NewApp(t *testing.T) *App {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tdb := NewTestDB(t)

	store := session.NewMemoryStore()
	t.Cleanup(func() { store.Close() })

	sessionCfg := config.SessionConfig{
		CookieName: "storefront_session",
		TTL:        time.Hour,
		SameSite:   "lax",
		Path:       "/",
	}

	productRepo := persistence.NewGormProductRepository(tdb.DB)
	categoryRepo := persistence.NewGormCategoryRepository(tdb.DB)
	cartRepo := persistence.NewGormCartRepository(tdb.DB)
	orderRepo := persistence.NewGormOrderRepository(tdb.DB)
	accountRepo := persistence.NewGormAccountRepository(tdb.DB)

	productService := catalogapp.NewProductService(productRepo)
	categoryService := catalogapp.NewCategoryService(categoryRepo)
	cartService := cartapp.NewService(cartRepo, productRepo)
	orderService := orderapp.NewService(orderRepo, cartRepo)
	identityService := identityapp.NewService(accountRepo)

	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.Use(middleware.Session(store, sessionCfg))

	router.NewRouter(engine).
		Register(handler.NewProductHandler(productService, accountRepo)).
		Register(handler.NewCategoryHandler(categoryService, accountRepo)).
		Register(handler.NewCartHandler(cartService, orderService)).
		Register(handler.NewOrderHandler(orderService, accountRepo)).
		Register(handler.NewAuthHandler(identityService, accountRepo, store, sessionCfg)).
		Register(handler.NewAccountHandler(identityService, accountRepo)).
		Setup()

	return &App{Engine: engine, DB: tdb, Store: store}
}

// Do performs a request carrying the given session cookie
func (a *App) Do(t *testing.T, method, path, sessionID, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if sessionID != "" {
		req.AddCookie(&http.Cookie{Name: "storefront_session", Value: sessionID})
	}
	w := httptest.NewRecorder()
	a.Engine.ServeHTTP(w, req)
	return w
}

// Decode unmarshals a recorded JSON response body
func Decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
