package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	cartapp "github.com/storefront/backend/internal/application/cart"
	catalogapp "github.com/storefront/backend/internal/application/catalog"
	identityapp "github.com/storefront/backend/internal/application/identity"
	orderapp "github.com/storefront/backend/internal/application/order"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/identity"
	"github.com/storefront/backend/internal/infrastructure/config"
	"github.com/storefront/backend/internal/infrastructure/persistence"
	"github.com/storefront/backend/internal/infrastructure/session"
	"github.com/storefront/backend/internal/interfaces/http/middleware"
	"github.com/storefront/backend/internal/interfaces/http/router"
)

// testApp wires the full HTTP stack against an in-memory database and
// session store
type testApp struct {
	engine *gin.Engine
	db     *gorm.DB
	store  *session.MemoryStore
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, persistence.AutoMigrate(db))

	store := session.NewMemoryStore()
	t.Cleanup(func() { store.Close() })

	sessionCfg := config.SessionConfig{
		CookieName: "storefront_session",
		TTL:        time.Hour,
		SameSite:   "lax",
		Path:       "/",
	}

	productRepo := persistence.NewGormProductRepository(db)
	categoryRepo := persistence.NewGormCategoryRepository(db)
	cartRepo := persistence.NewGormCartRepository(db)
	orderRepo := persistence.NewGormOrderRepository(db)
	accountRepo := persistence.NewGormAccountRepository(db)

	productService := catalogapp.NewProductService(productRepo)
	categoryService := catalogapp.NewCategoryService(categoryRepo)
	cartService := cartapp.NewService(cartRepo, productRepo)
	orderService := orderapp.NewService(orderRepo, cartRepo)
	identityService := identityapp.NewService(accountRepo)

	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.Use(middleware.Session(store, sessionCfg))

	router.NewRouter(engine).
		Register(NewProductHandler(productService, accountRepo)).
		Register(NewCategoryHandler(categoryService, accountRepo)).
		Register(NewCartHandler(cartService, orderService)).
		Register(NewOrderHandler(orderService, accountRepo)).
		Register(NewAuthHandler(identityService, accountRepo, store, sessionCfg)).
		Register(NewAccountHandler(identityService, accountRepo)).
		Setup()

	return &testApp{engine: engine, db: db, store: store}
}

// do performs a request carrying the given session cookie
func (a *testApp) do(t *testing.T, method, path, sessionID string, body string) *httptest.ResponseRecorder {
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
	a.engine.ServeHTTP(w, req)
	return w
}

// loginAs creates an account with the given role directly and binds it
// to a fresh session, returning the session ID
func (a *testApp) loginAs(t *testing.T, username string, role identity.Role) string {
	t.Helper()
	account, err := identity.NewAccount(username, username+"@example.com", "correct horse", role)
	require.NoError(t, err)
	require.NoError(t, a.db.Create(account).Error)

	sessionID := session.NewSessionID()
	err = a.store.Set(context.Background(), sessionID,
		&session.Data{AccountID: account.ID, CreatedAt: time.Now()}, time.Hour)
	require.NoError(t, err)
	return sessionID
}

// seedProduct inserts a product directly and returns its ID
func (a *testApp) seedProduct(t *testing.T, name string, price string) int64 {
	t.Helper()
	p, err := decimal.NewFromString(price)
	require.NoError(t, err)
	product, err := catalog.NewProduct(name, "", "electronics", "", "", p)
	require.NoError(t, err)
	require.NoError(t, a.db.Create(product).Error)
	return product.ID
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
