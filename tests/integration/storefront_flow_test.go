package integration

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storefront/backend/internal/domain/identity"
)

// TestStorefrontFlow walks the whole customer journey against a real
// database: browse, fill the cart as a guest, register, check out, and
// watch the order move through fulfillment.
func TestStorefrontFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	app := NewApp(t)

	// an admin sets up the catalog
	admin, err := identity.NewAccount("root", "root@example.com", "correct horse", identity.RoleAdmin)
	require.NoError(t, err)
	require.NoError(t, app.DB.DB.Create(admin).Error)

	w := app.Do(t, http.MethodPost, "/api/v1/auth/login", "admin-sess",
		`{"username": "root", "password": "correct horse"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = app.Do(t, http.MethodPost, "/api/v1/categories", "admin-sess",
		`{"name": "Electronics", "slug": "electronics"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = app.Do(t, http.MethodPost, "/api/v1/products", "admin-sess",
		`{"name": "Mouse", "price": "19.99", "category": "electronics"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	productID := int64(Decode(t, w)["data"].(map[string]any)["id"].(float64))

	// a guest fills their cart; adding twice merges quantities
	addBody := fmt.Sprintf(`{"product_id": %d, "quantity": 1}`, productID)
	w = app.Do(t, http.MethodPost, "/api/v1/cart/items", "guest-sess", addBody)
	require.Equal(t, http.StatusOK, w.Code)
	w = app.Do(t, http.MethodPost, "/api/v1/cart/items", "guest-sess", addBody)
	require.Equal(t, http.StatusOK, w.Code)

	items := Decode(t, w)["data"].(map[string]any)["items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, float64(2), items[0].(map[string]any)["quantity"])

	// the guest registers; the cart survives the login
	w = app.Do(t, http.MethodPost, "/api/v1/auth/register", "guest-sess",
		`{"username": "alice", "email": "alice@example.com", "password": "correct horse"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = app.Do(t, http.MethodGet, "/api/v1/cart", "guest-sess", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, Decode(t, w)["data"].(map[string]any)["items"].([]any), 1)

	// checkout freezes prices and clears the cart
	w = app.Do(t, http.MethodPost, "/api/v1/cart/checkout", "guest-sess",
		`{"shipping_address": "1 Main St"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	order := Decode(t, w)["data"].(map[string]any)
	orderID := int64(order["id"].(float64))
	assert.Equal(t, "pending", order["status"])
	assert.Equal(t, "39.98", order["total"])

	w = app.Do(t, http.MethodGet, "/api/v1/cart", "guest-sess", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, Decode(t, w)["data"].(map[string]any)["items"])

	// a later price change does not touch the order's snapshot
	w = app.Do(t, http.MethodPut, fmt.Sprintf("/api/v1/products/%d", productID), "admin-sess",
		`{"price": "99.99"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = app.Do(t, http.MethodGet, fmt.Sprintf("/api/v1/orders/mine/%d", orderID), "guest-sess", "")
	require.Equal(t, http.StatusOK, w.Code)
	lines := Decode(t, w)["data"].(map[string]any)["lines"].([]any)
	require.Len(t, lines, 1)
	assert.Equal(t, "19.99", lines[0].(map[string]any)["price"])

	// the admin ships the order
	w = app.Do(t, http.MethodPut, fmt.Sprintf("/api/v1/orders/%d/status", orderID), "admin-sess",
		`{"status": "shipped"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = app.Do(t, http.MethodGet, fmt.Sprintf("/api/v1/orders/mine/%d", orderID), "guest-sess", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "shipped", Decode(t, w)["data"].(map[string]any)["status"])
}

// TestProductSearch exercises the case-insensitive search path, which
// relies on PostgreSQL's ILIKE.
func TestProductSearch(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	app := NewApp(t)

	admin, err := identity.NewAccount("root", "root@example.com", "correct horse", identity.RoleAdmin)
	require.NoError(t, err)
	require.NoError(t, app.DB.DB.Create(admin).Error)

	w := app.Do(t, http.MethodPost, "/api/v1/auth/login", "admin-sess",
		`{"username": "root", "password": "correct horse"}`)
	require.Equal(t, http.StatusOK, w.Code)

	for _, p := range []string{
		`{"name": "Wireless Mouse", "price": "19.99", "category": "electronics"}`,
		`{"name": "Mechanical Keyboard", "price": "89.99", "category": "electronics"}`,
		`{"name": "Office Chair", "price": "199.99", "category": "furniture"}`,
	} {
		w = app.Do(t, http.MethodPost, "/api/v1/products", "admin-sess", p)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w = app.Do(t, http.MethodGet, "/api/v1/products?search=mouse", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	data := Decode(t, w)["data"].([]any)
	require.Len(t, data, 1)
	assert.Equal(t, "Wireless Mouse", data[0].(map[string]any)["name"])

	w = app.Do(t, http.MethodGet, "/api/v1/products?category=electronics", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, Decode(t, w)["data"].([]any), 2)
}
