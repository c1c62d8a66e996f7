package persistence

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/storefront/backend/internal/domain/catalog"
)

// setupTestDB opens an in-memory SQLite database with the full schema.
// Search paths use ILIKE and are exercised against Postgres in the
// integration suite instead.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, AutoMigrate(db))

	return db
}

func createTestProduct(t *testing.T, db *gorm.DB, name, category string, price string) *catalog.Product {
	t.Helper()

	p, err := decimal.NewFromString(price)
	require.NoError(t, err)

	product, err := catalog.NewProduct(name, "test product", category, "", "", p)
	require.NoError(t, err)
	require.NoError(t, db.Create(product).Error)

	return product
}
