package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/identity"
	"github.com/storefront/backend/internal/infrastructure/config"
	"github.com/storefront/backend/internal/infrastructure/persistence"
)

func TestSeed(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	tdb := NewTestDB(t)
	ctx := context.Background()

	cfg := config.SeedConfig{
		Enabled:       true,
		AdminUsername: "root",
		AdminEmail:    "root@example.com",
		AdminPassword: "correct horse",
	}

	require.NoError(t, persistence.Seed(ctx, tdb.DB, cfg, zap.NewNop()))

	var admin identity.Account
	require.NoError(t, tdb.DB.First(&admin, "username = ?", "root").Error)
	assert.True(t, admin.IsAdmin())
	assert.True(t, admin.VerifyPassword("correct horse"))

	var productCount, categoryCount int64
	require.NoError(t, tdb.DB.Model(&catalog.Product{}).Count(&productCount).Error)
	require.NoError(t, tdb.DB.Model(&catalog.Category{}).Count(&categoryCount).Error)
	assert.Greater(t, productCount, int64(0))
	assert.Greater(t, categoryCount, int64(0))

	// a second run is a no-op
	require.NoError(t, persistence.Seed(ctx, tdb.DB, cfg, zap.NewNop()))

	var accountCount, productCountAfter int64
	require.NoError(t, tdb.DB.Model(&identity.Account{}).Count(&accountCount).Error)
	require.NoError(t, tdb.DB.Model(&catalog.Product{}).Count(&productCountAfter).Error)
	assert.Equal(t, int64(1), accountCount)
	assert.Equal(t, productCount, productCountAfter)
}
