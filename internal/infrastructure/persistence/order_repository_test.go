package persistence

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storefront/backend/internal/domain/order"
	"github.com/storefront/backend/internal/domain/shared"
)

func TestGormOrderRepository_CreateFromCart(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormOrderRepository(db)
	cartRepo := NewGormCartRepository(db)
	ctx := context.Background()

	product := createTestProduct(t, db, "Mouse", "electronics", "19.99")
	_, err := cartRepo.Upsert(ctx, product.ID, "sess-1", 2)
	require.NoError(t, err)
	_, err = cartRepo.Upsert(ctx, product.ID, "sess-other", 1)
	require.NoError(t, err)

	line, err := order.NewLine(product.ID, 2, decimal.NewFromFloat(19.99))
	require.NoError(t, err)
	o, err := order.NewOrder(nil, "1 Main St", []order.Line{*line})
	require.NoError(t, err)

	require.NoError(t, repo.CreateFromCart(ctx, o, "sess-1"))

	t.Run("persists order with lines", func(t *testing.T) {
		found, err := repo.FindByID(ctx, o.ID)
		require.NoError(t, err)
		assert.Equal(t, order.StatusPending, found.Status)
		assert.True(t, found.Total.Equal(decimal.NewFromFloat(39.98)))
		require.Len(t, found.Lines, 1)
		assert.True(t, found.Lines[0].Price.Equal(decimal.NewFromFloat(19.99)))
	})

	t.Run("clears only the checked-out session", func(t *testing.T) {
		lines, err := cartRepo.FindBySession(ctx, "sess-1")
		require.NoError(t, err)
		assert.Empty(t, lines)

		lines, err = cartRepo.FindBySession(ctx, "sess-other")
		require.NoError(t, err)
		assert.Len(t, lines, 1)
	})
}

func TestGormOrderRepository_PriceSnapshotSurvivesCatalogChanges(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormOrderRepository(db)
	productRepo := NewGormProductRepository(db)
	ctx := context.Background()

	product := createTestProduct(t, db, "Mouse", "electronics", "19.99")

	line, err := order.NewLine(product.ID, 1, product.Price)
	require.NoError(t, err)
	o, err := order.NewOrder(nil, "", []order.Line{*line})
	require.NoError(t, err)
	require.NoError(t, repo.CreateFromCart(ctx, o, "sess-1"))

	// raise the catalog price after checkout
	require.NoError(t, product.SetPrice(decimal.NewFromFloat(29.99)))
	require.NoError(t, productRepo.Save(ctx, product))

	found, err := repo.FindByID(ctx, o.ID)
	require.NoError(t, err)
	require.Len(t, found.Lines, 1)
	assert.True(t, found.Lines[0].Price.Equal(decimal.NewFromFloat(19.99)))
	assert.True(t, found.Total.Equal(decimal.NewFromFloat(19.99)))
}

func TestGormOrderRepository_FindByAccount(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormOrderRepository(db)
	ctx := context.Background()

	product := createTestProduct(t, db, "Mouse", "electronics", "19.99")

	makeOrder := func(accountID *int64) *order.Order {
		line, err := order.NewLine(product.ID, 1, product.Price)
		require.NoError(t, err)
		o, err := order.NewOrder(accountID, "", []order.Line{*line})
		require.NoError(t, err)
		require.NoError(t, repo.CreateFromCart(ctx, o, "sess-x"))
		return o
	}

	accountID := int64(7)
	makeOrder(&accountID)
	makeOrder(&accountID)
	makeOrder(nil) // guest order

	mine, err := repo.FindByAccount(ctx, accountID, shared.DefaultFilter())
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	all, err := repo.FindAll(ctx, shared.DefaultFilter())
	require.NoError(t, err)
	assert.Len(t, all, 3)

	count, err := repo.Count(ctx, shared.DefaultFilter())
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestGormOrderRepository_UpdateStatus(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormOrderRepository(db)
	ctx := context.Background()

	product := createTestProduct(t, db, "Mouse", "electronics", "19.99")
	line, err := order.NewLine(product.ID, 1, product.Price)
	require.NoError(t, err)
	o, err := order.NewOrder(nil, "", []order.Line{*line})
	require.NoError(t, err)
	require.NoError(t, repo.CreateFromCart(ctx, o, "sess-1"))

	require.NoError(t, o.UpdateStatus(order.StatusShipped))
	require.NoError(t, repo.Save(ctx, o))

	found, err := repo.FindByID(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, order.StatusShipped, found.Status)
	// lines untouched by the status update
	require.Len(t, found.Lines, 1)
}
