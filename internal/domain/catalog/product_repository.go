package catalog

import (
	"context"

	"github.com/storefront/backend/internal/domain/shared"
)

// ProductRepository defines the persistence interface for products
type ProductRepository interface {
	FindByID(ctx context.Context, id int64) (*Product, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Product, error)
	FindByCategory(ctx context.Context, category string, filter shared.Filter) ([]Product, error)
	FindBySubcategory(ctx context.Context, category, subcategory string, filter shared.Filter) ([]Product, error)
	Save(ctx context.Context, product *Product) error
	// Delete removes the product and cascades to any cart lines that
	// reference it, in a single transaction.
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
