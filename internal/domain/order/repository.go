package order

import (
	"context"

	"github.com/storefront/backend/internal/domain/shared"
)

// Repository defines the persistence interface for orders
type Repository interface {
	// CreateFromCart persists the order with its lines and clears the
	// session's cart in one transaction. Either all of it happens or
	// none of it does.
	CreateFromCart(ctx context.Context, o *Order, sessionID string) error
	FindByID(ctx context.Context, id int64) (*Order, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Order, error)
	FindByAccount(ctx context.Context, accountID int64, filter shared.Filter) ([]Order, error)
	Save(ctx context.Context, o *Order) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
