package identity

import (
	"context"

	"github.com/storefront/backend/internal/domain/shared"
)

// Repository defines the persistence interface for accounts
type Repository interface {
	FindByID(ctx context.Context, id int64) (*Account, error)
	FindByUsername(ctx context.Context, username string) (*Account, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Account, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	Save(ctx context.Context, account *Account) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
