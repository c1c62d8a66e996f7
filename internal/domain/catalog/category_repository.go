package catalog

import (
	"context"
)

// CategoryRepository defines the persistence interface for categories
type CategoryRepository interface {
	FindByID(ctx context.Context, id int64) (*Category, error)
	FindBySlug(ctx context.Context, slug string) (*Category, error)
	FindAll(ctx context.Context) ([]Category, error)
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
	HasChildren(ctx context.Context, id int64) (bool, error)
	Save(ctx context.Context, category *Category) error
	Delete(ctx context.Context, id int64) error
}
