package cart

import (
	"context"
)

// Repository defines the persistence interface for cart lines
type Repository interface {
	// Upsert atomically inserts a line for (productID, sessionID) or,
	// if one already exists, increments its quantity by the given
	// amount. The returned line reflects the post-merge state.
	Upsert(ctx context.Context, productID int64, sessionID string, quantity int) (*Line, error)
	FindByID(ctx context.Context, id int64) (*Line, error)
	// FindBySession returns the session's lines joined with their
	// current product snapshot, oldest first.
	FindBySession(ctx context.Context, sessionID string) ([]LineWithProduct, error)
	UpdateQuantity(ctx context.Context, id int64, quantity int) (*Line, error)
	// Delete removes a line and reports whether a row actually existed.
	Delete(ctx context.Context, id int64) (bool, error)
	// ClearSession removes all lines for a session. Idempotent.
	ClearSession(ctx context.Context, sessionID string) error
}
