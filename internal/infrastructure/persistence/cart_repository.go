package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/storefront/backend/internal/domain/cart"
	"github.com/storefront/backend/internal/domain/shared"
)

// GormCartRepository implements cart.Repository using GORM
type GormCartRepository struct {
	db *gorm.DB
}

// NewGormCartRepository creates a new GormCartRepository
func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// Upsert inserts a cart line or increments the existing one for the
// same (product, session) pair. The ON CONFLICT clause makes the merge
// atomic, so two concurrent adds never produce duplicate lines.
func (r *GormCartRepository) Upsert(ctx context.Context, productID int64, sessionID string, quantity int) (*cart.Line, error) {
	line, err := cart.NewLine(productID, sessionID, quantity)
	if err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "product_id"}, {Name: "session_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"quantity":   gorm.Expr("cart_lines.quantity + ?", quantity),
				"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
			}),
		}).
		Create(line).Error; err != nil {
		return nil, err
	}

	// Re-read: on the conflict path the returned struct holds the
	// inserted values, not the merged row.
	var merged cart.Line
	if err := r.db.WithContext(ctx).
		Where("product_id = ? AND session_id = ?", productID, sessionID).
		First(&merged).Error; err != nil {
		return nil, err
	}

	return &merged, nil
}

// FindByID finds a cart line by its ID
func (r *GormCartRepository) FindByID(ctx context.Context, id int64) (*cart.Line, error) {
	var line cart.Line
	if err := r.db.WithContext(ctx).First(&line, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &line, nil
}

// FindBySession returns the session's lines joined with their current
// product snapshot, oldest line first.
func (r *GormCartRepository) FindBySession(ctx context.Context, sessionID string) ([]cart.LineWithProduct, error) {
	var lines []cart.LineWithProduct
	if err := r.db.WithContext(ctx).
		Table("cart_lines").
		Select("cart_lines.*, products.name AS product_name, products.price AS product_price, products.image_url AS image_url").
		Joins("JOIN products ON products.id = cart_lines.product_id").
		Where("cart_lines.session_id = ?", sessionID).
		Order("cart_lines.created_at ASC, cart_lines.id ASC").
		Scan(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

// UpdateQuantity sets a line's quantity and returns the updated line
func (r *GormCartRepository) UpdateQuantity(ctx context.Context, id int64, quantity int) (*cart.Line, error) {
	if err := cart.ValidateQuantity(quantity); err != nil {
		return nil, err
	}

	result := r.db.WithContext(ctx).
		Model(&cart.Line{}).
		Where("id = ?", id).
		Update("quantity", quantity)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, shared.ErrNotFound
	}

	return r.FindByID(ctx, id)
}

// Delete removes a line and reports whether a row actually existed
func (r *GormCartRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&cart.Line{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// ClearSession removes all lines for a session. Idempotent.
func (r *GormCartRepository) ClearSession(ctx context.Context, sessionID string) error {
	return r.db.WithContext(ctx).Delete(&cart.Line{}, "session_id = ?", sessionID).Error
}

var _ cart.Repository = (*GormCartRepository)(nil)
