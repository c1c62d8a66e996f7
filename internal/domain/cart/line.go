package cart

import (
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/shared"
)

// Line represents one product in a session's cart. A session holds at
// most one line per product; adding the same product again increments
// the existing line's quantity instead of creating a duplicate.
type Line struct {
	shared.BaseEntity
	ProductID int64  `gorm:"not null;uniqueIndex:idx_cart_product_session,priority:1"`
	SessionID string `gorm:"type:varchar(100);not null;uniqueIndex:idx_cart_product_session,priority:2;index"`
	Quantity  int    `gorm:"not null"`
}

// TableName returns the table name for GORM
func (Line) TableName() string {
	return "cart_lines"
}

// NewLine creates a new cart line
func NewLine(productID int64, sessionID string, quantity int) (*Line, error) {
	if productID <= 0 {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID is required")
	}
	if sessionID == "" {
		return nil, shared.NewDomainError("INVALID_SESSION", "Session ID is required")
	}
	if err := ValidateQuantity(quantity); err != nil {
		return nil, err
	}

	return &Line{
		BaseEntity: shared.NewBaseEntity(),
		ProductID:  productID,
		SessionID:  sessionID,
		Quantity:   quantity,
	}, nil
}

// ValidateQuantity checks that a quantity is a positive integer
func ValidateQuantity(quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_INPUT", "Quantity must be a positive integer")
	}
	return nil
}

// LineWithProduct is the read model for cart display: a line joined
// with the current product snapshot. Price here is the live catalog
// price, not a frozen one.
type LineWithProduct struct {
	Line
	ProductName  string          `gorm:"column:product_name"`
	ProductPrice decimal.Decimal `gorm:"column:product_price"`
	ImageURL     string          `gorm:"column:image_url"`
}

// Subtotal returns quantity times the current product price
func (l *LineWithProduct) Subtotal() decimal.Decimal {
	return l.ProductPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}
