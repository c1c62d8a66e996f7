package order

import (
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/shared"
)

// Status represents the fulfilment status of an order.
//
// Any status may move to any other: the storefront has no fulfilment
// workflow that would justify a transition graph, so the enumeration
// stays open deliberately.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

// IsValid checks if the status is a valid order Status
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// Line is an immutable order line. Price is the unit price captured at
// checkout time; it never tracks later catalog price changes.
type Line struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	OrderID   int64           `gorm:"not null;index"`
	ProductID int64           `gorm:"not null;index"`
	Quantity  int             `gorm:"not null"`
	Price     decimal.Decimal `gorm:"type:decimal(18,2);not null"`
}

// TableName returns the table name for GORM
func (Line) TableName() string {
	return "order_lines"
}

// NewLine creates an order line with a frozen unit price
func NewLine(productID int64, quantity int, price decimal.Decimal) (*Line, error) {
	if productID <= 0 {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID is required")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Quantity must be a positive integer")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}

	return &Line{
		ProductID: productID,
		Quantity:  quantity,
		Price:     price,
	}, nil
}

// Amount returns quantity times the frozen unit price
func (l *Line) Amount() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Order is a materialized snapshot of a cart at checkout time. Apart
// from its status, which admins may change, it is immutable.
type Order struct {
	shared.BaseEntity
	AccountID       *int64          `gorm:"index"` // nil for guest checkout
	Status          Status          `gorm:"type:varchar(20);not null;default:'pending'"`
	Total           decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	ShippingAddress string          `gorm:"type:varchar(500)"`
	Lines           []Line          `gorm:"foreignKey:OrderID"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// NewOrder materializes an order from already-built lines. The total is
// recomputed from the lines so it always matches their frozen prices.
func NewOrder(accountID *int64, shippingAddress string, lines []Line) (*Order, error) {
	if len(lines) == 0 {
		return nil, shared.ErrEmptyCart
	}
	if len(shippingAddress) > 500 {
		return nil, shared.NewDomainError("INVALID_ADDRESS", "Shipping address cannot exceed 500 characters")
	}

	total := decimal.Zero
	for i := range lines {
		total = total.Add(lines[i].Amount())
	}

	return &Order{
		BaseEntity:      shared.NewBaseEntity(),
		AccountID:       accountID,
		Status:          StatusPending,
		Total:           total,
		ShippingAddress: shippingAddress,
		Lines:           lines,
	}, nil
}

// UpdateStatus changes the order status. Invalid status values are
// rejected; any valid status may follow any other.
func (o *Order) UpdateStatus(status Status) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_INPUT", "Invalid order status")
	}

	o.Status = status
	o.Touch()

	return nil
}
