package order

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/storefront/backend/internal/domain/order"
)

// CheckoutRequest represents a request to turn the cart into an order
type CheckoutRequest struct {
	ShippingAddress string `json:"shipping_address" binding:"max=500"`
}

// UpdateStatusRequest represents an admin status change
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// LineResponse represents an order line with its frozen price
type LineResponse struct {
	ID        int64           `json:"id"`
	ProductID int64           `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Amount    decimal.Decimal `json:"amount"`
}

// OrderResponse represents an order in API responses
type OrderResponse struct {
	ID              int64           `json:"id"`
	AccountID       *int64          `json:"account_id"`
	Status          string          `json:"status"`
	Total           decimal.Decimal `json:"total"`
	ShippingAddress string          `json:"shipping_address"`
	Lines           []LineResponse  `json:"lines"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ListFilter represents filter options for the order list
type ListFilter struct {
	Status   string `form:"status"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// ToLineResponse converts a domain order line
func ToLineResponse(l *order.Line) LineResponse {
	return LineResponse{
		ID:        l.ID,
		ProductID: l.ProductID,
		Quantity:  l.Quantity,
		Price:     l.Price,
		Amount:    l.Amount(),
	}
}

// ToOrderResponse converts a domain Order to OrderResponse
func ToOrderResponse(o *order.Order) OrderResponse {
	lines := make([]LineResponse, len(o.Lines))
	for i := range o.Lines {
		lines[i] = ToLineResponse(&o.Lines[i])
	}
	return OrderResponse{
		ID:              o.ID,
		AccountID:       o.AccountID,
		Status:          o.Status.String(),
		Total:           o.Total,
		ShippingAddress: o.ShippingAddress,
		Lines:           lines,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

// ToOrderResponses converts a slice of orders
func ToOrderResponses(orders []order.Order) []OrderResponse {
	responses := make([]OrderResponse, len(orders))
	for i := range orders {
		responses[i] = ToOrderResponse(&orders[i])
	}
	return responses
}
