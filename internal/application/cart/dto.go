package cart

import (
	"github.com/shopspring/decimal"

	"github.com/storefront/backend/internal/domain/cart"
)

// AddItemRequest represents a request to add a product to the cart
type AddItemRequest struct {
	ProductID int64 `json:"product_id" binding:"required,min=1"`
	Quantity  int   `json:"quantity" binding:"required,min=1"`
}

// UpdateItemRequest represents a request to set a cart line's quantity.
// A quantity of zero or less removes the line.
type UpdateItemRequest struct {
	Quantity int `json:"quantity"`
}

// ItemResponse represents a cart line in API responses, joined with
// the current product snapshot.
type ItemResponse struct {
	ID           int64           `json:"id"`
	ProductID    int64           `json:"product_id"`
	ProductName  string          `json:"product_name"`
	ProductPrice decimal.Decimal `json:"product_price"`
	ImageURL     string          `json:"image_url"`
	Quantity     int             `json:"quantity"`
	Subtotal     decimal.Decimal `json:"subtotal"`
}

// CartResponse represents the full cart with its running total
type CartResponse struct {
	Items []ItemResponse  `json:"items"`
	Total decimal.Decimal `json:"total"`
}

// ToItemResponse converts a joined cart line to ItemResponse
func ToItemResponse(l *cart.LineWithProduct) ItemResponse {
	return ItemResponse{
		ID:           l.ID,
		ProductID:    l.ProductID,
		ProductName:  l.ProductName,
		ProductPrice: l.ProductPrice,
		ImageURL:     l.ImageURL,
		Quantity:     l.Quantity,
		Subtotal:     l.Subtotal(),
	}
}

// ToCartResponse converts joined cart lines to a CartResponse with total
func ToCartResponse(lines []cart.LineWithProduct) CartResponse {
	items := make([]ItemResponse, len(lines))
	total := decimal.Zero
	for i := range lines {
		items[i] = ToItemResponse(&lines[i])
		total = total.Add(items[i].Subtotal)
	}
	return CartResponse{Items: items, Total: total}
}
