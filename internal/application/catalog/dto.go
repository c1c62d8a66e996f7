package catalog

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/storefront/backend/internal/domain/catalog"
)

// CreateProductRequest represents a request to create a new product
type CreateProductRequest struct {
	Name        string          `json:"name" binding:"required,min=1,max=200"`
	Description string          `json:"description" binding:"max=5000"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Category    string          `json:"category" binding:"required,min=1,max=100"`
	Subcategory string          `json:"subcategory" binding:"max=100"`
	ImageURL    string          `json:"image_url" binding:"omitempty,max=500"`
	InStock     *bool           `json:"in_stock"`
	Inventory   *int            `json:"inventory" binding:"omitempty,min=0"`
}

// UpdateProductRequest represents a partial product update. Nil fields
// are left unchanged.
type UpdateProductRequest struct {
	Name        *string          `json:"name" binding:"omitempty,min=1,max=200"`
	Description *string          `json:"description" binding:"omitempty,max=5000"`
	Price       *decimal.Decimal `json:"price"`
	Category    *string          `json:"category" binding:"omitempty,min=1,max=100"`
	Subcategory *string          `json:"subcategory" binding:"omitempty,max=100"`
	ImageURL    *string          `json:"image_url" binding:"omitempty,max=500"`
	InStock     *bool            `json:"in_stock"`
	Inventory   *int             `json:"inventory" binding:"omitempty,min=0"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Subcategory string          `json:"subcategory"`
	ImageURL    string          `json:"image_url"`
	InStock     bool            `json:"in_stock"`
	Inventory   int             `json:"inventory"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductListFilter represents filter options for the product list
type ProductListFilter struct {
	Search      string `form:"search"`
	Category    string `form:"category"`
	Subcategory string `form:"subcategory"`
	InStock     *bool  `form:"in_stock"`
	Page        int    `form:"page" binding:"omitempty,min=1"`
	PageSize    int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy     string `form:"order_by"`
	OrderDir    string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// CreateCategoryRequest represents a request to create a category
type CreateCategoryRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Slug     string `json:"slug" binding:"required,min=1,max=100"`
	ParentID *int64 `json:"parent_id"`
}

// UpdateCategoryRequest represents a partial category update
type UpdateCategoryRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=100"`
	Slug     *string `json:"slug" binding:"omitempty,min=1,max=100"`
	ParentID *int64  `json:"parent_id"`
	// MakeRoot promotes the category to a root; it wins over ParentID.
	MakeRoot bool `json:"make_root"`
}

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	ParentID  *int64    `json:"parent_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CategoryTreeResponse is a root category with its children
type CategoryTreeResponse struct {
	CategoryResponse
	Children []CategoryResponse `json:"children"`
}

// ToProductResponse converts a domain Product to ProductResponse
func ToProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		Subcategory: p.Subcategory,
		ImageURL:    p.ImageURL,
		InStock:     p.InStock,
		Inventory:   p.Inventory,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToProductResponses converts a slice of products
func ToProductResponses(products []catalog.Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = ToProductResponse(&products[i])
	}
	return responses
}

// ToCategoryResponse converts a domain Category to CategoryResponse
func ToCategoryResponse(c *catalog.Category) CategoryResponse {
	return CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		Slug:      c.Slug,
		ParentID:  c.ParentID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
