package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/shared"
)

// Product represents a sellable item in the catalog.
// Its price is the live price used for cart totals; orders snapshot it
// at checkout time (see the order package).
type Product struct {
	shared.BaseEntity
	Name        string          `gorm:"type:varchar(200);not null"`
	Description string          `gorm:"type:text;not null"`
	Price       decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Category    string          `gorm:"type:varchar(100);not null;index"`
	Subcategory string          `gorm:"type:varchar(100);not null;index"`
	ImageURL    string          `gorm:"type:varchar(500);not null"`
	InStock     bool            `gorm:"not null;default:true"`
	Inventory   int             `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product
func NewProduct(name, description, category, subcategory, imageURL string, price decimal.Decimal) (*Product, error) {
	if err := validateProductName(name); err != nil {
		return nil, err
	}
	if err := validatePrice(price); err != nil {
		return nil, err
	}
	if category == "" {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Category cannot be empty")
	}

	return &Product{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        name,
		Description: description,
		Price:       price,
		Category:    category,
		Subcategory: subcategory,
		ImageURL:    imageURL,
		InStock:     true,
	}, nil
}

// Update updates the product's basic information
func (p *Product) Update(name, description string) error {
	if err := validateProductName(name); err != nil {
		return err
	}

	p.Name = name
	p.Description = description
	p.Touch()

	return nil
}

// SetPrice updates the live selling price
func (p *Product) SetPrice(price decimal.Decimal) error {
	if err := validatePrice(price); err != nil {
		return err
	}

	p.Price = price
	p.Touch()

	return nil
}

// SetCategory moves the product to another category/subcategory pair
func (p *Product) SetCategory(category, subcategory string) error {
	if category == "" {
		return shared.NewDomainError("INVALID_CATEGORY", "Category cannot be empty")
	}

	p.Category = category
	p.Subcategory = subcategory
	p.Touch()

	return nil
}

// SetImageURL sets the product image reference
func (p *Product) SetImageURL(imageURL string) error {
	if len(imageURL) > 500 {
		return shared.NewDomainError("INVALID_IMAGE_URL", "Image URL cannot exceed 500 characters")
	}

	p.ImageURL = imageURL
	p.Touch()

	return nil
}

// SetStock updates the in-stock flag and inventory count
func (p *Product) SetStock(inStock bool, inventory int) error {
	if inventory < 0 {
		return shared.NewDomainError("INVALID_INVENTORY", "Inventory cannot be negative")
	}

	p.InStock = inStock
	p.Inventory = inventory
	p.Touch()

	return nil
}

func validateProductName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	return nil
}

func validatePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	return nil
}
