package catalog

import (
	"context"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
)

// ProductService handles product-related business operations
type ProductService struct {
	productRepo catalog.ProductRepository
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// Create creates a new product
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	product, err := catalog.NewProduct(req.Name, req.Description, req.Category, req.Subcategory, req.ImageURL, req.Price)
	if err != nil {
		return nil, err
	}

	if req.InStock != nil || req.Inventory != nil {
		inStock := product.InStock
		inventory := product.Inventory
		if req.InStock != nil {
			inStock = *req.InStock
		}
		if req.Inventory != nil {
			inventory = *req.Inventory
		}
		if err := product.SetStock(inStock, inventory); err != nil {
			return nil, err
		}
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// GetByID retrieves a product by ID
func (s *ProductService) GetByID(ctx context.Context, id int64) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// List retrieves products with filtering and pagination
func (s *ProductService) List(ctx context.Context, filter ProductListFilter) (*shared.Paginated[ProductResponse], error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "id"
	}
	if filter.OrderDir == "" {
		filter.OrderDir = "asc"
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
		Filters:  make(map[string]interface{}),
	}
	// a subcategory without a category goes through the generic filter;
	// the paired lookup has a dedicated query below
	if filter.Subcategory != "" && filter.Category == "" {
		domainFilter.Filters["subcategory"] = filter.Subcategory
	}
	if filter.InStock != nil {
		domainFilter.Filters["in_stock"] = *filter.InStock
	}

	var (
		products []catalog.Product
		err      error
	)
	switch {
	case filter.Category != "" && filter.Subcategory != "":
		products, err = s.productRepo.FindBySubcategory(ctx, filter.Category, filter.Subcategory, domainFilter)
	case filter.Category != "":
		products, err = s.productRepo.FindByCategory(ctx, filter.Category, domainFilter)
	default:
		products, err = s.productRepo.FindAll(ctx, domainFilter)
	}
	if err != nil {
		return nil, err
	}

	countFilter := domainFilter
	if filter.Category != "" {
		countFilter.Filters["category"] = filter.Category
		if filter.Subcategory != "" {
			countFilter.Filters["subcategory"] = filter.Subcategory
		}
	}
	total, err := s.productRepo.Count(ctx, countFilter)
	if err != nil {
		return nil, err
	}

	result := shared.NewPaginated(ToProductResponses(products), total, filter.Page, filter.PageSize)
	return &result, nil
}

// Update applies a partial update to a product
func (s *ProductService) Update(ctx context.Context, id int64, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil || req.Description != nil {
		name := product.Name
		description := product.Description
		if req.Name != nil {
			name = *req.Name
		}
		if req.Description != nil {
			description = *req.Description
		}
		if err := product.Update(name, description); err != nil {
			return nil, err
		}
	}

	if req.Price != nil {
		if err := product.SetPrice(*req.Price); err != nil {
			return nil, err
		}
	}

	if req.Category != nil || req.Subcategory != nil {
		category := product.Category
		subcategory := product.Subcategory
		if req.Category != nil {
			category = *req.Category
		}
		if req.Subcategory != nil {
			subcategory = *req.Subcategory
		}
		if err := product.SetCategory(category, subcategory); err != nil {
			return nil, err
		}
	}

	if req.ImageURL != nil {
		if err := product.SetImageURL(*req.ImageURL); err != nil {
			return nil, err
		}
	}

	if req.InStock != nil || req.Inventory != nil {
		inStock := product.InStock
		inventory := product.Inventory
		if req.InStock != nil {
			inStock = *req.InStock
		}
		if req.Inventory != nil {
			inventory = *req.Inventory
		}
		if err := product.SetStock(inStock, inventory); err != nil {
			return nil, err
		}
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// Delete removes a product. Cart lines referencing it are removed by
// the repository in the same transaction.
func (s *ProductService) Delete(ctx context.Context, id int64) error {
	return s.productRepo.Delete(ctx, id)
}
