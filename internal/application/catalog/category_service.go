package catalog

import (
	"context"
	"errors"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
)

// CategoryService handles category-related business operations
type CategoryService struct {
	categoryRepo catalog.CategoryRepository
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categoryRepo catalog.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// Create creates a new category, as a root or under an existing root
func (s *CategoryService) Create(ctx context.Context, req CreateCategoryRequest) (*CategoryResponse, error) {
	exists, err := s.categoryRepo.ExistsBySlug(ctx, req.Slug)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Category with this slug already exists")
	}

	var category *catalog.Category
	if req.ParentID != nil {
		parent, err := s.categoryRepo.FindByID(ctx, *req.ParentID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("INVALID_PARENT", "Parent category not found")
			}
			return nil, err
		}
		category, err = catalog.NewChildCategory(req.Name, req.Slug, parent)
		if err != nil {
			return nil, err
		}
	} else {
		category, err = catalog.NewCategory(req.Name, req.Slug)
		if err != nil {
			return nil, err
		}
	}

	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}

	response := ToCategoryResponse(category)
	return &response, nil
}

// GetByID retrieves a category by ID
func (s *CategoryService) GetByID(ctx context.Context, id int64) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToCategoryResponse(category)
	return &response, nil
}

// GetBySlug retrieves a category by its slug
func (s *CategoryService) GetBySlug(ctx context.Context, slug string) (*CategoryResponse, error) {
	if err := catalog.ValidateSlug(slug); err != nil {
		return nil, err
	}

	category, err := s.categoryRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	response := ToCategoryResponse(category)
	return &response, nil
}

// List returns all categories grouped as roots with their children
func (s *CategoryService) List(ctx context.Context) ([]CategoryTreeResponse, error) {
	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	roots := make([]CategoryTreeResponse, 0)
	childrenByParent := make(map[int64][]CategoryResponse)

	for i := range categories {
		c := &categories[i]
		if c.IsRoot() {
			roots = append(roots, CategoryTreeResponse{
				CategoryResponse: ToCategoryResponse(c),
				Children:         []CategoryResponse{},
			})
		} else {
			childrenByParent[*c.ParentID] = append(childrenByParent[*c.ParentID], ToCategoryResponse(c))
		}
	}

	for i := range roots {
		if children, ok := childrenByParent[roots[i].ID]; ok {
			roots[i].Children = children
		}
	}

	return roots, nil
}

// Update applies a partial update to a category
func (s *CategoryService) Update(ctx context.Context, id int64, req UpdateCategoryRequest) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := category.Update(*req.Name); err != nil {
			return nil, err
		}
	}

	if req.Slug != nil && *req.Slug != category.Slug {
		exists, err := s.categoryRepo.ExistsBySlug(ctx, *req.Slug)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Category with this slug already exists")
		}
		if err := category.UpdateSlug(*req.Slug); err != nil {
			return nil, err
		}
	}

	switch {
	case req.MakeRoot:
		if err := category.Reparent(nil); err != nil {
			return nil, err
		}
	case req.ParentID != nil:
		parent, err := s.categoryRepo.FindByID(ctx, *req.ParentID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("INVALID_PARENT", "Parent category not found")
			}
			return nil, err
		}
		// a category with children cannot be nested, that would exceed depth one
		has, err := s.categoryRepo.HasChildren(ctx, id)
		if err != nil {
			return nil, err
		}
		if has {
			return nil, shared.NewDomainError("INVALID_PARENT", "Category with children cannot be moved under a parent")
		}
		if err := category.Reparent(parent); err != nil {
			return nil, err
		}
	}

	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}

	response := ToCategoryResponse(category)
	return &response, nil
}

// Delete removes a category. Categories with children must be emptied
// first so no child is silently orphaned.
func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	has, err := s.categoryRepo.HasChildren(ctx, id)
	if err != nil {
		return err
	}
	if has {
		return shared.NewDomainError("HAS_CHILDREN", "Category has child categories and cannot be deleted")
	}

	return s.categoryRepo.Delete(ctx, id)
}
