package catalog

import (
	"regexp"
	"strings"

	"github.com/storefront/backend/internal/domain/shared"
)

var slugRegex = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Category represents a browsing category. Categories form a tree of
// depth one: a category either is a root or points at a root. A parent
// can never itself have a parent, so cycles are impossible by
// construction.
type Category struct {
	shared.BaseEntity
	Name     string `gorm:"type:varchar(100);not null"`
	Slug     string `gorm:"type:varchar(100);not null;uniqueIndex"`
	ParentID *int64 `gorm:"index"`
}

// TableName returns the table name for GORM
func (Category) TableName() string {
	return "categories"
}

// NewCategory creates a new root category
func NewCategory(name, slug string) (*Category, error) {
	if err := validateCategoryName(name); err != nil {
		return nil, err
	}
	if err := ValidateSlug(slug); err != nil {
		return nil, err
	}

	return &Category{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Slug:       strings.ToLower(slug),
	}, nil
}

// NewChildCategory creates a category nested under a root category.
// The parent must be a root; deeper nesting is rejected.
func NewChildCategory(name, slug string, parent *Category) (*Category, error) {
	if parent == nil {
		return nil, shared.NewDomainError("INVALID_PARENT", "Parent category is required")
	}
	if parent.ParentID != nil {
		return nil, shared.NewDomainError("INVALID_PARENT", "Parent category must be a root category")
	}

	category, err := NewCategory(name, slug)
	if err != nil {
		return nil, err
	}

	parentID := parent.ID
	category.ParentID = &parentID
	return category, nil
}

// Update updates the category's name
func (c *Category) Update(name string) error {
	if err := validateCategoryName(name); err != nil {
		return err
	}

	c.Name = name
	c.Touch()

	return nil
}

// UpdateSlug changes the category's slug
func (c *Category) UpdateSlug(slug string) error {
	if err := ValidateSlug(slug); err != nil {
		return err
	}

	c.Slug = strings.ToLower(slug)
	c.Touch()

	return nil
}

// Reparent moves the category under a new root, or makes it a root
// when parent is nil.
func (c *Category) Reparent(parent *Category) error {
	if parent == nil {
		c.ParentID = nil
		c.Touch()
		return nil
	}
	if parent.ID == c.ID {
		return shared.NewDomainError("INVALID_PARENT", "Category cannot be its own parent")
	}
	if parent.ParentID != nil {
		return shared.NewDomainError("INVALID_PARENT", "Parent category must be a root category")
	}

	parentID := parent.ID
	c.ParentID = &parentID
	c.Touch()

	return nil
}

// IsRoot returns true if the category has no parent
func (c *Category) IsRoot() bool {
	return c.ParentID == nil
}

func validateCategoryName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Category name cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_NAME", "Category name cannot exceed 100 characters")
	}
	return nil
}

// ValidateSlug validates a caller-visible category slug
func ValidateSlug(slug string) error {
	slug = strings.ToLower(slug)
	if slug == "" {
		return shared.NewDomainError("INVALID_SLUG", "Slug cannot be empty")
	}
	if len(slug) > 100 {
		return shared.NewDomainError("INVALID_SLUG", "Slug cannot exceed 100 characters")
	}
	if !slugRegex.MatchString(slug) {
		return shared.NewDomainError("INVALID_SLUG", "Slug can only contain lowercase letters, numbers, and hyphens")
	}
	return nil
}
