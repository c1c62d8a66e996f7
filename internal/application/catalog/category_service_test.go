package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
)

// MockCategoryRepository is a mock implementation of CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id int64) (*catalog.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindBySlug(ctx context.Context, slug string) (*catalog.Category, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindAll(ctx context.Context) ([]catalog.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]catalog.Category), args.Error(1)
}

func (m *MockCategoryRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)
	return args.Bool(0), args.Error(1)
}

func (m *MockCategoryRepository) HasChildren(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCategoryRepository) Save(ctx context.Context, category *catalog.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func testCategory(t *testing.T, name, slug string, id int64) *catalog.Category {
	t.Helper()
	category, err := catalog.NewCategory(name, slug)
	require.NoError(t, err)
	category.ID = id
	return category
}

func TestCategoryService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates root category", func(t *testing.T) {
		repo := new(MockCategoryRepository)
		service := NewCategoryService(repo)

		repo.On("ExistsBySlug", ctx, "electronics").Return(false, nil)
		repo.On("Save", ctx, mock.AnythingOfType("*catalog.Category")).Return(nil)

		resp, err := service.Create(ctx, CreateCategoryRequest{Name: "Electronics", Slug: "electronics"})
		require.NoError(t, err)
		assert.Equal(t, "electronics", resp.Slug)
		assert.Nil(t, resp.ParentID)
	})

	t.Run("rejects duplicate slug", func(t *testing.T) {
		repo := new(MockCategoryRepository)
		service := NewCategoryService(repo)

		repo.On("ExistsBySlug", ctx, "electronics").Return(true, nil)

		_, err := service.Create(ctx, CreateCategoryRequest{Name: "Electronics", Slug: "electronics"})
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
		repo.AssertNotCalled(t, "Save")
	})

	t.Run("creates child under root", func(t *testing.T) {
		repo := new(MockCategoryRepository)
		service := NewCategoryService(repo)

		parent := testCategory(t, "Electronics", "electronics", 1)
		parentID := int64(1)

		repo.On("ExistsBySlug", ctx, "laptops").Return(false, nil)
		repo.On("FindByID", ctx, parentID).Return(parent, nil)
		repo.On("Save", ctx, mock.AnythingOfType("*catalog.Category")).Return(nil)

		resp, err := service.Create(ctx, CreateCategoryRequest{Name: "Laptops", Slug: "laptops", ParentID: &parentID})
		require.NoError(t, err)
		require.NotNil(t, resp.ParentID)
		assert.Equal(t, int64(1), *resp.ParentID)
	})

	t.Run("rejects nesting under a child", func(t *testing.T) {
		repo := new(MockCategoryRepository)
		service := NewCategoryService(repo)

		parent := testCategory(t, "Electronics", "electronics", 1)
		child, err := catalog.NewChildCategory("Laptops", "laptops", parent)
		require.NoError(t, err)
		child.ID = 2
		childID := int64(2)

		repo.On("ExistsBySlug", ctx, "gaming").Return(false, nil)
		repo.On("FindByID", ctx, childID).Return(child, nil)

		_, err = service.Create(ctx, CreateCategoryRequest{Name: "Gaming", Slug: "gaming", ParentID: &childID})
		require.Error(t, err)
		repo.AssertNotCalled(t, "Save")
	})

	t.Run("maps missing parent to INVALID_PARENT", func(t *testing.T) {
		repo := new(MockCategoryRepository)
		service := NewCategoryService(repo)

		parentID := int64(99)
		repo.On("ExistsBySlug", ctx, "laptops").Return(false, nil)
		repo.On("FindByID", ctx, parentID).Return(nil, shared.ErrNotFound)

		_, err := service.Create(ctx, CreateCategoryRequest{Name: "Laptops", Slug: "laptops", ParentID: &parentID})
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_PARENT", domainErr.Code)
	})
}

func TestCategoryService_List(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCategoryRepository)
	service := NewCategoryService(repo)

	root := testCategory(t, "Electronics", "electronics", 1)
	child, err := catalog.NewChildCategory("Laptops", "laptops", root)
	require.NoError(t, err)
	child.ID = 2

	repo.On("FindAll", ctx).Return([]catalog.Category{*root, *child}, nil)

	tree, err := service.List(ctx)
	require.NoError(t, err)
	require.Len(t, tree, 1)
	assert.Equal(t, "electronics", tree[0].Slug)
	require.Len(t, tree[0].Children, 1)
	assert.Equal(t, "laptops", tree[0].Children[0].Slug)
}

func TestCategoryService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects moving a parent under another category", func(t *testing.T) {
		repo := new(MockCategoryRepository)
		service := NewCategoryService(repo)

		category := testCategory(t, "Electronics", "electronics", 1)
		other := testCategory(t, "Office", "office", 2)
		otherID := int64(2)

		repo.On("FindByID", ctx, int64(1)).Return(category, nil)
		repo.On("FindByID", ctx, otherID).Return(other, nil)
		repo.On("HasChildren", ctx, int64(1)).Return(true, nil)

		_, err := service.Update(ctx, 1, UpdateCategoryRequest{ParentID: &otherID})
		require.Error(t, err)
		repo.AssertNotCalled(t, "Save")
	})

	t.Run("renames without touching slug", func(t *testing.T) {
		repo := new(MockCategoryRepository)
		service := NewCategoryService(repo)

		category := testCategory(t, "Electronics", "electronics", 1)
		repo.On("FindByID", ctx, int64(1)).Return(category, nil)
		repo.On("Save", ctx, category).Return(nil)

		name := "Gadgets"
		resp, err := service.Update(ctx, 1, UpdateCategoryRequest{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "Gadgets", resp.Name)
		assert.Equal(t, "electronics", resp.Slug)
	})
}

func TestCategoryService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes leaf category", func(t *testing.T) {
		repo := new(MockCategoryRepository)
		service := NewCategoryService(repo)

		repo.On("HasChildren", ctx, int64(1)).Return(false, nil)
		repo.On("Delete", ctx, int64(1)).Return(nil)

		require.NoError(t, service.Delete(ctx, 1))
	})

	t.Run("refuses to delete category with children", func(t *testing.T) {
		repo := new(MockCategoryRepository)
		service := NewCategoryService(repo)

		repo.On("HasChildren", ctx, int64(1)).Return(true, nil)

		err := service.Delete(ctx, 1)
		require.Error(t, err)
		repo.AssertNotCalled(t, "Delete")
	})
}
