package impl

import (
	"context"
	"log/slog"
	"testing"

	"partnerhub/internal/domain/service"
	mockSvc "partnerhub/internal/mocks/service"
	"partnerhub/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// categoryServiceFixtures holds all test dependencies for category service tests.
type categoryServiceFixtures struct {
	service    usecase.CategoryUsecase
	categories *mockSvc.MockWooCategoryClient
}

func createTestCategoryService(t *testing.T) categoryServiceFixtures {
	categories := mockSvc.NewMockWooCategoryClient(t)
	service := NewCategoryService(categories, slog.Default())

	return categoryServiceFixtures{
		service:    service,
		categories: categories,
	}
}

func TestCategoryService_ListCategories_AppliesDefaults(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	fx.categories.EXPECT().
		ListCategories(ctx, mock.AnythingOfType("service.CategoryQuery")).
		Run(func(ctx context.Context, query service.CategoryQuery) {
			assert.Equal(t, 1, query.Page)
			assert.Equal(t, 20, query.PerPage)
		}).
		Return([]service.Category{{ID: 1, Name: "Produce"}}, nil)

	cats, err := fx.service.ListCategories(ctx, &usecase.ListCategoriesInput{})
	require.NoError(t, err)
	assert.Len(t, cats, 1)
}

func TestCategoryService_ListCategories_RemoteFailure(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	fx.categories.EXPECT().
		ListCategories(ctx, mock.AnythingOfType("service.CategoryQuery")).
		Return(nil, errors.New("upstream down"))

	cats, err := fx.service.ListCategories(ctx, &usecase.ListCategoriesInput{})
	require.Error(t, err)
	assert.Nil(t, cats)
	assertAppErrorCode(t, err, "CATEGORY_REMOTE_ERROR")
}

func TestCategoryService_CategoryTree_NestsAndSorts(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	flat := []service.Category{
		{ID: 1, Name: "Produce", Parent: 0, MenuOrder: 2},
		{ID: 2, Name: "Bakery", Parent: 0, MenuOrder: 1},
		{ID: 3, Name: "Fruit", Parent: 1, MenuOrder: 1},
		{ID: 4, Name: "Apples", Parent: 3, MenuOrder: 0},
		{ID: 5, Name: "Vegetables", Parent: 1, MenuOrder: 0},
		// Parent 99 is not in the listing; the node stays visible as a root.
		{ID: 6, Name: "Orphan", Parent: 99, MenuOrder: 3},
	}

	fx.categories.EXPECT().
		ListCategories(ctx, mock.AnythingOfType("service.CategoryQuery")).
		Run(func(ctx context.Context, query service.CategoryQuery) {
			assert.Nil(t, query.Parent)
			assert.Equal(t, 100, query.PerPage)
		}).
		Return(flat, nil)

	tree, err := fx.service.CategoryTree(ctx, &usecase.ListCategoriesInput{})
	require.NoError(t, err)
	require.Len(t, tree, 3)

	assert.Equal(t, "Bakery", tree[0].Name)
	assert.Equal(t, "Produce", tree[1].Name)
	assert.Equal(t, "Orphan", tree[2].Name)

	produce := tree[1]
	require.Len(t, produce.Children, 2)
	assert.Equal(t, "Vegetables", produce.Children[0].Name)
	assert.Equal(t, "Fruit", produce.Children[1].Name)
	require.Len(t, produce.Children[1].Children, 1)
	assert.Equal(t, "Apples", produce.Children[1].Children[0].Name)
}

func TestCategoryService_CategoryTree_PagesThroughListing(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	fullPage := make([]service.Category, 100)
	for i := range fullPage {
		fullPage[i] = service.Category{ID: int64(i + 1), Name: "Cat"}
	}

	fx.categories.EXPECT().
		ListCategories(ctx, mock.MatchedBy(func(q service.CategoryQuery) bool { return q.Page == 1 })).
		Return(fullPage, nil).
		Once()
	fx.categories.EXPECT().
		ListCategories(ctx, mock.MatchedBy(func(q service.CategoryQuery) bool { return q.Page == 2 })).
		Return([]service.Category{{ID: 101, Name: "Tail"}}, nil).
		Once()

	tree, err := fx.service.CategoryTree(ctx, &usecase.ListCategoriesInput{})
	require.NoError(t, err)
	assert.Len(t, tree, 101)
}

func TestCategoryService_GetCategory_NotFound(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	fx.categories.EXPECT().
		GetCategory(ctx, int64(7)).
		Return(nil, errors.Wrap(service.ErrCategoryNotFound, "status 404"))

	cat, err := fx.service.GetCategory(ctx, 7)
	require.Error(t, err)
	assert.Nil(t, cat)
	assertAppErrorCode(t, err, "CATEGORY_NOT_FOUND")
}

func TestCategoryService_CreateCategory_TrimsAndValidatesName(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	fx.categories.EXPECT().
		CreateCategory(ctx, mock.MatchedBy(func(input service.CategoryInput) bool {
			return input.Name == "Produce"
		})).
		Return(&service.Category{ID: 1, Name: "Produce"}, nil)

	cat, err := fx.service.CreateCategory(ctx, &usecase.CreateCategoryInput{Name: "  Produce  "})
	require.NoError(t, err)
	assert.Equal(t, int64(1), cat.ID)

	_, err = fx.service.CreateCategory(ctx, &usecase.CreateCategoryInput{Name: "   "})
	require.Error(t, err)
	assertAppErrorCode(t, err, "VALIDATION_ERROR")
}

func TestCategoryService_UpdateCategory_BlankNameRejected(t *testing.T) {
	fx := createTestCategoryService(t)

	blank := "  "
	_, err := fx.service.UpdateCategory(context.Background(), 7, &usecase.UpdateCategoryInput{Name: &blank})
	require.Error(t, err)
	assertAppErrorCode(t, err, "VALIDATION_ERROR")
}

func TestCategoryService_DeleteCategory_PassesForce(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	fx.categories.EXPECT().
		DeleteCategory(ctx, int64(7), true).
		Return(&service.Category{ID: 7, Name: "Produce"}, nil)

	cat, err := fx.service.DeleteCategory(ctx, 7, true)
	require.NoError(t, err)
	assert.Equal(t, int64(7), cat.ID)
}
