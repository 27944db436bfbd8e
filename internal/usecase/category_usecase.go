package usecase

import (
	"context"

	"partnerhub/internal/domain/service"
)

// ListCategoriesInput narrows a category listing. Zero values mean "no filter".
type ListCategoriesInput struct {
	Search    string `query:"search"`
	Slug      string `query:"slug"`
	Parent    *int64 `query:"parent"`
	Product   *int64 `query:"product"`
	HideEmpty *bool  `query:"hide_empty"`
	Page      int    `query:"page" validate:"omitempty,min=1"`
	PerPage   int    `query:"limit" validate:"omitempty,min=1,max=100"`
	OrderBy   string `query:"orderby"`
	Order     string `query:"order" validate:"omitempty,oneof=asc desc"`
}

// CreateCategoryInput defines the data required to create a product category.
type CreateCategoryInput struct {
	Name        string  `json:"name" validate:"required"`
	Slug        *string `json:"slug"`
	Parent      *int64  `json:"parent"`
	Description *string `json:"description"`
	Display     *string `json:"display" validate:"omitempty,oneof=default products subcategories both"`
	MenuOrder   *int    `json:"menu_order"`
}

// UpdateCategoryInput defines a partial category update.
type UpdateCategoryInput struct {
	Name        *string `json:"name" validate:"omitempty,notblank"`
	Slug        *string `json:"slug"`
	Parent      *int64  `json:"parent"`
	Description *string `json:"description"`
	Display     *string `json:"display" validate:"omitempty,oneof=default products subcategories both"`
	MenuOrder   *int    `json:"menu_order"`
}

// CategoryNode is a category with its resolved children, for tree responses.
type CategoryNode struct {
	service.Category
	Children []*CategoryNode `json:"children"`
}

// CategoryUsecase exposes the remote product-category collection, including
// the hierarchical tree view assembled from the flat parent-keyed listing.
type CategoryUsecase interface {
	ListCategories(ctx context.Context, input *ListCategoriesInput) ([]service.Category, error)
	CategoryTree(ctx context.Context, input *ListCategoriesInput) ([]*CategoryNode, error)
	GetCategory(ctx context.Context, id int64) (*service.Category, error)
	CreateCategory(ctx context.Context, input *CreateCategoryInput) (*service.Category, error)
	UpdateCategory(ctx context.Context, id int64, input *UpdateCategoryInput) (*service.Category, error)
	DeleteCategory(ctx context.Context, id int64, force bool) (*service.Category, error)
}
