package service

import (
	"context"
	"errors"
)

// ErrCategoryNotFound is returned when the remote system reports that no
// category exists for the requested id.
var ErrCategoryNotFound = errors.New("category not found in the remote system")

// Category is a product category as owned by the remote WooCommerce system.
// Categories form a tree through the Parent field; Parent 0 marks a root.
type Category struct {
	ID          int64
	Name        string
	Slug        string
	Parent      int64
	Description string
	Display     string
	MenuOrder   int
	Count       int
}

// CategoryQuery narrows a category listing.
type CategoryQuery struct {
	Search    string
	Slug      string
	Parent    *int64
	Product   *int64
	HideEmpty *bool
	Page      int
	PerPage   int
	OrderBy   string
	Order     string
}

// CategoryInput carries the writable category fields for create and update.
// On update, nil pointers leave the remote value untouched.
type CategoryInput struct {
	Name        string
	Slug        *string
	Parent      *int64
	Description *string
	Display     *string
	MenuOrder   *int
}

// WooCategoryClient defines the capability interface to the remote product
// category collection.
type WooCategoryClient interface {
	ListCategories(ctx context.Context, query CategoryQuery) ([]Category, error)
	GetCategory(ctx context.Context, id int64) (*Category, error)
	CreateCategory(ctx context.Context, input CategoryInput) (*Category, error)
	UpdateCategory(ctx context.Context, id int64, input CategoryInput) (*Category, error)
	DeleteCategory(ctx context.Context, id int64, force bool) (*Category, error)
}
