package woo

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"partnerhub/internal/domain/service"

	"github.com/pkg/errors"
)

const categoriesPath = "products/categories"

// NewCategoryClient exposes the client as the domain's category capability.
func NewCategoryClient(c *Client) service.WooCategoryClient {
	return c
}

// categoryResource is a product category as serialized by the REST API.
type categoryResource struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Parent      int64  `json:"parent"`
	Description string `json:"description"`
	Display     string `json:"display"`
	MenuOrder   int    `json:"menu_order"`
	Count       int    `json:"count"`
}

func toCategory(data categoryResource) service.Category {
	return service.Category{
		ID:          data.ID,
		Name:        data.Name,
		Slug:        data.Slug,
		Parent:      data.Parent,
		Description: data.Description,
		Display:     data.Display,
		MenuOrder:   data.MenuOrder,
		Count:       data.Count,
	}
}

// categoryRequestBody projects the input onto the wire format. Nil pointers
// stay out of the body so the remote keeps its current values.
func categoryRequestBody(input service.CategoryInput) map[string]any {
	body := map[string]any{}
	if input.Name != "" {
		body["name"] = input.Name
	}
	if input.Slug != nil {
		body["slug"] = *input.Slug
	}
	if input.Parent != nil {
		body["parent"] = *input.Parent
	}
	if input.Description != nil {
		body["description"] = *input.Description
	}
	if input.Display != nil {
		body["display"] = *input.Display
	}
	if input.MenuOrder != nil {
		body["menu_order"] = *input.MenuOrder
	}

	return body
}

// mapCategoryError converts a missing-term rejection into the domain sentinel.
func mapCategoryError(err error) error {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode == http.StatusNotFound || strings.Contains(apiErr.Code, "term_invalid") {
			return errors.Wrap(service.ErrCategoryNotFound, apiErr.Message)
		}
	}

	return err
}

// ListCategories lists categories matching the query.
func (c *Client) ListCategories(ctx context.Context, q service.CategoryQuery) ([]service.Category, error) {
	query := url.Values{}
	if q.Search != "" {
		query.Set("search", q.Search)
	}
	if q.Slug != "" {
		query.Set("slug", q.Slug)
	}
	if q.Parent != nil {
		query.Set("parent", strconv.FormatInt(*q.Parent, 10))
	}
	if q.Product != nil {
		query.Set("product", strconv.FormatInt(*q.Product, 10))
	}
	if q.HideEmpty != nil {
		query.Set("hide_empty", strconv.FormatBool(*q.HideEmpty))
	}
	if q.Page > 0 {
		query.Set("page", strconv.Itoa(q.Page))
	}
	if q.PerPage > 0 {
		query.Set("per_page", strconv.Itoa(q.PerPage))
	}
	if q.OrderBy != "" {
		query.Set("orderby", q.OrderBy)
	}
	if q.Order != "" {
		query.Set("order", q.Order)
	}

	var resources []categoryResource
	if err := c.do(ctx, http.MethodGet, categoriesPath, query, nil, &resources); err != nil {
		return nil, err
	}

	categories := make([]service.Category, 0, len(resources))
	for _, res := range resources {
		categories = append(categories, toCategory(res))
	}

	return categories, nil
}

// GetCategory retrieves a single category by id.
func (c *Client) GetCategory(ctx context.Context, id int64) (*service.Category, error) {
	var resource categoryResource
	path := categoriesPath + "/" + strconv.FormatInt(id, 10)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &resource); err != nil {
		return nil, mapCategoryError(err)
	}

	category := toCategory(resource)

	return &category, nil
}

// CreateCategory creates a category and returns the created resource.
func (c *Client) CreateCategory(ctx context.Context, input service.CategoryInput) (*service.Category, error) {
	var resource categoryResource
	if err := c.do(ctx, http.MethodPost, categoriesPath, nil, categoryRequestBody(input), &resource); err != nil {
		return nil, err
	}

	category := toCategory(resource)

	return &category, nil
}

// UpdateCategory applies the non-nil input fields to the category.
func (c *Client) UpdateCategory(ctx context.Context, id int64, input service.CategoryInput) (*service.Category, error) {
	var resource categoryResource
	path := categoriesPath + "/" + strconv.FormatInt(id, 10)
	if err := c.do(ctx, http.MethodPut, path, nil, categoryRequestBody(input), &resource); err != nil {
		return nil, mapCategoryError(err)
	}

	category := toCategory(resource)

	return &category, nil
}

// DeleteCategory removes the category and returns the deleted resource.
// The remote only supports forced deletes for terms, so force is always sent.
func (c *Client) DeleteCategory(ctx context.Context, id int64, force bool) (*service.Category, error) {
	query := url.Values{}
	query.Set("force", strconv.FormatBool(force))

	var resource categoryResource
	path := categoriesPath + "/" + strconv.FormatInt(id, 10)
	if err := c.do(ctx, http.MethodDelete, path, query, nil, &resource); err != nil {
		return nil, mapCategoryError(err)
	}

	category := toCategory(resource)

	return &category, nil
}
