package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"partnerhub/internal/delivery/http/response"
	domainerrors "partnerhub/internal/domain/errors"
	"partnerhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CategoryHandler holds dependencies for product-category handlers.
type CategoryHandler struct {
	uc     usecase.CategoryUsecase
	logger *slog.Logger
}

// NewCategoryHandler is the constructor for CategoryHandler, injected by Fx.
func NewCategoryHandler(uc usecase.CategoryUsecase, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{
		uc:     uc,
		logger: logger,
	}
}

// List handles the flat category listing request.
func (h *CategoryHandler) List(c echo.Context) error {
	var input *usecase.ListCategoriesInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category query")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(err.Error()))
	}

	categories, err := h.uc.ListCategories(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, categories, "Categories retrieved successfully")
}

// Tree handles the hierarchical category listing request.
func (h *CategoryHandler) Tree(c echo.Context) error {
	var input *usecase.ListCategoriesInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category query")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(err.Error()))
	}

	tree, err := h.uc.CategoryTree(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tree, "Category tree retrieved successfully")
}

// Get handles the single category lookup request.
func (h *CategoryHandler) Get(c echo.Context) error {
	id, err := categoryID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid category id")
	}

	category, err := h.uc.GetCategory(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, category, "Category retrieved successfully")
}

// Create handles the category creation request.
func (h *CategoryHandler) Create(c echo.Context) error {
	var input *usecase.CreateCategoryInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(err.Error()))
	}

	category, err := h.uc.CreateCategory(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, category, "Category created successfully")
}

// Update handles the partial category update request.
func (h *CategoryHandler) Update(c echo.Context) error {
	id, err := categoryID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid category id")
	}

	var input *usecase.UpdateCategoryInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(err.Error()))
	}

	category, err := h.uc.UpdateCategory(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, category, "Category updated successfully")
}

// Delete handles the category delete request.
func (h *CategoryHandler) Delete(c echo.Context) error {
	id, err := categoryID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid category id")
	}

	force := c.QueryParam("force") == "true"

	category, err := h.uc.DeleteCategory(c.Request().Context(), id, force)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, category, "Category deleted successfully")
}

func categoryID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
