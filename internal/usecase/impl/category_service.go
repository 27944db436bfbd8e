package impl

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	domainerrors "partnerhub/internal/domain/errors"
	"partnerhub/internal/domain/service"
	"partnerhub/internal/usecase"

	"github.com/pkg/errors"
)

// defaultCategoryPageSize matches the remote API default when the caller
// does not page explicitly.
const defaultCategoryPageSize = 20

// treePageSize is used when assembling the full tree: the flat listing must
// cover every node or parents would dangle.
const treePageSize = 100

type categoryService struct {
	categories service.WooCategoryClient
	logger     *slog.Logger
}

// NewCategoryService creates the product-category service. Categories live
// in the remote system only; this service is a thin passthrough plus the
// hierarchical tree assembly.
func NewCategoryService(categories service.WooCategoryClient, logger *slog.Logger) usecase.CategoryUsecase {
	return &categoryService{
		categories: categories,
		logger:     logger,
	}
}

func (s *categoryService) ListCategories(ctx context.Context, input *usecase.ListCategoriesInput) ([]service.Category, error) {
	cats, err := s.categories.ListCategories(ctx, queryFromListInput(input))
	if err != nil {
		return nil, domainerrors.ErrCategoryRemoteFailed.WithDetails(err.Error())
	}

	return cats, nil
}

// CategoryTree folds the flat parent-keyed listing into a nested tree.
// Children are ordered by menu_order, then name. A node whose parent is
// missing from the listing is kept as a root rather than dropped.
func (s *categoryService) CategoryTree(ctx context.Context, input *usecase.ListCategoriesInput) ([]*usecase.CategoryNode, error) {
	query := queryFromListInput(input)
	query.Parent = nil
	if query.PerPage < treePageSize {
		query.PerPage = treePageSize
	}

	var flat []service.Category
	for page := 1; ; page++ {
		query.Page = page
		cats, err := s.categories.ListCategories(ctx, query)
		if err != nil {
			return nil, domainerrors.ErrCategoryRemoteFailed.WithDetails(err.Error())
		}
		flat = append(flat, cats...)
		if len(cats) < query.PerPage {
			break
		}
	}

	return buildCategoryTree(flat), nil
}

func (s *categoryService) GetCategory(ctx context.Context, id int64) (*service.Category, error) {
	cat, err := s.categories.GetCategory(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, domainerrors.ErrCategoryRemoteFailed.WithDetails(err.Error())
	}

	return cat, nil
}

func (s *categoryService) CreateCategory(ctx context.Context, input *usecase.CreateCategoryInput) (*service.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required and must be a non-empty string")
	}

	cat, err := s.categories.CreateCategory(ctx, service.CategoryInput{
		Name:        name,
		Slug:        input.Slug,
		Parent:      input.Parent,
		Description: input.Description,
		Display:     input.Display,
		MenuOrder:   input.MenuOrder,
	})
	if err != nil {
		return nil, domainerrors.ErrCategoryRemoteFailed.WithDetails(err.Error())
	}

	return cat, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, id int64, input *usecase.UpdateCategoryInput) (*service.Category, error) {
	remote := service.CategoryInput{
		Slug:        input.Slug,
		Parent:      input.Parent,
		Description: input.Description,
		Display:     input.Display,
		MenuOrder:   input.MenuOrder,
	}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerrors.ErrValidationFailed.WithDetails("name must be a non-empty string")
		}
		remote.Name = name
	}

	cat, err := s.categories.UpdateCategory(ctx, id, remote)
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, domainerrors.ErrCategoryRemoteFailed.WithDetails(err.Error())
	}

	return cat, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, id int64, force bool) (*service.Category, error) {
	cat, err := s.categories.DeleteCategory(ctx, id, force)
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, domainerrors.ErrCategoryRemoteFailed.WithDetails(err.Error())
	}

	return cat, nil
}

func queryFromListInput(input *usecase.ListCategoriesInput) service.CategoryQuery {
	query := service.CategoryQuery{
		Search:    strings.TrimSpace(input.Search),
		Slug:      strings.TrimSpace(input.Slug),
		Parent:    input.Parent,
		Product:   input.Product,
		HideEmpty: input.HideEmpty,
		Page:      input.Page,
		PerPage:   input.PerPage,
		OrderBy:   input.OrderBy,
		Order:     input.Order,
	}
	if query.Page < 1 {
		query.Page = 1
	}
	if query.PerPage < 1 {
		query.PerPage = defaultCategoryPageSize
	}

	return query
}

func buildCategoryTree(flat []service.Category) []*usecase.CategoryNode {
	nodes := make(map[int64]*usecase.CategoryNode, len(flat))
	for i := range flat {
		nodes[flat[i].ID] = &usecase.CategoryNode{Category: flat[i]}
	}

	var roots []*usecase.CategoryNode
	for _, node := range nodes {
		parent, ok := nodes[node.Parent]
		if node.Parent == 0 || !ok || parent == node {
			roots = append(roots, node)

			continue
		}
		parent.Children = append(parent.Children, node)
	}

	var sortNodes func(list []*usecase.CategoryNode)
	sortNodes = func(list []*usecase.CategoryNode) {
		sort.Slice(list, func(i, j int) bool {
			if list[i].MenuOrder != list[j].MenuOrder {
				return list[i].MenuOrder < list[j].MenuOrder
			}

			return list[i].Name < list[j].Name
		})
		for _, node := range list {
			sortNodes(node.Children)
		}
	}
	sortNodes(roots)

	return roots
}
