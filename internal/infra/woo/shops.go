package woo

import (
	"context"
	"net/http"
	"net/url"
	"regexp"
	"strconv"

	"partnerhub/internal/domain/service"

	"github.com/pkg/errors"
)

const shopsPath = "shops"

// duplicateNamePattern matches the message the remote returns when a shop
// create is rejected because the name is already taken.
var duplicateNamePattern = regexp.MustCompile(`(?i)already exists`)

// NewShopClient exposes the client as the domain's shop capability.
func NewShopClient(c *Client) service.WooShopClient {
	return c
}

// shopResource is a shop as serialized by the REST API.
type shopResource struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

func toRemoteShop(data shopResource) service.RemoteShop {
	return service.RemoteShop{
		ID:      data.ID,
		Name:    data.Name,
		Phone:   data.Phone,
		Email:   data.Email,
		Address: data.Address,
	}
}

// shopRequestBody projects the payload onto the wire format. Empty fields are
// left out of the body entirely.
func shopRequestBody(payload service.ShopPayload) map[string]any {
	body := map[string]any{
		"name": payload.Name,
	}
	if payload.IdentificationNumber != "" {
		body["identification_number"] = payload.IdentificationNumber
	}
	if payload.Phone != "" {
		body["phone"] = payload.Phone
	}
	if payload.Email != "" {
		body["email"] = payload.Email
	}
	if payload.Address != "" {
		body["address"] = payload.Address
	}

	return body
}

// CreateShop creates a shop and returns its remote id. A duplicate-name
// rejection is reported as service.ErrShopNameExists.
func (c *Client) CreateShop(ctx context.Context, payload service.ShopPayload) (int64, error) {
	var created map[string]any
	if err := c.do(ctx, http.MethodPost, shopsPath, nil, shopRequestBody(payload), &created); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && duplicateNamePattern.MatchString(apiErr.Message) {
			return 0, errors.Wrap(service.ErrShopNameExists, apiErr.Message)
		}

		return 0, err
	}

	id, ok := remoteID(created)
	if !ok {
		return 0, errors.New("shop created but response carried no id")
	}

	return id, nil
}

// UpdateShop overwrites the shop's contact fields and returns the updated
// resource.
func (c *Client) UpdateShop(ctx context.Context, shopID int64, payload service.ShopPayload) (*service.RemoteShop, error) {
	var updated shopResource
	path := shopsPath + "/" + strconv.FormatInt(shopID, 10)
	if err := c.do(ctx, http.MethodPut, path, nil, shopRequestBody(payload), &updated); err != nil {
		return nil, err
	}

	shop := toRemoteShop(updated)

	return &shop, nil
}

// DeleteShop removes the shop; force skips the remote trash bin.
func (c *Client) DeleteShop(ctx context.Context, shopID int64, force bool) error {
	query := url.Values{}
	if force {
		query.Set("force", "true")
	}

	path := shopsPath + "/" + strconv.FormatInt(shopID, 10)

	return c.do(ctx, http.MethodDelete, path, query, nil, nil)
}

// SearchShops lists shops whose name matches the query.
func (c *Client) SearchShops(ctx context.Context, search string, perPage int) ([]service.RemoteShop, error) {
	query := url.Values{}
	query.Set("search", search)
	if perPage > 0 {
		query.Set("per_page", strconv.Itoa(perPage))
	}

	var resources []shopResource
	if err := c.do(ctx, http.MethodGet, shopsPath, query, nil, &resources); err != nil {
		return nil, err
	}

	shops := make([]service.RemoteShop, 0, len(resources))
	for _, res := range resources {
		shops = append(shops, toRemoteShop(res))
	}

	return shops, nil
}
