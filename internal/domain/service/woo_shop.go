package service

import (
	"context"
	"errors"
)

// ErrShopNameExists is returned by WooShopClient.CreateShop when the remote
// system rejects the create because a non-deleted shop with the same name
// (case-insensitive) already exists. Callers branch on this error to recover
// the existing shop instead of failing.
var ErrShopNameExists = errors.New("a shop with this name already exists in the remote system")

// ShopPayload is the deterministic projection of a partner onto the remote
// shop schema. Empty fields are omitted from the request body.
type ShopPayload struct {
	Name                 string // Partner company name; the remote uniqueness key.
	IdentificationNumber string // Registration number, falling back to tax id.
	Phone                string
	Email                string // Business email, falling back to orders email.
	Address              string
}

// RemoteShop is a shop resource as reported by the remote system.
type RemoteShop struct {
	ID      int64
	Name    string
	Phone   string
	Email   string
	Address string
}

// WooShopClient defines the capability interface to the remote WooCommerce
// shop collection. Implementations perform one synchronous HTTP call per
// method; a cancelled context is indistinguishable from any other remote
// failure to the caller.
type WooShopClient interface {
	// CreateShop creates a shop and returns its remote numeric id.
	// Returns ErrShopNameExists (wrapped) on a duplicate-name rejection.
	CreateShop(ctx context.Context, payload ShopPayload) (int64, error)

	// UpdateShop overwrites the shop's contact fields.
	UpdateShop(ctx context.Context, shopID int64, payload ShopPayload) (*RemoteShop, error)

	// DeleteShop removes the shop. With force the remote skips its trash bin.
	DeleteShop(ctx context.Context, shopID int64, force bool) error

	// SearchShops lists shops whose name matches the query, up to perPage rows.
	SearchShops(ctx context.Context, query string, perPage int) ([]RemoteShop, error)
}
