package repository

import (
	"context"
	"errors"

	"partnerhub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrShopLinkNotFound is a domain-specific error returned when a partner has no active shop link.
var ErrShopLinkNotFound = errors.New("shop link not found")

// ShopLinkRepository defines the operations for the partner↔shop link table.
// The "at most one active link per partner" invariant is best effort, not
// DB-enforced, so lookups tolerate extra rows.
type ShopLinkRepository interface {
	// Create persists a new link and fills in the generated ID and timestamps.
	Create(ctx context.Context, link *entity.ShopLink) error

	// FindActiveByPartner returns the partner's active link, first row if the
	// uniqueness invariant is ever violated. Returns ErrShopLinkNotFound when none.
	FindActiveByPartner(ctx context.Context, partnerID uuid.UUID) (*entity.ShopLink, error)

	// ListActiveByPartner returns every active link for the partner.
	ListActiveByPartner(ctx context.Context, partnerID uuid.UUID) ([]*entity.ShopLink, error)

	// SoftDeleteByPartner marks all of the partner's active links as deleted
	// in a single update. Deleting zero rows is not an error.
	SoftDeleteByPartner(ctx context.Context, partnerID uuid.UUID) error
}
