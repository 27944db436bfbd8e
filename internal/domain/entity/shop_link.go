package entity

import (
	"time"

	"github.com/google/uuid"
)

// ShopLink records the 1:1 association between a local partner and the shop
// resource owned by the remote WooCommerce system. The remote side is
// referenced, never owned: the link cannot outlive its partner in
// soft-delete terms, while the remote shop has its own lifecycle.
type ShopLink struct {
	ID        uuid.UUID // The unique identifier of the link row.
	PartnerID uuid.UUID // The local partner this link belongs to.
	WooShopID int64     // The numeric id of the shop in the remote system.
	CreatedAt time.Time // Timestamp of when the association was established.
	UpdatedAt time.Time // Timestamp of the last modification.
}
