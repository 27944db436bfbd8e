package model

import (
	"time"

	"github.com/google/uuid"
)

// ShopLinkModel mirrors the 'shops' table, the partner↔Woo-shop link table.
// The at-most-one-active-link-per-partner invariant is not DB-enforced.
type ShopLinkModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	PartnerID uuid.UUID `gorm:"type:uuid;not null;index"`
	WooShopID int64     `gorm:"column:woo_shop_id;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ShopLinkModel) TableName() string {
	return "shops"
}
