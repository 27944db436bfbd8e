// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"partnerhub/internal/domain/entity"

	"github.com/google/uuid"
)

// Warning codes surfaced alongside an otherwise-successful result. The
// operation's local write has already committed when any of these appear.
const (
	WarningShopLinkCreate     = "SHOP_LINK_CREATE_ERROR"
	WarningShopLinkSoftDelete = "SHOP_LINK_SOFT_DELETE_ERROR"
	WarningWooShopUpdate      = "WOO_SHOP_UPDATE_ERROR"
	WarningWooShopCreate      = "WOO_SHOP_CREATE_ERROR"
	WarningWooShopCreateFind  = "WOO_SHOP_CREATE_OR_FIND_ERROR"
	WarningWooShopDelete      = "WOO_SHOP_DELETE_ERROR"
)

// Warning is a non-fatal failure report attached to a successful result.
// At most one warning is retained per operation; a later warning overwrites
// an earlier one.
type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// --- Input DTOs ---

// CreatePartnerInput defines the data required to create a partner.
type CreatePartnerInput struct {
	CompanyName            string     `json:"company_name" validate:"required"`
	TaxID                  string     `json:"tax_id" validate:"required"`
	RegistrationNumber     string     `json:"registration_number"`
	Address                string     `json:"address"`
	BankAccount            string     `json:"bank_account"`
	BankName               string     `json:"bank_name"`
	AdministratorContactID *uuid.UUID `json:"administrator_contact_id"`
	BusinessEmail          string     `json:"business_email" validate:"omitempty,email"`
	OrdersEmail            string     `json:"orders_email" validate:"omitempty,email"`
	PhoneNumber            string     `json:"phone_number" validate:"omitempty,intl_phone"`
	IsActive               *bool      `json:"is_active"`
}

// UpdatePartnerInput defines a partial update. Absent (nil) fields are left
// untouched; present fields overwrite, with empty strings clearing optional
// columns.
type UpdatePartnerInput struct {
	CompanyName            *string    `json:"company_name" validate:"omitempty,notblank"`
	TaxID                  *string    `json:"tax_id" validate:"omitempty,notblank"`
	RegistrationNumber     *string    `json:"registration_number"`
	Address                *string    `json:"address"`
	BankAccount            *string    `json:"bank_account"`
	BankName               *string    `json:"bank_name"`
	AdministratorContactID *uuid.UUID `json:"administrator_contact_id"`
	BusinessEmail          *string    `json:"business_email" validate:"omitempty,email"`
	OrdersEmail            *string    `json:"orders_email" validate:"omitempty,email"`
	PhoneNumber            *string    `json:"phone_number" validate:"omitempty,intl_phone"`
	IsActive               *bool      `json:"is_active"`
}

// --- Output DTOs ---

// PartnerOutput is the combined result of a create or update: the committed
// local partner, the remote shop id when one is known, and at most one warning.
type PartnerOutput struct {
	Partner   *entity.Partner `json:"partner"`
	WooShopID *int64          `json:"woo_shop_id,omitempty"`
	Warning   *Warning        `json:"_warning,omitempty"`
}

// DeletePartnerOutput confirms a soft delete.
type DeletePartnerOutput struct {
	Deleted bool      `json:"deleted"`
	ID      uuid.UUID `json:"id"`
	Warning *Warning  `json:"_warning,omitempty"`
}

// PartnerUsecase reconciles the local partner record with its remote shop
// counterpart. This is the contract that the delivery layer depends on.
type PartnerUsecase interface {
	CreatePartner(ctx context.Context, input *CreatePartnerInput) (*PartnerOutput, error)
	UpdatePartner(ctx context.Context, id uuid.UUID, input *UpdatePartnerInput) (*PartnerOutput, error)
	DeletePartner(ctx context.Context, id uuid.UUID) (*DeletePartnerOutput, error)
	GetPartner(ctx context.Context, id uuid.UUID) (*entity.Partner, error)
	ListPartners(ctx context.Context) ([]*entity.Partner, error)
}
