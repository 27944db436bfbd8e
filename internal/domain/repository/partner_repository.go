// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"partnerhub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPartnerNotFound is a domain-specific error returned when no active partner matches.
var ErrPartnerNotFound = errors.New("partner not found")

// PartnerPatch describes a partial update. A nil field is left untouched;
// a non-nil pointer to the zero value clears the column. For
// AdministratorContactID, uuid.Nil clears the reference.
type PartnerPatch struct {
	CompanyName            *string
	TaxID                  *string
	RegistrationNumber     *string
	Address                *string
	BankAccount            *string
	BankName               *string
	AdministratorContactID *uuid.UUID
	BusinessEmail          *string
	OrdersEmail            *string
	PhoneNumber            *string
	IsActive               *bool
}

// Empty reports whether the patch touches no fields.
func (p PartnerPatch) Empty() bool {
	return p.CompanyName == nil && p.TaxID == nil && p.RegistrationNumber == nil &&
		p.Address == nil && p.BankAccount == nil && p.BankName == nil &&
		p.AdministratorContactID == nil && p.BusinessEmail == nil &&
		p.OrdersEmail == nil && p.PhoneNumber == nil && p.IsActive == nil
}

// PartnerRepository defines the standard operations for partner persistence.
// All reads and updates are scoped to non-deleted rows.
type PartnerRepository interface {
	// FindByID retrieves a single active partner by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Partner, error)

	// List retrieves all active partners, newest first.
	List(ctx context.Context) ([]*entity.Partner, error)

	// Create persists a new partner and fills in the generated ID and timestamps.
	Create(ctx context.Context, partner *entity.Partner) error

	// Update applies the patch to an active partner and returns the updated row.
	Update(ctx context.Context, id uuid.UUID, patch PartnerPatch) (*entity.Partner, error)

	// SoftDelete marks an active partner as deleted.
	// Returns ErrPartnerNotFound when no active row matches.
	SoftDelete(ctx context.Context, id uuid.UUID) error
}
