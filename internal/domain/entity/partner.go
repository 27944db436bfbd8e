// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Partner is the locally-owned business entity at the root of the domain.
// Each active partner is expected to have a corresponding shop resource in
// the remote WooCommerce installation, tracked through a ShopLink.
type Partner struct {
	ID                     uuid.UUID  // The unique identifier for the partner, generated on create.
	CompanyName            string     // Legal company name; doubles as the remote shop's display name.
	TaxID                  string     // Tax identification code; always present once created.
	RegistrationNumber     string     // Trade-register number; optional.
	Address                string     // Billing/headquarters address; optional.
	BankAccount            string     // IBAN or account number; optional.
	BankName               string     // Name of the partner's bank; optional.
	AdministratorContactID *uuid.UUID // Optional reference to the administrator contact record.
	AdministratorName      string     // Derived display name of the administrator contact; never persisted.
	BusinessEmail          string     // Primary business email; optional.
	OrdersEmail            string     // Email receiving order notifications; optional.
	PhoneNumber            string     // International phone number; optional.
	IsActive               bool       // Commercial status flag; defaults to true.
	CreatedAt              time.Time  // Timestamp of when this partner was created.
	UpdatedAt              time.Time  // Timestamp of the last modification.
}
