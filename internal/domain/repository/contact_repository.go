package repository

import (
	"context"
	"errors"

	"partnerhub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrContactNotFound is a domain-specific error returned when a contact is not found.
var ErrContactNotFound = errors.New("contact not found")

// ContactRepository defines read access to contact records, used to enrich
// partners with their administrator's display name.
type ContactRepository interface {
	// FindByID retrieves a single contact by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Contact, error)
}
