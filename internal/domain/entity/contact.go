package entity

import (
	"time"

	"github.com/google/uuid"
)

// Contact is a person record that partners reference as their administrator.
type Contact struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
	PhoneNo   string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DisplayName returns the contact's full name, or "" when either part is missing.
func (c *Contact) DisplayName() string {
	if c == nil || c.FirstName == "" || c.LastName == "" {
		return ""
	}

	return c.FirstName + " " + c.LastName
}
