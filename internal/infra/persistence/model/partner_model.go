package model

import (
	"time"

	"github.com/google/uuid"
)

// PartnerModel mirrors the 'partners' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type PartnerModel struct {
	ID                     uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CompanyName            string     `gorm:"type:varchar(255);not null"`
	TaxID                  string     `gorm:"column:tax_id;type:varchar(64);not null"`
	RegistrationNumber     *string    `gorm:"type:varchar(64)"`
	Address                *string    `gorm:"type:text"`
	BankAccount            *string    `gorm:"type:varchar(64)"`
	BankName               *string    `gorm:"type:varchar(255)"`
	AdministratorContactID *uuid.UUID `gorm:"type:uuid;index"`
	BusinessEmail          *string    `gorm:"type:varchar(255)"`
	OrdersEmail            *string    `gorm:"type:varchar(255)"`
	PhoneNumber            *string    `gorm:"type:varchar(32)"`
	IsActive               bool       `gorm:"not null;default:true"`
	CreatedAt              time.Time
	UpdatedAt              time.Time
	DeletedAt              *time.Time `gorm:"index"`

	AdministratorContact *ContactModel `gorm:"foreignKey:AdministratorContactID"`
}

// TableName explicitly sets the table name for GORM.
func (PartnerModel) TableName() string {
	return "partners"
}
