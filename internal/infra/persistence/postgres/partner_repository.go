// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"partnerhub/internal/domain/entity"
	domainerrors "partnerhub/internal/domain/errors"
	"partnerhub/internal/domain/repository"
	"partnerhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// partnerRepository implements the repository.PartnerRepository interface using GORM.
type partnerRepository struct {
	db *gorm.DB
}

// NewPartnerRepository is the constructor for partnerRepository.
func NewPartnerRepository(db *gorm.DB) repository.PartnerRepository {
	return &partnerRepository{
		db: db,
	}
}

// FindByID retrieves a single active partner by its unique ID.
func (repo *partnerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Partner, error) {
	var partnerM model.PartnerModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Where("deleted_at IS NULL").
		First(&partnerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPartnerNotFound
		}

		return nil, errors.Wrap(err, "failed to find partner by id")
	}

	return toPartnerDomain(&partnerM), nil
}

// List retrieves all active partners, newest first.
func (repo *partnerRepository) List(ctx context.Context) ([]*entity.Partner, error) {
	var partnerModels []*model.PartnerModel

	if err := repo.db.WithContext(ctx).
		Where("deleted_at IS NULL").
		Order("created_at DESC").
		Find(&partnerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list partners")
	}

	partners := make([]*entity.Partner, 0, len(partnerModels))
	for _, partnerM := range partnerModels {
		partners = append(partners, toPartnerDomain(partnerM))
	}

	return partners, nil
}

// Create persists a new partner and reports generated values back on the entity.
func (repo *partnerRepository) Create(ctx context.Context, partner *entity.Partner) error {
	partnerM := fromPartnerDomain(partner)

	if err := repo.db.WithContext(ctx).Create(partnerM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrPartnerCreateFailed.WrapMessage("invalid administrator contact reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrPartnerCreateFailed.WrapMessage("missing required partner information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create partner")
	}

	partner.ID = partnerM.ID
	partner.CreatedAt = partnerM.CreatedAt
	partner.UpdatedAt = partnerM.UpdatedAt

	return nil
}

// Update applies the patch to an active partner and returns the updated row.
// Only patched columns are written; a nil patch field leaves the column alone.
func (repo *partnerRepository) Update(ctx context.Context, id uuid.UUID, patch repository.PartnerPatch) (*entity.Partner, error) {
	updates := updatesFromPatch(patch)
	updates["updated_at"] = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.PartnerModel{}).
		Where("id = ?", id).
		Where("deleted_at IS NULL").
		Updates(updates)

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return nil, domainerrors.ErrPartnerUpdateFailed.WrapMessage("invalid administrator contact reference")
		}
		if isNotNullConstraintViolation(result.Error) {
			return nil, domainerrors.ErrPartnerUpdateFailed.WrapMessage("missing required partner information")
		}

		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update partner")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrPartnerNotFound
	}

	return repo.FindByID(ctx, id)
}

// SoftDelete marks an active partner as deleted.
func (repo *partnerRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	now := time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.PartnerModel{}).
		Where("id = ?", id).
		Where("deleted_at IS NULL").
		Updates(map[string]any{"deleted_at": now, "updated_at": now})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to soft delete partner")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPartnerNotFound
	}

	return nil
}

// updatesFromPatch maps the patch onto a column update set. A pointer to the
// zero value clears the column (NULL for optional columns).
func updatesFromPatch(patch repository.PartnerPatch) map[string]any {
	updates := make(map[string]any)

	if patch.CompanyName != nil {
		updates["company_name"] = *patch.CompanyName
	}
	if patch.TaxID != nil {
		updates["tax_id"] = *patch.TaxID
	}
	if patch.RegistrationNumber != nil {
		updates["registration_number"] = nullableString(*patch.RegistrationNumber)
	}
	if patch.Address != nil {
		updates["address"] = nullableString(*patch.Address)
	}
	if patch.BankAccount != nil {
		updates["bank_account"] = nullableString(*patch.BankAccount)
	}
	if patch.BankName != nil {
		updates["bank_name"] = nullableString(*patch.BankName)
	}
	if patch.AdministratorContactID != nil {
		if *patch.AdministratorContactID == uuid.Nil {
			updates["administrator_contact_id"] = nil
		} else {
			updates["administrator_contact_id"] = *patch.AdministratorContactID
		}
	}
	if patch.BusinessEmail != nil {
		updates["business_email"] = nullableString(*patch.BusinessEmail)
	}
	if patch.OrdersEmail != nil {
		updates["orders_email"] = nullableString(*patch.OrdersEmail)
	}
	if patch.PhoneNumber != nil {
		updates["phone_number"] = nullableString(*patch.PhoneNumber)
	}
	if patch.IsActive != nil {
		updates["is_active"] = *patch.IsActive
	}

	return updates
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

func toPartnerDomain(data *model.PartnerModel) *entity.Partner {
	if data == nil {
		return nil
	}

	return &entity.Partner{
		ID:                     data.ID,
		CompanyName:            data.CompanyName,
		TaxID:                  data.TaxID,
		RegistrationNumber:     stringOrEmpty(data.RegistrationNumber),
		Address:                stringOrEmpty(data.Address),
		BankAccount:            stringOrEmpty(data.BankAccount),
		BankName:               stringOrEmpty(data.BankName),
		AdministratorContactID: data.AdministratorContactID,
		BusinessEmail:          stringOrEmpty(data.BusinessEmail),
		OrdersEmail:            stringOrEmpty(data.OrdersEmail),
		PhoneNumber:            stringOrEmpty(data.PhoneNumber),
		IsActive:               data.IsActive,
		CreatedAt:              data.CreatedAt,
		UpdatedAt:              data.UpdatedAt,
	}
}

func fromPartnerDomain(data *entity.Partner) *model.PartnerModel {
	if data == nil {
		return nil
	}

	return &model.PartnerModel{
		ID:                     data.ID,
		CompanyName:            data.CompanyName,
		TaxID:                  data.TaxID,
		RegistrationNumber:     nullableString(data.RegistrationNumber),
		Address:                nullableString(data.Address),
		BankAccount:            nullableString(data.BankAccount),
		BankName:               nullableString(data.BankName),
		AdministratorContactID: data.AdministratorContactID,
		BusinessEmail:          nullableString(data.BusinessEmail),
		OrdersEmail:            nullableString(data.OrdersEmail),
		PhoneNumber:            nullableString(data.PhoneNumber),
		IsActive:               data.IsActive,
	}
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
