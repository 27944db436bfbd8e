package postgres

import (
	"context"

	"partnerhub/internal/domain/entity"
	"partnerhub/internal/domain/repository"
	"partnerhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// contactRepository implements the repository.ContactRepository interface using GORM.
type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository is the constructor for contactRepository.
func NewContactRepository(db *gorm.DB) repository.ContactRepository {
	return &contactRepository{
		db: db,
	}
}

// FindByID retrieves a single active contact by its unique ID.
func (repo *contactRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Contact, error) {
	var contactM model.ContactModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Where("deleted_at IS NULL").
		First(&contactM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrContactNotFound
		}

		return nil, errors.Wrap(err, "failed to find contact by id")
	}

	return toContactDomain(&contactM), nil
}

func toContactDomain(data *model.ContactModel) *entity.Contact {
	if data == nil {
		return nil
	}

	return &entity.Contact{
		ID:        data.ID,
		FirstName: data.FirstName,
		LastName:  data.LastName,
		PhoneNo:   data.PhoneNo,
		Email:     data.Email,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
