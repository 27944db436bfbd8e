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

// shopLinkRepository implements the repository.ShopLinkRepository interface using GORM.
type shopLinkRepository struct {
	db *gorm.DB
}

// NewShopLinkRepository is the constructor for shopLinkRepository.
func NewShopLinkRepository(db *gorm.DB) repository.ShopLinkRepository {
	return &shopLinkRepository{
		db: db,
	}
}

// Create persists a link between a partner and its remote shop.
func (repo *shopLinkRepository) Create(ctx context.Context, link *entity.ShopLink) error {
	linkM := fromShopLinkDomain(link)

	if err := repo.db.WithContext(ctx).Create(linkM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrShopLinkCreateFailed.WrapMessage("partner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create shop link")
	}

	link.ID = linkM.ID
	link.CreatedAt = linkM.CreatedAt
	link.UpdatedAt = linkM.UpdatedAt

	return nil
}

// FindActiveByPartner returns the first active link for the partner.
func (repo *shopLinkRepository) FindActiveByPartner(ctx context.Context, partnerID uuid.UUID) (*entity.ShopLink, error) {
	var linkM model.ShopLinkModel

	if err := repo.db.WithContext(ctx).
		Where("partner_id = ?", partnerID).
		Where("deleted_at IS NULL").
		Order("created_at ASC").
		First(&linkM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShopLinkNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop link by partner")
	}

	return toShopLinkDomain(&linkM), nil
}

// ListActiveByPartner returns every active link for the partner.
func (repo *shopLinkRepository) ListActiveByPartner(ctx context.Context, partnerID uuid.UUID) ([]*entity.ShopLink, error) {
	var linkModels []*model.ShopLinkModel

	if err := repo.db.WithContext(ctx).
		Where("partner_id = ?", partnerID).
		Where("deleted_at IS NULL").
		Order("created_at ASC").
		Find(&linkModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list shop links by partner")
	}

	links := make([]*entity.ShopLink, 0, len(linkModels))
	for _, linkM := range linkModels {
		links = append(links, toShopLinkDomain(linkM))
	}

	return links, nil
}

// SoftDeleteByPartner marks every active link for the partner as deleted in a
// single update. Zero affected rows is not an error.
func (repo *shopLinkRepository) SoftDeleteByPartner(ctx context.Context, partnerID uuid.UUID) error {
	now := time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.ShopLinkModel{}).
		Where("partner_id = ?", partnerID).
		Where("deleted_at IS NULL").
		Updates(map[string]any{"deleted_at": now, "updated_at": now})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to soft delete shop links")
	}

	return nil
}

func toShopLinkDomain(data *model.ShopLinkModel) *entity.ShopLink {
	if data == nil {
		return nil
	}

	return &entity.ShopLink{
		ID:        data.ID,
		PartnerID: data.PartnerID,
		WooShopID: data.WooShopID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromShopLinkDomain(data *entity.ShopLink) *model.ShopLinkModel {
	if data == nil {
		return nil
	}

	return &model.ShopLinkModel{
		ID:        data.ID,
		PartnerID: data.PartnerID,
		WooShopID: data.WooShopID,
	}
}
