package postgres

import (
	"context"
	"testing"
	"time"

	"partnerhub/internal/domain/entity"
	"partnerhub/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func shopLinkRows(partnerID uuid.UUID, wooShopIDs ...int64) *sqlmock.Rows {
	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "partner_id", "woo_shop_id", "created_at", "updated_at", "deleted_at",
	})
	for _, wooShopID := range wooShopIDs {
		rows.AddRow(uuid.New(), partnerID, wooShopID, now, now, nil)
	}

	return rows
}

func TestShopLinkRepository_Create(t *testing.T) {
	db, mock, mockDB := newMockDB(t)
	defer mockDB.Close()
	repo := NewShopLinkRepository(db)

	newID := uuid.New()
	mock.ExpectQuery(`INSERT INTO "shops"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(newID))

	link := &entity.ShopLink{PartnerID: uuid.New(), WooShopID: 42}
	require.NoError(t, repo.Create(context.Background(), link))
	assert.Equal(t, newID, link.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShopLinkRepository_FindActiveByPartner(t *testing.T) {
	t.Run("returns oldest active link", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewShopLinkRepository(db)

		partnerID := uuid.New()
		mock.ExpectQuery(`SELECT \* FROM "shops" WHERE partner_id = \$1 AND deleted_at IS NULL ORDER BY created_at ASC`).
			WithArgs(partnerID, 1).
			WillReturnRows(shopLinkRows(partnerID, 42))

		link, err := repo.FindActiveByPartner(context.Background(), partnerID)
		require.NoError(t, err)
		assert.Equal(t, int64(42), link.WooShopID)
		assert.Equal(t, partnerID, link.PartnerID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps missing link to sentinel", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewShopLinkRepository(db)

		partnerID := uuid.New()
		mock.ExpectQuery(`SELECT \* FROM "shops"`).
			WithArgs(partnerID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		link, err := repo.FindActiveByPartner(context.Background(), partnerID)
		assert.Nil(t, link)
		assert.True(t, errors.Is(err, repository.ErrShopLinkNotFound))
	})
}

func TestShopLinkRepository_ListActiveByPartner(t *testing.T) {
	db, mock, mockDB := newMockDB(t)
	defer mockDB.Close()
	repo := NewShopLinkRepository(db)

	partnerID := uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "shops" WHERE partner_id = \$1 AND deleted_at IS NULL ORDER BY created_at ASC`).
		WithArgs(partnerID).
		WillReturnRows(shopLinkRows(partnerID, 42, 43))

	links, err := repo.ListActiveByPartner(context.Background(), partnerID)
	require.NoError(t, err)
	require.Len(t, links, 2)
	assert.Equal(t, int64(42), links[0].WooShopID)
	assert.Equal(t, int64(43), links[1].WooShopID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShopLinkRepository_SoftDeleteByPartner(t *testing.T) {
	t.Run("marks all active links deleted", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewShopLinkRepository(db)

		mock.ExpectExec(`UPDATE "shops" SET`).
			WillReturnResult(sqlmock.NewResult(0, 2))

		require.NoError(t, repo.SoftDeleteByPartner(context.Background(), uuid.New()))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("zero affected rows is not an error", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewShopLinkRepository(db)

		mock.ExpectExec(`UPDATE "shops" SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		require.NoError(t, repo.SoftDeleteByPartner(context.Background(), uuid.New()))
	})
}
