package impl

import (
	"context"
	"log/slog"
	"testing"

	"partnerhub/internal/domain/entity"
	domainerrors "partnerhub/internal/domain/errors"
	"partnerhub/internal/domain/repository"
	"partnerhub/internal/domain/service"
	mockRepo "partnerhub/internal/mocks/repository"
	mockSvc "partnerhub/internal/mocks/service"
	"partnerhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// partnerServiceFixtures holds all test dependencies for partner service tests.
type partnerServiceFixtures struct {
	service     usecase.PartnerUsecase
	partnerRepo *mockRepo.MockPartnerRepository
	linkRepo    *mockRepo.MockShopLinkRepository
	contactRepo *mockRepo.MockContactRepository
	shops       *mockSvc.MockWooShopClient
}

func createTestPartnerService(t *testing.T) partnerServiceFixtures {
	partnerRepo := mockRepo.NewMockPartnerRepository(t)
	linkRepo := mockRepo.NewMockShopLinkRepository(t)
	contactRepo := mockRepo.NewMockContactRepository(t)
	shops := mockSvc.NewMockWooShopClient(t)
	service := NewPartnerService(partnerRepo, linkRepo, contactRepo, shops, slog.Default())

	return partnerServiceFixtures{
		service:     service,
		partnerRepo: partnerRepo,
		linkRepo:    linkRepo,
		contactRepo: contactRepo,
		shops:       shops,
	}
}

func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.ErrorCode())
}

func createInput() *usecase.CreatePartnerInput {
	return &usecase.CreatePartnerInput{
		CompanyName:        "  Acme Foods  ",
		TaxID:              "TX-123",
		RegistrationNumber: "REG-9",
		Address:            "1 Main St",
		BusinessEmail:      "biz@acme.test",
		PhoneNumber:        "+12025550123",
	}
}

func TestPartnerService_CreatePartner_Success(t *testing.T) {
	fx := createTestPartnerService(t)
	ctx := context.Background()

	fx.shops.EXPECT().
		CreateShop(ctx, service.ShopPayload{
			Name:                 "Acme Foods",
			IdentificationNumber: "REG-9",
			Phone:                "+12025550123",
			Email:                "biz@acme.test",
			Address:              "1 Main St",
		}).
		Return(int64(42), nil)

	partnerID := uuid.New()
	fx.partnerRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Partner")).
		Run(func(ctx context.Context, partner *entity.Partner) {
			partner.ID = partnerID
		}).
		Return(nil)

	fx.linkRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.ShopLink")).
		Run(func(ctx context.Context, link *entity.ShopLink) {
			assert.Equal(t, partnerID, link.PartnerID)
			assert.Equal(t, int64(42), link.WooShopID)
		}).
		Return(nil)

	out, err := fx.service.CreatePartner(ctx, createInput())
	require.NoError(t, err)
	require.NotNil(t, out.WooShopID)
	assert.Equal(t, int64(42), *out.WooShopID)
	assert.Nil(t, out.Warning)
	assert.Equal(t, "Acme Foods", out.Partner.CompanyName)
	assert.True(t, out.Partner.IsActive)
}

func TestPartnerService_CreatePartner_MissingRequiredFields(t *testing.T) {
	fx := createTestPartnerService(t)

	input := createInput()
	input.TaxID = "   "

	out, err := fx.service.CreatePartner(context.Background(), input)
	require.Error(t, err)
	assert.Nil(t, out)
	assertAppErrorCode(t, err, "VALIDATION_ERROR")
}

func TestPartnerService_CreatePartner_RemoteCreateFails(t *testing.T) {
	fx := createTestPartnerService(t)
	ctx := context.Background()

	fx.shops.EXPECT().
		CreateShop(ctx, mock.AnythingOfType("service.ShopPayload")).
		Return(int64(0), errors.New("upstream down"))

	out, err := fx.service.CreatePartner(ctx, createInput())
	require.Error(t, err)
	assert.Nil(t, out)
	assertAppErrorCode(t, err, "WOO_SHOPS_CREATE_ERROR")
}

func TestPartnerService_CreatePartner_LocalInsertFails(t *testing.T) {
	fx := createTestPartnerService(t)
	ctx := context.Background()

	fx.shops.EXPECT().
		CreateShop(ctx, mock.AnythingOfType("service.ShopPayload")).
		Return(int64(42), nil)

	fx.partnerRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Partner")).
		Return(errors.New("insert failed"))

	out, err := fx.service.CreatePartner(ctx, createInput())
	require.Error(t, err)
	assert.Nil(t, out)
	assertAppErrorCode(t, err, "PARTNER_CREATE_ERROR")
}

func TestPartnerService_CreatePartner_LinkInsertFailureIsWarning(t *testing.T) {
	fx := createTestPartnerService(t)
	ctx := context.Background()

	fx.shops.EXPECT().
		CreateShop(ctx, mock.AnythingOfType("service.ShopPayload")).
		Return(int64(42), nil)

	fx.partnerRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Partner")).
		Return(nil)

	fx.linkRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.ShopLink")).
		Return(errors.New("link table unavailable"))

	out, err := fx.service.CreatePartner(ctx, createInput())
	require.NoError(t, err)
	require.NotNil(t, out.Warning)
	assert.Equal(t, usecase.WarningShopLinkCreate, out.Warning.Code)
	require.NotNil(t, out.WooShopID)
	assert.Equal(t, int64(42), *out.WooShopID)
}

func strPtr(s string) *string { return &s }

func TestPartnerService_UpdatePartner_RemoteUpdateSuccess(t *testing.T) {
	fx := createTestPartnerService(t)
	ctx := context.Background()
	id := uuid.New()

	updated := &entity.Partner{ID: id, CompanyName: "Acme Foods", TaxID: "TX-123"}
	fx.partnerRepo.EXPECT().
		Update(ctx, id, mock.AnythingOfType("repository.PartnerPatch")).
		Return(updated, nil)

	fx.linkRepo.EXPECT().
		FindActiveByPartner(ctx, id).
		Return(&entity.ShopLink{PartnerID: id, WooShopID: 42}, nil)

	fx.shops.EXPECT().
		UpdateShop(ctx, int64(42), mock.AnythingOfType("service.ShopPayload")).
		Return(&service.RemoteShop{ID: 42, Name: "Acme Foods"}, nil)

	out, err := fx.service.UpdatePartner(ctx, id, &usecase.UpdatePartnerInput{
		CompanyName: strPtr("Acme Foods"),
	})
	require.NoError(t, err)
	assert.Nil(t, out.Warning)
	require.NotNil(t, out.WooShopID)
	assert.Equal(t, int64(42), *out.WooShopID)
}

func TestPartnerService_UpdatePartner_RemoteUpdateFailureIsWarning(t *testing.T) {
	fx := createTestPartnerService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.partnerRepo.EXPECT().
		Update(ctx, id, mock.AnythingOfType("repository.PartnerPatch")).
		Return(&entity.Partner{ID: id, CompanyName: "Acme Foods", TaxID: "TX-123"}, nil)

	fx.linkRepo.EXPECT().
		FindActiveByPartner(ctx, id).
		Return(&entity.ShopLink{PartnerID: id, WooShopID: 42}, nil)

	fx.shops.EXPECT().
		UpdateShop(ctx, int64(42), mock.AnythingOfType("service.ShopPayload")).
		Return(nil, errors.New("upstream down"))

	out, err := fx.service.UpdatePartner(ctx, id, &usecase.UpdatePartnerInput{
		CompanyName: strPtr("Acme Foods"),
	})
	require.NoError(t, err)
	require.NotNil(t, out.Warning)
	assert.Equal(t, usecase.WarningWooShopUpdate, out.Warning.Code)
	assert.Equal(t, "Partner updated, but Woo shop update failed.", out.Warning.Message)
}

func TestPartnerService_UpdatePartner_HealsMissingLink(t *testing.T) {
	fx := createTestPartnerService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.partnerRepo.EXPECT().
		Update(ctx, id, mock.AnythingOfType("repository.PartnerPatch")).
		Return(&entity.Partner{ID: id, CompanyName: "Acme Foods", TaxID: "TX-123"}, nil)

	fx.linkRepo.EXPECT().
		FindActiveByPartner(ctx, id).
		Return(nil, repository.ErrShopLinkNotFound)

	fx.shops.EXPECT().
		CreateShop(ctx, mock.AnythingOfType("service.ShopPayload")).
		Return(int64(77), nil)

	fx.linkRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.ShopLink")).
		Run(func(ctx context.Context, link *entity.ShopLink) {
			assert.Equal(t, int64(77), link.WooShopID)
		}).
		Return(nil)

	out, err := fx.service.UpdatePartner(ctx, id, &usecase.UpdatePartnerInput{
		CompanyName: strPtr("Acme Foods"),
	})
	require.NoError(t, err)
	assert.Nil(t, out.Warning)
	require.NotNil(t, out.WooShopID)
	assert.Equal(t, int64(77), *out.WooShopID)
}

func TestPartnerService_UpdatePartner_AdoptsExistingShopOnDuplicateName(t *testing.T) {
	fx := createTestPartnerService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.partnerRepo.EXPECT().
		Update(ctx, id, mock.AnythingOfType("repository.PartnerPatch")).
		Return(&entity.Partner{ID: id, CompanyName: "Acme Foods", TaxID: "TX-123"}, nil)

	fx.linkRepo.EXPECT().
		FindActiveByPartner(ctx, id).
		Return(nil, repository.ErrShopLinkNotFound)

	fx.shops.EXPECT().
		CreateShop(ctx, mock.AnythingOfType("service.ShopPayload")).
		Return(int64(0), errors.Wrap(service.ErrShopNameExists, "A shop with this name already exists"))

	fx.shops.EXPECT().
		SearchShops(ctx, "Acme Foods", 50).
		Return([]service.RemoteShop{
			{ID: 11, Name: "Acme Catering"},
			{ID: 93, Name: "  ACME FOODS "},
		}, nil)

	fx.linkRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.ShopLink")).
		Return(nil)

	out, err := fx.service.UpdatePartner(ctx, id, &usecase.UpdatePartnerInput{
		CompanyName: strPtr("Acme Foods"),
	})
	require.NoError(t, err)
	assert.Nil(t, out.Warning)
	require.NotNil(t, out.WooShopID)
	assert.Equal(t, int64(93), *out.WooShopID)
}

func TestPartnerService_UpdatePartner_DuplicateNameNotRecoverable(t *testing.T) {
	fx := createTestPartnerService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.partnerRepo.EXPECT().
		Update(ctx, id, mock.AnythingOfType("repository.PartnerPatch")).
		Return(&entity.Partner{ID: id, CompanyName: "Acme Foods", TaxID: "TX-123"}, nil)

	fx.linkRepo.EXPECT().
		FindActiveByPartner(ctx, id).
		Return(nil, repository.ErrShopLinkNotFound)

	fx.shops.EXPECT().
		CreateShop(ctx, mock.AnythingOfType("service.ShopPayload")).
		Return(int64(0), errors.Wrap(service.ErrShopNameExists, "A shop with this name already exists"))

	fx.shops.EXPECT().
		SearchShops(ctx, "Acme Foods", 50).
		Return([]service.RemoteShop{{ID: 11, Name: "Acme Catering"}}, nil)

	out, err := fx.service.UpdatePartner(ctx, id, &usecase.UpdatePartnerInput{
		CompanyName: strPtr("Acme Foods"),
	})
	require.NoError(t, err)
	require.NotNil(t, out.Warning)
	assert.Equal(t, usecase.WarningWooShopCreateFind, out.Warning.Code)
	assert.Nil(t, out.WooShopID)
}

func TestPartnerService_UpdatePartner_RemoteCreateFailureIsWarning(t *testing.T) {
	fx := createTestPartnerService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.partnerRepo.EXPECT().
		Update(ctx, id, mock.AnythingOfType("repository.PartnerPatch")).
		Return(&entity.Partner{ID: id, CompanyName: "Acme Foods", TaxID: "TX-123"}, nil)

	fx.linkRepo.EXPECT().
		FindActiveByPartner(ctx, id).
		Return(nil, repository.ErrShopLinkNotFound)

	fx.shops.EXPECT().
		CreateShop(ctx, mock.AnythingOfType("service.ShopPayload")).
		Return(int64(0), errors.New("upstream down"))

	out, err := fx.service.UpdatePartner(ctx, id, &usecase.UpdatePartnerInput{
		CompanyName: strPtr("Acme Foods"),
	})
	require.NoError(t, err)
	require.NotNil(t, out.Warning)
	assert.Equal(t, usecase.WarningWooShopCreate, out.Warning.Code)
	assert.Nil(t, out.WooShopID)
}

func TestPartnerService_UpdatePartner_NotFound(t *testing.T) {
	fx := createTestPartnerService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.partnerRepo.EXPECT().
		Update(ctx, id, mock.AnythingOfType("repository.PartnerPatch")).
		Return(nil, repository.ErrPartnerNotFound)

	out, err := fx.service.UpdatePartner(ctx, id, &usecase.UpdatePartnerInput{
		CompanyName: strPtr("Acme Foods"),
	})
	require.Error(t, err)
	assert.Nil(t, out)
	assertAppErrorCode(t, err, "PARTNER_NOT_FOUND")
}

func TestPartnerService_UpdatePartner_BlankRequiredFieldRejected(t *testing.T) {
	fx := createTestPartnerService(t)

	out, err := fx.service.UpdatePartner(context.Background(), uuid.New(), &usecase.UpdatePartnerInput{
		CompanyName: strPtr("   "),
	})
	require.Error(t, err)
	assert.Nil(t, out)
	assertAppErrorCode(t, err, "VALIDATION_ERROR")
}

func TestPartnerService_DeletePartner_Success(t *testing.T) {
	fx := createTestPartnerService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.partnerRepo.EXPECT().
		SoftDelete(ctx, id).
		Return(nil)

	fx.linkRepo.EXPECT().
		ListActiveByPartner(ctx, id).
		Return([]*entity.ShopLink{
			{PartnerID: id, WooShopID: 42},
			{PartnerID: id, WooShopID: 43},
		}, nil)

	fx.shops.EXPECT().
		DeleteShop(ctx, int64(42), true).
		Return(nil)
	fx.shops.EXPECT().
		DeleteShop(ctx, int64(43), true).
		Return(nil)

	fx.linkRepo.EXPECT().
		SoftDeleteByPartner(ctx, id).
		Return(nil)

	out, err := fx.service.DeletePartner(ctx, id)
	require.NoError(t, err)
	assert.True(t, out.Deleted)
	assert.Equal(t, id, out.ID)
	assert.Nil(t, out.Warning)
}

func TestPartnerService_DeletePartner_NotFound(t *testing.T) {
	fx := createTestPartnerService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.partnerRepo.EXPECT().
		SoftDelete(ctx, id).
		Return(repository.ErrPartnerNotFound)

	out, err := fx.service.DeletePartner(ctx, id)
	require.Error(t, err)
	assert.Nil(t, out)
	assertAppErrorCode(t, err, "PARTNER_NOT_FOUND")
}

func TestPartnerService_DeletePartner_RemoteDeleteFailureIsWarning(t *testing.T) {
	fx := createTestPartnerService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.partnerRepo.EXPECT().
		SoftDelete(ctx, id).
		Return(nil)

	fx.linkRepo.EXPECT().
		ListActiveByPartner(ctx, id).
		Return([]*entity.ShopLink{{PartnerID: id, WooShopID: 42}}, nil)

	fx.shops.EXPECT().
		DeleteShop(ctx, int64(42), true).
		Return(errors.New("upstream down"))

	fx.linkRepo.EXPECT().
		SoftDeleteByPartner(ctx, id).
		Return(nil)

	out, err := fx.service.DeletePartner(ctx, id)
	require.NoError(t, err)
	assert.True(t, out.Deleted)
	require.NotNil(t, out.Warning)
	assert.Equal(t, usecase.WarningWooShopDelete, out.Warning.Code)
}

func TestPartnerService_DeletePartner_LastWarningWins(t *testing.T) {
	fx := createTestPartnerService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.partnerRepo.EXPECT().
		SoftDelete(ctx, id).
		Return(nil)

	fx.linkRepo.EXPECT().
		ListActiveByPartner(ctx, id).
		Return([]*entity.ShopLink{{PartnerID: id, WooShopID: 42}}, nil)

	fx.shops.EXPECT().
		DeleteShop(ctx, int64(42), true).
		Return(errors.New("upstream down"))

	fx.linkRepo.EXPECT().
		SoftDeleteByPartner(ctx, id).
		Return(errors.New("link table unavailable"))

	out, err := fx.service.DeletePartner(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, out.Warning)
	assert.Equal(t, usecase.WarningShopLinkSoftDelete, out.Warning.Code)
}

func TestPartnerService_DeletePartner_LinkListingFailureStillSucceeds(t *testing.T) {
	fx := createTestPartnerService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.partnerRepo.EXPECT().
		SoftDelete(ctx, id).
		Return(nil)

	fx.linkRepo.EXPECT().
		ListActiveByPartner(ctx, id).
		Return(nil, errors.New("query failed"))

	out, err := fx.service.DeletePartner(ctx, id)
	require.NoError(t, err)
	assert.True(t, out.Deleted)
	assert.Nil(t, out.Warning)
}

func TestPartnerService_GetPartner_EnrichesAdministratorName(t *testing.T) {
	fx := createTestPartnerService(t)
	ctx := context.Background()
	id := uuid.New()
	contactID := uuid.New()

	fx.partnerRepo.EXPECT().
		FindByID(ctx, id).
		Return(&entity.Partner{
			ID:                     id,
			CompanyName:            "Acme Foods",
			AdministratorContactID: &contactID,
		}, nil)

	fx.contactRepo.EXPECT().
		FindByID(ctx, contactID).
		Return(&entity.Contact{ID: contactID, FirstName: "Dana", LastName: "Reyes"}, nil)

	partner, err := fx.service.GetPartner(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Dana Reyes", partner.AdministratorName)
}

func TestPartnerService_GetPartner_MissingContactIsIgnored(t *testing.T) {
	fx := createTestPartnerService(t)
	ctx := context.Background()
	id := uuid.New()
	contactID := uuid.New()

	fx.partnerRepo.EXPECT().
		FindByID(ctx, id).
		Return(&entity.Partner{ID: id, AdministratorContactID: &contactID}, nil)

	fx.contactRepo.EXPECT().
		FindByID(ctx, contactID).
		Return(nil, repository.ErrContactNotFound)

	partner, err := fx.service.GetPartner(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, partner.AdministratorName)
}

func TestPartnerService_ListPartners(t *testing.T) {
	fx := createTestPartnerService(t)
	ctx := context.Background()

	fx.partnerRepo.EXPECT().
		List(ctx).
		Return([]*entity.Partner{
			{ID: uuid.New(), CompanyName: "Acme Foods"},
			{ID: uuid.New(), CompanyName: "Beta Goods"},
		}, nil)

	partners, err := fx.service.ListPartners(ctx)
	require.NoError(t, err)
	assert.Len(t, partners, 2)
}
