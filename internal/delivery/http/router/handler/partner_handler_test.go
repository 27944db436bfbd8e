package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"partnerhub/internal/delivery/http/validator"
	"partnerhub/internal/domain/entity"
	mockUC "partnerhub/internal/mocks/usecase"
	"partnerhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPartnerTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestPartnerHandler_Create(t *testing.T) {
	t.Run("returns created partner with shop id", func(t *testing.T) {
		uc := mockUC.NewMockPartnerUsecase(t)
		h := NewPartnerHandler(uc, slog.Default())

		wooShopID := int64(42)
		uc.EXPECT().
			CreatePartner(mock.Anything, mock.AnythingOfType("*usecase.CreatePartnerInput")).
			Return(&usecase.PartnerOutput{
				Partner:   &entity.Partner{ID: uuid.New(), CompanyName: "Acme Foods"},
				WooShopID: &wooShopID,
			}, nil)

		body := `{"company_name":"Acme Foods","tax_id":"TX-123"}`
		c, rec := newPartnerTestContext(t, http.MethodPost, "/api/partners", body)

		require.NoError(t, h.Create(c))
		assert.Equal(t, http.StatusCreated, rec.Code)

		var envelope struct {
			Success bool `json:"success"`
			Data    struct {
				WooShopID *int64 `json:"woo_shop_id"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
		assert.True(t, envelope.Success)
		require.NotNil(t, envelope.Data.WooShopID)
		assert.Equal(t, int64(42), *envelope.Data.WooShopID)
	})

	t.Run("rejects invalid email before calling the usecase", func(t *testing.T) {
		h := NewPartnerHandler(mockUC.NewMockPartnerUsecase(t), slog.Default())

		body := `{"company_name":"Acme Foods","tax_id":"TX-123","business_email":"not-an-email"}`
		c, _ := newPartnerTestContext(t, http.MethodPost, "/api/partners", body)

		err := h.Create(c)
		require.Error(t, err)
	})

	t.Run("rejects malformed json", func(t *testing.T) {
		h := NewPartnerHandler(mockUC.NewMockPartnerUsecase(t), slog.Default())

		c, rec := newPartnerTestContext(t, http.MethodPost, "/api/partners", `{"company_name":`)

		require.NoError(t, h.Create(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPartnerHandler_Update(t *testing.T) {
	t.Run("passes parsed id through", func(t *testing.T) {
		uc := mockUC.NewMockPartnerUsecase(t)
		h := NewPartnerHandler(uc, slog.Default())

		id := uuid.New()
		uc.EXPECT().
			UpdatePartner(mock.Anything, id, mock.AnythingOfType("*usecase.UpdatePartnerInput")).
			Return(&usecase.PartnerOutput{
				Partner: &entity.Partner{ID: id, CompanyName: "Acme Foods"},
				Warning: &usecase.Warning{Code: usecase.WarningWooShopUpdate},
			}, nil)

		c, rec := newPartnerTestContext(t, http.MethodPut, "/", `{"company_name":"Acme Foods"}`)
		c.SetPath("/api/partners/:id")
		c.SetParamNames("id")
		c.SetParamValues(id.String())

		require.NoError(t, h.Update(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"_warning"`)
	})

	t.Run("rejects malformed id", func(t *testing.T) {
		h := NewPartnerHandler(mockUC.NewMockPartnerUsecase(t), slog.Default())

		c, rec := newPartnerTestContext(t, http.MethodPut, "/", `{}`)
		c.SetPath("/api/partners/:id")
		c.SetParamNames("id")
		c.SetParamValues("not-a-uuid")

		require.NoError(t, h.Update(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPartnerHandler_Delete(t *testing.T) {
	uc := mockUC.NewMockPartnerUsecase(t)
	h := NewPartnerHandler(uc, slog.Default())

	id := uuid.New()
	uc.EXPECT().
		DeletePartner(mock.Anything, id).
		Return(&usecase.DeletePartnerOutput{Deleted: true, ID: id}, nil)

	c, rec := newPartnerTestContext(t, http.MethodDelete, "/", "")
	c.SetPath("/api/partners/:id")
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"deleted":true`)
}

func TestPartnerHandler_List(t *testing.T) {
	uc := mockUC.NewMockPartnerUsecase(t)
	h := NewPartnerHandler(uc, slog.Default())

	uc.EXPECT().
		ListPartners(mock.Anything).
		Return([]*entity.Partner{{ID: uuid.New(), CompanyName: "Acme Foods"}}, nil)

	c, rec := newPartnerTestContext(t, http.MethodGet, "/api/partners", "")

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Acme Foods")
}
