package woo

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"partnerhub/config"
	"partnerhub/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()

	cfg := &config.Config{}
	cfg.Woo = &config.WooConfig{
		BaseURL:        baseURL,
		ConsumerKey:    "ck_test",
		ConsumerSecret: "cs_test",
		Timeout:        5 * time.Second,
	}

	client, err := NewClient(cfg, slog.Default())
	require.NoError(t, err)

	return client
}

func TestClient_CreateShop_Success(t *testing.T) {
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/shops", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "ck_test", user)
		assert.Equal(t, "cs_test", pass)

		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{"id": 42, "name": "Acme Foods"})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	id, err := client.CreateShop(context.Background(), service.ShopPayload{
		Name:                 "Acme Foods",
		IdentificationNumber: "REG-9",
		Email:                "biz@acme.test",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	assert.Equal(t, "Acme Foods", gotBody["name"])
	assert.Equal(t, "REG-9", gotBody["identification_number"])
	assert.Equal(t, "biz@acme.test", gotBody["email"])
	// Empty payload fields stay out of the body.
	assert.NotContains(t, gotBody, "phone")
	assert.NotContains(t, gotBody, "address")
}

func TestClient_CreateShop_AlternateIDKeys(t *testing.T) {
	responses := []map[string]any{
		{"term_id": 7},
		{"shop_id": "19"},
		{"ID": 23.0},
	}

	for _, resp := range responses {
		resp := resp
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(resp)
		}))

		client := newTestClient(t, server.URL)
		id, err := client.CreateShop(context.Background(), service.ShopPayload{Name: "Acme"})
		require.NoError(t, err)
		assert.NotZero(t, id)

		server.Close()
	}
}

func TestClient_CreateShop_DuplicateName(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{
			"code":    "term_exists",
			"message": "A shop with this name already exists.",
		})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.CreateShop(context.Background(), service.ShopPayload{Name: "Acme"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrShopNameExists))
}

func TestClient_CreateShop_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.CreateShop(context.Background(), service.ShopPayload{Name: "Acme"})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.False(t, errors.Is(err, service.ErrShopNameExists))
}

func TestClient_SearchShops(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/shops", r.URL.Path)
		assert.Equal(t, "Acme Foods", r.URL.Query().Get("search"))
		assert.Equal(t, "50", r.URL.Query().Get("per_page"))

		json.NewEncoder(w).Encode([]map[string]any{
			{"id": 11, "name": "Acme Catering"},
			{"id": 93, "name": "Acme Foods"},
		})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	shops, err := client.SearchShops(context.Background(), "Acme Foods", 50)
	require.NoError(t, err)
	require.Len(t, shops, 2)
	assert.Equal(t, int64(93), shops[1].ID)
	assert.Equal(t, "Acme Foods", shops[1].Name)
}

func TestClient_UpdateShop(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/shops/42", r.URL.Path)

		json.NewEncoder(w).Encode(map[string]any{"id": 42, "name": "Acme Foods", "email": "biz@acme.test"})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	shop, err := client.UpdateShop(context.Background(), 42, service.ShopPayload{Name: "Acme Foods"})
	require.NoError(t, err)
	assert.Equal(t, int64(42), shop.ID)
	assert.Equal(t, "biz@acme.test", shop.Email)
}

func TestClient_DeleteShop_Force(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/shops/42", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("force"))

		json.NewEncoder(w).Encode(map[string]any{"id": 42})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	require.NoError(t, client.DeleteShop(context.Background(), 42, true))
}

func TestClient_GetCategory_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]any{
			"code":    "woocommerce_rest_term_invalid",
			"message": "Resource does not exist.",
		})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.GetCategory(context.Background(), 7)
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrCategoryNotFound))
}

func TestClient_ListCategories_QueryParams(t *testing.T) {
	parent := int64(3)
	hideEmpty := true

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/categories", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "fruit", q.Get("search"))
		assert.Equal(t, "3", q.Get("parent"))
		assert.Equal(t, "true", q.Get("hide_empty"))
		assert.Equal(t, "2", q.Get("page"))
		assert.Equal(t, "20", q.Get("per_page"))

		json.NewEncoder(w).Encode([]map[string]any{
			{"id": 4, "name": "Apples", "parent": 3, "menu_order": 1},
		})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	cats, err := client.ListCategories(context.Background(), service.CategoryQuery{
		Search:    "fruit",
		Parent:    &parent,
		HideEmpty: &hideEmpty,
		Page:      2,
		PerPage:   20,
	})
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, int64(4), cats[0].ID)
	assert.Equal(t, int64(3), cats[0].Parent)
}

func TestClient_CreateCategory_OmitsNilFields(t *testing.T) {
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(map[string]any{"id": 9, "name": "Produce"})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	slug := "produce"
	cat, err := client.CreateCategory(context.Background(), service.CategoryInput{
		Name: "Produce",
		Slug: &slug,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(9), cat.ID)

	assert.Equal(t, "Produce", gotBody["name"])
	assert.Equal(t, "produce", gotBody["slug"])
	assert.NotContains(t, gotBody, "parent")
	assert.NotContains(t, gotBody, "description")
}
