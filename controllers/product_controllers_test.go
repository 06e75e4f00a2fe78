package controllers_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/storefront-api/dto"
	"github.com/yeremiapane/storefront-api/models"
	"github.com/yeremiapane/storefront-api/repositories"
)

func TestProductCRUD(t *testing.T) {
	r, _ := setupGormRouter(t)

	w, env := doRequest(t, r, http.MethodPost, "/api/product", map[string]interface{}{
		"name": "Product 3", "price": "9.99",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/api/product/1", w.Header().Get("Location"))
	var created dto.ProductDto
	decodeData(t, env, &created)
	assert.Equal(t, uint(1), created.ProductID)

	w, env = doRequest(t, r, http.MethodPut, "/api/product/1", map[string]interface{}{
		"name": "Product 3b", "price": 11,
	})
	require.Equal(t, http.StatusOK, w.Code)
	var updated dto.ProductDto
	decodeData(t, env, &updated)
	assert.Equal(t, "Product 3b", updated.Name)
	assert.True(t, updated.Price.Equal(decimal.NewFromInt(11)))

	w, env = doRequest(t, r, http.MethodGet, "/api/product", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var products []dto.ProductDto
	decodeData(t, env, &products)
	assert.Len(t, products, 1)

	w, _ = doRequest(t, r, http.MethodDelete, "/api/product/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, env = doRequest(t, r, http.MethodGet, "/api/product/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Product with ID 1 not found.", env.Message)
}

func TestCreateProductValidation(t *testing.T) {
	r, _ := setupGormRouter(t)

	w, _ := doRequest(t, r, http.MethodPost, "/api/product", map[string]interface{}{"price": "1.00"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doRequest(t, r, http.MethodPost, "/api/product", map[string]interface{}{"name": "Broken", "price": "-0.01"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doRequest(t, r, http.MethodPost, "/api/product", map[string]interface{}{"name": "NoPrice"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, env := doRequest(t, r, http.MethodGet, "/api/product", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, string(env.Data))

	w, _ = doRequest(t, r, http.MethodPost, "/api/product", map[string]interface{}{"name": "Sample", "price": 0})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestProductCustomerLinks(t *testing.T) {
	r, _ := setupGormRouter(t)

	doRequest(t, r, http.MethodPost, "/api/product", map[string]interface{}{"name": "Product 1", "price": "19.99"})
	doRequest(t, r, http.MethodPost, "/api/customer", map[string]interface{}{
		"firstName": "Filan", "lastName": "Fisteku", "email": "filan.fisteku@outlook.com",
	})

	w, env := doRequest(t, r, http.MethodGet, "/api/product/1/customers", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, string(env.Data))

	w, _ = doRequest(t, r, http.MethodPost, "/api/product/1/customers/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, env = doRequest(t, r, http.MethodGet, "/api/customer/1/products", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var products []dto.ProductDto
	decodeData(t, env, &products)
	assert.Len(t, products, 1)

	w, _ = doRequest(t, r, http.MethodDelete, "/api/product/1/customers/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, env = doRequest(t, r, http.MethodGet, "/api/product/1/customers", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, string(env.Data))

	w, env = doRequest(t, r, http.MethodPost, "/api/product/1/customers/4", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Customer with ID 4 not found.", env.Message)

	w, _ = doRequest(t, r, http.MethodGet, "/api/product/4/customers", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// failingProducts answers every call with a store error.
type failingProducts struct {
	repositories.ProductRepository
}

var errStore = errors.New("store unavailable")

func (failingProducts) List(context.Context) ([]models.Product, error) {
	return nil, errStore
}

func (failingProducts) GetByID(context.Context, uint) (*models.Product, error) {
	return nil, errStore
}

func TestProductStoreFailure(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(
		repositories.NewGormCustomerRepository(db),
		repositories.NewGormOrderRepository(db),
		failingProducts{},
	)

	w, env := doRequest(t, r, http.MethodGet, "/api/product", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal server error", env.Message)
	assert.NotContains(t, w.Body.String(), errStore.Error())

	w, _ = doRequest(t, r, http.MethodGet, "/api/product/1", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

// vanishingProducts loses the row between load and update.
type vanishingProducts struct {
	*repositories.GormProductRepository
}

func (vanishingProducts) Update(_ context.Context, p *models.Product) error {
	return fmt.Errorf("update product %d: %w", p.ID, repositories.ErrProductNotFound)
}

func TestUpdateProductDeletedConcurrently(t *testing.T) {
	db := setupTestDB(t)
	products := repositories.NewGormProductRepository(db)
	r := setupRouter(
		repositories.NewGormCustomerRepository(db),
		repositories.NewGormOrderRepository(db),
		vanishingProducts{products},
	)

	doRequest(t, r, http.MethodPost, "/api/product", map[string]interface{}{"name": "Product 1", "price": "19.99"})

	w, env := doRequest(t, r, http.MethodPut, "/api/product/1", map[string]interface{}{"name": "Renamed", "price": "1.00"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Product with ID 1 not found.", env.Message)
}
