package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/storefront-api/models"
)

func TestOrderRepository_CRUD(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormOrderRepository(db)
	ctx := context.Background()

	c := seedCustomer(t, db, "Orgest", "Belba", "orgestbelba@gmail.com")
	other := seedCustomer(t, db, "Filan", "Fisteku", "filan.fisteku@outlook.com")

	o := models.Order{
		CustomerID:  c.ID,
		OrderDate:   time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		TotalAmount: decimal.RequireFromString("39.05"),
	}
	require.NoError(t, repo.Add(ctx, &o))
	require.NotZero(t, o.ID)

	got, err := repo.GetByID(ctx, o.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, c.ID, got.CustomerID)
	assert.True(t, got.TotalAmount.Equal(decimal.RequireFromString("39.05")))
	assert.True(t, got.OrderDate.Equal(o.OrderDate))

	got.CustomerID = other.ID
	got.TotalAmount = decimal.RequireFromString("12.50")
	require.NoError(t, repo.Update(ctx, got))

	got, err = repo.GetByID(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, other.ID, got.CustomerID)
	assert.True(t, got.TotalAmount.Equal(decimal.RequireFromString("12.5")))

	orders, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, 1)

	require.NoError(t, repo.Delete(ctx, o.ID))
	ok, err := repo.Exists(ctx, o.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	// deleting again is a no-op
	assert.NoError(t, repo.Delete(ctx, o.ID))
}

func TestOrderRepository_UnknownCustomer(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormOrderRepository(db)
	ctx := context.Background()

	o := models.Order{CustomerID: 77, OrderDate: time.Now().UTC()}
	err := repo.Add(ctx, &o)
	assert.ErrorIs(t, err, ErrCustomerNotFound)

	orders, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)

	c := seedCustomer(t, db, "Orgest", "Belba", "orgestbelba@gmail.com")
	existing := seedOrder(t, db, c.ID, "10.00")
	existing.CustomerID = 77
	assert.ErrorIs(t, repo.Update(ctx, &existing), ErrCustomerNotFound)

	got, err := repo.GetByID(ctx, existing.ID)
	require.NoError(t, err)
	assert.Equal(t, c.ID, got.CustomerID)
}

func TestOrderRepository_GetMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormOrderRepository(db)

	got, err := repo.GetByID(context.Background(), 3)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestOrderRepository_UpdateAfterDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormOrderRepository(db)
	ctx := context.Background()

	c := seedCustomer(t, db, "Orgest", "Belba", "orgestbelba@gmail.com")
	o := seedOrder(t, db, c.ID, "39.05")
	loaded, err := repo.GetByID(ctx, o.ID)
	require.NoError(t, err)
	require.NoError(t, repo.Delete(ctx, o.ID))

	loaded.TotalAmount = decimal.RequireFromString("1.00")
	assert.ErrorIs(t, repo.Update(ctx, loaded), ErrOrderNotFound)

	ok, err := repo.Exists(ctx, o.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}
