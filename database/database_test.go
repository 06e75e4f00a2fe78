package database

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/storefront-api/models"
	"github.com/yeremiapane/storefront-api/utils"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	utils.InitLogger()

	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, Migrate(db))
	return db
}

func count(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func TestMigrateCreatesTables(t *testing.T) {
	db := setupTestDB(t, "migrate")

	for _, table := range []string{"customers", "orders", "products", "customer_products"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}

	// running twice is harmless
	assert.NoError(t, Migrate(db))
}

func TestSeedEmptyStore(t *testing.T) {
	db := setupTestDB(t, "seed_empty")

	seeded, err := Seed(context.Background(), db)
	require.NoError(t, err)
	assert.True(t, seeded)

	assert.Equal(t, int64(2), count(t, db, &models.Customer{}))
	assert.Equal(t, int64(4), count(t, db, &models.Product{}))
	assert.Equal(t, int64(3), count(t, db, &models.Order{}))
	assert.Equal(t, int64(4), count(t, db, &models.CustomerProduct{}))

	var orgest models.Customer
	require.NoError(t, db.Preload("Orders").Where("email = ?", "orgestbelba@gmail.com").First(&orgest).Error)
	require.Len(t, orgest.Orders, 2)
	assert.True(t, orgest.Orders[0].TotalAmount.Equal(decimal.RequireFromString("39.05")))

	var p2 models.Product
	require.NoError(t, db.Where("name = ?", "Product 2").First(&p2).Error)
	assert.True(t, p2.Price.Equal(decimal.RequireFromString("29.5")))
}

func TestSeedSkipsWhenAnyTableHasRows(t *testing.T) {
	db := setupTestDB(t, "seed_skip")
	require.NoError(t, db.Create(&models.Product{Name: "Existing", Price: decimal.NewFromInt(1)}).Error)

	seeded, err := Seed(context.Background(), db)
	require.NoError(t, err)
	assert.False(t, seeded)

	assert.Equal(t, int64(0), count(t, db, &models.Customer{}))
	assert.Equal(t, int64(1), count(t, db, &models.Product{}))
}

func TestSeedTwice(t *testing.T) {
	db := setupTestDB(t, "seed_twice")

	_, err := Seed(context.Background(), db)
	require.NoError(t, err)
	seeded, err := Seed(context.Background(), db)
	require.NoError(t, err)
	assert.False(t, seeded)
	assert.Equal(t, int64(2), count(t, db, &models.Customer{}))
}
