package repositories

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/storefront-api/models"
	"github.com/yeremiapane/storefront-api/utils"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens a private in-memory SQLite database for one test.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	utils.InitLogger()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}

func seedCustomer(t *testing.T, db *gorm.DB, first, last, email string) models.Customer {
	t.Helper()
	c := models.Customer{FirstName: first, LastName: last, Email: email}
	require.NoError(t, db.Create(&c).Error)
	return c
}

func seedProduct(t *testing.T, db *gorm.DB, name, price string) models.Product {
	t.Helper()
	p := models.Product{Name: name, Price: decimal.RequireFromString(price)}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func seedOrder(t *testing.T, db *gorm.DB, customerID uint, total string) models.Order {
	t.Helper()
	o := models.Order{
		CustomerID:  customerID,
		OrderDate:   time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		TotalAmount: decimal.RequireFromString(total),
	}
	require.NoError(t, db.Omit("Customer").Create(&o).Error)
	return o
}

func countLinks(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&models.CustomerProduct{}).Count(&n).Error)
	return n
}
