package database

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/yeremiapane/storefront-api/models"
	"github.com/yeremiapane/storefront-api/utils"
	"gorm.io/gorm"
)

// Seed fills an empty store with sample customers, products, orders and
// links. It reports whether anything was inserted; a store holding any
// row in any table is left untouched.
func Seed(ctx context.Context, db *gorm.DB) (bool, error) {
	db = db.WithContext(ctx)

	for _, model := range models.All() {
		var count int64
		if err := db.Model(model).Count(&count).Error; err != nil {
			return false, fmt.Errorf("seed: count %T: %w", model, err)
		}
		if count > 0 {
			utils.InfoLogger.Debug("Store already holds data, skipping seed")
			return false, nil
		}
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		customers := []models.Customer{
			{FirstName: "Orgest", LastName: "Belba", Email: "orgestbelba@gmail.com"},
			{FirstName: "Filan", LastName: "Fisteku", Email: "filan.fisteku@outlook.com"},
		}
		if err := tx.Create(&customers).Error; err != nil {
			return err
		}

		products := []models.Product{
			{Name: "Product 1", Price: decimal.RequireFromString("19.99")},
			{Name: "Product 2", Price: decimal.RequireFromString("29.50")},
			{Name: "Product 3", Price: decimal.RequireFromString("9.99")},
			{Name: "Product 4", Price: decimal.RequireFromString("13.00")},
		}
		if err := tx.Create(&products).Error; err != nil {
			return err
		}

		now := time.Now().UTC()
		orders := []models.Order{
			{CustomerID: customers[0].ID, OrderDate: now, TotalAmount: decimal.RequireFromString("39.05")},
			{CustomerID: customers[1].ID, OrderDate: now, TotalAmount: decimal.RequireFromString("59.98")},
			{CustomerID: customers[0].ID, OrderDate: now, TotalAmount: decimal.RequireFromString("29.50")},
		}
		if err := tx.Omit("Customer").Create(&orders).Error; err != nil {
			return err
		}

		links := []models.CustomerProduct{
			{CustomerID: customers[0].ID, ProductID: products[0].ID},
			{CustomerID: customers[1].ID, ProductID: products[1].ID},
			{CustomerID: customers[0].ID, ProductID: products[1].ID},
			{CustomerID: customers[1].ID, ProductID: products[0].ID},
		}
		return tx.Omit("Customer", "Product").Create(&links).Error
	})
	if err != nil {
		return false, fmt.Errorf("seed: %w", err)
	}

	utils.InfoLogger.Println("Seed data inserted.")
	return true, nil
}
