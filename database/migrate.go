package database

import (
	"github.com/yeremiapane/storefront-api/models"
	"github.com/yeremiapane/storefront-api/utils"
	"gorm.io/gorm"
)

// Migrate creates or updates the tables of every model.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return err
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
	return nil
}
