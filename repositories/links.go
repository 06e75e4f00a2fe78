package repositories

import (
	"fmt"

	"github.com/yeremiapane/storefront-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// linkCustomerProduct inserts the (customerID, productID) junction row after
// checking that both ends exist. Linking an already linked pair is a no-op.
func linkCustomerProduct(db *gorm.DB, customerID, productID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		ok, err := exists(tx, &models.Customer{}, customerID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("link customer %d to product %d: %w", customerID, productID, ErrCustomerNotFound)
		}

		ok, err = exists(tx, &models.Product{}, productID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("link customer %d to product %d: %w", customerID, productID, ErrProductNotFound)
		}

		link := models.CustomerProduct{CustomerID: customerID, ProductID: productID}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error
	})
}

// unlinkCustomerProduct removes the exact junction row, if there is one.
func unlinkCustomerProduct(db *gorm.DB, customerID, productID uint) error {
	return db.
		Where("customer_id = ? AND product_id = ?", customerID, productID).
		Delete(&models.CustomerProduct{}).Error
}
