package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/yeremiapane/storefront-api/models"
	"gorm.io/gorm"
)

// GormProductRepository implements ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) List(ctx context.Context) ([]models.Product, error) {
	products := []models.Product{}
	if err := r.db.WithContext(ctx).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// GetByID returns nil without an error when no product has the given id.
func (r *GormProductRepository) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product %d: %w", id, err)
	}
	return &product, nil
}

func (r *GormProductRepository) Add(ctx context.Context, product *models.Product) error {
	product.ID = 0
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return fmt.Errorf("add product: %w", err)
	}
	return nil
}

// Update rewrites the product in place. It returns ErrProductNotFound when
// the row is gone.
func (r *GormProductRepository) Update(ctx context.Context, product *models.Product) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return replaceRow(tx, product, &models.Product{}, product.ID, ErrProductNotFound, "CustomerProducts")
	})
	if err != nil {
		return fmt.Errorf("update product %d: %w", product.ID, err)
	}
	return nil
}

// Delete removes the product and its customer links. A missing product is
// not an error.
func (r *GormProductRepository) Delete(ctx context.Context, id uint) error {
	product, err := r.GetByID(ctx, id)
	if err != nil || product == nil {
		return err
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&models.CustomerProduct{}).Error; err != nil {
			return err
		}
		return tx.Delete(product).Error
	})
	if err != nil {
		return fmt.Errorf("delete product %d: %w", id, err)
	}
	return nil
}

func (r *GormProductRepository) Exists(ctx context.Context, id uint) (bool, error) {
	ok, err := exists(r.db.WithContext(ctx), &models.Product{}, id)
	if err != nil {
		return false, fmt.Errorf("check product %d: %w", id, err)
	}
	return ok, nil
}

// GetCustomersForProduct lists the customers linked to the product. found
// is false when the product does not exist.
func (r *GormProductRepository) GetCustomersForProduct(ctx context.Context, productID uint) ([]models.Customer, bool, error) {
	db := r.db.WithContext(ctx)
	ok, err := exists(db, &models.Product{}, productID)
	if err != nil {
		return nil, false, fmt.Errorf("get customers for product %d: %w", productID, err)
	}
	if !ok {
		return nil, false, nil
	}

	customers := []models.Customer{}
	err = db.
		Joins("JOIN customer_products ON customer_products.customer_id = customers.id").
		Where("customer_products.product_id = ?", productID).
		Order("customers.id").
		Find(&customers).Error
	if err != nil {
		return nil, false, fmt.Errorf("get customers for product %d: %w", productID, err)
	}
	return customers, true, nil
}

// AddCustomerToProduct is the product-side view of
// CustomerRepository.AddProductToCustomer and writes the same junction row.
func (r *GormProductRepository) AddCustomerToProduct(ctx context.Context, productID, customerID uint) error {
	return linkCustomerProduct(r.db.WithContext(ctx), customerID, productID)
}

func (r *GormProductRepository) RemoveCustomerFromProduct(ctx context.Context, productID, customerID uint) error {
	if err := unlinkCustomerProduct(r.db.WithContext(ctx), customerID, productID); err != nil {
		return fmt.Errorf("remove customer %d from product %d: %w", customerID, productID, err)
	}
	return nil
}
