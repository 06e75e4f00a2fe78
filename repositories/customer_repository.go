package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/yeremiapane/storefront-api/models"
	"gorm.io/gorm"
)

// GormCustomerRepository implements CustomerRepository using GORM
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GormCustomerRepository
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

func (r *GormCustomerRepository) List(ctx context.Context) ([]models.Customer, error) {
	customers := []models.Customer{}
	if err := r.db.WithContext(ctx).Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return customers, nil
}

// GetByID returns nil without an error when no customer has the given id.
func (r *GormCustomerRepository) GetByID(ctx context.Context, id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.WithContext(ctx).First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer %d: %w", id, err)
	}
	return &customer, nil
}

// Add inserts the customer and writes the generated id back into it.
func (r *GormCustomerRepository) Add(ctx context.Context, customer *models.Customer) error {
	customer.ID = 0
	if err := r.db.WithContext(ctx).Create(customer).Error; err != nil {
		return fmt.Errorf("add customer: %w", err)
	}
	return nil
}

// Update rewrites every column of an already loaded and merged customer.
// It returns ErrCustomerNotFound when the row is gone.
func (r *GormCustomerRepository) Update(ctx context.Context, customer *models.Customer) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return replaceRow(tx, customer, &models.Customer{}, customer.ID, ErrCustomerNotFound,
			"Orders", "CustomerProducts")
	})
	if err != nil {
		return fmt.Errorf("update customer %d: %w", customer.ID, err)
	}
	return nil
}

// Delete removes the customer together with its orders and product links.
// A missing customer is not an error.
func (r *GormCustomerRepository) Delete(ctx context.Context, id uint) error {
	customer, err := r.GetByID(ctx, id)
	if err != nil || customer == nil {
		return err
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("customer_id = ?", id).Delete(&models.CustomerProduct{}).Error; err != nil {
			return err
		}
		if err := tx.Where("customer_id = ?", id).Delete(&models.Order{}).Error; err != nil {
			return err
		}
		return tx.Delete(customer).Error
	})
	if err != nil {
		return fmt.Errorf("delete customer %d: %w", id, err)
	}
	return nil
}

func (r *GormCustomerRepository) Exists(ctx context.Context, id uint) (bool, error) {
	ok, err := exists(r.db.WithContext(ctx), &models.Customer{}, id)
	if err != nil {
		return false, fmt.Errorf("check customer %d: %w", id, err)
	}
	return ok, nil
}

// GetOrdersForCustomer loads the customer with its orders. found is false
// when the customer does not exist; a customer without orders yields an
// empty slice.
func (r *GormCustomerRepository) GetOrdersForCustomer(ctx context.Context, customerID uint) ([]models.Order, bool, error) {
	var customer models.Customer
	err := r.db.WithContext(ctx).Preload("Orders").First(&customer, customerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get orders for customer %d: %w", customerID, err)
	}
	if customer.Orders == nil {
		customer.Orders = []models.Order{}
	}
	return customer.Orders, true, nil
}

// GetProductsForCustomer lists the products linked to the customer. found
// is false when the customer does not exist.
func (r *GormCustomerRepository) GetProductsForCustomer(ctx context.Context, customerID uint) ([]models.Product, bool, error) {
	db := r.db.WithContext(ctx)
	ok, err := exists(db, &models.Customer{}, customerID)
	if err != nil {
		return nil, false, fmt.Errorf("get products for customer %d: %w", customerID, err)
	}
	if !ok {
		return nil, false, nil
	}

	products := []models.Product{}
	err = db.
		Joins("JOIN customer_products ON customer_products.product_id = products.id").
		Where("customer_products.customer_id = ?", customerID).
		Order("products.id").
		Find(&products).Error
	if err != nil {
		return nil, false, fmt.Errorf("get products for customer %d: %w", customerID, err)
	}
	return products, true, nil
}

// AddProductToCustomer links the product to the customer. It returns
// ErrCustomerNotFound or ErrProductNotFound when either side is missing.
// Linking an already linked pair succeeds without a second row.
func (r *GormCustomerRepository) AddProductToCustomer(ctx context.Context, customerID, productID uint) error {
	return linkCustomerProduct(r.db.WithContext(ctx), customerID, productID)
}

func (r *GormCustomerRepository) RemoveProductFromCustomer(ctx context.Context, customerID, productID uint) error {
	if err := unlinkCustomerProduct(r.db.WithContext(ctx), customerID, productID); err != nil {
		return fmt.Errorf("remove product %d from customer %d: %w", productID, customerID, err)
	}
	return nil
}
