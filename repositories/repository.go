// Package repositories is the only code that talks to the database. Each
// repository wraps a *gorm.DB handed to its constructor and every method
// runs as its own unit of work.
//
// Lookups that miss are reported as values, never as errors: GetByID
// returns a nil entity, Exists returns false and the relationship lists
// return found == false when the owning row does not exist. Update is the
// exception: it only rewrites an existing row, and reports a row deleted
// since it was loaded with the entity's not-found error.
package repositories

import (
	"context"
	"errors"

	"github.com/yeremiapane/storefront-api/models"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrOrderNotFound    = errors.New("order not found")
)

type CustomerRepository interface {
	List(ctx context.Context) ([]models.Customer, error)
	GetByID(ctx context.Context, id uint) (*models.Customer, error)
	Add(ctx context.Context, customer *models.Customer) error
	Update(ctx context.Context, customer *models.Customer) error
	Delete(ctx context.Context, id uint) error
	Exists(ctx context.Context, id uint) (bool, error)

	GetOrdersForCustomer(ctx context.Context, customerID uint) ([]models.Order, bool, error)
	GetProductsForCustomer(ctx context.Context, customerID uint) ([]models.Product, bool, error)
	AddProductToCustomer(ctx context.Context, customerID, productID uint) error
	RemoveProductFromCustomer(ctx context.Context, customerID, productID uint) error
}

type OrderRepository interface {
	List(ctx context.Context) ([]models.Order, error)
	GetByID(ctx context.Context, id uint) (*models.Order, error)
	Add(ctx context.Context, order *models.Order) error
	Update(ctx context.Context, order *models.Order) error
	Delete(ctx context.Context, id uint) error
	Exists(ctx context.Context, id uint) (bool, error)
}

type ProductRepository interface {
	List(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id uint) (*models.Product, error)
	Add(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id uint) error
	Exists(ctx context.Context, id uint) (bool, error)

	GetCustomersForProduct(ctx context.Context, productID uint) ([]models.Customer, bool, error)
	AddCustomerToProduct(ctx context.Context, productID, customerID uint) error
	RemoveCustomerFromProduct(ctx context.Context, productID, customerID uint) error
}
