package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/yeremiapane/storefront-api/models"
	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

func (r *GormOrderRepository) List(ctx context.Context) ([]models.Order, error) {
	orders := []models.Order{}
	if err := r.db.WithContext(ctx).Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// GetByID returns nil without an error when no order has the given id.
func (r *GormOrderRepository) GetByID(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	if err := r.db.WithContext(ctx).First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order %d: %w", id, err)
	}
	return &order, nil
}

// Add inserts the order after checking that its customer exists. The
// generated id is written back into order.
func (r *GormOrderRepository) Add(ctx context.Context, order *models.Order) error {
	order.ID = 0
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireCustomer(tx, order.CustomerID); err != nil {
			return err
		}
		return tx.Omit("Customer").Create(order).Error
	})
	if err != nil {
		return fmt.Errorf("add order: %w", err)
	}
	return nil
}

// Update rewrites the whole order. The customer it points at must exist,
// and ErrOrderNotFound is returned when the order itself is gone.
func (r *GormOrderRepository) Update(ctx context.Context, order *models.Order) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireCustomer(tx, order.CustomerID); err != nil {
			return err
		}
		return replaceRow(tx, order, &models.Order{}, order.ID, ErrOrderNotFound, "Customer")
	})
	if err != nil {
		return fmt.Errorf("update order %d: %w", order.ID, err)
	}
	return nil
}

// Delete removes the order; a missing order is not an error.
func (r *GormOrderRepository) Delete(ctx context.Context, id uint) error {
	order, err := r.GetByID(ctx, id)
	if err != nil || order == nil {
		return err
	}
	if err := r.db.WithContext(ctx).Delete(order).Error; err != nil {
		return fmt.Errorf("delete order %d: %w", id, err)
	}
	return nil
}

func (r *GormOrderRepository) Exists(ctx context.Context, id uint) (bool, error) {
	ok, err := exists(r.db.WithContext(ctx), &models.Order{}, id)
	if err != nil {
		return false, fmt.Errorf("check order %d: %w", id, err)
	}
	return ok, nil
}

func requireCustomer(tx *gorm.DB, customerID uint) error {
	ok, err := exists(tx, &models.Customer{}, customerID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("customer %d: %w", customerID, ErrCustomerNotFound)
	}
	return nil
}
