package repository

import (
	"context"

	"aeon/internal/domain/entity"
)

// OrderRepository defines the interface for order and order item persistence.
type OrderRepository interface {
	// List returns all order headers with customer_name, newest first.
	List(ctx context.Context) ([]*entity.Order, error)

	// ListByCustomer returns the headers of one customer, latest order_date first.
	ListByCustomer(ctx context.Context, customerID uint) ([]*entity.Order, error)

	// FindByID returns the header with customer contact and items with product names.
	FindByID(ctx context.Context, id uint) (*entity.Order, error)

	// Create inserts the header and fills its ID and OrderDate. Items are not touched.
	Create(ctx context.Context, order *entity.Order) error

	// CreateItem inserts a single order line and fills its ID.
	CreateItem(ctx context.Context, item *entity.OrderItem) error

	// Update overwrites customer_id, total_amount and status.
	Update(ctx context.Context, order *entity.Order) error

	// DeleteItems removes every line of an order and returns how many were removed.
	DeleteItems(ctx context.Context, orderID uint) (int64, error)

	// Delete removes the header. It returns errors.ErrOrderNotFound when nothing matched.
	Delete(ctx context.Context, id uint) error
}
