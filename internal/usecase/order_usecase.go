package usecase

import (
	"context"

	"aeon/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// --- Input DTOs ---

// OrderItemInput is one requested order line.
type OrderItemInput struct {
	ProductID uint
	Quantity  int
	Price     decimal.Decimal
}

// CreateOrderInput defines an order to be placed. An empty Status means pending.
type CreateOrderInput struct {
	CustomerID      uint
	TotalAmount     decimal.Decimal
	Status          entity.OrderStatus
	PaymentMethodID *uint
	Items           []OrderItemInput
}

// UpdateOrderInput overwrites the header fields of an existing order.
type UpdateOrderInput struct {
	CustomerID  uint
	TotalAmount decimal.Decimal
	Status      entity.OrderStatus
}

// OrderUsecase defines the order workflow.
type OrderUsecase interface {
	// CreateOrder stores the header and all items atomically and returns the joined order.
	CreateOrder(ctx context.Context, input CreateOrderInput) (*entity.Order, error)
	ListOrders(ctx context.Context) ([]*entity.Order, error)
	ListCustomerOrders(ctx context.Context, customerID uint) ([]*entity.Order, error)
	GetOrder(ctx context.Context, id uint) (*entity.Order, error)
	UpdateOrder(ctx context.Context, id uint, input UpdateOrderInput) (*entity.Order, error)
	// DeleteOrder removes the items and then the header in one transaction.
	DeleteOrder(ctx context.Context, id uint) error
}
