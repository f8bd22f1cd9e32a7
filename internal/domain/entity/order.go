package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// IsValid checks if the status is one of the known values.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// Order is an order header. Customer contact fields and Items are filled on read views.
type Order struct {
	ID              uint            `json:"id"`
	CustomerID      uint            `json:"customer_id"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	Status          OrderStatus     `json:"status"`
	OrderDate       time.Time       `json:"order_date"`
	PaymentMethodID *uint           `json:"payment_method_id"`

	CustomerName    *string `json:"customer_name,omitempty"`
	CustomerEmail   *string `json:"email,omitempty"`
	CustomerPhone   *string `json:"phone,omitempty"`
	CustomerAddress *string `json:"address,omitempty"`

	// Items is nil on list views and omitted there; read views always set it.
	Items []OrderItem `json:"items,omitzero"`
}

// OrderItem is one order line. Price is the unit price captured when the order was placed.
type OrderItem struct {
	ID          uint            `json:"id"`
	OrderID     uint            `json:"order_id"`
	ProductID   uint            `json:"product_id"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	ProductName *string         `json:"product_name,omitempty"`
}
