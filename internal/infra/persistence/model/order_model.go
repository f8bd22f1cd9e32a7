package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderModel is the GORM-specific struct for the 'orders' table.
type OrderModel struct {
	ID              uint            `gorm:"primaryKey"`
	CustomerID      uint            `gorm:"not null;index"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Status          string          `gorm:"type:varchar(20);not null;default:pending"`
	OrderDate       time.Time       `gorm:"autoCreateTime"`
	PaymentMethodID *uint           `gorm:"index"`
}

func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel is the GORM-specific struct for the 'order_items' table.
type OrderItemModel struct {
	ID        uint            `gorm:"primaryKey"`
	OrderID   uint            `gorm:"not null;index"`
	ProductID uint            `gorm:"not null;index"`
	Quantity  int             `gorm:"not null"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
}

func (OrderItemModel) TableName() string {
	return "order_items"
}

// PaymentMethodModel is the GORM-specific struct for the 'payment_methods' table.
type PaymentMethodModel struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"type:varchar(50);not null;uniqueIndex"`
	Description string `gorm:"type:text"`
	IsActive    bool   `gorm:"not null;default:true"`
	CreatedAt   time.Time
}

func (PaymentMethodModel) TableName() string {
	return "payment_methods"
}

// All lists every table model in creation order.
func All() []any {
	return []any{
		&BrandModel{},
		&CategoryModel{},
		&ProductModel{},
		&ProductDetailModel{},
		&CustomerModel{},
		&UserModel{},
		&PaymentMethodModel{},
		&OrderModel{},
		&OrderItemModel{},
	}
}
