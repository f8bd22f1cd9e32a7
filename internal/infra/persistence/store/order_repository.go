package store

import (
	"context"
	"time"

	"aeon/internal/domain/entity"
	domainerrors "aeon/internal/domain/errors"
	"aeon/internal/domain/repository"
	"aeon/internal/infra/persistence/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// orderRow is the joined order header read view.
type orderRow struct {
	ID              uint
	CustomerID      uint
	TotalAmount     decimal.Decimal
	Status          string
	OrderDate       time.Time
	PaymentMethodID *uint
	CustomerName    *string
	Email           *string
	Phone           *string
	Address         *string
}

// orderItemRow is the joined order line read view.
type orderItemRow struct {
	ID          uint
	OrderID     uint
	ProductID   uint
	ProductName *string
	Quantity    int
	Price       decimal.Decimal
}

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

func (repo *orderRepository) List(ctx context.Context) ([]*entity.Order, error) {
	var rows []orderRow
	if err := repo.db.WithContext(ctx).
		Table("orders AS o").
		Select("o.id, o.customer_id, c.name AS customer_name, o.total_amount, o.status, o.order_date, o.payment_method_id").
		Joins("LEFT JOIN customers c ON o.customer_id = c.id").
		Order("o.id DESC").
		Scan(&rows).Error; err != nil {
		return nil, translateError(err, "failed to list orders")
	}

	return toOrders(rows), nil
}

func (repo *orderRepository) ListByCustomer(ctx context.Context, customerID uint) ([]*entity.Order, error) {
	var rows []orderRow
	if err := repo.db.WithContext(ctx).
		Table("orders AS o").
		Select("o.id, o.customer_id, o.total_amount, o.status, o.order_date, o.payment_method_id").
		Where("o.customer_id = ?", customerID).
		Order("o.order_date DESC").
		Scan(&rows).Error; err != nil {
		return nil, translateError(err, "failed to list customer orders")
	}

	return toOrders(rows), nil
}

func (repo *orderRepository) FindByID(ctx context.Context, id uint) (*entity.Order, error) {
	var rows []orderRow
	if err := repo.db.WithContext(ctx).
		Table("orders AS o").
		Select("o.id, o.customer_id, c.name AS customer_name, c.email, c.phone, c.address, " +
			"o.total_amount, o.status, o.order_date, o.payment_method_id").
		Joins("LEFT JOIN customers c ON o.customer_id = c.id").
		Where("o.id = ?", id).
		Limit(1).
		Scan(&rows).Error; err != nil {
		return nil, translateError(err, "failed to find order")
	}
	if len(rows) == 0 {
		return nil, domainerrors.ErrOrderNotFound
	}

	var items []orderItemRow
	if err := repo.db.WithContext(ctx).
		Table("order_items AS oi").
		Select("oi.id, oi.order_id, oi.product_id, p.name AS product_name, oi.quantity, oi.price").
		Joins("LEFT JOIN products p ON oi.product_id = p.id").
		Where("oi.order_id = ?", id).
		Order("oi.id").
		Scan(&items).Error; err != nil {
		return nil, translateError(err, "failed to list order items")
	}

	order := toOrder(rows[0])
	order.Items = make([]entity.OrderItem, 0, len(items))
	for _, item := range items {
		order.Items = append(order.Items, entity.OrderItem{
			ID:          item.ID,
			OrderID:     item.OrderID,
			ProductID:   item.ProductID,
			Quantity:    item.Quantity,
			Price:       item.Price,
			ProductName: item.ProductName,
		})
	}

	return order, nil
}

func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	row := &model.OrderModel{
		CustomerID:      order.CustomerID,
		TotalAmount:     order.TotalAmount,
		Status:          string(order.Status),
		PaymentMethodID: order.PaymentMethodID,
	}
	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		return translateError(err, "failed to create order")
	}

	order.ID = row.ID
	order.OrderDate = row.OrderDate

	return nil
}

func (repo *orderRepository) CreateItem(ctx context.Context, item *entity.OrderItem) error {
	row := &model.OrderItemModel{
		OrderID:   item.OrderID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
		Price:     item.Price,
	}
	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		return translateError(err, "failed to create order item")
	}
	item.ID = row.ID

	return nil
}

func (repo *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", order.ID).
		Updates(map[string]any{
			"customer_id":  order.CustomerID,
			"total_amount": order.TotalAmount,
			"status":       string(order.Status),
		})
	if result.Error != nil {
		return translateError(result.Error, "failed to update order")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrOrderNotFound
	}

	return nil
}

func (repo *orderRepository) DeleteItems(ctx context.Context, orderID uint) (int64, error) {
	result := repo.db.WithContext(ctx).Where("order_id = ?", orderID).Delete(&model.OrderItemModel{})
	if result.Error != nil {
		return 0, translateError(result.Error, "failed to delete order items")
	}

	return result.RowsAffected, nil
}

func (repo *orderRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.OrderModel{})
	if result.Error != nil {
		return translateError(result.Error, "failed to delete order")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrOrderNotFound
	}

	return nil
}

func toOrders(rows []orderRow) []*entity.Order {
	orders := make([]*entity.Order, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, toOrder(row))
	}

	return orders
}

func toOrder(row orderRow) *entity.Order {
	return &entity.Order{
		ID:              row.ID,
		CustomerID:      row.CustomerID,
		TotalAmount:     row.TotalAmount,
		Status:          entity.OrderStatus(row.Status),
		OrderDate:       row.OrderDate,
		PaymentMethodID: row.PaymentMethodID,
		CustomerName:    row.CustomerName,
		CustomerEmail:   row.Email,
		CustomerPhone:   row.Phone,
		CustomerAddress: row.Address,
	}
}
