package repository

import (
	"context"
	"time"

	"aeon/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// DatedAmount is one order's date and total, used for date bucketing outside the store.
type DatedAmount struct {
	OrderDate   time.Time
	TotalAmount decimal.Decimal
}

// StatsRepository exposes the raw aggregates behind the reports.
// Date and price bucketing happens in the caller so queries stay portable across drivers.
type StatsRepository interface {
	// TableCounts returns the row count of every main table.
	TableCounts(ctx context.Context) (*entity.DashboardStats, error)

	OrdersByStatus(ctx context.Context) ([]entity.StatusCount, error)

	// OrderDatesSince returns the order_date of every order placed at or after since.
	OrderDatesSince(ctx context.Context, since time.Time) ([]time.Time, error)

	// FulfilledOrders returns date and total of every order in one of statuses.
	FulfilledOrders(ctx context.Context, statuses []entity.OrderStatus) ([]DatedAmount, error)

	// TopProducts returns the best sellers among orders in one of statuses.
	TopProducts(ctx context.Context, statuses []entity.OrderStatus, limit int) ([]entity.ProductSales, error)

	// CustomerOrderCounts returns the number of orders of each customer, zero included.
	CustomerOrderCounts(ctx context.Context) ([]int64, error)

	CustomersCreatedSince(ctx context.Context, since time.Time) (int64, error)

	ProductsByCategory(ctx context.Context) ([]entity.CategoryCount, error)
	ProductsByBrand(ctx context.Context, limit int) ([]entity.BrandCount, error)
	UsersByRole(ctx context.Context) ([]entity.RoleCount, error)

	// ProductPrices returns the price of every product.
	ProductPrices(ctx context.Context) ([]decimal.Decimal, error)
}
