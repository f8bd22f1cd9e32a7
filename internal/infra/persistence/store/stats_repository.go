package store

import (
	"context"
	"time"

	"aeon/internal/domain/entity"
	"aeon/internal/domain/repository"
	"aeon/internal/infra/persistence/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type statsRepository struct {
	db *gorm.DB
}

// NewStatsRepository is the constructor for statsRepository.
func NewStatsRepository(db *gorm.DB) repository.StatsRepository {
	return &statsRepository{db: db}
}

func (repo *statsRepository) TableCounts(ctx context.Context) (*entity.DashboardStats, error) {
	stats := &entity.DashboardStats{}
	counters := []struct {
		model any
		dest  *int64
	}{
		{&model.ProductModel{}, &stats.Products},
		{&model.BrandModel{}, &stats.Brands},
		{&model.CategoryModel{}, &stats.Categories},
		{&model.CustomerModel{}, &stats.Customers},
		{&model.OrderModel{}, &stats.Orders},
		{&model.UserModel{}, &stats.Users},
	}

	for _, counter := range counters {
		if err := repo.db.WithContext(ctx).Model(counter.model).Count(counter.dest).Error; err != nil {
			return nil, translateError(err, "failed to count rows")
		}
	}

	return stats, nil
}

func (repo *statsRepository) OrdersByStatus(ctx context.Context) ([]entity.StatusCount, error) {
	var rows []entity.StatusCount
	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, translateError(err, "failed to count orders by status")
	}

	return rows, nil
}

func (repo *statsRepository) OrderDatesSince(ctx context.Context, since time.Time) ([]time.Time, error) {
	var dates []time.Time
	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("order_date >= ?", since).
		Order("order_date").
		Pluck("order_date", &dates).Error; err != nil {
		return nil, translateError(err, "failed to list recent order dates")
	}

	return dates, nil
}

func (repo *statsRepository) FulfilledOrders(ctx context.Context, statuses []entity.OrderStatus) ([]repository.DatedAmount, error) {
	var rows []repository.DatedAmount
	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Select("order_date, total_amount").
		Where("status IN ?", statusStrings(statuses)).
		Order("order_date").
		Scan(&rows).Error; err != nil {
		return nil, translateError(err, "failed to list fulfilled orders")
	}

	return rows, nil
}

func (repo *statsRepository) TopProducts(ctx context.Context, statuses []entity.OrderStatus, limit int) ([]entity.ProductSales, error) {
	var rows []entity.ProductSales
	if err := repo.db.WithContext(ctx).
		Table("order_items AS oi").
		Select("p.id, p.name, p.img, SUM(oi.quantity) AS total_sold").
		Joins("JOIN products p ON oi.product_id = p.id").
		Joins("JOIN orders o ON oi.order_id = o.id").
		Where("o.status IN ?", statusStrings(statuses)).
		Group("p.id, p.name, p.img").
		Order("total_sold DESC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, translateError(err, "failed to rank products")
	}

	return rows, nil
}

func (repo *statsRepository) CustomerOrderCounts(ctx context.Context) ([]int64, error) {
	var counts []int64
	if err := repo.db.WithContext(ctx).
		Table("customers AS c").
		Select("COUNT(o.id)").
		Joins("LEFT JOIN orders o ON c.id = o.customer_id").
		Group("c.id").
		Scan(&counts).Error; err != nil {
		return nil, translateError(err, "failed to count orders per customer")
	}

	return counts, nil
}

func (repo *statsRepository) CustomersCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Where("created_at >= ?", since).
		Count(&count).Error; err != nil {
		return 0, translateError(err, "failed to count new customers")
	}

	return count, nil
}

func (repo *statsRepository) ProductsByCategory(ctx context.Context) ([]entity.CategoryCount, error) {
	var rows []entity.CategoryCount
	if err := repo.db.WithContext(ctx).
		Table("categories AS c").
		Select("c.name AS category, COUNT(p.id) AS count").
		Joins("LEFT JOIN products p ON c.id = p.category_id").
		Group("c.id, c.name").
		Order("count DESC").
		Scan(&rows).Error; err != nil {
		return nil, translateError(err, "failed to count products by category")
	}

	return rows, nil
}

func (repo *statsRepository) ProductsByBrand(ctx context.Context, limit int) ([]entity.BrandCount, error) {
	var rows []entity.BrandCount
	if err := repo.db.WithContext(ctx).
		Table("brands AS b").
		Select("b.name AS brand, COUNT(p.id) AS count").
		Joins("LEFT JOIN products p ON b.id = p.brand_id").
		Group("b.id, b.name").
		Order("count DESC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, translateError(err, "failed to count products by brand")
	}

	return rows, nil
}

func (repo *statsRepository) UsersByRole(ctx context.Context) ([]entity.RoleCount, error) {
	var rows []entity.RoleCount
	if err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Select("role, COUNT(*) AS count").
		Group("role").
		Scan(&rows).Error; err != nil {
		return nil, translateError(err, "failed to count users by role")
	}

	return rows, nil
}

func (repo *statsRepository) ProductPrices(ctx context.Context) ([]decimal.Decimal, error) {
	var prices []decimal.Decimal
	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Pluck("price", &prices).Error; err != nil {
		return nil, translateError(err, "failed to list product prices")
	}

	return prices, nil
}

func statusStrings(statuses []entity.OrderStatus) []string {
	out := make([]string, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, string(s))
	}

	return out
}
