package impl

import (
	"context"
	"log/slog"
	"slices"
	"time"

	deliverycontext "aeon/internal/delivery/context"
	"aeon/internal/domain/entity"
	"aeon/internal/domain/repository"
	"aeon/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const (
	recentOrdersWindow   = 7 * 24 * time.Hour
	newCustomersWindow   = 30 * 24 * time.Hour
	salesByMonthLimit    = 6
	topProductsLimit     = 5
	productsByBrandLimit = 5
	assumedUnitsInStock  = 100
)

var (
	fulfilledStatuses = []entity.OrderStatus{entity.OrderStatusShipped, entity.OrderStatusDelivered}

	lowPriceThreshold = decimal.NewFromInt(10)
	midPriceThreshold = decimal.NewFromInt(50)
	topPriceThreshold = decimal.NewFromInt(100)
)

// Bands in report order.
var (
	orderCountBands = []string{"No Orders", "1-2 Orders", "3-5 Orders", "5+ Orders"}
	priceBands      = []string{"Under $10", "$10-$50", "$50-$100", "Over $100"}
)

// statsService implements the StatsUsecase interface.
type statsService struct {
	statsRepo repository.StatsRepository
	logger    *slog.Logger
	now       func() time.Time
}

// StatsServiceParams holds dependencies for StatsService, injected by Fx.
type StatsServiceParams struct {
	fx.In

	StatsRepo repository.StatsRepository
	Logger    *slog.Logger
}

// NewStatsService is the constructor for statsService.
func NewStatsService(params StatsServiceParams) usecase.StatsUsecase {
	return &statsService{
		statsRepo: params.StatsRepo,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *statsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *statsService) OrderStats(ctx context.Context) (*entity.OrderStats, error) {
	counts, err := srv.statsRepo.TableCounts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count orders")
	}

	byStatus, err := srv.statsRepo.OrdersByStatus(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to group orders by status")
	}

	now := srv.now()
	dates, err := srv.statsRepo.OrderDatesSince(ctx, now.Add(-recentOrdersWindow))
	if err != nil {
		return nil, errors.Wrap(err, "failed to load recent orders")
	}

	fulfilled, err := srv.statsRepo.FulfilledOrders(ctx, fulfilledStatuses)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load fulfilled orders")
	}

	top, err := srv.statsRepo.TopProducts(ctx, fulfilledStatuses, topProductsLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load top products")
	}

	stats := &entity.OrderStats{
		TotalOrders:    counts.Orders,
		OrdersByStatus: nonNil(byStatus),
		RecentOrders:   countByDay(dates, now.Location()),
		TotalSales:     sumAmounts(fulfilled),
		TopProducts:    nonNil(top),
		SalesByMonth:   salesByMonth(fulfilled, now.Location(), salesByMonthLimit),
	}

	srv.log(ctx).Debug("Order stats computed", slog.Int64("total_orders", stats.TotalOrders))

	return stats, nil
}

func (srv *statsService) CustomerStats(ctx context.Context) (*entity.CustomerStats, error) {
	counts, err := srv.statsRepo.TableCounts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count customers")
	}

	newCustomers, err := srv.statsRepo.CustomersCreatedSince(ctx, srv.now().Add(-newCustomersWindow))
	if err != nil {
		return nil, errors.Wrap(err, "failed to count new customers")
	}

	orderCounts, err := srv.statsRepo.CustomerOrderCounts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count orders per customer")
	}

	return &entity.CustomerStats{
		TotalCustomers:        counts.Customers,
		NewCustomers:          newCustomers,
		CustomersByOrderCount: bandOrderCounts(orderCounts),
	}, nil
}

func (srv *statsService) ProductStats(ctx context.Context) (*entity.ProductStats, error) {
	counts, err := srv.statsRepo.TableCounts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count products")
	}

	byCategory, err := srv.statsRepo.ProductsByCategory(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to group products by category")
	}

	byBrand, err := srv.statsRepo.ProductsByBrand(ctx, productsByBrandLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to group products by brand")
	}

	return &entity.ProductStats{
		TotalProducts:      counts.Products,
		ProductsByCategory: nonNil(byCategory),
		ProductsByBrand:    nonNil(byBrand),
	}, nil
}

func (srv *statsService) UserStats(ctx context.Context) (*entity.UserStats, error) {
	counts, err := srv.statsRepo.TableCounts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count users")
	}

	byRole, err := srv.statsRepo.UsersByRole(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to group users by role")
	}

	return &entity.UserStats{
		TotalUsers:  counts.Users,
		UsersByRole: nonNil(byRole),
	}, nil
}

func (srv *statsService) InventoryStats(ctx context.Context) (*entity.InventoryStats, error) {
	prices, err := srv.statsRepo.ProductPrices(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load product prices")
	}

	units := decimal.NewFromInt(assumedUnitsInStock)
	total := decimal.Zero
	var lowStock int64
	for _, price := range prices {
		total = total.Add(price.Mul(units))
		if price.LessThan(lowPriceThreshold) {
			lowStock++
		}
	}

	return &entity.InventoryStats{
		TotalValue:           total,
		ProductsByPriceRange: bandPrices(prices),
		LowStockProducts:     lowStock,
	}, nil
}

func (srv *statsService) DashboardStats(ctx context.Context) (*entity.DashboardStats, error) {
	counts, err := srv.statsRepo.TableCounts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count tables")
	}

	return counts, nil
}

// countByDay groups timestamps by local calendar day, oldest first.
func countByDay(dates []time.Time, loc *time.Location) []entity.DailyCount {
	counts := map[string]int64{}
	for _, d := range dates {
		counts[d.In(loc).Format(time.DateOnly)]++
	}

	days := make([]string, 0, len(counts))
	for day := range counts {
		days = append(days, day)
	}
	slices.Sort(days)

	result := make([]entity.DailyCount, 0, len(days))
	for _, day := range days {
		result = append(result, entity.DailyCount{Date: day, Count: counts[day]})
	}

	return result
}

// salesByMonth sums totals per YYYY-MM and keeps the first limit months in ascending order.
func salesByMonth(orders []repository.DatedAmount, loc *time.Location, limit int) []entity.MonthlySales {
	sums := map[string]decimal.Decimal{}
	for _, o := range orders {
		month := o.OrderDate.In(loc).Format("2006-01")
		sums[month] = sums[month].Add(o.TotalAmount)
	}

	months := make([]string, 0, len(sums))
	for month := range sums {
		months = append(months, month)
	}
	slices.Sort(months)
	if len(months) > limit {
		months = months[:limit]
	}

	result := make([]entity.MonthlySales, 0, len(months))
	for _, month := range months {
		result = append(result, entity.MonthlySales{Month: month, Sales: sums[month]})
	}

	return result
}

func sumAmounts(orders []repository.DatedAmount) decimal.Decimal {
	total := decimal.Zero
	for _, o := range orders {
		total = total.Add(o.TotalAmount)
	}

	return total
}

func orderCountBand(n int64) string {
	switch {
	case n == 0:
		return orderCountBands[0]
	case n <= 2:
		return orderCountBands[1]
	case n <= 5:
		return orderCountBands[2]
	default:
		return orderCountBands[3]
	}
}

func bandOrderCounts(orderCounts []int64) []entity.CategoryCount {
	counts := map[string]int64{}
	for _, n := range orderCounts {
		counts[orderCountBand(n)]++
	}

	return collectBands(orderCountBands, counts, func(band string, count int64) entity.CategoryCount {
		return entity.CategoryCount{Category: band, Count: count}
	})
}

// priceBand treats both bounds of the middle bands as inclusive; the lower band wins a tie.
func priceBand(price decimal.Decimal) string {
	switch {
	case price.LessThan(lowPriceThreshold):
		return priceBands[0]
	case price.LessThanOrEqual(midPriceThreshold):
		return priceBands[1]
	case price.LessThanOrEqual(topPriceThreshold):
		return priceBands[2]
	default:
		return priceBands[3]
	}
}

func bandPrices(prices []decimal.Decimal) []entity.PriceRangeCount {
	counts := map[string]int64{}
	for _, p := range prices {
		counts[priceBand(p)]++
	}

	return collectBands(priceBands, counts, func(band string, count int64) entity.PriceRangeCount {
		return entity.PriceRangeCount{PriceRange: band, Count: count}
	})
}

// collectBands emits non-empty bands in their declared order.
func collectBands[T any](bands []string, counts map[string]int64, build func(string, int64) T) []T {
	result := make([]T, 0, len(bands))
	for _, band := range bands {
		if count := counts[band]; count > 0 {
			result = append(result, build(band, count))
		}
	}

	return result
}

// nonNil keeps empty reports serialized as [] instead of null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}

	return s
}
