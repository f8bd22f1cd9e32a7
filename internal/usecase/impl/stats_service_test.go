package impl

import (
	"context"
	"testing"
	"time"

	"aeon/internal/domain/entity"
	"aeon/internal/domain/repository"
	mockRepo "aeon/internal/mocks/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var statsNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func createTestStatsService(t *testing.T) (*statsService, *mockRepo.MockStatsRepository) {
	statsRepo := mockRepo.NewMockStatsRepository(t)

	return &statsService{
		statsRepo: statsRepo,
		logger:    newDiscardLogger(),
		now:       func() time.Time { return statsNow },
	}, statsRepo
}

func TestStatsService_OrderStats(t *testing.T) {
	srv, statsRepo := createTestStatsService(t)
	ctx := context.Background()

	statsRepo.EXPECT().TableCounts(ctx).Return(&entity.DashboardStats{Orders: 4}, nil)
	statsRepo.EXPECT().OrdersByStatus(ctx).Return([]entity.StatusCount{{Status: "pending", Count: 2}, {Status: "shipped", Count: 2}}, nil)
	statsRepo.EXPECT().OrderDatesSince(ctx, statsNow.Add(-7*24*time.Hour)).Return([]time.Time{
		time.Date(2025, 6, 14, 9, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 14, 18, 0, 0, 0, time.UTC),
	}, nil)
	statsRepo.EXPECT().FulfilledOrders(ctx, fulfilledStatuses).Return([]repository.DatedAmount{
		{OrderDate: time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC), TotalAmount: decimal.RequireFromString("10.50")},
		{OrderDate: time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC), TotalAmount: decimal.RequireFromString("4.50")},
	}, nil)
	statsRepo.EXPECT().TopProducts(ctx, fulfilledStatuses, 5).Return(nil, nil)

	stats, err := srv.OrderStats(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.TotalOrders)
	assert.Equal(t, []entity.DailyCount{{Date: "2025-06-10", Count: 1}, {Date: "2025-06-14", Count: 2}}, stats.RecentOrders)
	assert.True(t, decimal.RequireFromString("15").Equal(stats.TotalSales))
	require.Len(t, stats.SalesByMonth, 1)
	assert.Equal(t, "2025-05", stats.SalesByMonth[0].Month)
	assert.NotNil(t, stats.TopProducts)
	assert.Empty(t, stats.TopProducts)
}

func TestStatsService_OrderStats_RepositoryFailure(t *testing.T) {
	srv, statsRepo := createTestStatsService(t)
	ctx := context.Background()

	statsRepo.EXPECT().TableCounts(ctx).Return(nil, assert.AnError)

	_, err := srv.OrderStats(ctx)

	assert.ErrorIs(t, err, assert.AnError)
	statsRepo.AssertNotCalled(t, "OrdersByStatus", mock.Anything)
}

func TestStatsService_CustomerStats(t *testing.T) {
	srv, statsRepo := createTestStatsService(t)
	ctx := context.Background()

	statsRepo.EXPECT().TableCounts(ctx).Return(&entity.DashboardStats{Customers: 6}, nil)
	statsRepo.EXPECT().CustomersCreatedSince(ctx, statsNow.Add(-30*24*time.Hour)).Return(int64(2), nil)
	statsRepo.EXPECT().CustomerOrderCounts(ctx).Return([]int64{0, 0, 1, 2, 5, 9}, nil)

	stats, err := srv.CustomerStats(ctx)

	require.NoError(t, err)
	assert.Equal(t, &entity.CustomerStats{
		TotalCustomers: 6,
		NewCustomers:   2,
		CustomersByOrderCount: []entity.CategoryCount{
			{Category: "No Orders", Count: 2},
			{Category: "1-2 Orders", Count: 2},
			{Category: "3-5 Orders", Count: 1},
			{Category: "5+ Orders", Count: 1},
		},
	}, stats)
}

func TestStatsService_InventoryStats(t *testing.T) {
	srv, statsRepo := createTestStatsService(t)
	ctx := context.Background()

	statsRepo.EXPECT().ProductPrices(ctx).Return([]decimal.Decimal{
		decimal.RequireFromString("5.00"),
		decimal.RequireFromString("10.00"),
		decimal.RequireFromString("120.00"),
	}, nil)

	stats, err := srv.InventoryStats(ctx)

	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(13500).Equal(stats.TotalValue), "got %s", stats.TotalValue)
	assert.Equal(t, int64(1), stats.LowStockProducts)
	assert.Equal(t, []entity.PriceRangeCount{
		{PriceRange: "Under $10", Count: 1},
		{PriceRange: "$10-$50", Count: 1},
		{PriceRange: "Over $100", Count: 1},
	}, stats.ProductsByPriceRange)
}

func TestStatsService_DashboardStats(t *testing.T) {
	srv, statsRepo := createTestStatsService(t)
	ctx := context.Background()
	counts := &entity.DashboardStats{Products: 3, Brands: 2, Categories: 2, Customers: 5, Orders: 7, Users: 2}

	statsRepo.EXPECT().TableCounts(ctx).Return(counts, nil)

	stats, err := srv.DashboardStats(ctx)

	require.NoError(t, err)
	assert.Equal(t, counts, stats)
}

func TestPriceBand(t *testing.T) {
	tests := []struct {
		price string
		want  string
	}{
		{"0", "Under $10"},
		{"9.99", "Under $10"},
		{"10", "$10-$50"},
		{"50", "$10-$50"},
		{"50.01", "$50-$100"},
		{"100", "$50-$100"},
		{"100.01", "Over $100"},
	}

	for _, tt := range tests {
		t.Run(tt.price, func(t *testing.T) {
			assert.Equal(t, tt.want, priceBand(decimal.RequireFromString(tt.price)))
		})
	}
}

func TestSalesByMonth_KeepsFirstMonthsAscending(t *testing.T) {
	var orders []repository.DatedAmount
	for month := time.December; month >= time.January; month-- {
		orders = append(orders, repository.DatedAmount{
			OrderDate:   time.Date(2024, month, 1, 0, 0, 0, 0, time.UTC),
			TotalAmount: decimal.NewFromInt(int64(month)),
		})
	}

	got := salesByMonth(orders, time.UTC, 6)

	require.Len(t, got, 6)
	assert.Equal(t, "2024-01", got[0].Month)
	assert.Equal(t, "2024-06", got[5].Month)
	assert.True(t, decimal.NewFromInt(6).Equal(got[5].Sales))
}

func TestCountByDay_UsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*60*60)
	dates := []time.Time{time.Date(2025, 6, 14, 20, 0, 0, 0, time.UTC)}

	got := countByDay(dates, loc)

	assert.Equal(t, []entity.DailyCount{{Date: "2025-06-15", Count: 1}}, got)
}

func TestBandOrderCounts_OmitsEmptyBands(t *testing.T) {
	got := bandOrderCounts([]int64{3, 4})

	assert.Equal(t, []entity.CategoryCount{{Category: "3-5 Orders", Count: 2}}, got)
}
