package entity

import "github.com/shopspring/decimal"

// StatusCount is the number of orders in one status.
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// DailyCount is the number of orders placed on one calendar day (YYYY-MM-DD).
type DailyCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// MonthlySales is the order total of one calendar month (YYYY-MM).
type MonthlySales struct {
	Month string          `json:"month"`
	Sales decimal.Decimal `json:"sales"`
}

// ProductSales is the units sold of one product.
type ProductSales struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Img       string `json:"img"`
	TotalSold int64  `json:"totalSold"`
}

// OrderStats is the order report.
type OrderStats struct {
	TotalOrders    int64           `json:"totalOrders"`
	OrdersByStatus []StatusCount   `json:"ordersByStatus"`
	RecentOrders   []DailyCount    `json:"recentOrders"`
	TotalSales     decimal.Decimal `json:"totalSales"`
	TopProducts    []ProductSales  `json:"topProducts"`
	SalesByMonth   []MonthlySales  `json:"salesByMonth"`
}

// CategoryCount is a labelled counter for customer order bands and product categories.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

// CustomerStats is the customer report.
type CustomerStats struct {
	TotalCustomers        int64           `json:"totalCustomers"`
	NewCustomers          int64           `json:"newCustomers"`
	CustomersByOrderCount []CategoryCount `json:"customersByOrderCount"`
}

// BrandCount is the number of products of one brand.
type BrandCount struct {
	Brand string `json:"brand"`
	Count int64  `json:"count"`
}

// ProductStats is the catalog report.
type ProductStats struct {
	TotalProducts      int64           `json:"totalProducts"`
	ProductsByCategory []CategoryCount `json:"productsByCategory"`
	ProductsByBrand    []BrandCount    `json:"productsByBrand"`
}

// RoleCount is the number of users holding one role.
type RoleCount struct {
	Role  string `json:"role"`
	Count int64  `json:"count"`
}

// UserStats is the account report.
type UserStats struct {
	TotalUsers  int64       `json:"totalUsers"`
	UsersByRole []RoleCount `json:"usersByRole"`
}

// PriceRangeCount is the number of products in one price band.
type PriceRangeCount struct {
	PriceRange string `json:"priceRange"`
	Count      int64  `json:"count"`
}

// InventoryStats is the stock value report. Stock is assumed to be 100 units per product.
type InventoryStats struct {
	TotalValue           decimal.Decimal   `json:"totalValue"`
	ProductsByPriceRange []PriceRangeCount `json:"productsByPriceRange"`
	LowStockProducts     int64             `json:"lowStockProducts"`
}

// DashboardStats holds the row counts of the main tables.
type DashboardStats struct {
	Products   int64 `json:"products"`
	Brands     int64 `json:"brands"`
	Categories int64 `json:"categories"`
	Customers  int64 `json:"customers"`
	Orders     int64 `json:"orders"`
	Users      int64 `json:"users"`
}
