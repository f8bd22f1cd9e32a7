package usecase

import (
	"context"

	"aeon/internal/domain/entity"
)

// StatsUsecase builds the admin dashboard reports.
type StatsUsecase interface {
	OrderStats(ctx context.Context) (*entity.OrderStats, error)
	CustomerStats(ctx context.Context) (*entity.CustomerStats, error)
	ProductStats(ctx context.Context) (*entity.ProductStats, error)
	UserStats(ctx context.Context) (*entity.UserStats, error)
	InventoryStats(ctx context.Context) (*entity.InventoryStats, error)
	DashboardStats(ctx context.Context) (*entity.DashboardStats, error)
}
