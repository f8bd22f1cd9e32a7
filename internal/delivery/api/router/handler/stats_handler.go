package handler

import (
	"context"

	"aeon/internal/delivery/api/response"
	"aeon/internal/usecase"

	"github.com/labstack/echo/v4"
)

// StatsHandler serves the dashboard reports.
type StatsHandler struct {
	statsUC usecase.StatsUsecase
}

// NewStatsHandler creates a new StatsHandler instance
func NewStatsHandler(statsUC usecase.StatsUsecase) *StatsHandler {
	return &StatsHandler{statsUC: statsUC}
}

// report adapts one stats query into a handler.
func report[T any](query func(ctx context.Context) (T, error)) echo.HandlerFunc {
	return func(c echo.Context) error {
		stats, err := query(c.Request().Context())
		if err != nil {
			return err
		}

		return response.OK(c, stats)
	}
}

func (h *StatsHandler) Orders() echo.HandlerFunc    { return report(h.statsUC.OrderStats) }
func (h *StatsHandler) Customers() echo.HandlerFunc { return report(h.statsUC.CustomerStats) }
func (h *StatsHandler) Products() echo.HandlerFunc  { return report(h.statsUC.ProductStats) }
func (h *StatsHandler) Users() echo.HandlerFunc     { return report(h.statsUC.UserStats) }
func (h *StatsHandler) Inventory() echo.HandlerFunc { return report(h.statsUC.InventoryStats) }
func (h *StatsHandler) Dashboard() echo.HandlerFunc { return report(h.statsUC.DashboardStats) }
