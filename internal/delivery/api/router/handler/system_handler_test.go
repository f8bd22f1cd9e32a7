package handler

import (
	"net/http"
	"testing"

	"aeon/internal/domain/entity"
	domainerrors "aeon/internal/domain/errors"
	mockUC "aeon/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSystemHandler_Health(t *testing.T) {
	healthUC := mockUC.NewMockHealthUsecase(t)
	h := NewSystemHandler(healthUC, mockUC.NewMockPaymentUsecase(t))

	e := newTestEcho()
	e.GET("/api/health", h.Health)

	healthUC.EXPECT().Check(mock.Anything).Return(nil).Once()
	rec := serveJSON(e, http.MethodGet, "/api/health", "")
	requireStatus(t, http.StatusOK, rec)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	healthUC.EXPECT().Check(mock.Anything).Return(errors.Wrap(domainerrors.ErrStoreUnavailable, "store health check failed")).Once()
	rec = serveJSON(e, http.MethodGet, "/api/health", "")
	requireStatus(t, http.StatusServiceUnavailable, rec)
	assert.Equal(t, domainerrors.CodeStoreUnavailable, decodeError(t, rec).Code)
}

func TestSystemHandler_PaymentMethods(t *testing.T) {
	paymentUC := mockUC.NewMockPaymentUsecase(t)
	h := NewSystemHandler(mockUC.NewMockHealthUsecase(t), paymentUC)

	e := newTestEcho()
	e.GET("/api/payment-methods", h.PaymentMethods)

	paymentUC.EXPECT().ListPaymentMethods(mock.Anything).Return([]*entity.PaymentMethod{
		{ID: 1, Name: "Credit Card", IsActive: true},
	}, nil)

	rec := serveJSON(e, http.MethodGet, "/api/payment-methods", "")

	requireStatus(t, http.StatusOK, rec)
	assert.Contains(t, rec.Body.String(), `"name":"Credit Card"`)
	assert.Contains(t, rec.Body.String(), `"is_active":true`)
}

func TestStatsHandler_Reports(t *testing.T) {
	statsUC := mockUC.NewMockStatsUsecase(t)
	h := NewStatsHandler(statsUC)

	e := newTestEcho()
	e.GET("/api/inventory/stats", h.Inventory())
	e.GET("/api/dashboard/stats", h.Dashboard())

	statsUC.EXPECT().InventoryStats(mock.Anything).Return(&entity.InventoryStats{
		TotalValue:       decimal.NewFromInt(13500),
		LowStockProducts: 1,
	}, nil)
	statsUC.EXPECT().DashboardStats(mock.Anything).Return(nil,
		domainerrors.NewDatabaseExecuteError(errors.New("Table 'aeon_db.orders' doesn't exist"), "failed to count tables"))

	rec := serveJSON(e, http.MethodGet, "/api/inventory/stats", "")
	requireStatus(t, http.StatusOK, rec)
	assert.Contains(t, rec.Body.String(), `"totalValue":13500`)

	rec = serveJSON(e, http.MethodGet, "/api/dashboard/stats", "")
	requireStatus(t, http.StatusInternalServerError, rec)
	body := decodeError(t, rec)
	assert.Equal(t, domainerrors.CodeDatabaseExecute, body.Code)
	assert.Equal(t, "Table 'aeon_db.orders' doesn't exist", body.Error)
}
