package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"aeon/internal/domain/entity"
	domainerrors "aeon/internal/domain/errors"
	mockUC "aeon/internal/mocks/usecase"
	"aeon/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newOrderTestServer(t *testing.T) (*echo.Echo, *mockUC.MockOrderUsecase) {
	orderUC := mockUC.NewMockOrderUsecase(t)
	h := NewOrderHandler(OrderHandlerParams{OrderUC: orderUC, Logger: newDiscardLogger()})

	e := newTestEcho()
	e.POST("/api/orders", h.CreateOrder)
	e.GET("/api/orders", h.ListOrders)
	e.GET("/api/orders/:id", h.GetOrder)
	e.PUT("/api/orders/:id", h.UpdateOrder)
	e.DELETE("/api/orders/:id", h.DeleteOrder)
	e.GET("/api/orders/customer/:customerId", h.ListCustomerOrders)

	return e, orderUC
}

func TestOrderHandler_CreateOrder(t *testing.T) {
	e, orderUC := newOrderTestServer(t)

	orderUC.EXPECT().
		CreateOrder(mock.Anything, mock.MatchedBy(func(in usecase.CreateOrderInput) bool {
			return in.CustomerID == 1 &&
				in.TotalAmount.Equal(decimal.RequireFromString("59.98")) &&
				len(in.Items) == 1 &&
				in.Items[0].Quantity == 2 &&
				in.Items[0].Price.Equal(decimal.RequireFromString("29.99"))
		})).
		Return(&entity.Order{
			ID:          10,
			CustomerID:  1,
			TotalAmount: decimal.RequireFromString("59.98"),
			Status:      entity.OrderStatusPending,
			Items: []entity.OrderItem{
				{ID: 1, OrderID: 10, ProductID: 3, Quantity: 2, Price: decimal.RequireFromString("29.99")},
			},
		}, nil)

	rec := serveJSON(e, http.MethodPost, "/api/orders",
		`{"customer_id":1,"total_amount":59.98,"items":[{"product_id":3,"quantity":2,"price":29.99}]}`)

	requireStatus(t, http.StatusOK, rec)

	var body struct {
		ID     uint   `json:"id"`
		Status string `json:"status"`
		Items  []struct {
			ProductID uint    `json:"product_id"`
			Quantity  int     `json:"quantity"`
			Price     float64 `json:"price"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, uint(10), body.ID)
	assert.Equal(t, "pending", body.Status)
	require.Len(t, body.Items, 1)
	assert.Equal(t, 29.99, body.Items[0].Price)
	assert.Equal(t, 2, body.Items[0].Quantity)
	assert.Contains(t, rec.Body.String(), `"price":29.99`)
}

func TestOrderHandler_GetOrder_WithoutItems(t *testing.T) {
	e, orderUC := newOrderTestServer(t)

	orderUC.EXPECT().GetOrder(mock.Anything, uint(5)).
		Return(&entity.Order{ID: 5, CustomerID: 1, Status: entity.OrderStatusPending, Items: []entity.OrderItem{}}, nil)

	rec := serveJSON(e, http.MethodGet, "/api/orders/5", "")

	requireStatus(t, http.StatusOK, rec)
	assert.Contains(t, rec.Body.String(), `"items":[]`)
}

func TestOrderHandler_ListOrders_OmitsItems(t *testing.T) {
	e, orderUC := newOrderTestServer(t)

	orderUC.EXPECT().ListOrders(mock.Anything).
		Return([]*entity.Order{{ID: 5, CustomerID: 1, Status: entity.OrderStatusPending}}, nil)

	rec := serveJSON(e, http.MethodGet, "/api/orders", "")

	requireStatus(t, http.StatusOK, rec)
	assert.NotContains(t, rec.Body.String(), `"items"`)
}

func TestOrderHandler_CreateOrder_MissingItems(t *testing.T) {
	e, orderUC := newOrderTestServer(t)

	rec := serveJSON(e, http.MethodPost, "/api/orders", `{"customer_id":1,"total_amount":10}`)

	requireStatus(t, http.StatusBadRequest, rec)
	body := decodeError(t, rec)
	assert.Equal(t, "Missing required fields", body.Error)
	assert.Equal(t, domainerrors.CodeValidationFailed, body.Code)
	orderUC.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
}

func TestOrderHandler_CreateOrder_InvalidItemFromUsecase(t *testing.T) {
	e, orderUC := newOrderTestServer(t)

	orderUC.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrOrderItemInvalid)

	rec := serveJSON(e, http.MethodPost, "/api/orders",
		`{"customer_id":1,"total_amount":10,"items":[{"product_id":3,"quantity":0,"price":10}]}`)

	requireStatus(t, http.StatusBadRequest, rec)
	assert.Equal(t, "Each item must have product_id, quantity, and price", decodeError(t, rec).Error)
}

func TestOrderHandler_DeleteOrder_NotFound(t *testing.T) {
	e, orderUC := newOrderTestServer(t)

	orderUC.EXPECT().DeleteOrder(mock.Anything, uint(999)).Return(domainerrors.ErrOrderNotFound)

	rec := serveJSON(e, http.MethodDelete, "/api/orders/999", "")

	requireStatus(t, http.StatusNotFound, rec)
	body := decodeError(t, rec)
	assert.Equal(t, "Order not found", body.Error)
	assert.Equal(t, "ORDER_NOT_FOUND", body.Code)
}

func TestOrderHandler_DeleteOrder_Success(t *testing.T) {
	e, orderUC := newOrderTestServer(t)

	orderUC.EXPECT().DeleteOrder(mock.Anything, uint(5)).Return(nil)

	rec := serveJSON(e, http.MethodDelete, "/api/orders/5", "")

	requireStatus(t, http.StatusOK, rec)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
}

func TestOrderHandler_InvalidID(t *testing.T) {
	e, orderUC := newOrderTestServer(t)

	for _, target := range []string{"/api/orders/abc", "/api/orders/0", "/api/orders/-1"} {
		rec := serveJSON(e, http.MethodGet, target, "")

		requireStatus(t, http.StatusBadRequest, rec)
		assert.Equal(t, "Invalid id", decodeError(t, rec).Error)
	}
	orderUC.AssertNotCalled(t, "GetOrder", mock.Anything, mock.Anything)
}

func TestOrderHandler_UpdateOrder(t *testing.T) {
	e, orderUC := newOrderTestServer(t)

	orderUC.EXPECT().
		UpdateOrder(mock.Anything, uint(4), mock.MatchedBy(func(in usecase.UpdateOrderInput) bool {
			return in.CustomerID == 2 &&
				in.TotalAmount.Equal(decimal.RequireFromString("15.5")) &&
				in.Status == entity.OrderStatusShipped
		})).
		Return(&entity.Order{ID: 4, CustomerID: 2, Status: entity.OrderStatusShipped}, nil)

	rec := serveJSON(e, http.MethodPut, "/api/orders/4", `{"customer_id":2,"total_amount":"15.5","status":"shipped"}`)

	requireStatus(t, http.StatusOK, rec)
	assert.Contains(t, rec.Body.String(), `"status":"shipped"`)
}

func TestOrderHandler_ListCustomerOrders(t *testing.T) {
	e, orderUC := newOrderTestServer(t)

	orderUC.EXPECT().ListCustomerOrders(mock.Anything, uint(7)).
		RunAndReturn(func(_ context.Context, _ uint) ([]*entity.Order, error) {
			return []*entity.Order{}, nil
		})

	rec := serveJSON(e, http.MethodGet, "/api/orders/customer/7", "")

	requireStatus(t, http.StatusOK, rec)
	assert.JSONEq(t, `[]`, rec.Body.String())
}
