package handler

import (
	"log/slog"

	"aeon/internal/delivery/api/response"
	"aeon/internal/domain/entity"
	domainerrors "aeon/internal/domain/errors"
	"aeon/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler serves the order workflow.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

type orderItemRequest struct {
	ProductID uint            `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// CreateOrderRequest is the body of POST /orders. Item rules are checked by the usecase.
type CreateOrderRequest struct {
	CustomerID      uint               `json:"customer_id" validate:"required"`
	TotalAmount     decimal.Decimal    `json:"total_amount"`
	Status          entity.OrderStatus `json:"status"`
	PaymentMethodID *uint              `json:"payment_method_id"`
	Items           []orderItemRequest `json:"items" validate:"required,min=1"`
}

// UpdateOrderRequest is the body of PUT /orders/:id.
type UpdateOrderRequest struct {
	CustomerID  uint               `json:"customer_id" validate:"required"`
	TotalAmount decimal.Decimal    `json:"total_amount"`
	Status      entity.OrderStatus `json:"status"`
}

// CreateOrder handles POST /orders
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var req CreateOrderRequest
	if err := bindJSON(c, &req, domainerrors.ErrOrderMissingFields); err != nil {
		return err
	}

	input := usecase.CreateOrderInput{
		CustomerID:      req.CustomerID,
		TotalAmount:     req.TotalAmount,
		Status:          req.Status,
		PaymentMethodID: req.PaymentMethodID,
		Items:           make([]usecase.OrderItemInput, 0, len(req.Items)),
	}
	for _, item := range req.Items {
		input.Items = append(input.Items, usecase.OrderItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	order, err := h.orderUC.CreateOrder(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return response.OK(c, order)
}

// ListOrders handles GET /orders
func (h *OrderHandler) ListOrders(c echo.Context) error {
	orders, err := h.orderUC.ListOrders(c.Request().Context())
	if err != nil {
		return err
	}

	return response.OK(c, orders)
}

// ListCustomerOrders handles GET /orders/customer/:customerId
func (h *OrderHandler) ListCustomerOrders(c echo.Context) error {
	customerID, err := parseID(c, "customerId")
	if err != nil {
		return err
	}

	orders, err := h.orderUC.ListCustomerOrders(c.Request().Context(), customerID)
	if err != nil {
		return err
	}

	return response.OK(c, orders)
}

// GetOrder handles GET /orders/:id
func (h *OrderHandler) GetOrder(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.OK(c, order)
}

// UpdateOrder handles PUT /orders/:id
func (h *OrderHandler) UpdateOrder(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateOrderRequest
	if err := bindJSON(c, &req, domainerrors.ErrOrderMissingFields); err != nil {
		return err
	}

	order, err := h.orderUC.UpdateOrder(c.Request().Context(), id, usecase.UpdateOrderInput{
		CustomerID:  req.CustomerID,
		TotalAmount: req.TotalAmount,
		Status:      req.Status,
	})
	if err != nil {
		return err
	}

	return response.OK(c, order)
}

// DeleteOrder handles DELETE /orders/:id
func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.orderUC.DeleteOrder(c.Request().Context(), id); err != nil {
		return err
	}

	return response.Deleted(c)
}
