package handler

import (
	"log/slog"

	"aeon/internal/delivery/api/response"
	domainerrors "aeon/internal/domain/errors"
	"aeon/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CustomerHandlerParams holds dependencies for CustomerHandler, injected by Fx.
type CustomerHandlerParams struct {
	fx.In

	CustomerUC usecase.CustomerUsecase
	Logger     *slog.Logger
}

// CustomerHandler serves customer records.
type CustomerHandler struct {
	customerUC usecase.CustomerUsecase
	logger     *slog.Logger
}

// NewCustomerHandler is the constructor for CustomerHandler
func NewCustomerHandler(params CustomerHandlerParams) *CustomerHandler {
	return &CustomerHandler{
		customerUC: params.CustomerUC,
		logger:     params.Logger,
	}
}

type customerRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func (r customerRequest) toInput() usecase.CustomerInput {
	return usecase.CustomerInput{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Address: r.Address,
	}
}

// ListCustomers handles GET /customers
func (h *CustomerHandler) ListCustomers(c echo.Context) error {
	customers, err := h.customerUC.ListCustomers(c.Request().Context())
	if err != nil {
		return err
	}

	return response.OK(c, customers)
}

// CreateCustomer handles POST /customers
func (h *CustomerHandler) CreateCustomer(c echo.Context) error {
	var req customerRequest
	if err := bindJSON(c, &req, domainerrors.ErrInvalidBody); err != nil {
		return err
	}

	customer, err := h.customerUC.CreateCustomer(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}

	return response.OK(c, customer)
}

// UpdateCustomer handles PUT /customers/:id
func (h *CustomerHandler) UpdateCustomer(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req customerRequest
	if err := bindJSON(c, &req, domainerrors.ErrInvalidBody); err != nil {
		return err
	}

	customer, err := h.customerUC.UpdateCustomer(c.Request().Context(), id, req.toInput())
	if err != nil {
		return err
	}

	return response.OK(c, customer)
}

// DeleteCustomer handles DELETE /customers/:id
func (h *CustomerHandler) DeleteCustomer(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.customerUC.DeleteCustomer(c.Request().Context(), id); err != nil {
		return err
	}

	return response.Deleted(c)
}
