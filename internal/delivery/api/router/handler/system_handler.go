package handler

import (
	"net/http"

	"aeon/internal/delivery/api/response"
	"aeon/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SystemHandler serves health and reference data endpoints.
type SystemHandler struct {
	healthUC  usecase.HealthUsecase
	paymentUC usecase.PaymentUsecase
}

// NewSystemHandler creates a new SystemHandler instance
func NewSystemHandler(healthUC usecase.HealthUsecase, paymentUC usecase.PaymentUsecase) *SystemHandler {
	return &SystemHandler{healthUC: healthUC, paymentUC: paymentUC}
}

// Health handles GET /health. A failed store ping is reported with its own status.
func (h *SystemHandler) Health(c echo.Context) error {
	if err := h.healthUC.Check(c.Request().Context()); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// PaymentMethods handles GET /payment-methods
func (h *SystemHandler) PaymentMethods(c echo.Context) error {
	methods, err := h.paymentUC.ListPaymentMethods(c.Request().Context())
	if err != nil {
		return err
	}

	return response.OK(c, methods)
}
