package handler

import (
	"net/http"
	"testing"

	"aeon/internal/domain/entity"
	domainerrors "aeon/internal/domain/errors"
	mockUC "aeon/internal/mocks/usecase"
	"aeon/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newCustomerTestServer(t *testing.T) (*echo.Echo, *mockUC.MockCustomerUsecase) {
	customerUC := mockUC.NewMockCustomerUsecase(t)
	h := NewCustomerHandler(CustomerHandlerParams{CustomerUC: customerUC, Logger: newDiscardLogger()})

	e := newTestEcho()
	e.GET("/api/customers", h.ListCustomers)
	e.POST("/api/customers", h.CreateCustomer)
	e.PUT("/api/customers/:id", h.UpdateCustomer)
	e.DELETE("/api/customers/:id", h.DeleteCustomer)

	return e, customerUC
}

func TestCustomerHandler_ListCustomers(t *testing.T) {
	e, customerUC := newCustomerTestServer(t)

	customerUC.EXPECT().ListCustomers(mock.Anything).Return([]*entity.Customer{
		{ID: 2, Name: "Sophea", Email: "sophea@example.com"},
	}, nil)

	rec := serveJSON(e, http.MethodGet, "/api/customers", "")

	requireStatus(t, http.StatusOK, rec)
	assert.Contains(t, rec.Body.String(), `"name":"Sophea"`)
}

func TestCustomerHandler_CreateCustomer(t *testing.T) {
	e, customerUC := newCustomerTestServer(t)

	input := usecase.CustomerInput{Name: "Sophea", Email: "sophea@example.com", Phone: "011", Address: "Siem Reap"}
	customerUC.EXPECT().CreateCustomer(mock.Anything, input).
		Return(&entity.Customer{ID: 5, Name: "Sophea", Email: "sophea@example.com", Phone: "011", Address: "Siem Reap"}, nil)

	rec := serveJSON(e, http.MethodPost, "/api/customers",
		`{"name":"Sophea","email":"sophea@example.com","phone":"011","address":"Siem Reap"}`)

	requireStatus(t, http.StatusOK, rec)
	assert.Contains(t, rec.Body.String(), `"id":5`)
}

func TestCustomerHandler_CreateCustomer_NameRequired(t *testing.T) {
	e, customerUC := newCustomerTestServer(t)

	customerUC.EXPECT().CreateCustomer(mock.Anything, usecase.CustomerInput{Email: "x@example.com"}).
		Return(nil, domainerrors.ErrNameRequired)

	rec := serveJSON(e, http.MethodPost, "/api/customers", `{"email":"x@example.com"}`)

	requireStatus(t, http.StatusBadRequest, rec)
	assert.Equal(t, "Name is required", decodeError(t, rec).Error)
}

func TestCustomerHandler_UpdateCustomer_MalformedBody(t *testing.T) {
	e, customerUC := newCustomerTestServer(t)

	rec := serveJSON(e, http.MethodPut, "/api/customers/3", `{"name":`)

	requireStatus(t, http.StatusBadRequest, rec)
	body := decodeError(t, rec)
	assert.Equal(t, "Invalid request body", body.Error)
	assert.Equal(t, domainerrors.CodeValidationFailed, body.Code)
	customerUC.AssertNotCalled(t, "UpdateCustomer", mock.Anything, mock.Anything, mock.Anything)
}

func TestCustomerHandler_UpdateCustomer_NotFound(t *testing.T) {
	e, customerUC := newCustomerTestServer(t)

	customerUC.EXPECT().UpdateCustomer(mock.Anything, uint(99), mock.Anything).Return(nil, domainerrors.ErrCustomerNotFound)

	rec := serveJSON(e, http.MethodPut, "/api/customers/99", `{"name":"Ghost"}`)

	requireStatus(t, http.StatusNotFound, rec)
	assert.Equal(t, "CUSTOMER_NOT_FOUND", decodeError(t, rec).Code)
}

func TestCustomerHandler_DeleteCustomer(t *testing.T) {
	e, customerUC := newCustomerTestServer(t)

	customerUC.EXPECT().DeleteCustomer(mock.Anything, uint(4)).Return(nil)

	rec := serveJSON(e, http.MethodDelete, "/api/customers/4", "")

	requireStatus(t, http.StatusOK, rec)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
}
