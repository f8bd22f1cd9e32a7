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

func newUserTestServer(t *testing.T) (*echo.Echo, *mockUC.MockUserUsecase) {
	userUC := mockUC.NewMockUserUsecase(t)
	h := NewUserHandler(UserHandlerParams{UserUC: userUC, Logger: newDiscardLogger()})

	e := newTestEcho()
	e.POST("/api/login", h.Login)
	e.POST("/api/register", h.Register)
	e.GET("/api/users", h.ListUsers)

	return e, userUC
}

func TestUserHandler_Register_ShortPassword(t *testing.T) {
	e, userUC := newUserTestServer(t)

	userUC.EXPECT().Register(mock.Anything, mock.Anything).
		Return(nil, domainerrors.NewValidationError("Password must be at least 6 characters"))

	rec := serveJSON(e, http.MethodPost, "/api/register",
		`{"name":"Dara","email":"d@example.com","phone":"1","address":"PP","username":"dara","password":"12345"}`)

	requireStatus(t, http.StatusBadRequest, rec)
	assert.Equal(t, "Password must be at least 6 characters", decodeError(t, rec).Error)
}

func TestUserHandler_Register_MissingField(t *testing.T) {
	e, userUC := newUserTestServer(t)

	rec := serveJSON(e, http.MethodPost, "/api/register", `{"name":"Dara","username":"dara","password":"123456"}`)

	requireStatus(t, http.StatusBadRequest, rec)
	assert.Equal(t, "All fields are required", decodeError(t, rec).Error)
	userUC.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestUserHandler_Register_UsernameTaken(t *testing.T) {
	e, userUC := newUserTestServer(t)

	userUC.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrUsernameTaken)

	rec := serveJSON(e, http.MethodPost, "/api/register",
		`{"name":"Dara","email":"d@example.com","phone":"1","address":"PP","username":"admin","password":"123456"}`)

	requireStatus(t, http.StatusBadRequest, rec)
	body := decodeError(t, rec)
	assert.Equal(t, "Username already exists", body.Error)
	assert.Equal(t, "USERNAME_TAKEN", body.Code)
}

func TestUserHandler_Login(t *testing.T) {
	e, userUC := newUserTestServer(t)

	userUC.EXPECT().Login(mock.Anything, usecase.LoginInput{Username: "admin", Password: "admin123"}).
		Return(&usecase.LoginOutput{ID: 1, Username: "admin", Role: entity.RoleAdmin}, nil)

	rec := serveJSON(e, http.MethodPost, "/api/login", `{"username":"admin","password":"admin123"}`)

	requireStatus(t, http.StatusOK, rec)
	assert.JSONEq(t, `{"id":1,"username":"admin","role":"admin"}`, rec.Body.String())
}

func TestUserHandler_Login_MissingPassword(t *testing.T) {
	e, _ := newUserTestServer(t)

	rec := serveJSON(e, http.MethodPost, "/api/login", `{"username":"admin"}`)

	requireStatus(t, http.StatusBadRequest, rec)
	assert.Equal(t, "Username and password are required", decodeError(t, rec).Error)
}

func TestUserHandler_Login_InvalidCredentials(t *testing.T) {
	e, userUC := newUserTestServer(t)

	userUC.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)

	rec := serveJSON(e, http.MethodPost, "/api/login", `{"username":"admin","password":"nope"}`)

	requireStatus(t, http.StatusUnauthorized, rec)
	assert.Equal(t, "Invalid username or password", decodeError(t, rec).Error)
}

func TestUserHandler_ListUsers_HidesPasswords(t *testing.T) {
	e, userUC := newUserTestServer(t)

	userUC.EXPECT().ListUsers(mock.Anything).Return([]*entity.User{
		{ID: 2, Username: "user", Password: "$2a$10$hash", Role: entity.RoleCustomer},
	}, nil)

	rec := serveJSON(e, http.MethodGet, "/api/users", "")

	requireStatus(t, http.StatusOK, rec)
	assert.NotContains(t, rec.Body.String(), "hash")
	assert.Contains(t, rec.Body.String(), `"role":"customer"`)
}
