package handler

import (
	"log/slog"

	"aeon/internal/delivery/api/response"
	domainerrors "aeon/internal/domain/errors"
	"aeon/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler holds dependencies for account handlers.
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest represents the request body for self-registration
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	Address  string `json:"address" validate:"required"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login handles POST /login
func (h *UserHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindJSON(c, &req, domainerrors.ErrCredentialsRequired); err != nil {
		return err
	}

	output, err := h.userUC.Login(c.Request().Context(), usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return response.OK(c, output)
}

// Register handles POST /register
func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bindJSON(c, &req, domainerrors.ErrRequiredFields); err != nil {
		return err
	}

	output, err := h.userUC.Register(c.Request().Context(), usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return response.OK(c, output)
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.userUC.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}

	return response.OK(c, users)
}
