package middleware

import (
	"log/slog"
	"strings"

	"aeon/config"
	deliverycontext "aeon/internal/delivery/context"
	domainerrors "aeon/internal/domain/errors"
	"aeon/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware verifies access tokens issued at login.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	required bool
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware. Tokens are only
// enforced when auth.requireToken is set and a signing secret is configured.
func NewAuthMiddleware(tokenSvc service.TokenService, cfg *config.Config, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		tokenSvc: tokenSvc,
		required: cfg.Auth != nil && cfg.Auth.RequireToken && tokenSvc.Enabled(),
		logger:   logger,
	}
}

// Authenticate attaches the caller's claims to the request context. A missing
// token is accepted unless tokens are required; a bad token never is.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			if m.required {
				return domainerrors.ErrTokenInvalid
			}

			return next(c)
		}

		tokenString, ok := strings.CutPrefix(authHeader, bearerPrefix)
		if !ok || !m.tokenSvc.Enabled() {
			return domainerrors.ErrTokenInvalid
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Rejected access token", slog.Any("error", err))

			return domainerrors.ErrTokenInvalid
		}

		ctx := c.Request().Context()
		reqLogger := deliverycontext.GetLoggerOrDefault(ctx, m.logger).With(slog.Any("user_id", claims.UserID))
		ctx = deliverycontext.WithClaims(ctx, claims)
		ctx = deliverycontext.WithLogger(ctx, reqLogger)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
