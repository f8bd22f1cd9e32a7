package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"aeon/config"
	deliverycontext "aeon/internal/delivery/context"
	domainerrors "aeon/internal/domain/errors"
	"aeon/internal/domain/service"
	mockSvc "aeon/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runAuthenticate(t *testing.T, m *AuthMiddleware, authHeader string) (*service.Claims, bool, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	var (
		claims *service.Claims
		called bool
	)
	err := m.Authenticate(func(c echo.Context) error {
		called = true
		claims = deliverycontext.GetClaims(c.Request().Context())

		return nil
	})(c)

	return claims, called, err
}

func newAuthConfig(requireToken bool) *config.Config {
	return &config.Config{Auth: &config.AuthConfig{RequireToken: requireToken}}
}

func TestAuthenticate_OptionalWithoutToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().Enabled().Return(true).Maybe()

	claims, called, err := runAuthenticate(t, NewAuthMiddleware(tokenSvc, newAuthConfig(false), newDiscardLogger()), "")

	require.NoError(t, err)
	assert.True(t, called)
	assert.Nil(t, claims)
}

func TestAuthenticate_RequiredWithoutToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().Enabled().Return(true).Maybe()

	_, called, err := runAuthenticate(t, NewAuthMiddleware(tokenSvc, newAuthConfig(true), newDiscardLogger()), "")

	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
	assert.False(t, called)
}

func TestAuthenticate_ValidToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().Enabled().Return(true).Maybe()
	tokenSvc.EXPECT().ValidateToken("signed.jwt").Return(&service.Claims{UserID: 1, Username: "admin", Role: "admin"}, nil)

	claims, called, err := runAuthenticate(t, NewAuthMiddleware(tokenSvc, newAuthConfig(true), newDiscardLogger()), "Bearer signed.jwt")

	require.NoError(t, err)
	assert.True(t, called)
	require.NotNil(t, claims)
	assert.Equal(t, uint(1), claims.UserID)
}

func TestAuthenticate_BadToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().Enabled().Return(true).Maybe()
	tokenSvc.EXPECT().ValidateToken("forged").Return(nil, errors.New("signature is invalid"))

	_, called, err := runAuthenticate(t, NewAuthMiddleware(tokenSvc, newAuthConfig(false), newDiscardLogger()), "Bearer forged")

	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
	assert.False(t, called)
}

func TestAuthenticate_NotBearer(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().Enabled().Return(true).Maybe()

	_, _, err := runAuthenticate(t, NewAuthMiddleware(tokenSvc, newAuthConfig(false), newDiscardLogger()), "Basic YWRtaW4=")

	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}
