package api

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"aeon/config"
	apimiddleware "aeon/internal/delivery/api/middleware"
	"aeon/internal/delivery/api/router"
	"aeon/internal/delivery/api/router/handler"
	"aeon/internal/domain/entity"
	mockSvc "aeon/internal/mocks/service"
	mockUC "aeon/internal/mocks/usecase"
	"aeon/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type testApp struct {
	echo     *echo.Echo
	userUC   *mockUC.MockUserUsecase
	orderUC  *mockUC.MockOrderUsecase
	statsUC  *mockUC.MockStatsUsecase
	healthUC *mockUC.MockHealthUsecase
}

func newTestApp(t *testing.T, requireToken bool) testApp {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{Auth: &config.AuthConfig{RequireToken: requireToken}}
	cfg.HTTP.MaxRequestBodySize = "1M"

	app := testApp{
		userUC:   mockUC.NewMockUserUsecase(t),
		orderUC:  mockUC.NewMockOrderUsecase(t),
		statsUC:  mockUC.NewMockStatsUsecase(t),
		healthUC: mockUC.NewMockHealthUsecase(t),
	}

	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().Enabled().Return(true).Maybe()

	app.echo = NewEcho(cfg, logger)
	router.NewRouter(router.RouterParams{
		UserHandler:     handler.NewUserHandler(handler.UserHandlerParams{UserUC: app.userUC, Logger: logger}),
		CatalogHandler:  handler.NewCatalogHandler(handler.CatalogHandlerParams{CatalogUC: mockUC.NewMockCatalogUsecase(t), Logger: logger}),
		ProductHandler:  handler.NewProductHandler(handler.ProductHandlerParams{ProductUC: mockUC.NewMockProductUsecase(t), Logger: logger}),
		CustomerHandler: handler.NewCustomerHandler(handler.CustomerHandlerParams{CustomerUC: mockUC.NewMockCustomerUsecase(t), Logger: logger}),
		OrderHandler:    handler.NewOrderHandler(handler.OrderHandlerParams{OrderUC: app.orderUC, Logger: logger}),
		StatsHandler:    handler.NewStatsHandler(app.statsUC),
		SystemHandler:   handler.NewSystemHandler(app.healthUC, mockUC.NewMockPaymentUsecase(t)),
		AuthMiddleware:  apimiddleware.NewAuthMiddleware(tokenSvc, cfg, logger),
	}).RegisterRoutes(app.echo)

	return app
}

func (a testApp) do(method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, req)

	return rec
}

func TestServer_StatsRouteWinsOverOrderID(t *testing.T) {
	app := newTestApp(t, false)

	app.statsUC.EXPECT().OrderStats(mock.Anything).Return(&entity.OrderStats{TotalOrders: 3}, nil)

	rec := app.do(http.MethodGet, "/api/orders/stats", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"totalOrders":3`)
	app.orderUC.AssertNotCalled(t, "GetOrder", mock.Anything, mock.Anything)
}

func TestServer_RequestIDIsEchoed(t *testing.T) {
	app := newTestApp(t, false)

	app.healthUC.EXPECT().Check(mock.Anything).Return(nil)

	rec := app.do(http.MethodGet, "/api/health", "", map[string]string{echo.HeaderXRequestID: "trace-1"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "trace-1", rec.Header().Get(echo.HeaderXRequestID))
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestServer_ErrorBodyCarriesRequestID(t *testing.T) {
	app := newTestApp(t, false)

	rec := app.do(http.MethodGet, "/api/orders/abc", "", map[string]string{echo.HeaderXRequestID: "trace-2"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid id","code":"VALIDATION_FAILED","request_id":"trace-2"}`, rec.Body.String())
}

func TestServer_UnknownRoute(t *testing.T) {
	app := newTestApp(t, false)

	rec := app.do(http.MethodGet, "/api/nope", "", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"HTTP_ERROR"`)
}

func TestServer_RequiredTokenGuardsResources(t *testing.T) {
	app := newTestApp(t, true)

	rec := app.do(http.MethodGet, "/api/orders", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"TOKEN_INVALID"`)

	app.userUC.EXPECT().Login(mock.Anything, usecase.LoginInput{Username: "admin", Password: "admin123"}).
		Return(&usecase.LoginOutput{ID: 1, Username: "admin", Role: entity.RoleAdmin, AccessToken: "signed.jwt"}, nil)

	rec = app.do(http.MethodPost, "/api/login", `{"username":"admin","password":"admin123"}`, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"access_token":"signed.jwt"`)
}
