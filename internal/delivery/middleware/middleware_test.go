package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"aeon/config"
	deliverycontext "aeon/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(debug bool) (*echo.Echo, *bytes.Buffer) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)

	e.GET("/echo-id", func(c echo.Context) error {
		return c.String(http.StatusOK, deliverycontext.GetRequestIDFromContext(c.Request().Context()))
	})
	e.GET("/missing", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "nothing here")
	})

	return e, &logs
}

func serve(e *echo.Echo, target, requestID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if requestID != "" {
		req.Header.Set(echo.HeaderXRequestID, requestID)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestRequestIDMiddleware_ReusesClientID(t *testing.T) {
	e, _ := newTestServer(false)

	rec := serve(e, "/echo-id", "client-abc")

	assert.Equal(t, "client-abc", rec.Header().Get(echo.HeaderXRequestID))
	assert.Equal(t, "client-abc", rec.Body.String())
}

func TestRequestIDMiddleware_ReplacesOversizedID(t *testing.T) {
	e, _ := newTestServer(false)

	rec := serve(e, "/echo-id", strings.Repeat("x", maxRequestIDLength+1))

	generated := rec.Header().Get(echo.HeaderXRequestID)
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, rec.Body.String())
}

func TestLoggerMiddleware_SkipsSuccessOutsideDebug(t *testing.T) {
	e, logs := newTestServer(false)

	rec := serve(e, "/echo-id", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, logs.String())
}

func TestLoggerMiddleware_LogsSuccessInDebug(t *testing.T) {
	e, logs := newTestServer(true)

	serve(e, "/echo-id?x=1", "req-1")

	assert.Contains(t, logs.String(), `"level":"INFO"`)
	assert.Contains(t, logs.String(), `"query":"x=1"`)
	assert.Contains(t, logs.String(), `"request_id":"req-1"`)
}

func TestLoggerMiddleware_LogsClientErrorsWithFinalStatus(t *testing.T) {
	e, logs := newTestServer(false)

	rec := serve(e, "/missing", "req-2")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, logs.String(), `"level":"WARN"`)
	assert.Contains(t, logs.String(), `"status":404`)
	assert.Contains(t, logs.String(), `"request_id":"req-2"`)
}
