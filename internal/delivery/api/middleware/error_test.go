package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"aeon/internal/delivery/api/response"
	deliverycontext "aeon/internal/delivery/context"
	domainerrors "aeon/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func handleError(t *testing.T, err error) (*httptest.ResponseRecorder, response.ErrorResponse) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/orders/1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	deliverycontext.SetRequestID(c, "req-123")

	NewErrorMiddleware(newDiscardLogger()).HandleHTTPError(err, c)

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec, body
}

func TestHandleHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantError  string
	}{
		{
			name:       "wrapped app error",
			err:        errors.Wrap(domainerrors.ErrOrderNotFound, "failed to delete order"),
			wantStatus: http.StatusNotFound,
			wantCode:   "ORDER_NOT_FOUND",
			wantError:  "Order not found",
		},
		{
			name:       "store error surfaces the driver message",
			err:        domainerrors.NewDatabaseExecuteError(errors.New("Unknown column 'x'"), "failed to list orders"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   domainerrors.CodeDatabaseExecute,
			wantError:  "Unknown column 'x'",
		},
		{
			name:       "store unavailable",
			err:        domainerrors.ErrStoreUnavailable,
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   domainerrors.CodeStoreUnavailable,
			wantError:  "Database is unavailable, please try again later",
		},
		{
			name:       "echo http error",
			err:        echo.NewHTTPError(http.StatusRequestEntityTooLarge, "Request Entity Too Large"),
			wantStatus: http.StatusRequestEntityTooLarge,
			wantCode:   "HTTP_ERROR",
			wantError:  "Request Entity Too Large",
		},
		{
			name:       "route not found",
			err:        echo.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   "HTTP_ERROR",
			wantError:  "Not Found",
		},
		{
			name:       "unknown error is hidden",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
			wantError:  "Internal server error, please try again later",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := handleError(t, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, tt.wantError, body.Error)
			assert.Equal(t, "req-123", body.RequestID)
		})
	}
}
