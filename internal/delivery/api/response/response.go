// Package response writes the JSON bodies of the admin API.
// Successful responses are the bare resource; errors share one envelope.
package response

import (
	"net/http"

	deliverycontext "aeon/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error     string `json:"error"`      // User-facing message
	Code      string `json:"code"`       // Machine-readable code, e.g. "ORDER_NOT_FOUND"
	RequestID string `json:"request_id"` // Request tracking ID
}

// DeleteResponse acknowledges a successful delete.
type DeleteResponse struct {
	Success bool `json:"success"`
}

// Success writes data as the response body.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// OK writes data with status 200.
func OK(c echo.Context, data any) error {
	return Success(c, http.StatusOK, data)
}

// Deleted writes {"success": true}.
func Deleted(c echo.Context) error {
	return OK(c, DeleteResponse{Success: true})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, ErrorResponse{
		Error:     message,
		Code:      errorCode,
		RequestID: deliverycontext.GetRequestID(c),
	})
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message)
}
