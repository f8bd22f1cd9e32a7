package errors

import (
	"fmt"
	"net/http"

	"aeon/internal/errors"
)

// AppError is an error that knows how it is presented over HTTP.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Machine-readable code, e.g. ORDER_NOT_FOUND
	Message() string   // Message returned to the client
	Details() string   // Internal context, never sent for 5xx
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// NewValidationError returns a 400 with the given client-facing message.
func NewValidationError(message string) *BaseError {
	return NewBaseError(http.StatusBadRequest, CodeValidationFailed, message, "")
}

func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

func (e *BaseError) Message() string {
	return e.message
}

func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches errors by code so that WithDetails copies still compare equal.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode && e.message == t.message
}

const (
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeStoreUnavailable = "STORE_UNAVAILABLE"
	CodeDatabaseExecute  = "DATABASE_EXECUTE_FAILED"
)

// Predefined error types
var (
	// Registration
	ErrRequiredFields = NewValidationError("All fields are required")
	ErrUsernameTaken  = NewBaseError(
		http.StatusBadRequest,
		"USERNAME_TAKEN",
		"Username already exists",
		"",
	)
	ErrEmailTaken = NewBaseError(
		http.StatusBadRequest,
		"EMAIL_TAKEN",
		"Email already exists",
		"",
	)

	// Login
	ErrCredentialsRequired = NewValidationError("Username and password are required")
	ErrInvalidCredentials  = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid username or password",
		"",
	)
	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"Invalid or expired token",
		"",
	)
	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Failed to process password",
		"",
	)

	// Orders
	ErrOrderMissingFields = NewValidationError("Missing required fields")
	ErrOrderItemInvalid   = NewValidationError("Each item must have product_id, quantity, and price")
	ErrOrderStatusInvalid = NewValidationError("Invalid order status")

	// Catalog and customers
	ErrMissingFields       = NewValidationError("Missing required fields")
	ErrNameRequired        = NewValidationError("Name is required")
	ErrDetailNameRequired  = NewValidationError("Detail name is required")
	ErrSearchQueryRequired = NewValidationError("Query parameter 'q' is required")
	ErrInvalidID           = NewValidationError("Invalid id")
	ErrInvalidBody         = NewValidationError("Invalid request body")

	ErrBrandNotFound         = notFound("BRAND", "Brand")
	ErrCategoryNotFound      = notFound("CATEGORY", "Category")
	ErrProductNotFound       = notFound("PRODUCT", "Product")
	ErrProductDetailNotFound = notFound("PRODUCT_DETAIL", "Product detail")
	ErrCustomerNotFound      = notFound("CUSTOMER", "Customer")
	ErrUserNotFound          = notFound("USER", "User")
	ErrOrderNotFound         = notFound("ORDER", "Order")

	// Store
	ErrStoreUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		CodeStoreUnavailable,
		"Database is unavailable, please try again later",
		"",
	)

	ErrImageStoreFailed = NewBaseError(
		http.StatusInternalServerError,
		"IMAGE_STORE_FAILED",
		"Failed to store uploaded image",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error, please try again later",
		"",
	)
)

func notFound(entity, label string) *BaseError {
	return NewBaseError(
		http.StatusNotFound,
		entity+"_NOT_FOUND",
		fmt.Sprintf("%s not found", label),
		"",
	)
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface.
// The driver message is surfaced to the client, as the admin frontend displays it.
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, e.details).Error()
}

func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

func (e *DatabaseExecuteError) ErrorCode() string {
	return CodeDatabaseExecute
}

func (e *DatabaseExecuteError) Message() string {
	if e.err == nil {
		return "Database execution failed"
	}

	return errors.Cause(e.err).Error()
}

func (e *DatabaseExecuteError) Details() string {
	return e.details
}
