package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"net"
	"strings"

	domainerrors "aeon/internal/domain/errors"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// isUnavailable reports failures to obtain or keep a usable connection,
// as opposed to errors returned by a statement that actually ran.
func isUnavailable(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, mysqldriver.ErrInvalidConn) ||
		errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	msg := strings.ToLower(err.Error())

	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "sql: database is closed")
}

// translateError maps a driver error to the domain error returned to callers.
func translateError(err error, details string) error {
	if err == nil {
		return nil
	}

	if isUnavailable(err) {
		return domainerrors.ErrStoreUnavailable.WithDetails(details + ": " + err.Error())
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}
