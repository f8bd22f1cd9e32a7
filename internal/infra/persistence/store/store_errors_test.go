package store

import (
	"context"
	"database/sql/driver"
	"net"
	"testing"

	domainerrors "aeon/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
		wantHTTP int
	}{
		{
			name:     "bad connection",
			err:      driver.ErrBadConn,
			wantCode: domainerrors.CodeStoreUnavailable,
			wantHTTP: 503,
		},
		{
			name:     "deadline while waiting for a connection",
			err:      errors.Wrap(context.DeadlineExceeded, "acquire"),
			wantCode: domainerrors.CodeStoreUnavailable,
			wantHTTP: 503,
		},
		{
			name:     "network error",
			err:      &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")},
			wantCode: domainerrors.CodeStoreUnavailable,
			wantHTTP: 503,
		},
		{
			name:     "statement error",
			err:      errors.New("Unknown column 'foo' in 'field list'"),
			wantCode: domainerrors.CodeDatabaseExecute,
			wantHTTP: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := translateError(tt.err, "failed to list brands")

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, tt.wantCode, appErr.ErrorCode())
			assert.Equal(t, tt.wantHTTP, appErr.HTTPCode())
		})
	}
}

func TestTranslateError_SurfacesDriverMessage(t *testing.T) {
	err := translateError(errors.New("Duplicate entry 'x' for key 'name'"), "failed to create brand")

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Duplicate entry 'x' for key 'name'", appErr.Message())
	assert.Nil(t, translateError(nil, "noop"))
}

func TestIsUnavailable_StoreUnavailableIsMatchable(t *testing.T) {
	err := translateError(driver.ErrBadConn, "ping")
	assert.ErrorIs(t, err, domainerrors.ErrStoreUnavailable)
}
