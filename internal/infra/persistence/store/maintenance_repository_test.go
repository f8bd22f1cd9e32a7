package store

import (
	"context"
	"testing"

	domainerrors "aeon/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/DATA-DOG/go-sqlmock.v1"
)

func TestHealthRepository_Ping(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewHealthRepository(db)

	mock.ExpectQuery("SELECT 1").WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))

	require.NoError(t, repo.Ping(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHealthRepository_PingUnavailable(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewHealthRepository(db)

	mock.ExpectQuery("SELECT 1").WillReturnError(context.DeadlineExceeded)

	err := repo.Ping(context.Background())
	assert.ErrorIs(t, err, domainerrors.ErrStoreUnavailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}
