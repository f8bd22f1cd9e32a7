package store

import (
	"context"
	"testing"

	"aeon/internal/domain/entity"
	"aeon/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/DATA-DOG/go-sqlmock.v1"
)

func TestTransactionManager_CommitsOrderWithItems(t *testing.T) {
	db, mock := newMockDB(t)
	txManager := NewTransactionManager(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `orders`").WillReturnResult(sqlmock.NewResult(10, 1))
	mock.ExpectExec("INSERT INTO `order_items`").
		WithArgs(10, 3, 1, "29.99").
		WillReturnResult(sqlmock.NewResult(100, 1))
	mock.ExpectExec("INSERT INTO `order_items`").
		WithArgs(10, 4, 2, "5.5").
		WillReturnResult(sqlmock.NewResult(101, 1))
	mock.ExpectCommit()

	order := &entity.Order{CustomerID: 1, TotalAmount: decimal.RequireFromString("40.99"), Status: entity.OrderStatusPending}
	items := []entity.OrderItem{
		{ProductID: 3, Quantity: 1, Price: decimal.RequireFromString("29.99")},
		{ProductID: 4, Quantity: 2, Price: decimal.RequireFromString("5.50")},
	}

	err := txManager.Execute(context.Background(), func(factory repository.RepositoryFactory) error {
		orderRepo := factory.OrderRepo()
		if err := orderRepo.Create(context.Background(), order); err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = order.ID
			if err := orderRepo.CreateItem(context.Background(), &items[i]); err != nil {
				return err
			}
		}

		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, uint(10), order.ID)
	assert.Equal(t, uint(100), items[0].ID)
	assert.Equal(t, uint(101), items[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_RollsBackOnItemFailure(t *testing.T) {
	db, mock := newMockDB(t)
	txManager := NewTransactionManager(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `orders`").WillReturnResult(sqlmock.NewResult(11, 1))
	mock.ExpectExec("INSERT INTO `order_items`").WillReturnError(errors.New("Cannot add or update a child row"))
	mock.ExpectRollback()

	err := txManager.Execute(context.Background(), func(factory repository.RepositoryFactory) error {
		order := &entity.Order{CustomerID: 1, TotalAmount: decimal.NewFromInt(10), Status: entity.OrderStatusPending}
		if err := factory.OrderRepo().Create(context.Background(), order); err != nil {
			return err
		}

		return factory.OrderRepo().CreateItem(context.Background(), &entity.OrderItem{
			OrderID: order.ID, ProductID: 999, Quantity: 1, Price: decimal.NewFromInt(10),
		})
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Cannot add or update a child row")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_RollsBackOnPanic(t *testing.T) {
	db, mock := newMockDB(t)
	txManager := NewTransactionManager(db)

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.PanicsWithValue(t, "boom", func() {
		_ = txManager.Execute(context.Background(), func(repository.RepositoryFactory) error {
			panic("boom")
		})
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_BeginFailureIsUnavailable(t *testing.T) {
	db, mock := newMockDB(t)
	txManager := NewTransactionManager(db)

	mock.ExpectBegin().WillReturnError(errors.New("dial tcp 127.0.0.1:3306: connect: connection refused"))

	called := false
	err := txManager.Execute(context.Background(), func(repository.RepositoryFactory) error {
		called = true

		return nil
	})

	require.Error(t, err)
	assert.False(t, called)
	assert.Contains(t, err.Error(), "unavailable")
}
