package store

import (
	"context"
	"testing"
	"time"

	"aeon/internal/domain/entity"
	domainerrors "aeon/internal/domain/errors"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/DATA-DOG/go-sqlmock.v1"
)

func TestBrandRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBrandRepository(db)

	mock.ExpectQuery("SELECT \\* FROM `brands` ORDER BY id DESC").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "img"}).
			AddRow(2, "Acme", "./img/brand/1-acme.png").
			AddRow(1, "Globex", ""))

	brands, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, brands, 2)
	assert.Equal(t, &entity.Brand{ID: 2, Name: "Acme", Img: "./img/brand/1-acme.png"}, brands[0])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBrandRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBrandRepository(db)

	mock.ExpectExec("INSERT INTO `brands`").
		WithArgs("Acme", "./img/brand/1-acme.png").
		WillReturnResult(sqlmock.NewResult(7, 1))

	brand := &entity.Brand{Name: "Acme", Img: "./img/brand/1-acme.png"}
	require.NoError(t, repo.Create(context.Background(), brand))
	assert.Equal(t, uint(7), brand.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBrandRepository_UpdateNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBrandRepository(db)

	mock.ExpectExec("UPDATE `brands` SET").WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &entity.Brand{ID: 404, Name: "Ghost"})
	assert.ErrorIs(t, err, domainerrors.ErrBrandNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepository_DeleteNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCategoryRepository(db)

	mock.ExpectExec("DELETE FROM `categories` WHERE id = \\?").
		WithArgs(9).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 9)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_FindByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	cols := []string{"id", "name", "img", "price", "category_id", "brand_id", "category_name", "brand_name"}
	mock.ExpectQuery("SELECT p.id, p.name, p.img, p.price.+FROM products AS p LEFT JOIN categories c.+LEFT JOIN brands b.+WHERE p.id = \\?").
		WithArgs(5, 1).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(5, "Kettle", "", "29.99", 2, nil, "Kitchen", nil))

	product, err := repo.FindByID(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, "Kettle", product.Name)
	assert.True(t, decimal.RequireFromString("29.99").Equal(product.Price))
	assert.Nil(t, product.BrandID)
	require.NotNil(t, product.CategoryName)
	assert.Equal(t, "Kitchen", *product.CategoryName)
	assert.Nil(t, product.BrandName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_FindByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	mock.ExpectQuery("FROM products AS p").WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByID(context.Background(), 5)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProductRepository_SearchUsesContainsPattern(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	mock.ExpectQuery("WHERE p.name LIKE \\? ORDER BY p.id DESC").
		WithArgs("%kett%").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(5, "Kettle"))

	products, err := repo.Search(context.Background(), "kett")

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, uint(5), products[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerRepository_CreateDuplicateEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCustomerRepository(db)

	mock.ExpectExec("INSERT INTO `customers`").
		WillReturnError(&mysqldriver.MySQLError{Number: 1062, Message: "Duplicate entry 'a@b.c' for key 'email'"})

	err := repo.Create(context.Background(), &entity.Customer{Name: "A", Email: "a@b.c"})
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerRepository_ExistsByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCustomerRepository(db)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `customers` WHERE email = \\?").
		WithArgs("a@b.c").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))

	exists, err := repo.ExistsByEmail(context.Background(), "a@b.c")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_CreateKeepsCustomerID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec("INSERT INTO `users` \\(`username`,`password`,`role`,`id`\\)").
		WithArgs("jdoe", "$2a$10$hash", "customer", 12).
		WillReturnResult(sqlmock.NewResult(12, 1))

	user := &entity.User{ID: 12, Username: "jdoe", Password: "$2a$10$hash", Role: entity.RoleCustomer}
	require.NoError(t, repo.Create(context.Background(), user))
	assert.Equal(t, uint(12), user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByUsernameNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery("SELECT \\* FROM `users` WHERE username = \\?").
		WithArgs("nobody", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password", "role"}))

	_, err := repo.FindByUsername(context.Background(), "nobody")
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestOrderRepository_FindByIDWithItems(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db)
	placed := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery("FROM orders AS o LEFT JOIN customers c ON o.customer_id = c.id WHERE o.id = \\?").
		WithArgs(3, 1).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "customer_id", "customer_name", "email", "phone", "address", "total_amount", "status", "order_date", "payment_method_id",
		}).AddRow(3, 1, "Jane", "jane@example.com", "555", "Main St", "29.99", "pending", placed, nil))
	mock.ExpectQuery("FROM order_items AS oi LEFT JOIN products p ON oi.product_id = p.id WHERE oi.order_id = \\?").
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "product_id", "product_name", "quantity", "price"}).
			AddRow(8, 3, 5, "Kettle", 1, "29.99"))

	order, err := repo.FindByID(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	require.NotNil(t, order.CustomerEmail)
	assert.Equal(t, "jane@example.com", *order.CustomerEmail)
	require.Len(t, order.Items, 1)
	assert.True(t, decimal.RequireFromString("29.99").Equal(order.Items[0].Price))
	assert.Equal(t, "Kettle", *order.Items[0].ProductName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_DeleteItemsThenHeaderNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db)

	mock.ExpectExec("DELETE FROM `order_items` WHERE order_id = \\?").
		WithArgs(999).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM `orders` WHERE id = \\?").
		WithArgs(999).
		WillReturnResult(sqlmock.NewResult(0, 0))

	removed, err := repo.DeleteItems(context.Background(), 999)
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	err = repo.Delete(context.Background(), 999)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
