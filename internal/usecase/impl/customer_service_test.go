package impl

import (
	"context"
	"testing"
	"time"

	"aeon/internal/domain/entity"
	domainerrors "aeon/internal/domain/errors"
	mockRepo "aeon/internal/mocks/repository"
	"aeon/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestCustomerService(t *testing.T) (usecase.CustomerUsecase, *mockRepo.MockCustomerRepository) {
	customerRepo := mockRepo.NewMockCustomerRepository(t)

	return NewCustomerService(CustomerServiceParams{
		CustomerRepo: customerRepo,
		Logger:       newDiscardLogger(),
	}), customerRepo
}

func TestCustomerService_CreateCustomer(t *testing.T) {
	service, customerRepo := createTestCustomerService(t)
	ctx := context.Background()
	createdAt := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

	customerRepo.EXPECT().
		Create(ctx, &entity.Customer{Name: "Walk-in", Phone: "011"}).
		Run(func(_ context.Context, c *entity.Customer) {
			c.ID = 5
			c.CreatedAt = createdAt
		}).
		Return(nil)

	customer, err := service.CreateCustomer(ctx, usecase.CustomerInput{Name: "Walk-in", Phone: "011"})

	require.NoError(t, err)
	assert.Equal(t, uint(5), customer.ID)
	assert.Equal(t, createdAt, customer.CreatedAt)
}

func TestCustomerService_CreateCustomer_NameRequired(t *testing.T) {
	service, _ := createTestCustomerService(t)

	_, err := service.CreateCustomer(context.Background(), usecase.CustomerInput{Email: "x@example.com"})

	assert.ErrorIs(t, err, domainerrors.ErrNameRequired)
}

func TestCustomerService_UpdateCustomer_ReturnsStoredRow(t *testing.T) {
	service, customerRepo := createTestCustomerService(t)
	ctx := context.Background()
	stored := &entity.Customer{ID: 5, Name: "Dara", Email: "dara@example.com", CreatedAt: time.Now()}

	customerRepo.EXPECT().Update(ctx, mock.MatchedBy(func(c *entity.Customer) bool { return c.ID == 5 })).Return(nil)
	customerRepo.EXPECT().FindByID(ctx, uint(5)).Return(stored, nil)

	customer, err := service.UpdateCustomer(ctx, 5, usecase.CustomerInput{Name: "Dara", Email: "dara@example.com"})

	require.NoError(t, err)
	assert.Same(t, stored, customer)
}

func TestCustomerService_UpdateCustomer_NotFound(t *testing.T) {
	service, customerRepo := createTestCustomerService(t)
	ctx := context.Background()

	customerRepo.EXPECT().Update(ctx, mock.Anything).Return(domainerrors.ErrCustomerNotFound)

	_, err := service.UpdateCustomer(ctx, 404, usecase.CustomerInput{Name: "Ghost"})

	assert.ErrorIs(t, err, domainerrors.ErrCustomerNotFound)
	customerRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}
