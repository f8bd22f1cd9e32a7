package impl

import (
	"context"
	"testing"

	"aeon/internal/domain/entity"
	domainerrors "aeon/internal/domain/errors"
	mockRepo "aeon/internal/mocks/repository"
	mockSvc "aeon/internal/mocks/service"
	"aeon/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type maintenanceServiceFixtures struct {
	service    usecase.MaintenanceUsecase
	txManager  *mockRepo.MockTransactionManager
	schemaRepo *mockRepo.MockSchemaRepository
	healthRepo *mockRepo.MockHealthRepository
	hasher     *mockSvc.MockPasswordHasher
}

func createTestMaintenanceService(t *testing.T) maintenanceServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	schemaRepo := mockRepo.NewMockSchemaRepository(t)
	healthRepo := mockRepo.NewMockHealthRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	return maintenanceServiceFixtures{
		service: NewMaintenanceService(MaintenanceServiceParams{
			TxManager:  txManager,
			SchemaRepo: schemaRepo,
			HealthRepo: healthRepo,
			Hasher:     hasher,
			Logger:     newDiscardLogger(),
		}),
		txManager:  txManager,
		schemaRepo: schemaRepo,
		healthRepo: healthRepo,
		hasher:     hasher,
	}
}

func TestMaintenanceService_Migrate_SeedsPaymentMethods(t *testing.T) {
	fx := createTestMaintenanceService(t)
	ctx := context.Background()

	fx.schemaRepo.EXPECT().Migrate(ctx).Return(nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	paymentRepo := mockRepo.NewMockPaymentMethodRepository(t)
	expectTx(ctx, fx.txManager, factory)
	factory.EXPECT().PaymentMethodRepo().Return(paymentRepo)

	var seeded []string
	paymentRepo.EXPECT().EnsureExists(ctx, mock.AnythingOfType("*entity.PaymentMethod")).
		Run(func(_ context.Context, m *entity.PaymentMethod) { seeded = append(seeded, m.Name) }).
		Return(nil).
		Times(len(DefaultPaymentMethods))

	require.NoError(t, fx.service.Migrate(ctx))
	assert.Equal(t, []string{"Credit Card", "Cash on Delivery", "Bank Transfer", "Mobile Payment"}, seeded)
}

func TestMaintenanceService_Migrate_SchemaFailure(t *testing.T) {
	fx := createTestMaintenanceService(t)
	ctx := context.Background()

	fx.schemaRepo.EXPECT().Migrate(ctx).Return(domainerrors.ErrStoreUnavailable)

	err := fx.service.Migrate(ctx)

	assert.ErrorIs(t, err, domainerrors.ErrStoreUnavailable)
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestMaintenanceService_SeedUsers_CreatesMissingAccounts(t *testing.T) {
	fx := createTestMaintenanceService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("admin123").Return("admin_hash", nil)
	fx.hasher.EXPECT().Hash("user123").Return("user_hash", nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	users := mockRepo.NewMockUserRepository(t)
	customers := mockRepo.NewMockCustomerRepository(t)
	expectTx(ctx, fx.txManager, factory)
	factory.EXPECT().UserRepo().Return(users)
	factory.EXPECT().CustomerRepo().Return(customers)

	users.EXPECT().FindByUsername(ctx, mock.Anything).Return(nil, domainerrors.ErrUserNotFound)
	customers.EXPECT().
		Create(ctx, mock.MatchedBy(func(c *entity.Customer) bool { return c.Email == "user@aeoncommerce.com" })).
		Run(func(_ context.Context, c *entity.Customer) { c.ID = 7 }).
		Return(nil).
		Once()
	users.EXPECT().
		Create(ctx, &entity.User{Username: "admin", Password: "admin_hash", Role: entity.RoleAdmin}).
		Return(nil).
		Once()
	users.EXPECT().
		Create(ctx, &entity.User{ID: 7, Username: "user", Password: "user_hash", Role: entity.RoleCustomer}).
		Return(nil).
		Once()

	seeded, err := fx.service.SeedUsers(ctx)

	require.NoError(t, err)
	assert.Equal(t, []usecase.SeededUser{
		{Username: "admin", Role: entity.RoleAdmin, Created: true},
		{Username: "user", Role: entity.RoleCustomer, Created: true},
	}, seeded)
}

func TestMaintenanceService_SeedUsers_ResetsExistingAccounts(t *testing.T) {
	fx := createTestMaintenanceService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash(mock.Anything).Return("new_hash", nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	users := mockRepo.NewMockUserRepository(t)
	customers := mockRepo.NewMockCustomerRepository(t)
	expectTx(ctx, fx.txManager, factory)
	factory.EXPECT().UserRepo().Return(users)
	factory.EXPECT().CustomerRepo().Return(customers)

	users.EXPECT().FindByUsername(ctx, "admin").Return(&entity.User{ID: 1, Username: "admin", Password: "old", Role: entity.RoleCustomer}, nil)
	users.EXPECT().FindByUsername(ctx, "user").Return(&entity.User{ID: 2, Username: "user", Password: "old", Role: entity.RoleCustomer}, nil)
	users.EXPECT().
		Update(ctx, mock.MatchedBy(func(u *entity.User) bool { return u.Password == "new_hash" })).
		Return(nil).
		Times(2)
	customers.EXPECT().
		Update(ctx, mock.MatchedBy(func(c *entity.Customer) bool { return c.ID == 2 && c.Name == "Customer User" })).
		Return(domainerrors.ErrCustomerNotFound)

	seeded, err := fx.service.SeedUsers(ctx)

	require.NoError(t, err)
	require.Len(t, seeded, 2)
	assert.False(t, seeded[0].Created)
	assert.False(t, seeded[1].Created)
}

func TestMaintenanceService_Ping(t *testing.T) {
	fx := createTestMaintenanceService(t)
	ctx := context.Background()

	fx.healthRepo.EXPECT().Ping(ctx).Return(domainerrors.ErrStoreUnavailable)

	assert.ErrorIs(t, fx.service.Ping(ctx), domainerrors.ErrStoreUnavailable)
}
