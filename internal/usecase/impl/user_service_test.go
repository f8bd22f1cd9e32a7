package impl

import (
	"context"
	"testing"

	"aeon/internal/domain/entity"
	domainerrors "aeon/internal/domain/errors"
	mockRepo "aeon/internal/mocks/repository"
	mockSvc "aeon/internal/mocks/service"
	"aeon/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	customerRepo *mockRepo.MockCustomerRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	customerRepo := mockRepo.NewMockCustomerRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewUserService(UserServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		CustomerRepo: customerRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Config:       newTestConfig(6),
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		service:      service,
		txManager:    txManager,
		userRepo:     userRepo,
		customerRepo: customerRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func validRegisterInput() usecase.RegisterInput {
	return usecase.RegisterInput{
		Name:     "Dara Sok",
		Email:    "dara@example.com",
		Phone:    "012-345-678",
		Address:  "Phnom Penh",
		Username: "dara",
		Password: "secret1",
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	input := validRegisterInput()

	fx.userRepo.EXPECT().ExistsByUsername(ctx, "dara").Return(false, nil)
	fx.customerRepo.EXPECT().ExistsByEmail(ctx, "dara@example.com").Return(false, nil)
	fx.hasher.EXPECT().Hash("secret1").Return("hashed_password", nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	txCustomers := mockRepo.NewMockCustomerRepository(t)
	txUsers := mockRepo.NewMockUserRepository(t)
	expectTx(ctx, fx.txManager, factory)
	factory.EXPECT().CustomerRepo().Return(txCustomers)
	factory.EXPECT().UserRepo().Return(txUsers)

	txCustomers.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Customer")).
		Run(func(_ context.Context, c *entity.Customer) { c.ID = 42 }).
		Return(nil)
	txUsers.EXPECT().
		Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.ID == 42 && u.Username == "dara" && u.Password == "hashed_password" && u.Role == entity.RoleCustomer
		})).
		Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, &usecase.RegisterOutput{
		ID:       42,
		Username: "dara",
		Role:     entity.RoleCustomer,
		Message:  "Registration successful",
	}, output)
}

func TestUserService_Register_RequiredFields(t *testing.T) {
	fx := createTestUserService(t)
	input := validRegisterInput()
	input.Address = ""

	output, err := fx.service.Register(context.Background(), input)

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrRequiredFields)
}

func TestUserService_Register_ShortPasswordNeverReachesStore(t *testing.T) {
	fx := createTestUserService(t)
	input := validRegisterInput()
	input.Password = "12345"

	output, err := fx.service.Register(context.Background(), input)

	assert.Nil(t, output)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 400, appErr.HTTPCode())
	assert.Equal(t, "Password must be at least 6 characters", appErr.Message())
}

func TestUserService_Register_PasswordLengthCountsCharacters(t *testing.T) {
	fx := createTestUserService(t)
	input := validRegisterInput()
	// Five characters, more than six bytes.
	input.Password = "ñññññ"

	_, err := fx.service.Register(context.Background(), input)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.CodeValidationFailed, appErr.ErrorCode())
}

func TestUserService_Register_UsernameTaken(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().ExistsByUsername(ctx, "dara").Return(true, nil)

	output, err := fx.service.Register(ctx, validRegisterInput())

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUsernameTaken)
	fx.customerRepo.AssertNotCalled(t, "ExistsByEmail", mock.Anything, mock.Anything)
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestUserService_Register_EmailTaken(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().ExistsByUsername(ctx, "dara").Return(false, nil)
	fx.customerRepo.EXPECT().ExistsByEmail(ctx, "dara@example.com").Return(true, nil)

	_, err := fx.service.Register(ctx, validRegisterInput())

	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
	fx.hasher.AssertNotCalled(t, "Hash", mock.Anything)
}

func TestUserService_Register_UserInsertFailureSurfaces(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	storeErr := domainerrors.NewDatabaseExecuteError(errors.New("Duplicate entry '42' for key 'PRIMARY'"), "failed to create user")

	fx.userRepo.EXPECT().ExistsByUsername(ctx, "dara").Return(false, nil)
	fx.customerRepo.EXPECT().ExistsByEmail(ctx, "dara@example.com").Return(false, nil)
	fx.hasher.EXPECT().Hash("secret1").Return("hashed_password", nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	txCustomers := mockRepo.NewMockCustomerRepository(t)
	txUsers := mockRepo.NewMockUserRepository(t)
	expectTx(ctx, fx.txManager, factory)
	factory.EXPECT().CustomerRepo().Return(txCustomers)
	factory.EXPECT().UserRepo().Return(txUsers)
	txCustomers.EXPECT().Create(ctx, mock.Anything).
		Run(func(_ context.Context, c *entity.Customer) { c.ID = 42 }).
		Return(nil)
	txUsers.EXPECT().Create(ctx, mock.Anything).Return(storeErr)

	output, err := fx.service.Register(ctx, validRegisterInput())

	assert.Nil(t, output)
	assert.ErrorIs(t, err, storeErr)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByUsername(ctx, "admin").Return(&entity.User{
		ID: 1, Username: "admin", Password: "hash", Role: entity.RoleAdmin,
	}, nil)
	fx.hasher.EXPECT().Check("admin123", "hash").Return(true)
	fx.tokenService.EXPECT().Enabled().Return(true)
	fx.tokenService.EXPECT().GenerateAccessToken(uint(1), "admin", "admin").Return("signed.jwt", nil)

	output, err := fx.service.Login(ctx, usecase.LoginInput{Username: "admin", Password: "admin123"})

	require.NoError(t, err)
	assert.Equal(t, &usecase.LoginOutput{ID: 1, Username: "admin", Role: entity.RoleAdmin, AccessToken: "signed.jwt"}, output)
}

func TestUserService_Login_WithoutSigningSecret(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByUsername(ctx, "user").Return(&entity.User{
		ID: 2, Username: "user", Password: "hash", Role: entity.RoleCustomer,
	}, nil)
	fx.hasher.EXPECT().Check("user123", "hash").Return(true)
	fx.tokenService.EXPECT().Enabled().Return(false)

	output, err := fx.service.Login(ctx, usecase.LoginInput{Username: "user", Password: "user123"})

	require.NoError(t, err)
	assert.Empty(t, output.AccessToken)
	assert.Equal(t, entity.RoleCustomer, output.Role)
}

func TestUserService_Login_InvalidCredentials(t *testing.T) {
	t.Run("unknown user", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()
		fx.userRepo.EXPECT().FindByUsername(ctx, "ghost").Return(nil, domainerrors.ErrUserNotFound)

		_, err := fx.service.Login(ctx, usecase.LoginInput{Username: "ghost", Password: "whatever"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()
		fx.userRepo.EXPECT().FindByUsername(ctx, "admin").Return(&entity.User{ID: 1, Username: "admin", Password: "hash"}, nil)
		fx.hasher.EXPECT().Check("nope", "hash").Return(false)

		_, err := fx.service.Login(ctx, usecase.LoginInput{Username: "admin", Password: "nope"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("missing fields", func(t *testing.T) {
		fx := createTestUserService(t)

		_, err := fx.service.Login(context.Background(), usecase.LoginInput{Username: "admin"})

		assert.ErrorIs(t, err, domainerrors.ErrCredentialsRequired)
	})
}
