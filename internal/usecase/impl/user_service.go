package impl

import (
	"context"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"aeon/config"
	deliverycontext "aeon/internal/delivery/context"
	"aeon/internal/domain/entity"
	domainerrors "aeon/internal/domain/errors"
	"aeon/internal/domain/repository"
	"aeon/internal/domain/service"
	"aeon/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const registrationMessage = "Registration successful"

// userService implements the UserUsecase interface.
type userService struct {
	txManager         repository.TransactionManager
	userRepo          repository.UserRepository
	customerRepo      repository.CustomerRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	minPasswordLength int
	logger            *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	CustomerRepo repository.CustomerRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:         params.TxManager,
		userRepo:          params.UserRepo,
		customerRepo:      params.CustomerRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		minPasswordLength: params.Config.MinPasswordLength(),
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a customer and its login in one transaction. The user row reuses the customer id.
func (srv *userService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	if input.Name == "" || input.Email == "" || input.Phone == "" ||
		input.Address == "" || input.Username == "" || input.Password == "" {
		return nil, domainerrors.ErrRequiredFields
	}

	if utf8.RuneCountInString(input.Password) < srv.minPasswordLength {
		return nil, domainerrors.NewValidationError(
			fmt.Sprintf("Password must be at least %d characters", srv.minPasswordLength),
		)
	}

	if err := srv.ensureAvailable(ctx, input.Username, input.Email); err != nil {
		return nil, err
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	customer := &entity.Customer{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Address: input.Address,
	}
	user := &entity.User{
		Username: input.Username,
		Password: hashedPassword,
		Role:     entity.RoleCustomer,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.CustomerRepo().Create(ctx, customer); err != nil {
			return errors.Wrap(err, "failed to create customer during registration")
		}

		user.ID = customer.ID
		if err := repoFactory.UserRepo().Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create user during registration")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	srv.log(ctx).Info("Registration completed", slog.Any("user_id", user.ID), slog.String("username", user.Username))

	return &usecase.RegisterOutput{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
		Message:  registrationMessage,
	}, nil
}

// ensureAvailable checks username before email, each a distinct rejection.
func (srv *userService) ensureAvailable(ctx context.Context, username, email string) error {
	taken, err := srv.userRepo.ExistsByUsername(ctx, username)
	if err != nil {
		return errors.Wrap(err, "failed to check username")
	}
	if taken {
		return domainerrors.ErrUsernameTaken
	}

	taken, err = srv.customerRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return errors.Wrap(err, "failed to check email")
	}
	if taken {
		return domainerrors.ErrEmailTaken
	}

	return nil
}

// Login verifies the credentials. Unknown users and wrong passwords are indistinguishable to the caller.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	if input.Username == "" || input.Password == "" {
		return nil, domainerrors.ErrCredentialsRequired
	}

	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if errors.Is(err, domainerrors.ErrUserNotFound) {
		srv.log(ctx).Debug("Login attempt for unknown user", slog.String("username", input.Username))

		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(input.Password, user.Password) {
		srv.log(ctx).Warn("Password mismatch on login", slog.Any("user_id", user.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	output := &usecase.LoginOutput{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
	}

	if srv.tokenService.Enabled() {
		token, err := srv.tokenService.GenerateAccessToken(user.ID, user.Username, user.Role.String())
		if err != nil {
			return nil, errors.Wrap(err, "failed to generate access token")
		}
		output.AccessToken = token
	}

	return output, nil
}

func (srv *userService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}
