package impl

import (
	"context"
	"log/slog"

	"aeon/internal/domain/entity"
	domainerrors "aeon/internal/domain/errors"
	"aeon/internal/domain/repository"
	"aeon/internal/domain/service"
	"aeon/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// DefaultPaymentMethods are inserted by Migrate when missing.
var DefaultPaymentMethods = []entity.PaymentMethod{
	{Name: "Credit Card", Description: "Pay with credit or debit card", IsActive: true},
	{Name: "Cash on Delivery", Description: "Pay with cash when receiving the order", IsActive: true},
	{Name: "Bank Transfer", Description: "Transfer money directly to our bank account", IsActive: true},
	{Name: "Mobile Payment", Description: "Pay using mobile payment services", IsActive: true},
}

type sampleAccount struct {
	username string
	password string
	role     entity.Role
	customer entity.Customer
}

var sampleAccounts = []sampleAccount{
	{
		username: "admin",
		password: "admin123",
		role:     entity.RoleAdmin,
	},
	{
		username: "user",
		password: "user123",
		role:     entity.RoleCustomer,
		customer: entity.Customer{
			Name:    "Customer User",
			Email:   "user@aeoncommerce.com",
			Phone:   "098-765-4321",
			Address: "Customer Address",
		},
	},
}

// maintenanceService implements the MaintenanceUsecase interface.
type maintenanceService struct {
	txManager  repository.TransactionManager
	schemaRepo repository.SchemaRepository
	healthRepo repository.HealthRepository
	hasher     service.PasswordHasher
	logger     *slog.Logger
}

// MaintenanceServiceParams holds dependencies for MaintenanceService, injected by Fx.
type MaintenanceServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	SchemaRepo repository.SchemaRepository
	HealthRepo repository.HealthRepository
	Hasher     service.PasswordHasher
	Logger     *slog.Logger
}

// NewMaintenanceService is the constructor for maintenanceService.
func NewMaintenanceService(params MaintenanceServiceParams) usecase.MaintenanceUsecase {
	return &maintenanceService{
		txManager:  params.TxManager,
		schemaRepo: params.SchemaRepo,
		healthRepo: params.HealthRepo,
		hasher:     params.Hasher,
		logger:     params.Logger,
	}
}

func (srv *maintenanceService) Migrate(ctx context.Context) error {
	if err := srv.schemaRepo.Migrate(ctx); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		paymentRepo := repoFactory.PaymentMethodRepo()
		for i := range DefaultPaymentMethods {
			method := DefaultPaymentMethods[i]
			if err := paymentRepo.EnsureExists(ctx, &method); err != nil {
				return errors.Wrapf(err, "failed to seed payment method %q", method.Name)
			}
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to seed payment methods")
	}

	srv.logger.Info("Schema migrated", slog.Int("payment_methods", len(DefaultPaymentMethods)))

	return nil
}

// SeedUsers creates the sample accounts, or resets password and role of existing ones.
// The customer account is created together with its customer row.
func (srv *maintenanceService) SeedUsers(ctx context.Context) ([]usecase.SeededUser, error) {
	seeded := make([]usecase.SeededUser, 0, len(sampleAccounts))

	for _, account := range sampleAccounts {
		hash, err := srv.hasher.Hash(account.password)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to hash password for %s", account.username)
		}

		var created bool
		err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			var txErr error
			created, txErr = seedAccount(ctx, repoFactory, account, hash)

			return txErr
		})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to seed user %s", account.username)
		}

		srv.logger.Info("Sample user seeded", slog.String("username", account.username), slog.Bool("created", created))
		seeded = append(seeded, usecase.SeededUser{Username: account.username, Role: account.role, Created: created})
	}

	return seeded, nil
}

func seedAccount(ctx context.Context, repoFactory repository.RepositoryFactory, account sampleAccount, hash string) (bool, error) {
	userRepo := repoFactory.UserRepo()
	customerRepo := repoFactory.CustomerRepo()

	existing, err := userRepo.FindByUsername(ctx, account.username)
	switch {
	case err == nil:
		existing.Password = hash
		existing.Role = account.role
		if err := userRepo.Update(ctx, existing); err != nil {
			return false, errors.Wrap(err, "failed to update user")
		}

		if account.role == entity.RoleCustomer {
			customer := account.customer
			customer.ID = existing.ID
			if err := customerRepo.Update(ctx, &customer); err != nil && !errors.Is(err, domainerrors.ErrCustomerNotFound) {
				return false, errors.Wrap(err, "failed to update customer")
			}
		}

		return false, nil
	case !errors.Is(err, domainerrors.ErrUserNotFound):
		return false, errors.Wrap(err, "failed to find user")
	}

	user := &entity.User{Username: account.username, Password: hash, Role: account.role}
	if account.role == entity.RoleCustomer {
		customer := account.customer
		if err := customerRepo.Create(ctx, &customer); err != nil {
			return false, errors.Wrap(err, "failed to create customer")
		}
		user.ID = customer.ID
	}

	if err := userRepo.Create(ctx, user); err != nil {
		return false, errors.Wrap(err, "failed to create user")
	}

	return true, nil
}

func (srv *maintenanceService) Ping(ctx context.Context) error {
	if err := srv.healthRepo.Ping(ctx); err != nil {
		return errors.Wrap(err, "failed to ping database")
	}

	return nil
}

func (srv *maintenanceService) Tables(ctx context.Context) ([]entity.TableInfo, error) {
	tables, err := srv.schemaRepo.Tables(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to describe tables")
	}

	return tables, nil
}
