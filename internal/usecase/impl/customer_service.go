package impl

import (
	"context"
	"log/slog"

	deliverycontext "aeon/internal/delivery/context"
	"aeon/internal/domain/entity"
	domainerrors "aeon/internal/domain/errors"
	"aeon/internal/domain/repository"
	"aeon/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// customerService implements the CustomerUsecase interface.
type customerService struct {
	customerRepo repository.CustomerRepository
	logger       *slog.Logger
}

// CustomerServiceParams holds dependencies for CustomerService, injected by Fx.
type CustomerServiceParams struct {
	fx.In

	CustomerRepo repository.CustomerRepository
	Logger       *slog.Logger
}

// NewCustomerService is the constructor for customerService.
func NewCustomerService(params CustomerServiceParams) usecase.CustomerUsecase {
	return &customerService{
		customerRepo: params.CustomerRepo,
		logger:       params.Logger,
	}
}

func (srv *customerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *customerService) ListCustomers(ctx context.Context) ([]*entity.Customer, error) {
	customers, err := srv.customerRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customers")
	}

	return customers, nil
}

func (srv *customerService) CreateCustomer(ctx context.Context, input usecase.CustomerInput) (*entity.Customer, error) {
	if input.Name == "" {
		return nil, domainerrors.ErrNameRequired
	}

	customer := &entity.Customer{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Address: input.Address,
	}
	if err := srv.customerRepo.Create(ctx, customer); err != nil {
		return nil, errors.Wrap(err, "failed to create customer")
	}

	srv.log(ctx).Debug("Customer created", slog.Any("customer_id", customer.ID))

	return customer, nil
}

// UpdateCustomer overwrites the contact fields and returns the re-read row.
func (srv *customerService) UpdateCustomer(ctx context.Context, id uint, input usecase.CustomerInput) (*entity.Customer, error) {
	customer := &entity.Customer{
		ID:      id,
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Address: input.Address,
	}
	if err := srv.customerRepo.Update(ctx, customer); err != nil {
		return nil, errors.Wrap(err, "failed to update customer")
	}

	updated, err := srv.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload customer")
	}

	return updated, nil
}

func (srv *customerService) DeleteCustomer(ctx context.Context, id uint) error {
	if err := srv.customerRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete customer")
	}

	return nil
}
