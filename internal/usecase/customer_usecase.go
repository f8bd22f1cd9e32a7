package usecase

import (
	"context"

	"aeon/internal/domain/entity"
)

// CustomerInput defines the editable fields of a customer.
type CustomerInput struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

// CustomerUsecase defines customer management.
type CustomerUsecase interface {
	ListCustomers(ctx context.Context) ([]*entity.Customer, error)
	CreateCustomer(ctx context.Context, input CustomerInput) (*entity.Customer, error)
	// UpdateCustomer returns the customer as stored after the update.
	UpdateCustomer(ctx context.Context, id uint, input CustomerInput) (*entity.Customer, error)
	DeleteCustomer(ctx context.Context, id uint) error
}
