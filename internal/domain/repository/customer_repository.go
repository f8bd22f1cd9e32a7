package repository

import (
	"context"

	"aeon/internal/domain/entity"
)

// CustomerRepository defines the interface for customer-related database operations.
type CustomerRepository interface {
	// List returns all customers, newest first.
	List(ctx context.Context) ([]*entity.Customer, error)

	// FindByID returns errors.ErrCustomerNotFound when the customer does not exist.
	FindByID(ctx context.Context, id uint) (*entity.Customer, error)

	// ExistsByEmail reports whether any customer already uses email.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Create inserts the customer and fills its ID and CreatedAt.
	Create(ctx context.Context, customer *entity.Customer) error

	// Update overwrites name, email, phone and address.
	Update(ctx context.Context, customer *entity.Customer) error

	Delete(ctx context.Context, id uint) error
}
