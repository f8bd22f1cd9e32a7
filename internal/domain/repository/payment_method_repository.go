package repository

import (
	"context"

	"aeon/internal/domain/entity"
)

// PaymentMethodRepository defines payment method persistence.
type PaymentMethodRepository interface {
	// ListActive returns the active methods ordered by id.
	ListActive(ctx context.Context) ([]*entity.PaymentMethod, error)

	// EnsureExists inserts the method unless one with the same name exists.
	EnsureExists(ctx context.Context, method *entity.PaymentMethod) error
}
