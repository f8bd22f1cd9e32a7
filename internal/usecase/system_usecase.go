package usecase

import (
	"context"

	"aeon/internal/domain/entity"
)

// PaymentUsecase exposes the payment methods offered at checkout.
type PaymentUsecase interface {
	ListPaymentMethods(ctx context.Context) ([]*entity.PaymentMethod, error)
}

// HealthUsecase reports service liveness.
type HealthUsecase interface {
	// Check returns an error when the store cannot be reached.
	Check(ctx context.Context) error
}

// MaintenanceUsecase backs the database maintenance tool.
type MaintenanceUsecase interface {
	// Migrate creates the schema and seeds the default payment methods.
	Migrate(ctx context.Context) error
	// SeedUsers creates or resets the sample admin and customer accounts.
	SeedUsers(ctx context.Context) ([]SeededUser, error)
	Ping(ctx context.Context) error
	Tables(ctx context.Context) ([]entity.TableInfo, error)
}

// SeededUser reports the outcome for one sample account.
type SeededUser struct {
	Username string
	Role     entity.Role
	Created  bool
}
