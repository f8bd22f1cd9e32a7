package impl

import (
	"context"

	"aeon/internal/domain/entity"
	"aeon/internal/domain/repository"
	"aeon/internal/usecase"

	"github.com/pkg/errors"
)

type paymentService struct {
	paymentRepo repository.PaymentMethodRepository
}

// NewPaymentService creates a new payment service instance
func NewPaymentService(paymentRepo repository.PaymentMethodRepository) usecase.PaymentUsecase {
	return &paymentService{paymentRepo: paymentRepo}
}

func (s *paymentService) ListPaymentMethods(ctx context.Context) ([]*entity.PaymentMethod, error) {
	methods, err := s.paymentRepo.ListActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payment methods")
	}

	return methods, nil
}

type healthService struct {
	healthRepo repository.HealthRepository
}

// NewHealthService creates a new health service instance
func NewHealthService(healthRepo repository.HealthRepository) usecase.HealthUsecase {
	return &healthService{healthRepo: healthRepo}
}

func (s *healthService) Check(ctx context.Context) error {
	if err := s.healthRepo.Ping(ctx); err != nil {
		return errors.Wrap(err, "store health check failed")
	}

	return nil
}
