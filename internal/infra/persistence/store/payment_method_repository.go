package store

import (
	"context"

	"aeon/internal/domain/entity"
	"aeon/internal/domain/repository"
	"aeon/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type paymentMethodRepository struct {
	db *gorm.DB
}

// NewPaymentMethodRepository is the constructor for paymentMethodRepository.
func NewPaymentMethodRepository(db *gorm.DB) repository.PaymentMethodRepository {
	return &paymentMethodRepository{db: db}
}

func (repo *paymentMethodRepository) ListActive(ctx context.Context) ([]*entity.PaymentMethod, error) {
	var rows []*model.PaymentMethodModel
	if err := repo.db.WithContext(ctx).Where("is_active = ?", true).Order("id").Find(&rows).Error; err != nil {
		return nil, translateError(err, "failed to list payment methods")
	}

	methods := make([]*entity.PaymentMethod, 0, len(rows))
	for _, row := range rows {
		methods = append(methods, &entity.PaymentMethod{
			ID:          row.ID,
			Name:        row.Name,
			Description: row.Description,
			IsActive:    row.IsActive,
			CreatedAt:   row.CreatedAt,
		})
	}

	return methods, nil
}

func (repo *paymentMethodRepository) EnsureExists(ctx context.Context, method *entity.PaymentMethod) error {
	row := model.PaymentMethodModel{
		Name:        method.Name,
		Description: method.Description,
		IsActive:    method.IsActive,
	}
	if err := repo.db.WithContext(ctx).
		Where(model.PaymentMethodModel{Name: method.Name}).
		Attrs(row).
		FirstOrCreate(&row).Error; err != nil {
		return translateError(err, "failed to ensure payment method")
	}

	method.ID = row.ID
	method.CreatedAt = row.CreatedAt

	return nil
}
