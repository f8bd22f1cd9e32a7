package store

import (
	"context"
	"time"

	"aeon/internal/domain/entity"
	domainerrors "aeon/internal/domain/errors"
	"aeon/internal/domain/repository"
	"aeon/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository is the constructor for customerRepository.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

func (repo *customerRepository) List(ctx context.Context) ([]*entity.Customer, error) {
	var rows []*model.CustomerModel
	if err := repo.db.WithContext(ctx).Order("id DESC").Find(&rows).Error; err != nil {
		return nil, translateError(err, "failed to list customers")
	}

	customers := make([]*entity.Customer, 0, len(rows))
	for _, row := range rows {
		customers = append(customers, toCustomerDomain(row))
	}

	return customers, nil
}

func (repo *customerRepository) FindByID(ctx context.Context, id uint) (*entity.Customer, error) {
	var rows []*model.CustomerModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&rows).Error; err != nil {
		return nil, translateError(err, "failed to find customer")
	}
	if len(rows) == 0 {
		return nil, domainerrors.ErrCustomerNotFound
	}

	return toCustomerDomain(rows[0]), nil
}

func (repo *customerRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, translateError(err, "failed to check customer email")
	}

	return count > 0, nil
}

// Create inserts the customer with created_at set to now.
func (repo *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	row := fromCustomerDomain(customer)
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now()
	}

	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailTaken
		}

		return translateError(err, "failed to create customer")
	}

	customer.ID = row.ID
	customer.CreatedAt = row.CreatedAt

	return nil
}

func (repo *customerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Where("id = ?", customer.ID).
		Updates(map[string]any{
			"name":    customer.Name,
			"email":   nullableString(customer.Email),
			"phone":   customer.Phone,
			"address": customer.Address,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrEmailTaken
		}

		return translateError(result.Error, "failed to update customer")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrCustomerNotFound
	}

	return nil
}

func (repo *customerRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CustomerModel{})
	if result.Error != nil {
		return translateError(result.Error, "failed to delete customer")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrCustomerNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toCustomerDomain(data *model.CustomerModel) *entity.Customer {
	customer := &entity.Customer{
		ID:        data.ID,
		Name:      data.Name,
		Phone:     data.Phone,
		Address:   data.Address,
		CreatedAt: data.CreatedAt,
	}
	if data.Email != nil {
		customer.Email = *data.Email
	}

	return customer
}

func fromCustomerDomain(data *entity.Customer) *model.CustomerModel {
	return &model.CustomerModel{
		ID:        data.ID,
		Name:      data.Name,
		Email:     nullableString(data.Email),
		Phone:     data.Phone,
		Address:   data.Address,
		CreatedAt: data.CreatedAt,
	}
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
