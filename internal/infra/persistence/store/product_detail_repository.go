package store

import (
	"context"

	"aeon/internal/domain/entity"
	domainerrors "aeon/internal/domain/errors"
	"aeon/internal/domain/repository"
	"aeon/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type productDetailRepository struct {
	db *gorm.DB
}

// NewProductDetailRepository is the constructor for productDetailRepository.
func NewProductDetailRepository(db *gorm.DB) repository.ProductDetailRepository {
	return &productDetailRepository{db: db}
}

func (repo *productDetailRepository) ListByProduct(ctx context.Context, productID uint) ([]entity.ProductDetail, error) {
	var rows []*model.ProductDetailModel
	if err := repo.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("id").
		Find(&rows).Error; err != nil {
		return nil, translateError(err, "failed to list product details")
	}

	details := make([]entity.ProductDetail, 0, len(rows))
	for _, row := range rows {
		details = append(details, entity.ProductDetail{
			ID:          row.ID,
			DetailName:  row.DetailName,
			DetailValue: row.DetailValue,
		})
	}

	return details, nil
}

func (repo *productDetailRepository) Create(ctx context.Context, detail *entity.ProductDetail) error {
	row := &model.ProductDetailModel{
		ProductID:   detail.ProductID,
		DetailName:  detail.DetailName,
		DetailValue: detail.DetailValue,
	}
	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		return translateError(err, "failed to create product detail")
	}
	detail.ID = row.ID

	return nil
}

func (repo *productDetailRepository) Update(ctx context.Context, detail *entity.ProductDetail) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductDetailModel{}).
		Where("id = ?", detail.ID).
		Updates(map[string]any{"detail_name": detail.DetailName, "detail_value": detail.DetailValue})
	if result.Error != nil {
		return translateError(result.Error, "failed to update product detail")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrProductDetailNotFound
	}

	return nil
}

func (repo *productDetailRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ProductDetailModel{})
	if result.Error != nil {
		return translateError(result.Error, "failed to delete product detail")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrProductDetailNotFound
	}

	return nil
}
