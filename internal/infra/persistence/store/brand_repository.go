package store

import (
	"context"

	"aeon/internal/domain/entity"
	domainerrors "aeon/internal/domain/errors"
	"aeon/internal/domain/repository"
	"aeon/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type brandRepository struct {
	db *gorm.DB
}

// NewBrandRepository is the constructor for brandRepository.
func NewBrandRepository(db *gorm.DB) repository.BrandRepository {
	return &brandRepository{db: db}
}

func (repo *brandRepository) List(ctx context.Context) ([]*entity.Brand, error) {
	var rows []*model.BrandModel
	if err := repo.db.WithContext(ctx).Order("id DESC").Find(&rows).Error; err != nil {
		return nil, translateError(err, "failed to list brands")
	}

	brands := make([]*entity.Brand, 0, len(rows))
	for _, row := range rows {
		brands = append(brands, &entity.Brand{ID: row.ID, Name: row.Name, Img: row.Img})
	}

	return brands, nil
}

func (repo *brandRepository) Create(ctx context.Context, brand *entity.Brand) error {
	row := &model.BrandModel{Name: brand.Name, Img: brand.Img}
	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		return translateError(err, "failed to create brand")
	}
	brand.ID = row.ID

	return nil
}

func (repo *brandRepository) Update(ctx context.Context, brand *entity.Brand) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BrandModel{}).
		Where("id = ?", brand.ID).
		Updates(map[string]any{"name": brand.Name, "img": brand.Img})
	if result.Error != nil {
		return translateError(result.Error, "failed to update brand")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrBrandNotFound
	}

	return nil
}

func (repo *brandRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.BrandModel{})
	if result.Error != nil {
		return translateError(result.Error, "failed to delete brand")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrBrandNotFound
	}

	return nil
}
