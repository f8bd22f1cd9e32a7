package store

import (
	"context"

	"aeon/internal/domain/entity"
	domainerrors "aeon/internal/domain/errors"
	"aeon/internal/domain/repository"
	"aeon/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

func (repo *categoryRepository) List(ctx context.Context) ([]*entity.Category, error) {
	var rows []*model.CategoryModel
	if err := repo.db.WithContext(ctx).Order("id DESC").Find(&rows).Error; err != nil {
		return nil, translateError(err, "failed to list categories")
	}

	categories := make([]*entity.Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, &entity.Category{ID: row.ID, Name: row.Name, Img: row.Img})
	}

	return categories, nil
}

func (repo *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	row := &model.CategoryModel{Name: category.Name, Img: category.Img}
	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		return translateError(err, "failed to create category")
	}
	category.ID = row.ID

	return nil
}

func (repo *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("id = ?", category.ID).
		Updates(map[string]any{"name": category.Name, "img": category.Img})
	if result.Error != nil {
		return translateError(result.Error, "failed to update category")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrCategoryNotFound
	}

	return nil
}

func (repo *categoryRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CategoryModel{})
	if result.Error != nil {
		return translateError(result.Error, "failed to delete category")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrCategoryNotFound
	}

	return nil
}
