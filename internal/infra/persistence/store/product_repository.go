package store

import (
	"context"

	"aeon/internal/domain/entity"
	domainerrors "aeon/internal/domain/errors"
	"aeon/internal/domain/repository"
	"aeon/internal/infra/persistence/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const productViewColumns = "p.id, p.name, p.img, p.price, p.category_id, p.brand_id, c.name AS category_name, b.name AS brand_name"

// productRow is the joined product read view.
type productRow struct {
	ID           uint
	Name         string
	Img          string
	Price        decimal.Decimal
	CategoryID   uint
	BrandID      *uint
	CategoryName *string
	BrandName    *string
}

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (repo *productRepository) view(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Table("products AS p").
		Select(productViewColumns).
		Joins("LEFT JOIN categories c ON p.category_id = c.id").
		Joins("LEFT JOIN brands b ON p.brand_id = b.id")
}

func (repo *productRepository) List(ctx context.Context) ([]*entity.Product, error) {
	var rows []productRow
	if err := repo.view(ctx).Order("p.id DESC").Scan(&rows).Error; err != nil {
		return nil, translateError(err, "failed to list products")
	}

	return toProducts(rows), nil
}

func (repo *productRepository) Search(ctx context.Context, term string) ([]*entity.Product, error) {
	var rows []productRow
	if err := repo.view(ctx).
		Where("p.name LIKE ?", "%"+term+"%").
		Order("p.id DESC").
		Scan(&rows).Error; err != nil {
		return nil, translateError(err, "failed to search products")
	}

	return toProducts(rows), nil
}

func (repo *productRepository) FindByID(ctx context.Context, id uint) (*entity.Product, error) {
	var rows []productRow
	if err := repo.view(ctx).Where("p.id = ?", id).Limit(1).Scan(&rows).Error; err != nil {
		return nil, translateError(err, "failed to find product")
	}
	if len(rows) == 0 {
		return nil, domainerrors.ErrProductNotFound
	}

	return toProduct(rows[0]), nil
}

func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	row := &model.ProductModel{
		Name:       product.Name,
		Img:        product.Img,
		Price:      product.Price,
		CategoryID: product.CategoryID,
		BrandID:    product.BrandID,
	}
	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		return translateError(err, "failed to create product")
	}
	product.ID = row.ID

	return nil
}

func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Updates(map[string]any{
			"name":        product.Name,
			"brand_id":    product.BrandID,
			"img":         product.Img,
			"price":       product.Price,
			"category_id": product.CategoryID,
		})
	if result.Error != nil {
		return translateError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrProductNotFound
	}

	return nil
}

func (repo *productRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ProductModel{})
	if result.Error != nil {
		return translateError(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrProductNotFound
	}

	return nil
}

func toProducts(rows []productRow) []*entity.Product {
	products := make([]*entity.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, toProduct(row))
	}

	return products
}

func toProduct(row productRow) *entity.Product {
	return &entity.Product{
		ID:           row.ID,
		Name:         row.Name,
		Img:          row.Img,
		Price:        row.Price,
		CategoryID:   row.CategoryID,
		BrandID:      row.BrandID,
		CategoryName: row.CategoryName,
		BrandName:    row.BrandName,
	}
}
