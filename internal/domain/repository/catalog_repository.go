// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"aeon/internal/domain/entity"
)

// BrandRepository defines brand persistence. Update and Delete return
// errors.ErrBrandNotFound when no row matched the id.
type BrandRepository interface {
	List(ctx context.Context) ([]*entity.Brand, error)
	Create(ctx context.Context, brand *entity.Brand) error
	Update(ctx context.Context, brand *entity.Brand) error
	Delete(ctx context.Context, id uint) error
}

// CategoryRepository defines category persistence. Update and Delete return
// errors.ErrCategoryNotFound when no row matched the id.
type CategoryRepository interface {
	List(ctx context.Context) ([]*entity.Category, error)
	Create(ctx context.Context, category *entity.Category) error
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id uint) error
}

// ProductRepository defines product persistence.
type ProductRepository interface {
	// List returns every product with its category and brand names, newest first.
	List(ctx context.Context) ([]*entity.Product, error)

	// Search returns products whose name contains term, newest first.
	Search(ctx context.Context, term string) ([]*entity.Product, error)

	// FindByID returns the product with category and brand names, without details.
	FindByID(ctx context.Context, id uint) (*entity.Product, error)

	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uint) error
}

// ProductDetailRepository defines product attribute persistence.
type ProductDetailRepository interface {
	// ListByProduct returns the details of a product ordered by id.
	ListByProduct(ctx context.Context, productID uint) ([]entity.ProductDetail, error)

	Create(ctx context.Context, detail *entity.ProductDetail) error
	Update(ctx context.Context, detail *entity.ProductDetail) error
	Delete(ctx context.Context, id uint) error
}
