package usecase

import (
	"context"
	"io"

	"aeon/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// --- Input DTOs ---

// ImageUpload is an uploaded image file. When present it replaces the Img value of the input.
type ImageUpload struct {
	Filename string
	Content  io.Reader
}

// BrandInput is used for both brands and categories, which share their shape.
type BrandInput struct {
	Name   string
	Img    string
	Upload *ImageUpload
}

// CategoryInput defines the fields of a category.
type CategoryInput = BrandInput

// ProductInput defines the fields of a product.
type ProductInput struct {
	Name       string
	Price      decimal.Decimal
	CategoryID uint
	BrandID    *uint
	Img        string
	Upload     *ImageUpload
}

// ProductDetailInput defines one product attribute.
type ProductDetailInput struct {
	DetailName  string
	DetailValue string
}

// CatalogUsecase defines brand and category management.
type CatalogUsecase interface {
	ListBrands(ctx context.Context) ([]*entity.Brand, error)
	CreateBrand(ctx context.Context, input BrandInput) (*entity.Brand, error)
	UpdateBrand(ctx context.Context, id uint, input BrandInput) (*entity.Brand, error)
	DeleteBrand(ctx context.Context, id uint) error

	ListCategories(ctx context.Context) ([]*entity.Category, error)
	CreateCategory(ctx context.Context, input CategoryInput) (*entity.Category, error)
	UpdateCategory(ctx context.Context, id uint, input CategoryInput) (*entity.Category, error)
	DeleteCategory(ctx context.Context, id uint) error
}

// ProductUsecase defines product and product detail management.
type ProductUsecase interface {
	ListProducts(ctx context.Context) ([]*entity.Product, error)
	SearchProducts(ctx context.Context, query string) ([]*entity.Product, error)
	// GetProduct returns the product with its details.
	GetProduct(ctx context.Context, id uint) (*entity.Product, error)
	CreateProduct(ctx context.Context, input ProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id uint, input ProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id uint) error

	ListProductDetails(ctx context.Context, productID uint) ([]entity.ProductDetail, error)
	CreateProductDetail(ctx context.Context, productID uint, input ProductDetailInput) (*entity.ProductDetail, error)
	UpdateProductDetail(ctx context.Context, id uint, input ProductDetailInput) (*entity.ProductDetail, error)
	DeleteProductDetail(ctx context.Context, id uint) error
}
