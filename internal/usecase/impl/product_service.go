package impl

import (
	"context"
	"log/slog"

	deliverycontext "aeon/internal/delivery/context"
	"aeon/internal/domain/entity"
	domainerrors "aeon/internal/domain/errors"
	"aeon/internal/domain/repository"
	"aeon/internal/domain/service"
	"aeon/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo repository.ProductRepository
	detailRepo  repository.ProductDetailRepository
	images      service.ImageStore
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	DetailRepo  repository.ProductDetailRepository
	Images      service.ImageStore
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo: params.ProductRepo,
		detailRepo:  params.DetailRepo,
		images:      params.Images,
		logger:      params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *productService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

func (srv *productService) SearchProducts(ctx context.Context, query string) ([]*entity.Product, error) {
	if query == "" {
		return nil, domainerrors.ErrSearchQueryRequired
	}

	products, err := srv.productRepo.Search(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search products")
	}

	return products, nil
}

// GetProduct returns the product with its details. Details are always present, possibly empty.
func (srv *productService) GetProduct(ctx context.Context, id uint) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get product")
	}

	details, err := srv.detailRepo.ListByProduct(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list product details")
	}
	if details == nil {
		details = []entity.ProductDetail{}
	}
	product.Details = details

	return product, nil
}

func (srv *productService) CreateProduct(ctx context.Context, input usecase.ProductInput) (*entity.Product, error) {
	if input.Name == "" || input.Price.IsZero() || input.CategoryID == 0 {
		return nil, domainerrors.ErrMissingFields
	}

	img, err := resolveImage(ctx, srv.images, service.ImageKindProduct, input.Img, input.Upload)
	if err != nil {
		srv.log(ctx).Error("Failed to store product image", slog.Any("error", err))

		return nil, err
	}

	product := newProduct(0, input, img)
	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	return product, nil
}

func (srv *productService) UpdateProduct(ctx context.Context, id uint, input usecase.ProductInput) (*entity.Product, error) {
	img, err := resolveImage(ctx, srv.images, service.ImageKindProduct, input.Img, input.Upload)
	if err != nil {
		srv.log(ctx).Error("Failed to store product image", slog.Any("product_id", id), slog.Any("error", err))

		return nil, err
	}

	product := newProduct(id, input, img)
	if err := srv.productRepo.Update(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}

	return product, nil
}

func newProduct(id uint, input usecase.ProductInput, img string) *entity.Product {
	brandID := input.BrandID
	if brandID != nil && *brandID == 0 {
		brandID = nil
	}

	return &entity.Product{
		ID:         id,
		Name:       input.Name,
		Img:        img,
		Price:      input.Price,
		CategoryID: input.CategoryID,
		BrandID:    brandID,
	}
}

func (srv *productService) DeleteProduct(ctx context.Context, id uint) error {
	if err := srv.productRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete product")
	}

	return nil
}

func (srv *productService) ListProductDetails(ctx context.Context, productID uint) ([]entity.ProductDetail, error) {
	details, err := srv.detailRepo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list product details")
	}

	return details, nil
}

func (srv *productService) CreateProductDetail(
	ctx context.Context,
	productID uint,
	input usecase.ProductDetailInput,
) (*entity.ProductDetail, error) {
	if input.DetailName == "" {
		return nil, domainerrors.ErrDetailNameRequired
	}

	detail := &entity.ProductDetail{
		ProductID:   productID,
		DetailName:  input.DetailName,
		DetailValue: input.DetailValue,
	}
	if err := srv.detailRepo.Create(ctx, detail); err != nil {
		return nil, errors.Wrap(err, "failed to create product detail")
	}

	return detail, nil
}

func (srv *productService) UpdateProductDetail(
	ctx context.Context,
	id uint,
	input usecase.ProductDetailInput,
) (*entity.ProductDetail, error) {
	detail := &entity.ProductDetail{
		ID:          id,
		DetailName:  input.DetailName,
		DetailValue: input.DetailValue,
	}
	if err := srv.detailRepo.Update(ctx, detail); err != nil {
		return nil, errors.Wrap(err, "failed to update product detail")
	}

	return detail, nil
}

func (srv *productService) DeleteProductDetail(ctx context.Context, id uint) error {
	if err := srv.detailRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete product detail")
	}

	return nil
}
