package impl

import (
	"context"
	"testing"

	"aeon/internal/domain/entity"
	domainerrors "aeon/internal/domain/errors"
	mockRepo "aeon/internal/mocks/repository"
	mockSvc "aeon/internal/mocks/service"
	"aeon/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type productServiceFixtures struct {
	service     usecase.ProductUsecase
	productRepo *mockRepo.MockProductRepository
	detailRepo  *mockRepo.MockProductDetailRepository
	images      *mockSvc.MockImageStore
}

func createTestProductService(t *testing.T) productServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	detailRepo := mockRepo.NewMockProductDetailRepository(t)
	images := mockSvc.NewMockImageStore(t)

	return productServiceFixtures{
		service: NewProductService(ProductServiceParams{
			ProductRepo: productRepo,
			DetailRepo:  detailRepo,
			Images:      images,
			Logger:      newDiscardLogger(),
		}),
		productRepo: productRepo,
		detailRepo:  detailRepo,
		images:      images,
	}
}

func TestProductService_GetProduct_WithDetails(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	category := "Shoes"

	fx.productRepo.EXPECT().FindByID(ctx, uint(3)).Return(&entity.Product{
		ID: 3, Name: "Trail Shoe", Price: decimal.RequireFromString("29.99"), CategoryID: 1, CategoryName: &category,
	}, nil)
	fx.detailRepo.EXPECT().ListByProduct(ctx, uint(3)).Return([]entity.ProductDetail{
		{ID: 1, DetailName: "Size", DetailValue: "42"},
	}, nil)

	product, err := fx.service.GetProduct(ctx, 3)

	require.NoError(t, err)
	require.Len(t, product.Details, 1)
	assert.Equal(t, "Size", product.Details[0].DetailName)
}

func TestProductService_GetProduct_NoDetailsIsEmptyList(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().FindByID(ctx, uint(3)).Return(&entity.Product{ID: 3}, nil)
	fx.detailRepo.EXPECT().ListByProduct(ctx, uint(3)).Return(nil, nil)

	product, err := fx.service.GetProduct(ctx, 3)

	require.NoError(t, err)
	assert.NotNil(t, product.Details)
	assert.Empty(t, product.Details)
}

func TestProductService_GetProduct_NotFound(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().FindByID(ctx, uint(404)).Return(nil, domainerrors.ErrProductNotFound)

	_, err := fx.service.GetProduct(ctx, 404)

	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	fx.detailRepo.AssertNotCalled(t, "ListByProduct", mock.Anything, mock.Anything)
}

func TestProductService_SearchProducts_QueryRequired(t *testing.T) {
	fx := createTestProductService(t)

	_, err := fx.service.SearchProducts(context.Background(), "")

	assert.ErrorIs(t, err, domainerrors.ErrSearchQueryRequired)
}

func TestProductService_CreateProduct(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	noBrand := uint(0)

	fx.productRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(p *entity.Product) bool {
			return p.Name == "Trail Shoe" && p.CategoryID == 1 && p.BrandID == nil
		})).
		Run(func(_ context.Context, p *entity.Product) { p.ID = 20 }).
		Return(nil)

	product, err := fx.service.CreateProduct(ctx, usecase.ProductInput{
		Name:       "Trail Shoe",
		Price:      decimal.RequireFromString("29.99"),
		CategoryID: 1,
		BrandID:    &noBrand,
	})

	require.NoError(t, err)
	assert.Equal(t, uint(20), product.ID)
	assert.Nil(t, product.BrandID)
}

func TestProductService_CreateProduct_MissingFields(t *testing.T) {
	fx := createTestProductService(t)

	_, err := fx.service.CreateProduct(context.Background(), usecase.ProductInput{Name: "No Price", CategoryID: 1})

	assert.ErrorIs(t, err, domainerrors.ErrMissingFields)
}

func TestProductService_CreateProductDetail(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	fx.detailRepo.EXPECT().
		Create(ctx, &entity.ProductDetail{ProductID: 3, DetailName: "Color", DetailValue: "Red"}).
		Run(func(_ context.Context, d *entity.ProductDetail) { d.ID = 8 }).
		Return(nil)

	detail, err := fx.service.CreateProductDetail(ctx, 3, usecase.ProductDetailInput{DetailName: "Color", DetailValue: "Red"})

	require.NoError(t, err)
	assert.Equal(t, uint(8), detail.ID)
}

func TestProductService_CreateProductDetail_NameRequired(t *testing.T) {
	fx := createTestProductService(t)

	_, err := fx.service.CreateProductDetail(context.Background(), 3, usecase.ProductDetailInput{DetailValue: "Red"})

	assert.ErrorIs(t, err, domainerrors.ErrDetailNameRequired)
}

func TestProductService_DeleteProductDetail_NotFound(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	fx.detailRepo.EXPECT().Delete(ctx, uint(77)).Return(domainerrors.ErrProductDetailNotFound)

	assert.ErrorIs(t, fx.service.DeleteProductDetail(ctx, 77), domainerrors.ErrProductDetailNotFound)
}
