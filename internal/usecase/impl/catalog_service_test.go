package impl

import (
	"context"
	"strings"
	"testing"

	"aeon/internal/domain/entity"
	domainerrors "aeon/internal/domain/errors"
	"aeon/internal/domain/service"
	mockRepo "aeon/internal/mocks/repository"
	mockSvc "aeon/internal/mocks/service"
	"aeon/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogServiceFixtures struct {
	service      usecase.CatalogUsecase
	brandRepo    *mockRepo.MockBrandRepository
	categoryRepo *mockRepo.MockCategoryRepository
	images       *mockSvc.MockImageStore
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	brandRepo := mockRepo.NewMockBrandRepository(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	images := mockSvc.NewMockImageStore(t)

	return catalogServiceFixtures{
		service: NewCatalogService(CatalogServiceParams{
			BrandRepo:    brandRepo,
			CategoryRepo: categoryRepo,
			Images:       images,
			Logger:       newDiscardLogger(),
		}),
		brandRepo:    brandRepo,
		categoryRepo: categoryRepo,
		images:       images,
	}
}

func TestCatalogService_CreateBrand_WithUpload(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	content := strings.NewReader("png-bytes")

	fx.images.EXPECT().
		Save(ctx, service.ImageKindBrand, "acme.png", content).
		Return("./img/brand/1714550400000-acme.png", nil)
	fx.brandRepo.EXPECT().
		Create(ctx, &entity.Brand{Name: "Acme", Img: "./img/brand/1714550400000-acme.png"}).
		Run(func(_ context.Context, b *entity.Brand) { b.ID = 3 }).
		Return(nil)

	brand, err := fx.service.CreateBrand(ctx, usecase.BrandInput{
		Name:   "Acme",
		Img:    "ignored-when-uploading",
		Upload: &usecase.ImageUpload{Filename: "acme.png", Content: content},
	})

	require.NoError(t, err)
	assert.Equal(t, &entity.Brand{ID: 3, Name: "Acme", Img: "./img/brand/1714550400000-acme.png"}, brand)
}

func TestCatalogService_CreateBrand_KeepsSubmittedPath(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.brandRepo.EXPECT().Create(ctx, &entity.Brand{Name: "Acme", Img: "./img/brand/existing.png"}).Return(nil)

	brand, err := fx.service.CreateBrand(ctx, usecase.BrandInput{Name: "Acme", Img: "./img/brand/existing.png"})

	require.NoError(t, err)
	assert.Equal(t, "./img/brand/existing.png", brand.Img)
	fx.images.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCatalogService_CreateBrand_NameRequired(t *testing.T) {
	fx := createTestCatalogService(t)

	_, err := fx.service.CreateBrand(context.Background(), usecase.BrandInput{Img: "x.png"})

	assert.ErrorIs(t, err, domainerrors.ErrMissingFields)
}

func TestCatalogService_CreateCategory_ImageStoreFailure(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.images.EXPECT().
		Save(ctx, service.ImageKindCategory, "shoes.jpg", mock.Anything).
		Return("", errors.New("disk full"))

	_, err := fx.service.CreateCategory(ctx, usecase.CategoryInput{
		Name:   "Shoes",
		Upload: &usecase.ImageUpload{Filename: "shoes.jpg", Content: strings.NewReader("jpg")},
	})

	assert.ErrorIs(t, err, domainerrors.ErrImageStoreFailed)
	fx.categoryRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCatalogService_UpdateCategory_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.categoryRepo.EXPECT().
		Update(ctx, &entity.Category{ID: 404, Name: "Ghost", Img: ""}).
		Return(domainerrors.ErrCategoryNotFound)

	_, err := fx.service.UpdateCategory(ctx, 404, usecase.CategoryInput{Name: "Ghost"})

	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

func TestCatalogService_DeleteBrand(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.brandRepo.EXPECT().Delete(ctx, uint(9)).Return(nil)

	require.NoError(t, fx.service.DeleteBrand(ctx, 9))
}
