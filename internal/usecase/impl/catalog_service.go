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

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	brandRepo    repository.BrandRepository
	categoryRepo repository.CategoryRepository
	images       service.ImageStore
	logger       *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	BrandRepo    repository.BrandRepository
	CategoryRepo repository.CategoryRepository
	Images       service.ImageStore
	Logger       *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		brandRepo:    params.BrandRepo,
		categoryRepo: params.CategoryRepo,
		images:       params.Images,
		logger:       params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *catalogService) ListBrands(ctx context.Context) ([]*entity.Brand, error) {
	brands, err := srv.brandRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list brands")
	}

	return brands, nil
}

func (srv *catalogService) CreateBrand(ctx context.Context, input usecase.BrandInput) (*entity.Brand, error) {
	if input.Name == "" {
		return nil, domainerrors.ErrMissingFields
	}

	img, err := resolveImage(ctx, srv.images, service.ImageKindBrand, input.Img, input.Upload)
	if err != nil {
		srv.log(ctx).Error("Failed to store brand image", slog.Any("error", err))

		return nil, err
	}

	brand := &entity.Brand{Name: input.Name, Img: img}
	if err := srv.brandRepo.Create(ctx, brand); err != nil {
		return nil, errors.Wrap(err, "failed to create brand")
	}

	return brand, nil
}

func (srv *catalogService) UpdateBrand(ctx context.Context, id uint, input usecase.BrandInput) (*entity.Brand, error) {
	img, err := resolveImage(ctx, srv.images, service.ImageKindBrand, input.Img, input.Upload)
	if err != nil {
		srv.log(ctx).Error("Failed to store brand image", slog.Any("brand_id", id), slog.Any("error", err))

		return nil, err
	}

	brand := &entity.Brand{ID: id, Name: input.Name, Img: img}
	if err := srv.brandRepo.Update(ctx, brand); err != nil {
		return nil, errors.Wrap(err, "failed to update brand")
	}

	return brand, nil
}

func (srv *catalogService) DeleteBrand(ctx context.Context, id uint) error {
	if err := srv.brandRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete brand")
	}

	return nil
}

func (srv *catalogService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.categoryRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

func (srv *catalogService) CreateCategory(ctx context.Context, input usecase.CategoryInput) (*entity.Category, error) {
	if input.Name == "" {
		return nil, domainerrors.ErrMissingFields
	}

	img, err := resolveImage(ctx, srv.images, service.ImageKindCategory, input.Img, input.Upload)
	if err != nil {
		srv.log(ctx).Error("Failed to store category image", slog.Any("error", err))

		return nil, err
	}

	category := &entity.Category{Name: input.Name, Img: img}
	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		return nil, errors.Wrap(err, "failed to create category")
	}

	return category, nil
}

func (srv *catalogService) UpdateCategory(ctx context.Context, id uint, input usecase.CategoryInput) (*entity.Category, error) {
	img, err := resolveImage(ctx, srv.images, service.ImageKindCategory, input.Img, input.Upload)
	if err != nil {
		srv.log(ctx).Error("Failed to store category image", slog.Any("category_id", id), slog.Any("error", err))

		return nil, err
	}

	category := &entity.Category{ID: id, Name: input.Name, Img: img}
	if err := srv.categoryRepo.Update(ctx, category); err != nil {
		return nil, errors.Wrap(err, "failed to update category")
	}

	return category, nil
}

func (srv *catalogService) DeleteCategory(ctx context.Context, id uint) error {
	if err := srv.categoryRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete category")
	}

	return nil
}

// resolveImage stores an uploaded file and returns its public path, or keeps the submitted path.
func resolveImage(
	ctx context.Context,
	images service.ImageStore,
	kind service.ImageKind,
	current string,
	upload *usecase.ImageUpload,
) (string, error) {
	if upload == nil {
		return current, nil
	}

	path, err := images.Save(ctx, kind, upload.Filename, upload.Content)
	if err != nil {
		return "", domainerrors.ErrImageStoreFailed.WrapMessage(err.Error())
	}

	return path, nil
}
